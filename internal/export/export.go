// Package export renders task list snapshots in interchange formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/hariamoor-zz/todo-cli/internal/task"
)

// Formats supported by Write.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
)

// Write renders l in the given format to w.
func Write(l *task.List, format string, w io.Writer) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		data, err := l.Encode()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"index", "task"}); err != nil {
			return err
		}
		for i, text := range l.Tasks {
			if err := cw.Write([]string{strconv.Itoa(i + 1), text}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case FormatPDF:
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(40, 10, fmt.Sprintf("%s's to-do list", l.Name))
		pdf.Ln(12)
		pdf.SetFont("Arial", "", 10)
		for i, text := range l.Tasks {
			pdf.MultiCell(0, 6, fmt.Sprintf("%d. %s", i+1, text), "0", "L", false)
		}
		return pdf.Output(w)
	default:
		return fmt.Errorf("unknown format %s", format)
	}
}
