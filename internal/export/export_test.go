package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hariamoor-zz/todo-cli/internal/task"
)

func testList() *task.List {
	return &task.List{
		Tasks: []string{"buy milk", "walk, the dog"},
		Name:  "hari",
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(testList(), FormatJSON, &buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := task.Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("JSON export does not decode: %v", err)
	}
	if got.Len() != 2 || got.Name != "hari" {
		t.Errorf("decoded export: got %v owner %q", got.Tasks, got.Name)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(testList(), FormatCSV, &buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count: got %d, want 3\n%s", len(lines), buf.String())
	}
	if lines[0] != "index,task" {
		t.Errorf("header: got %q", lines[0])
	}
	if lines[1] != "1,buy milk" {
		t.Errorf("row 1: got %q", lines[1])
	}
	// The comma in the task text must be quoted.
	if lines[2] != `2,"walk, the dog"` {
		t.Errorf("row 2: got %q", lines[2])
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(testList(), FormatPDF, &buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header")
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(testList(), "xml", &buf)
	if err == nil {
		t.Fatal("Write succeeded with unknown format")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("error does not name the format: %v", err)
	}
}
