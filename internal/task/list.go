// Package task implements the task list core: an ordered list of task
// text owned by one user, the instruction set that mutates or queries it,
// and the snapshot codec that persists it between runs.
package task

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// List holds the in-memory task list for one owner. Tasks keep insertion
// order; duplicate and empty text are allowed.
type List struct {
	Tasks []string `json:"tasks"`
	Name  string   `json:"name"`
}

// New returns an empty list owned by name.
func New(name string) *List {
	return &List{
		Tasks: []string{},
		Name:  name,
	}
}

// Instruction is one user-requested mutation or query against a List.
// The set is closed: Add, Remove, Modify, and Print are the only
// implementations.
type Instruction interface {
	instruction()
}

// Add appends Text to the end of the list.
type Add struct {
	Text string
}

// Remove deletes the task at the 1-based Index.
type Remove struct {
	Index int
}

// Modify replaces the task at the 1-based Index with Text.
type Modify struct {
	Index int
	Text  string
}

// Print renders the list to the output sink passed to Apply.
type Print struct{}

func (Add) instruction()    {}
func (Remove) instruction() {}
func (Modify) instruction() {}
func (Print) instruction()  {}

// Apply executes one instruction against the list. Print writes its
// rendering to out; the other instructions mutate the list in place.
// Remove and Modify validate their index before touching the list, so a
// returned *IndexError means the list is unchanged.
func (l *List) Apply(inst Instruction, out io.Writer) error {
	switch v := inst.(type) {
	case Add:
		l.Tasks = append(l.Tasks, v.Text)
	case Remove:
		if err := l.checkIndex(v.Index); err != nil {
			return err
		}
		l.Tasks = append(l.Tasks[:v.Index-1], l.Tasks[v.Index:]...)
	case Modify:
		if err := l.checkIndex(v.Index); err != nil {
			return err
		}
		l.Tasks[v.Index-1] = v.Text
	case Print:
		l.Render(out)
	default:
		return fmt.Errorf("unknown instruction type %T", inst)
	}
	return nil
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.Tasks)
}

func (l *List) checkIndex(i int) error {
	if i < 1 || i > len(l.Tasks) {
		return &IndexError{Index: i, Len: len(l.Tasks)}
	}
	return nil
}

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Render writes a table view of the list to w, one row per task with its
// 1-based index. An empty list gets a short message instead of an empty
// table.
func (l *List) Render(w io.Writer) {
	if len(l.Tasks) == 0 {
		fmt.Fprintf(w, "No tasks to print for %s\n", l.Name)
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return cellStyle
		})
	for i, text := range l.Tasks {
		t.Row(strconv.Itoa(i+1), text)
	}

	fmt.Fprintf(w, "%s's to-do list:\n%s\n", l.Name, t.Render())
}
