// Package ui provides optional terminal interfaces.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hariamoor-zz/todo-cli/internal/task"
)

var (
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle = lipgloss.NewStyle().Faint(true)
)

// RunTUI starts a read-only viewer for the task file at path. Mutation
// stays on the CLI surface; the viewer only loads and renders.
func RunTUI(ctx context.Context, path, owner string) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newModel(path, owner)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type model struct {
	path    string
	owner   string
	list    *task.List
	loadErr error
}

func newModel(path, owner string) *model {
	m := &model{path: path, owner: owner}
	m.reload()
	return m
}

func (m *model) reload() {
	m.list, m.loadErr = task.LoadOrInit(m.path, m.owner)
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.reload()
		}
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder
	if m.loadErr != nil {
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.loadErr)))
		b.WriteString("\n")
	} else {
		m.list.Render(&b)
	}
	b.WriteString(helpStyle.Render("r reload • q quit"))
	b.WriteString("\n")
	return b.String()
}

// IsTTY reports whether w is attached to a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
