// Package tui provides the terminal prompts and widgets used by pwseq.
package tui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	bodyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// ConfirmModel asks a yes/no question. Enter accepts the default answer,
// which is "no".
type ConfirmModel struct {
	title   string
	message string

	answered  bool
	confirmed bool
	width     int
}

// NewConfirmModel constructs a yes/no prompt.
func NewConfirmModel(title, message string) *ConfirmModel {
	return &ConfirmModel{title: title, message: message}
}

// Confirmed reports whether the user accepted.
func (m *ConfirmModel) Confirmed() bool {
	return m.answered && m.confirmed
}

// Init implements tea.Model.
func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m.answer(false)
		case tea.KeyRunes:
			switch strings.ToLower(string(msg.Runes)) {
			case "y":
				return m.answer(true)
			case "n", "q":
				return m.answer(false)
			}
		}
	}
	return m, nil
}

func (m *ConfirmModel) answer(ok bool) (tea.Model, tea.Cmd) {
	m.answered = true
	m.confirmed = ok
	return m, tea.Quit
}

// View implements tea.Model.
func (m *ConfirmModel) View() string {
	if m.answered {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title),
		"",
		bodyStyle.Render(m.message),
		"",
		footerStyle.Render("y: continue  n/enter: cancel"),
	)
	style := modalStyle
	if m.width > 8 {
		style = style.MaxWidth(m.width)
	}
	return style.Render(body) + "\n"
}

// Confirm runs a prompt on the given terminal streams and returns the answer.
func Confirm(in io.Reader, out io.Writer, title, message string) (bool, error) {
	m := NewConfirmModel(title, message)
	final, err := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return false, fmt.Errorf("failed to run prompt: %w", err)
	}
	result, ok := final.(*ConfirmModel)
	if !ok {
		return false, fmt.Errorf("unexpected prompt model %T", final)
	}
	return result.Confirmed(), nil
}
