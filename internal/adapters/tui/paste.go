// Package tui provides the interactive paste view used by custom mode when
// no other input source is available.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andbhavyaa/skeldir/internal/adapters/tui/styles"
)

// LargeInputLines is the paste size past which the view asks the user to
// confirm before scaffolding
const LargeInputLines = 200

type pasteState int

const (
	stateEditing pasteState = iota
	stateConfirming
)

// PasteKeyMap defines key bindings for the paste view
type PasteKeyMap struct {
	Submit  key.Binding
	Cancel  key.Binding
	Confirm key.Binding
	Reject  key.Binding
}

// DefaultPasteKeys returns the default paste view key bindings
var DefaultPasteKeys = PasteKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "done"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Reject: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "back"),
	),
}

// PasteModel collects the tree text for a custom scaffold
type PasteModel struct {
	project string
	input   textarea.Model
	state   pasteState
	keys    PasteKeyMap

	lines     []string
	cancelled bool
}

// NewPasteModel creates a paste view for the given project
func NewPasteModel(project string) *PasteModel {
	input := textarea.New()
	input.Placeholder = "src/\n    index.js\n    utils/"
	input.CharLimit = 0
	input.SetWidth(72)
	input.SetHeight(16)
	input.Focus()

	return &PasteModel{
		project: project,
		input:   input,
		keys:    DefaultPasteKeys,
	}
}

// Init initializes the paste view
func (m *PasteModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the paste view
func (m *PasteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if isKey && m.state == stateConfirming {
		switch {
		case key.Matches(keyMsg, m.keys.Confirm):
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Reject):
			m.state = stateEditing
			m.lines = nil
			return m, nil
		}
		return m, nil
	}

	if isKey {
		switch {
		case key.Matches(keyMsg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit

		case key.Matches(keyMsg, m.keys.Submit):
			m.lines = strings.Split(m.input.Value(), "\n")
			if nonBlankCount(m.lines) > LargeInputLines {
				m.state = stateConfirming
				return m, nil
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the paste view
func (m *PasteModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(fmt.Sprintf("Paste the tree for %q", m.project)))
	b.WriteString("\n")

	if m.state == stateConfirming {
		b.WriteString(styles.WarningMsg.Render(
			fmt.Sprintf("That is %d lines of tree text. Scaffold anyway?", nonBlankCount(m.lines))))
		b.WriteString("\n")
		b.WriteString(styles.HelpKey.Render("y"))
		b.WriteString(styles.HelpDesc.Render(" to confirm, "))
		b.WriteString(styles.HelpKey.Render("n"))
		b.WriteString(styles.HelpDesc.Render(" to go back"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(styles.Subtitle.Render("Directories end with /, four spaces per level."))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(styles.HelpKey.Render("ctrl+d"))
	b.WriteString(styles.HelpDesc.Render(" done "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" cancel"))
	b.WriteString("\n")
	return b.String()
}

// Lines returns the collected tree text
func (m *PasteModel) Lines() []string {
	return m.lines
}

// Cancelled reports whether the user abandoned the paste
func (m *PasteModel) Cancelled() bool {
	return m.cancelled
}

func nonBlankCount(lines []string) int {
	count := 0
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// CollectTree runs the paste view and returns the entered tree text.
// ok is false when the user cancelled.
func CollectTree(project string) (lines []string, ok bool, err error) {
	model := NewPasteModel(project)
	p := tea.NewProgram(model)

	final, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, isPaste := final.(*PasteModel)
	if !isPaste || m.Cancelled() {
		return nil, false, nil
	}
	return m.Lines(), true, nil
}
