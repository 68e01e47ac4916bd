package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tenpair/internal/registry"
)

// PickerModel is the Bubble Tea model for the supply-mode picker.
type PickerModel struct {
	modes    []registry.ModeInfo
	cursor   int
	keys     PickerKeyMap
	width    int
	quitting bool
	selected *registry.ModeInfo
}

// NewPickerModel creates a mode picker over all registered modes.
func NewPickerModel() PickerModel {
	return PickerModel{
		modes: registry.List(),
		keys:  DefaultPickerKeyMap(),
	}
}

// Init initializes the picker model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.modes)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Select):
			if len(m.modes) > 0 {
				selected := m.modes[m.cursor]
				m.selected = &selected
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	return m, nil
}

// View renders the mode list.
func (m PickerModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("TEN PAIR"))
	b.WriteString("\n\n")
	b.WriteString(hudStyle.Render("Select a mode"))
	b.WriteString("\n\n")

	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	for i, info := range m.modes {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		b.WriteString(style.Render(fmt.Sprintf("%s%s", cursor, info.Title)))
		b.WriteString("\n")
		b.WriteString(descStyle.Render("    " + info.Description))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hudStyle.Render("Up/Down: Navigate  |  Enter: Play  |  Q: Quit"))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen mode, or nil if the user quit.
func (m PickerModel) Selected() *registry.ModeInfo {
	return m.selected
}

// RunModePicker runs the mode picker and returns the chosen mode.
// A nil mode with a nil error means the user quit without choosing.
func RunModePicker() (*registry.ModeInfo, error) {
	p := tea.NewProgram(
		NewPickerModel(),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(PickerModel)
	if !ok {
		return nil, nil
	}

	return m.Selected(), nil
}
