package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	prompt  string
	confirm bool
}

// Confirm asks a yes/no question, defaulting to no.
func Confirm(prompt string) (bool, error) {
	m := &confirmModel{prompt: prompt}
	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return false, err
	}

	final, ok := result.(*confirmModel)
	return ok && final.confirm, nil
}

func (m *confirmModel) Init() tea.Cmd {
	return nil
}

func (m *confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y":
		m.confirm = true
		return m, tea.Quit
	default:
		// Anything else is a no.
		return m, tea.Quit
	}
}

func (m *confirmModel) View() string {
	return styleWarn.Render(m.prompt) + " " + styleDim.Render("[y/N]") + "\n"
}
