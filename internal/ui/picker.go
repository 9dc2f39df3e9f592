package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pjcli/pj/internal/registry"
)

type pickerItem struct {
	name string
	path string
}

type pickerModel struct {
	items  []pickerItem
	cursor int
	chosen bool
}

// PickProject shows a project selector and returns the chosen name.
// The second return is false when the user cancelled.
func PickProject(reg *registry.Registry) (string, bool, error) {
	items := make([]pickerItem, 0, reg.Len())
	for _, name := range reg.Names() {
		path, _ := reg.Get(name)
		items = append(items, pickerItem{name: name, path: path})
	}

	m := &pickerModel{items: items}
	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", false, err
	}

	final, ok := result.(*pickerModel)
	if !ok || !final.chosen {
		return "", false, nil
	}
	return final.items[final.cursor].name, true, nil
}

func (m *pickerModel) Init() tea.Cmd {
	return nil
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter":
		m.chosen = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *pickerModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Select a project to open"))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := item.name + " " + styleDim.Render(item.path)
		if i == m.cursor {
			b.WriteString(styleSuccess.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleDim.Render("↑/↓ move · enter open · q cancel"))
	b.WriteString("\n")
	return b.String()
}
