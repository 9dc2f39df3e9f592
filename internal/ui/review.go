package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pjcli/pj/internal/model"
)

type reviewItem struct {
	project   model.Project
	selected  bool
	duplicate bool // shares its name with another candidate in this batch
}

type reviewModel struct {
	items     []reviewItem
	cursor    int
	confirmed bool
}

// ReviewCandidates shows a multi-select over newly discovered
// projects, all pre-selected. Candidates whose derived name appears
// more than once in the batch are marked so the user can deselect one.
// The second return is false when the user cancelled the scan.
func ReviewCandidates(candidates []model.Project, duplicates map[string]int) ([]model.Project, bool, error) {
	items := make([]reviewItem, len(candidates))
	for i, c := range candidates {
		items[i] = reviewItem{
			project:   c,
			selected:  true,
			duplicate: duplicates[c.Name] > 1,
		}
	}

	m := &reviewModel{items: items}
	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, false, err
	}

	final, ok := result.(*reviewModel)
	if !ok || !final.confirmed {
		return nil, false, nil
	}

	var selected []model.Project
	for _, item := range final.items {
		if item.selected {
			selected = append(selected, item.project)
		}
	}
	return selected, true, nil
}

func (m *reviewModel) Init() tea.Cmd {
	return nil
}

func (m *reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
	case " ":
		m.items[m.cursor].selected = !m.items[m.cursor].selected
	case "a":
		for i := range m.items {
			m.items[i].selected = true
		}
	case "n":
		for i := range m.items {
			m.items[i].selected = false
		}
	case "enter":
		m.confirmed = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *reviewModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Select projects to add"))
	b.WriteString("\n\n")

	for i, item := range m.items {
		mark := "[ ]"
		if item.selected {
			mark = "[x]"
		}

		line := fmt.Sprintf("%s %s", mark, item.project.DisplayName())
		if item.duplicate {
			line += " " + styleWarn.Render("(duplicate name)")
		}
		line += " " + styleDim.Render(item.project.Path)

		if i == m.cursor {
			b.WriteString(styleSuccess.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleDim.Render("space toggle · a all · n none · enter confirm · q cancel"))
	b.WriteString("\n")
	return b.String()
}
