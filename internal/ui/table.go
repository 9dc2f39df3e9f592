package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pjcli/pj/internal/registry"
)

// PrintRegistry renders the registry as a table, sorted by name.
func PrintRegistry(reg *registry.Registry) {
	if reg.Len() == 0 {
		Infof("No projects found. Add one with: pj add <name> <path>")
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers("#", "NAME", "PATH").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleCell.Inherit(styleHeader)
			}
			if col == 1 {
				return styleCell.Inherit(styleName)
			}
			return styleCell
		})

	for i, name := range reg.Names() {
		path, _ := reg.Get(name)
		t.Row(strconv.Itoa(i+1), name, path)
	}

	fmt.Println(t)
	total := reg.Len()
	plural := "s"
	if total == 1 {
		plural = ""
	}
	Dimf("Total: %d project%s", total, plural)
}
