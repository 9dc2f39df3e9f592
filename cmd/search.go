package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pjcli/pj/internal/registry"
	"github.com/pjcli/pj/internal/ui"
)

var searchCmd = &cobra.Command{
	Use:     "search <query>",
	Aliases: []string{"find"},
	Short:   "Search projects by name or path",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.ToLower(args[0])

		reg, err := registry.Load(registry.DefaultDataPath())
		if err != nil {
			return err
		}

		matches := registry.New()
		for _, name := range reg.Names() {
			path, _ := reg.Get(name)
			if strings.Contains(strings.ToLower(name), query) ||
				strings.Contains(strings.ToLower(path), query) {
				matches.Set(name, path)
			}
		}

		if matches.Len() == 0 {
			ui.Infof("No projects found matching '%s'", args[0])
			return nil
		}

		ui.Infof("Projects matching '%s':", args[0])
		ui.PrintRegistry(matches)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
