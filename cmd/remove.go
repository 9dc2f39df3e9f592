package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pjcli/pj/internal/registry"
	"github.com/pjcli/pj/internal/ui"
)

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a project from the registry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		dataPath := registry.DefaultDataPath()
		reg, err := registry.Load(dataPath)
		if err != nil {
			return err
		}

		if !reg.Delete(name) {
			return fmt.Errorf("project %q not found", name)
		}
		if err := registry.Save(reg, dataPath); err != nil {
			return err
		}

		ui.Successf("✓ Removed project '%s'", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
