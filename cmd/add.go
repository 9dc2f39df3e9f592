package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pjcli/pj/internal/registry"
	"github.com/pjcli/pj/internal/ui"
)

var addCmd = &cobra.Command{
	Use:     "add <name> <path>",
	Aliases: []string{"a"},
	Short:   "Add a project to the registry",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		path, err := resolvePath(args[1])
		if err != nil {
			return err
		}

		dataPath := registry.DefaultDataPath()
		reg, err := registry.Load(dataPath)
		if err != nil {
			return err
		}

		reg.Set(name, path)
		if err := registry.Save(reg, dataPath); err != nil {
			return err
		}

		ui.Successf("✓ Added project '%s'", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
