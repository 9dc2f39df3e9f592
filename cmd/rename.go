package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pjcli/pj/internal/registry"
	"github.com/pjcli/pj/internal/ui"
)

var renameCmd = &cobra.Command{
	Use:     "rename <old-name> <new-name>",
	Aliases: []string{"mv"},
	Short:   "Rename a project",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataPath := registry.DefaultDataPath()
		reg, err := registry.Load(dataPath)
		if err != nil {
			return err
		}

		if err := reg.Rename(args[0], args[1]); err != nil {
			return err
		}
		if err := registry.Save(reg, dataPath); err != nil {
			return err
		}

		ui.Successf("✓ Renamed '%s' → '%s'", args[0], args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
