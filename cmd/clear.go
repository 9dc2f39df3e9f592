package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pjcli/pj/internal/registry"
	"github.com/pjcli/pj/internal/ui"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all projects from the registry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			ok, err := ui.Confirm("Clear all projects?")
			if err != nil {
				return err
			}
			if !ok {
				ui.Dimf("Cancelled")
				return nil
			}
		}

		dataPath := registry.DefaultDataPath()
		reg, err := registry.Load(dataPath)
		if err != nil {
			return err
		}

		reg.Clear()
		if err := registry.Save(reg, dataPath); err != nil {
			return err
		}

		ui.Successf("✓ All projects cleared")
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolP("yes", "y", false, "skip confirmation")
	rootCmd.AddCommand(clearCmd)
}
