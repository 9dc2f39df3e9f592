package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pjcli/pj/internal/registry"
	"github.com/pjcli/pj/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all projects",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry.Load(registry.DefaultDataPath())
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			data, err := json.MarshalIndent(reg.Snapshot(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
			if reg.Len() == 0 {
				ui.Infof("No projects found. Add one with: pj add <name> <path>")
				return nil
			}
			name, ok, err := ui.PickProject(reg)
			if err != nil {
				return err
			}
			if !ok {
				ui.Dimf("Selection cancelled")
				return nil
			}
			return openProject(name)
		}

		ui.PrintRegistry(reg)
		return nil
	},
}

func init() {
	listCmd.Flags().Bool("json", false, "output as JSON")
	listCmd.Flags().BoolP("interactive", "i", false, "select a project to open")
	rootCmd.AddCommand(listCmd)
}
