package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pjcli/pj/internal/config"
	"github.com/pjcli/pj/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or update configuration",
	Long: `Without flags, shows the current configuration. With
--projects-root or --editor, updates the config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, _ := cmd.Flags().GetString("projects-root")
		show, _ := cmd.Flags().GetBool("show")

		// --editor is the root persistent flag: for every other
		// command it overrides the editor for one run, here it is
		// the value to persist.
		if show || (root == "" && editorOverride == "") {
			ui.Infof("Configuration (%s):", cfgFile)
			fmt.Printf("\n  Editor:        %s\n", cfg.DefaultEditor)
			fmt.Printf("  Projects Root: %s\n", cfg.ProjectsRoot)
			fmt.Printf("  Scan Depth:    %d\n", cfg.ScanDepth)
			fmt.Printf("  Scan Filter:   %s\n\n", cfg.ScanFilter)
			return nil
		}

		if root != "" {
			cfg.ProjectsRoot = config.ExpandHome(root)
		}
		if editorOverride != "" {
			cfg.DefaultEditor = editorOverride
		}

		if err := config.Save(cfg, cfgFile); err != nil {
			return err
		}
		ui.Successf("✓ Configuration updated")
		return nil
	},
}

func init() {
	configCmd.Flags().Bool("show", false, "show current configuration")
	configCmd.Flags().String("projects-root", "", "set the projects root directory")
	rootCmd.AddCommand(configCmd)
}
