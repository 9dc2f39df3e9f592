// Package cmd contains all CLI commands for pj.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/pjcli/pj/internal/config"
	"github.com/pjcli/pj/internal/editor"
	"github.com/pjcli/pj/internal/registry"
	"github.com/pjcli/pj/internal/ui"
)

// Version is set via -ldflags at build time.
var Version = "dev"

var (
	cfgFile        string
	cfg            *config.Config
	reuseWindow    bool
	editorOverride string
)

var rootCmd = &cobra.Command{
	Use:   "pj [project]",
	Short: "Launch projects instantly by name",
	Long: `pj is a quick project launcher: it keeps a registry of project
directories and opens them in your favorite editor by name, without
navigating through the filesystem.

Use 'pj scan' to discover projects under your projects root and add
them in bulk.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return openProject(args[0])
	},
}

func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/pj/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&reuseWindow, "reuse", "r", false, "reuse an existing editor window")
	rootCmd.PersistentFlags().StringVarP(&editorOverride, "editor", "e", "", "editor to use (overrides default)")
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = config.DefaultConfigPath()
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		ui.Errorf("Error loading config: %v", err)
		os.Exit(1)
	}
}

func editorName() string {
	if editorOverride != "" {
		return editorOverride
	}
	return cfg.DefaultEditor
}

// openProject launches the registered project in the chosen editor.
func openProject(name string) error {
	reg, err := registry.Load(registry.DefaultDataPath())
	if err != nil {
		return err
	}

	path, ok := reg.Get(name)
	if !ok {
		ui.Dimf("Tip: use 'pj list' to see all projects or 'pj add' to add a new one")
		return fmt.Errorf("project %q not found", name)
	}

	if err := editor.Launch(cfg.Editor(editorName()), path, reuseWindow); err != nil {
		return err
	}
	ui.Successf("Opening '%s' in %s", name, editorName())
	return nil
}

// resolvePath turns user input into an absolute path, resolving ~ and
// symlinks when the target exists.
func resolvePath(input string) (string, error) {
	abs, err := filepath.Abs(config.ExpandHome(input))
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}
