package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pjcli/pj/internal/model"
	"github.com/pjcli/pj/internal/registry"
	"github.com/pjcli/pj/internal/scanner"
	"github.com/pjcli/pj/internal/ui"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a directory tree for projects to add",
	Long: `Scan walks a directory tree (the configured projects root by
default), detects project directories by their marker files
(Cargo.toml, package.json, go.mod, .git, ...), and offers the new ones
for review before adding them to the registry.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntP("depth", "d", 0, "levels below the root to scan (default from config)")
	scanCmd.Flags().StringP("filter", "f", "", "filter mode: auto (marker-gated) or all (default from config)")
	scanCmd.Flags().Bool("no-review", false, "skip interactive review and add all new projects")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	rootArg := cfg.ProjectsRoot
	if len(args) == 1 {
		rootArg = args[0]
	}
	if rootArg == "" {
		return fmt.Errorf("no projects root configured; run 'pj init' or pass a path")
	}
	root, err := resolvePath(rootArg)
	if err != nil {
		return err
	}

	depth, _ := cmd.Flags().GetInt("depth")
	if depth <= 0 {
		depth = cfg.ScanDepth
	}
	filterArg, _ := cmd.Flags().GetString("filter")
	if filterArg == "" {
		filterArg = cfg.ScanFilter
	}
	filter, err := scanner.ParseFilterMode(filterArg)
	if err != nil {
		return err
	}

	dataPath := registry.DefaultDataPath()
	reg, err := registry.Load(dataPath)
	if err != nil {
		return err
	}

	ui.Infof("Scanning %s at depth %d (filter: %s)...", root, depth, filter)

	outcome, err := scanner.Scan(root, depth, filter, cfg.IgnoreDirs, reg.Snapshot())
	if err != nil {
		return err
	}

	for _, w := range outcome.Warnings {
		ui.Logger.Warn("skipped", "path", w.Path, "reason", w.Reason)
	}
	ui.Dimf("Visited %d directories (%d pruned)", outcome.Visited, outcome.Pruned)

	if n := len(outcome.AlreadyPresent); n > 0 {
		ui.Dimf("%d already registered", n)
	}
	for _, c := range outcome.NameCollisions {
		registered, _ := reg.Get(c.Name)
		ui.Warnf("⚠ '%s' found at %s but registered at %s; skipped (rename or remove to re-add)",
			c.Name, c.Path, registered)
	}

	if len(outcome.New) == 0 {
		ui.Infof("No new projects found")
		return nil
	}

	plural := "s"
	if len(outcome.New) == 1 {
		plural = ""
	}
	ui.Successf("✓ Found %d new project%s", len(outcome.New), plural)

	selected := outcome.New
	if noReview, _ := cmd.Flags().GetBool("no-review"); !noReview {
		var ok bool
		selected, ok, err = ui.ReviewCandidates(outcome.New, outcome.DuplicateNames)
		if err != nil {
			return err
		}
		if !ok {
			ui.Dimf("Scan cancelled")
			return nil
		}
	}

	if len(selected) == 0 {
		ui.Infof("No projects selected")
		return nil
	}

	added := commit(reg, selected)
	if err := registry.Save(reg, dataPath); err != nil {
		return err
	}

	plural = "s"
	if added == 1 {
		plural = ""
	}
	ui.Successf("✓ Added %d project%s", added, plural)
	return nil
}

// commit writes the accepted candidates into the registry. Duplicate
// names within one batch are committed first-wins; the rest are
// reported so nothing disappears silently.
func commit(reg *registry.Registry, selected []model.Project) int {
	added := 0
	batch := make(map[string]struct{}, len(selected))
	for _, p := range selected {
		if _, dup := batch[p.Name]; dup {
			ui.Warnf("⚠ Skipped %s: name '%s' already added in this scan", p.Path, p.Name)
			continue
		}
		batch[p.Name] = struct{}{}
		reg.Set(p.Name, p.Path)
		ui.Dimf("  + %s", p.DisplayName())
		added++
	}
	return added
}
