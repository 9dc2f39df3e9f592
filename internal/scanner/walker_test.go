package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/pjcli/pj/internal/model"
)

func mkProject(t *testing.T, dir string, marker string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, marker), []byte{}, 0644); err != nil {
		t.Fatal(err)
	}
}

func defaultIgnore() []string {
	return []string{"node_modules", "target", "build", "dist"}
}

func TestWalk_FindsMarkedChild(t *testing.T) {
	tmpDir := t.TempDir()
	mkProject(t, filepath.Join(tmpDir, "foo"), "Cargo.toml")

	res, err := NewWalker(1, FilterAuto, defaultIgnore()).Walk(tmpDir)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	if len(res.Candidates) != 1 {
		t.Fatalf("found %d candidates, want 1", len(res.Candidates))
	}
	c := res.Candidates[0]
	if c.Name != "foo" {
		t.Errorf("Name = %q, want %q", c.Name, "foo")
	}
	if c.Path != filepath.Join(tmpDir, "foo") {
		t.Errorf("Path = %q, want %q", c.Path, filepath.Join(tmpDir, "foo"))
	}
	if len(c.Tags) != 1 || c.Tags[0] != model.Rust {
		t.Errorf("Tags = %v, want [Rust]", c.Tags)
	}
	if res.Pruned != 1 {
		t.Errorf("Pruned = %d, want 1", res.Pruned)
	}
}

func TestWalk_RespectsDepthBound(t *testing.T) {
	tmpDir := t.TempDir()
	// Marker two levels down; foo itself has no marker.
	mkProject(t, filepath.Join(tmpDir, "foo", "bar"), "package.json")

	res, err := NewWalker(1, FilterAuto, defaultIgnore()).Walk(tmpDir)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if len(res.Candidates) != 0 {
		t.Errorf("found %d candidates at depth 1, want 0", len(res.Candidates))
	}

	res, err = NewWalker(2, FilterAuto, defaultIgnore()).Walk(tmpDir)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if len(res.Candidates) != 1 || res.Candidates[0].Name != "bar" {
		t.Errorf("candidates at depth 2 = %v, want [bar]", res.Candidates)
	}
}

func TestWalk_DepthIsMonotonic(t *testing.T) {
	tmpDir := t.TempDir()
	mkProject(t, filepath.Join(tmpDir, "shallow"), "go.mod")
	mkProject(t, filepath.Join(tmpDir, "nested", "deep"), "Cargo.toml")

	shallow, err := NewWalker(1, FilterAuto, defaultIgnore()).Walk(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	deep, err := NewWalker(3, FilterAuto, defaultIgnore()).Walk(tmpDir)
	if err != nil {
		t.Fatal(err)
	}

	// Raising the depth bound only adds candidates.
	for _, c := range shallow.Candidates {
		found := false
		for _, d := range deep.Candidates {
			if d.Path == c.Path {
				found = true
			}
		}
		if !found {
			t.Errorf("candidate %q lost when depth increased", c.Path)
		}
	}
	if len(deep.Candidates) != 2 {
		t.Errorf("found %d candidates at depth 3, want 2", len(deep.Candidates))
	}
}

func TestWalk_PrunesMatchedSubtree(t *testing.T) {
	tmpDir := t.TempDir()
	// A project's internals must never surface as sub-projects.
	app := filepath.Join(tmpDir, "app")
	mkProject(t, app, "package.json")
	mkProject(t, filepath.Join(app, "packages", "ui"), "package.json")

	res, err := NewWalker(5, FilterAuto, defaultIgnore()).Walk(tmpDir)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	if len(res.Candidates) != 1 || res.Candidates[0].Path != app {
		t.Errorf("candidates = %v, want only %q", res.Candidates, app)
	}
}

func TestWalk_RootItselfIsNotACandidate(t *testing.T) {
	tmpDir := t.TempDir()
	// Marker on the root: scanning looks for projects *inside* it.
	if err := os.WriteFile(filepath.Join(tmpDir, "go.mod"), []byte{}, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(tmpDir, ".git"), 0755); err != nil {
		t.Fatal(err)
	}

	res, err := NewWalker(1, FilterAuto, defaultIgnore()).Walk(tmpDir)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if len(res.Candidates) != 0 {
		t.Errorf("found %d candidates, want 0", len(res.Candidates))
	}
}

func TestWalk_GitOnlySubdirIsClassified(t *testing.T) {
	tmpDir := t.TempDir()
	legacy := filepath.Join(tmpDir, "legacy")
	if err := os.MkdirAll(filepath.Join(legacy, ".git"), 0755); err != nil {
		t.Fatal(err)
	}

	res, err := NewWalker(1, FilterAuto, defaultIgnore()).Walk(tmpDir)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if len(res.Candidates) != 1 {
		t.Fatalf("found %d candidates, want 1", len(res.Candidates))
	}
	if got := res.Candidates[0].Tags; len(got) != 1 || got[0] != model.Git {
		t.Errorf("Tags = %v, want [Git]", got)
	}
}

func TestWalk_SkipsHiddenDirs(t *testing.T) {
	tmpDir := t.TempDir()
	mkProject(t, filepath.Join(tmpDir, ".config", "tool"), "go.mod")

	res, err := NewWalker(3, FilterAuto, defaultIgnore()).Walk(tmpDir)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if len(res.Candidates) != 0 {
		t.Errorf("found %d candidates under hidden dir, want 0", len(res.Candidates))
	}
}

func TestWalk_SkipsIgnoredDirs(t *testing.T) {
	tmpDir := t.TempDir()
	mkProject(t, filepath.Join(tmpDir, "node_modules", "left-pad"), "package.json")
	mkProject(t, filepath.Join(tmpDir, "real"), "package.json")

	res, err := NewWalker(3, FilterAuto, defaultIgnore()).Walk(tmpDir)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if len(res.Candidates) != 1 || res.Candidates[0].Name != "real" {
		t.Errorf("candidates = %v, want [real]", res.Candidates)
	}
}

func TestWalk_NeverFollowsSymlinks(t *testing.T) {
	tmpDir := t.TempDir()
	mkProject(t, filepath.Join(tmpDir, "actual"), "Cargo.toml")
	if err := os.Symlink(filepath.Join(tmpDir, "actual"), filepath.Join(tmpDir, "linked")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	res, err := NewWalker(2, FilterAuto, defaultIgnore()).Walk(tmpDir)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	if len(res.Candidates) != 1 || res.Candidates[0].Name != "actual" {
		t.Errorf("candidates = %v, want [actual]", res.Candidates)
	}
	found := false
	for _, w := range res.Warnings {
		if w.Reason == "symlink skipped" {
			found = true
		}
	}
	if !found {
		t.Error("expected a symlink-skipped warning")
	}
}

func TestWalk_SiblingsInLexicalOrder(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		mkProject(t, filepath.Join(tmpDir, name), "go.mod")
	}

	res, err := NewWalker(1, FilterAuto, defaultIgnore()).Walk(tmpDir)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	want := []string{"alpha", "mid", "zeta"}
	if len(res.Candidates) != len(want) {
		t.Fatalf("found %d candidates, want %d", len(res.Candidates), len(want))
	}
	for i, name := range want {
		if res.Candidates[i].Name != name {
			t.Errorf("candidates[%d] = %q, want %q", i, res.Candidates[i].Name, name)
		}
	}
}

func TestWalk_FilterAllIncludesUnmarkedDirs(t *testing.T) {
	tmpDir := t.TempDir()
	mkProject(t, filepath.Join(tmpDir, "proj"), "Cargo.toml")
	if err := os.MkdirAll(filepath.Join(tmpDir, "random"), 0755); err != nil {
		t.Fatal(err)
	}

	res, err := NewWalker(1, FilterAll, defaultIgnore()).Walk(tmpDir)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if len(res.Candidates) != 2 {
		t.Errorf("found %d candidates, want 2", len(res.Candidates))
	}
}

func TestWalk_VisitedCoversCandidates(t *testing.T) {
	tmpDir := t.TempDir()
	mkProject(t, filepath.Join(tmpDir, "a"), "go.mod")
	mkProject(t, filepath.Join(tmpDir, "b", "c"), "Gemfile")

	res, err := NewWalker(3, FilterAuto, defaultIgnore()).Walk(tmpDir)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if res.Visited < len(res.Candidates) {
		t.Errorf("Visited = %d < %d candidates", res.Visited, len(res.Candidates))
	}
	if res.Pruned != len(res.Candidates) {
		t.Errorf("Pruned = %d, want %d (one prune per match)", res.Pruned, len(res.Candidates))
	}
}

func TestWalk_UnreadableDirIsSkippedWithWarning(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission-based tests are unreliable on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission checks")
	}

	tmpDir := t.TempDir()
	mkProject(t, filepath.Join(tmpDir, "readable"), "go.mod")

	locked := filepath.Join(tmpDir, "locked")
	if err := os.MkdirAll(locked, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatalf("failed to chmod: %v", err)
	}
	// Restore permissions so t.TempDir() cleanup can remove the directory
	t.Cleanup(func() {
		_ = os.Chmod(locked, 0o755)
	})

	res, err := NewWalker(2, FilterAuto, defaultIgnore()).Walk(tmpDir)
	if err != nil {
		t.Fatalf("Walk() error = %v, want nil (per-directory failures are non-fatal)", err)
	}

	if len(res.Candidates) != 1 || res.Candidates[0].Name != "readable" {
		t.Errorf("candidates = %v, want [readable]", res.Candidates)
	}

	found := false
	for _, w := range res.Warnings {
		if w.Path == locked {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v, want one for %q", res.Warnings, locked)
	}
}

func TestWalk_InvalidRoot(t *testing.T) {
	_, err := NewWalker(1, FilterAuto, nil).Walk(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, ErrPathNotFound) {
		t.Errorf("Walk() error = %v, want ErrPathNotFound", err)
	}

	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = NewWalker(1, FilterAuto, nil).Walk(file)
	if !errors.Is(err, ErrNotADirectory) {
		t.Errorf("Walk() error = %v, want ErrNotADirectory", err)
	}
}
