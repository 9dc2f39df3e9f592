package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pjcli/pj/internal/model"
)

var (
	// ErrPathNotFound means the scan root does not exist.
	ErrPathNotFound = errors.New("scan root does not exist")
	// ErrNotADirectory means the scan root is not a directory.
	ErrNotADirectory = errors.New("scan root is not a directory")
)

// Warning records a non-fatal condition hit during a scan, e.g. an
// unreadable subdirectory or a skipped symlink.
type Warning struct {
	Path   string
	Reason string
}

// WalkResult is the raw walker output before registry dedup.
type WalkResult struct {
	Candidates []model.Project
	Visited    int // directories entered
	Pruned     int // subtrees cut off after a match
	Warnings   []Warning
}

// Walker performs a bounded-depth, depth-first traversal, classifying
// each directory it enters. Depth 1 means only the root's immediate
// children are eligible; the root itself is never a candidate.
type Walker struct {
	MaxDepth int
	Filter   FilterMode

	ignore map[string]struct{}
}

// NewWalker builds a walker. Directories whose name appears in ignore
// (build output, dependency caches) are never entered or classified.
func NewWalker(maxDepth int, filter FilterMode, ignore []string) *Walker {
	set := make(map[string]struct{}, len(ignore))
	for _, name := range ignore {
		set[name] = struct{}{}
	}
	return &Walker{MaxDepth: maxDepth, Filter: filter, ignore: set}
}

// Walk scans root. Only an invalid root is fatal; per-directory
// failures are downgraded to warnings and the traversal continues.
func (w *Walker) Walk(root string) (*WalkResult, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", root, ErrPathNotFound)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, ErrNotADirectory)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	res := &WalkResult{}
	w.descend(root, entries, 1, res)
	return res, nil
}

// descend walks the subdirectories of dir, each at the given depth.
func (w *Walker) descend(dir string, entries []fs.DirEntry, depth int, res *WalkResult) {
	if depth > w.MaxDepth {
		return
	}

	for _, e := range entries {
		name := e.Name()
		child := filepath.Join(dir, name)

		// Symlinks are never followed: cycles and double-counting.
		if e.Type()&fs.ModeSymlink != 0 {
			if target, err := os.Stat(child); err == nil && target.IsDir() {
				res.Warnings = append(res.Warnings, Warning{Path: child, Reason: "symlink skipped"})
			}
			continue
		}
		if !e.IsDir() {
			continue
		}
		// Hidden directories are never entered; .git is only ever
		// read as a marker in its parent's child listing.
		if strings.HasPrefix(name, ".") {
			continue
		}
		if _, skip := w.ignore[name]; skip {
			continue
		}

		w.visit(child, depth, res)
	}
}

func (w *Walker) visit(dir string, depth int, res *WalkResult) {
	res.Visited++

	entries, err := os.ReadDir(dir)
	if err != nil {
		res.Warnings = append(res.Warnings, Warning{Path: dir, Reason: "unreadable: " + err.Error()})
		return
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}

	if cand, ok := Classify(DirEntry{Path: dir, Children: names}, w.Filter); ok {
		res.Candidates = append(res.Candidates, cand)
		res.Pruned++
		// A matched project's internals are never sub-projects.
		return
	}

	w.descend(dir, entries, depth+1, res)
}
