package scanner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pjcli/pj/internal/model"
)

// FilterMode controls which visited directories qualify as candidates.
type FilterMode int

const (
	// FilterAuto accepts only directories with at least one marker match.
	FilterAuto FilterMode = iota
	// FilterAll accepts every visited directory regardless of markers.
	FilterAll
)

func (m FilterMode) String() string {
	if m == FilterAll {
		return "all"
	}
	return "auto"
}

// ParseFilterMode parses the CLI spelling of a filter mode.
func ParseFilterMode(s string) (FilterMode, error) {
	switch strings.ToLower(s) {
	case "auto":
		return FilterAuto, nil
	case "all":
		return FilterAll, nil
	default:
		return FilterAuto, fmt.Errorf("invalid filter mode %q (use 'auto' or 'all')", s)
	}
}

// DirEntry is a directory plus the names of its immediate children.
// Classification never needs to look deeper than one level.
type DirEntry struct {
	Path     string
	Children []string
}

// Classify decides whether dir qualifies as a project. The candidate
// name is the final path segment, unnormalized.
func Classify(dir DirEntry, mode FilterMode) (model.Project, bool) {
	tags := TagsFor(dir.Children)
	if mode == FilterAuto && len(tags) == 0 {
		return model.Project{}, false
	}
	return model.Project{
		Name: filepath.Base(dir.Path),
		Path: dir.Path,
		Tags: tags,
	}, true
}
