package scanner

import "github.com/pjcli/pj/internal/model"

// Outcome buckets walker candidates against a registry snapshot.
// Every candidate lands in exactly one bucket, in emission order.
type Outcome struct {
	New            []model.Project // name not in the registry
	NameCollisions []model.Project // name registered under a different path
	AlreadyPresent []model.Project // exact name+path match

	// DuplicateNames maps names shared by more than one candidate in
	// New to their occurrence count. Both candidates are retained;
	// resolution is the caller's decision.
	DuplicateNames map[string]int

	Visited  int
	Pruned   int
	Warnings []Warning
}

// Diff cross-references walker output against the registry snapshot.
// The snapshot is read-only input; Diff never mutates it.
func Diff(res *WalkResult, registry map[string]string) *Outcome {
	out := &Outcome{
		DuplicateNames: make(map[string]int),
		Visited:        res.Visited,
		Pruned:         res.Pruned,
		Warnings:       res.Warnings,
	}

	counts := make(map[string]int)
	for _, c := range res.Candidates {
		path, known := registry[c.Name]
		switch {
		case known && path == c.Path:
			out.AlreadyPresent = append(out.AlreadyPresent, c)
		case known:
			out.NameCollisions = append(out.NameCollisions, c)
		default:
			out.New = append(out.New, c)
			counts[c.Name]++
		}
	}

	for name, n := range counts {
		if n > 1 {
			out.DuplicateNames[name] = n
		}
	}
	return out
}
