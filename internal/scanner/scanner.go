// Package scanner implements project discovery: a bounded-depth
// filesystem walk that classifies directories by marker files and
// dedups the result against the existing registry.
package scanner

// Scan walks root at the given depth and filter mode, then diffs the
// discovered candidates against the registry snapshot. Scanning is
// synchronous and single-threaded; one scan runs per invocation.
func Scan(root string, maxDepth int, filter FilterMode, ignore []string, registry map[string]string) (*Outcome, error) {
	w := NewWalker(maxDepth, filter, ignore)
	res, err := w.Walk(root)
	if err != nil {
		return nil, err
	}
	return Diff(res, registry), nil
}
