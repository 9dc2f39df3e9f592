// Package registry holds the persisted name→path mapping of known
// projects.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when a named project is not registered.
var ErrNotFound = errors.New("project not found")

// Registry is the in-memory name→path mapping. Names are unique by
// construction. Scans treat it as a read-only snapshot.
type Registry struct {
	projects map[string]string
}

func New() *Registry {
	return &Registry{projects: make(map[string]string)}
}

// Get returns the registered path for name.
func (r *Registry) Get(name string) (string, bool) {
	path, ok := r.projects[name]
	return path, ok
}

// Set registers or overwrites a project.
func (r *Registry) Set(name, path string) {
	r.projects[name] = path
}

// Delete removes a project, reporting whether it existed.
func (r *Registry) Delete(name string) bool {
	if _, ok := r.projects[name]; !ok {
		return false
	}
	delete(r.projects, name)
	return true
}

// Rename moves a project's path to a new name.
func (r *Registry) Rename(oldName, newName string) error {
	path, ok := r.projects[oldName]
	if !ok {
		return fmt.Errorf("%q: %w", oldName, ErrNotFound)
	}
	if _, taken := r.projects[newName]; taken {
		return fmt.Errorf("project %q already exists", newName)
	}
	delete(r.projects, oldName)
	r.projects[newName] = path
	return nil
}

// Clear removes every project.
func (r *Registry) Clear() {
	r.projects = make(map[string]string)
}

func (r *Registry) Len() int {
	return len(r.projects)
}

// Names returns all project names sorted case-insensitively.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.projects))
	for name := range r.projects {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}

// Snapshot returns a copy of the mapping for read-only use, e.g. as
// scan input. Mutating the copy does not affect the registry.
func (r *Registry) Snapshot() map[string]string {
	snap := make(map[string]string, len(r.projects))
	for name, path := range r.projects {
		snap[name] = path
	}
	return snap
}
