package registry

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// DefaultDataPath returns the registry file location, following XDG.
func DefaultDataPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "pj", "projects.json")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "pj", "projects.json")
}

// Load reads the registry from path, returning an empty registry if
// the file doesn't exist yet.
func Load(path string) (*Registry, error) {
	r := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, &r.projects); err != nil {
		return nil, err
	}
	return r, nil
}

// Save writes the registry to path under an exclusive file lock so
// concurrent invocations cannot interleave writes.
func Save(r *Registry, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	fl := flock.New(path + ".lock")
	if err := fl.Lock(); err != nil {
		return err
	}
	defer func() { _ = fl.Unlock() }()

	data, err := json.MarshalIndent(r.projects, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
