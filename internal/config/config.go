package config

// EditorConfig describes how to invoke one editor.
type EditorConfig struct {
	Command   string   `yaml:"command"`
	Args      []string `yaml:"args,omitempty"`
	ReuseFlag string   `yaml:"reuse_flag,omitempty"`
}

type Config struct {
	// Launching
	ProjectsRoot  string                  `yaml:"projects_root"`
	DefaultEditor string                  `yaml:"default_editor"`
	Editors       map[string]EditorConfig `yaml:"editors"`

	// Scanning
	ScanDepth  int      `yaml:"scan_depth"`
	ScanFilter string   `yaml:"scan_filter"`
	IgnoreDirs []string `yaml:"ignore_dirs"`
}

func NewConfig() *Config {
	return &Config{
		DefaultEditor: "code",
		Editors:       DefaultEditors(),
		ScanDepth:     1,
		ScanFilter:    "auto",
		IgnoreDirs: []string{
			"node_modules",
			"__pycache__",
			"target",
			"out",
			"bin",
			"build",
			"cmake-build-debug",
			"cmake-build-release",
			"Debug",
			"Release",
			"dist",
			"coverage",
			"logs",
			"tmp",
			"temp",
			"vendor",
		},
	}
}

// DefaultEditors is the built-in editor table. VSCode-family editors
// get a window-reuse flag; terminal editors don't need one.
func DefaultEditors() map[string]EditorConfig {
	vscodeLike := func(command string) EditorConfig {
		return EditorConfig{Command: command, ReuseFlag: "-r"}
	}
	plain := func(command string) EditorConfig {
		return EditorConfig{Command: command}
	}
	return map[string]EditorConfig{
		"code":     vscodeLike("code"),
		"cursor":   vscodeLike("cursor"),
		"vscodium": vscodeLike("vscodium"),
		"zed":      plain("zed"),
		"nvim":     plain("nvim"),
		"vim":      plain("vim"),
		"emacs":    plain("emacs"),
		"sublime":  plain("subl"),
	}
}

// Editor resolves an editor by name, falling back to treating the
// name itself as the command for editors not in the table.
func (c *Config) Editor(name string) EditorConfig {
	if ec, ok := c.Editors[name]; ok {
		return ec
	}
	return EditorConfig{Command: name}
}
