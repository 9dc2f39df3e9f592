package model

import "strings"

// Ecosystem identifies the toolchain a project directory belongs to,
// as detected from marker files.
type Ecosystem string

const (
	Rust       Ecosystem = "Rust"
	JavaScript Ecosystem = "JavaScript"
	TypeScript Ecosystem = "TypeScript"
	Python     Ecosystem = "Python"
	Go         Ecosystem = "Go"
	Java       Ecosystem = "Java"
	CSharp     Ecosystem = "C#"
	Cpp        Ecosystem = "C/C++"
	Ruby       Ecosystem = "Ruby"
	PHP        Ecosystem = "PHP"
	Git        Ecosystem = "Git"
)

// Project is a directory known to (or discovered for) the registry.
type Project struct {
	Name string      // Derived from the final path segment
	Path string      // Absolute path to the project root
	Tags []Ecosystem // Detected ecosystems, in catalog order (empty if none)
}

// DisplayName renders the project name with its detected ecosystems,
// e.g. "backend (Rust, Git)". Tag-less projects show as "(Unknown)".
func (p Project) DisplayName() string {
	if len(p.Tags) == 0 {
		return p.Name + " (Unknown)"
	}
	tags := make([]string, len(p.Tags))
	for i, t := range p.Tags {
		tags[i] = string(t)
	}
	return p.Name + " (" + strings.Join(tags, ", ") + ")"
}
