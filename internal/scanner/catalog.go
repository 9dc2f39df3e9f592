package scanner

import (
	"strings"

	"github.com/pjcli/pj/internal/model"
)

// MarkerRule maps an ecosystem to the file or directory names that
// signal it. Markers within a rule are OR-combined; rules across the
// catalog are evaluated independently, so a directory may match
// several ecosystems at once.
type MarkerRule struct {
	Tag     model.Ecosystem
	Markers []string
}

// Catalog is the ordered marker table. A marker starting with "*."
// matches any child name with that extension; everything else is an
// exact, case-sensitive name match.
var Catalog = []MarkerRule{
	{model.Rust, []string{"Cargo.toml"}},
	{model.JavaScript, []string{"package.json"}},
	{model.TypeScript, []string{"tsconfig.json", "deno.json"}},
	{model.Python, []string{"requirements.txt", "setup.py", "pyproject.toml", "Pipfile"}},
	{model.Go, []string{"go.mod"}},
	{model.Java, []string{"pom.xml", "build.gradle", "build.gradle.kts"}},
	{model.CSharp, []string{"*.csproj", "*.sln"}},
	{model.Cpp, []string{"CMakeLists.txt", "Makefile"}},
	{model.Ruby, []string{"Gemfile"}},
	{model.PHP, []string{"composer.json"}},
	{model.Git, []string{".git"}},
}

// TagsFor returns every ecosystem whose marker set intersects the
// given child names, in catalog order. Nil if nothing matches.
func TagsFor(children []string) []model.Ecosystem {
	set := make(map[string]struct{}, len(children))
	for _, c := range children {
		set[c] = struct{}{}
	}

	var tags []model.Ecosystem
	for _, rule := range Catalog {
		if rule.matches(set, children) {
			tags = append(tags, rule.Tag)
		}
	}
	return tags
}

func (r MarkerRule) matches(set map[string]struct{}, children []string) bool {
	for _, m := range r.Markers {
		if ext, ok := strings.CutPrefix(m, "*"); ok {
			for _, c := range children {
				if strings.HasSuffix(c, ext) {
					return true
				}
			}
			continue
		}
		if _, ok := set[m]; ok {
			return true
		}
	}
	return false
}
