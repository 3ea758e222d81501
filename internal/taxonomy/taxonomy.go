// Package taxonomy defines the catalog of recognized skill names.
//
// The taxonomy is process-wide read-only state: it is built once at startup
// and shared by reference across concurrent analyses.
package taxonomy

import "strings"

// commonSkills is the built-in skill catalog. Entries are canonical
// lower-case names; insertion order is preserved for deterministic iteration.
var commonSkills = []string{
	"java", "python", "c++", "c#", "javascript", "react", "angular", "spring", "spring boot", "hibernate",
	"sql", "postgresql", "mysql", "nosql", "mongodb", "docker", "kubernetes", "aws", "azure", "gcp",
	"rest api", "graphql", "microservices", "git", "linux", "data structures", "algorithms",
	"machine learning", "deep learning", "nlp", "pytorch", "tensorflow", "scikit-learn", "pandas",
	"numpy", "spark", "hadoop", "jenkins", "ci/cd", "prometheus", "grafana", "ansible", "terraform",
}

// Taxonomy is an ordered, duplicate-free set of canonical skill names.
type Taxonomy struct {
	names []string
	index map[string]struct{}
}

// New builds a Taxonomy from a list of skill names. Names are lower-cased
// and trimmed; duplicates and empty entries are dropped, keeping the first
// occurrence's position.
func New(names []string) *Taxonomy {
	t := &Taxonomy{
		names: make([]string, 0, len(names)),
		index: make(map[string]struct{}, len(names)),
	}
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, seen := t.index[name]; seen {
			continue
		}
		t.names = append(t.names, name)
		t.index[name] = struct{}{}
	}
	return t
}

// Default returns a Taxonomy built from the built-in skill catalog.
func Default() *Taxonomy {
	return New(commonSkills)
}

// Contains reports whether name is a canonical skill in the taxonomy.
func (t *Taxonomy) Contains(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Names returns the canonical skill names in insertion order. The returned
// slice is a copy; the taxonomy itself is never mutated after construction.
func (t *Taxonomy) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Len returns the number of skills in the taxonomy.
func (t *Taxonomy) Len() int {
	return len(t.names)
}
