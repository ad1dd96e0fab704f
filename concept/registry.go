package concept

import "strings"

// Registry maps Concept names to Concepts for the duration of one
// analysis. Construct a fresh Registry per run rather than sharing one
// across analyses: ids are dense and assigned in first-occurrence order,
// so reusing a Registry would leak one run's ordering into the next.
//
// Registry is not safe for concurrent use; the whole analysis pipeline
// runs single-threaded.
type Registry struct {
	byName map[string]Concept
	all    []Concept // first-occurrence order, dense ids
}

// NewRegistry returns an empty, ready-to-use Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Concept)}
}

// GetOrCreate returns the Concept for name, creating it with the next
// dense id if this is the first time name has been seen. Surrounding
// whitespace in name is not stripped here; callers (matrixadapter) are
// responsible for trimming.
func (r *Registry) GetOrCreate(name string) (Concept, error) {
	if name == "" {
		return Concept{}, ErrEmptyName
	}
	if c, ok := r.byName[name]; ok {
		return c, nil
	}
	c := Concept{ID: ID(len(r.all)), Name: name}
	r.byName[name] = c
	r.all = append(r.all, c)
	return c, nil
}

// Lookup returns the Concept for name and whether it has been created.
func (r *Registry) Lookup(name string) (Concept, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// All returns every Concept ever created by this Registry, in
// first-occurrence (creation) order. The returned slice is owned by the
// caller; the Registry keeps its own backing slice untouched.
func (r *Registry) All() []Concept {
	out := make([]Concept, len(r.all))
	copy(out, r.all)
	return out
}

// Len returns the number of distinct Concepts created so far.
func (r *Registry) Len() int { return len(r.all) }

// Clean trims surrounding whitespace the same way matrixadapter cell
// names are cleaned, exposed here so callers share one normalization
// rule instead of duplicating strings.TrimSpace at each call site.
func Clean(name string) string {
	return strings.TrimSpace(name)
}
