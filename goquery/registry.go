package goquery

import "github.com/fwojciec/kcparse"

// Registry maps carousel kinds to extraction profiles. It starts out with
// the built-in profile table; registered profiles replace the built-in one
// for their kind. Unknown kinds resolve to the default profile.
type Registry struct {
	profiles map[kcparse.Kind]kcparse.Profile
}

// NewRegistry creates a Registry populated with the built-in profiles.
func NewRegistry() *Registry {
	r := &Registry{profiles: make(map[kcparse.Kind]kcparse.Profile)}
	for _, k := range kcparse.Kinds() {
		r.profiles[k] = kcparse.ProfileFor(k)
	}
	return r
}

// Get returns the profile for kind, or the default profile if none is
// registered.
func (r *Registry) Get(kind kcparse.Kind) kcparse.Profile {
	if p, ok := r.profiles[kind]; ok {
		return p
	}
	return r.profiles[kcparse.KindItems]
}

// Register adds or replaces the profile for p.Kind. An empty container
// selector falls back to DefaultContainerSelector.
func (r *Registry) Register(p kcparse.Profile) {
	if p.ContainerSelector == "" {
		p.ContainerSelector = DefaultContainerSelector
	}
	r.profiles[p.Kind] = p
}

// List returns the registered kinds in classification order, followed by
// any custom kinds.
func (r *Registry) List() []kcparse.Kind {
	kinds := kcparse.Kinds()
	known := make(map[kcparse.Kind]bool, len(kinds))
	for _, k := range kinds {
		known[k] = true
	}
	for k := range r.profiles {
		if !known[k] {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
