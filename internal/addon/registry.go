package addon

// Constructor builds a Handler. Construction must be cheap and side effect
// free; all wiring happens in Register.
type Constructor func() Handler

// Registry maps addon slugs to constructors. The set of registrable addons
// is fixed at compile time; the catalog decides which of them load.
type Registry struct {
	constructors map[string]Constructor
}

func NewRegistry() *Registry {
	return &Registry{
		constructors: make(map[string]Constructor),
	}
}

func (r *Registry) Register(slug string, ctor Constructor) {
	r.constructors[slug] = ctor
}

func (r *Registry) Lookup(slug string) (Constructor, bool) {
	ctor, found := r.constructors[slug]
	return ctor, found
}

func (r *Registry) Slugs() []string {
	slugs := make([]string, 0, len(r.constructors))
	for slug := range r.constructors {
		slugs = append(slugs, slug)
	}
	return slugs
}
