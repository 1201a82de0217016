// Package registry holds the in-memory block catalog and its read-only
// query layer.
//
// The catalog is built once at process start from a seed slice and passed
// by reference to every consumer. Register must only be called during
// startup: reads are unsynchronized and rely on the catalog being frozen
// before the first request is served.
package registry

// Registry is the process-lifetime block catalog. Keyed by slug;
// registration order is preserved for stable display, though callers must
// not rely on ordering for correctness.
type Registry struct {
	blocks map[string]BlockMeta
	order  []string
}

// New builds a registry from the given blocks. Later entries with a
// duplicate slug overwrite earlier ones.
func New(blocks ...BlockMeta) *Registry {
	r := &Registry{blocks: make(map[string]BlockMeta, len(blocks))}
	for _, b := range blocks {
		r.Register(b)
	}
	return r
}

// Register inserts or overwrites the entry keyed by slug. Last write wins;
// an overwrite keeps the slug's original position. Not safe for use after
// startup.
func (r *Registry) Register(b BlockMeta) {
	if _, exists := r.blocks[b.Slug]; !exists {
		r.order = append(r.order, b.Slug)
	}
	r.blocks[b.Slug] = b
}

// Get returns the block for a slug. The bool reports whether it exists;
// unknown slugs are an absent result, never an error.
func (r *Registry) Get(slug string) (BlockMeta, bool) {
	b, ok := r.blocks[slug]
	return b, ok
}

// Exists reports whether a slug is registered, published or not.
func (r *Registry) Exists(slug string) bool {
	_, ok := r.blocks[slug]
	return ok
}

// All returns every published block in registration order.
func (r *Registry) All() []BlockMeta {
	out := make([]BlockMeta, 0, len(r.order))
	for _, slug := range r.order {
		if b := r.blocks[slug]; b.IsPublished() {
			out = append(out, b)
		}
	}
	return out
}
