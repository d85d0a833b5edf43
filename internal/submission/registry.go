package submission

// Registry is the set of distinct participants mentioned across a batch,
// kept in first-seen order.
type Registry struct {
	order []string
	seen  map[string]struct{}
}

// NewRegistry creates an empty participant registry.
func NewRegistry() *Registry {
	return &Registry{
		seen: make(map[string]struct{}),
	}
}

// CollectParticipants registers every member of every row, whatever the row's
// eventual disposition.
func CollectParticipants(rows []Row) *Registry {
	r := NewRegistry()
	for _, row := range rows {
		r.Add(row.Members...)
	}
	return r
}

// Add registers ids, ignoring ones already present.
func (r *Registry) Add(ids ...string) {
	for _, id := range ids {
		if _, ok := r.seen[id]; ok {
			continue
		}
		r.seen[id] = struct{}{}
		r.order = append(r.order, id)
	}
}

// Has reports whether id was registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.seen[id]
	return ok
}

// Len returns the number of distinct participants.
func (r *Registry) Len() int {
	return len(r.order)
}

// Names returns the registered participants in first-seen order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
