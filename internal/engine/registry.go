package engine

import (
	"sort"
	"sync"
)

// Registry maps surface ids to instances. The map itself is locked, but the
// lifecycle around it is not atomic: tearing an instance down and removing it
// are separate steps, so each id should have a single writer at a time.
type Registry struct {
	mu        sync.Mutex
	instances map[string]*Instance
	factory   func(id string) *Instance
}

func NewRegistry(factory func(id string) *Instance) *Registry {
	return &Registry{
		instances: make(map[string]*Instance),
		factory:   factory,
	}
}

// GetOrCreate returns the instance for id, building it on first use.
func (r *Registry) GetOrCreate(id string) (inst *Instance, created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if inst, ok := r.instances[id]; ok {
		return inst, false
	}
	inst = r.factory(id)
	r.instances[id] = inst
	return inst, true
}

func (r *Registry) Lookup(id string) (*Instance, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inst, ok := r.instances[id]
	return inst, ok
}

// Remove forgets id. The caller has already released the instance.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.instances, id)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.instances)
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.instances))
	for id := range r.instances {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
