package tui

import (
	"sort"
	"sync"
	"time"
)

// ViewerInfo describes one connected SSH viewer.
type ViewerInfo struct {
	ID      string
	User    string
	Remote  string
	Started time.Time
}

// ViewerRegistry tracks active SSH viewers.
// Thread-safe for concurrent access.
type ViewerRegistry struct {
	mu      sync.RWMutex
	viewers map[string]ViewerInfo
}

// NewViewerRegistry creates a new viewer registry.
func NewViewerRegistry() *ViewerRegistry {
	return &ViewerRegistry{
		viewers: make(map[string]ViewerInfo),
	}
}

// Register adds a viewer to the registry and returns the new count.
func (r *ViewerRegistry) Register(v ViewerInfo) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.viewers[v.ID] = v
	return len(r.viewers)
}

// Unregister removes a viewer from the registry and returns the new count.
func (r *ViewerRegistry) Unregister(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.viewers, id)
	return len(r.viewers)
}

// Get retrieves a viewer by ID.
func (r *ViewerRegistry) Get(id string) (ViewerInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.viewers[id]
	return v, ok
}

// Count returns the number of registered viewers.
func (r *ViewerRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.viewers)
}

// List returns all viewers, oldest first.
func (r *ViewerRegistry) List() []ViewerInfo {
	r.mu.RLock()
	list := make([]ViewerInfo, 0, len(r.viewers))
	for _, v := range r.viewers {
		list = append(list, v)
	}
	r.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].Started.Equal(list[j].Started) {
			return list[i].ID < list[j].ID
		}
		return list[i].Started.Before(list[j].Started)
	})
	return list
}
