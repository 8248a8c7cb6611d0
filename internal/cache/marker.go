// Package cache holds the live attack markers on the battlefield.
package cache

import (
	"sync"

	"github.com/queuecommander/arena/pkg/core"
)

// MarkerCache maps marker IDs to the attack markers currently on the
// battlefield. List returns markers in insertion order.
type MarkerCache struct {
	mu      sync.RWMutex
	markers map[string]core.AttackMarker
	order   []string
}

// NewMarkerCache creates a new MarkerCache
func NewMarkerCache() *MarkerCache {
	return &MarkerCache{
		markers: make(map[string]core.AttackMarker),
	}
}

// Get retrieves a marker by ID
func (c *MarkerCache) Get(id string) (core.AttackMarker, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.markers[id]
	return m, ok
}

// Add stores a marker. Re-adding an existing ID replaces it in place.
func (c *MarkerCache) Add(m core.AttackMarker) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.markers[m.ID]; !exists {
		c.order = append(c.order, m.ID)
	}
	c.markers[m.ID] = m
}

// Delete removes a marker by ID. Returns false if it was not present.
func (c *MarkerCache) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.markers[id]; !ok {
		return false
	}
	delete(c.markers, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// List returns a copy of all markers, oldest first
func (c *MarkerCache) List() []core.AttackMarker {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]core.AttackMarker, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.markers[id])
	}
	return out
}

// Len returns the number of live markers
func (c *MarkerCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.markers)
}

// Reset clears all markers from the cache
func (c *MarkerCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.markers = make(map[string]core.AttackMarker)
	c.order = nil
}
