package domain

import "github.com/google/uuid"

// Collection is a keyed container of log entries that preserves the order in
// which entries were added. Every search materializes a fresh Collection; it
// is never persisted and exclusively owns its entries.
type Collection struct {
	order []uuid.UUID
	byID  map[uuid.UUID]*LogEntry
}

// NewCollection returns an empty Collection.
func NewCollection() *Collection {
	return &Collection{byID: make(map[uuid.UUID]*LogEntry)}
}

// Add appends an entry. Adding an id that is already present replaces the
// stored entry without changing its position.
func (c *Collection) Add(e *LogEntry) {
	if _, ok := c.byID[e.ID]; !ok {
		c.order = append(c.order, e.ID)
	}
	c.byID[e.ID] = e
}

// Get returns the entry with the given id, or nil if absent.
func (c *Collection) Get(id uuid.UUID) *LogEntry {
	return c.byID[id]
}

// Len returns the number of entries.
func (c *Collection) Len() int {
	return len(c.order)
}

// Ordered returns the entries in insertion order.
func (c *Collection) Ordered() []*LogEntry {
	entries := make([]*LogEntry, len(c.order))
	for i, id := range c.order {
		entries[i] = c.byID[id]
	}
	return entries
}
