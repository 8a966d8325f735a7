// Package catalog implements the registry of teaching units. Units are
// registered once at catalog-build time and looked up by id or topic; the
// catalog preserves registration order both globally and within a topic.
package catalog

import (
	"fmt"
	"iter"
	"sync"

	"github.com/hupe1980/exemplar/core"
)

// Catalog is a registry of units keyed by id. It is safe for concurrent use,
// though the expected pattern is to register everything up front and only
// read afterwards. Units are stored by value so callers cannot mutate a
// registered unit (in particular its expectation) through the catalog.
type Catalog struct {
	mu     sync.RWMutex
	units  map[string]core.Unit
	order  []string
	topics []string
}

// New constructs an empty catalog.
func New() *Catalog {
	return &Catalog{units: make(map[string]core.Unit)}
}

// Register adds a unit to the catalog. Registering an id twice fails with
// ErrDuplicateID; units without an id or body fail with ErrInvalidUnit.
func (c *Catalog) Register(u core.Unit) error {
	if u.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidUnit)
	}
	if u.Body == nil {
		return fmt.Errorf("%w: unit %q has no body", ErrInvalidUnit, u.ID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.units[u.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateID, u.ID)
	}

	c.units[u.ID] = u
	c.order = append(c.order, u.ID)
	if !c.hasTopicLocked(u.Topic) {
		c.topics = append(c.topics, u.Topic)
	}

	return nil
}

// MustRegister registers a unit and panics on failure. Intended for static
// catalog definitions where a registration error is a programming mistake.
func (c *Catalog) MustRegister(u core.Unit) {
	if err := c.Register(u); err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
}

// Get returns the unit registered under id or ErrNotFound.
func (c *Catalog) Get(id string) (core.Unit, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	u, ok := c.units[id]
	if !ok {
		return core.Unit{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return u, nil
}

// Len returns the number of registered units.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// All returns a restartable sequence over every registered unit in
// registration order. Each call to the returned iterator sees a consistent
// snapshot of the catalog.
func (c *Catalog) All() iter.Seq[core.Unit] {
	return func(yield func(core.Unit) bool) {
		for _, u := range c.snapshot() {
			if !yield(u) {
				return
			}
		}
	}
}

// ByTopic returns a restartable sequence over the units of one topic,
// preserving registration order. Iterating twice yields the same sequence.
func (c *Catalog) ByTopic(topic string) iter.Seq[core.Unit] {
	return func(yield func(core.Unit) bool) {
		for _, u := range c.snapshot() {
			if u.Topic != topic {
				continue
			}
			if !yield(u) {
				return
			}
		}
	}
}

// Topics returns the topic labels in first-registration order.
func (c *Catalog) Topics() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, len(c.topics))
	copy(out, c.topics)
	return out
}

// snapshot copies the current units in registration order so iteration does
// not hold the lock while yielding.
func (c *Catalog) snapshot() []core.Unit {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]core.Unit, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.units[id])
	}
	return out
}

func (c *Catalog) hasTopicLocked(topic string) bool {
	for _, t := range c.topics {
		if t == topic {
			return true
		}
	}
	return false
}
