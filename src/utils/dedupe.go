package utils

import (
	"github.com/google/uuid"

	"elevbank/src/types"
)

// EventDeduper remembers the last capacity event IDs so a renderer shows each notification once.
// Not safe for concurrent use.
type EventDeduper struct {
	seen   map[uuid.UUID]bool
	recent []uuid.UUID
	next   int
}

func NewEventDeduper(capacity int) *EventDeduper {
	return &EventDeduper{
		seen:   make(map[uuid.UUID]bool, capacity),
		recent: make([]uuid.UUID, max(capacity, 1)),
	}
}

// Fresh reports whether event has not been seen among the remembered IDs, and records it.
//   - uses a circular buffer so memory stays bounded on long runs
func (d *EventDeduper) Fresh(event types.Event) bool {
	if d.seen[event.ID] {
		return false
	}
	if old := d.recent[d.next]; old != uuid.Nil {
		delete(d.seen, old)
	}
	d.recent[d.next] = event.ID
	d.seen[event.ID] = true
	d.next = (d.next + 1) % len(d.recent)
	return true
}
