package types

import (
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventPickupAssigned     EventKind = "pickup_assigned"
	EventDirectAssigned     EventKind = "direct_assigned"
	EventAlreadyAtFloor     EventKind = "already_at_floor"
	EventNoCarAvailable     EventKind = "no_car_available"
	EventCallerFloorChanged EventKind = "caller_floor_changed"
	EventArrived            EventKind = "arrived"
	EventEnRoute            EventKind = "en_route"
	EventWaiting            EventKind = "waiting"
	EventDeparted           EventKind = "departed"
)

// Event is a notification for the presentation layer. It never feeds back into scheduling.
type Event struct {
	ID     uuid.UUID
	Kind   EventKind
	CarID  int // -1 when no car is involved
	Floor  int
	Target int
	At     time.Time
}

func NewEvent(kind EventKind, carID, floor, target int) Event {
	return Event{
		ID:     uuid.New(),
		Kind:   kind,
		CarID:  carID,
		Floor:  floor,
		Target: target,
		At:     time.Now(),
	}
}

// Progress is what a single tick did to a car.
type Progress struct {
	CarID int
	Kind  EventKind
	Floor int
	// Target is the floor the car is heading to, or the floor it arrived at.
	Target int
}
