package types

type Direction int

const (
	DirUp   Direction = 1
	DirDown Direction = -1
	DirNone Direction = 0
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "none"
}

// DirectionTo returns the direction of travel from one floor to another.
func DirectionTo(from, to int) Direction {
	switch {
	case to > from:
		return DirUp
	case to < from:
		return DirDown
	}
	return DirNone
}

type Status int

const (
	Idle Status = iota
	Moving
	Waiting
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Moving:
		return "moving"
	case Waiting:
		return "waiting"
	}
	return "unknown"
}

// Request is a call from CallerFloor toward DestinationFloor.
type Request struct {
	CallerFloor      int
	DestinationFloor int
}

type Outcome int

const (
	OutcomePickup Outcome = iota
	OutcomeDirect
	OutcomeAlreadyThere
)

func (o Outcome) String() string {
	switch o {
	case OutcomePickup:
		return "pickup"
	case OutcomeDirect:
		return "direct"
	case OutcomeAlreadyThere:
		return "already_at_floor"
	}
	return "unknown"
}

// Assignment is the result of a successful dispatch.
type Assignment struct {
	CarID   int
	Outcome Outcome
	Request Request
}
