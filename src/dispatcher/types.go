package dispatcher

import "errors"

var (
	ErrNoAvailableCar = errors.New("no available car")
	ErrInvalidFloor   = errors.New("invalid floor")
)

// Params are the construction-time constants the dispatcher needs.
type Params struct {
	MaxFloor            int
	FullLoad            int
	ResumeToDestination bool
}
