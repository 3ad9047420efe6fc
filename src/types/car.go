package types

import (
	"errors"
	"fmt"
)

// NoFloor marks an absent target or final destination. Floors are 1-based.
const NoFloor = 0

var ErrInvariant = errors.New("car invariant violated")

// Car is the state of one elevator car.
type Car struct {
	ID          int
	Floor       int
	TargetFloor int
	Status      Status
	Dir         Direction
	Occupancy   int
	// FinalDestination is only set when cars resume toward the caller's destination after dwell.
	FinalDestination int
}

func NewCar(id int) Car {
	return Car{
		ID:          id,
		Floor:       1,
		TargetFloor: NoFloor,
		Status:      Idle,
		Dir:         DirNone,
	}
}

func (c Car) HasTarget() bool {
	return c.TargetFloor != NoFloor
}

// Validate checks the car against the registry invariants.
func (c Car) Validate(maxFloor, fullLoad int) error {
	if c.Floor < 1 || c.Floor > maxFloor {
		return fmt.Errorf("%w: car %d floor %d outside [1, %d]", ErrInvariant, c.ID, c.Floor, maxFloor)
	}
	if c.HasTarget() && (c.TargetFloor < 1 || c.TargetFloor > maxFloor) {
		return fmt.Errorf("%w: car %d target %d outside [1, %d]", ErrInvariant, c.ID, c.TargetFloor, maxFloor)
	}
	if c.HasTarget() != (c.Status != Idle) {
		return fmt.Errorf("%w: car %d has target %d with status %s", ErrInvariant, c.ID, c.TargetFloor, c.Status)
	}
	if c.Status != Moving && c.Dir != DirNone {
		return fmt.Errorf("%w: car %d has direction %s with status %s", ErrInvariant, c.ID, c.Dir, c.Status)
	}
	if c.Status == Moving && c.Floor != c.TargetFloor && c.Dir != DirectionTo(c.Floor, c.TargetFloor) {
		return fmt.Errorf("%w: car %d heading %s from %d to %d", ErrInvariant, c.ID, c.Dir, c.Floor, c.TargetFloor)
	}
	if c.Occupancy != 0 && c.Occupancy != fullLoad {
		return fmt.Errorf("%w: car %d occupancy %d", ErrInvariant, c.ID, c.Occupancy)
	}
	return nil
}
