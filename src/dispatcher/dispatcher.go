package dispatcher

import (
	"fmt"
	"log/slog"

	"elevbank/src/elev"
	"elevbank/src/types"
)

// Assign picks the closest idle car for req and commits it to a trip.
//   - rejects floors outside [1, MaxFloor] before touching the registry
//   - car already at the caller floor with the same destination: no change, OutcomeAlreadyThere
//   - car already at the caller floor: direct leg to the destination with a full load
//   - otherwise: empty pickup leg to the caller floor
//
// The registry is left unchanged on every error.
func Assign(registry *elev.Registry, req types.Request, params Params) (types.Assignment, error) {
	if err := ValidateFloor(req.CallerFloor, params.MaxFloor); err != nil {
		return types.Assignment{}, fmt.Errorf("caller floor: %w", err)
	}
	if err := ValidateFloor(req.DestinationFloor, params.MaxFloor); err != nil {
		return types.Assignment{}, fmt.Errorf("destination floor: %w", err)
	}

	assignee := findClosestIdle(registry.Snapshot(), req.CallerFloor)
	if assignee == -1 {
		slog.Warn("No idle car for request", "callerFloor", req.CallerFloor, "destination", req.DestinationFloor)
		return types.Assignment{}, ErrNoAvailableCar
	}
	car, err := registry.Car(assignee)
	if err != nil {
		return types.Assignment{}, err
	}

	assignment := types.Assignment{CarID: assignee, Request: req}
	switch {
	case car.Floor == req.CallerFloor && req.CallerFloor == req.DestinationFloor:
		assignment.Outcome = types.OutcomeAlreadyThere

	case car.Floor == req.CallerFloor:
		car.TargetFloor = req.DestinationFloor
		car.Status = types.Moving
		car.Dir = types.DirectionTo(req.CallerFloor, req.DestinationFloor)
		car.Occupancy = params.FullLoad
		car.FinalDestination = types.NoFloor
		assignment.Outcome = types.OutcomeDirect

	default:
		car.TargetFloor = req.CallerFloor
		car.Status = types.Moving
		car.Dir = types.DirectionTo(car.Floor, req.CallerFloor)
		car.Occupancy = 0
		car.FinalDestination = types.NoFloor
		if params.ResumeToDestination {
			car.FinalDestination = req.DestinationFloor
		}
		assignment.Outcome = types.OutcomePickup
	}

	slog.Info("Assigned car",
		"car", assignee,
		"outcome", assignment.Outcome,
		"floor", car.Floor,
		"target", car.TargetFloor,
		"dir", car.Dir)
	return assignment, nil
}

func ValidateFloor(floor, maxFloor int) error {
	if floor < 1 || floor > maxFloor {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidFloor, floor, maxFloor)
	}
	return nil
}

// ClampFloor bounds floor to [1, maxFloor].
func ClampFloor(floor, maxFloor int) int {
	return min(max(floor, 1), maxFloor)
}
