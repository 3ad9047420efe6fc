package executor

import (
	"elevbank/src/types"
)

// StepCar advances one car by one tick and reports what happened.
//   - idle and waiting cars are left alone; the dwell timer owns the waiting transition
//   - a moving car already at its target arrives
//   - otherwise the car moves one floor and arrives if that floor is the target
//
// Arrival with passengers ends the trip. Arrival empty at the pickup floor starts the dwell.
func StepCar(car *types.Car) (types.Progress, bool) {
	if car.Status != types.Moving {
		return types.Progress{}, false
	}
	if car.Floor == car.TargetFloor {
		return arrive(car), true
	}

	car.Floor += int(car.Dir)
	if car.Floor == car.TargetFloor {
		return arrive(car), true
	}
	return types.Progress{
		CarID:  car.ID,
		Kind:   types.EventEnRoute,
		Floor:  car.Floor,
		Target: car.TargetFloor,
	}, true
}

func arrive(car *types.Car) types.Progress {
	progress := types.Progress{CarID: car.ID, Floor: car.Floor, Target: car.TargetFloor}
	car.Dir = types.DirNone
	if car.Occupancy > 0 {
		car.Status = types.Idle
		car.TargetFloor = types.NoFloor
		car.Occupancy = 0
		car.FinalDestination = types.NoFloor
		progress.Kind = types.EventArrived
		return progress
	}
	car.Status = types.Waiting
	progress.Kind = types.EventWaiting
	return progress
}
