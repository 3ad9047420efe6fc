package dispatcher

import "elevbank/src/types"

// distance is the cost of sending a car to callerFloor: the number of floors it has to travel.
func distance(car types.Car, callerFloor int) int {
	d := car.Floor - callerFloor
	if d < 0 {
		return -d
	}
	return d
}

// findClosestIdle returns the id of the idle car closest to callerFloor, or -1 if no car is idle.
//   - scans in id order and only replaces on a strictly lower distance, so ties go to the lowest id
func findClosestIdle(cars []types.Car, callerFloor int) int {
	assignee := -1
	lowestCost := 0
	for _, car := range cars {
		if car.Status != types.Idle {
			continue
		}
		cost := distance(car, callerFloor)
		if assignee == -1 || cost < lowestCost {
			lowestCost = cost
			assignee = car.ID
		}
	}
	return assignee
}
