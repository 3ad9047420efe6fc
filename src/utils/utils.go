package utils

import (
	"fmt"
	"io"
	"strings"

	"elevbank/src/types"
)

// FormatCar renders one car as e.g. "#1 F3 moving up ->5 (5p)".
func FormatCar(car types.Car) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d F%d %s", car.ID+1, car.Floor, car.Status)
	if car.Dir != types.DirNone {
		fmt.Fprintf(&b, " %s", car.Dir)
	}
	if car.HasTarget() {
		fmt.Fprintf(&b, " ->%d", car.TargetFloor)
	}
	fmt.Fprintf(&b, " (%dp)", car.Occupancy)
	return b.String()
}

// FormatEvent renders an event the way the console shows notifications.
func FormatEvent(event types.Event) string {
	car := event.CarID + 1
	switch event.Kind {
	case types.EventPickupAssigned:
		return fmt.Sprintf("Elevator %d is coming to your floor", car)
	case types.EventDirectAssigned:
		return fmt.Sprintf("Elevator %d is moving to floor %d", car, event.Target)
	case types.EventAlreadyAtFloor:
		return "Already on the requested floor"
	case types.EventNoCarAvailable:
		return "No available elevators"
	case types.EventCallerFloorChanged:
		return fmt.Sprintf("Current floor changed to %d", event.Floor)
	case types.EventArrived:
		return fmt.Sprintf("Elevator %d arrived at floor %d", car, event.Floor)
	case types.EventEnRoute:
		return fmt.Sprintf("Elevator %d moving to floor %d", car, event.Target)
	case types.EventWaiting:
		return fmt.Sprintf("Elevator %d waiting at floor %d", car, event.Floor)
	case types.EventDeparted:
		return fmt.Sprintf("Elevator %d is now moving to floor %d", car, event.Target)
	}
	return string(event.Kind)
}

// PrintStatus redraws a one-line status of the caller floor and every car.
func PrintStatus(w io.Writer, callerFloor int, cars []types.Car) {
	parts := make([]string, len(cars))
	for i, car := range cars {
		parts[i] = FormatCar(car)
	}
	fmt.Fprintf(w, "\rYou: F%d | %s    ", callerFloor, strings.Join(parts, " | "))
}
