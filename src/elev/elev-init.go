package elev

import (
	"log/slog"

	"elevbank/src/types"
)

// NewRegistry creates numCars idle cars at floor 1 with ids 0..numCars-1.
func NewRegistry(numCars, maxFloor int) *Registry {
	registry := &Registry{
		cars:     make([]types.Car, numCars),
		maxFloor: maxFloor,
	}
	for id := range registry.cars {
		registry.cars[id] = types.NewCar(id)
	}
	slog.Debug("Car registry initialized", "cars", numCars, "maxFloor", maxFloor)
	return registry
}
