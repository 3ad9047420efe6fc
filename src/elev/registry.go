package elev

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"

	"elevbank/src/types"
)

func (registry *Registry) Len() int {
	return len(registry.cars)
}

func (registry *Registry) MaxFloor() int {
	return registry.maxFloor
}

// Car returns a pointer into the registry. Mutations through it are in place.
func (registry *Registry) Car(id int) (*types.Car, error) {
	if id < 0 || id >= len(registry.cars) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCar, id)
	}
	return &registry.cars[id], nil
}

// ForEachCar runs action on every car in id order.
func (registry *Registry) ForEachCar(action func(car *types.Car)) {
	for i := range registry.cars {
		action(&registry.cars[i])
	}
}

// Snapshot returns a deep copy of all cars in id order.
func (registry *Registry) Snapshot() []types.Car {
	cars := make([]types.Car, 0, len(registry.cars))
	if err := deepcopy.Copy(&cars, registry.cars); err != nil {
		// Car holds only plain values, so a failed copy is a programming error.
		panic(err)
	}
	return cars
}
