// State types for the car registry and the manager that serializes access to it.
package elev

import (
	"errors"
	"sync"

	"elevbank/src/types"
)

var (
	ErrStopped    = errors.New("car registry stopped")
	ErrUnknownCar = errors.New("unknown car")
)

// Registry holds the fixed set of cars. It has no behaviour beyond read/write access
// and must only be touched from inside a RegistryMgr command.
type Registry struct {
	cars     []types.Car
	maxFloor int
}

// RegistryCmd is an operation executed by the manager goroutine.
type RegistryCmd struct {
	Exec func(registry *Registry)
	done chan struct{}
}

// RegistryMgr owns the registry and serializes its access.
type RegistryMgr struct {
	cmds chan RegistryCmd
	quit chan struct{}
	exit chan struct{}
	once sync.Once
}
