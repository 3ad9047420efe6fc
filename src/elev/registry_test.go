package elev

import (
	"errors"
	"sync"
	"testing"

	"elevbank/src/types"
)

func TestNewRegistry(t *testing.T) {
	registry := NewRegistry(3, 7)
	if registry.Len() != 3 || registry.MaxFloor() != 7 {
		t.Fatalf("got %d cars, max floor %d", registry.Len(), registry.MaxFloor())
	}
	for id, car := range registry.Snapshot() {
		if car.ID != id || car.Floor != 1 || car.Status != types.Idle {
			t.Errorf("car %d not initialized: %+v", id, car)
		}
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	registry := NewRegistry(2, 7)
	cars := registry.Snapshot()
	cars[0].Floor = 6

	car, err := registry.Car(0)
	if err != nil {
		t.Fatal(err)
	}
	if car.Floor != 1 {
		t.Errorf("snapshot aliases registry: floor %d", car.Floor)
	}
}

func TestCarUnknown(t *testing.T) {
	registry := NewRegistry(2, 7)
	for _, id := range []int{-1, 2} {
		if _, err := registry.Car(id); !errors.Is(err, ErrUnknownCar) {
			t.Errorf("Car(%d): expected ErrUnknownCar, got %v", id, err)
		}
	}
}

func TestRegistryMgrSerializes(t *testing.T) {
	registry := NewRegistry(1, 1000)
	mgr := StartRegistryMgr(registry)
	defer mgr.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = mgr.Execute(func(registry *Registry) {
				car, _ := registry.Car(0)
				car.Occupancy++
			})
		}()
	}
	wg.Wait()

	var occupancy int
	if err := mgr.Execute(func(registry *Registry) {
		car, _ := registry.Car(0)
		occupancy = car.Occupancy
	}); err != nil {
		t.Fatal(err)
	}
	if occupancy != 100 {
		t.Errorf("lost updates: %d", occupancy)
	}
}

func TestRegistryMgrStop(t *testing.T) {
	mgr := StartRegistryMgr(NewRegistry(1, 7))
	mgr.Stop()
	mgr.Stop()
	if err := mgr.Execute(func(*Registry) {}); !errors.Is(err, ErrStopped) {
		t.Errorf("expected ErrStopped, got %v", err)
	}
}
