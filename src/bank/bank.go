// Package bank wires the car registry, dispatcher, motion clock and dwell scheduler
// into one elevator bank with a single synchronized entry point.
package bank

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"elevbank/src/config"
	"elevbank/src/dispatcher"
	"elevbank/src/elev"
	"elevbank/src/executor"
	"elevbank/src/timer"
	"elevbank/src/types"
)

type System struct {
	cfg    config.Config
	params dispatcher.Params
	mgr    *elev.RegistryMgr
	dwell  *timer.DwellScheduler
	events chan types.Event

	// stopping rejects dwell expiries once Stop has begun.
	stopping atomic.Bool
	// eventsMu guards events against a send racing the close in Stop.
	eventsMu     sync.RWMutex
	eventsClosed bool

	mu          sync.Mutex
	callerFloor int
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	stopOnce    sync.Once
}

// New validates cfg and builds a system with every car idle at floor 1.
// The registry manager runs from here on; call Start to run the clock.
func New(cfg config.Config) (*System, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &System{
		cfg: cfg,
		params: dispatcher.Params{
			MaxFloor:            cfg.MaxFloor,
			FullLoad:            cfg.FullLoad,
			ResumeToDestination: cfg.ResumeToDestination,
		},
		mgr:         elev.StartRegistryMgr(elev.NewRegistry(cfg.NumCars, cfg.MaxFloor)),
		events:      make(chan types.Event, cfg.EventBuffer),
		callerFloor: 1,
	}
	s.dwell = timer.NewDwellScheduler(cfg.DwellDuration, s.handleDwellExpiry)
	return s, nil
}

// Start runs the motion clock. Calling Start on a running system does nothing.
func (s *System) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		executor.RunClock(ctx, s.cfg.TickInterval, func() {
			if err := s.Tick(); err != nil && !errors.Is(err, elev.ErrStopped) {
				slog.Error("Tick failed", "err", err)
			}
		})
	}()
	slog.Info("Elevator bank started",
		"cars", s.cfg.NumCars,
		"maxFloor", s.cfg.MaxFloor,
		"tick", s.cfg.TickInterval,
		"dwell", s.cfg.DwellDuration)
}

// Stop cancels the clock and every dwell timer, stops the registry manager and closes Events.
// No car changes once Stop returns. Requests after Stop fail with elev.ErrStopped.
func (s *System) Stop() {
	s.stopOnce.Do(func() {
		s.stopping.Store(true)
		s.mu.Lock()
		if s.cancel != nil {
			s.cancel()
		}
		s.mu.Unlock()
		s.wg.Wait()
		s.dwell.StopAll()
		s.mgr.Stop()

		s.eventsMu.Lock()
		s.eventsClosed = true
		close(s.events)
		s.eventsMu.Unlock()
		slog.Info("Elevator bank stopped")
	})
}

// RequestCar dispatches the closest idle car for a call from callerFloor to destinationFloor.
func (s *System) RequestCar(callerFloor, destinationFloor int) (types.Assignment, error) {
	req := types.Request{CallerFloor: callerFloor, DestinationFloor: destinationFloor}
	var (
		assignment types.Assignment
		assignErr  error
	)
	err := s.mgr.Execute(func(registry *elev.Registry) {
		assignment, assignErr = dispatcher.Assign(registry, req, s.params)
		s.emitAssignment(registry, assignment, assignErr)
	})
	if err != nil {
		return types.Assignment{}, err
	}
	return assignment, assignErr
}

// Call requests a car from the current caller floor.
func (s *System) Call(destinationFloor int) (types.Assignment, error) {
	return s.RequestCar(s.CallerFloor(), destinationFloor)
}

// SetCallerFloor stores the caller location clamped to [1, MaxFloor] and returns the stored value.
func (s *System) SetCallerFloor(floor int) int {
	clamped := dispatcher.ClampFloor(floor, s.cfg.MaxFloor)
	s.mu.Lock()
	s.callerFloor = clamped
	s.mu.Unlock()
	slog.Debug("Caller floor changed", "requested", floor, "floor", clamped)
	s.emit(types.NewEvent(types.EventCallerFloorChanged, -1, clamped, types.NoFloor))
	return clamped
}

func (s *System) CallerFloor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callerFloor
}

// Snapshot returns a copy of every car in id order.
// It fails with elev.ErrStopped once the system is stopped.
func (s *System) Snapshot() ([]types.Car, error) {
	var cars []types.Car
	if err := s.mgr.Execute(func(registry *elev.Registry) {
		cars = registry.Snapshot()
	}); err != nil {
		return nil, err
	}
	return cars, nil
}

// Tick runs one motion clock step and arms a dwell timer for every car that started waiting.
func (s *System) Tick() error {
	return s.mgr.Execute(func(registry *elev.Registry) {
		for _, p := range executor.Tick(registry) {
			if p.Kind == types.EventWaiting {
				s.dwell.Arm(p.CarID)
			}
			s.emit(types.NewEvent(p.Kind, p.CarID, p.Floor, p.Target))
		}
	})
}

// Events delivers notifications for the presentation layer.
// Events are dropped while the buffer is full. The channel is closed by Stop.
func (s *System) Events() <-chan types.Event {
	return s.events
}

func (s *System) Config() config.Config {
	return s.cfg
}

func (s *System) handleDwellExpiry(carID int) {
	err := s.mgr.Execute(func(registry *elev.Registry) {
		if s.stopping.Load() {
			slog.Debug("Dwell expiry during stop ignored", "car", carID)
			return
		}
		car, err := registry.Car(carID)
		if err != nil {
			slog.Error("Dwell expired for unknown car", "car", carID)
			return
		}
		p, ok := timer.ResumeAfterDwell(car, s.cfg.FullLoad)
		if !ok {
			slog.Debug("Dwell expired on car no longer waiting", "car", carID, "status", car.Status)
			return
		}
		slog.Info("Car departing after dwell", "car", carID, "floor", car.Floor, "target", car.TargetFloor)
		s.emit(types.NewEvent(p.Kind, p.CarID, p.Floor, p.Target))
	})
	if err != nil {
		slog.Debug("Dwell expiry after stop ignored", "car", carID)
	}
}

func (s *System) emitAssignment(registry *elev.Registry, assignment types.Assignment, err error) {
	req := assignment.Request
	switch {
	case errors.Is(err, dispatcher.ErrNoAvailableCar):
		s.emit(types.NewEvent(types.EventNoCarAvailable, -1, types.NoFloor, types.NoFloor))
		return
	case err != nil:
		return
	}
	car, carErr := registry.Car(assignment.CarID)
	if carErr != nil {
		return
	}
	switch assignment.Outcome {
	case types.OutcomeAlreadyThere:
		s.emit(types.NewEvent(types.EventAlreadyAtFloor, car.ID, car.Floor, req.DestinationFloor))
	case types.OutcomeDirect:
		s.emit(types.NewEvent(types.EventDirectAssigned, car.ID, car.Floor, car.TargetFloor))
	case types.OutcomePickup:
		s.emit(types.NewEvent(types.EventPickupAssigned, car.ID, car.Floor, car.TargetFloor))
	}
}

func (s *System) emit(event types.Event) {
	s.eventsMu.RLock()
	defer s.eventsMu.RUnlock()
	if s.eventsClosed {
		return
	}
	select {
	case s.events <- event:
	default:
		slog.Debug("Event buffer full, dropping event", "id", event.ID, "kind", event.Kind, "car", event.CarID)
	}
}
