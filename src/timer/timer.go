package timer

import (
	"log/slog"
	"sync"
	"time"

	"elevbank/src/types"
)

// DwellScheduler arms one cancellable one-shot timer per waiting car.
// When a timer expires, onExpire is called with the car id on the timer's goroutine.
type DwellScheduler struct {
	mu       sync.Mutex
	duration time.Duration
	timers   map[int]*time.Timer
	stopped  bool
	inFlight sync.WaitGroup
	onExpire func(carID int)
}

func NewDwellScheduler(duration time.Duration, onExpire func(carID int)) *DwellScheduler {
	return &DwellScheduler{
		duration: duration,
		timers:   make(map[int]*time.Timer),
		onExpire: onExpire,
	}
}

// Arm starts the dwell timer for carID. A car only enters waiting once per pickup,
// so an already armed timer is left running.
func (s *DwellScheduler) Arm(carID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	if _, ok := s.timers[carID]; ok {
		slog.Warn("Dwell timer already armed", "car", carID)
		return
	}
	var t *time.Timer
	t = time.AfterFunc(s.duration, func() {
		s.mu.Lock()
		if s.stopped || s.timers[carID] != t {
			s.mu.Unlock()
			return
		}
		delete(s.timers, carID)
		s.inFlight.Add(1)
		s.mu.Unlock()
		defer s.inFlight.Done()

		slog.Debug("Dwell timer expired", "car", carID)
		s.onExpire(carID)
	})
	s.timers[carID] = t
	slog.Debug("Dwell timer armed", "car", carID, "duration", s.duration)
}

// Pending returns the number of armed timers.
func (s *DwellScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// StopAll cancels every outstanding timer and waits for expiry callbacks already running.
// Later calls to Arm are ignored. Must not be called from inside onExpire.
func (s *DwellScheduler) StopAll() {
	s.mu.Lock()
	s.stopped = true
	for carID, t := range s.timers {
		t.Stop()
		delete(s.timers, carID)
	}
	s.mu.Unlock()
	s.inFlight.Wait()
}

// ResumeAfterDwell is the dwell expiry transition. It is a no-op unless the car is still waiting.
//   - default: moving with a full load, target and direction untouched, so the next tick
//     sees the car at its target and ends the trip there
//   - with a recorded final destination: retarget toward it
func ResumeAfterDwell(car *types.Car, fullLoad int) (types.Progress, bool) {
	if car.Status != types.Waiting {
		return types.Progress{}, false
	}
	car.Status = types.Moving
	car.Occupancy = fullLoad
	if car.FinalDestination != types.NoFloor {
		car.TargetFloor = car.FinalDestination
		car.Dir = types.DirectionTo(car.Floor, car.TargetFloor)
		car.FinalDestination = types.NoFloor
	}
	return types.Progress{
		CarID:  car.ID,
		Kind:   types.EventDeparted,
		Floor:  car.Floor,
		Target: car.TargetFloor,
	}, true
}
