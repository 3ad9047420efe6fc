package executor

import (
	"context"
	"log/slog"
	"time"

	"elevbank/src/elev"
	"elevbank/src/types"
)

// Tick runs one Motion Clock step over every car.
// Cars never read each other's state, so updating in place in id order
// gives the same result as computing every car from the pre-tick snapshot.
func Tick(registry *elev.Registry) []types.Progress {
	var progress []types.Progress
	registry.ForEachCar(func(car *types.Car) {
		p, ok := StepCar(car)
		if !ok {
			return
		}
		slog.Debug("Tick",
			"car", car.ID,
			"kind", p.Kind,
			"floor", car.Floor,
			"target", car.TargetFloor,
			"status", car.Status)
		progress = append(progress, p)
	})
	return progress
}

// RunClock calls tick once per interval until ctx is cancelled.
func RunClock(ctx context.Context, interval time.Duration, tick func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Debug("Motion clock stopped")
			return
		case <-ticker.C:
			tick()
		}
	}
}
