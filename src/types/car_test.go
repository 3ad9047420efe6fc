package types

import (
	"errors"
	"testing"
)

func TestNewCar(t *testing.T) {
	car := NewCar(2)
	if car.ID != 2 || car.Floor != 1 || car.Status != Idle || car.Dir != DirNone || car.HasTarget() || car.Occupancy != 0 {
		t.Errorf("unexpected initial car: %+v", car)
	}
	if err := car.Validate(7, 5); err != nil {
		t.Errorf("initial car invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		car   Car
		valid bool
	}{
		{"moving up", Car{Floor: 2, TargetFloor: 5, Status: Moving, Dir: DirUp, Occupancy: 5}, true},
		{"waiting at pickup", Car{Floor: 3, TargetFloor: 3, Status: Waiting}, true},
		{"resumed after dwell", Car{Floor: 3, TargetFloor: 3, Status: Moving, Occupancy: 5}, true},
		{"below ground", Car{Floor: 0}, false},
		{"above top", Car{Floor: 8}, false},
		{"idle with target", Car{Floor: 1, TargetFloor: 4}, false},
		{"moving without target", Car{Floor: 1, Status: Moving, Dir: DirUp}, false},
		{"waiting with direction", Car{Floor: 3, TargetFloor: 3, Status: Waiting, Dir: DirUp}, false},
		{"heading away", Car{Floor: 2, TargetFloor: 5, Status: Moving, Dir: DirDown}, false},
		{"partial load", Car{Floor: 2, TargetFloor: 5, Status: Moving, Dir: DirUp, Occupancy: 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.car.Validate(7, 5)
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvariant) {
				t.Errorf("expected ErrInvariant, got %v", err)
			}
		})
	}
}

func TestDirectionTo(t *testing.T) {
	if DirectionTo(1, 5) != DirUp || DirectionTo(5, 1) != DirDown || DirectionTo(3, 3) != DirNone {
		t.Error("DirectionTo returned wrong direction")
	}
}
