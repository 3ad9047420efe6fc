package utils

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"elevbank/src/types"
)

func TestFormatCar(t *testing.T) {
	tests := []struct {
		car  types.Car
		want string
	}{
		{types.NewCar(0), "#1 F1 idle (0p)"},
		{types.Car{ID: 1, Floor: 3, TargetFloor: 5, Status: types.Moving, Dir: types.DirUp, Occupancy: 5}, "#2 F3 moving up ->5 (5p)"},
		{types.Car{ID: 2, Floor: 4, TargetFloor: 4, Status: types.Waiting}, "#3 F4 waiting ->4 (0p)"},
	}
	for _, tt := range tests {
		if got := FormatCar(tt.car); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestFormatEvent(t *testing.T) {
	tests := []struct {
		event types.Event
		want  string
	}{
		{types.NewEvent(types.EventPickupAssigned, 0, 7, 3), "Elevator 1 is coming to your floor"},
		{types.NewEvent(types.EventDirectAssigned, 1, 1, 5), "Elevator 2 is moving to floor 5"},
		{types.NewEvent(types.EventNoCarAvailable, -1, 0, 0), "No available elevators"},
		{types.NewEvent(types.EventWaiting, 2, 3, 3), "Elevator 3 waiting at floor 3"},
	}
	for _, tt := range tests {
		if got := FormatEvent(tt.event); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestPrintStatus(t *testing.T) {
	var buf bytes.Buffer
	PrintStatus(&buf, 2, []types.Car{types.NewCar(0), types.NewCar(1)})
	if got := buf.String(); !strings.HasPrefix(got, "\rYou: F2 | #1 F1 idle (0p) | #2 F1 idle (0p)") {
		t.Errorf("got %q", got)
	}
}

func TestInitLogger(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	if _, err := InitLogger("loud", ""); err == nil {
		t.Error("expected error for unknown level")
	}

	path := filepath.Join(t.TempDir(), "bank.log")
	closer, err := InitLogger("debug", path)
	if err != nil {
		t.Fatal(err)
	}
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}
