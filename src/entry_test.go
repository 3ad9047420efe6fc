package main

import "testing"

func typeFloor(e *floorEntry, keys string) {
	for _, r := range keys {
		e.push(r)
	}
}

func TestFloorEntryMultiDigit(t *testing.T) {
	tests := []struct {
		name     string
		maxFloor int
		keys     string
		want     int
		ok       bool
	}{
		{"single digit", 7, "5", 5, true},
		{"two digits", 12, "12", 12, true},
		{"above top ignored", 12, "19", 1, true},
		{"zero stays invalid", 7, "0", 0, true},
		{"nothing typed", 7, "", 0, false},
		{"three digits", 150, "142", 142, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &floorEntry{maxFloor: tt.maxFloor}
			typeFloor(e, tt.keys)
			got, ok := e.submit()
			if got != tt.want || ok != tt.ok {
				t.Errorf("got %d %v, want %d %v", got, ok, tt.want, tt.ok)
			}
			if _, ok := e.submit(); ok {
				t.Error("entry not reset after submit")
			}
		})
	}
}

func TestFloorEntryClear(t *testing.T) {
	e := &floorEntry{maxFloor: 20}
	typeFloor(e, "1")
	e.clear()
	typeFloor(e, "7")
	if got, _ := e.submit(); got != 7 {
		t.Errorf("got %d after clear, want 7", got)
	}
}
