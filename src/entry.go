package main

// floorEntry collects typed digits into a floor number.
type floorEntry struct {
	maxFloor int
	digits   int
	typed    bool
}

// push appends a digit. Digits that would make the floor exceed maxFloor are ignored.
func (e *floorEntry) push(digit rune) (int, bool) {
	next := e.digits*10 + int(digit-'0')
	if next > e.maxFloor {
		return e.digits, false
	}
	e.digits = next
	e.typed = true
	return e.digits, true
}

// submit returns the typed floor and resets the entry. It reports false when nothing was typed.
func (e *floorEntry) submit() (int, bool) {
	floor, ok := e.digits, e.typed
	e.clear()
	return floor, ok
}

func (e *floorEntry) clear() {
	e.digits = 0
	e.typed = false
}
