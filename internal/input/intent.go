// Package input captures keyboard and touch input and turns it into
// directional intent for the simulation.
package input

// DragDeadZone is how far a touch drag must travel on an axis before it
// registers as a direction.
const DragDeadZone = 10.0

// Intent is the directional intent the player currently holds.
// Directions are not mutually exclusive; opposing directions cancel out.
type Intent struct {
	Up    bool `json:"up"`
	Down  bool `json:"down"`
	Left  bool `json:"left"`
	Right bool `json:"right"`
	Touch bool `json:"touch"` // Intent comes from a touch drag
}

// Vector returns the per-axis direction of the intent, each in {-1, 0, 1}.
// Screen coordinates: y grows downwards.
func (i Intent) Vector() (dx, dy int) {
	if i.Left {
		dx--
	}
	if i.Right {
		dx++
	}
	if i.Up {
		dy--
	}
	if i.Down {
		dy++
	}
	return dx, dy
}

// FromDrag translates a touch drag delta (current point minus touch start)
// into an intent. Deltas inside the dead-zone do not register.
func FromDrag(dx, dy float64) Intent {
	return Intent{
		Up:    dy < -DragDeadZone,
		Down:  dy > DragDeadZone,
		Left:  dx < -DragDeadZone,
		Right: dx > DragDeadZone,
		Touch: true,
	}
}
