package input

import (
	"testing"
	"time"
)

func streamAt(now time.Time, data string) *Stream {
	s := newStream()
	s.now = func() time.Time { return now }
	for i := 0; i < len(data); i++ {
		s.ch <- data[i]
	}
	return s
}

func TestReadInputArrowKeys(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := streamAt(now, "\x1b[A\x1b[D")

	in := ReadInput(s)
	if !in.Up || !in.Left {
		t.Fatalf("expected up+left, got %+v", in)
	}
	if in.Down || in.Right || in.Escape {
		t.Fatalf("unexpected keys held: %+v", in)
	}
}

func TestReadInputLetterKeys(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		keys string
		want Intent
	}{
		{"w", Intent{Up: true}},
		{"s", Intent{Down: true}},
		{"a", Intent{Left: true}},
		{"d", Intent{Right: true}},
		{"kl", Intent{Up: true, Right: true}},
		{"jh", Intent{Down: true, Left: true}},
	}
	for _, tt := range tests {
		in := ReadInput(streamAt(now, tt.keys))
		if got := in.Intent(); got != tt.want {
			t.Errorf("keys %q: intent = %+v, want %+v", tt.keys, got, tt.want)
		}
	}
}

func TestReadInputHoldExpires(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := streamAt(now, "d")
	if !ReadInput(s).Right {
		t.Fatalf("expected right held")
	}

	s.now = func() time.Time { return now.Add(keyHoldDuration) }
	if ReadInput(s).Right {
		t.Fatalf("expected right released after hold duration")
	}
}

func TestResetKeyInput(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := streamAt(now, " ")
	if !ReadInput(s).Space {
		t.Fatalf("expected space held")
	}
	ResetKeyInput(s)
	if ReadInput(s).Space {
		t.Fatalf("expected space cleared after reset")
	}
}

func TestIntentVector(t *testing.T) {
	tests := []struct {
		in     Intent
		dx, dy int
	}{
		{Intent{}, 0, 0},
		{Intent{Up: true}, 0, -1},
		{Intent{Up: true, Down: true}, 0, 0},
		{Intent{Left: true, Down: true}, -1, 1},
		{Intent{Left: true, Right: true, Up: true}, 0, -1},
	}
	for _, tt := range tests {
		dx, dy := tt.in.Vector()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%+v.Vector() = (%d,%d), want (%d,%d)", tt.in, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestFromDragDeadZone(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   Intent
	}{
		{0, 0, Intent{Touch: true}},
		{10, -10, Intent{Touch: true}},
		{10.5, 0, Intent{Right: true, Touch: true}},
		{-30, -11, Intent{Left: true, Up: true, Touch: true}},
		{5, 40, Intent{Down: true, Touch: true}},
	}
	for _, tt := range tests {
		if got := FromDrag(tt.dx, tt.dy); got != tt.want {
			t.Errorf("FromDrag(%v,%v) = %+v, want %+v", tt.dx, tt.dy, got, tt.want)
		}
	}
}
