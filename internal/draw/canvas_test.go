package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestCanvasScalesLogicalCoordinates(t *testing.T) {
	// 80x30 terminal, 800x600 logical playfield -> 10 logical units per column/sub-pixel.
	c := NewScaledCanvas(80, 30, 800, 600)
	c.SetPen(PenRed)
	c.SetFloat(400, 300)

	if got := c.PixelAt(40, 30); got != PenRed {
		t.Fatalf("pixel at (40,30) = %v, want PenRed", got)
	}
	if got := c.PixelAt(0, 0); got != PenNone {
		t.Fatalf("pixel at origin = %v, want empty", got)
	}
}

func TestCanvasRenderOnlyWritesChanges(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.SetFloat(2, 2)

	var first bytes.Buffer
	c.Render(&first)
	if !strings.ContainsRune(first.String(), BlockUpperHalf) {
		t.Fatalf("first render missing pixel: %q", first.String())
	}

	var second bytes.Buffer
	c.Render(&second)
	if second.Len() != 0 {
		t.Fatalf("unchanged frame should render nothing, got %q", second.String())
	}

	c.Clear()
	var third bytes.Buffer
	c.Render(&third)
	if !strings.Contains(third.String(), " ") {
		t.Fatalf("cleared pixel should be erased, got %q", third.String())
	}
}

func TestCanvasForceRedrawAndDirtyText(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	var buf bytes.Buffer
	c.Render(&buf)
	if strings.Count(buf.String(), "H") != 8 {
		t.Fatalf("first render should repaint all 8 cells, got %q", buf.String())
	}

	buf.Reset()
	c.MarkTextDirty(2, 1, 2)
	c.Render(&buf)
	if strings.Count(buf.String(), "H") != 2 {
		t.Fatalf("expected 2 dirty cells repainted, got %q", buf.String())
	}

	buf.Reset()
	c.ForceRedraw()
	c.Render(&buf)
	if strings.Count(buf.String(), "H") != 8 {
		t.Fatalf("force redraw should repaint all cells, got %q", buf.String())
	}
}

func TestFillShapes(t *testing.T) {
	c := NewScaledCanvas(40, 20, 40, 40)
	c.SetPen(PenGreen)
	c.FillRect(10, 10, 4, 4)
	if c.PixelAt(12, 12) != PenGreen {
		t.Fatalf("rect interior not filled")
	}

	c.Clear()
	c.FillCircle(20, 20, 5)
	if c.PixelAt(20, 20) != PenGreen || c.PixelAt(23, 20) != PenGreen {
		t.Fatalf("circle interior not filled")
	}
	if c.PixelAt(27, 20) != PenNone {
		t.Fatalf("circle spilled outside radius")
	}

	c.Clear()
	c.FillDiamond(20, 20, 5)
	if c.PixelAt(20, 20) != PenGreen {
		t.Fatalf("diamond center not filled")
	}
	if c.PixelAt(24, 24) != PenNone {
		t.Fatalf("diamond corner region should be empty")
	}
}

func TestRotate(t *testing.T) {
	p := Rotate(Point{X: 0, Y: -10}, 0, 0, 90)
	if p.X < 9.999 || p.X > 10.001 || p.Y > 0.001 || p.Y < -0.001 {
		t.Fatalf("rotating up by 90 should point right, got %+v", p)
	}
}

func TestPenForHex(t *testing.T) {
	tests := map[string]Pen{
		"#FF0000": PenRed,
		"#00FF00": PenGreen,
		"#0000FF": PenBlue,
		"#123456": PenWhite,
	}
	for hex, want := range tests {
		if got := PenForHex(hex); got != want {
			t.Errorf("PenForHex(%q) = %v, want %v", hex, got, want)
		}
	}
}
