package client

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/dodgebullets/internal/draw"
	"github.com/tomz197/dodgebullets/internal/loop/config"
	"github.com/tomz197/dodgebullets/internal/loop/session"
	"github.com/tomz197/dodgebullets/internal/object"
)

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		w, h                 int
		rw, rh, offCol, offR int
	}{
		{80, 24, 80, 24, 0, 0},
		{config.MaxTermWidth + 40, config.MaxTermHeight + 10, config.MaxTermWidth, config.MaxTermHeight, 20, 5},
	}
	for _, tt := range tests {
		rw, rh, oc, or := clampTermSize(tt.w, tt.h)
		if rw != tt.rw || rh != tt.rh || oc != tt.offCol || or != tt.offR {
			t.Errorf("clampTermSize(%d,%d) = %d,%d,%d,%d", tt.w, tt.h, rw, rh, oc, or)
		}
	}
}

func TestHealthBar(t *testing.T) {
	tests := map[int]string{
		100: "HP [██████████] 100",
		60:  "HP [██████░░░░]  60",
		1:   "HP [█░░░░░░░░░]   1",
		0:   "HP [░░░░░░░░░░]   0",
		-20: "HP [░░░░░░░░░░]   0",
	}
	for health, want := range tests {
		if got := healthBar(health); got != want {
			t.Errorf("healthBar(%d) = %q, want %q", health, got, want)
		}
	}
}

func TestTimeText(t *testing.T) {
	if got := timeText("7.250"); got != "Time: 7.250s    " {
		t.Fatalf("timeText = %q", got)
	}
}

func TestDrawSnapshotHidesPlayerWhenOver(t *testing.T) {
	canvas := draw.NewScaledCanvas(80, 30, config.PlayfieldWidth, config.PlayfieldHeight)
	ctx := object.DrawContext{Canvas: canvas}
	snap := &session.Snapshot{
		State:  session.StateOver,
		Player: *object.NewPlayer(400, 300),
	}
	if err := drawSnapshot(ctx, snap, time.UnixMilli(0)); err != nil {
		t.Fatal(err)
	}
	if n := litPixels(canvas); n != 0 {
		t.Fatalf("player drawn after the session ended (%d pixels)", n)
	}

	snap.State = session.StateRunning
	if err := drawSnapshot(ctx, snap, time.UnixMilli(0)); err != nil {
		t.Fatal(err)
	}
	if litPixels(canvas) == 0 {
		t.Fatal("running player not drawn")
	}
}

func litPixels(c *draw.Canvas) int {
	n := 0
	for y := 0; y < c.TerminalHeight()*2; y++ {
		for x := 0; x < c.TerminalWidth(); x++ {
			if c.PixelAt(x, y) != draw.PenNone {
				n++
			}
		}
	}
	return n
}

func TestHubShutdownNotifiesClients(t *testing.T) {
	h := NewHub()
	id, ch := h.register()

	done := make(chan struct{})
	go func() {
		<-ch
		h.unregister(id)
		close(done)
	}()

	h.Shutdown(2 * time.Second)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("client was not notified")
	}
	if h.Count() != 0 {
		t.Fatalf("clients left = %d", h.Count())
	}

	// Late joiners see the shutdown straight away.
	_, late := h.register()
	select {
	case <-late:
	default:
		t.Fatal("late client not notified")
	}
}

func TestClientQuitsOnQ(t *testing.T) {
	var out bytes.Buffer
	c := NewClient(bufio.NewReader(strings.NewReader("q")), &out, ClientOptions{
		TermSizeFunc: func() (int, int, error) { return 80, 24, nil },
	})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	errCh := make(chan error, 1)
	go func() { errCh <- c.Run(ctx) }()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("client did not quit")
	}
}
