package session

import (
	"fmt"
	"time"

	"github.com/tomz197/dodgebullets/internal/object"
)

// State is the session lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateOver:
		return "over"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// World holds the entities of one session. It is owned by a Controller.
type World struct {
	Screen      object.Screen
	Player      *object.Player
	Projectiles []*object.Projectile
	Explosions  []*object.Explosion
}

// NewWorld creates an empty world for the given playfield.
func NewWorld(screen object.Screen) *World {
	w := &World{Screen: screen}
	w.Reset()
	return w
}

// Reset puts a fresh player at the centre and drops all projectiles and explosions.
func (w *World) Reset() {
	w.Player = object.NewPlayer(float64(w.Screen.CenterX), float64(w.Screen.CenterY))
	clear(w.Projectiles)
	w.Projectiles = w.Projectiles[:0]
	clear(w.Explosions)
	w.Explosions = w.Explosions[:0]
}

// AddProjectiles appends projectiles in spawn order.
func (w *World) AddProjectiles(ps ...*object.Projectile) {
	w.Projectiles = append(w.Projectiles, ps...)
}

// AddExplosion appends an explosion.
func (w *World) AddExplosion(e *object.Explosion) {
	w.Explosions = append(w.Explosions, e)
}

// cullProjectiles drops every projectile for which remove returns true,
// keeping the order of the rest.
func (w *World) cullProjectiles(remove func(*object.Projectile) bool) {
	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if !remove(p) {
			kept = append(kept, p)
		}
	}
	clear(w.Projectiles[len(kept):])
	w.Projectiles = kept
}

// cullExplosions drops every explosion for which remove returns true.
func (w *World) cullExplosions(remove func(*object.Explosion) bool) {
	kept := w.Explosions[:0]
	for _, e := range w.Explosions {
		if !remove(e) {
			kept = append(kept, e)
		}
	}
	clear(w.Explosions[len(kept):])
	w.Explosions = kept
}

// Snapshot is an immutable copy of the session for renderers.
type Snapshot struct {
	State       State
	Player      object.Player
	Projectiles []object.Projectile
	Explosions  []object.Explosion
	Screen      object.Screen
	Elapsed     time.Duration
	ElapsedText string  // Seconds with three decimals
	Final       float64 // Final score in seconds, set once the session is over
	HighScore   float64
	NewRecord   bool // Final beat the previous high score
	Revealed    bool // End-of-session presentation may be shown
	Generation  uint64
}

// EventType identifies a session event.
type EventType int

const (
	EventSessionStarted EventType = iota
	EventPlayerHit
	EventSessionOver
	EventRevealGameOver
)

func (t EventType) String() string {
	switch t {
	case EventSessionStarted:
		return "session-started"
	case EventPlayerHit:
		return "player-hit"
	case EventSessionOver:
		return "session-over"
	case EventRevealGameOver:
		return "reveal-game-over"
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// Event is emitted by the controller on session milestones.
type Event struct {
	Type       EventType
	Generation uint64
	Health     int     // EventPlayerHit
	Final      float64 // EventSessionOver, EventRevealGameOver
	HighScore  float64 // EventSessionOver, EventRevealGameOver
	NewRecord  bool    // EventSessionOver, EventRevealGameOver
}

// FormatSeconds renders a duration as seconds with three decimals.
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}
