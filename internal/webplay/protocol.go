// Package webplay serves the game to browsers over a WebSocket. Each
// connection gets its own session controller.
package webplay

import "encoding/json"

// Message types.
const (
	// Client -> server
	MsgInput = "input"
	MsgDrag  = "drag"
	MsgStart = "start"

	// Server -> client
	MsgWelcome = "welcome"
	MsgState   = "state"
	MsgOver    = "over"
	MsgReveal  = "reveal"
)

// Envelope wraps every message on the socket.
type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}

// Input is the held directions from a keyboard.
type Input struct {
	Up    bool `json:"up"`
	Down  bool `json:"down"`
	Left  bool `json:"left"`
	Right bool `json:"right"`
}

// Drag is a touch drag offset from where the finger went down.
// End is set when the finger lifts.
type Drag struct {
	DX  float64 `json:"dx"`
	DY  float64 `json:"dy"`
	End bool    `json:"end,omitempty"`
}

// Start asks for a new session. It carries no fields.
type Start struct{}

// Welcome is sent once after the upgrade.
type Welcome struct {
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	TickHz    int     `json:"tickHz"`
	HighScore float64 `json:"highScore"`
}

// State is the periodic world broadcast.
type State struct {
	State       string               `json:"state"`
	Gen         uint64               `json:"gen"`
	Time        string               `json:"time"`
	HighScore   float64              `json:"highScore"`
	Player      PlayerSnapshot       `json:"player"`
	Projectiles []ProjectileSnapshot `json:"projectiles"`
	Explosions  []ExplosionSnapshot  `json:"explosions"`
}

type PlayerSnapshot struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	A            float64 `json:"a"`
	Size         float64 `json:"size"`
	Health       int     `json:"health"`
	Invulnerable bool    `json:"invulnerable,omitempty"`
}

type ProjectileSnapshot struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
	Shape string  `json:"shape"`
	Color string  `json:"color"`
}

type ExplosionSnapshot struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	R float64 `json:"r"`
}

// Over is sent when a session ends, and again as MsgReveal once the end
// screen may be shown.
type Over struct {
	Gen       uint64  `json:"gen"`
	Final     float64 `json:"final"`
	HighScore float64 `json:"highScore"`
	NewRecord bool    `json:"newRecord"`
}
