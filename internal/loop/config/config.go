// Package config centralizes all tunable game parameters.
package config

import "time"

// Playfield - logical units. Rendering scales to fit the terminal or browser.
const (
	PlayfieldWidth  = 800
	PlayfieldHeight = 600
)

// Simulation timing
const (
	TickInterval  = 16 * time.Millisecond // ~60Hz simulation tick
	SpawnInterval = time.Second           // Spawn ramp cadence
)

// Damage
const (
	HitDamage               = 20
	InvulnerabilityDuration = time.Second
)

// Session
const (
	RevealDelay  = time.Second // Delay before the end-of-session screen appears
	HighScoreKey = "dodgebullets-highScore"
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Max render resolution - terminals larger than this get a centered, bordered play area.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// Web transport
const (
	BroadcastHz       = 30
	BroadcastInterval = time.Second / BroadcastHz
)
