package client

import (
	"github.com/tomz197/dodgebullets/internal/input"
)

// GameState represents the current game phase for a client.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen
	GameStatePlaying                   // Active gameplay
	GameStateOver                      // Session ended, waiting for restart
	GameStateShutdown                  // Server is shutting down
)

// ClientState holds per-connection presentation state.
type ClientState struct {
	Input         input.Input
	GameState     GameState // This client's game phase
	Revealed      bool      // End-of-session screen may be shown
	Running       bool      // Client loop running
	shutdownTimer float64   // Countdown before auto-disconnect on shutdown
	isInactive    bool      // Whether the client is in inactive warning state
	lastIntent    input.Intent

	prevGameState GameState
	prevRevealed  bool
	wasInactive   bool
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		GameState: GameStateStart,
		Running:   true,
	}
}
