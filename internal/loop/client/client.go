package client

import (
	"bufio"
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/dodgebullets/internal/draw"
	"github.com/tomz197/dodgebullets/internal/input"
	"github.com/tomz197/dodgebullets/internal/loop/config"
	"github.com/tomz197/dodgebullets/internal/loop/session"
)

// Client handles rendering and input for a single terminal.
type Client struct {
	ctrl         *session.Controller
	hubID        int
	hub          *Hub
	shutdownCh   <-chan struct{}
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	inactivity   bool
	logger       *log.Logger
	termSizeFunc draw.TermSizeFunc
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Store        session.ScoreStore // Shared high score store, may be nil
	Logger       *log.Logger
	Hub          *Hub // Shutdown notifications, may be nil
	Inactivity   bool // Warn and disconnect idle clients
	Rand         *rand.Rand
}

// NewClient creates a client with its own session controller.
func NewClient(r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ctrl := session.NewController(session.Options{
		Store:  opts.Store,
		Logger: logger,
		Rand:   opts.Rand,
	})

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := draw.TerminalSize(termSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.PlayfieldWidth, config.PlayfieldHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Client{
		ctrl:         ctrl,
		hub:          opts.Hub,
		state:        NewClientState(),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		lastInput:    time.Now(),
		inputStream:  input.StartStream(r),
		inactivity:   opts.Inactivity,
		logger:       logger,
		termSizeFunc: termSizeFunc,
	}
}

// Run starts the client loop. Blocks until the client quits, ctx is
// cancelled or the server shuts down.
func (c *Client) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go c.ctrl.Run(ctx)

	if c.hub != nil {
		c.hubID, c.shutdownCh = c.hub.register()
		defer c.hub.unregister(c.hubID)
	}

	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	lastTime := time.Now()

	for c.state.Running {
		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		select {
		case <-ctx.Done():
			c.state.Running = false
			continue
		default:
		}

		c.processInput()
		c.processSessionEvents()
		c.processShutdown(delta)
		c.updateScreen()

		switch c.state.GameState {
		case GameStateStart:
			c.updateStartState()
		case GameStatePlaying:
			c.updatePlayingState()
		case GameStateOver:
			c.updateOverState()
		}

		if err := c.drawFrame(); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// processInput reads input and tracks inactivity.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)

	if len(c.state.Input.Pressed) > 0 {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if c.inactivity && time.Since(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.logger.Info("disconnecting inactive client")
		c.state.Running = false
	} else if c.inactivity && time.Since(c.lastInput).Seconds() > config.InactivityWarnUser {
		c.state.isInactive = true
	}

	if c.state.Input.Quit {
		c.state.Running = false
	}
}

// processSessionEvents handles events from the session controller.
func (c *Client) processSessionEvents() {
	for {
		select {
		case ev := <-c.ctrl.Events():
			switch ev.Type {
			case session.EventSessionOver:
				if c.state.GameState == GameStatePlaying {
					c.state.GameState = GameStateOver
					c.state.Revealed = false
				}
			case session.EventRevealGameOver:
				if ev.Generation == c.ctrl.Snapshot().Generation {
					c.state.Revealed = true
				}
			}
		default:
			return
		}
	}
}

// processShutdown switches to the shutdown screen once the hub says so and
// counts down to disconnect.
func (c *Client) processShutdown(delta time.Duration) {
	if c.state.GameState != GameStateShutdown {
		if c.shutdownCh == nil {
			return
		}
		select {
		case <-c.shutdownCh:
			c.state.GameState = GameStateShutdown
			c.state.shutdownTimer = config.ShutdownDisplaySeconds
		default:
		}
		return
	}

	c.state.shutdownTimer -= delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSize(c.termSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// updateStartState handles the title screen.
func (c *Client) updateStartState() {
	if c.state.Input.Space || c.state.Input.Enter {
		c.startGame()
	}
}

// updatePlayingState forwards movement to the controller when it changes.
func (c *Client) updatePlayingState() {
	intent := c.state.Input.Intent()
	if intent != c.state.lastIntent {
		c.ctrl.SendIntent(intent)
		c.state.lastIntent = intent
	}
}

// updateOverState waits for the end screen before allowing a restart.
func (c *Client) updateOverState() {
	if c.state.Revealed && (c.state.Input.Space || c.state.Input.Enter) {
		c.startGame()
	}
}

// startGame starts or restarts a session.
func (c *Client) startGame() {
	input.ResetKeyInput(c.inputStream)
	c.state.lastIntent = input.Intent{}
	c.state.Revealed = false
	c.ctrl.RequestStart()
	c.state.GameState = GameStatePlaying
}
