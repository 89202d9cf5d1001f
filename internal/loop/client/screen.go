package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomz197/dodgebullets/internal/draw"
	"github.com/tomz197/dodgebullets/internal/loop/config"
	"github.com/tomz197/dodgebullets/internal/loop/session"
	"github.com/tomz197/dodgebullets/internal/object"
)

const (
	healthBarWidth = 10
	blinkPeriodMs  = 100 // Invulnerable player blinks at this half-period
)

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On game state or inactivity transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	stateChanged := c.state.GameState != c.state.prevGameState || c.state.Revealed != c.state.prevRevealed
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if stateChanged || inactiveChanged {
		c.chunkWriter.ClearFrame()
		c.canvas.ForceRedraw()
		c.state.prevGameState = c.state.GameState
		c.state.prevRevealed = c.state.Revealed
		c.state.wasInactive = c.state.isInactive
	}

	c.canvas.Clear()

	snapshot := c.ctrl.Snapshot()
	ctx := object.DrawContext{
		Canvas: c.canvas,
		Writer: c.chunkWriter,
	}

	if c.state.GameState == GameStatePlaying || c.state.GameState == GameStateOver {
		if err := drawSnapshot(ctx, snapshot, time.Now()); err != nil {
			return err
		}
	}

	c.canvas.Render(c.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter)

	c.drawUI(snapshot)

	return c.chunkWriter.Flush()
}

// drawSnapshot draws every entity in the snapshot onto the canvas, effects
// first so projectiles and the ship stay visible on top.
func drawSnapshot(ctx object.DrawContext, snap *session.Snapshot, now time.Time) error {
	layers := make([]object.Drawable, 0, len(snap.Explosions)+len(snap.Projectiles)+1)
	for i := range snap.Explosions {
		layers = append(layers, &snap.Explosions[i])
	}
	for i := range snap.Projectiles {
		layers = append(layers, &snap.Projectiles[i])
	}
	blinkOff := snap.Player.Invulnerable && now.UnixMilli()/blinkPeriodMs%2 == 1
	if snap.State == session.StateRunning && !blinkOff {
		layers = append(layers, snap.Player)
	}

	for _, d := range layers {
		if err := d.Draw(ctx); err != nil {
			return err
		}
	}
	return nil
}

// drawUI draws the text overlay.
func (c *Client) drawUI(snapshot *session.Snapshot) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if c.state.GameState == GameStateShutdown {
		c.drawShutdownScreen(centerX, centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch c.state.GameState {
	case GameStatePlaying:
		c.drawPlayingHUD(termWidth, termHeight, snapshot)
	case GameStateStart:
		c.drawStartScreen(centerX, centerY, snapshot.HighScore)
	case GameStateOver:
		c.drawPlayingHUD(termWidth, termHeight, snapshot)
		if c.state.Revealed {
			c.drawOverScreen(centerX, centerY, snapshot)
		}
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	cw := c.chunkWriter
	cw.Text(centerX, centerY-2, draw.AlignCenter, "INACTIVITY WARNING")

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(c.lastInput).Seconds()),
	)
	cw.Text(centerX, centerY, draw.AlignCenter, msg)
	cw.Text(centerX, centerY+2, draw.AlignCenter, "Press any key to continue")
}

var titleArt = []string{
	` ___   ___  ___   ___ ___   ___ _   _ _    _    ___ _____ ___ `,
	`|   \ / _ \|   \ / __| __| | _ ) | | | |  | |  | __|_   _/ __|`,
	`| |) | (_) | |) | (_ | _|  | _ \ |_| | |__| |__| _|  | | \__ \`,
	`|___/ \___/|___/ \___|___| |___/\___/|____|____|___| |_| |___/`,
	`                                                              `,
}

var gameOverArt = []string{
	`   ___   _   __  __ ___    _____   _____ ___  `,
	`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
	` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
	`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
	`                                              `,
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(centerX, centerY int, highScore float64) {
	cw := c.chunkWriter
	titleStartY := centerY - 7
	cw.TextBlock(centerX, titleStartY, titleArt)

	cw.Text(centerX, titleStartY+len(titleArt)+1, draw.AlignCenter, "~ Survive the swarm as long as you can ~")

	controlsY := titleStartY + len(titleArt) + 3
	cw.Text(centerX, controlsY, draw.AlignCenter, "Controls")
	controlLines := []string{
		"W A S D / Arrows . . Move",
		"H J K L  . . . . . . Move",
		"Q  . . . . . . . . . Quit",
	}
	for i, line := range controlLines {
		cw.Text(centerX, controlsY+1+i, draw.AlignCenter, line)
	}

	if highScore > 0 {
		cw.Text(centerX, controlsY+len(controlLines)+2, draw.AlignCenter, fmt.Sprintf("Best: %.3fs", highScore))
	}

	// Blinking start prompt
	if time.Now().UnixMilli()/600%2 == 0 {
		cw.Text(centerX, controlsY+len(controlLines)+4, draw.AlignCenter, ">>  Press SPACE to Start  <<")
	}
}

// drawPlayingHUD draws the in-game HUD.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawPlayingHUD(termWidth, termHeight int, snapshot *session.Snapshot) {
	cw := c.chunkWriter
	cw.Text(2, 1, draw.AlignLeft, timeText(snapshot.ElapsedText))

	cw.Text(termWidth-1, 1, draw.AlignRight, healthBar(snapshot.Player.Health))

	best := fmt.Sprintf("Best: %-10s", fmt.Sprintf("%.3fs", snapshot.HighScore))
	cw.Text(2, termHeight, draw.AlignLeft, best)
}

// timeText is the HUD elapsed time label.
func timeText(elapsed string) string {
	return fmt.Sprintf("Time: %-10s", elapsed+"s")
}

// healthBar renders health as a fixed-width bar followed by the number.
func healthBar(health int) string {
	health = max(min(health, object.MaxHealth), 0)
	filled := (health*healthBarWidth + object.MaxHealth - 1) / object.MaxHealth
	return fmt.Sprintf("HP [%s%s] %3d",
		strings.Repeat(string(draw.BlockFull), filled),
		strings.Repeat(string(draw.BlockLight), healthBarWidth-filled),
		health)
}

// drawOverScreen draws the end-of-session screen.
func (c *Client) drawOverScreen(centerX, centerY int, snapshot *session.Snapshot) {
	cw := c.chunkWriter
	titleStartY := centerY - 6
	cw.TextBlock(centerX, titleStartY, gameOverArt)

	row := titleStartY + len(gameOverArt) + 1
	cw.Text(centerX, row, draw.AlignCenter, fmt.Sprintf("You survived %.3f seconds!", snapshot.Final))
	cw.Text(centerX, row+2, draw.AlignCenter, fmt.Sprintf("Best: %.3f seconds", snapshot.HighScore))
	if snapshot.NewRecord {
		cw.Text(centerX, row+3, draw.AlignCenter, "** NEW RECORD **")
	}

	if time.Now().UnixMilli()/600%2 == 0 {
		cw.Text(centerX, row+5, draw.AlignCenter, ">>  Press SPACE to Restart  <<")
	}
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	cw := c.chunkWriter
	cw.Text(centerX, centerY-3, draw.AlignCenter, "SERVER SHUTTING DOWN")
	cw.Text(centerX, centerY-1, draw.AlignCenter, "The server is restarting for maintenance.")
	cw.Text(centerX, centerY, draw.AlignCenter, "Please reconnect in a moment.")

	remaining := int(c.state.shutdownTimer) + 1
	cw.Text(centerX, centerY+2, draw.AlignCenter, fmt.Sprintf("Disconnecting in %d seconds...", remaining))
	cw.Text(centerX, centerY+4, draw.AlignCenter, "Press Q to disconnect now")
}
