// Package session runs one dodge-the-bullets play-through at a time: spawn
// ramp, motion, collision, damage and the high-score bookkeeping at the end.
package session

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/dodgebullets/internal/input"
	"github.com/tomz197/dodgebullets/internal/loop/config"
	"github.com/tomz197/dodgebullets/internal/object"
	"github.com/tomz197/dodgebullets/internal/store"
)

// ScoreStore persists the high score. Several controllers may share one
// store, so SaveIfHigher must compare and write as a single step.
type ScoreStore interface {
	Load(key string) (float64, error)
	SaveIfHigher(key string, value float64) (best float64, saved bool, err error)
}

// Options configures a Controller. Zero fields get defaults.
type Options struct {
	Clock  Clock         // Defaults to SystemClock
	Store  ScoreStore    // Nil keeps the high score in memory only
	Logger *log.Logger   // Defaults to a discarding logger
	Rand   *rand.Rand    // Defaults to a time-seeded source
	Screen object.Screen // Defaults to the 800x600 playfield
}

// Controller owns the session state and the timers that drive it.
//
// Start, Reset, Advance and SetIntent must be called from a single goroutine,
// normally the one running Run. Other goroutines use SendIntent,
// RequestStart, RequestReset, Snapshot and Events.
type Controller struct {
	clock   Clock
	store   ScoreStore
	logger  *log.Logger
	spawner *object.BulletSpawner

	world      *World
	state      State
	generation uint64
	startedAt  time.Time
	elapsed    time.Duration
	final      float64
	highScore  float64
	newRecord  bool
	revealed   bool
	intent     input.Intent

	sched     scheduler
	rampTimer timerID

	snapshot atomic.Pointer[Snapshot]
	events   chan Event
	intentCh chan input.Intent
	startCh  chan struct{}
	resetCh  chan struct{}
}

// NewController creates an idle controller and loads the stored high score.
func NewController(opts Options) *Controller {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Screen.Width == 0 || opts.Screen.Height == 0 {
		opts.Screen = object.NewScreen(config.PlayfieldWidth, config.PlayfieldHeight)
	}

	c := &Controller{
		clock:    opts.Clock,
		store:    opts.Store,
		logger:   opts.Logger,
		spawner:  object.NewBulletSpawner(opts.Rand),
		world:    NewWorld(opts.Screen),
		events:   make(chan Event, 16),
		intentCh: make(chan input.Intent, 64),
		startCh:  make(chan struct{}, 1),
		resetCh:  make(chan struct{}, 1),
	}
	c.highScore = c.loadHighScore()
	c.publish()
	return c
}

func (c *Controller) loadHighScore() float64 {
	if c.store == nil {
		return 0
	}
	v, err := c.store.Load(config.HighScoreKey)
	switch {
	case errors.Is(err, store.ErrNoScore):
		return 0
	case err != nil:
		c.logger.Warn("could not load high score, starting from zero", "err", err)
		return 0
	}
	return v
}

// Run drives the controller until ctx is cancelled.
func (c *Controller) Run(ctx context.Context) {
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()

	for {
		wait := time.Hour
		if due, ok := c.sched.next(); ok {
			wait = max(due.Sub(c.clock.Now()), 0)
		}
		timer.Reset(wait)

		select {
		case <-ctx.Done():
			return
		case in := <-c.intentCh:
			c.SetIntent(in)
		case <-c.startCh:
			c.Start(c.clock.Now())
		case <-c.resetCh:
			c.Reset(c.clock.Now())
		case <-timer.C:
			c.Advance(c.clock.Now())
		}
	}
}

// SendIntent queues a new movement intent. Drops it if the queue is full.
func (c *Controller) SendIntent(in input.Intent) {
	select {
	case c.intentCh <- in:
	default:
	}
}

// RequestStart asks Run to start (or restart) a session.
func (c *Controller) RequestStart() {
	select {
	case c.startCh <- struct{}{}:
	default:
	}
}

// RequestReset asks Run to return to Idle.
func (c *Controller) RequestReset() {
	select {
	case c.resetCh <- struct{}{}:
	default:
	}
}

// Events returns the event channel. Events are dropped when nobody reads.
func (c *Controller) Events() <-chan Event {
	return c.events
}

// Snapshot returns the latest published snapshot.
func (c *Controller) Snapshot() *Snapshot {
	return c.snapshot.Load()
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// HighScore returns the best score known to this controller.
func (c *Controller) HighScore() float64 {
	return c.highScore
}

// SetIntent replaces the current movement intent.
func (c *Controller) SetIntent(in input.Intent) {
	c.intent = in
}

// Start begins a new session at now, discarding whatever came before.
func (c *Controller) Start(now time.Time) {
	c.sched.cancelAll()
	c.generation++
	gen := c.generation

	c.world.Reset()
	c.intent = input.Intent{}
	c.startedAt = now
	c.elapsed = 0
	c.final = 0
	c.newRecord = false
	c.revealed = false
	c.state = StateRunning

	p := c.world.Player
	c.world.AddProjectiles(c.spawner.SpawnBatch(c.world.Screen, p.X, p.Y, object.InitialBullets)...)

	c.sched.every(now, config.TickInterval, c.guard(gen, c.tick))
	c.rampTimer = c.sched.every(now, config.SpawnInterval, c.guard(gen, c.ramp))

	c.logger.Debug("session started", "generation", gen)
	c.emit(Event{Type: EventSessionStarted, Generation: gen})
	c.publish()
}

// Reset cancels all timers and returns to Idle with an empty world.
func (c *Controller) Reset(now time.Time) {
	c.sched.cancelAll()
	c.generation++
	c.world.Reset()
	c.intent = input.Intent{}
	c.state = StateIdle
	c.elapsed = 0
	c.final = 0
	c.newRecord = false
	c.revealed = false
	c.publish()
}

// Advance runs every timer due at or before now.
func (c *Controller) Advance(now time.Time) {
	if c.sched.run(now) > 0 {
		c.publish()
	}
}

// guard wraps fn so it does nothing once the session it belongs to is gone.
func (c *Controller) guard(gen uint64, fn func(now time.Time)) func(now time.Time) {
	return func(now time.Time) {
		if c.generation != gen {
			return
		}
		fn(now)
	}
}

// tick is one simulation step.
func (c *Controller) tick(now time.Time) {
	w := c.world
	ctx := object.UpdateContext{Intent: c.intent, Screen: w.Screen}

	if c.state == StateRunning {
		w.Player.Update(ctx)
		w.cullProjectiles(func(p *object.Projectile) bool {
			return p.Update(ctx)
		})
		c.elapsed = now.Sub(c.startedAt)

		if firstHit(w.Player, w.Projectiles) != nil {
			c.hit(now)
		}
	}

	w.cullExplosions(func(e *object.Explosion) bool {
		return e.Update(ctx)
	})
}

// hit applies one hit to the player.
func (c *Controller) hit(now time.Time) {
	p := c.world.Player
	c.world.AddExplosion(object.NewExplosion(p.X, p.Y))
	dead := p.Damage(config.HitDamage)
	p.Invulnerable = true

	c.sched.after(now, config.InvulnerabilityDuration, c.guard(c.generation, func(time.Time) {
		c.world.Player.Invulnerable = false
	}))
	c.emit(Event{Type: EventPlayerHit, Generation: c.generation, Health: p.Health})

	if dead {
		c.end(now)
	}
}

// ramp tops the projectile count up to the ramp target.
func (c *Controller) ramp(now time.Time) {
	if c.state != StateRunning {
		return
	}
	n := object.RampDeficit(now.Sub(c.startedAt), len(c.world.Projectiles))
	if n == 0 {
		return
	}
	p := c.world.Player
	c.world.AddProjectiles(c.spawner.SpawnBatch(c.world.Screen, p.X, p.Y, n)...)
}

// end finishes the running session.
func (c *Controller) end(now time.Time) {
	c.sched.cancel(c.rampTimer)
	c.state = StateOver
	c.elapsed = c.elapsed.Round(time.Millisecond)
	c.final = c.elapsed.Seconds()
	c.recordScore()

	gen := c.generation
	c.logger.Info("session over", "final", FormatSeconds(c.elapsed), "record", c.newRecord)
	c.emit(Event{Type: EventSessionOver, Generation: gen, Final: c.final, HighScore: c.highScore, NewRecord: c.newRecord})

	c.sched.after(now, config.RevealDelay, c.guard(gen, func(time.Time) {
		c.revealed = true
		c.emit(Event{Type: EventRevealGameOver, Generation: gen, Final: c.final, HighScore: c.highScore, NewRecord: c.newRecord})
	}))
}

// recordScore compares the final score against the stored best and saves it
// when it is a new record. Other sessions may have raised the stored value
// since this controller loaded it.
func (c *Controller) recordScore() {
	if c.store == nil {
		c.newRecord = c.final > c.highScore
		c.highScore = max(c.highScore, c.final)
		return
	}

	best, saved, err := c.store.SaveIfHigher(config.HighScoreKey, c.final)
	if err != nil {
		c.logger.Error("could not save high score", "err", err)
		c.newRecord = c.final > c.highScore
		c.highScore = max(c.highScore, c.final)
		return
	}
	c.newRecord = saved
	c.highScore = best
}

func (c *Controller) emit(ev Event) {
	select {
	case c.events <- ev:
	default:
	}
}

// publish stores a fresh snapshot for readers on other goroutines.
func (c *Controller) publish() {
	w := c.world
	snap := &Snapshot{
		State:       c.state,
		Player:      *w.Player,
		Projectiles: make([]object.Projectile, len(w.Projectiles)),
		Explosions:  make([]object.Explosion, len(w.Explosions)),
		Screen:      w.Screen,
		Elapsed:     c.elapsed,
		ElapsedText: FormatSeconds(c.elapsed),
		Final:       c.final,
		HighScore:   c.highScore,
		NewRecord:   c.newRecord,
		Revealed:    c.revealed,
		Generation:  c.generation,
	}
	for i, p := range w.Projectiles {
		snap.Projectiles[i] = *p
	}
	for i, e := range w.Explosions {
		snap.Explosions[i] = *e
	}
	c.snapshot.Store(snap)
}
