package webplay

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/tomz197/dodgebullets/internal/input"
	"github.com/tomz197/dodgebullets/internal/loop/config"
	"github.com/tomz197/dodgebullets/internal/loop/session"
	"github.com/tomz197/dodgebullets/internal/store"
)

const (
	readLimit    = 1 << 16
	pongWait     = 60 * time.Second
	pingInterval = 25 * time.Second
	writeWait    = 10 * time.Second
)

// Handler upgrades requests to WebSocket game sessions.
type Handler struct {
	store    session.ScoreStore
	logger   *log.Logger
	upgrader websocket.Upgrader
	newRand  func() *rand.Rand
}

// NewHandler creates a handler whose sessions share st for the high score.
func NewHandler(st session.ScoreStore, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Handler{
		store:  st,
		logger: logger,
		upgrader: websocket.Upgrader{
			// The page is served from the same binary; any origin may play.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		newRand: func() *rand.Rand { return rand.New(rand.NewSource(time.Now().UnixNano())) },
	}
}

// ServeHTTP runs one game session for the lifetime of the connection.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "err", err, "remote", r.RemoteAddr)
		return
	}
	defer conn.Close()

	logger := h.logger.With("remote", r.RemoteAddr)
	logger.Info("web session started")
	defer logger.Info("web session ended")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	ctrl := session.NewController(session.Options{
		Store:  h.store,
		Logger: logger,
		Rand:   h.newRand(),
	})
	go ctrl.Run(ctx)

	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	writeDone := make(chan struct{})
	go func() {
		defer close(writeDone)
		if err := writeLoop(ctx, conn, ctrl); err != nil && !errors.Is(err, context.Canceled) {
			logger.Debug("write loop stopped", "err", err)
		}
		cancel()
	}()

	if err := readLoop(conn, ctrl); err != nil {
		logger.Debug("read loop stopped", "err", err)
	}
	cancel()
	<-writeDone
}

// readLoop applies client messages to the controller until the socket fails.
func readLoop(conn *websocket.Conn, ctrl *session.Controller) error {
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		env, err := DecodeEnvelope(msg)
		if err != nil {
			continue
		}
		switch env.T {
		case MsgInput:
			in, err := DecodePayload[Input](env)
			if err != nil {
				continue
			}
			ctrl.SendIntent(input.Intent{Up: in.Up, Down: in.Down, Left: in.Left, Right: in.Right})
		case MsgDrag:
			d, err := DecodePayload[Drag](env)
			if err != nil {
				continue
			}
			if d.End {
				ctrl.SendIntent(input.Intent{})
			} else {
				ctrl.SendIntent(input.FromDrag(d.DX, d.DY))
			}
		case MsgStart:
			ctrl.RequestStart()
		}
	}
}

// writeLoop is the only writer on conn: welcome, periodic state, session
// events and pings.
func writeLoop(ctx context.Context, conn *websocket.Conn, ctrl *session.Controller) error {
	snap := ctrl.Snapshot()
	welcome := Welcome{
		Width:     snap.Screen.Width,
		Height:    snap.Screen.Height,
		TickHz:    int(time.Second / config.TickInterval),
		HighScore: snap.HighScore,
	}
	if err := writeMessage(conn, MsgWelcome, welcome); err != nil {
		return err
	}

	broadcast := time.NewTicker(config.BroadcastInterval)
	defer broadcast.Stop()
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return ctx.Err()
		case ev := <-ctrl.Events():
			var err error
			switch ev.Type {
			case session.EventSessionOver:
				err = writeMessage(conn, MsgOver, overFromEvent(ev))
			case session.EventRevealGameOver:
				err = writeMessage(conn, MsgReveal, overFromEvent(ev))
			}
			if err != nil {
				return err
			}
		case <-broadcast.C:
			if err := writeMessage(conn, MsgState, stateFromSnapshot(ctrl.Snapshot())); err != nil {
				return err
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		}
	}
}

func writeMessage(conn *websocket.Conn, t string, payload any) error {
	b, err := Encode(t, payload)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, b)
}

// HighScoreHandler serves the stored high score as JSON.
func HighScoreHandler(st session.ScoreStore, logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var v float64
		if st != nil {
			var err error
			v, err = st.Load(config.HighScoreKey)
			if err != nil && !errors.Is(err, store.ErrNoScore) {
				if logger != nil {
					logger.Error("load high score", "err", err)
				}
				http.Error(w, "high score unavailable", http.StatusInternalServerError)
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]float64{"highScore": v})
	}
}
