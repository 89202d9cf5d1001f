package webplay

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tomz197/dodgebullets/internal/loop/session"
)

// Encode wraps payload in an envelope of type t.
func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, errors.New("encode: empty envelope type")
	}
	if payload == nil {
		return nil, fmt.Errorf("encode %q: nil payload", t)
	}
	pb, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %q: %w", t, err)
	}
	return json.Marshal(Envelope{T: t, P: pb})
}

// DecodeEnvelope parses the outer envelope of a message.
func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, errors.New("decode: empty message")
	}
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return e, nil
}

// DecodePayload parses the payload of env as T.
func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 {
		return out, fmt.Errorf("empty payload for type %q", env.T)
	}
	if err := json.Unmarshal(env.P, &out); err != nil {
		return out, fmt.Errorf("decode %q: %w", env.T, err)
	}
	return out, nil
}

// stateFromSnapshot converts a session snapshot to its wire form.
func stateFromSnapshot(s *session.Snapshot) State {
	st := State{
		State:     s.State.String(),
		Gen:       s.Generation,
		Time:      s.ElapsedText,
		HighScore: s.HighScore,
		Player: PlayerSnapshot{
			X:            s.Player.X,
			Y:            s.Player.Y,
			A:            s.Player.Angle,
			Size:         s.Player.Size,
			Health:       s.Player.Health,
			Invulnerable: s.Player.Invulnerable,
		},
		Projectiles: make([]ProjectileSnapshot, len(s.Projectiles)),
		Explosions:  make([]ExplosionSnapshot, len(s.Explosions)),
	}
	for i, p := range s.Projectiles {
		st.Projectiles[i] = ProjectileSnapshot{X: p.X, Y: p.Y, Size: p.Size, Shape: p.Shape.String(), Color: p.Color}
	}
	for i, e := range s.Explosions {
		st.Explosions[i] = ExplosionSnapshot{X: e.X, Y: e.Y, R: e.Radius}
	}
	return st
}

// overFromEvent converts a session-over or reveal event to its wire form.
func overFromEvent(ev session.Event) Over {
	return Over{Gen: ev.Generation, Final: ev.Final, HighScore: ev.HighScore, NewRecord: ev.NewRecord}
}
