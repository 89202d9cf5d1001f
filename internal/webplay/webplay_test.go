package webplay

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomz197/dodgebullets/internal/loop/config"
	"github.com/tomz197/dodgebullets/internal/store"
)

func TestEncodeDecodeEnvelope(t *testing.T) {
	b, err := Encode(MsgDrag, Drag{DX: 12, DY: -3})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.HasPrefix(string(b), `{"t":"drag","p":{`) {
		t.Fatalf("unexpected wire form %s", b)
	}

	env, err := DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("DecodeEnvelope: %v", err)
	}
	d, err := DecodePayload[Drag](env)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if d.DX != 12 || d.DY != -3 || d.End {
		t.Fatalf("decoded %+v", d)
	}
}

func TestEncodeRejectsBadInput(t *testing.T) {
	if _, err := Encode("", Start{}); err == nil {
		t.Error("empty type accepted")
	}
	if _, err := Encode(MsgStart, nil); err == nil {
		t.Error("nil payload accepted")
	}
	if _, err := DecodeEnvelope(nil); err == nil {
		t.Error("empty message accepted")
	}
	if _, err := DecodePayload[Input](Envelope{T: MsgInput}); err == nil {
		t.Error("empty payload accepted")
	}
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, typ string, payload any) {
	t.Helper()
	b, err := Encode(typ, payload)
	if err != nil {
		t.Fatal(err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
		t.Fatalf("write: %v", err)
	}
}

// readUntil reads messages until match accepts one or the deadline passes.
func readUntil(t *testing.T, conn *websocket.Conn, typ string, match func(Envelope) bool) Envelope {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("waiting for %q: %v", typ, err)
		}
		env, err := DecodeEnvelope(msg)
		if err != nil {
			t.Fatalf("bad envelope: %v", err)
		}
		if env.T == typ && (match == nil || match(env)) {
			return env
		}
	}
}

func TestHandlerPlaysSession(t *testing.T) {
	srv := httptest.NewServer(NewHandler(nil, nil))
	defer srv.Close()
	conn := dial(t, srv)

	env := readUntil(t, conn, MsgWelcome, nil)
	w, err := DecodePayload[Welcome](env)
	if err != nil {
		t.Fatal(err)
	}
	if w.Width != config.PlayfieldWidth || w.Height != config.PlayfieldHeight {
		t.Fatalf("welcome = %+v", w)
	}

	send(t, conn, MsgStart, Start{})
	env = readUntil(t, conn, MsgState, func(env Envelope) bool {
		st, err := DecodePayload[State](env)
		return err == nil && st.State == "running"
	})
	st, _ := DecodePayload[State](env)
	if st.Gen != 1 || len(st.Projectiles) < 5 || st.Player.Health != 100 {
		t.Fatalf("first running state = %+v", st)
	}

	send(t, conn, MsgDrag, Drag{DX: -50})
	readUntil(t, conn, MsgState, func(env Envelope) bool {
		st, err := DecodePayload[State](env)
		return err == nil && st.Player.X < 400
	})
}

func TestHighScoreHandler(t *testing.T) {
	m := store.NewManager(t.TempDir())

	rec := httptest.NewRecorder()
	HighScoreHandler(m, nil)(rec, httptest.NewRequest(http.MethodGet, "/api/highscore", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"highScore":0`) {
		t.Fatalf("empty store response %d %s", rec.Code, rec.Body.String())
	}

	if _, _, err := m.SaveIfHigher(config.HighScoreKey, 12.5); err != nil {
		t.Fatal(err)
	}
	rec = httptest.NewRecorder()
	HighScoreHandler(m, nil)(rec, httptest.NewRequest(http.MethodGet, "/api/highscore", nil))
	var body map[string]float64
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["highScore"] != 12.5 {
		t.Fatalf("highScore = %v, want 12.5", body["highScore"])
	}
}
