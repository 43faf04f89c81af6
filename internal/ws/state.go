package ws

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	diag "github.com/coreman2200/hangarbay/internal/diagnostics"
	"github.com/coreman2200/hangarbay/internal/drill"
	"github.com/coreman2200/hangarbay/internal/input"
	"github.com/coreman2200/hangarbay/internal/render"
	"github.com/coreman2200/hangarbay/internal/scene"
)

const writeWait = 200 * time.Millisecond

// Controller receives decoded control messages. Implementations must be
// safe to call from the HTTP goroutines.
type Controller interface {
	Command(input.Command)
	Look(x, y float64)
	RunDrill(drill.Plan) error
}

// Hub fans frames and diagnostics out to websocket clients and feeds
// control messages to the Controller. It is a render.Driver: Write runs on
// the frame loop goroutine, so Snapshot may read scene state directly.
type Hub struct {
	mu          sync.RWMutex
	wmu         sync.Mutex // serialises broadcasts; one writer per conn
	clients     map[*websocket.Conn]string
	diagClients map[*websocket.Conn]string

	Ctl      Controller
	Snapshot func() scene.Snapshot
	Log      zerolog.Logger

	// Throttle limits frame broadcasts; zero sends every frame.
	Throttle time.Duration
	// IncludeCalls adds the full draw list to each frame message.
	IncludeCalls bool

	up        websocket.Upgrader
	startTime time.Time
	lastEmit  time.Time
	frameID   uint64
	last      *scene.Snapshot
}

func NewHub(ctl Controller, snapshot func() scene.Snapshot, log zerolog.Logger) *Hub {
	return &Hub{
		clients:     map[*websocket.Conn]string{},
		diagClients: map[*websocket.Conn]string{},
		Ctl:         ctl,
		Snapshot:    snapshot,
		Log:         log,
		up:          websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		startTime:   time.Now(),
	}
}

type frameMsg struct {
	T       int64             `json:"t"`
	FrameID uint64            `json:"frame_id"`
	DT      float32           `json:"dt"`
	Calls   int               `json:"calls"`
	Skipped int               `json:"skipped"`
	Scene   *scene.Snapshot   `json:"scene,omitempty"`
	Draw    []render.DrawCall `json:"draw,omitempty"`
}

// Write implements render.Driver.
func (h *Hub) Write(f *render.Frame) error {
	now := time.Now()
	h.mu.Lock()
	h.frameID = f.ID
	if h.Snapshot != nil {
		snap := h.Snapshot()
		h.last = &snap
	}
	if h.Throttle > 0 && h.lastEmit.Add(h.Throttle).After(now) {
		h.mu.Unlock()
		return nil
	}
	h.lastEmit = now
	msg := frameMsg{T: now.UnixNano(), FrameID: f.ID, DT: f.DeltaTime, Calls: len(f.Calls), Skipped: f.Skipped, Scene: h.last}
	if h.IncludeCalls {
		msg.Draw = f.Calls
	}
	h.mu.Unlock()

	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	h.broadcast(h.clients, b)
	return nil
}

// Diag pushes a diagnostic to every /diag client.
func (h *Hub) Diag(d diag.Diagnostic) {
	b, err := json.Marshal(d)
	if err != nil {
		return
	}
	h.broadcast(h.diagClients, b)
}

func (h *Hub) broadcast(set map[*websocket.Conn]string, b []byte) {
	h.wmu.Lock()
	defer h.wmu.Unlock()
	h.mu.RLock()
	var dead []*websocket.Conn
	for c, id := range set {
		c.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
			h.Log.Debug().Err(err).Str("client", id).Msg("write")
			dead = append(dead, c)
		}
	}
	h.mu.RUnlock()
	if len(dead) == 0 {
		return
	}
	h.mu.Lock()
	for _, c := range dead {
		delete(set, c)
		c.Close()
	}
	h.mu.Unlock()
}

func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) HandleFramesWS(w http.ResponseWriter, r *http.Request) {
	h.subscribe(w, r, h.clients, "frames")
}

func (h *Hub) HandleDiagWS(w http.ResponseWriter, r *http.Request) {
	h.subscribe(w, r, h.diagClients, "diag")
}

func (h *Hub) subscribe(w http.ResponseWriter, r *http.Request, set map[*websocket.Conn]string, kind string) {
	conn, err := h.up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	id := uuid.NewString()
	h.mu.Lock()
	set[conn] = id
	h.mu.Unlock()
	h.Log.Info().Str("client", id).Str("stream", kind).Msg("client connected")

	go func() {
		defer func() {
			h.mu.Lock()
			if _, ok := set[conn]; ok {
				delete(set, conn)
				conn.Close()
			}
			h.mu.Unlock()
			h.Log.Info().Str("client", id).Str("stream", kind).Msg("client gone")
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// ControlMsg is one control request. Exactly one field is expected.
type ControlMsg struct {
	Command  string  `json:"command,omitempty"`
	Key      string  `json:"key,omitempty"`
	Action   string  `json:"action,omitempty"` // press (default), repeat, release
	Look     *Cursor `json:"look,omitempty"`
	RunDrill string  `json:"runDrill,omitempty"`
	Reverse  int     `json:"reverseAfter,omitempty"`
}

type Cursor struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Ack struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func (h *Hub) HandleControlWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg ControlMsg
		ack := Ack{OK: true}
		if err := json.Unmarshal(data, &msg); err != nil {
			ack = Ack{Error: "bad json: " + err.Error()}
		} else if err := h.ApplyControl(msg); err != nil {
			ack = Ack{Error: err.Error()}
		}
		b, _ := json.Marshal(ack)
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
			return
		}
	}
}

// ApplyControl decodes msg into a Controller call.
func (h *Hub) ApplyControl(msg ControlMsg) error {
	if h.Ctl == nil {
		return errors.New("ws: no controller")
	}
	switch {
	case msg.Command != "":
		c, err := input.ParseCommand(msg.Command)
		if err != nil {
			return err
		}
		h.Ctl.Command(c)
	case msg.Key != "":
		a := input.Press
		switch msg.Action {
		case "", "press":
		case "repeat":
			a = input.Repeat
		case "release":
			a = input.Release
		default:
			return fmt.Errorf("ws: unknown key action %q", msg.Action)
		}
		if c, ok := input.Translate(input.Key(msg.Key), a); ok {
			h.Ctl.Command(c)
		}
	case msg.Look != nil:
		h.Ctl.Look(msg.Look.X, msg.Look.Y)
	case msg.RunDrill != "":
		k, err := drill.ParseKind(msg.RunDrill)
		if err != nil {
			h.Diag(diag.Diagnostic{
				Severity: diag.Warn, Code: diag.CodeDrill, Summary: "Unknown drill name",
				Evidence: map[string]any{"name": msg.RunDrill}, Time: time.Now(),
			})
			return err
		}
		h.Diag(diag.Diagnostic{Severity: diag.Info, Code: diag.CodeDrill, Summary: "Running drill", Detail: string(k), Time: time.Now()})
		return h.Ctl.RunDrill(drill.Plan{Kind: k, ReverseAfter: msg.Reverse})
	default:
		return errors.New("ws: empty control message")
	}
	return nil
}

func (h *Hub) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	resp := map[string]any{
		"frame_id": h.frameID,
		"uptime_s": time.Since(h.startTime).Seconds(),
		"clients":  len(h.clients),
	}
	if h.last != nil {
		resp["emergency"] = h.last.Emergency
		resp["lines"] = h.last.Counts
		resp["policy"] = h.last.Policy
	}
	h.mu.RUnlock()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// Routes mounts every endpoint on mux.
func (h *Hub) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/ws", h.HandleFramesWS)
	mux.HandleFunc("/diag", h.HandleDiagWS)
	mux.HandleFunc("/control", h.HandleControlWS)
	mux.HandleFunc("/health", h.HandleHealth)
}
