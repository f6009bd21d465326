// Package spectate streams battle events to websocket watchers.
package spectate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle"
)

// Defaults for Config
const (
	DefaultBufferSize   = 16
	DefaultWriteTimeout = 5 * time.Second
)

// Message is one frame sent to watchers
type Message struct {
	Type       string      `json:"type"`
	BattleID   string      `json:"battle_id"`
	Turn       int         `json:"turn"`
	Player     string      `json:"player"`
	Opponent   string      `json:"opponent"`
	PlayerHP   int         `json:"player_hp"`
	OpponentHP int         `json:"opponent_hp"`
	Events     []turnEvent `json:"events,omitempty"`
	BattleOver bool        `json:"battle_over"`
	Result     string      `json:"result"`
}

type turnEvent struct {
	Type    string `json:"type"`
	Side    string `json:"side,omitempty"`
	Message string `json:"message"`
}

// Config configures a Hub
type Config struct {
	EventBus     events.EventBus
	BufferSize   int
	WriteTimeout time.Duration
	// CheckOrigin overrides the websocket origin check
	CheckOrigin func(r *http.Request) bool
}

// Validate checks the config and fills defaults
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.BufferSize < 0 {
		vb.InvalidField("BufferSize", "must not be negative")
	}
	if c.BufferSize == 0 {
		c.BufferSize = DefaultBufferSize
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	return vb.Build()
}

type watcher struct {
	battleID string
	conn     *websocket.Conn
	send     chan []byte
	once     sync.Once
}

func (w *watcher) close() {
	w.once.Do(func() { close(w.send) })
}

// Hub fans battle events out to the watchers of each battle
type Hub struct {
	bus          events.EventBus
	upgrader     websocket.Upgrader
	bufferSize   int
	writeTimeout time.Duration
	subs         []string

	mu       sync.RWMutex
	watchers map[string]map[*watcher]struct{}
}

// NewHub subscribes a hub to the battle events on the bus
func NewHub(cfg *Config) (*Hub, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	h := &Hub{
		bus:          cfg.EventBus,
		upgrader:     websocket.Upgrader{CheckOrigin: cfg.CheckOrigin},
		bufferSize:   cfg.BufferSize,
		writeTimeout: cfg.WriteTimeout,
		watchers:     make(map[string]map[*watcher]struct{}),
	}
	h.subs = []string{
		h.bus.SubscribeFunc(battle.EventBattleStarted, 0, h.handle),
		h.bus.SubscribeFunc(battle.EventTurnPlayed, 0, h.handle),
	}
	return h, nil
}

// Close unsubscribes from the bus and disconnects every watcher
func (h *Hub) Close() error {
	for _, id := range h.subs {
		if err := h.bus.Unsubscribe(id); err != nil {
			return errors.Wrap(err, "failed to unsubscribe")
		}
	}
	h.subs = nil

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, set := range h.watchers {
		for w := range set {
			w.close()
		}
	}
	h.watchers = make(map[string]map[*watcher]struct{})
	return nil
}

// Watchers counts the connections following a battle
func (h *Hub) Watchers(battleID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.watchers[battleID])
}

// handle encodes the event once and queues it for every watcher. A
// watcher whose buffer is full misses the frame.
func (h *Hub) handle(ctx context.Context, e events.Event) error {
	b, ok := battle.BattleFrom(e)
	if !ok {
		return nil
	}

	msg := Message{
		Type:       e.Type(),
		BattleID:   b.ID,
		Turn:       b.Turn,
		Player:     b.Player.DisplayName(),
		Opponent:   b.Opponent.DisplayName(),
		PlayerHP:   b.Player.HP,
		OpponentHP: b.Opponent.HP,
		BattleOver: b.IsOver(),
		Result:     b.Result(),
	}
	if report, ok := battle.ReportFrom(e); ok {
		for _, ev := range report.Events {
			msg.Events = append(msg.Events, turnEvent{Type: string(ev.Type), Side: string(ev.Side), Message: ev.Message})
		}
	}

	frame, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "failed to encode spectator message")
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for w := range h.watchers[b.ID] {
		select {
		case w.send <- frame:
		default:
			slog.WarnContext(ctx, "spectator too slow, dropping frame", "battle_id", b.ID)
		}
	}
	return nil
}

// ServeHTTP upgrades the request and streams the battle named by the
// battle_id path value or query parameter
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	battleID := r.PathValue("battle_id")
	if battleID == "" {
		battleID = r.URL.Query().Get("battle_id")
	}
	if battleID == "" {
		writeError(w, errors.InvalidArgument("battle_id is required"))
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.WarnContext(r.Context(), "websocket upgrade failed", "error", err)
		return
	}

	wt := &watcher{battleID: battleID, conn: conn, send: make(chan []byte, h.bufferSize)}
	h.register(wt)
	slog.DebugContext(r.Context(), "spectator joined", "battle_id", battleID)

	go h.writeLoop(wt)
	h.readLoop(wt)
}

func writeError(w http.ResponseWriter, err *errors.Error) {
	http.Error(w, err.Message, err.Code.HTTPStatus())
}

func (h *Hub) register(w *watcher) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.watchers[w.battleID]
	if !ok {
		set = make(map[*watcher]struct{})
		h.watchers[w.battleID] = set
	}
	set[w] = struct{}{}
}

func (h *Hub) unregister(w *watcher) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.watchers[w.battleID]; ok {
		delete(set, w)
		if len(set) == 0 {
			delete(h.watchers, w.battleID)
		}
	}
	w.close()
}

// readLoop discards client frames and returns once the connection drops
func (h *Hub) readLoop(w *watcher) {
	defer h.unregister(w)
	for {
		if _, _, err := w.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(w *watcher) {
	defer func() { _ = w.conn.Close() }()
	for frame := range w.send {
		_ = w.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
		if err := w.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			slog.Debug("spectator write failed", "battle_id", w.battleID, "error", err)
			return
		}
	}
	_ = w.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
	_ = w.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
