package inspect

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/muurk/micromodal/internal/dialog"
	"github.com/muurk/micromodal/internal/logging"
	"github.com/muurk/micromodal/internal/version"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 512

	clientQueue    = 64
	broadcastQueue = 256
)

// Message kinds
const (
	KindHello      = "hello"
	KindTransition = "transition"
)

// ErrHubClosed is returned by Broadcast after Close.
var ErrHubClosed = errors.New("inspector hub closed")

// Message is one event sent to inspector clients.
type Message struct {
	Kind     string    `json:"kind"`
	DialogID string    `json:"dialog_id,omitempty"`
	Name     string    `json:"name,omitempty"`
	From     string    `json:"from,omitempty"`
	To       string    `json:"to,omitempty"`
	Depth    int       `json:"depth"`
	Version  string    `json:"version,omitempty"`
	At       time.Time `json:"at"`
}

// Stats is a snapshot of hub counters.
type Stats struct {
	Clients int   `json:"clients"`
	Sent    int64 `json:"sent"`
	Dropped int64 `json:"dropped"`
}

type client struct {
	conn   *websocket.Conn
	send   chan Message
	remote string
}

// Hub fans messages out to connected websocket clients.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}

	broadcast chan Message
	done      chan struct{}
	closed    atomic.Bool
	wg        sync.WaitGroup

	sent    atomic.Int64
	dropped atomic.Int64

	upgrader websocket.Upgrader
	log      *zap.Logger
}

// NewHub creates a hub and starts its fan-out goroutine.
func NewHub() *Hub {
	h := &Hub{
		clients:   make(map[*client]struct{}),
		broadcast: make(chan Message, broadcastQueue),
		done:      make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Any origin may watch.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		log: logging.Named("inspect"),
	}
	h.wg.Add(1)
	go h.run()
	return h
}

func (h *Hub) run() {
	defer h.wg.Done()
	for {
		select {
		case m := <-h.broadcast:
			h.fanout(m)
		case <-h.done:
			return
		}
	}
}

// fanout queues m for every client. Clients with a full queue are dropped.
func (h *Hub) fanout(m Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- m:
			h.sent.Inc()
		default:
			h.dropped.Inc()
			h.log.Warn("Dropping slow inspector client", zap.String("remote_addr", c.remote))
			delete(h.clients, c)
			close(c.send)
		}
	}
}

// Broadcast queues m for all clients without blocking. When the hub's own
// queue is full the message is counted as dropped.
func (h *Hub) Broadcast(m Message) error {
	if h.closed.Load() {
		return ErrHubClosed
	}
	if m.At.IsZero() {
		m.At = time.Now()
	}
	select {
	case h.broadcast <- m:
	default:
		h.dropped.Inc()
	}
	return nil
}

// DialogTransition implements dialog.Observer.
func (h *Hub) DialogTransition(t dialog.Transition) {
	_ = h.Broadcast(Message{
		Kind:     KindTransition,
		DialogID: t.DialogID,
		Name:     t.Name,
		From:     t.From.String(),
		To:       t.To.String(),
		Depth:    t.Depth,
	})
}

// Stats returns the current counters.
func (h *Hub) Stats() Stats {
	h.mu.Lock()
	n := len(h.clients)
	h.mu.Unlock()
	return Stats{Clients: n, Sent: h.sent.Load(), Dropped: h.dropped.Load()}
}

// ServeWS upgrades the request and streams messages to the client until
// either side closes.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	if h.closed.Load() {
		http.Error(w, ErrHubClosed.Error(), http.StatusServiceUnavailable)
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Debug("Websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{conn: conn, send: make(chan Message, clientQueue), remote: r.RemoteAddr}
	c.send <- Message{Kind: KindHello, Version: version.Version, At: time.Now()}

	h.mu.Lock()
	if h.closed.Load() {
		h.mu.Unlock()
		_ = conn.Close()
		return
	}
	h.clients[c] = struct{}{}
	h.wg.Add(1)
	h.mu.Unlock()
	logging.LogClient(c.remote, "connected")

	go h.writePump(c)
	h.readPump(c)
}

// readPump discards client frames and unregisters the client when the
// connection ends.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		logging.LogClient(c.remote, "disconnected")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
		h.wg.Done()
	}()

	for {
		select {
		case m, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteJSON(m); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// Close disconnects every client and stops the fan-out goroutine. It is
// safe to call more than once.
func (h *Hub) Close() {
	if !h.closed.CompareAndSwap(false, true) {
		return
	}
	close(h.done)

	h.mu.Lock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()

	h.wg.Wait()
}
