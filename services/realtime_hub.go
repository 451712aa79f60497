package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/Varun6712/smart-calories/models"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	// writeWait bounds a single frame write to a client.
	writeWait = 10 * time.Second
	// sendBuffer is how many events a client may lag behind before it is evicted.
	sendBuffer = 16
)

// WSConn is the subset of *websocket.Conn the hub writes to.
type WSConn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

type WSClient struct {
	mu   sync.Mutex // gorilla connections allow one concurrent writer
	Conn WSConn

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func NewWSClient(conn WSConn) *WSClient {
	return &WSClient{
		Conn: conn,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
}

// Write sends one frame with a deadline. Safe for concurrent use.
func (c *WSClient) Write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.Conn.WriteMessage(messageType, data)
}

// writePump drains queued events until the client is closed or a write fails.
func (c *WSClient) writePump(onError func(error)) {
	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			if err := c.Write(websocket.TextMessage, msg); err != nil {
				onError(err)
				return
			}
		}
	}
}

func (c *WSClient) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.Conn.Close()
	})
}

// RealtimeHub fans log events out to connected websocket clients. Broadcast
// never waits on a client: each one has its own queue and writer goroutine.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[*WSClient]struct{}
	logger  *zap.Logger
}

func NewRealtimeHub(logger *zap.Logger) *RealtimeHub {
	return &RealtimeHub{clients: make(map[*WSClient]struct{}), logger: logger}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	go c.writePump(func(err error) {
		h.logger.Debug("realtime write failed", zap.Error(err))
		h.Unregister(c)
	})
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if ok {
		c.close()
	}
}

func (h *RealtimeHub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast queues payload for every client. Clients whose queue is full are
// evicted.
func (h *RealtimeHub) Broadcast(payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("marshal realtime payload", zap.Error(err))
		return
	}

	var slow []*WSClient
	h.mu.RLock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warn("evicting slow realtime client")
		h.Unregister(c)
	}
}

// PublishLog implements LogPublisher.
func (h *RealtimeHub) PublishLog(entry models.LogEntry) {
	h.Broadcast(newLogCreated(entry))
}
