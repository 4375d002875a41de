package websocket

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 256
)

// client is one socket. Only writePump writes to conn.
type client struct {
	id     string
	conn   *websocket.Conn
	logger *slog.Logger
	send   chan []byte

	mu      sync.Mutex
	closed  bool
	watches map[string]func()
}

func newClient(id string, conn *websocket.Conn, logger *slog.Logger) *client {
	return &client{
		id:      id,
		conn:    conn,
		logger:  logger,
		send:    make(chan []byte, sendBufferSize),
		watches: make(map[string]func()),
	}
}

// enqueue - queues data without blocking; a client that cannot keep up loses the message.
func (that *client) enqueue(data []byte) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return
	}

	select {
	case that.send <- data:
	default:
		that.logger.Warn("send buffer full, dropping message", "clientID", that.id)
	}
}

func (that *client) watching(gameID string) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	_, ok := that.watches[gameID]
	return ok
}

// addWatch - records stop for gameID. It reports false, after calling stop, when the client is already closed.
func (that *client) addWatch(gameID string, stop func()) bool {
	that.mu.Lock()
	if that.closed {
		that.mu.Unlock()
		stop()
		return false
	}
	prev, ok := that.watches[gameID]
	that.watches[gameID] = stop
	that.mu.Unlock()

	if ok {
		prev()
	}

	return true
}

func (that *client) removeWatch(gameID string) {
	that.mu.Lock()
	stop, ok := that.watches[gameID]
	delete(that.watches, gameID)
	that.mu.Unlock()

	if ok {
		stop()
	}
}

// close - stops every watch and ends writePump.
func (that *client) close() {
	that.mu.Lock()
	if that.closed {
		that.mu.Unlock()
		return
	}
	that.closed = true
	watches := that.watches
	that.watches = nil
	close(that.send)
	that.mu.Unlock()

	for _, stop := range watches {
		stop()
	}
}

func (that *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = that.conn.Close()
	}()

	for {
		select {
		case data, ok := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = that.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := that.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				that.logger.Error("failed to write message", "clientID", that.id, "error", err)
				return
			}
		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
