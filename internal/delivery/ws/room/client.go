package ws_room

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/humanbelnik/kinomatch/core/internal/model"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 64
)

type Client struct {
	conn   *websocket.Conn
	send   chan []byte
	userID model.UserID
	// guarded by Hub.mu
	roomID model.RoomID

	closeOnce sync.Once
	closed    chan struct{}
}

func NewClient(conn *websocket.Conn, userID model.UserID) *Client {
	return &Client{
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		userID: userID,
		closed: make(chan struct{}),
	}
}

func (c *Client) enqueue(message []byte) bool {
	select {
	case <-c.closed:
		return false
	default:
	}

	select {
	case c.send <- message:
		return true
	default:
		return false
	}
}

func (c *Client) sendJSON(v any, logger *slog.Logger) {
	message, err := json.Marshal(v)
	if err != nil {
		logger.Error("failed to encode message", "user_id", c.userID, "error", err)
		return
	}
	c.enqueue(message)
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.closed)
	})
}

// readLoop hands every request to handle until the connection drops.
func (c *Client) readLoop(handle func(Request)) {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var req Request
		if err := c.conn.ReadJSON(&req); err != nil {
			return
		}
		handle(req)
	}
}

func (c *Client) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.closed:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
