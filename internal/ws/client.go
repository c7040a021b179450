package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

// sendBuffer bounds how far a slow consumer may fall behind before it
// is treated as dead.
const sendBuffer = 256

// Client is one live channel for one user. Delivery goes through the
// buffered send queue so a stalled socket never blocks a broadcast.
type Client struct {
	UserID string

	conn      *websocket.Conn
	send      chan []byte
	closed    chan struct{}
	closeOnce sync.Once
}

func NewClient(userID string, conn *websocket.Conn) *Client {
	return &Client{
		UserID: userID,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		closed: make(chan struct{}),
	}
}

// trySend queues msg without blocking. False means the client is closed
// or its buffer is full; either way it is done for.
func (c *Client) trySend(msg []byte) bool {
	select {
	case <-c.closed:
		return false
	default:
	}
	select {
	case c.send <- msg:
		return true
	case <-c.closed:
		return false
	default:
		return false
	}
}

// Close invalidates the client. Idempotent; a superseded connection may
// be closed by both the registry and its own read loop.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.closed)
	})
}

// WritePump drains the send queue onto the socket. Runs in its own
// goroutine per connection; exits when the client closes or a write
// fails. Queued messages at close time are dropped, delivery is
// best-effort by contract.
func (c *Client) WritePump() {
	defer c.conn.Close()
	for {
		select {
		case msg := <-c.send:
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-c.closed:
			return
		}
	}
}
