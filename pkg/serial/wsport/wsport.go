// Package wsport carries the shared transport over a WebSocket
// connection.
package wsport

import (
	"sync"

	"golang.org/x/net/websocket"

	"github.com/hwsign/selftest/pkg/serial"
)

// Transport implements serial.Transport on a websocket connection.
// Write buffers device output; Poll flushes it as one binary frame and
// makes received frames readable.
type Transport struct {
	conn *websocket.Conn

	pending []byte
	rx      []byte

	mu     sync.Mutex
	staged []byte
}

// Dial connects to a websocket endpoint and starts the receive pump.
func Dial(rawURL, origin string) (*Transport, error) {
	conn, err := websocket.Dial(rawURL, "", origin)
	if err != nil {
		return nil, err
	}
	t := New(conn)
	return t, nil
}

// New wraps an established connection and starts the receive pump.
func New(conn *websocket.Conn) *Transport {
	t := &Transport{conn: conn}
	go t.receive()
	return t
}

func (t *Transport) receive() {
	for {
		var frame []byte
		if err := websocket.Message.Receive(t.conn, &frame); err != nil {
			return
		}
		t.mu.Lock()
		t.staged = append(t.staged, frame...)
		t.mu.Unlock()
	}
}

// Poll implements serial.Transport.
func (t *Transport) Poll() {
	if len(t.pending) > 0 {
		// Output loss is acceptable, the send error is dropped.
		websocket.Message.Send(t.conn, t.pending)
		t.pending = nil
	}
	t.mu.Lock()
	t.rx = append(t.rx, t.staged...)
	t.staged = nil
	t.mu.Unlock()
}

// Read implements serial.Transport.
func (t *Transport) Read(p []byte) (int, error) {
	n := copy(p, t.rx)
	t.rx = t.rx[n:]
	return n, nil
}

// Write implements serial.Transport.
func (t *Transport) Write(p []byte) (int, error) {
	t.pending = append(t.pending, p...)
	return len(p), nil
}

// Close closes the connection.
func (t *Transport) Close() error {
	return t.conn.Close()
}

var _ serial.Transport = (*Transport)(nil)
