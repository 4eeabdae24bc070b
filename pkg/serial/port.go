package serial

import (
	"io"
	"sync"
)

// portBufSize is the capacity of the device-side rx ring and of the
// host-side staging buffer.
const portBufSize = 256

// ring is a fixed-capacity byte queue.
type ring struct {
	buf  [portBufSize]byte
	head int
	used int
}

func (r *ring) put(b byte) bool {
	if r.used == len(r.buf) {
		return false
	}
	r.buf[(r.head+r.used)%len(r.buf)] = b
	r.used++
	return true
}

func (r *ring) get() (byte, bool) {
	if r.used == 0 {
		return 0, false
	}
	b := r.buf[r.head]
	r.head = (r.head + 1) % len(r.buf)
	r.used--
	return b, true
}

// Port is an in-memory duplex loopback port implementing Transport,
// standing in for the CDC-ACM function of the original hardware.
//
// The device side (Poll, Read, Write) is only ever entered under the irq
// controller, so it needs no locking of its own. The host side
// (HostWrite, the output writer) runs on arbitrary goroutines; bytes it
// stages become readable on the device side only after the next Poll,
// the same way inbound USB transfers surface on the endpoint poll.
type Port struct {
	out io.Writer

	mu     sync.Mutex
	staged []byte

	rx ring
}

// NewPort creates a Port delivering device output to out. A nil out
// discards output.
func NewPort(out io.Writer) *Port {
	return &Port{out: out}
}

// HostWrite stages host-to-device bytes for the next Poll. Bytes beyond
// the staging capacity are dropped; the count accepted is returned.
func (p *Port) HostWrite(b []byte) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	free := portBufSize - len(p.staged)
	if free < len(b) {
		b = b[:free]
	}
	p.staged = append(p.staged, b...)
	return len(b)
}

// Poll implements Transport. It moves staged host bytes into the rx ring
// up to the ring's free space.
func (p *Port) Poll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for n < len(p.staged) {
		if !p.rx.put(p.staged[n]) {
			break
		}
		n++
	}
	p.staged = p.staged[n:]
}

// Read implements Transport.
func (p *Port) Read(b []byte) (int, error) {
	n := 0
	for n < len(b) {
		c, ok := p.rx.get()
		if !ok {
			break
		}
		b[n] = c
		n++
	}
	return n, nil
}

// Write implements Transport.
func (p *Port) Write(b []byte) (int, error) {
	if p.out == nil {
		return len(b), nil
	}
	return p.out.Write(b)
}
