package serial

import (
	"github.com/hwsign/selftest/pkg/irq"
)

// Transport is a duplex byte channel to the host.
type Transport interface {
	// Poll services the transport's internal protocol tick. It must be
	// called regularly for inbound data to become readable.
	Poll()
	// Read drains pending inbound bytes without blocking. It returns
	// 0 when nothing is pending.
	Read(p []byte) (int, error)
	// Write sends bytes best-effort and may short-write.
	Write(p []byte) (int, error)
}

// Interrupt lines that can mutate the shared transport. All three map to
// the same service routine, matching the transport-ready and both
// transfer-complete events of the original hardware.
const (
	LineReady irq.Line = iota
	LineTxComplete
	LineRxComplete
)

// MaskSet is the exact set of lines any code touching the shared
// transport must mask first.
var MaskSet = irq.Lines(LineReady, LineTxComplete, LineRxComplete)

// echoBufSize bounds how many inbound bytes one service pass drains.
const echoBufSize = 64

// Cell holds the one shared Transport for the process lifetime.
//
// The cell must be bound exactly once, strictly before the first trigger
// source is started, so the service routine can never observe an unbound
// cell. Accessing an unbound cell from With is an initialization-order
// bug and panics instead of returning an error: continuing would silently
// drop report output.
type Cell struct {
	ctrl *irq.Controller
	tr   Transport
}

// Bind stores the transport and installs the service routine as the
// handler of every line in MaskSet. Binding twice panics.
func (c *Cell) Bind(t Transport, ctrl *irq.Controller) {
	if c.tr != nil {
		panic("serial: transport already bound")
	}
	c.tr = t
	c.ctrl = ctrl
	ctrl.Handle(LineReady, c.ServiceIRQ)
	ctrl.Handle(LineTxComplete, c.ServiceIRQ)
	ctrl.Handle(LineRxComplete, c.ServiceIRQ)
}

// With runs f with exclusive access to the transport, masking MaskSet for
// the duration. It panics if the cell is not bound.
//
// Must not be called from inside the service routine: the mask set is
// already held there and re-entering would deadlock.
func (c *Cell) With(f func(Transport) error) error {
	if c.tr == nil {
		panic("serial: transport cell not bound")
	}
	return c.ctrl.RunMasked(MaskSet, func() error {
		return f(c.tr)
	})
}

// ServiceIRQ is the transport poll routine. It runs as the interrupt
// handler itself, with MaskSet already held, so it reaches the transport
// directly instead of going through With. Callers outside handler context
// must hold exclusivity themselves.
//
// One pass ticks the protocol, then drains up to echoBufSize inbound
// bytes and echoes each one back, byte by byte. A failed read means no
// data and is ignored; echo write failures are ignored as well, the test
// outcome does not depend on the echo.
func (c *Cell) ServiceIRQ() {
	t := c.tr
	t.Poll()
	var buf [echoBufSize]byte
	n, err := t.Read(buf[:])
	if err != nil || n == 0 {
		return
	}
	for _, b := range buf[:n] {
		t.Write([]byte{b})
	}
}
