// Package console renders report lines onto the shared transport.
package console

import (
	"fmt"

	"github.com/hwsign/selftest/pkg/serial"
)

// MaxLineLen is the capacity of one rendered line, excluding the CRLF
// terminator. A line that renders longer is a static programming mistake
// in the caller and panics rather than being truncated: the report text
// is the test result, silent truncation would corrupt it.
const MaxLineLen = 256

var crlf = []byte("\r\n")

// Console writes CRLF-terminated text lines through a transport cell.
type Console struct {
	cell *serial.Cell
}

// New creates a Console on the shared cell.
func New(cell *serial.Cell) *Console {
	return &Console{cell: cell}
}

// Logf renders one line and writes it followed by CRLF under the
// transport's critical section. Transport write errors are ignored,
// output is best-effort. Panics if the rendered line exceeds MaxLineLen.
//
// Must not be called from the transport service routine: the mask set is
// already held there and the cell would be re-entered.
func (c *Console) Logf(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	if len(line) > MaxLineLen {
		panic(fmt.Sprintf("console: rendered line is %d bytes, capacity %d", len(line), MaxLineLen))
	}
	c.cell.With(func(t serial.Transport) error {
		t.Write([]byte(line))
		t.Write(crlf)
		return nil
	})
}
