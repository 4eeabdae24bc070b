package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hwsign/selftest/pkg/irq"
	"github.com/hwsign/selftest/pkg/serial"
)

func newConsole(t *testing.T) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	cell := &serial.Cell{}
	cell.Bind(serial.NewPort(&out), irq.NewController())
	return New(cell), &out
}

func TestLogfTerminatesWithCRLF(t *testing.T) {
	c, out := newConsole(t)
	c.Logf("vector %d: %t", 3, true)
	require.Equal(t, "vector 3: true\r\n", out.String())
}

func TestLogfAtCapacity(t *testing.T) {
	c, out := newConsole(t)
	line := strings.Repeat("x", MaxLineLen)
	c.Logf("%s", line)
	require.Equal(t, line+"\r\n", out.String())
}

func TestLogfOverCapacityPanics(t *testing.T) {
	c, out := newConsole(t)
	require.Panics(t, func() {
		c.Logf("%s", strings.Repeat("x", MaxLineLen+1))
	})
	require.Zero(t, out.Len())
}

func TestLogfUnboundCellPanics(t *testing.T) {
	c := New(&serial.Cell{})
	require.Panics(t, func() { c.Logf("hello") })
}
