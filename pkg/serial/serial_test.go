package serial

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hwsign/selftest/pkg/irq"
)

func newBoundCell(t *testing.T) (*Cell, *Port, *irq.Controller, *bytes.Buffer) {
	var out bytes.Buffer
	port := NewPort(&out)
	ctrl := irq.NewController()
	cell := &Cell{}
	cell.Bind(port, ctrl)
	return cell, port, ctrl, &out
}

func TestWithUnboundCellPanics(t *testing.T) {
	cell := &Cell{}
	require.Panics(t, func() {
		cell.With(func(Transport) error { return nil })
	})
}

func TestBindTwicePanics(t *testing.T) {
	cell, port, ctrl, _ := newBoundCell(t)
	require.Panics(t, func() { cell.Bind(port, ctrl) })
}

func TestServiceEchoesInbound(t *testing.T) {
	_, port, ctrl, out := newBoundCell(t)
	port.HostWrite([]byte("hello"))
	ctrl.Trigger(LineReady)
	require.Equal(t, "hello", out.String())
}

func TestServiceIdleDrain(t *testing.T) {
	_, _, ctrl, out := newBoundCell(t)
	ctrl.Trigger(LineReady)
	ctrl.Trigger(LineTxComplete)
	ctrl.Trigger(LineRxComplete)
	require.Zero(t, out.Len())
}

func TestServiceDrainsInChunks(t *testing.T) {
	_, port, ctrl, out := newBoundCell(t)
	data := bytes.Repeat([]byte{0xa5}, 100)
	port.HostWrite(data)
	ctrl.Trigger(LineRxComplete)
	// One pass drains at most the 64-byte echo buffer.
	require.Equal(t, 64, out.Len())
	ctrl.Trigger(LineRxComplete)
	require.Equal(t, data, out.Bytes())
}

func TestWithDefersService(t *testing.T) {
	cell, port, ctrl, out := newBoundCell(t)
	err := cell.With(func(tr Transport) error {
		port.HostWrite([]byte("abc"))
		ctrl.Trigger(LineReady)
		require.Zero(t, out.Len())
		_, err := tr.Write([]byte("> "))
		return err
	})
	require.NoError(t, err)
	// The deferred service pass runs after the critical section and
	// echoes behind the foreground output.
	require.Equal(t, "> abc", out.String())
}

func TestAllLinesShareOneRoutine(t *testing.T) {
	_, port, ctrl, out := newBoundCell(t)
	for i, line := range []irq.Line{LineReady, LineTxComplete, LineRxComplete} {
		port.HostWrite([]byte{byte('a' + i)})
		ctrl.Trigger(line)
	}
	require.Equal(t, "abc", out.String())
}

func TestPortReadEmpty(t *testing.T) {
	port := NewPort(nil)
	var buf [16]byte
	n, err := port.Read(buf[:])
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestPortStagingOverflowDrops(t *testing.T) {
	port := NewPort(nil)
	n := port.HostWrite(bytes.Repeat([]byte{1}, portBufSize+10))
	require.Equal(t, portBufSize, n)
	require.Zero(t, port.HostWrite([]byte{2}))
}

func TestPortPollMakesStagedReadable(t *testing.T) {
	port := NewPort(nil)
	port.HostWrite([]byte("data"))
	var buf [16]byte
	n, err := port.Read(buf[:])
	require.NoError(t, err)
	require.Zero(t, n)
	port.Poll()
	n, err = port.Read(buf[:])
	require.NoError(t, err)
	require.Equal(t, "data", string(buf[:n]))
}
