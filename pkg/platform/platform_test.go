package platform

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hwsign/selftest/pkg/serial"
)

func TestBringUpStdio(t *testing.T) {
	var out bytes.Buffer
	conf := NewConfig()
	conf.Out = &out

	p, err := conf.BringUp()
	require.NoError(t, err)
	require.NotNil(t, p.Console)
	require.NotNil(t, p.Engine)
	// stdin pump plus housekeeping tick
	require.Len(t, p.Pumps(), 2)

	// The cell is bound and usable before any pump runs.
	err = p.Cell.With(func(tr serial.Transport) error {
		_, err := tr.Write([]byte("ok"))
		return err
	})
	require.NoError(t, err)
	require.Equal(t, "ok", out.String())
}

func TestBringUpUnknownTransport(t *testing.T) {
	conf := NewConfig()
	conf.Transport = "carrier-pigeon"
	_, err := conf.BringUp()
	require.Error(t, err)
}

func TestNewHarnessUsesPlatform(t *testing.T) {
	var out bytes.Buffer
	conf := NewConfig()
	conf.Out = &out

	p, err := conf.BringUp()
	require.NoError(t, err)
	h := conf.NewHarness(p)
	require.Equal(t, p.Engine, h.Engine)
	require.Equal(t, conf.Delay, h.Delay)

	h.Pass()
	require.Contains(t, out.String(), "Test vector: 10 samples\r\n")
}

func TestLEDToggle(t *testing.T) {
	led := &LED{}
	require.False(t, led.On())
	led.Toggle()
	require.True(t, led.On())
	led.Toggle()
	require.False(t, led.On())
}
