package harness

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hwsign/selftest/pkg/accel"
	"github.com/hwsign/selftest/pkg/accel/p256"
	"github.com/hwsign/selftest/pkg/console"
	"github.com/hwsign/selftest/pkg/irq"
	"github.com/hwsign/selftest/pkg/serial"
)

func newHarness(t *testing.T, engine accel.Engine) (*Harness, *bytes.Buffer) {
	var out bytes.Buffer
	cell := &serial.Cell{}
	cell.Bind(serial.NewPort(&out), irq.NewController())
	return New(engine, console.New(cell)), &out
}

func reportLines(out *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(out.String(), "\r\n"), "\r\n")
}

func TestPassAllVectorsGreen(t *testing.T) {
	h, out := newHarness(t, p256.Enable())
	h.Pass()

	lines := reportLines(out)
	require.Len(t, lines, 4+len(Vectors))
	require.Equal(t, "Column 1: Is generated signature identical to a reference signature?", lines[0])
	require.Equal(t, "Column 2: Is a signature valid according to P-256", lines[1])
	require.Equal(t, "Column 3: Is a broken signature invalid according to P-256", lines[2])
	require.Equal(t, "Test vector: 10 samples", lines[3])
	for i := range Vectors {
		require.Equal(t, fmt.Sprintf("%2d: true  | true  | true ", i+1), lines[4+i])
	}
}

type faultEngine struct{}

func (faultEngine) Name() string { return "stub" }

func (faultEngine) SignWithNonce(*[accel.SignatureSize]byte, *[accel.HashSize]byte, *[accel.KeySize]byte, *[accel.NonceSize]byte) error {
	return &accel.Error{Op: "sign", Code: accel.CodeFault}
}

func (faultEngine) Verify(*[accel.SignatureSize]byte, *[accel.HashSize]byte, *[accel.PubKeySize]byte) error {
	return &accel.Error{Op: "verify", Code: accel.CodeBadSignature}
}

func TestPassSignFailureKeepsGoing(t *testing.T) {
	h, out := newHarness(t, faultEngine{})
	h.Vectors = Vectors[:2]
	h.Pass()

	lines := reportLines(out)
	require.Len(t, lines, 4+2*2)
	require.Equal(t, "Test vector: 2 samples", lines[3])
	for i := 0; i < 2; i++ {
		require.Equal(t, "Error during signature generation: accel: sign: engine fault", lines[4+2*i])
		// Column 1 false, the zeroed buffer does not verify, and the
		// corrupted buffer is still rejected.
		require.Equal(t, fmt.Sprintf("%2d: false | false | true ", i+1), lines[5+2*i])
	}
}

type countToggle struct{ n int }

func (c *countToggle) Toggle() { c.n++ }

func TestRunLoopsUntilCanceled(t *testing.T) {
	h, out := newHarness(t, p256.Enable())
	led := &countToggle{}
	h.Status = led
	h.Delay = time.Millisecond
	h.Vectors = Vectors[:1]

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- h.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	require.Equal(t, context.Canceled, <-errCh)
	require.True(t, led.n > 0)
	require.Contains(t, out.String(), "Test vector: 1 samples")
}
