// Package harness drives the signing accelerator self-test.
package harness

import (
	"context"
	"time"

	"github.com/golang/glog"

	"github.com/hwsign/selftest/pkg/accel"
	"github.com/hwsign/selftest/pkg/console"
)

// StatusIndicator is toggled once per pass, the board LED in the
// original hardware.
type StatusIndicator interface {
	Toggle()
}

// DefaultDelay is the idle time between passes, standing in for the
// original's busy-wait cycle delay.
const DefaultDelay = 500 * time.Millisecond

// Harness runs the sign / compare / verify / corrupt / re-verify cycle
// over the vector table and reports a three-column pass/fail matrix
// through the console.
type Harness struct {
	Engine  accel.Engine
	Console *console.Console
	Status  StatusIndicator
	Delay   time.Duration
	Vectors []Vector

	Hash [accel.HashSize]byte
	Key  [accel.KeySize]byte
	Pub  [accel.PubKeySize]byte
}

// New creates a Harness over the reference vector table.
func New(engine accel.Engine, cons *console.Console) *Harness {
	return &Harness{
		Engine:  engine,
		Console: cons,
		Delay:   DefaultDelay,
		Vectors: Vectors,
		Hash:    SignedHash,
		Key:     PrivateKey,
		Pub:     PublicKey,
	}
}

// Pass runs one pass over the whole vector table.
//
// Each vector is independent: a sign failure is logged and recorded as a
// mismatch, the pass keeps going with the untouched (zeroed) signature
// buffer, exactly as a broken accelerator would present on hardware.
func (h *Harness) Pass() {
	h.Console.Logf("Column 1: Is generated signature identical to a reference signature?")
	h.Console.Logf("Column 2: Is a signature valid according to %s", h.Engine.Name())
	h.Console.Logf("Column 3: Is a broken signature invalid according to %s", h.Engine.Name())
	h.Console.Logf("Test vector: %d samples", len(h.Vectors))

	for i, v := range h.Vectors {
		var sig [accel.SignatureSize]byte
		same := false
		if err := h.Engine.SignWithNonce(&sig, &h.Hash, &h.Key, &v.Nonce); err != nil {
			h.Console.Logf("Error during signature generation: %v", err)
		} else {
			same = sig == v.Signature
		}

		valid := h.Engine.Verify(&sig, &h.Hash, &h.Pub) == nil

		// Break the signature. Byte 14 sits inside the r component,
		// so the tampered signature must no longer verify.
		sig[14]--

		brokenInvalid := h.Engine.Verify(&sig, &h.Hash, &h.Pub) != nil

		h.Console.Logf("%2d: %-5t | %-5t | %-5t", i+1, same, valid, brokenInvalid)
	}
}

// Run implements run.Runnable. Passes repeat forever, separated by the
// idle delay and a status toggle; only context cancellation stops it.
func (h *Harness) Run(ctx context.Context) error {
	for {
		h.Pass()
		glog.V(3).Info("self-test pass complete")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(h.Delay):
		}
		if h.Status != nil {
			h.Status.Toggle()
		}
	}
}
