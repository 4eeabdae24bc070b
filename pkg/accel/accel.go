// Package accel defines the interface to the elliptic-curve signing
// accelerator.
package accel

import "fmt"

// Buffer sizes of the accelerator's fixed-width operands.
const (
	HashSize      = 32
	KeySize       = 32
	NonceSize     = 32
	PubKeySize    = 64
	SignatureSize = 64
)

// Code classifies accelerator operation failures.
type Code int

const (
	// CodeBadScalar means the nonce is not a valid curve scalar.
	CodeBadScalar Code = iota + 1
	// CodeBadPoint means the public key is not a point on the curve.
	CodeBadPoint
	// CodeBadSignature means the signature does not verify.
	CodeBadSignature
	// CodeFault means the engine failed internally.
	CodeFault
)

func (c Code) String() string {
	switch c {
	case CodeBadScalar:
		return "bad scalar"
	case CodeBadPoint:
		return "point not on curve"
	case CodeBadSignature:
		return "invalid signature"
	case CodeFault:
		return "engine fault"
	}
	return fmt.Sprintf("code %d", int(c))
}

// Error is a failed accelerator operation.
type Error struct {
	Op   string
	Code Code
}

// Error implements error.
func (e *Error) Error() string {
	return fmt.Sprintf("accel: %s: %s", e.Op, e.Code)
}

// Engine is the signing accelerator. Signing is deterministic: identical
// (hash, key, nonce) always produce an identical signature.
type Engine interface {
	// Name identifies the engine in the report.
	Name() string
	// SignWithNonce signs hash with key using the raw nonce scalar and
	// fills sig with the big-endian r||s encoding.
	SignWithNonce(sig *[SignatureSize]byte, hash *[HashSize]byte, key *[KeySize]byte, nonce *[NonceSize]byte) error
	// Verify checks sig over hash against pub. A nil return means the
	// signature is valid.
	Verify(sig *[SignatureSize]byte, hash *[HashSize]byte, pub *[PubKeySize]byte) error
}
