// Package p256 is the software realization of the signing accelerator:
// raw-nonce ECDSA over NIST P-256.
package p256

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"math/big"

	"github.com/hwsign/selftest/pkg/accel"
)

// Engine signs and verifies raw r||s ECDSA signatures on P-256.
//
// Signatures are not low-s normalized: the signature is exactly
// r = (k*G).x mod n, s = k^-1 * (z + r*d) mod n, both big-endian
// 32-byte, which is what the hardware unit this stands in for emits.
type Engine struct {
	curve elliptic.Curve
}

// Enable brings up the engine.
func Enable() *Engine {
	return &Engine{curve: elliptic.P256()}
}

// Name implements accel.Engine.
func (e *Engine) Name() string { return "P-256" }

// SignWithNonce implements accel.Engine.
func (e *Engine) SignWithNonce(sig *[accel.SignatureSize]byte, hash *[accel.HashSize]byte, key *[accel.KeySize]byte, nonce *[accel.NonceSize]byte) error {
	n := e.curve.Params().N
	k := new(big.Int).SetBytes(nonce[:])
	if k.Sign() == 0 || k.Cmp(n) >= 0 {
		return &accel.Error{Op: "sign", Code: accel.CodeBadScalar}
	}
	x, _ := e.curve.ScalarBaseMult(nonce[:])
	r := x.Mod(x, n)
	if r.Sign() == 0 {
		return &accel.Error{Op: "sign", Code: accel.CodeFault}
	}
	d := new(big.Int).SetBytes(key[:])
	z := new(big.Int).SetBytes(hash[:])
	s := new(big.Int).Mul(r, d)
	s.Add(s, z)
	s.Mul(s, new(big.Int).ModInverse(k, n))
	s.Mod(s, n)
	if s.Sign() == 0 {
		return &accel.Error{Op: "sign", Code: accel.CodeFault}
	}
	r.FillBytes(sig[:32])
	s.FillBytes(sig[32:])
	return nil
}

// Verify implements accel.Engine.
func (e *Engine) Verify(sig *[accel.SignatureSize]byte, hash *[accel.HashSize]byte, pub *[accel.PubKeySize]byte) error {
	x := new(big.Int).SetBytes(pub[:32])
	y := new(big.Int).SetBytes(pub[32:])
	if !e.curve.IsOnCurve(x, y) {
		return &accel.Error{Op: "verify", Code: accel.CodeBadPoint}
	}
	n := e.curve.Params().N
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:])
	if r.Sign() == 0 || r.Cmp(n) >= 0 || s.Sign() == 0 || s.Cmp(n) >= 0 {
		return &accel.Error{Op: "verify", Code: accel.CodeBadSignature}
	}
	key := &ecdsa.PublicKey{Curve: e.curve, X: x, Y: y}
	if !ecdsa.Verify(key, hash[:], r, s) {
		return &accel.Error{Op: "verify", Code: accel.CodeBadSignature}
	}
	return nil
}

var _ accel.Engine = (*Engine)(nil)
