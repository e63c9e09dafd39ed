// Package field provides the scalar field F that every other Fluxe
// package hashes, commits, and signs over (gnark-crypto's bn254 Fr),
// plus the canonical byte encodings the wire format and the Schnorr
// embedded-curve contract rely on.
package field

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// F is an element of the bn254 scalar field. It is the sole numeric
// type that Poseidon, Pedersen, the Merkle trees, and the lineage
// accumulator operate on.
type F struct {
	inner fr.Element
}

// Zero returns the additive identity.
func Zero() F { return F{} }

// One returns the multiplicative identity.
func One() F {
	var e fr.Element
	e.SetOne()
	return F{e}
}

// FromUint64 embeds a uint64 into F.
func FromUint64(v uint64) F {
	var e fr.Element
	e.SetUint64(v)
	return F{e}
}

// FromElement wraps a gnark-crypto fr.Element directly. Used by
// packages (schnorr, pedersen) that obtain coordinates already typed
// as bn254/fr.Element from an embedded-curve point.
func FromElement(e fr.Element) F { return F{e} }

// Inner exposes the wrapped fr.Element for packages that need to hand
// it to gnark-crypto APIs (scalar multiplication, curve arithmetic).
func (f F) Inner() fr.Element { return f.inner }

// Random draws a uniformly random field element using crypto/rand.
func Random() (F, error) {
	var e fr.Element
	if _, err := e.SetRandom(); err != nil {
		return F{}, fmt.Errorf("field: random: %w", err)
	}
	return F{e}, nil
}

func (f F) Add(g F) F {
	var r fr.Element
	r.Add(&f.inner, &g.inner)
	return F{r}
}

func (f F) Sub(g F) F {
	var r fr.Element
	r.Sub(&f.inner, &g.inner)
	return F{r}
}

func (f F) Mul(g F) F {
	var r fr.Element
	r.Mul(&f.inner, &g.inner)
	return F{r}
}

func (f F) Neg() F {
	var r fr.Element
	r.Neg(&f.inner)
	return F{r}
}

// Inverse returns the multiplicative inverse of f. The zero element
// has no inverse; callers must check IsZero first, matching the
// original's checked_sub-style discipline around partial operations.
func (f F) Inverse() (F, error) {
	if f.IsZero() {
		return F{}, fmt.Errorf("field: inverse of zero")
	}
	var r fr.Element
	r.Inverse(&f.inner)
	return F{r}, nil
}

func (f F) Equal(g F) bool { return f.inner.Equal(&g.inner) }

func (f F) IsZero() bool { return f.inner.IsZero() }

func (f F) String() string { return f.inner.String() }

// BigInt returns the canonical (non-Montgomery) representative of f.
func (f F) BigInt() *big.Int {
	var b big.Int
	f.inner.BigInt(&b)
	return &b
}

// FromBigInt reduces v modulo the field order.
func FromBigInt(v *big.Int) F {
	var e fr.Element
	e.SetBigInt(v)
	return F{e}
}

// Bytes returns the canonical little-endian 32-byte encoding of f,
// the wire format used throughout §6 (StateRoots, Note, receipts).
func (f F) Bytes() [32]byte {
	be := f.inner.Bytes()
	var le [32]byte
	for i := 0; i < 32; i++ {
		le[i] = be[31-i]
	}
	return le
}

// SetBytes decodes the canonical little-endian 32-byte wire encoding
// produced by Bytes. Values at or above the field modulus are reduced
// modulo it by gnark-crypto's SetBytes rather than rejected, since
// this module never receives untrusted wire bytes directly (§1 scope).
func SetBytes(le [32]byte) F {
	var be [32]byte
	for i := 0; i < 32; i++ {
		be[i] = le[31-i]
	}
	var e fr.Element
	e.SetBytes(be[:])
	return F{e}
}

// MarshalJSON renders f as a lowercase-hex string, mirroring the
// original Rust FieldElement's serde hex implementation.
func (f F) MarshalJSON() ([]byte, error) {
	b := f.Bytes()
	return []byte(`"` + hex.EncodeToString(b[:]) + `"`), nil
}

// UnmarshalJSON parses the lowercase-hex form produced by MarshalJSON.
func (f *F) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("field: invalid json encoding")
	}
	raw, err := hex.DecodeString(string(data[1 : len(data)-1]))
	if err != nil {
		return fmt.Errorf("field: invalid hex: %w", err)
	}
	var le [32]byte
	if len(raw) != 32 {
		return fmt.Errorf("field: expected 32 bytes, got %d", len(raw))
	}
	copy(le[:], raw)
	*f = SetBytes(le)
	return nil
}
