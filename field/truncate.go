package field

import (
	"crypto/sha256"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// TruncatedBytes is the 31-byte little-endian encoding used whenever
// arbitrary 32-byte entropy (a note's ψ, a jurisdiction tag, a domain
// separator string) needs to map unambiguously into F. 31 bytes is
// the largest width that always fits below the field modulus, so the
// mapping never wraps.
type TruncatedBytes = [31]byte

// FromBytesTruncated maps arbitrary bytes into F by taking at most
// the first 31 bytes and interpreting them as a little-endian
// base-256 integer. Longer inputs are truncated, shorter ones
// zero-padded on the high end. Native and gadget code must call this
// exact routine so both sides agree bit-for-bit (§9 "cross-field
// hashing").
func FromBytesTruncated(b []byte) F {
	var le TruncatedBytes
	n := len(b)
	if n > 31 {
		n = 31
	}
	copy(le[:n], b[:n])

	var be [32]byte
	for i := 0; i < 31; i++ {
		be[31-i] = le[i]
	}
	var e fr.Element
	e.SetBytes(be[:])
	return F{e}
}

// ToBytesTruncated is the lossy inverse of FromBytesTruncated: it
// keeps the 31 least-significant little-endian bytes of f's canonical
// representative and drops the most significant byte. Round-trips
// exactly for any f that started life as FromBytesTruncated's output
// (i.e. any value representable in 31 bytes); larger field elements
// lose their top byte, by design (§9).
func ToBytesTruncated(f F) TruncatedBytes {
	be := f.inner.Bytes()
	var out TruncatedBytes
	for i := 0; i < 31; i++ {
		out[i] = be[31-i]
	}
	return out
}

// ToBitsLE returns the little-endian bit decomposition of f's
// canonical representative, 254 bits wide for bn254 Fr (packed into a
// byte-aligned slice, high bits of the final byte unused).
func (f F) ToBitsLE() []bool {
	be := f.inner.Bytes()
	bits := make([]bool, 0, 256)
	for i := 31; i >= 0; i-- {
		b := be[i]
		for bit := 0; bit < 8; bit++ {
			bits = append(bits, (b>>uint(bit))&1 == 1)
		}
	}
	return bits
}

// FromBitsLE packs a little-endian boolean vector back into a field
// element, reducing modulo the field order. This mirrors the
// in-circuit `Boolean::le_bits_to_fp` recomposition used by the
// Schnorr gadget's Fq-to-Fr coordinate conversion (§4.5, §9): native
// and gadget code share this exact routine so the conversion is
// bit-identical on both sides, even though for this embedded curve
// the two fields are numerically the same modulus.
func FromBitsLE(bits []bool) F {
	var be [32]byte
	for i, bit := range bits {
		if !bit {
			continue
		}
		byteIdx := i / 8
		if byteIdx >= 32 {
			continue
		}
		be[31-byteIdx] |= 1 << uint(i%8)
	}
	var e fr.Element
	e.SetBytes(be[:])
	return F{e}
}

// NextPowerOfTwo returns the smallest power of two >= n, with
// NextPowerOfTwo(0) == 1 by convention (an empty tree still has one
// leaf slot).
func NextPowerOfTwo(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}

// PadToPowerOfTwo appends pad to leaves until its length is a power
// of two, returning the (possibly unmodified) slice.
func PadToPowerOfTwo(leaves []F, pad F) []F {
	target := NextPowerOfTwo(uint64(len(leaves)))
	for uint64(len(leaves)) < target {
		leaves = append(leaves, pad)
	}
	return leaves
}

// FieldFitsU64 reports whether f's canonical value fits in a uint64,
// i.e. all bytes above the low 8 are zero.
func FieldFitsU64(f F) bool {
	be := f.inner.Bytes()
	for i := 0; i < 24; i++ {
		if be[i] != 0 {
			return false
		}
	}
	return true
}

// FieldToU64 projects f onto its low 64 bits regardless of whether
// the high bits are zero (a lossy projection; pair with FieldFitsU64
// when losslessness matters).
func FieldToU64(f F) uint64 {
	be := f.inner.Bytes()
	var v uint64
	for i := 24; i < 32; i++ {
		v = (v << 8) | uint64(be[i])
	}
	return v
}

// FieldRange reports whether f's canonical value lies in [lo, hi]
// (inclusive), comparing via the underlying big.Int representation.
func FieldRange(f, lo, hi F) bool {
	v := f.BigInt()
	return v.Cmp(lo.BigInt()) >= 0 && v.Cmp(hi.BigInt()) <= 0
}

// DeterministicFieldFromSeed derives a field element deterministically
// from an arbitrary seed string. The seed is first spread across a
// sha256 digest (so seeds longer than 31 bytes still produce distinct
// outputs) and then mapped into F via the 31-byte truncation codec.
// Used by the Poseidon parameter generator and by tests that need
// stable synthetic field values.
func DeterministicFieldFromSeed(seed string) F {
	digest := sha256.Sum256([]byte(seed))
	return FromBytesTruncated(digest[:31])
}
