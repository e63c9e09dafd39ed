// Package entropy derives per-note randomness (ψ), memo encryption
// keys, and general KDF output via Blake2b, the same primitive the
// original implementation's blake2b.rs module uses. Poseidon handles
// in-field hashing; Blake2b handles raw-byte derivation that never
// needs to be proved in-circuit (§4, §9).
package entropy

import (
	"encoding/binary"
	"fmt"

	"github.com/luxfi/fluxe/field"
	"golang.org/x/crypto/blake2b"
)

// KDF derives outLen bytes of key material from secret and an info
// tag, via Blake2b-512 keyed on secret. Each 64-byte block hashes a
// big-endian 32-bit block counter, then info, then the previous
// block's digest (empty for the first block).
func KDF(secret, info []byte, outLen int) ([]byte, error) {
	out := make([]byte, 0, outLen)
	var prev []byte
	for ctr := uint32(0); len(out) < outLen; ctr++ {
		h, err := blake2b.New512(secret)
		if err != nil {
			return nil, fmt.Errorf("entropy: kdf: %w", err)
		}
		var ctrBytes [4]byte
		binary.BigEndian.PutUint32(ctrBytes[:], ctr)
		h.Write(ctrBytes[:])
		h.Write(info)
		h.Write(prev)
		block := h.Sum(nil)
		out = append(out, block...)
		prev = block
	}
	return out[:outLen], nil
}

// DeriveNoteEntropy derives a note's 32-byte ψ from the owner's
// viewing secret and a per-note nonce, keeping ψ indistinguishable
// from random to anyone without the secret (§3 Note, §9 "entropy
// handling").
func DeriveNoteEntropy(secret field.F, nonce [32]byte) ([32]byte, error) {
	secretBytes := secret.Bytes()
	raw, err := KDF(secretBytes[:], append([]byte("FLUXE.note.psi.v1"), nonce[:]...), 32)
	if err != nil {
		return [32]byte{}, err
	}
	var out [32]byte
	copy(out[:], raw)
	return out, nil
}

// DeriveMemoKey derives a symmetric memo-encryption key from a shared
// secret (e.g. an ECDH output between sender and receiver viewing
// keys).
func DeriveMemoKey(sharedSecret [32]byte) ([32]byte, error) {
	raw, err := KDF(sharedSecret[:], []byte("FLUXE.memo.key.v1"), 32)
	if err != nil {
		return [32]byte{}, err
	}
	var out [32]byte
	copy(out[:], raw)
	return out, nil
}

// Hash512 computes plain Blake2b-512 over input, used for general
// byte-oriented hashing outside the in-circuit Poseidon boundary.
func Hash512(input []byte) ([64]byte, error) {
	h, err := blake2b.New512(nil)
	if err != nil {
		return [64]byte{}, fmt.Errorf("entropy: hash512: %w", err)
	}
	h.Write(input)
	var out [64]byte
	copy(out[:], h.Sum(nil))
	return out, nil
}
