package term

import (
	"encoding/binary"
	"hash/maphash"
)

// Value is the capability required of every payload in the term
// algebra: usable as a map key, totally ordered, hashable under a
// caller-provided seed, and printable for debugging.
//
// Wrapper types in this package hash and compare transparently: the
// hash of a wrapping variant equals the hash of its payload, and
// comparing two values of the same variant equals comparing their
// payloads.
type Value[T any] interface {
	comparable

	// Compare returns -1, 0, or +1 depending on whether the receiver
	// orders before, equal to, or after the argument.
	Compare(T) int

	// Hash returns a seed-keyed hash of the value. Equal values must
	// hash equally under the same seed.
	Hash(maphash.Seed) uint64

	// String returns the value's surface form for debugging.
	String() string
}

// HashUint64 hashes an integer payload under seed. It is intended for
// types outside this package implementing Value over dense indices.
func HashUint64(seed maphash.Seed, v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return maphash.Bytes(seed, buf[:])
}

// CombineHashes folds component hashes into a single product hash.
// The fold is order and length sensitive, so products with different
// arity hash differently.
func CombineHashes(seed maphash.Seed, hashes ...uint64) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	var buf [8]byte
	for _, v := range hashes {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	return h.Sum64()
}
