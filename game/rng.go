package game

import (
	"crypto/rand"
	"encoding/hex"
	"hash/fnv"
)

// NewSeed generates a session-unique seed string from system randomness.
// This is the root of entropy for a session; everything after creation is
// derived deterministically from it.
func NewSeed() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// SeededRand is a small, fast, reproducible float source. The key is hashed
// into a splitmix64 state, so any two distinct keys give uncorrelated
// streams. Not cryptographic; this only exists for replayable gameplay.
type SeededRand struct {
	state uint64
}

func NewSeededRand(key string) *SeededRand {
	h := fnv.New64a()
	h.Write([]byte(key))
	return &SeededRand{state: h.Sum64()}
}

// Float64 returns the next value in [0, 1).
func (r *SeededRand) Float64() float64 {
	r.state += 0x9e3779b97f4a7c15
	z := r.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	return float64(z>>11) / (1 << 53)
}
