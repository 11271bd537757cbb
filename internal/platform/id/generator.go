package id

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"
)

// Generator creates opaque IDs for correlating requests across logs and traces.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator returns 32 hex characters: a millisecond timestamp followed
// by random bytes, so IDs issued by one process sort by creation time.
type RandomGenerator struct {
	now func() time.Time
}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{now: time.Now}
}

func (g *RandomGenerator) NewID() (string, error) {
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(g.now().UnixMilli()))

	// 48 bits of milliseconds, 80 bits of randomness.
	var buf [16]byte
	copy(buf[:6], ts[2:])
	if _, err := rand.Read(buf[6:]); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf[:]), nil
}
