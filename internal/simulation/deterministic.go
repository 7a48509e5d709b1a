package simulation

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// seedFunc returns a fresh base seed (override for deterministic Monte Carlo
// tests). It reads process entropy, falling back to the clock if the read
// fails.
var seedFunc = func() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// SetSeedFunc overrides the base-seed source.
func SetSeedFunc(f func() int64) { seedFunc = f }
