package core

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// entropy is the OS randomness source, swapped in tests.
var entropy io.Reader = rand.Reader

// NewSeed reads a fresh 64-bit seed from the OS entropy source.
// A failure here is fatal for the caller: the game cannot place the
// first food without it.
func NewSeed() (int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(entropy, buf[:]); err != nil {
		return 0, fmt.Errorf("core: cannot read entropy for RNG seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}
