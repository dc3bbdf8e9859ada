package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mathrand "math/rand/v2"
)

// RandomSource supplies uniformly distributed unsigned 32-bit integers.
type RandomSource interface {
	Uint32s(n int) ([]uint32, error)
}

// CryptoSource reads from crypto/rand.
type CryptoSource struct{}

// Uint32s returns n random integers drawn from the operating system CSPRNG.
func (CryptoSource) Uint32s(n int) ([]uint32, error) {
	if n <= 0 {
		return []uint32{}, nil
	}

	buf := make([]byte, 4*n)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("reading random bytes: %w", err)
	}

	out := make([]uint32, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
	return out, nil
}

// CoinFlip returns a single unbiased boolean. It only picks the starting
// parity of pronounceable passwords and need not be cryptographically secure.
type CoinFlip func() bool

func defaultCoin() bool {
	return mathrand.Float64() > 0.5
}
