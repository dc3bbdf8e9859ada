package crypto

import "errors"

// sequenceSource replays values in order, wrapping around at the end.
type sequenceSource struct {
	values []uint32
	pos    int
	calls  []int
}

func (s *sequenceSource) Uint32s(n int) ([]uint32, error) {
	s.calls = append(s.calls, n)
	out := make([]uint32, n)
	for i := range out {
		out[i] = s.values[s.pos%len(s.values)]
		s.pos++
	}
	return out, nil
}

type failingSource struct{}

var errSourceDown = errors.New("entropy source unavailable")

func (failingSource) Uint32s(int) ([]uint32, error) {
	return nil, errSourceDown
}

func coin(v bool) CoinFlip {
	return func() bool { return v }
}
