package service

import (
	"context"
	"errors"
	"time"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

// stepClock starts at a fixed instant and advances by step on every call.
type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	now := c.t
	c.t = c.t.Add(c.step)
	return now
}

func newStepClock(step time.Duration) *stepClock {
	return &stepClock{t: time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC), step: step}
}

var errStoreDown = errors.New("store unavailable")

// brokenStore fails every operation.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, bool, error) { return "", false, errStoreDown }
func (brokenStore) Set(context.Context, string, string) error         { return errStoreDown }

// countingStore wraps a map and counts writes.
type countingStore struct {
	data   map[string]string
	writes int
}

func newCountingStore() *countingStore {
	return &countingStore{data: make(map[string]string)}
}

func (s *countingStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *countingStore) Set(_ context.Context, key, value string) error {
	s.writes++
	s.data[key] = value
	return nil
}

type constSource uint32

func (c constSource) Uint32s(n int) ([]uint32, error) {
	out := make([]uint32, n)
	for i := range out {
		out[i] = uint32(c)
	}
	return out, nil
}

func fixedGenerator(v uint32) *crypto.Generator {
	return crypto.NewGenerator(constSource(v), func() bool { return true })
}
