package clipboard

import (
	"log/slog"
	"sync"
	"time"
)

// DefaultClearAfter is how long a copied password stays on the clipboard.
const DefaultClearAfter = 30 * time.Second

// Timer is a pending scheduled function.
type Timer interface {
	Stop() bool
}

// Scheduler runs f after d.
type Scheduler func(d time.Duration, f func()) Timer

func afterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Guard copies text and clears the clipboard after a delay, but only if the
// clipboard still holds what was copied. At most one clear is pending; a new
// copy cancels and replaces it. Clipboard errors are logged and dropped.
type Guard struct {
	sink     Sink
	delay    time.Duration
	schedule Scheduler

	mu      sync.Mutex
	pending Timer
	done    chan struct{}
}

// NewGuard creates a Guard. A nil schedule uses time.AfterFunc.
func NewGuard(sink Sink, delay time.Duration, schedule Scheduler) *Guard {
	if schedule == nil {
		schedule = afterFunc
	}
	return &Guard{sink: sink, delay: delay, schedule: schedule}
}

// Copy writes text to the clipboard and reports whether it succeeded.
// On success a clear is scheduled unless the delay is zero or negative.
func (g *Guard) Copy(text string) bool {
	if err := g.sink.Write(text); err != nil {
		slog.Debug("clipboard write failed", "error", err)
		return false
	}
	if g.delay <= 0 {
		return true
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pending != nil {
		g.pending.Stop()
		close(g.done)
	}

	done := make(chan struct{})
	var timer Timer
	timer = g.schedule(g.delay, func() {
		g.clearIf(text)

		g.mu.Lock()
		defer g.mu.Unlock()
		if g.pending == timer {
			g.pending = nil
			close(done)
		}
	})
	g.pending = timer
	g.done = done
	return true
}

// Wait blocks until the pending clear has run or been replaced.
// It returns immediately when nothing is pending.
func (g *Guard) Wait() {
	g.mu.Lock()
	done := g.done
	pending := g.pending
	g.mu.Unlock()

	if pending == nil || done == nil {
		return
	}
	<-done
}

// Cancel drops the pending clear, leaving the clipboard as it is.
func (g *Guard) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pending != nil {
		g.pending.Stop()
		g.pending = nil
		close(g.done)
	}
}

func (g *Guard) clearIf(text string) {
	current, err := g.sink.Read()
	if err != nil {
		slog.Debug("clipboard read failed", "error", err)
		return
	}
	if current != text {
		return
	}
	if err := g.sink.Write(""); err != nil {
		slog.Debug("clipboard clear failed", "error", err)
	}
}
