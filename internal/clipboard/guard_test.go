package clipboard

import (
	"errors"
	"testing"
	"time"
)

type memorySink struct {
	text     string
	writeErr error
	readErr  error
	writes   int
}

func (m *memorySink) Write(text string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.writes++
	m.text = text
	return nil
}

func (m *memorySink) Read() (string, error) {
	if m.readErr != nil {
		return "", m.readErr
	}
	return m.text, nil
}

type fakeTimer struct {
	f       func()
	delay   time.Duration
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

func (t *fakeTimer) fire() {
	if !t.stopped {
		t.stopped = true
		t.f()
	}
}

type fakeScheduler struct {
	timers []*fakeTimer
}

func (s *fakeScheduler) schedule(d time.Duration, f func()) Timer {
	t := &fakeTimer{f: f, delay: d}
	s.timers = append(s.timers, t)
	return t
}

func TestCopyClearsAfterDelay(t *testing.T) {
	sink := &memorySink{}
	sched := &fakeScheduler{}
	g := NewGuard(sink, 30*time.Second, sched.schedule)

	if !g.Copy("s3cret") {
		t.Fatal("Copy() = false, want true")
	}
	if sink.text != "s3cret" {
		t.Fatalf("clipboard = %q, want %q", sink.text, "s3cret")
	}
	if len(sched.timers) != 1 || sched.timers[0].delay != 30*time.Second {
		t.Fatalf("expected one 30s timer, got %+v", sched.timers)
	}

	sched.timers[0].fire()
	if sink.text != "" {
		t.Errorf("clipboard = %q after timer, want empty", sink.text)
	}
	g.Wait()
}

func TestClearSkipsChangedClipboard(t *testing.T) {
	sink := &memorySink{}
	sched := &fakeScheduler{}
	g := NewGuard(sink, time.Second, sched.schedule)

	g.Copy("s3cret")
	sink.text = "something the user copied later"
	sched.timers[0].fire()

	if sink.text != "something the user copied later" {
		t.Errorf("clipboard = %q, want it untouched", sink.text)
	}
}

func TestNewCopyReplacesPendingClear(t *testing.T) {
	sink := &memorySink{}
	sched := &fakeScheduler{}
	g := NewGuard(sink, time.Second, sched.schedule)

	g.Copy("first")
	g.Copy("second")

	if len(sched.timers) != 2 {
		t.Fatalf("expected 2 timers, got %d", len(sched.timers))
	}
	if !sched.timers[0].stopped {
		t.Error("expected the first timer to be cancelled")
	}

	sched.timers[0].fire()
	if sink.text != "second" {
		t.Errorf("clipboard = %q, want %q", sink.text, "second")
	}

	sched.timers[1].fire()
	if sink.text != "" {
		t.Errorf("clipboard = %q, want empty", sink.text)
	}
}

func TestCopyWriteFailureIsSwallowed(t *testing.T) {
	sink := &memorySink{writeErr: ErrUnavailable}
	sched := &fakeScheduler{}
	g := NewGuard(sink, time.Second, sched.schedule)

	if g.Copy("s3cret") {
		t.Error("Copy() = true, want false on write failure")
	}
	if len(sched.timers) != 0 {
		t.Error("expected no clear to be scheduled after a failed copy")
	}
	g.Wait()
}

func TestClearReadFailureIsSwallowed(t *testing.T) {
	sink := &memorySink{}
	sched := &fakeScheduler{}
	g := NewGuard(sink, time.Second, sched.schedule)

	g.Copy("s3cret")
	sink.readErr = errors.New("permission denied")
	sched.timers[0].fire()

	if sink.text != "s3cret" {
		t.Errorf("clipboard = %q, want it untouched", sink.text)
	}
}

func TestCancel(t *testing.T) {
	sink := &memorySink{}
	sched := &fakeScheduler{}
	g := NewGuard(sink, time.Second, sched.schedule)

	g.Copy("s3cret")
	g.Cancel()

	if !sched.timers[0].stopped {
		t.Error("expected the timer to be stopped")
	}
	g.Wait()
}

func TestZeroDelayNeverClears(t *testing.T) {
	sink := &memorySink{}
	sched := &fakeScheduler{}
	g := NewGuard(sink, 0, sched.schedule)

	g.Copy("s3cret")

	if len(sched.timers) != 0 {
		t.Error("expected no timer with zero delay")
	}
}

func TestGuardWithRealTimer(t *testing.T) {
	sink := &memorySink{}
	g := NewGuard(sink, 10*time.Millisecond, nil)

	g.Copy("s3cret")
	g.Wait()

	if sink.text != "" {
		t.Errorf("clipboard = %q, want empty", sink.text)
	}
}
