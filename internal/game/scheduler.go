package game

import (
	"sort"
	"time"
)

// Timer is a deferred callback owned by a Scheduler.
type Timer struct {
	at        float64
	seq       int
	fn        func()
	cancelled bool
	fired     bool
}

// Cancel prevents the callback from running. Safe to call more than once,
// and on a nil Timer.
func (t *Timer) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// Pending reports whether the callback is still due to run.
func (t *Timer) Pending() bool {
	return t != nil && !t.cancelled && !t.fired
}

// Scheduler runs deferred callbacks from the frame loop. It never blocks:
// callbacks fire during Advance once their due time has passed.
type Scheduler struct {
	now    float64
	seq    int
	timers []*Timer
}

// After schedules fn to run d after the scheduler's current time.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	s.seq++
	t := &Timer{at: s.now + d.Seconds(), seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the scheduler to now (seconds) and fires every due timer in
// due-time order.
func (s *Scheduler) Advance(now float64) {
	if now > s.now {
		s.now = now
	}

	var due []*Timer
	kept := s.timers[:0]
	for _, t := range s.timers {
		switch {
		case t.cancelled:
		case t.at <= s.now:
			due = append(due, t)
		default:
			kept = append(kept, t)
		}
	}
	s.timers = kept

	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	for _, t := range due {
		if t.cancelled {
			continue
		}
		t.fired = true
		t.fn()
	}
}

// CancelAll cancels every pending timer and rewinds the scheduler to zero.
func (s *Scheduler) CancelAll() {
	for _, t := range s.timers {
		t.cancelled = true
	}
	s.timers = s.timers[:0]
	s.now = 0
}

// Len returns the number of pending timers.
func (s *Scheduler) Len() int {
	return len(s.timers)
}
