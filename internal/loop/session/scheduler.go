package session

import (
	"slices"
	"time"
)

type timerID uint64

type timer struct {
	id     timerID
	due    time.Time
	period time.Duration // zero for one-shot timers
	fn     func(now time.Time)
}

// scheduler runs periodic and one-shot callbacks against an externally
// supplied clock. It is not safe for concurrent use.
type scheduler struct {
	timers []*timer
	nextID timerID
}

// every arms fn to run each period, first at now+period.
func (s *scheduler) every(now time.Time, period time.Duration, fn func(now time.Time)) timerID {
	return s.add(now.Add(period), period, fn)
}

// after arms fn to run once at now+delay.
func (s *scheduler) after(now time.Time, delay time.Duration, fn func(now time.Time)) timerID {
	return s.add(now.Add(delay), 0, fn)
}

func (s *scheduler) add(due time.Time, period time.Duration, fn func(now time.Time)) timerID {
	s.nextID++
	s.timers = append(s.timers, &timer{id: s.nextID, due: due, period: period, fn: fn})
	return s.nextID
}

// cancel disarms a timer. Unknown ids are ignored.
func (s *scheduler) cancel(id timerID) {
	if i := slices.IndexFunc(s.timers, func(t *timer) bool { return t.id == id }); i >= 0 {
		s.timers = slices.Delete(s.timers, i, i+1)
	}
}

// cancelAll disarms every timer.
func (s *scheduler) cancelAll() {
	clear(s.timers)
	s.timers = s.timers[:0]
}

// len returns the number of armed timers.
func (s *scheduler) len() int {
	return len(s.timers)
}

// next returns the earliest due time.
func (s *scheduler) next() (time.Time, bool) {
	t := s.earliest()
	if t == nil {
		return time.Time{}, false
	}
	return t.due, true
}

// earliest returns the timer due first, ties going to the one armed first.
func (s *scheduler) earliest() *timer {
	var best *timer
	for _, t := range s.timers {
		if best == nil || t.due.Before(best.due) || (t.due.Equal(best.due) && t.id < best.id) {
			best = t
		}
	}
	return best
}

// run fires every timer due at or before now, in due order, and returns how
// many callbacks ran. A periodic timer fires at most once per call: missed
// periods are coalesced instead of replayed. Callbacks may arm or cancel timers.
func (s *scheduler) run(now time.Time) int {
	fired := 0
	for {
		t := s.earliest()
		if t == nil || t.due.After(now) {
			return fired
		}
		if t.period > 0 {
			t.due = t.due.Add(t.period)
			if !t.due.After(now) {
				t.due = now.Add(t.period)
			}
		} else {
			s.cancel(t.id)
		}
		t.fn(now)
		fired++
	}
}
