package engine

import (
	"sort"
	"time"
)

// Scheduler runs fn after d. Scheduled steps are never cancelled: once
// queued, a step always runs and performs its mutation.
type Scheduler interface {
	After(d time.Duration, fn func())
}

type step struct {
	at  time.Duration
	seq uint64
	fn  func()
}

// StepScheduler is a virtual-time Scheduler. Nothing runs until Advance or
// Drain is called, which makes it deterministic for tests and simulation.
type StepScheduler struct {
	now     time.Duration
	seq     uint64
	pending []step
}

func NewStepScheduler() *StepScheduler {
	return &StepScheduler{}
}

func (s *StepScheduler) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	s.seq++
	s.pending = append(s.pending, step{at: s.now + d, seq: s.seq, fn: fn})
}

// Now returns the virtual time elapsed.
func (s *StepScheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of queued steps.
func (s *StepScheduler) Pending() int {
	return len(s.pending)
}

// Advance moves virtual time forward by d, running every step that falls
// due, including steps queued by the steps it runs.
func (s *StepScheduler) Advance(d time.Duration) int {
	target := s.now + d
	ran := 0
	for {
		next, ok := s.pop(target)
		if !ok {
			break
		}
		s.now = next.at
		next.fn()
		ran++
	}
	s.now = target
	return ran
}

// Drain runs every pending step in time order until none remain.
func (s *StepScheduler) Drain() int {
	ran := 0
	for len(s.pending) > 0 {
		next, _ := s.pop(s.latest())
		s.now = next.at
		next.fn()
		ran++
	}
	return ran
}

func (s *StepScheduler) latest() time.Duration {
	latest := s.now
	for _, st := range s.pending {
		if st.at > latest {
			latest = st.at
		}
	}
	return latest
}

// pop removes and returns the earliest step due at or before limit.
func (s *StepScheduler) pop(limit time.Duration) (step, bool) {
	if len(s.pending) == 0 {
		return step{}, false
	}
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].at != s.pending[j].at {
			return s.pending[i].at < s.pending[j].at
		}
		return s.pending[i].seq < s.pending[j].seq
	})
	first := s.pending[0]
	if first.at > limit {
		return step{}, false
	}
	s.pending = s.pending[1:]
	return first, true
}
