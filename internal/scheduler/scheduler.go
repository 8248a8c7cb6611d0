// Package scheduler runs cancellable delayed tasks keyed by ID.
package scheduler

import (
	"sync"
	"time"
)

type task struct {
	seq   uint64
	timer Timer
}

// Scheduler holds at most one pending task per ID. A task that was cancelled
// or replaced never runs, even if its timer already fired.
type Scheduler struct {
	mu    sync.Mutex
	clock Clock
	seq   uint64
	tasks map[string]*task
}

// New creates a scheduler on the given clock. A nil clock uses RealClock.
func New(clock Clock) *Scheduler {
	if clock == nil {
		clock = RealClock{}
	}
	return &Scheduler{
		clock: clock,
		tasks: make(map[string]*task),
	}
}

// Clock returns the clock the scheduler runs on
func (s *Scheduler) Clock() Clock {
	return s.clock
}

// Schedule runs fn after delay. An existing task under the same id is replaced.
func (s *Scheduler) Schedule(id string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.tasks[id]; ok {
		old.timer.Stop()
	}

	s.seq++
	seq := s.seq
	t := &task{seq: seq}
	s.tasks[id] = t
	t.timer = s.clock.AfterFunc(delay, func() {
		s.fire(id, seq, fn)
	})
}

func (s *Scheduler) fire(id string, seq uint64, fn func()) {
	s.mu.Lock()
	cur, ok := s.tasks[id]
	if !ok || cur.seq != seq {
		s.mu.Unlock()
		return
	}
	delete(s.tasks, id)
	s.mu.Unlock()

	fn()
}

// Cancel stops the task scheduled under id. Returns false if none was pending.
func (s *Scheduler) Cancel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return false
	}
	t.timer.Stop()
	delete(s.tasks, id)
	return true
}

// CancelAll stops every pending task and returns how many were cancelled
func (s *Scheduler) CancelAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.tasks)
	for id, t := range s.tasks {
		t.timer.Stop()
		delete(s.tasks, id)
	}
	return n
}

// Pending returns the number of tasks waiting to run
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
