package arena

import (
	"fmt"
	"time"

	"github.com/queuecommander/arena/internal/queue"
	"github.com/queuecommander/arena/pkg/core"
)

// QueueStore keeps enqueued units in strict FIFO order. It is not safe for
// concurrent use on its own; Arena serializes access.
type QueueStore struct {
	items   *queue.Queue[core.QueueEntry]
	counter int

	// lastStamp keeps instance IDs unique when enqueues share a millisecond,
	// including after a reset brings the counter back to zero.
	lastStamp int64
}

// NewQueueStore creates an empty queue store
func NewQueueStore() *QueueStore {
	return &QueueStore{
		items: queue.New[core.QueueEntry](),
	}
}

// Enqueue appends u to the back of the queue and returns the new entry
func (s *QueueStore) Enqueue(u core.Unit, now time.Time) core.QueueEntry {
	stamp := now.UnixMilli()
	if stamp <= s.lastStamp {
		stamp = s.lastStamp + 1
	}
	s.lastStamp = stamp

	entry := core.QueueEntry{
		Unit:       u,
		InstanceID: fmt.Sprintf("%s-%d-%d", u.ID, stamp, s.counter),
		Seq:        s.counter,
	}
	s.counter++
	s.items.Push(entry)
	return entry
}

// Dequeue removes the front entry. Returns ErrEmptyQueue if there is none.
func (s *QueueStore) Dequeue() (core.QueueEntry, error) {
	entry, ok := s.items.Pop()
	if !ok {
		return core.QueueEntry{}, ErrEmptyQueue
	}
	return entry, nil
}

// Clear drops every waiting entry. The counter keeps running.
func (s *QueueStore) Clear() {
	s.items.Clear()
}

// Reset empties the store and sets the counter back to zero
func (s *QueueStore) Reset() {
	s.items.Clear()
	s.counter = 0
}

// Size returns the number of waiting entries
func (s *QueueStore) Size() int {
	return s.items.Len()
}

// Counter returns the value the next enqueued entry will receive
func (s *QueueStore) Counter() int {
	return s.counter
}

// Entries returns the waiting entries, front first
func (s *QueueStore) Entries() []core.QueueEntry {
	return s.items.Items()
}
