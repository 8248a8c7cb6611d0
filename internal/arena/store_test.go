package arena

import (
	"testing"
	"time"

	"github.com/queuecommander/arena/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueStore_EnqueueDequeue(t *testing.T) {
	s := NewQueueStore()
	knight := core.Unit{ID: "1", Name: "Knight"}
	archer := core.Unit{ID: "2", Name: "Archer"}

	s.Enqueue(knight, epoch)
	s.Enqueue(archer, epoch)
	assert.Equal(t, 2, s.Size())

	e, err := s.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, "Knight", e.Name)

	e, err = s.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, "Archer", e.Name)

	_, err = s.Dequeue()
	assert.ErrorIs(t, err, ErrEmptyQueue)
}

func TestQueueStore_InstanceIDFormat(t *testing.T) {
	s := NewQueueStore()
	now := time.UnixMilli(1700000000123)

	e := s.Enqueue(core.Unit{ID: "4"}, now)
	assert.Equal(t, "4-1700000000123-0", e.InstanceID)

	e = s.Enqueue(core.Unit{ID: "4"}, now)
	assert.Equal(t, "4-1700000000124-1", e.InstanceID, "stamp is bumped within one millisecond")
}

func TestQueueStore_ClockGoingBackwards(t *testing.T) {
	s := NewQueueStore()

	a := s.Enqueue(core.Unit{ID: "1"}, epoch)
	b := s.Enqueue(core.Unit{ID: "1"}, epoch.Add(-time.Hour))

	assert.NotEqual(t, a.InstanceID, b.InstanceID)
}

func TestQueueStore_ResetZeroesCounter(t *testing.T) {
	s := NewQueueStore()
	s.Enqueue(core.Unit{ID: "1"}, epoch)
	s.Enqueue(core.Unit{ID: "1"}, epoch)

	s.Clear()
	assert.Equal(t, 2, s.Counter())

	s.Reset()
	assert.Equal(t, 0, s.Counter())
	assert.Equal(t, 0, s.Size())
}

func TestDeploymentLog_Positions(t *testing.T) {
	l := NewDeploymentLog()

	d0 := l.Record(core.QueueEntry{InstanceID: "a"})
	d1 := l.Record(core.QueueEntry{InstanceID: "b"})
	assert.Equal(t, 0, d0.Position)
	assert.Equal(t, 1, d1.Position)

	entries := l.Entries()
	entries[0].Position = 42
	assert.Equal(t, 0, l.Entries()[0].Position, "Entries returns a copy")

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, l.Record(core.QueueEntry{}).Position)
}
