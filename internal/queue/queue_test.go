package queue

import (
	"sync"
	"testing"
)

// testItem is a simple struct for testing the generic queue
type testItem struct {
	ID   int
	Name string
}

func TestQueue_New(t *testing.T) {
	q := New[testItem]()
	if q == nil {
		t.Fatal("expected non-nil queue")
	}
	if !q.Empty() {
		t.Error("expected empty queue")
	}
	if q.Len() != 0 {
		t.Errorf("expected length 0, got %d", q.Len())
	}
}

func TestQueue_Push(t *testing.T) {
	q := New[testItem]()

	q.Push(testItem{ID: 1, Name: "first"})
	if q.Len() != 1 {
		t.Errorf("expected length 1, got %d", q.Len())
	}

	q.Push(testItem{ID: 2}, testItem{ID: 3})
	if q.Len() != 3 {
		t.Errorf("expected length 3, got %d", q.Len())
	}
}

func TestQueue_Pop(t *testing.T) {
	q := New[testItem]()

	result, ok := q.Pop()
	if ok {
		t.Error("expected ok=false popping an empty queue")
	}
	if result.ID != 0 || result.Name != "" {
		t.Errorf("expected zero value, got %+v", result)
	}

	q.Push(testItem{ID: 1, Name: "first"}, testItem{ID: 2, Name: "second"})
	first, ok := q.Pop()
	if !ok || first.ID != 1 || first.Name != "first" {
		t.Errorf("expected {1, first}, got %+v (ok=%v)", first, ok)
	}
	if q.Len() != 1 {
		t.Errorf("expected length 1, got %d", q.Len())
	}
}

func TestQueue_FIFOOrder(t *testing.T) {
	q := New[int]()
	for i := 0; i < 50; i++ {
		q.Push(i)
	}

	for want := 0; want < 50; want++ {
		got, ok := q.Pop()
		if !ok {
			t.Fatalf("queue drained early at %d", want)
		}
		if got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	}

	if _, ok := q.Pop(); ok {
		t.Error("expected queue to be drained")
	}
}

func TestQueue_InterleavedPushPop(t *testing.T) {
	q := New[string]()

	q.Push("a", "b")
	if v, _ := q.Pop(); v != "a" {
		t.Errorf("expected a, got %s", v)
	}
	q.Push("c")
	if v, _ := q.Pop(); v != "b" {
		t.Errorf("expected b, got %s", v)
	}
	if v, _ := q.Pop(); v != "c" {
		t.Errorf("expected c, got %s", v)
	}
}

func TestQueue_Peek(t *testing.T) {
	q := New[testItem]()

	if _, ok := q.Peek(); ok {
		t.Error("expected ok=false peeking an empty queue")
	}

	q.Push(testItem{ID: 7}, testItem{ID: 8})
	front, ok := q.Peek()
	if !ok || front.ID != 7 {
		t.Errorf("expected front 7, got %+v", front)
	}
	if q.Len() != 2 {
		t.Errorf("peek must not remove, length %d", q.Len())
	}
}

func TestQueue_Empty(t *testing.T) {
	q := New[testItem]()

	if !q.Empty() {
		t.Error("expected empty queue")
	}

	q.Push(testItem{ID: 1})
	if q.Empty() {
		t.Error("expected non-empty queue")
	}

	q.Pop()
	if !q.Empty() {
		t.Error("expected empty queue after pop")
	}
}

func TestQueue_Clear(t *testing.T) {
	q := New[testItem]()
	q.Push(testItem{ID: 1}, testItem{ID: 2}, testItem{ID: 3})

	q.Clear()

	if !q.Empty() {
		t.Error("expected empty queue after clear")
	}
	if q.Len() != 0 {
		t.Errorf("expected length 0, got %d", q.Len())
	}
}

func TestQueue_ItemsIsCopy(t *testing.T) {
	q := New[testItem]()
	q.Push(testItem{ID: 1}, testItem{ID: 2})

	items := q.Items()
	items[0].ID = 99

	front, _ := q.Peek()
	if front.ID != 1 {
		t.Errorf("mutating Items() result changed the queue: %+v", front)
	}
}

func TestQueue_GetAndEmpty(t *testing.T) {
	q := New[testItem]()
	q.Push(testItem{ID: 1}, testItem{ID: 2}, testItem{ID: 3})

	result := q.GetAndEmpty()

	if len(result) != 3 {
		t.Errorf("expected 3 items, got %d", len(result))
	}
	if result[0].ID != 1 || result[1].ID != 2 || result[2].ID != 3 {
		t.Errorf("unexpected items: %+v", result)
	}
	if !q.Empty() {
		t.Error("expected empty queue after GetAndEmpty")
	}
}

func TestQueue_Concurrent(t *testing.T) {
	q := New[testItem]()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			q.Push(testItem{ID: id})
		}(i)
	}
	wg.Wait()

	if q.Len() != 100 {
		t.Errorf("expected 100 items, got %d", q.Len())
	}

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Pop()
		}()
	}
	wg.Wait()

	if q.Len() != 50 {
		t.Errorf("expected 50 items after pops, got %d", q.Len())
	}
}
