package forkpool

import (
	"sync"
	"testing"
	"time"
)

func TestQueue_FIFOOrder(t *testing.T) {
	q := NewQueue[int]()
	for i := 0; i < 5; i++ {
		q.Push(i)
	}
	for i := 0; i < 5; i++ {
		v, ok := q.TryPop()
		if !ok {
			t.Fatalf("expected a value at index %d", i)
		}
		if v != i {
			t.Errorf("expected %d, got %d", i, v)
		}
	}
	if _, ok := q.TryPop(); ok {
		t.Error("expected empty queue after draining")
	}
}

func TestQueue_TryPopOnEmpty(t *testing.T) {
	q := NewQueue[string]()
	if _, ok := q.TryPop(); ok {
		t.Error("expected TryPop to fail on empty queue")
	}
}

func TestQueue_PopBlocksUntilPush(t *testing.T) {
	q := NewQueue[int]()
	done := make(chan int, 1)

	go func() {
		done <- q.Pop()
	}()

	time.Sleep(20 * time.Millisecond)
	select {
	case <-done:
		t.Fatal("Pop returned before any value was pushed")
	default:
	}

	q.Push(7)

	select {
	case v := <-done:
		if v != 7 {
			t.Errorf("expected 7, got %d", v)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for Pop to unblock")
	}
}

func TestQueue_ConcurrentPushPop(t *testing.T) {
	q := NewQueue[int]()
	const n = 1000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			q.Push(i)
		}
	}()

	received := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		v := q.Pop()
		received[v] = true
	}
	wg.Wait()

	if len(received) != n {
		t.Fatalf("expected %d unique values, got %d", n, len(received))
	}
}

func TestQueue_Clear(t *testing.T) {
	q := NewQueue[int]()
	q.Push(1)
	q.Push(2)
	q.Clear()
	if !q.Empty() {
		t.Error("expected queue to be empty after Clear")
	}
	if q.Len() != 0 {
		t.Errorf("expected length 0, got %d", q.Len())
	}
}
