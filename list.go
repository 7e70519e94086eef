package forkpool

import (
	"sync"
	"sync/atomic"
)

type listNode[T any] struct {
	mu    sync.RWMutex
	value T
	next  *listNode[T]
}

// List is a concurrent singly-linked list using hand-over-hand locking
// (lock coupling): a traversal never releases its grip on the current node
// until it has acquired the lock on the next one, so no other goroutine can
// splice in between them. Grounded on src/container/threadsafe_list.h.
//
// A dummy head node carries no value; real elements start at head.next. List
// is the storage under each bucket of HashMap.
type List[T any] struct {
	head  listNode[T]
	count atomic.Int64
}

// NewList constructs an empty List.
func NewList[T any]() *List[T] {
	return &List[T]{}
}

// PushFront adds value to the front of the list. Concurrent pushers may
// race, but every pushed value is inserted exactly once.
func (l *List[T]) PushFront(value T) {
	node := &listNode[T]{value: value}
	l.head.mu.Lock()
	node.next = l.head.next
	l.head.next = node
	l.count.Add(1)
	l.head.mu.Unlock()
}

// MatchAny reports whether any element satisfies predicate.
func (l *List[T]) MatchAny(predicate func(T) bool) bool {
	current := &l.head
	current.mu.RLock()
	for current.next != nil {
		next := current.next
		next.mu.RLock()
		if predicate(next.value) {
			next.mu.RUnlock()
			current.mu.RUnlock()
			return true
		}
		current.mu.RUnlock()
		current = next
	}
	current.mu.RUnlock()
	return false
}

// MatchNone reports whether no element satisfies predicate.
func (l *List[T]) MatchNone(predicate func(T) bool) bool {
	return !l.MatchAny(predicate)
}

// RemoveIf removes elements satisfying predicate, stopping after limit
// removals (0 meaning unbounded), and returns the count removed.
func (l *List[T]) RemoveIf(predicate func(T) bool, limit int) int {
	removed := 0
	current := &l.head
	current.mu.Lock()
	for current.next != nil {
		if limit > 0 && removed >= limit {
			break
		}
		next := current.next
		next.mu.Lock()
		if predicate(next.value) {
			removedNode := current.next
			current.next = removedNode.next
			// The removed node's lock must be released before the node
			// itself becomes unreachable, never after: a goroutine that
			// grabbed a pointer to it a moment ago may still be holding
			// its own lock request queued behind this one.
			next.mu.Unlock()
			l.count.Add(-1)
			removed++
			continue
		}
		current.mu.Unlock()
		current = next
	}
	current.mu.Unlock()
	return removed
}

// ReplaceIf replaces the value of elements satisfying predicate with
// supplier's result, stopping after limit replacements (0 meaning
// unbounded), and returns the count replaced.
func (l *List[T]) ReplaceIf(predicate func(T) bool, supplier func() T, limit int) int {
	replaced := 0
	current := &l.head
	current.mu.Lock()
	for current.next != nil {
		if limit > 0 && replaced >= limit {
			break
		}
		next := current.next
		next.mu.Lock()
		if predicate(next.value) {
			next.value = supplier()
			replaced++
		}
		current.mu.Unlock()
		current = next
	}
	current.mu.Unlock()
	return replaced
}

// WriteEach applies consumer to every element under a writer lock, allowing
// in-place mutation.
func (l *List[T]) WriteEach(consumer func(*T)) {
	current := &l.head
	current.mu.Lock()
	for current.next != nil {
		next := current.next
		next.mu.Lock()
		consumer(&next.value)
		current.mu.Unlock()
		current = next
	}
	current.mu.Unlock()
}

// ReadEach applies consumer to every element under a reader lock.
func (l *List[T]) ReadEach(consumer func(T)) {
	current := &l.head
	current.mu.RLock()
	for current.next != nil {
		next := current.next
		next.mu.RLock()
		consumer(next.value)
		current.mu.RUnlock()
		current = next
	}
	current.mu.RUnlock()
}

// FindFirstIf returns the first element satisfying predicate.
func (l *List[T]) FindFirstIf(predicate func(T) bool) (value T, found bool) {
	current := &l.head
	current.mu.RLock()
	for current.next != nil {
		next := current.next
		next.mu.RLock()
		if predicate(next.value) {
			value = next.value
			next.mu.RUnlock()
			current.mu.RUnlock()
			return value, true
		}
		current.mu.RUnlock()
		current = next
	}
	current.mu.RUnlock()
	return value, false
}

// WriteAndMapFirstIf applies mapper to the first element satisfying
// predicate, under a writer lock, and returns its result.
func WriteAndMapFirstIf[T, R any](l *List[T], predicate func(T) bool, mapper func(*T) R) (result R, found bool) {
	current := &l.head
	current.mu.Lock()
	for current.next != nil {
		next := current.next
		next.mu.Lock()
		if predicate(next.value) {
			result = mapper(&next.value)
			next.mu.Unlock()
			current.mu.Unlock()
			return result, true
		}
		current.mu.Unlock()
		current = next
	}
	current.mu.Unlock()
	return result, false
}

// ReadAndMapFirstIf applies mapper to the first element satisfying
// predicate, under a reader lock, and returns its result.
func ReadAndMapFirstIf[T, R any](l *List[T], predicate func(T) bool, mapper func(T) R) (result R, found bool) {
	current := &l.head
	current.mu.RLock()
	for current.next != nil {
		next := current.next
		next.mu.RLock()
		if predicate(next.value) {
			result = mapper(next.value)
			next.mu.RUnlock()
			current.mu.RUnlock()
			return result, true
		}
		current.mu.RUnlock()
		current = next
	}
	current.mu.RUnlock()
	return result, false
}

// Clear removes every element from the list.
func (l *List[T]) Clear() {
	l.head.mu.Lock()
	defer l.head.mu.Unlock()
	for l.head.next != nil {
		removedNode := l.head.next
		removedNode.mu.Lock()
		l.head.next = removedNode.next
		removedNode.mu.Unlock()
		l.count.Add(-1)
	}
}

// Empty reports whether the list currently holds no elements. Under
// concurrent mutation this is a snapshot, not a linearizable fact — the
// same caveat the original container's atomic_size_t counter carried.
func (l *List[T]) Empty() bool { return l.count.Load() == 0 }

// Len returns the number of elements currently in the list.
func (l *List[T]) Len() int { return int(l.count.Load()) }
