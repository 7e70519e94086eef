package forkpool

import "sync"

type stackNode[T any] struct {
	value T
	next  *stackNode[T]
}

// Stack is a concurrent LIFO stack guarded by a single mutex and condition
// variable. Grounded on src/container/threadsafe_stack.h. It backs each
// worker's local task list: a worker that just submitted a task has a good
// chance the task's captured data is still warm in cache, so popping from
// the same end it was pushed to (LIFO) favors cache locality over strict
// submission order.
type Stack[T any] struct {
	mu    sync.Mutex
	cond  *sync.Cond
	top   *stackNode[T]
	count int
}

// NewStack constructs an empty Stack.
func NewStack[T any]() *Stack[T] {
	s := &Stack[T]{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Push places value on top of the stack.
func (s *Stack[T]) Push(value T) {
	node := &stackNode[T]{value: value}
	s.mu.Lock()
	node.next = s.top
	s.top = node
	s.count++
	s.mu.Unlock()
	s.cond.Signal()
}

// TryPop removes and returns the top value without blocking. ok is false if
// the stack was empty.
func (s *Stack[T]) TryPop() (value T, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.top == nil {
		return value, false
	}
	return s.pop(), true
}

// Pop removes and returns the top value, blocking until one is available.
func (s *Stack[T]) Pop() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.top == nil {
		s.cond.Wait()
	}
	return s.pop()
}

// pop must be called with mu held and the stack known non-empty.
func (s *Stack[T]) pop() T {
	node := s.top
	s.top = node.next
	s.count--
	return node.value
}

// Clear removes every element from the stack.
func (s *Stack[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.top != nil {
		s.pop()
	}
}

// Empty reports whether the stack currently holds no elements.
func (s *Stack[T]) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count == 0
}

// Len returns the number of elements currently on the stack.
func (s *Stack[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}
