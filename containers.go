package aoc

import (
	"container/heap"
	"fmt"

	"golang.org/x/exp/constraints"
)

type Stack[T any] struct {
	s []T
}

func (s *Stack[T]) Len() int {
	return len(s.s)
}

func (s *Stack[T]) Push(v T) {
	s.s = append(s.s, v)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	v := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v, true
}

func (s *Stack[T]) While(f func(T) bool) {
	for {
		v, ok := s.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	return s.s[len(s.s)-1], true
}

func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{
		q: in,
	}
}

type Queue[T any] struct {
	q []T
}

func (q *Queue[T]) Len() int {
	return len(q.q)
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	if len(q.q) == 0 {
		var zero T
		return zero, false
	}
	v := q.q[0]
	q.q = q.q[1:]
	return v, true
}

func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}

// Entry is an item in a PriorityQueue along with its priority.
type Entry[K comparable, P constraints.Ordered] struct {
	Item     K
	Priority P
}

func (e Entry[K, P]) String() string {
	return fmt.Sprintf("%v:%v", e.Item, e.Priority)
}

// PriorityQueue is a min-priority queue of distinct items. The position of
// every item in the heap is tracked, so the priority of a queued item can be
// looked up or changed without scanning the queue.
//
// When both children of a node have the same priority, sifting down moves
// toward the left child.
//
// The zero value is an empty queue ready to use.
type PriorityQueue[K comparable, P constraints.Ordered] struct {
	pq pq[K, P]
}

// NewPriorityQueue returns an empty queue.
func NewPriorityQueue[K comparable, P constraints.Ordered]() *PriorityQueue[K, P] {
	return &PriorityQueue[K, P]{}
}

func (q *PriorityQueue[K, P]) Len() int {
	return q.pq.Len()
}

// Contains reports whether k is in the queue.
func (q *PriorityQueue[K, P]) Contains(k K) bool {
	_, ok := q.pq.index[k]
	return ok
}

// Priority returns the current priority of k.
func (q *PriorityQueue[K, P]) Priority(k K) (P, bool) {
	i, ok := q.pq.index[k]
	if !ok {
		var zero P
		return zero, false
	}
	return q.pq.q[i].Priority, true
}

// Insert adds k to the queue. It panics if k is already queued.
func (q *PriorityQueue[K, P]) Insert(k K, p P) {
	if q.Contains(k) {
		panic(fmt.Sprintf("priority queue: insert of queued item %v", k))
	}
	heap.Push(&q.pq, Entry[K, P]{Item: k, Priority: p})
}

// Update changes the priority of k, moving it toward the root if the
// priority decreased and toward the leaves otherwise. It panics if k is not
// queued.
func (q *PriorityQueue[K, P]) Update(k K, p P) {
	i, ok := q.pq.index[k]
	if !ok {
		panic(fmt.Sprintf("priority queue: update of unknown item %v", k))
	}
	q.pq.q[i].Priority = p
	heap.Fix(&q.pq, i)
}

// Set inserts k with priority p, or updates its priority if it is already
// queued.
func (q *PriorityQueue[K, P]) Set(k K, p P) {
	if q.Contains(k) {
		q.Update(k, p)
		return
	}
	q.Insert(k, p)
}

// PopMin removes and returns the entry with the lowest priority. It reports
// false if the queue is empty.
func (q *PriorityQueue[K, P]) PopMin() (Entry[K, P], bool) {
	if q.pq.Len() == 0 {
		var zero Entry[K, P]
		return zero, false
	}
	return heap.Pop(&q.pq).(Entry[K, P]), true
}

// PeekMin returns the entry with the lowest priority without removing it.
func (q *PriorityQueue[K, P]) PeekMin() (Entry[K, P], bool) {
	if q.pq.Len() == 0 {
		var zero Entry[K, P]
		return zero, false
	}
	return q.pq.q[0], true
}

// Entries returns the queued entries in heap order. The slice is owned by
// the queue and must not be modified.
func (q *PriorityQueue[K, P]) Entries() []Entry[K, P] {
	return q.pq.q
}

// pq implements heap.Interface, keeping index in sync with q.
type pq[K comparable, P constraints.Ordered] struct {
	q     []Entry[K, P]
	index map[K]int
}

func (pq *pq[K, P]) Len() int { return len(pq.q) }

func (pq *pq[K, P]) Less(i, j int) bool {
	return pq.q[i].Priority < pq.q[j].Priority
}

func (pq *pq[K, P]) Swap(i, j int) {
	q := pq.q
	q[i], q[j] = q[j], q[i]
	pq.index[q[i].Item] = i
	pq.index[q[j].Item] = j
}

func (pq *pq[K, P]) Push(x any) {
	e := x.(Entry[K, P])
	if pq.index == nil {
		pq.index = make(map[K]int)
	}
	pq.index[e.Item] = len(pq.q)
	pq.q = append(pq.q, e)
}

func (pq *pq[K, P]) Pop() any {
	old := pq.q
	n := len(old)
	e := old[n-1]
	var zero Entry[K, P]
	old[n-1] = zero // avoid memory leak
	delete(pq.index, e.Item)
	pq.q = old[0 : n-1]
	return e
}
