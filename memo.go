package aoc

import "github.com/golang/groupcache/lru"

type memoKey[A, B comparable] struct {
	a A
	b B
}

// Memo is a bounded cache of values keyed by a pair of comparable values,
// for memoizing recursive functions of two arguments. The least recently
// used entry is evicted once the cache is full.
//
// A Memo is not safe for concurrent use.
type Memo[A, B comparable, V any] struct {
	c *lru.Cache
}

// NewMemo returns a Memo holding at most max entries. Zero means no limit.
func NewMemo[A, B comparable, V any](max int) *Memo[A, B, V] {
	return &Memo[A, B, V]{c: lru.New(max)}
}

func (m *Memo[A, B, V]) Get(a A, b B) (V, bool) {
	v, ok := m.c.Get(memoKey[A, B]{a, b})
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

func (m *Memo[A, B, V]) Add(a A, b B, v V) {
	m.c.Add(memoKey[A, B]{a, b}, v)
}

// Do returns the cached value for (a, b), calling f to compute and cache it
// when it is missing.
func (m *Memo[A, B, V]) Do(a A, b B, f func() V) V {
	if v, ok := m.Get(a, b); ok {
		return v
	}
	v := f()
	m.Add(a, b, v)
	return v
}
