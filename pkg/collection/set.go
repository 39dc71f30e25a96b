package collection

import (
	"fmt"
	"iter"
	"slices"
)

// OrderedSet is a set of unique elements that iterates in insertion order.
// Add and Contains are O(1) amortized; Discard is O(n) because it compacts
// the order slice. The zero value is not usable; use NewOrderedSet.
type OrderedSet[T comparable] struct {
	index map[T]int
	items []T
}

// NewOrderedSet creates a set holding the given items, keeping the first
// occurrence of each duplicate.
func NewOrderedSet[T comparable](items ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{index: make(map[T]int, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts v. If v is already present the set is unchanged and the
// original insertion position is kept.
func (s *OrderedSet[T]) Add(v T) {
	if _, ok := s.index[v]; ok {
		return
	}
	s.index[v] = len(s.items)
	s.items = append(s.items, v)
}

// Discard removes v if present; absent values are a no-op.
func (s *OrderedSet[T]) Discard(v T) {
	pos, ok := s.index[v]
	if !ok {
		return
	}
	delete(s.index, v)
	s.items = slices.Delete(s.items, pos, pos+1)
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i]] = i
	}
}

// Contains reports whether v is in the set.
func (s *OrderedSet[T]) Contains(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Len returns the number of elements.
func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

// Values returns the elements in insertion order as a fresh slice.
func (s *OrderedSet[T]) Values() []T {
	return slices.Clone(s.items)
}

// All iterates over the elements in insertion order.
func (s *OrderedSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Equal reports whether both sets hold the same elements in the same
// insertion order.
func (s *OrderedSet[T]) Equal(other *OrderedSet[T]) bool {
	if other == nil {
		return false
	}
	return slices.Equal(s.items, other.items)
}

// EqualSet reports whether the set holds exactly the elements of the given
// plain set, ignoring order.
func (s *OrderedSet[T]) EqualSet(other map[T]struct{}) bool {
	if len(other) != len(s.items) {
		return false
	}
	for v := range other {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (s *OrderedSet[T]) String() string {
	return fmt.Sprintf("OrderedSet(%v)", s.items)
}
