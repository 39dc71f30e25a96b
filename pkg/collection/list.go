package collection

import "slices"

// List is a slice wrapper with chainable enumerable helpers. Operations
// return new Lists and never mutate the receiver. Helpers that change the
// element type (MapList, Reduce) are package functions because Go methods
// cannot introduce type parameters.
type List[T any] struct {
	items []T
}

// NewList creates a List holding a copy of the given items.
func NewList[T any](items ...T) List[T] {
	return List[T]{items: slices.Clone(items)}
}

// ListFrom wraps an existing slice without copying. The caller must not
// mutate the slice afterwards.
func ListFrom[T any](items []T) List[T] {
	return List[T]{items: items}
}

// Values returns the elements as a fresh slice.
func (l List[T]) Values() []T {
	return slices.Clone(l.items)
}

// Len returns the number of elements.
func (l List[T]) Len() int {
	return len(l.items)
}

// Filter returns the elements satisfying pred, in order.
func (l List[T]) Filter(pred func(T) bool) List[T] {
	result := make([]T, 0, len(l.items))
	for _, item := range l.items {
		if pred(item) {
			result = append(result, item)
		}
	}
	return List[T]{items: result}
}

// Each calls fn for every element in order.
func (l List[T]) Each(fn func(T)) {
	for _, item := range l.items {
		fn(item)
	}
}

// Any reports whether at least one element satisfies pred.
func (l List[T]) Any(pred func(T) bool) bool {
	return slices.ContainsFunc(l.items, pred)
}

// AllMatch reports whether every element satisfies pred. An empty list
// matches vacuously.
func (l List[T]) AllMatch(pred func(T) bool) bool {
	for _, item := range l.items {
		if !pred(item) {
			return false
		}
	}
	return true
}

// Count returns how many elements satisfy pred.
func (l List[T]) Count(pred func(T) bool) int {
	n := 0
	for _, item := range l.items {
		if pred(item) {
			n++
		}
	}
	return n
}

// First returns the first element, or an absent Optional when the list is
// empty.
func (l List[T]) First() Optional[T] {
	if len(l.items) == 0 {
		return None[T]()
	}
	return Some(l.items[0])
}

// Last returns the last element, or an absent Optional when the list is
// empty.
func (l List[T]) Last() Optional[T] {
	if len(l.items) == 0 {
		return None[T]()
	}
	return Some(l.items[len(l.items)-1])
}

// Chunk splits the list into groups of the given size; see Chunk.
func (l List[T]) Chunk(size int) ([][]T, error) {
	return Chunk(l.items, size)
}

// MapList transforms every element of l with fn.
func MapList[T, U any](l List[T], fn func(T) U) List[U] {
	result := make([]U, len(l.items))
	for i, item := range l.items {
		result[i] = fn(item)
	}
	return List[U]{items: result}
}

// Reduce folds the list left to right starting from an explicit initial
// accumulator. There is no implicit first-element seed, so empty lists
// simply return the initial value.
func Reduce[T, U any](l List[T], initial U, fn func(U, T) U) U {
	acc := initial
	for _, item := range l.items {
		acc = fn(acc, item)
	}
	return acc
}

// Distinct returns the list with duplicates removed, keeping first
// occurrences.
func Distinct[T comparable](l List[T]) List[T] {
	return List[T]{items: Unique(l.items)}
}

// DistinctBy deduplicates by a derived key, keeping the first element that
// produced each key.
func DistinctBy[T any, K comparable](l List[T], key func(T) K) List[T] {
	return List[T]{items: UniqueBy(l.items, key)}
}
