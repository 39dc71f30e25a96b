// Package collection provides generic helpers for slices and maps
// (flattening, chunking, grouping, deduplication, recursive map merging,
// plucking, partitioning) plus two small container types: an
// insertion-ordered set and a chainable List.
//
// Every helper preserves the relative order of its input and never mutates
// arguments; results are always freshly allocated (or cheap views, where
// documented).
//
// # Usage
//
//	import "github.com/dmitrymomot/utilkit/pkg/collection"
//
//	collection.Unique([]int{3, 1, 4, 1, 5})              // [3 1 4 5]
//	collection.Partition(nums, func(n int) bool { return n%2 == 0 })
//
//	s := collection.NewOrderedSet(3, 1, 4, 1, 5)
//	s.Values() // [3 1 4 5]
//
// Absent values (a missing key in Pluck, First of an empty List) are
// reported through the Optional type rather than zero values or panics.
//
// # Thread Safety
//
// The free functions are stateless. OrderedSet and List are plain values
// with no internal locking; guard them externally if shared across
// goroutines.
package collection
