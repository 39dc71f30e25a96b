package collection

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
)

// ErrInvalidChunkSize is returned when a chunk size below 1 is requested.
var ErrInvalidChunkSize = errors.New("chunk size must be positive")

// Flatten expands nested sequences in items up to depth levels and returns
// the result as a new slice. A negative depth means unlimited; depth 0
// returns a copy of the input. Strings, byte slices, and maps are treated
// as atomic values even though they are iterable in some source languages.
func Flatten(items []any, depth int) []any {
	result := make([]any, 0, len(items))
	for _, item := range items {
		sub, ok := asSequence(item)
		if !ok || depth == 0 {
			result = append(result, item)
			continue
		}

		next := depth - 1
		if depth < 0 {
			next = -1
		}
		result = append(result, Flatten(sub, next)...)
	}
	return result
}

// asSequence converts slice and array values into []any for flattening.
// Byte sequences and maps stay atomic.
func asSequence(v any) ([]any, bool) {
	switch v.(type) {
	case nil, string, []byte:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	default:
		return nil, false
	}
}

// Chunk splits items into groups of the given size; the last group may be
// shorter. The returned chunks are views into the input slice. A size
// below 1 is an input-shape error, never clamped.
func Chunk[T any](items []T, size int) ([][]T, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkSize, size)
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for c := range slices.Chunk(items, size) {
		chunks = append(chunks, c)
	}
	return chunks, nil
}

// GroupBy builds a map from each derived key to the items that produced it,
// preserving input order within every group.
func GroupBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	result := make(map[K][]T)
	for _, item := range items {
		k := key(item)
		result[k] = append(result[k], item)
	}
	return result
}

// GroupByOrdered is GroupBy plus the group keys in first-seen order, for
// callers that need deterministic traversal.
func GroupByOrdered[T any, K comparable](items []T, key func(T) K) (map[K][]T, []K) {
	result := make(map[K][]T)
	var order []K
	for _, item := range items {
		k := key(item)
		if _, seen := result[k]; !seen {
			order = append(order, k)
		}
		result[k] = append(result[k], item)
	}
	return result, order
}

// Unique returns items with duplicates removed, keeping the first
// occurrence of each element.
func Unique[T comparable](items []T) []T {
	return UniqueBy(items, func(v T) T { return v })
}

// UniqueBy deduplicates items by a derived key, keeping the first item that
// produced each key.
func UniqueBy[T any, K comparable](items []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	result := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, item)
	}
	return result
}

// Partition splits items into those satisfying pred and the rest, both in
// original relative order.
func Partition[T any](items []T, pred func(T) bool) (matched, rest []T) {
	matched = make([]T, 0, len(items))
	rest = make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			matched = append(matched, item)
		} else {
			rest = append(rest, item)
		}
	}
	return matched, rest
}
