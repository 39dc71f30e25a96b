package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/utilkit/pkg/collection"
)

func TestDeepMerge(t *testing.T) {
	t.Run("flat right bias", func(t *testing.T) {
		result := collection.DeepMerge(
			map[string]any{"a": 1, "b": 2},
			map[string]any{"b": 3, "c": 4},
		)
		assert.Equal(t, map[string]any{"a": 1, "b": 3, "c": 4}, result)
	})

	t.Run("nested maps merge recursively", func(t *testing.T) {
		result := collection.DeepMerge(
			map[string]any{"user": map[string]any{"name": "Alice", "age": 30}},
			map[string]any{"user": map[string]any{"age": 31, "city": "NYC"}},
		)
		assert.Equal(t, map[string]any{
			"user": map[string]any{"name": "Alice", "age": 31, "city": "NYC"},
		}, result)
	})

	t.Run("deeply nested", func(t *testing.T) {
		result := collection.DeepMerge(
			map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}}},
			map[string]any{"a": map[string]any{"b": map[string]any{"d": 2}}},
		)
		assert.Equal(t, map[string]any{
			"a": map[string]any{"b": map[string]any{"c": 1, "d": 2}},
		}, result)
	})

	t.Run("slices replaced wholesale", func(t *testing.T) {
		result := collection.DeepMerge(
			map[string]any{"tags": []string{"a", "b"}},
			map[string]any{"tags": []string{"c"}},
		)
		assert.Equal(t, map[string]any{"tags": []string{"c"}}, result)
	})

	t.Run("map replaced by scalar from right", func(t *testing.T) {
		result := collection.DeepMerge(
			map[string]any{"k": map[string]any{"nested": true}},
			map[string]any{"k": 42},
		)
		assert.Equal(t, map[string]any{"k": 42}, result)
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		a := map[string]any{"a": map[string]any{"b": 1}}
		b := map[string]any{"a": map[string]any{"c": 2}}

		result := collection.DeepMerge(a, b)
		assert.Equal(t, map[string]any{"a": map[string]any{"b": 1, "c": 2}}, result)

		assert.Equal(t, map[string]any{"a": map[string]any{"b": 1}}, a)
		assert.Equal(t, map[string]any{"a": map[string]any{"c": 2}}, b)
	})
}

func TestPluck(t *testing.T) {
	t.Run("extracts present values", func(t *testing.T) {
		users := []map[string]string{
			{"id": "1", "name": "Alice"},
			{"id": "2", "name": "Bob"},
			{"id": "3", "name": "Carol"},
		}

		names := collection.Pluck(users, "name")
		require.Len(t, names, 3)

		got := make([]string, 0, len(names))
		for _, opt := range names {
			v, ok := opt.Get()
			require.True(t, ok)
			got = append(got, v)
		}
		assert.Equal(t, []string{"Alice", "Bob", "Carol"}, got)
	})

	t.Run("missing keys are absent not zero", func(t *testing.T) {
		items := []map[string]int{{"a": 1}, {"a": 2, "b": 3}, {"b": 4}}

		plucked := collection.Pluck(items, "a")
		require.Len(t, plucked, 3)

		assert.True(t, plucked[0].IsPresent())
		assert.True(t, plucked[1].IsPresent())
		assert.False(t, plucked[2].IsPresent())

		assert.Equal(t, 1, plucked[0].OrElse(-1))
		assert.Equal(t, -1, plucked[2].OrElse(-1))
	})
}
