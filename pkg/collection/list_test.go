package collection_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/utilkit/pkg/collection"
)

func TestList(t *testing.T) {
	isEven := func(n int) bool { return n%2 == 0 }

	t.Run("filter chains", func(t *testing.T) {
		result := collection.NewList(1, 2, 3, 4, 5, 6).
			Filter(isEven).
			Filter(func(n int) bool { return n > 2 }).
			Values()
		assert.Equal(t, []int{4, 6}, result)
	})

	t.Run("map changes element type", func(t *testing.T) {
		l := collection.NewList(1, 2, 3)
		strs := collection.MapList(l, strconv.Itoa)
		assert.Equal(t, []string{"1", "2", "3"}, strs.Values())
	})

	t.Run("reduce folds with explicit initial value", func(t *testing.T) {
		l := collection.NewList(1, 2, 3, 4)
		sum := collection.Reduce(l, 0, func(acc, n int) int { return acc + n })
		assert.Equal(t, 10, sum)

		empty := collection.NewList[int]()
		assert.Equal(t, 100, collection.Reduce(empty, 100, func(acc, n int) int { return acc + n }))
	})

	t.Run("first and last report absence on empty list", func(t *testing.T) {
		l := collection.NewList(7, 8, 9)

		first, ok := l.First().Get()
		require.True(t, ok)
		assert.Equal(t, 7, first)

		last, ok := l.Last().Get()
		require.True(t, ok)
		assert.Equal(t, 9, last)

		empty := collection.NewList[int]()
		assert.False(t, empty.First().IsPresent())
		assert.False(t, empty.Last().IsPresent())
	})

	t.Run("any all and count", func(t *testing.T) {
		l := collection.NewList(1, 2, 3, 4)

		assert.True(t, l.Any(isEven))
		assert.False(t, l.AllMatch(isEven))
		assert.Equal(t, 2, l.Count(isEven))

		empty := collection.NewList[int]()
		assert.False(t, empty.Any(isEven))
		assert.True(t, empty.AllMatch(isEven), "vacuous truth on empty list")
	})

	t.Run("distinct keeps first occurrences", func(t *testing.T) {
		l := collection.NewList(3, 1, 4, 1, 5, 3)
		assert.Equal(t, []int{3, 1, 4, 5}, collection.Distinct(l).Values())
	})

	t.Run("distinct by key", func(t *testing.T) {
		type user struct {
			ID   int
			Name string
		}
		l := collection.NewList(
			user{ID: 1, Name: "Alice"},
			user{ID: 2, Name: "Bob"},
			user{ID: 1, Name: "Alice Updated"},
		)
		result := collection.DistinctBy(l, func(u user) int { return u.ID }).Values()
		require.Len(t, result, 2)
		assert.Equal(t, "Alice", result[0].Name)
		assert.Equal(t, "Bob", result[1].Name)
	})

	t.Run("chunk shares package error contract", func(t *testing.T) {
		l := collection.NewList(1, 2, 3, 4, 5)

		chunks, err := l.Chunk(2)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, chunks)

		_, err = l.Chunk(0)
		assert.ErrorIs(t, err, collection.ErrInvalidChunkSize)
	})

	t.Run("each visits in order", func(t *testing.T) {
		var visited []string
		collection.NewList("a", "b", "c").Each(func(s string) {
			visited = append(visited, s)
		})
		assert.Equal(t, []string{"a", "b", "c"}, visited)
	})

	t.Run("operations do not mutate the source", func(t *testing.T) {
		src := []int{1, 2, 3}
		l := collection.NewList(src...)
		_ = l.Filter(isEven)
		_ = collection.Distinct(l)
		assert.Equal(t, []int{1, 2, 3}, l.Values())
		assert.Equal(t, []int{1, 2, 3}, src)
	})
}
