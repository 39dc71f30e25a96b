package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/utilkit/pkg/validate"
)

func TestInRange(t *testing.T) {
	t.Run("inclusive bounds", func(t *testing.T) {
		assert.True(t, validate.InRange(5, validate.Min(0), validate.Max(10)))
		assert.True(t, validate.InRange(0, validate.Min(0), validate.Max(10)))
		assert.True(t, validate.InRange(10, validate.Min(0), validate.Max(10)))
		assert.False(t, validate.InRange(-1, validate.Min(0), validate.Max(10)))
		assert.False(t, validate.InRange(11, validate.Min(0), validate.Max(10)))
	})

	t.Run("exclusive bounds", func(t *testing.T) {
		assert.True(t, validate.InRange(5, validate.Min(0), validate.Max(10), validate.Exclusive[int]()))
		assert.False(t, validate.InRange(0, validate.Min(0), validate.Max(10), validate.Exclusive[int]()))
		assert.False(t, validate.InRange(10, validate.Min(0), validate.Max(10), validate.Exclusive[int]()))
	})

	t.Run("open-ended ranges", func(t *testing.T) {
		assert.True(t, validate.InRange(1000000, validate.Min(0)))
		assert.False(t, validate.InRange(-5, validate.Min(0)))
		assert.True(t, validate.InRange(-1000000, validate.Max(0)))
		assert.True(t, validate.InRange(42))
	})

	t.Run("floats", func(t *testing.T) {
		assert.True(t, validate.InRange(3.14, validate.Min(3.0), validate.Max(4.0)))
		assert.False(t, validate.InRange(2.99, validate.Min(3.0), validate.Max(4.0)))
	})
}
