package validate

// Numeric is the constraint shared by the numeric validators.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// RangeOption configures an InRange check.
type RangeOption[T Numeric] func(*rangeConfig[T])

type rangeConfig[T Numeric] struct {
	min       *T
	max       *T
	exclusive bool
}

// Min sets the lower bound. Without it the range is unbounded below.
func Min[T Numeric](min T) RangeOption[T] {
	return func(c *rangeConfig[T]) {
		c.min = &min
	}
}

// Max sets the upper bound. Without it the range is unbounded above.
func Max[T Numeric](max T) RangeOption[T] {
	return func(c *rangeConfig[T]) {
		c.max = &max
	}
}

// Exclusive switches the bounds from inclusive (<=, >=) to strict (<, >).
func Exclusive[T Numeric]() RangeOption[T] {
	return func(c *rangeConfig[T]) {
		c.exclusive = true
	}
}

// InRange reports whether v falls within the configured bounds.
// Bounds are inclusive by default; either bound may be omitted.
func InRange[T Numeric](v T, opts ...RangeOption[T]) bool {
	cfg := &rangeConfig[T]{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.min != nil {
		if cfg.exclusive {
			if v <= *cfg.min {
				return false
			}
		} else if v < *cfg.min {
			return false
		}
	}

	if cfg.max != nil {
		if cfg.exclusive {
			if v >= *cfg.max {
				return false
			}
		} else if v > *cfg.max {
			return false
		}
	}

	return true
}
