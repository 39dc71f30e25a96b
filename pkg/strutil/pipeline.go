package strutil

// Apply runs value through the given transformations in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value
	for _, transform := range transforms {
		result = transform(result)
	}
	return result
}

// Compose builds a reusable transformation pipeline from the given
// functions. Preferred over repeated Apply calls when the same chain is
// used in multiple places.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
