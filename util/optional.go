package util

// Optional holds a value which may not be present.
// The zero value is an absent Optional.
type Optional[T any] struct {
	present bool
	value   T
}

func NewOptional[T any](v T) Optional[T] {
	return Optional[T]{present: true, value: v}
}

func (o *Optional[T]) Present() bool {
	return o.present
}

func (o *Optional[T]) Set(v T) {
	o.present = true
	o.value = v
}

func (o *Optional[T]) MustGet() T {
	if !o.present {
		panic("Optional.MustGet: value not present")
	}
	return o.value
}

// GetOr returns the held value, or dflt if absent.
func (o *Optional[T]) GetOr(dflt T) T {
	if !o.present {
		return dflt
	}
	return o.value
}
