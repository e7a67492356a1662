package domain

// Optional holds a value that a source row may not have supplied.
// The zero Optional is absent, which is distinct from a present zero value
// such as "".
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns a present Optional holding v
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent Optional
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Present reports whether a value was supplied
func (o Optional[T]) Present() bool {
	return o.ok
}

// OrZero returns the value, or the zero value of T when absent
func (o Optional[T]) OrZero() T {
	return o.value
}

// Or returns the value, or fallback when absent
func (o Optional[T]) Or(fallback T) T {
	if !o.ok {
		return fallback
	}
	return o.value
}
