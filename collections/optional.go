package collections

import "fmt"

// Optional is the result of Find: either a matched value or nothing.
//
// A present zero value (0, "", nil) is distinct from an absent result:
//
//	opt, _ := collections.New(0, 1).Find(func(n int) bool { return n == 0 })
//	opt.IsPresent() // true
//	v, _ := opt.Get() // 0
type Optional[T any] struct {
	value T
	ok    bool
}

// Present wraps v as a found result.
func Present[T any](v T) Optional[T] { return Optional[T]{value: v, ok: true} }

// Absent returns the not-found result.
func Absent[T any]() Optional[T] { return Optional[T]{} }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }

// IsPresent reports whether a value was found.
func (o Optional[T]) IsPresent() bool { return o.ok }

// OrElse returns the value, or def when absent.
func (o Optional[T]) OrElse(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

// OrErr returns the value, or [ErrNotFound] when absent.
func (o Optional[T]) OrErr() (T, error) {
	if !o.ok {
		return o.value, ErrNotFound
	}
	return o.value, nil
}

// String returns "Present(v)" or "Absent".
func (o Optional[T]) String() string {
	if !o.ok {
		return "Absent"
	}
	return fmt.Sprintf("Present(%v)", o.value)
}
