package arr

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element satisfying fn.
// ok is false when no element matches; err is the first error fn returned.
func First[T any](items []T, fn func(T) (bool, error)) (item T, ok bool, err error) {
	for _, item := range items {
		match, err := fn(item)
		if err != nil {
			var zero T
			return zero, false, err
		}
		if match {
			return item, true, nil
		}
	}
	var zero T
	return zero, false, nil
}

// Any reports whether at least one element satisfies fn.
// It stops at the first match.
func Any[T any](items []T, fn func(T) (bool, error)) (bool, error) {
	_, ok, err := First(items, fn)
	return ok, err
}

// Every reports whether all elements satisfy fn.
// It stops at the first element that does not; an empty slice yields true.
func Every[T any](items []T, fn func(T) (bool, error)) (bool, error) {
	for _, item := range items {
		match, err := fn(item)
		if err != nil {
			return false, err
		}
		if !match {
			return false, nil
		}
	}
	return true, nil
}

// CountBy returns the number of elements satisfying fn.
func CountBy[T any](items []T, fn func(T) (bool, error)) (int, error) {
	n := 0
	for _, item := range items {
		match, err := fn(item)
		if err != nil {
			return 0, err
		}
		if match {
			n++
		}
	}
	return n, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to each element and returns the results in order.
func Map[T, U any](items []T, fn func(T) (U, error)) ([]U, error) {
	out := make([]U, len(items))
	for i, item := range items {
		v, err := fn(item)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Filter returns the elements for which fn returns true, in their original
// order.
func Filter[T any](items []T, fn func(T) (bool, error)) ([]T, error) {
	out := make([]T, 0, len(items))
	for _, item := range items {
		match, err := fn(item)
		if err != nil {
			return nil, err
		}
		if match {
			out = append(out, item)
		}
	}
	return out, nil
}

// Reject returns the elements for which fn returns false.
// It is the complement of [Filter].
func Reject[T any](items []T, fn func(T) (bool, error)) ([]T, error) {
	return Filter(items, func(item T) (bool, error) {
		match, err := fn(item)
		return !match, err
	})
}

// Reduce folds items into a single value of type U, left to right.
func Reduce[T, U any](items []T, fn func(U, T) U, initial U) U {
	result := initial
	for _, item := range items {
		result = fn(result, item)
	}
	return result
}

// ─────────────────────────────────────────────────────────────────────────────
// Index arithmetic
// ─────────────────────────────────────────────────────────────────────────────

// Index normalises a possibly negative index against length n.
// ok is false when the index falls outside [0, n).
func Index(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}

// Bounds normalises the half-open range [low, high) against length n.
// Negative bounds count from the end; the result is clamped to [0, n] and
// high is never below low.
//
//	Bounds(5, -2, 10) // → 3, 5
//	Bounds(5, 4, 1)   // → 4, 4
func Bounds(n, low, high int) (int, int) {
	clamp := func(i int) int {
		if i < 0 {
			i += n
		}
		if i < 0 {
			return 0
		}
		if i > n {
			return n
		}
		return i
	}
	low, high = clamp(low), clamp(high)
	if high < low {
		high = low
	}
	return low, high
}

// Insert places value before position i and returns the grown slice.
// Positions past the end append; negative positions count from the end and
// clamp to the front.
func Insert[T any](items []T, i int, value T) []T {
	i, _ = Bounds(len(items), i, i)
	var zero T
	items = append(items, zero)
	copy(items[i+1:], items[i:])
	items[i] = value
	return items
}

// Splice replaces the range [low, high) of items with repl and returns the
// resulting slice. The range is normalised with [Bounds].
func Splice[T any](items []T, low, high int, repl []T) []T {
	low, high = Bounds(len(items), low, high)
	out := make([]T, 0, len(items)-(high-low)+len(repl))
	out = append(out, items[:low]...)
	out = append(out, repl...)
	return append(out, items[high:]...)
}
