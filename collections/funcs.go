package collections

import "github.com/hasbyte1/go-fluent/arr"

// This file contains package-level generic functions for operations that
// change the element type of a List. Go methods cannot introduce their own
// type parameters, so these are stand-alone functions that compose with
// method chains:
//
//	labels := collections.MapTo[string](
//	    collections.New(1, 2, 3).Keep(func(n int) bool { return n > 1 }),
//	    strconv.Itoa,
//	)

// MapTo applies the bound function to every item and returns a new List[U].
// It accepts the same call forms as [List.Map]:
//
//	collections.MapTo[string](collections.New(2, 3), strings.Repeat, "ab", collections.Placeholder)
//	// → ["abab", "ababab"]
func MapTo[U, T any](l *List[T], fn any, args ...any) *List[U] {
	if l.err != nil {
		return failed[U](l.err)
	}
	f, err := transform1[T, U](fn, args)
	if err != nil {
		return failed[U](err)
	}
	out, err := arr.Map(l.items, f)
	if err != nil {
		return failed[U](err)
	}
	return &List[U]{items: out}
}

// Reduce folds the items of l into a single value, left to right.
// It returns initial together with the List's error when l carries one.
//
//	sum, _ := collections.Reduce(collections.New(1, 2, 3, 4),
//	    func(acc, n int) int { return acc + n }, 0)
func Reduce[T, U any](l *List[T], fn func(U, T) U, initial U) (U, error) {
	if l.err != nil {
		return initial, l.err
	}
	return arr.Reduce(l.items, fn, initial), nil
}
