// Package collections provides chainable wrappers over a slice ([List]) and a
// map ([Dict]) whose higher-order operations accept functions in a loose,
// partial-application call form.
//
// # Overview
//
//	r := collections.New(1, 2, 3, 4, 5).
//	    Map(func(n int) int { return n * 2 }).
//	    Rem(func(n int) bool { return n < 5 }).
//	    Rem(func(a, b int) bool { return a == b }, 6)
//	r.ToSlice() // → [8 10]
//
// # Call forms
//
// Map, Keep, Rem, Some, Has, All, Find, Count, Empty, Do and Tee take a
// callable followed by fixed extra arguments, and bind them into a function
// of one element (List) or of a key and a value (Dict):
//
//	l.Keep(fn)                                  // fn(x)
//	l.Keep(fn, a, b)                            // fn(x, a, b)
//	l.Keep(slices.Contains[[]int], []int{2, 3}, collections.Placeholder)
//	                                            // slices.Contains([]int{2, 3}, x)
//	d.Keep(fn, a)                               // fn(k, v, a)
//	d.Keep(collections.Gt(1))                   // v > 1
//
// Callables are checked when the call is bound: argument count (variadic
// functions included), argument types, and the shape of the results. A
// callable may return a trailing error, which stops the operation and is
// returned as is. Plain typed functions such as func(T) bool skip reflection
// entirely.
//
// # Return discipline
//
//   - Transforms return a new wrapper: Map, Keep, Rem, Attr, Item, ItemPath,
//     Invoke, Slice, Clone/Copy.
//   - Mutators change the receiver and return it: Append, Extend, Insert,
//     Sort, Reverse, Assign, SetSlice on List; Update, Set, Delete, Clear on
//     Dict.
//   - Queries return a value and an error: Some, All, Find, Count, Empty and
//     List.Do.
//   - List.Tee and Dict.Do run a function for its result, keep the result in
//     LastValue and return the receiver.
//
// # Type-transforming operations
//
// Go methods cannot introduce type parameters, so [MapTo] and [Reduce] are
// package-level functions:
//
//	labels := collections.MapTo[string](collections.New(1, 2, 3), strconv.Itoa)
//
// # Errors
//
// A failed transform yields a wrapper carrying the error ([List.Err],
// [Dict.Err]); later transforms pass it along and queries return it. Errors
// wrap [ErrArgument] or [ErrLookup], or are the callable's own error.
//
// Wrappers are not safe for concurrent mutation.
package collections
