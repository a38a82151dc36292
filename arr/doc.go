// Package arr provides standalone, generic helper functions for Go slices and
// dot-notation lookups into nested map[string]any values.
//
// # Slice helpers
//
// The helpers operate on plain []T values and take error-aware callbacks, so a
// failing predicate stops the walk and its error is returned unmodified:
//
//	evens, err := arr.Filter([]int{1, 2, 3, 4}, func(n int) (bool, error) { return n%2 == 0, nil })
//	first, ok, err := arr.First(users, isAdmin)
//
// Index helpers ([Bounds], [Insert], [Splice]) follow the usual clamping rules
// of half-open slice ranges: negative indexes count from the end and
// out-of-range bounds are clamped instead of panicking.
//
// # Dot-notation map access
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//	arr.Get(m, "user.address.city") // → "London"
//	arr.Has(m, "user.name")         // → false
package arr
