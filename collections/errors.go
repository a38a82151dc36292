package collections

import "github.com/pkg/errors"

// Sentinel errors returned by List and Dict operations.
//
// Returned errors wrap one of these with detail; compare with [errors.Is]:
//
//	if _, err := l.Some(strings.HasPrefix); errors.Is(err, collections.ErrArgument) {
//	    // the call site did not describe a usable function
//	}
var (
	// ErrArgument is returned when the arguments of a call cannot be bound
	// into a function of the required shape: no callable, a wrong number or
	// type of arguments, more than one Placeholder, or an unknown operator.
	ErrArgument = errors.New("collections: invalid arguments")

	// ErrLookup is returned by Attr, Item, ItemPath and Invoke when an element
	// has no such field, key or method.
	ErrLookup = errors.New("collections: lookup failed")

	// ErrNotFound is returned by [Optional.OrErr] when Find matched nothing.
	ErrNotFound = errors.New("collections: no element matches")
)
