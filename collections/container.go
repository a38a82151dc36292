package collections

// Container is the capability shared by [List] and [Dict]: length, the
// predicate queries, and the chain state (sticky error and last recorded
// value).
//
// The two wrappers bind functions of different arity (one element versus a
// key and a value), so the predicate arguments accepted by a Container depend
// on the concrete type behind it.
type Container interface {
	// Len returns the number of elements or entries.
	Len() int

	// Count returns Len, or with a function the number of matches.
	Count(args ...any) (int, error)

	// Empty reports whether there is nothing inside, or with a function
	// whether everything matches it.
	Empty(args ...any) (bool, error)

	// Some reports whether anything matches the bound predicate.
	Some(fn any, args ...any) (bool, error)

	// All reports whether everything matches the bound predicate.
	All(fn any, args ...any) (bool, error)

	// Err returns the error carried from a failed chain operation.
	Err() error

	// LastValue returns the result recorded by Tee (List) or Do (Dict).
	LastValue() any

	String() string
}

var (
	_ Container = (*List[any])(nil)
	_ Container = (*Dict[string, any])(nil)
)
