package collections

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"

	"github.com/hasbyte1/go-fluent/arr"
)

// List is a chainable wrapper around a slice of T.
//
// Operations fall into three groups:
//
//   - Transforms (Map, Keep, Rem, Attr, Item, ItemPath, Invoke, Slice, Clone)
//     return a new List and never touch the receiver.
//   - Mutators (Append, Extend, Insert, Sort, Reverse, Assign, SetSlice)
//     change the receiver in place and return it, so the chain continues.
//     They leave a List that carries an error untouched.
//   - Queries (Some, Has, All, Find, Count, Empty, Do) return a plain value.
//
// Every operation that takes a function accepts the binder call form
// described on [Placeholder]: a callable followed by extra arguments.
//
//	evens := collections.New(1, 2, 3, 4, 5, 6).
//	    Map(func(n int) int { return n * 10 }).
//	    Keep(func(n, m int) bool { return n%m == 0 }, 20).
//	    ToSlice() // → [20 40 60]
//
// # Errors
//
// A transform that fails (bad arguments, a lookup miss, an error returned by
// the callable) yields a List carrying that error. Later transforms pass it
// along untouched, queries return it, and [List.Err] reports it.
//
// A List is not safe for concurrent mutation.
type List[T any] struct {
	items []T
	last  any
	err   error
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a List from a variadic list of items (copied).
func New[T any](items ...T) *List[T] {
	return From(items)
}

// From creates a List from a slice (the slice is copied).
func From[T any](items []T) *List[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &List[T]{items: dst}
}

// Empty creates an empty List of type T.
func Empty[T any]() *List[T] {
	return &List[T]{items: []T{}}
}

func failed[T any](err error) *List[T] {
	return &List[T]{items: []T{}, err: err}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of items.
func (l *List[T]) Len() int { return len(l.items) }

// At returns the item at index i together with a presence flag.
// Negative indexes count from the end.
func (l *List[T]) At(i int) (T, bool) {
	i, ok := arr.Index(len(l.items), i)
	if !ok {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// Slice returns the items in [low, high) as a new List.
// Negative bounds count from the end and out-of-range bounds are clamped.
func (l *List[T]) Slice(low, high int) *List[T] {
	if l.err != nil {
		return failed[T](l.err)
	}
	low, high = arr.Bounds(len(l.items), low, high)
	return From(l.items[low:high])
}

// ToSlice returns a copy of the underlying slice.
func (l *List[T]) ToSlice() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Iter returns an iterator over index/item pairs.
func (l *List[T]) Iter() iter.Seq2[int, T] {
	return slices.All(l.items)
}

// Err returns the error carried by the List, if any.
func (l *List[T]) Err() error { return l.err }

// LastValue returns the result recorded by the most recent [List.Tee].
func (l *List[T]) LastValue() any { return l.last }

// ToJSON serialises the items to a JSON array.
func (l *List[T]) ToJSON() ([]byte, error) {
	return json.Marshal(l.items)
}

// MarshalJSON implements [json.Marshaler].
func (l *List[T]) MarshalJSON() ([]byte, error) { return l.ToJSON() }

// String returns a JSON representation of the items.
// It implements [fmt.Stringer].
func (l *List[T]) String() string {
	b, err := l.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", l.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transforms
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new List with every item replaced by the bound function's
// result, which must be assignable to T. Use [MapTo] to change the element
// type.
func (l *List[T]) Map(fn any, args ...any) *List[T] {
	return MapTo[T](l, fn, args...)
}

// Keep returns a new List with the items for which the bound predicate
// holds, in their original order.
func (l *List[T]) Keep(fn any, args ...any) *List[T] {
	return l.filter(arr.Filter[T], fn, args)
}

// Rem returns a new List without the items for which the bound predicate
// holds. Keep and Rem with the same predicate partition the List.
func (l *List[T]) Rem(fn any, args ...any) *List[T] {
	return l.filter(arr.Reject[T], fn, args)
}

func (l *List[T]) filter(apply func([]T, func(T) (bool, error)) ([]T, error), fn any, args []any) *List[T] {
	if l.err != nil {
		return failed[T](l.err)
	}
	pred, err := predicate1[T](fn, args)
	if err != nil {
		return failed[T](err)
	}
	out, err := apply(l.items, pred)
	if err != nil {
		return failed[T](err)
	}
	return &List[T]{items: out}
}

// Attr returns a new List holding the named attribute of every item: the
// result of [AttrGetter.GetAttr], an exported struct field, or a niladic
// getter method. A miss fails with [ErrLookup].
func (l *List[T]) Attr(name string) *List[any] {
	return l.project(func(x T) (any, error) { return attrOf(x, name) })
}

// Item returns a new List holding item[key] for every item: a map key, a
// slice/array/string index (negative counts from the end), or the result of
// [ItemGetter.GetItem]. A miss fails with [ErrLookup].
func (l *List[T]) Item(key any) *List[any] {
	return l.project(func(x T) (any, error) { return itemOf(x, key) })
}

// ItemPath returns a new List holding the value at the dot-notation path of
// every item, which must be a map[string]any.
//
//	collections.New(map[string]any{"user": map[string]any{"name": "Ann"}}).ItemPath("user.name")
//	// → ["Ann"]
func (l *List[T]) ItemPath(path string) *List[any] {
	return l.project(func(x T) (any, error) { return itemPathOf(x, path) })
}

// Invoke returns a new List holding the result of calling the named method,
// with args, on every item. A missing method fails with [ErrLookup].
func (l *List[T]) Invoke(name string, args ...any) *List[any] {
	return l.project(func(x T) (any, error) { return invokeOn(x, name, args) })
}

func (l *List[T]) project(fn func(T) (any, error)) *List[any] {
	if l.err != nil {
		return failed[any](l.err)
	}
	out, err := arr.Map(l.items, fn)
	if err != nil {
		return failed[any](err)
	}
	return &List[any]{items: out}
}

// Clone returns a shallow copy of the List.
func (l *List[T]) Clone() *List[T] {
	c := From(l.items)
	c.err = l.err
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Queries
// ─────────────────────────────────────────────────────────────────────────────

// Some reports whether at least one item satisfies the bound predicate.
// It stops at the first match and is false for an empty List.
func (l *List[T]) Some(fn any, args ...any) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	pred, err := predicate1[T](fn, args)
	if err != nil {
		return false, err
	}
	return arr.Any(l.items, pred)
}

// Has is an alias for [List.Some].
func (l *List[T]) Has(fn any, args ...any) (bool, error) { return l.Some(fn, args...) }

// All reports whether every item satisfies the bound predicate.
// It stops at the first failure and is true for an empty List.
func (l *List[T]) All(fn any, args ...any) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	pred, err := predicate1[T](fn, args)
	if err != nil {
		return false, err
	}
	return arr.Every(l.items, pred)
}

// Find returns the first item satisfying the bound predicate, or an absent
// [Optional] when none does.
func (l *List[T]) Find(fn any, args ...any) (Optional[T], error) {
	if l.err != nil {
		return Absent[T](), l.err
	}
	pred, err := predicate1[T](fn, args)
	if err != nil {
		return Absent[T](), err
	}
	item, ok, err := arr.First(l.items, pred)
	if err != nil || !ok {
		return Absent[T](), err
	}
	return Present(item), nil
}

// Count returns the number of items. Given a function, it returns the number
// of items satisfying it instead, which equals Keep(...).Len().
func (l *List[T]) Count(args ...any) (int, error) {
	if l.err != nil {
		return 0, l.err
	}
	if len(args) == 0 {
		return len(l.items), nil
	}
	pred, err := predicate1[T](args[0], args[1:])
	if err != nil {
		return 0, err
	}
	return arr.CountBy(l.items, pred)
}

// Empty reports whether the List has no items. Given a function, it reports
// whether every item satisfies it, treating matching items as "empty" ones:
//
//	collections.New[any](nil, 0, 0).Empty(func(x any) bool { return x == nil || x == 0 }) // true
func (l *List[T]) Empty(args ...any) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	if len(args) == 0 {
		return len(l.items) == 0, nil
	}
	pred, err := predicate1[T](args[0], args[1:])
	if err != nil {
		return false, err
	}
	return arr.Every(l.items, pred)
}

// Do calls the bound function with the List itself as the element and
// returns its result directly:
//
//	n, _ := l.Do(func(l *collections.List[int]) int { return l.Len() })
func (l *List[T]) Do(fn any, args ...any) (any, error) {
	if l.err != nil {
		return nil, l.err
	}
	act, err := action1[*List[T]](fn, args)
	if err != nil {
		return nil, err
	}
	return act(l)
}

// Tee calls the bound function like [List.Do], records its result in
// [List.LastValue] and returns the receiver. An error is recorded on the
// receiver.
func (l *List[T]) Tee(fn any, args ...any) *List[T] {
	if l.err != nil {
		return l
	}
	l.last, l.err = l.Do(fn, args...)
	return l
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutators
// ─────────────────────────────────────────────────────────────────────────────

// Append adds item to the end and returns the receiver.
func (l *List[T]) Append(item T) *List[T] {
	if l.err != nil {
		return l
	}
	l.items = append(l.items, item)
	return l
}

// Extend adds items to the end and returns the receiver.
func (l *List[T]) Extend(items []T) *List[T] {
	if l.err != nil {
		return l
	}
	l.items = append(l.items, items...)
	return l
}

// Insert places item before index i and returns the receiver. Indexes past
// the end append; negative indexes count from the end.
func (l *List[T]) Insert(i int, item T) *List[T] {
	if l.err != nil {
		return l
	}
	l.items = arr.Insert(l.items, i, item)
	return l
}

// Sort sorts the items in place with cmp, keeping equal items in their
// original order, and returns the receiver.
//
//	l.Sort(cmp.Compare[int])
func (l *List[T]) Sort(cmp func(a, b T) int) *List[T] {
	if l.err != nil {
		return l
	}
	slices.SortStableFunc(l.items, cmp)
	return l
}

// Reverse reverses the items in place and returns the receiver.
func (l *List[T]) Reverse() *List[T] {
	if l.err != nil {
		return l
	}
	slices.Reverse(l.items)
	return l
}

// Assign replaces the contents with a copy of items and returns the receiver.
func (l *List[T]) Assign(items []T) *List[T] {
	if l.err != nil {
		return l
	}
	l.items = From(items).items
	return l
}

// SetSlice replaces the range [low, high) with items and returns the
// receiver. Bounds follow [List.Slice].
func (l *List[T]) SetSlice(low, high int, items []T) *List[T] {
	if l.err != nil {
		return l
	}
	l.items = arr.Splice(l.items, low, high, items)
	return l
}
