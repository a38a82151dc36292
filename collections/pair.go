package collections

import "fmt"

// Pair holds two values of possibly different types.
//
// [Dict.Items] yields one Pair per entry, and a [Dict.Map] transform may
// return a Pair[K, V] instead of the two values (K, V).
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf builds a Pair from its two halves.
func PairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Values returns both halves, in order.
func (p Pair[A, B]) Values() (A, B) { return p.First, p.Second }

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
