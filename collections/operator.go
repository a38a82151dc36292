package collections

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// Operator is a comparison shortcut accepted in the callable position of Dict
// predicates. It compares each value (never the key) against its operand:
//
//	collections.NewDict(map[string]int{"a": 1, "b": 2, "c": 3}).Keep(collections.Eq(2))
//	// → {"b": 2}
//
// The name is resolved when the predicate is bound; an unknown name fails
// with [ErrArgument].
type Operator struct {
	name    string
	operand any
}

// Op builds an Operator by name. Supported names: "eq", "ne", "lt", "le",
// "gt", "ge" and "contains".
func Op(name string, operand any) Operator { return Operator{name: name, operand: operand} }

// Eq matches values equal to operand.
func Eq(operand any) Operator { return Op("eq", operand) }

// Ne matches values not equal to operand.
func Ne(operand any) Operator { return Op("ne", operand) }

// Lt matches values ordered before operand.
func Lt(operand any) Operator { return Op("lt", operand) }

// Le matches values ordered before or equal to operand.
func Le(operand any) Operator { return Op("le", operand) }

// Gt matches values ordered after operand.
func Gt(operand any) Operator { return Op("gt", operand) }

// Ge matches values ordered after or equal to operand.
func Ge(operand any) Operator { return Op("ge", operand) }

// Contains matches values that contain operand: a substring of a string, an
// element of a slice or array, or a key of a map.
func Contains(operand any) Operator { return Op("contains", operand) }

// Name returns the operator name.
func (o Operator) Name() string { return o.name }

// Operand returns the value compared against.
func (o Operator) Operand() any { return o.operand }

// String returns "name(operand)".
func (o Operator) String() string { return fmt.Sprintf("%s(%v)", o.name, o.operand) }

// Apply evaluates the operator against v.
func (o Operator) Apply(v any) (bool, error) {
	fn, err := o.resolve()
	if err != nil {
		return false, err
	}
	return fn(v, o.operand)
}

func (o Operator) resolve() (binaryFunc, error) {
	fn, ok := operators[o.name]
	if !ok {
		return nil, errors.Wrapf(ErrArgument, "unknown operator %q", o.name)
	}
	return fn, nil
}

type binaryFunc func(a, b any) (bool, error)

var operators = map[string]binaryFunc{
	"eq":       func(a, b any) (bool, error) { return equal(a, b), nil },
	"ne":       func(a, b any) (bool, error) { return !equal(a, b), nil },
	"lt":       ordered(func(c int) bool { return c < 0 }),
	"le":       ordered(func(c int) bool { return c <= 0 }),
	"gt":       ordered(func(c int) bool { return c > 0 }),
	"ge":       ordered(func(c int) bool { return c >= 0 }),
	"contains": contains,
}

func ordered(accept func(int) bool) binaryFunc {
	return func(a, b any) (bool, error) {
		c, ok := compare(a, b)
		if !ok {
			return false, errors.Wrapf(ErrArgument, "%T and %T are not ordered", a, b)
		}
		if isNaN(a) || isNaN(b) {
			return false, nil
		}
		return accept(c), nil
	}
}

// compare orders a against b. Numbers compare by value across Go numeric
// kinds; strings compare lexically. ok is false for any other pair.
func compare(a, b any) (int, bool) {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if !av.IsValid() || !bv.IsValid() {
		return 0, false
	}
	switch {
	case av.CanInt() && bv.CanInt():
		return cmp.Compare(av.Int(), bv.Int()), true
	case av.CanUint() && bv.CanUint():
		return cmp.Compare(av.Uint(), bv.Uint()), true
	case av.CanInt() && bv.CanUint():
		if av.Int() < 0 {
			return -1, true
		}
		return cmp.Compare(uint64(av.Int()), bv.Uint()), true
	case av.CanUint() && bv.CanInt():
		if bv.Int() < 0 {
			return 1, true
		}
		return cmp.Compare(av.Uint(), uint64(bv.Int())), true
	case isNumber(av) && isNumber(bv):
		return cmp.Compare(toFloat(av), toFloat(bv)), true
	case av.Kind() == reflect.String && bv.Kind() == reflect.String:
		return strings.Compare(av.String(), bv.String()), true
	}
	return 0, false
}

func isNumber(v reflect.Value) bool { return v.CanInt() || v.CanUint() || v.CanFloat() }

func toFloat(v reflect.Value) float64 {
	switch {
	case v.CanInt():
		return float64(v.Int())
	case v.CanUint():
		return float64(v.Uint())
	}
	return v.Float()
}

// isNaN reports whether v is a floating-point NaN.
func isNaN(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.IsValid() && rv.CanFloat() && math.IsNaN(rv.Float())
}

// equal reports whether a and b are equal, comparing numbers by value and
// everything else structurally. NaN equals nothing, itself included.
func equal(a, b any) bool {
	if isNaN(a) || isNaN(b) {
		return false
	}
	if c, ok := compare(a, b); ok {
		return c == 0
	}
	return reflect.DeepEqual(a, b)
}

func contains(container, x any) (bool, error) {
	cv := reflect.ValueOf(container)
	switch cv.Kind() {
	case reflect.String:
		s, ok := x.(string)
		if !ok {
			return false, errors.Wrapf(ErrArgument, "cannot look for %T in a string", x)
		}
		return strings.Contains(cv.String(), s), nil
	case reflect.Slice, reflect.Array:
		for i := 0; i < cv.Len(); i++ {
			if equal(cv.Index(i).Interface(), x) {
				return true, nil
			}
		}
		return false, nil
	case reflect.Map:
		iter := cv.MapRange()
		for iter.Next() {
			if equal(iter.Key().Interface(), x) {
				return true, nil
			}
		}
		return false, nil
	}
	return false, errors.Wrapf(ErrArgument, "%T is not a container", container)
}
