package collections

import (
	"reflect"

	"github.com/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Argument binding
//
// Every List and Dict operation that takes a function accepts the same call
// form: a callable followed by fixed extra arguments. The binder turns that
// form into a function of the arity the wrapper needs.
//
// List (one element x):
//
//	l.Keep(fn)                       → fn(x)
//	l.Keep(fn, a, b)                 → fn(x, a, b)
//	l.Keep(fn, a, Placeholder, b)    → fn(a, x, b)
//
// Dict (key k, value v):
//
//	d.Keep(fn, a, b)                 → fn(k, v, a, b)
//	d.Keep(Eq(3))                    → v == 3
//
// Dict bindings never substitute a Placeholder; one appearing among the extra
// arguments is passed to fn as an ordinary value.
//
// Go has no keyword arguments. Options a callee would take by keyword are
// passed positionally, usually as a trailing options struct.
// ─────────────────────────────────────────────────────────────────────────────

type placeholder struct{ _ byte }

func (*placeholder) String() string { return "collections.Placeholder" }

// Placeholder marks the argument position that receives the element under
// evaluation. At most one Placeholder may appear in a List call; the element
// is then not prepended.
//
//	collections.MapTo[string](collections.New(2, 3), strings.Repeat, "ab", collections.Placeholder)
//	// → ["abab", "ababab"]
var Placeholder = &placeholder{}

func isPlaceholder(a any) bool {
	p, ok := a.(*placeholder)
	return ok && p == Placeholder
}

var (
	errorType = reflect.TypeFor[error]()
	boolType  = reflect.TypeFor[bool]()
)

// call is a reflective invocation plan: fn applied to a fixed argument
// template whose hole positions are filled on every invocation.
type call struct {
	fn    reflect.Value
	args  []reflect.Value
	in    []reflect.Type
	holes []int
	outs  []reflect.Type
	errs  bool
}

func newCall(fn any, tmpl []any, holes []int, holeTypes []reflect.Type) (*call, error) {
	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, errors.Wrapf(ErrArgument, "%T is not a function", fn)
	}
	ft := fv.Type()

	n := len(tmpl)
	if ft.IsVariadic() {
		if n < ft.NumIn()-1 {
			return nil, errors.Wrapf(ErrArgument, "%s takes at least %d arguments, got %d", ft, ft.NumIn()-1, n)
		}
	} else if n != ft.NumIn() {
		return nil, errors.Wrapf(ErrArgument, "%s takes %d arguments, got %d", ft, ft.NumIn(), n)
	}

	c := &call{
		fn:    fv,
		args:  make([]reflect.Value, n),
		in:    make([]reflect.Type, n),
		holes: holes,
	}
	hole := make(map[int]reflect.Type, len(holes))
	for j, pos := range holes {
		hole[pos] = holeTypes[j]
	}
	for i, a := range tmpl {
		pt := paramType(ft, i)
		c.in[i] = pt
		if ht, ok := hole[i]; ok {
			// Interface-typed elements are checked per call against their
			// dynamic type.
			if !ht.AssignableTo(pt) && ht.Kind() != reflect.Interface {
				return nil, errors.Wrapf(ErrArgument, "argument %d of %s: element type %s is not assignable to %s", i, ft, ht, pt)
			}
			continue
		}
		v, err := argValue(a, pt)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d of %s", i, ft)
		}
		c.args[i] = v
	}

	for i := 0; i < ft.NumOut(); i++ {
		c.outs = append(c.outs, ft.Out(i))
	}
	if k := len(c.outs); k > 0 && c.outs[k-1] == errorType {
		c.outs, c.errs = c.outs[:k-1], true
	}
	for _, out := range c.outs {
		if out == errorType {
			return nil, errors.Wrapf(ErrArgument, "%s: error must be the last result", ft)
		}
	}
	return c, nil
}

func paramType(ft reflect.Type, i int) reflect.Type {
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		return ft.In(ft.NumIn() - 1).Elem()
	}
	return ft.In(i)
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	}
	return false
}

// argValue converts a into a value that can be passed as a parameter of type pt.
func argValue(a any, pt reflect.Type) (reflect.Value, error) {
	if a == nil {
		if !nillable(pt) {
			return reflect.Value{}, errors.Wrapf(ErrArgument, "nil is not assignable to %s", pt)
		}
		return reflect.Zero(pt), nil
	}
	v := reflect.ValueOf(a)
	if !v.Type().AssignableTo(pt) {
		return reflect.Value{}, errors.Wrapf(ErrArgument, "%s is not assignable to %s", v.Type(), pt)
	}
	return v, nil
}

// expect checks the shape of the non-error results: exactly len(want) of
// them, each assignable to want[i] or of interface type.
func (c *call) expect(want ...reflect.Type) error {
	if len(c.outs) != len(want) {
		return errors.Wrapf(ErrArgument, "%s returns %d values, want %d", c.fn.Type(), len(c.outs), len(want))
	}
	for i, out := range c.outs {
		if !out.AssignableTo(want[i]) && out.Kind() != reflect.Interface {
			return errors.Wrapf(ErrArgument, "%s: result %d is %s, want %s", c.fn.Type(), i, out, want[i])
		}
	}
	return nil
}

// invoke calls fn with elems placed into the hole positions. A non-nil error
// result of fn is returned unmodified.
func (c *call) invoke(elems ...any) ([]reflect.Value, error) {
	args := make([]reflect.Value, len(c.args))
	copy(args, c.args)
	for j, pos := range c.holes {
		v, err := argValue(elems[j], c.in[pos])
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d of %s", pos, c.fn.Type())
		}
		args[pos] = v
	}
	out := c.fn.Call(args)
	if c.errs {
		last := out[len(out)-1]
		out = out[:len(out)-1]
		if !last.IsNil() {
			return out, last.Interface().(error)
		}
	}
	return out, nil
}

// as stores v into a U. Interface-typed results are unwrapped to their
// dynamic value first; a nil interface yields the zero U.
func as[U any](v reflect.Value) (U, error) {
	var u U
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if !v.IsValid() {
		return u, nil
	}
	dst := reflect.ValueOf(&u).Elem()
	if !v.Type().AssignableTo(dst.Type()) {
		return u, errors.Wrapf(ErrArgument, "result %s is not assignable to %s", v.Type(), dst.Type())
	}
	dst.Set(v)
	return u, nil
}

// first returns the first result as an any, or nil when there is none.
func first(out []reflect.Value) any {
	if len(out) == 0 {
		return nil
	}
	return out[0].Interface()
}

// ─────────────────────────────────────────────────────────────────────────────
// One-argument bindings
// ─────────────────────────────────────────────────────────────────────────────

// plan1 lays out fn/args for a single element of type T: prepended, or at the
// Placeholder position when there is one.
func plan1[T any](fn any, args []any) (*call, error) {
	pos := -1
	for i, a := range args {
		if !isPlaceholder(a) {
			continue
		}
		if pos >= 0 {
			return nil, errors.Wrapf(ErrArgument, "Placeholder given at positions %d and %d; at most one is supported", pos, i)
		}
		pos = i
	}

	if pos < 0 {
		return prepend1[T](fn, args)
	}
	tmpl := make([]any, len(args))
	copy(tmpl, args)
	tmpl[pos] = nil
	return newCall(fn, tmpl, []int{pos}, []reflect.Type{reflect.TypeFor[T]()})
}

// prepend1 lays out fn/args with the element always in the first slot. A
// Placeholder among args is passed as an ordinary value.
func prepend1[T any](fn any, args []any) (*call, error) {
	tmpl := make([]any, 1, len(args)+1)
	tmpl = append(tmpl, args...)
	return newCall(fn, tmpl, []int{0}, []reflect.Type{reflect.TypeFor[T]()})
}

// predicate1 binds fn/args into a one-argument predicate.
func predicate1[T any](fn any, args []any) (func(T) (bool, error), error) {
	if len(args) == 0 {
		switch f := fn.(type) {
		case func(T) bool:
			return func(x T) (bool, error) { return f(x), nil }, nil
		case func(T) (bool, error):
			return f, nil
		}
	}
	c, err := plan1[T](fn, args)
	if err != nil {
		return nil, err
	}
	if err := c.expect(boolType); err != nil {
		return nil, err
	}
	return func(x T) (bool, error) {
		out, err := c.invoke(x)
		if err != nil {
			return false, err
		}
		return as[bool](out[0])
	}, nil
}

// transform1 binds fn/args into a one-argument function producing a U.
func transform1[T, U any](fn any, args []any) (func(T) (U, error), error) {
	if len(args) == 0 {
		switch f := fn.(type) {
		case func(T) U:
			return func(x T) (U, error) { return f(x), nil }, nil
		case func(T) (U, error):
			return f, nil
		}
	}
	c, err := plan1[T](fn, args)
	if err != nil {
		return nil, err
	}
	if err := c.expect(reflect.TypeFor[U]()); err != nil {
		return nil, err
	}
	return func(x T) (U, error) {
		out, err := c.invoke(x)
		if err != nil {
			var zero U
			return zero, err
		}
		return as[U](out[0])
	}, nil
}

// action1 binds fn/args into a one-argument function whose single result,
// if any, is returned as an any. Used by List.Do and List.Tee.
func action1[T any](fn any, args []any) (func(T) (any, error), error) {
	return action[T](plan1[T], fn, args)
}

// literalAction1 is action1 without Placeholder substitution: the element is
// always the first argument. Used by Dict.Do.
func literalAction1[T any](fn any, args []any) (func(T) (any, error), error) {
	return action[T](prepend1[T], fn, args)
}

func action[T any](plan func(any, []any) (*call, error), fn any, args []any) (func(T) (any, error), error) {
	c, err := plan(fn, args)
	if err != nil {
		return nil, err
	}
	if len(c.outs) > 1 {
		return nil, errors.Wrapf(ErrArgument, "%s returns %d values, want at most 1", c.fn.Type(), len(c.outs))
	}
	return func(x T) (any, error) {
		out, err := c.invoke(x)
		return first(out), err
	}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Two-argument bindings
// ─────────────────────────────────────────────────────────────────────────────

// plan2 lays out fn/args for a key/value pair, always prepended.
func plan2[K comparable, V any](fn any, args []any) (*call, error) {
	if _, ok := fn.(Operator); ok {
		return nil, errors.Wrap(ErrArgument, "operator shortcuts are only valid where a predicate is expected")
	}
	tmpl := make([]any, 2, len(args)+2)
	tmpl = append(tmpl, args...)
	return newCall(fn, tmpl, []int{0, 1}, []reflect.Type{reflect.TypeFor[K](), reflect.TypeFor[V]()})
}

// predicate2 binds fn/args into a key/value predicate. An [Operator] in the
// callable position compares the value against its operand and ignores the key.
func predicate2[K comparable, V any](fn any, args []any) (func(K, V) (bool, error), error) {
	if op, ok := fn.(Operator); ok {
		if len(args) > 0 {
			for _, a := range args {
				if _, dup := a.(Operator); dup {
					return nil, errors.Wrap(ErrArgument, "only one operator shortcut is supported")
				}
			}
			return nil, errors.Wrapf(ErrArgument, "operator shortcut %q takes no extra arguments", op.name)
		}
		cmp, err := op.resolve()
		if err != nil {
			return nil, err
		}
		return func(_ K, v V) (bool, error) { return cmp(v, op.operand) }, nil
	}
	if len(args) == 0 {
		switch f := fn.(type) {
		case func(K, V) bool:
			return func(k K, v V) (bool, error) { return f(k, v), nil }, nil
		case func(K, V) (bool, error):
			return f, nil
		}
	}
	c, err := plan2[K, V](fn, args)
	if err != nil {
		return nil, err
	}
	if err := c.expect(boolType); err != nil {
		return nil, err
	}
	return func(k K, v V) (bool, error) {
		out, err := c.invoke(k, v)
		if err != nil {
			return false, err
		}
		return as[bool](out[0])
	}, nil
}

// transform2 binds fn/args into a key/value transform. fn may return
// (K, V) or a Pair[K, V], optionally followed by an error.
func transform2[K comparable, V any](fn any, args []any) (func(K, V) (K, V, error), error) {
	if len(args) == 0 {
		switch f := fn.(type) {
		case func(K, V) (K, V):
			return func(k K, v V) (K, V, error) {
				nk, nv := f(k, v)
				return nk, nv, nil
			}, nil
		case func(K, V) Pair[K, V]:
			return func(k K, v V) (K, V, error) {
				p := f(k, v)
				return p.First, p.Second, nil
			}, nil
		}
	}
	c, err := plan2[K, V](fn, args)
	if err != nil {
		return nil, err
	}
	if len(c.outs) == 1 {
		if err := c.expect(reflect.TypeFor[Pair[K, V]]()); err != nil {
			return nil, err
		}
		return func(k K, v V) (K, V, error) {
			var zk K
			var zv V
			out, err := c.invoke(k, v)
			if err != nil {
				return zk, zv, err
			}
			p, err := as[Pair[K, V]](out[0])
			return p.First, p.Second, err
		}, nil
	}
	if err := c.expect(reflect.TypeFor[K](), reflect.TypeFor[V]()); err != nil {
		return nil, err
	}
	return func(k K, v V) (K, V, error) {
		var zk K
		var zv V
		out, err := c.invoke(k, v)
		if err != nil {
			return zk, zv, err
		}
		nk, err := as[K](out[0])
		if err != nil {
			return zk, zv, err
		}
		nv, err := as[V](out[1])
		return nk, nv, err
	}, nil
}
