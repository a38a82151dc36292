package collections

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/hasbyte1/go-fluent/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Element access for Attr, Item, ItemPath and Invoke
//
// Elements that implement AttrGetter or ItemGetter answer for themselves.
// Anything else is inspected reflectively, and only within these operations:
// exported struct fields and getter methods for Attr, map keys and
// slice/array/string indexes for Item, exported methods for Invoke.
// ─────────────────────────────────────────────────────────────────────────────

// AttrGetter is implemented by elements that expose named attributes to
// [List.Attr] without reflection.
type AttrGetter interface {
	GetAttr(name string) (any, bool)
}

// ItemGetter is implemented by elements that support [List.Item] lookups
// without reflection.
type ItemGetter interface {
	GetItem(key any) (any, bool)
}

func attrOf(x any, name string) (any, error) {
	if g, ok := x.(AttrGetter); ok {
		v, ok := g.GetAttr(name)
		if !ok {
			return nil, errors.Wrapf(ErrLookup, "%T has no attribute %q", x, name)
		}
		return v, nil
	}

	rv := reflect.ValueOf(x)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Struct {
		if sf, ok := rv.Type().FieldByName(name); ok && sf.IsExported() {
			fv, err := rv.FieldByIndexErr(sf.Index)
			if err != nil {
				return nil, errors.Wrapf(ErrLookup, "%T.%s: %v", x, name, err)
			}
			return fv.Interface(), nil
		}
	}

	if m := methodOf(x, name); m.IsValid() {
		if mt := m.Type(); mt.NumIn() == 0 && mt.NumOut() == 1 {
			return m.Call(nil)[0].Interface(), nil
		}
	}
	return nil, errors.Wrapf(ErrLookup, "%T has no attribute %q", x, name)
}

func itemOf(x any, key any) (any, error) {
	if g, ok := x.(ItemGetter); ok {
		v, ok := g.GetItem(key)
		if !ok {
			return nil, errors.Wrapf(ErrLookup, "%T has no item %v", x, key)
		}
		return v, nil
	}

	rv := reflect.ValueOf(x)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		kv := reflect.ValueOf(key)
		kt := rv.Type().Key()
		if !kv.IsValid() || !kv.Type().AssignableTo(kt) {
			return nil, errors.Wrapf(ErrLookup, "%T key %v is not a %s", x, key, kt)
		}
		v := rv.MapIndex(kv)
		if !v.IsValid() {
			return nil, errors.Wrapf(ErrLookup, "%T has no key %v", x, key)
		}
		return v.Interface(), nil
	case reflect.Slice, reflect.Array, reflect.String:
		kv := reflect.ValueOf(key)
		if !kv.IsValid() || !kv.CanInt() {
			return nil, errors.Wrapf(ErrLookup, "%T index %v is not an integer", x, key)
		}
		i, ok := arr.Index(rv.Len(), int(kv.Int()))
		if !ok {
			return nil, errors.Wrapf(ErrLookup, "%T index %d out of range [0, %d)", x, kv.Int(), rv.Len())
		}
		return rv.Index(i).Interface(), nil
	}
	return nil, errors.Wrapf(ErrLookup, "%T is not indexable", x)
}

func itemPathOf(x any, path string) (any, error) {
	m, ok := x.(map[string]any)
	if !ok {
		return nil, errors.Wrapf(ErrLookup, "%T is not a map[string]any", x)
	}
	v, ok := arr.Lookup(m, path)
	if !ok {
		return nil, errors.Wrapf(ErrLookup, "no value at %q", path)
	}
	return v, nil
}

func invokeOn(x any, name string, args []any) (any, error) {
	m := methodOf(x, name)
	if !m.IsValid() {
		return nil, errors.Wrapf(ErrLookup, "%T has no method %q", x, name)
	}
	c, err := newCall(m.Interface(), args, nil, nil)
	if err != nil {
		return nil, err
	}
	out, err := c.invoke()
	return first(out), err
}

// methodOf finds an exported method of x by name, looking at the pointer
// method set too. The zero Value means there is none.
func methodOf(x any, name string) reflect.Value {
	rv := reflect.ValueOf(x)
	if !rv.IsValid() {
		return reflect.Value{}
	}
	if m := rv.MethodByName(name); m.IsValid() {
		return m
	}
	if rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		return reflect.Value{}
	}
	p := reflect.New(rv.Type())
	p.Elem().Set(rv)
	return p.MethodByName(name)
}
