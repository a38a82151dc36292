package collections

import (
	"encoding/json"
	"fmt"
	"iter"
	"maps"
	"reflect"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// Dict is a chainable wrapper around a map[K]V.
//
// Predicates and transforms receive each entry as two arguments, key then
// value, followed by any extra arguments of the call:
//
//	d := collections.NewDict(map[string]int{"a": 1, "b": 2, "c": 3})
//	d.Keep(func(k string, v, floor int) bool { return v >= floor }, 2) // → {b:2 c:3}
//
// Predicates also accept an [Operator] shortcut comparing the value only:
//
//	d.Keep(collections.Eq(2)) // → {b:2}
//
// Unlike [List], a Dict binding never substitutes a [Placeholder].
//
// Transforms (Map, Keep, Rem, Copy) return a new Dict, unless
// [Config.SaveAssignment] is set, in which case they return the receiver
// unchanged. Mutators (Update, Set, Delete, Clear) change the receiver and
// return it, except on a Dict that carries an error, which they leave
// untouched. [Dict.Do] records its result in [Dict.LastValue] and returns the
// receiver.
//
// Entry order is unspecified, as for any Go map.
type Dict[K comparable, V any] struct {
	items map[K]V
	cfg   Config
	last  any
	err   error
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewDict creates a Dict from m (copied) with [DefaultConfig].
func NewDict[K comparable, V any](m map[K]V) *Dict[K, V] {
	return NewDictWithConfig(m, DefaultConfig())
}

// NewDictWithConfig creates a Dict from m (copied) with cfg.
func NewDictWithConfig[K comparable, V any](m map[K]V, cfg Config) *Dict[K, V] {
	items := make(map[K]V, len(m))
	maps.Copy(items, m)
	return &Dict[K, V]{items: items, cfg: cfg}
}

// DictFromPairs creates a Dict from key/value pairs. Later pairs overwrite
// earlier ones with the same key.
func DictFromPairs[K comparable, V any](pairs ...Pair[K, V]) *Dict[K, V] {
	d := NewDict[K, V](nil)
	for _, p := range pairs {
		d.items[p.First] = p.Second
	}
	return d
}

// FromKeys creates a Dict mapping every key in keys to def.
func FromKeys[K comparable, V any](keys []K, def V) *Dict[K, V] {
	d := NewDict[K, V](nil)
	for _, k := range keys {
		d.items[k] = def
	}
	return d
}

func (d *Dict[K, V]) derive(items map[K]V) *Dict[K, V] {
	return &Dict[K, V]{items: items, cfg: d.cfg}
}

func (d *Dict[K, V]) failed(err error) *Dict[K, V] {
	return &Dict[K, V]{items: map[K]V{}, cfg: d.cfg, err: err}
}

// assign returns the result of a transform: a new Dict, or the receiver
// itself in save mode.
func (d *Dict[K, V]) assign(op string, items map[K]V) *Dict[K, V] {
	if d.cfg.SaveAssignment {
		level.Debug(d.cfg.logger()).Log("msg", "assignment suppressed", "op", op, "len", len(items))
		return d
	}
	return d.derive(items)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of entries.
func (d *Dict[K, V]) Len() int { return len(d.items) }

// Get returns the value stored under k together with a presence flag.
func (d *Dict[K, V]) Get(k K) (V, bool) {
	v, ok := d.items[k]
	return v, ok
}

// HasKey reports whether k is present.
func (d *Dict[K, V]) HasKey(k K) bool {
	_, ok := d.items[k]
	return ok
}

// Keys returns the keys in unspecified order.
func (d *Dict[K, V]) Keys() []K {
	keys := make([]K, 0, len(d.items))
	for k := range d.items {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the values in unspecified order.
func (d *Dict[K, V]) Values() []V {
	values := make([]V, 0, len(d.items))
	for _, v := range d.items {
		values = append(values, v)
	}
	return values
}

// Items returns the entries as pairs in unspecified order.
func (d *Dict[K, V]) Items() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, len(d.items))
	for k, v := range d.items {
		pairs = append(pairs, PairOf(k, v))
	}
	return pairs
}

// ToMap returns a copy of the underlying map.
func (d *Dict[K, V]) ToMap() map[K]V {
	return maps.Clone(d.items)
}

// Iter returns an iterator over the entries.
func (d *Dict[K, V]) Iter() iter.Seq2[K, V] {
	return maps.All(d.items)
}

// Config returns the configuration the Dict was created with.
func (d *Dict[K, V]) Config() Config { return d.cfg }

// Err returns the error carried by the Dict, if any.
func (d *Dict[K, V]) Err() error { return d.err }

// LastValue returns the result recorded by the most recent [Dict.Do].
func (d *Dict[K, V]) LastValue() any { return d.last }

// ToJSON serialises the entries to a JSON object.
func (d *Dict[K, V]) ToJSON() ([]byte, error) {
	return json.Marshal(d.items)
}

// MarshalJSON implements [json.Marshaler].
func (d *Dict[K, V]) MarshalJSON() ([]byte, error) { return d.ToJSON() }

// String returns a JSON representation, or the fmt form when the keys
// cannot be encoded as JSON object keys.
func (d *Dict[K, V]) String() string {
	b, err := d.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", d.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transforms
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new Dict built from the bound function's results. The
// function returns the new entry as (K, V) or as a Pair[K, V], optionally
// followed by an error. When two entries map to the same key the one produced
// last wins. A key that cannot be hashed, possible when K is an interface
// type, fails with [ErrArgument].
//
//	d.Map(func(k string, v int) (string, int) { return k, v * 2 })
func (d *Dict[K, V]) Map(fn any, args ...any) *Dict[K, V] {
	if d.err != nil {
		return d.failed(d.err)
	}
	f, err := transform2[K, V](fn, args)
	if err != nil {
		return d.failed(err)
	}
	dynamicKeys := reflect.TypeFor[K]().Kind() == reflect.Interface
	out := make(map[K]V, len(d.items))
	for k, v := range d.items {
		nk, nv, err := f(k, v)
		if err != nil {
			return d.failed(err)
		}
		if dynamicKeys {
			if rk := reflect.ValueOf(nk); rk.IsValid() && !rk.Comparable() {
				return d.failed(errors.Wrapf(ErrArgument, "map key of type %T is not hashable", nk))
			}
		}
		out[nk] = nv
	}
	return d.assign("map", out)
}

// Keep returns a new Dict with the entries satisfying the bound predicate.
func (d *Dict[K, V]) Keep(fn any, args ...any) *Dict[K, V] {
	return d.filter("keep", true, fn, args)
}

// Rem returns a new Dict without the entries satisfying the bound predicate.
func (d *Dict[K, V]) Rem(fn any, args ...any) *Dict[K, V] {
	return d.filter("rem", false, fn, args)
}

func (d *Dict[K, V]) filter(op string, want bool, fn any, args []any) *Dict[K, V] {
	if d.err != nil {
		return d.failed(d.err)
	}
	pred, err := d.predicate(fn, args)
	if err != nil {
		return d.failed(err)
	}
	out := make(map[K]V, len(d.items))
	for k, v := range d.items {
		match, err := pred(k, v)
		if err != nil {
			return d.failed(err)
		}
		if match == want {
			out[k] = v
		}
	}
	return d.assign(op, out)
}

func (d *Dict[K, V]) predicate(fn any, args []any) (func(K, V) (bool, error), error) {
	if op, ok := fn.(Operator); ok {
		level.Debug(d.cfg.logger()).Log("msg", "operator shortcut", "op", op.name, "operand", fmt.Sprint(op.operand))
	}
	return predicate2[K, V](fn, args)
}

// Copy returns a shallow copy: values that are themselves maps, slices or
// pointers stay shared with the original.
func (d *Dict[K, V]) Copy() *Dict[K, V] {
	c := d.derive(maps.Clone(d.items))
	c.err = d.err
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Queries
// ─────────────────────────────────────────────────────────────────────────────

// Some reports whether at least one entry satisfies the bound predicate.
func (d *Dict[K, V]) Some(fn any, args ...any) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	pred, err := d.predicate(fn, args)
	if err != nil {
		return false, err
	}
	for k, v := range d.items {
		match, err := pred(k, v)
		if err != nil || match {
			return match, err
		}
	}
	return false, nil
}

// All reports whether every entry satisfies the bound predicate. It is true
// for an empty Dict.
func (d *Dict[K, V]) All(fn any, args ...any) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	pred, err := d.predicate(fn, args)
	if err != nil {
		return false, err
	}
	return d.every(pred)
}

func (d *Dict[K, V]) every(pred func(K, V) (bool, error)) (bool, error) {
	for k, v := range d.items {
		match, err := pred(k, v)
		if err != nil {
			return false, err
		}
		if !match {
			return false, nil
		}
	}
	return true, nil
}

// Find returns an entry satisfying the bound predicate, or an absent
// [Optional] when none does.
func (d *Dict[K, V]) Find(fn any, args ...any) (Optional[Pair[K, V]], error) {
	if d.err != nil {
		return Absent[Pair[K, V]](), d.err
	}
	pred, err := d.predicate(fn, args)
	if err != nil {
		return Absent[Pair[K, V]](), err
	}
	for k, v := range d.items {
		match, err := pred(k, v)
		if err != nil {
			return Absent[Pair[K, V]](), err
		}
		if match {
			return Present(PairOf(k, v)), nil
		}
	}
	return Absent[Pair[K, V]](), nil
}

// Count returns the number of entries, or with a function the number of
// entries satisfying it.
func (d *Dict[K, V]) Count(args ...any) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	if len(args) == 0 {
		return len(d.items), nil
	}
	pred, err := d.predicate(args[0], args[1:])
	if err != nil {
		return 0, err
	}
	n := 0
	for k, v := range d.items {
		match, err := pred(k, v)
		if err != nil {
			return 0, err
		}
		if match {
			n++
		}
	}
	return n, nil
}

// Empty reports whether the Dict has no entries. Given a function, it
// reports whether every entry satisfies it:
//
//	collections.NewDict(map[string]any{"a": 0, "b": nil}).
//	    Empty(func(_ string, v any) bool { return v == nil || v == 0 }) // true
func (d *Dict[K, V]) Empty(args ...any) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	if len(args) == 0 {
		return len(d.items) == 0, nil
	}
	pred, err := d.predicate(args[0], args[1:])
	if err != nil {
		return false, err
	}
	return d.every(pred)
}

// Do calls fn with the Dict itself as the first argument followed by args,
// stores its result in [Dict.LastValue] and returns the receiver. As with
// every Dict binding, a [Placeholder] in args is passed through as is. An
// error is recorded on the receiver.
//
//	d.Do(func(d *collections.Dict[string, int]) int { return d.Len() }).LastValue()
func (d *Dict[K, V]) Do(fn any, args ...any) *Dict[K, V] {
	if d.err != nil {
		return d
	}
	act, err := literalAction1[*Dict[K, V]](fn, args)
	if err != nil {
		d.err = err
		return d
	}
	d.last, d.err = act(d)
	return d
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutators
// ─────────────────────────────────────────────────────────────────────────────

// Update copies every entry of m into the Dict and returns the receiver.
func (d *Dict[K, V]) Update(m map[K]V) *Dict[K, V] {
	if d.err != nil {
		return d
	}
	maps.Copy(d.items, m)
	return d
}

// Set stores v under k and returns the receiver.
func (d *Dict[K, V]) Set(k K, v V) *Dict[K, V] {
	if d.err != nil {
		return d
	}
	d.items[k] = v
	return d
}

// Delete removes k and returns the receiver.
func (d *Dict[K, V]) Delete(k K) *Dict[K, V] {
	if d.err != nil {
		return d
	}
	delete(d.items, k)
	return d
}

// Clear removes every entry and returns the receiver.
func (d *Dict[K, V]) Clear() *Dict[K, V] {
	if d.err != nil {
		return d
	}
	clear(d.items)
	return d
}
