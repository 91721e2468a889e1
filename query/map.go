package query

import (
	"fmt"
	"iter"
	"maps"
	"net/url"
	"reflect"
	"slices"
	"strings"

	"braces.dev/errtrace"
)

// Map is an ordered mapping from a query key to a [Value].
// Keys are unique and case-sensitive, iteration follows insertion order.
//
// The zero Map is empty and ready to use. Read methods accept a nil *Map,
// [Map.Set] and [Map.Add] need a non-nil map and panic otherwise.
// Map is not safe for concurrent modification.
type Map struct {
	keys []string
	vals map[string]Value
}

// New returns an empty map.
func New() *Map { return &Map{vals: make(map[string]Value)} }

// FromValues returns a map built from vals.
// Keys are inserted in sorted order, single values become scalars.
func FromValues(vals url.Values) *Map {
	m := New()
	for _, k := range slices.Sorted(maps.Keys(vals)) {
		if vs := vals[k]; len(vs) == 1 {
			m.Set(k, Scalar(vs[0]))
		} else {
			m.Set(k, Sequence(vs...))
		}
	}
	return m
}

// FromStrings returns a map of scalars built from vals.
// Keys are inserted in sorted order.
func FromStrings(vals map[string]string) *Map {
	m := New()
	for _, k := range slices.Sorted(maps.Keys(vals)) {
		m.Set(k, Scalar(vals[k]))
	}
	return m
}

// FromMap returns a map built from dynamic values converted with [ValueOf].
// Keys are inserted in sorted order.
func FromMap[V any](vals map[string]V) (*Map, error) {
	m := New()
	for _, k := range slices.Sorted(maps.Keys(vals)) {
		v, err := ValueOf(vals[k])
		if err != nil {
			return nil, errtrace.Wrap(newInvalidTypeErr(fmt.Errorf("key %q: %w", k, err)))
		}
		m.Set(k, v)
	}
	return m, nil
}

// MapOf returns a map built from any Go map with a string key kind,
// e.g. map[string]int or map[Name][]string.
// Keys are inserted in sorted order, values are converted with [ValueOf].
// A nil value, a non-map value or a map with non-string keys returns an error wrapping [ErrInvalidType].
func MapOf(v any) (*Map, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, errtrace.Wrap(newInvalidTypeErr("unsupported type %T", v))
	}
	if rv.Type().Key().Kind() != reflect.String {
		return nil, errtrace.Wrap(newInvalidTypeErr("unsupported key type of %T", v))
	}

	keys := rv.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int { return strings.Compare(a.String(), b.String()) })

	m := New()
	for _, k := range keys {
		val, err := ValueOf(rv.MapIndex(k).Interface())
		if err != nil {
			return nil, errtrace.Wrap(newInvalidTypeErr(fmt.Errorf("key %q: %w", k.String(), err)))
		}
		m.Set(k.String(), val)
	}
	return m, nil
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Get returns the value of the key.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.vals[key]
	return v, ok
}

// Has checks whether the key is in the map.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set sets the key to v, replacing any existing value.
// A replaced key keeps its position. m must not be nil.
func (m *Map) Set(key string, v Value) *Map {
	if m.vals == nil {
		m.vals = make(map[string]Value)
	}
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
	return m
}

// Add adds val to the key.
// The first value of a key is stored as a scalar, the second one promotes it
// to a two-element sequence, further values are appended. m must not be nil.
func (m *Map) Add(key, val string) *Map {
	cur, ok := m.Get(key)
	if !ok {
		return m.Set(key, Scalar(val))
	}
	return m.Set(key, cur.Concat(Scalar(val)))
}

// Del removes the key.
func (m *Map) Del(key string) *Map {
	if m == nil {
		return m
	}
	if _, ok := m.vals[key]; !ok {
		return m
	}
	delete(m.vals, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })
	return m
}

// Keys returns an iterator over the keys in insertion order.
func (m *Map) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// All returns an iterator over the key-value pairs in insertion order.
func (m *Map) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.vals[k]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the map.
// Clone of a nil map is an empty map.
func (m *Map) Clone() *Map {
	m2 := New()
	for k, v := range m.All() {
		m2.Set(k, v.clone())
	}
	return m2
}

func (v Value) clone() Value {
	v.seq = slices.Clone(v.seq)
	return v
}

// Equal reports whether m and o hold the same keys with equal values.
// Key order is not compared.
func (m *Map) Equal(o *Map) bool {
	if m.Len() != o.Len() {
		return false
	}
	for k, v := range m.All() {
		ov, ok := o.Get(k)
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Values converts the map to [url.Values].
func (m *Map) Values() url.Values {
	vals := make(url.Values, m.Len())
	for k, v := range m.All() {
		vals[k] = v.Strings()
	}
	return vals
}

// String returns the encoded query string.
func (m *Map) String() string { return Build(m, true) }
