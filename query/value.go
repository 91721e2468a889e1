package query

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"
)

// Kind is the tag of [Value].
type Kind uint8

const (
	KindScalar Kind = iota
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a query parameter value: a single scalar or an ordered sequence of scalars.
// The zero value is an empty scalar.
type Value struct {
	kind Kind
	null bool
	str  string
	seq  []string
}

// Scalar returns a single value.
func Scalar(s string) Value { return Value{kind: KindScalar, str: s} }

// Null returns a scalar without a value. It is rendered as "key=".
func Null() Value { return Value{kind: KindScalar, null: true} }

// Sequence returns a sequence value, one query token per element.
func Sequence(vals ...string) Value {
	return Value{kind: KindSequence, seq: slices.Clone(vals)}
}

// Kind returns the value tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v was created with [Null].
func (v Value) IsNull() bool { return v.kind == KindScalar && v.null }

// Len returns the number of query tokens rendered for v.
func (v Value) Len() int {
	if v.kind == KindSequence {
		return len(v.seq)
	}
	return 1
}

// Strings returns the scalar as a single-element slice or a copy of the sequence elements.
func (v Value) Strings() []string {
	if v.kind == KindSequence {
		return slices.Clone(v.seq)
	}
	return []string{v.str}
}

// First returns the scalar or the first element of the sequence.
func (v Value) First() (string, bool) {
	if v.kind == KindSequence {
		if len(v.seq) == 0 {
			return "", false
		}
		return v.seq[0], true
	}
	return v.str, true
}

// Concat returns a sequence of v elements followed by o elements.
// Scalars are promoted to single-element sequences.
func (v Value) Concat(o Value) Value {
	seq := make([]string, 0, v.Len()+o.Len())
	seq = v.appendTo(seq)
	seq = o.appendTo(seq)
	return Value{kind: KindSequence, seq: seq}
}

func (v Value) appendTo(dst []string) []string {
	if v.kind == KindSequence {
		return append(dst, v.seq...)
	}
	return append(dst, v.str)
}

// Equal reports whether v and o have the same tag and the same elements.
// A null scalar equals an empty scalar.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.kind == KindSequence {
		return slices.Equal(v.seq, o.seq)
	}
	return v.str == o.str
}

// EqualStrings reports whether v and o render the same elements,
// regardless of a scalar being compared to a single-element sequence.
func (v Value) EqualStrings(o Value) bool {
	return slices.Equal(v.appendTo(nil), o.appendTo(nil))
}

// String returns the scalar or a comma-separated list of the sequence elements.
func (v Value) String() string {
	if v.kind == KindSequence {
		return strings.Join(v.seq, ",")
	}
	return v.str
}

// Format implements [fmt.Formatter].
func (v Value) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		if f.Flag('#') && verb == 'v' {
			if v.kind == KindSequence {
				fmt.Fprintf(f, "query.Sequence(%#v)", v.seq)
			} else if v.null {
				fmt.Fprint(f, "query.Null()")
			} else {
				fmt.Fprintf(f, "query.Scalar(%q)", v.str)
			}
			return
		}
		if v.kind == KindSequence {
			fmt.Fprint(f, v.seq)
			return
		}
		fmt.Fprint(f, v.str)
	case 'q':
		if v.kind == KindSequence {
			fmt.Fprintf(f, "%q", v.seq)
			return
		}
		fmt.Fprint(f, strconv.Quote(v.str))
	default:
		fmt.Fprintf(f, "%%!%c(query.Value=%s)", verb, v.String())
	}
}

// ValueOf converts a dynamic Go value to a [Value].
//
//   - nil returns [Null];
//   - [Value] is returned as is;
//   - strings, byte slices, booleans, integer and float numbers and [fmt.Stringer]s return [Scalar];
//   - slices and arrays of the above return [Sequence], nil elements become empty strings.
//
// Any other type, including maps, structs and nested slices, returns an error wrapping [ErrInvalidType].
func ValueOf(v any) (Value, error) {
	switch v := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case []string:
		return Sequence(v...), nil
	case []byte:
		return Scalar(string(v)), nil
	}

	if s, ok := scalarOf(v); ok {
		return Scalar(s), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		seq := make([]string, 0, rv.Len())
		for i := range rv.Len() {
			ev := rv.Index(i).Interface()
			if ev == nil {
				seq = append(seq, "")
				continue
			}
			s, ok := scalarOf(ev)
			if !ok {
				return Value{}, errtrace.Wrap(newInvalidTypeErr("element %d of %T: unsupported type %T", i, v, ev))
			}
			seq = append(seq, s)
		}
		return Value{kind: KindSequence, seq: seq}, nil
	default:
		return Value{}, errtrace.Wrap(newInvalidTypeErr("unsupported type %T", v))
	}
}

func scalarOf(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.FormatInt(int64(v), 10), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	}

	// named basic types, e.g. type ID int
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	default:
		return "", false
	}
}
