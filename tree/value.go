package tree

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrUnsupportedType is returned by ValueOf for Go values with no Value form.
var ErrUnsupportedType = errors.New("unsupported value type")

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	// KindAbsent is the zero Value: nothing stored.
	KindAbsent Kind = iota
	// KindNull is an explicit null read from a document.
	KindNull
	KindString
	KindInt
	KindFloat
	KindBool
	KindList
	KindMap
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is a node of the tree. The zero Value is absent.
type Value struct {
	kind  Kind
	str   string
	num   int64
	flt   float64
	flag  bool
	items []Value
	dict  *Map
}

// Absent returns the absent Value. Passing it to Set deletes.
func Absent() Value { return Value{} }

// Null returns an explicit null.
func Null() Value { return Value{kind: KindNull} }

// String wraps s.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Int wraps n.
func Int(n int64) Value { return Value{kind: KindInt, num: n} }

// Float wraps f.
func Float(f float64) Value { return Value{kind: KindFloat, flt: f} }

// Bool wraps b.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// List wraps the given elements. The slice is copied.
func List(items ...Value) Value {
	out := make([]Value, len(items))
	copy(out, items)

	return Value{kind: KindList, items: out}
}

// Mapping wraps m. A nil m becomes an empty map.
func Mapping(m *Map) Value {
	if m == nil {
		m = NewMap()
	}

	return Value{kind: KindMap, dict: m}
}

// Kind reports the variant.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v holds nothing.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// IsNull reports whether v is an explicit null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString returns the string payload.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsInt returns the integer payload.
func (v Value) AsInt() (int64, bool) { return v.num, v.kind == KindInt }

// AsFloat returns the float payload.
func (v Value) AsFloat() (float64, bool) { return v.flt, v.kind == KindFloat }

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, bool) { return v.flag, v.kind == KindBool }

// AsList returns the list elements. The slice is shared with v.
func (v Value) AsList() ([]Value, bool) { return v.items, v.kind == KindList }

// AsMap returns the nested map. The map is shared with v.
func (v Value) AsMap() (*Map, bool) { return v.dict, v.kind == KindMap }

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.kind {
	case KindList:
		out := make([]Value, len(v.items))
		for i, item := range v.items {
			out[i] = item.Clone()
		}

		return Value{kind: KindList, items: out}
	case KindMap:
		return Value{kind: KindMap, dict: v.dict.Clone()}
	case KindAbsent, KindNull, KindString, KindInt, KindFloat, KindBool:
		return v
	default:
		return v
	}
}

// Equal reports deep equality. Int and Float never compare equal to each other.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindAbsent, KindNull:
		return true
	case KindString:
		return v.str == other.str
	case KindInt:
		return v.num == other.num
	case KindFloat:
		return v.flt == other.flt
	case KindBool:
		return v.flag == other.flag
	case KindList:
		if len(v.items) != len(other.items) {
			return false
		}

		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}

		return true
	case KindMap:
		return v.dict.Equal(other.dict)
	default:
		return false
	}
}

// String renders the textual form the typed getters coerce from.
// Absent renders as "" and null as "null".
func (v Value) String() string {
	var sb strings.Builder

	v.writeText(&sb, false)

	return sb.String()
}

func (v Value) writeText(sb *strings.Builder, nested bool) {
	switch v.kind {
	case KindAbsent:
	case KindNull:
		sb.WriteString("null")
	case KindString:
		if nested {
			sb.WriteString(strconv.Quote(v.str))
		} else {
			sb.WriteString(v.str)
		}
	case KindInt:
		sb.WriteString(strconv.FormatInt(v.num, 10))
	case KindFloat:
		sb.WriteString(formatFloat(v.flt))
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.flag))
	case KindList:
		sb.WriteByte('[')

		for i, item := range v.items {
			if i > 0 {
				sb.WriteString(", ")
			}

			item.writeText(sb, true)
		}

		sb.WriteByte(']')
	case KindMap:
		sb.WriteByte('{')

		for i, key := range v.dict.Keys() {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(strconv.Quote(key))
			sb.WriteString(": ")

			item, _ := v.dict.Get(key)
			item.writeText(sb, true)
		}

		sb.WriteByte('}')
	}
}

// formatFloat keeps a trailing ".0" on integral values so that a stored
// float never reads back as an integer.
func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}

// ValueOf converts plain Go data into a Value. Supported: nil, string, bool,
// every integer and float type, []any, []string, []int, []int64, []float64,
// []bool, map[string]any, *Map and Value itself.
//
//nolint:cyclop // one case per supported Go type
func ValueOf(data any) (Value, error) {
	switch typed := data.(type) {
	case nil:
		return Null(), nil
	case Value:
		return typed.Clone(), nil
	case *Map:
		return Mapping(typed.Clone()), nil
	case string:
		return String(typed), nil
	case bool:
		return Bool(typed), nil
	case int:
		return Int(int64(typed)), nil
	case int8:
		return Int(int64(typed)), nil
	case int16:
		return Int(int64(typed)), nil
	case int32:
		return Int(int64(typed)), nil
	case int64:
		return Int(typed), nil
	case uint:
		return unsignedValue(uint64(typed)), nil
	case uint8:
		return Int(int64(typed)), nil
	case uint16:
		return Int(int64(typed)), nil
	case uint32:
		return Int(int64(typed)), nil
	case uint64:
		return unsignedValue(typed), nil
	case float32:
		return Float(float64(typed)), nil
	case float64:
		return Float(typed), nil
	case []any:
		return listOf(typed)
	case []string:
		return listOf(typed)
	case []int:
		return listOf(typed)
	case []int64:
		return listOf(typed)
	case []float64:
		return listOf(typed)
	case []bool:
		return listOf(typed)
	case map[string]any:
		m := NewMap()

		for _, key := range sortedKeys(typed) {
			item, err := ValueOf(typed[key])
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", key, err)
			}

			m.Put(key, item)
		}

		return Mapping(m), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, data)
	}
}

// MustValueOf is ValueOf for literals known to be convertible.
func MustValueOf(data any) Value {
	v, err := ValueOf(data)
	if err != nil {
		panic(err)
	}

	return v
}

func listOf[T any](items []T) (Value, error) {
	out := make([]Value, 0, len(items))

	for i, item := range items {
		v, err := ValueOf(item)
		if err != nil {
			return Value{}, fmt.Errorf("index %d: %w", i, err)
		}

		out = append(out, v)
	}

	return Value{kind: KindList, items: out}, nil
}

func unsignedValue(n uint64) Value {
	if n > math.MaxInt64 {
		return Float(float64(n))
	}

	return Int(int64(n))
}

// Interface returns v as plain Go data: nil, string, int64, float64, bool,
// []any or map[string]any. Map order is lost.
func (v Value) Interface() any {
	switch v.kind {
	case KindAbsent, KindNull:
		return nil
	case KindString:
		return v.str
	case KindInt:
		return v.num
	case KindFloat:
		return v.flt
	case KindBool:
		return v.flag
	case KindList:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}

		return out
	case KindMap:
		return v.dict.Interface()
	default:
		return nil
	}
}
