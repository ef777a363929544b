package yaml

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/0xalexb/dotconf/codec"
	"github.com/0xalexb/dotconf/tree"
)

const indent = 2

// Codec implements codec.Codec for block-style YAML.
type Codec struct{}

// New creates a YAML codec.
func New() *Codec {
	return &Codec{}
}

// Name returns "yaml".
func (c *Codec) Name() string {
	return "yaml"
}

// Extensions returns the YAML file extensions.
func (c *Codec) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Decode parses data into a root map, keeping key order and resolving
// aliases. Empty content and a bare null both decode to an empty map.
func (c *Codec) Decode(data []byte) (*tree.Map, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return tree.NewMap(), nil
	}

	var raw any

	err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", codec.ErrMalformed, err)
	}

	if raw == nil {
		return tree.NewMap(), nil
	}

	slice, ok := raw.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: top level is %T, not a mapping", codec.ErrMalformed, raw)
	}

	return fromMapSlice(slice), nil
}

// Encode serializes root as block-style YAML in insertion order.
func (c *Codec) Encode(root *tree.Map) ([]byte, error) {
	return EncodeValue(tree.Mapping(root))
}

// EncodeValue serializes any Value, not only a root map.
func EncodeValue(v tree.Value) ([]byte, error) {
	data, err := yaml.MarshalWithOptions(toNative(v), yaml.Indent(indent), yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", codec.ErrUnencodable, err)
	}

	return data, nil
}

// DecodeValue parses a single YAML node such as "8080", "[a, b]" or
// "{k: v}". Blank input decodes to null.
func DecodeValue(data []byte) (tree.Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return tree.Null(), nil
	}

	var raw any

	err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap())
	if err != nil {
		return tree.Value{}, fmt.Errorf("%w: %w", codec.ErrMalformed, err)
	}

	return fromNative(raw), nil
}

func fromMapSlice(slice yaml.MapSlice) *tree.Map {
	m := tree.NewMap()

	for _, item := range slice {
		m.Put(keyString(item.Key), fromNative(item.Value))
	}

	return m
}

//nolint:cyclop // one case per decoded scalar type
func fromNative(raw any) tree.Value {
	switch typed := raw.(type) {
	case nil:
		return tree.Null()
	case yaml.MapSlice:
		return tree.Mapping(fromMapSlice(typed))
	case []any:
		items := make([]tree.Value, len(typed))
		for i, item := range typed {
			items[i] = fromNative(item)
		}

		return tree.List(items...)
	case string:
		return tree.String(typed)
	case bool:
		return tree.Bool(typed)
	case float64:
		return tree.Float(typed)
	case float32:
		return tree.Float(float64(typed))
	case time.Time:
		return tree.String(typed.Format(time.RFC3339Nano))
	default:
		v, err := tree.ValueOf(typed)
		if err != nil {
			return tree.String(fmt.Sprint(typed))
		}

		return v
	}
}

func keyString(key any) string {
	if s, ok := key.(string); ok {
		return s
	}

	if key == nil {
		return "null"
	}

	return fmt.Sprint(key)
}

// rawScalar is written to the output as-is.
type rawScalar string

// MarshalYAML implements yaml.BytesMarshaler.
func (r rawScalar) MarshalYAML() ([]byte, error) {
	return []byte(r), nil
}

func toNative(v tree.Value) any {
	switch v.Kind() {
	case tree.KindMap:
		m, _ := v.AsMap()
		slice := make(yaml.MapSlice, 0, m.Len())

		for key, item := range m.All() {
			slice = append(slice, yaml.MapItem{Key: key, Value: toNative(item)})
		}

		return slice
	case tree.KindList:
		items, _ := v.AsList()
		out := make([]any, len(items))

		for i, item := range items {
			out[i] = toNative(item)
		}

		return out
	case tree.KindString:
		s, _ := v.AsString()
		if !readsBackAsString(s) {
			return rawScalar(strconv.Quote(s))
		}

		return s
	case tree.KindFloat:
		f, _ := v.AsFloat()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return f
		}

		// 1e+21 would read back as a string.
		return rawScalar(v.String())
	case tree.KindAbsent, tree.KindNull, tree.KindInt, tree.KindBool:
		return v.Interface()
	default:
		return v.Interface()
	}
}

// readsBackAsString reports whether the encoder's own rendering of s parses
// back to the same string. Plain scalars like .inf slip past its quoting rules.
func readsBackAsString(s string) bool {
	data, err := yaml.Marshal(s)
	if err != nil {
		return false
	}

	var back any

	err = yaml.Unmarshal(data, &back)
	if err != nil {
		return false
	}

	str, ok := back.(string)

	return ok && str == s
}
