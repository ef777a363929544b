package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/0xalexb/dotconf/codec"
	"github.com/0xalexb/dotconf/tree"
)

const indentUnit = "\t"

// Codec implements codec.Codec for JSON objects.
type Codec struct{}

// New creates a JSON codec.
func New() *Codec {
	return &Codec{}
}

// Name returns "json".
func (c *Codec) Name() string {
	return "json"
}

// Extensions returns the JSON file extension.
func (c *Codec) Extensions() []string {
	return []string{".json"}
}

// Decode parses a JSON object into a root map, keeping key order.
// Integers that fit in int64 decode as ints, every other number as a float.
func (c *Codec) Decode(data []byte) (*tree.Map, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", codec.ErrMalformed, err)
	}

	if tok != json.Delim('{') {
		return nil, fmt.Errorf("%w: top level must be an object", codec.ErrMalformed)
	}

	root, err := decodeObject(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", codec.ErrMalformed, err)
	}

	_, err = dec.Token()
	if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing content after top-level object", codec.ErrMalformed)
	}

	return root, nil
}

func decodeObject(dec *json.Decoder) (*tree.Map, error) {
	m := tree.NewMap()

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key %v is not a string", tok)
		}

		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}

		v, err := decodeValue(dec, tok)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		m.Put(key, v)
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return m, nil
}

func decodeArray(dec *json.Decoder) (tree.Value, error) {
	var items []tree.Value

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return tree.Value{}, err
		}

		v, err := decodeValue(dec, tok)
		if err != nil {
			return tree.Value{}, fmt.Errorf("index %d: %w", len(items), err)
		}

		items = append(items, v)
	}

	if _, err := dec.Token(); err != nil {
		return tree.Value{}, err
	}

	return tree.List(items...), nil
}

func decodeValue(dec *json.Decoder, tok json.Token) (tree.Value, error) {
	switch typed := tok.(type) {
	case json.Delim:
		switch typed {
		case '{':
			m, err := decodeObject(dec)
			if err != nil {
				return tree.Value{}, err
			}

			return tree.Mapping(m), nil
		case '[':
			return decodeArray(dec)
		default:
			return tree.Value{}, fmt.Errorf("unexpected delimiter %v", typed)
		}
	case string:
		return tree.String(typed), nil
	case json.Number:
		if n, err := typed.Int64(); err == nil {
			return tree.Int(n), nil
		}

		f, err := typed.Float64()
		if err != nil {
			return tree.Value{}, fmt.Errorf("number %s: %w", typed, err)
		}

		return tree.Float(f), nil
	case bool:
		return tree.Bool(typed), nil
	case nil:
		return tree.Null(), nil
	default:
		return tree.Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

// Encode writes root as an indented JSON object in insertion order.
// Non-ASCII and HTML characters are written as-is; NaN and infinities are
// rejected.
func (c *Codec) Encode(root *tree.Map) ([]byte, error) {
	var buf bytes.Buffer

	err := writeValue(&buf, tree.Mapping(root), 0)
	if err != nil {
		return nil, err
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

//nolint:cyclop // one branch per value kind
func writeValue(buf *bytes.Buffer, v tree.Value, depth int) error {
	switch v.Kind() {
	case tree.KindAbsent, tree.KindNull:
		buf.WriteString("null")
	case tree.KindString:
		s, _ := v.AsString()

		return writeString(buf, s)
	case tree.KindInt, tree.KindBool:
		buf.WriteString(v.String())
	case tree.KindFloat:
		f, _ := v.AsFloat()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %v", codec.ErrUnencodable, f)
		}

		data, err := json.Marshal(f)
		if err != nil {
			return fmt.Errorf("%w: %w", codec.ErrUnencodable, err)
		}

		buf.Write(data)

		if !bytes.ContainsAny(data, ".eE") {
			buf.WriteString(".0")
		}
	case tree.KindList:
		items, _ := v.AsList()
		if len(items) == 0 {
			buf.WriteString("[]")

			return nil
		}

		buf.WriteByte('[')

		for i, item := range items {
			if i > 0 {
				buf.WriteByte(',')
			}

			newline(buf, depth+1)

			err := writeValue(buf, item, depth+1)
			if err != nil {
				return err
			}
		}

		newline(buf, depth)
		buf.WriteByte(']')
	case tree.KindMap:
		m, _ := v.AsMap()
		if m.Len() == 0 {
			buf.WriteString("{}")

			return nil
		}

		buf.WriteByte('{')

		i := 0
		for key, item := range m.All() {
			if i > 0 {
				buf.WriteByte(',')
			}

			i++

			newline(buf, depth+1)

			err := writeString(buf, key)
			if err != nil {
				return err
			}

			buf.WriteString(": ")

			err = writeValue(buf, item, depth+1)
			if err != nil {
				return fmt.Errorf("key %q: %w", key, err)
			}
		}

		newline(buf, depth)
		buf.WriteByte('}')
	}

	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer

	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)

	err := enc.Encode(s)
	if err != nil {
		return fmt.Errorf("%w: %w", codec.ErrUnencodable, err)
	}

	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))

	return nil
}

func newline(buf *bytes.Buffer, depth int) {
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(indentUnit, depth))
}
