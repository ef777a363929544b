package document

import (
	"fmt"

	"github.com/0xalexb/dotconf/tree"
)

// String returns the textual form of the value at path.
func (d *Document) String(path string) (string, error) {
	return d.stringOf(path, tree.Absent())
}

// StringOr is String with a default that is stored when path is missing.
func (d *Document) StringOr(path, def string) (string, error) {
	return d.stringOf(path, tree.String(def))
}

func (d *Document) stringOf(path string, def tree.Value) (string, error) {
	text, ok, err := d.text(path, def)
	if err != nil {
		return "", err
	}

	if !ok {
		return "", notFound(path)
	}

	return text, nil
}

// text resolves path and renders it. Absent and null values have no text.
func (d *Document) text(path string, def tree.Value) (string, bool, error) {
	p, err := parsePath(path)
	if err != nil {
		return "", false, err
	}

	v := d.lookup(p, def)
	if v.IsAbsent() || v.IsNull() {
		return "", false, nil
	}

	return v.String(), true, nil
}

// Int returns the value at path when its text is a plain integer.
func (d *Document) Int(path string) (int64, error) {
	return d.intOf(path, nil)
}

// IntOr is Int with a default. The default is stored when path is missing
// or holds something that is not an integer, but not when the path runs
// through a non-map value.
func (d *Document) IntOr(path string, def int64) (int64, error) {
	return d.intOf(path, &def)
}

func (d *Document) intOf(path string, def *int64) (int64, error) {
	fallback := tree.Absent()
	if def != nil {
		fallback = tree.Int(*def)
	}

	text, ok, err := d.text(path, fallback)
	if err != nil {
		return 0, err
	}

	if !ok {
		return 0, notFound(path)
	}

	n, ok, err := tree.ParseInt(text)
	if err != nil {
		return 0, fmt.Errorf("value at %q: %w", path, err)
	}

	if ok {
		return n, nil
	}

	if def == nil {
		return 0, notFound(path)
	}

	d.persist(tree.MustParsePath(path), fallback)

	return *def, nil
}

// Float returns the value at path when its text is a plain decimal number.
func (d *Document) Float(path string) (float64, error) {
	return d.floatOf(path, nil)
}

// FloatOr is Float with a default, stored under the same rules as IntOr.
func (d *Document) FloatOr(path string, def float64) (float64, error) {
	return d.floatOf(path, &def)
}

func (d *Document) floatOf(path string, def *float64) (float64, error) {
	fallback := tree.Absent()
	if def != nil {
		fallback = tree.Float(*def)
	}

	text, ok, err := d.text(path, fallback)
	if err != nil {
		return 0, err
	}

	if !ok {
		return 0, notFound(path)
	}

	f, ok, err := tree.ParseFloat(text)
	if err != nil {
		return 0, fmt.Errorf("value at %q: %w", path, err)
	}

	if ok {
		return f, nil
	}

	if def == nil {
		return 0, notFound(path)
	}

	d.persist(tree.MustParsePath(path), fallback)

	return *def, nil
}

// Bool reports whether the text of the value at path is "true", ignoring
// case. Any other text is false. A missing value is ErrNotFound.
func (d *Document) Bool(path string) (bool, error) {
	return d.boolOf(path, tree.Absent())
}

// BoolOr is Bool with a default that is stored when path is missing.
func (d *Document) BoolOr(path string, def bool) (bool, error) {
	return d.boolOf(path, tree.Bool(def))
}

func (d *Document) boolOf(path string, def tree.Value) (bool, error) {
	text, ok, err := d.text(path, def)
	if err != nil {
		return false, err
	}

	if !ok {
		return false, notFound(path)
	}

	return tree.IsTrue(text), nil
}

// StringList returns the elements of the list at path as text.
func (d *Document) StringList(path string) ([]string, error) {
	return listOf(d, path, tree.Absent(), tree.CoerceString, nil)
}

// StringListOr is StringList with a default. When the value at path is not a
// list, def is stored and returned as given.
func (d *Document) StringListOr(path string, def []string) ([]string, error) {
	return listOf(d, path, tree.MustValueOf(def), tree.CoerceString, orEmpty(def))
}

// IntList returns the elements of the list at path as integers. Floats are
// truncated and unparseable elements become 0.
func (d *Document) IntList(path string) ([]int64, error) {
	return listOf(d, path, tree.Absent(), tree.CoerceInt, nil)
}

// IntListOr is IntList with a default, handled like StringListOr.
func (d *Document) IntListOr(path string, def []int64) ([]int64, error) {
	return listOf(d, path, tree.MustValueOf(def), tree.CoerceInt, orEmpty(def))
}

// FloatList returns the elements of the list at path as floats.
// Unparseable elements become 0.0.
func (d *Document) FloatList(path string) ([]float64, error) {
	return listOf(d, path, tree.Absent(), tree.CoerceFloat, nil)
}

// FloatListOr is FloatList with a default, handled like StringListOr.
func (d *Document) FloatListOr(path string, def []float64) ([]float64, error) {
	return listOf(d, path, tree.MustValueOf(def), tree.CoerceFloat, orEmpty(def))
}

// BoolList returns the elements of the list at path as booleans. Booleans
// are kept; any other element is true only when its text is "true".
func (d *Document) BoolList(path string) ([]bool, error) {
	return listOf(d, path, tree.Absent(), tree.CoerceBool, nil)
}

// BoolListOr is BoolList with a default, handled like StringListOr.
func (d *Document) BoolListOr(path string, def []bool) ([]bool, error) {
	return listOf(d, path, tree.MustValueOf(def), tree.CoerceBool, orEmpty(def))
}

// listOf resolves path and coerces a list element by element. A nil def
// means no default was given.
func listOf[T any](d *Document, path string, fallback tree.Value, coerce func(tree.Value) T, def []T) ([]T, error) {
	p, err := parsePath(path)
	if err != nil {
		return nil, err
	}

	if out, ok := tree.CoerceList(d.lookup(p, fallback), coerce); ok {
		return out, nil
	}

	if def == nil {
		return nil, notFound(path)
	}

	d.persist(p, fallback)

	return def, nil
}

func orEmpty[T any](def []T) []T {
	if def == nil {
		return []T{}
	}

	return def
}

// Dictionary returns a copy of the map at path.
func (d *Document) Dictionary(path string) (*tree.Map, error) {
	return d.dictionaryOf(path, nil)
}

// DictionaryOr is Dictionary with a default. When the value at path is not a
// map, def is stored and a copy of it returned. A nil def is an empty map.
func (d *Document) DictionaryOr(path string, def *tree.Map) (*tree.Map, error) {
	if def == nil {
		def = tree.NewMap()
	}

	return d.dictionaryOf(path, def)
}

func (d *Document) dictionaryOf(path string, def *tree.Map) (*tree.Map, error) {
	p, err := parsePath(path)
	if err != nil {
		return nil, err
	}

	fallback := tree.Absent()
	if def != nil {
		fallback = tree.Mapping(def)
	}

	if m, ok := d.lookup(p, fallback).AsMap(); ok {
		return m.Clone(), nil
	}

	if def == nil {
		return nil, notFound(path)
	}

	d.persist(p, fallback)

	return def.Clone(), nil
}
