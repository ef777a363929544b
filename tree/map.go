package tree

import (
	"iter"
	"maps"
	"slices"
)

// Map is a string-keyed map that remembers insertion order.
// Overwriting a key keeps its position; deleting it drops it from the order.
type Map struct {
	keys   []string
	values map[string]Value
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{values: make(map[string]Value)}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Has reports whether key is a direct entry of m.
func (m *Map) Has(key string) bool {
	if m == nil {
		return false
	}

	_, ok := m.values[key]

	return ok
}

// Get returns the entry stored under key.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}

	v, ok := m.values[key]

	return v, ok
}

// Put stores v under key. An absent v deletes the key.
func (m *Map) Put(key string, v Value) {
	if v.IsAbsent() {
		m.Delete(key)

		return
	}

	if m.values == nil {
		m.values = make(map[string]Value)
	}

	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.values[key] = v
}

// Delete removes key. Missing keys are ignored.
func (m *Map) Delete(key string) {
	if m == nil {
		return
	}

	if _, ok := m.values[key]; !ok {
		return
	}

	delete(m.values, key)

	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}

	return slices.Clone(m.keys)
}

// All iterates the entries in insertion order.
func (m *Map) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if m == nil {
			return
		}

		for _, key := range m.keys {
			if !yield(key, m.values[key]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of m.
func (m *Map) Clone() *Map {
	out := NewMap()
	if m == nil {
		return out
	}

	out.keys = slices.Clone(m.keys)
	for key, v := range m.values {
		out.values[key] = v.Clone()
	}

	return out
}

// Equal reports whether both maps hold equal entries in the same order.
func (m *Map) Equal(other *Map) bool {
	if m.Len() != other.Len() {
		return false
	}

	if m.Len() == 0 {
		return true
	}

	if !slices.Equal(m.keys, other.keys) {
		return false
	}

	for key, v := range m.values {
		if !v.Equal(other.values[key]) {
			return false
		}
	}

	return true
}

// String renders m the same way a map Value renders.
func (m *Map) String() string {
	return Mapping(m).String()
}

// MapOf builds a Map from a Go map, with keys in sorted order.
func MapOf(data map[string]any) (*Map, error) {
	v, err := ValueOf(data)
	if err != nil {
		return nil, err
	}

	m, _ := v.AsMap()

	return m, nil
}

func sortedKeys(data map[string]any) []string {
	return slices.Sorted(maps.Keys(data))
}

// Interface returns m as a plain Go map.
func (m *Map) Interface() map[string]any {
	out := make(map[string]any, m.Len())
	for key, v := range m.All() {
		out[key] = v.Interface()
	}

	return out
}
