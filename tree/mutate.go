package tree

// Set writes v at p and returns m. An absent v deletes the entry at p and
// prunes every map the delete leaves empty. A non-map value found where p
// needs to descend is replaced by a fresh sub-tree holding v.
func (m *Map) Set(p Path, v Value) *Map {
	if len(p) == 0 {
		return m
	}

	return setIn(m, p, v)
}

func setIn(node *Map, p Path, v Value) *Map {
	key, rest := p[0], p[1:]

	current, exists := node.Get(key)
	if !exists {
		if !v.IsAbsent() {
			node.Put(key, Build(rest, v))
		}

		return node
	}

	if len(rest) == 0 {
		node.Put(key, v)

		return node
	}

	child, isMap := current.AsMap()
	if !isMap {
		// Deleting through a scalar leaves it alone.
		if !v.IsAbsent() {
			node.Put(key, Build(rest, v))
		}

		return node
	}

	child = setIn(child, rest, v)
	if child.Len() == 0 {
		node.Delete(key)
	}

	return node
}

// Build returns v nested under the segments of p, outermost first.
// An empty p returns v itself.
func Build(p Path, v Value) Value {
	for i := len(p) - 1; i >= 0; i-- {
		m := NewMap()
		m.Put(p[i], v)
		v = Mapping(m)
	}

	return v
}

// Outcome classifies a Resolve.
type Outcome uint8

const (
	// Found means every segment matched.
	Found Outcome = iota
	// Missing means a segment was not present.
	Missing
	// Blocked means a non-map value sits where more segments remain.
	Blocked
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Missing:
		return "missing"
	case Blocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Resolution reports how far a lookup got. Depth is the index of the segment
// that was missing or blocked.
type Resolution struct {
	Outcome Outcome
	Depth   int
}

// Resolve looks p up without modifying m. The returned Value shares storage
// with m.
func (m *Map) Resolve(p Path) (Value, Resolution) {
	node := m

	for depth, key := range p {
		current, exists := node.Get(key)
		if !exists {
			return Value{}, Resolution{Outcome: Missing, Depth: depth}
		}

		if depth == len(p)-1 {
			return current, Resolution{Outcome: Found, Depth: depth}
		}

		child, isMap := current.AsMap()
		if !isMap {
			return Value{}, Resolution{Outcome: Blocked, Depth: depth}
		}

		node = child
	}

	return Value{}, Resolution{Outcome: Missing}
}
