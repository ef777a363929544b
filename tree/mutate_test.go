package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMap(t *testing.T, data map[string]any) *Map {
	t.Helper()

	m, err := MapOf(data)
	require.NoError(t, err)

	return m
}

func TestSet_CreatesIntermediateMaps(t *testing.T) {
	t.Parallel()

	root := NewMap()
	root.Set(MustParsePath("server.http.port"), String("8080"))

	want := map[string]any{
		"server": map[string]any{
			"http": map[string]any{"port": "8080"},
		},
	}

	if diff := cmp.Diff(want, root.Interface()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestSet_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		path  string
		value Value
	}{
		{name: "top level string", path: "name", value: String("app")},
		{name: "nested int", path: "a.b.c", value: Int(42)},
		{name: "float", path: "ratio", value: Float(0.5)},
		{name: "bool", path: "flags.debug", value: Bool(true)},
		{name: "list", path: "hosts", value: List(String("a"), Int(2))},
		{name: "map", path: "db", value: MustValueOf(map[string]any{"host": "localhost"})},
		{name: "null", path: "x.y", value: Null()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := NewMap()
			p := MustParsePath(tt.path)
			root.Set(p, tt.value)

			got, res := root.Resolve(p)
			require.Equal(t, Found, res.Outcome)
			assert.True(t, tt.value.Equal(got), "got %v, want %v", got, tt.value)
		})
	}
}

func TestSet_OverwriteKeepsOrder(t *testing.T) {
	t.Parallel()

	root := NewMap()
	root.Set(MustParsePath("a"), Int(1))
	root.Set(MustParsePath("b"), Int(2))
	root.Set(MustParsePath("c"), Int(3))
	root.Set(MustParsePath("b"), Int(20))

	assert.Equal(t, []string{"a", "b", "c"}, root.Keys())

	got, _ := root.Get("b")
	assert.True(t, Int(20).Equal(got))
}

func TestSet_DeleteCascadesPrune(t *testing.T) {
	t.Parallel()

	root := mustMap(t, map[string]any{
		"a": map[string]any{
			"b": map[string]any{
				"c": "leaf",
			},
		},
		"keep": "me",
	})

	root.Set(MustParsePath("a.b.c"), Absent())

	assert.False(t, root.Has("a"), "emptied ancestors must be pruned")
	assert.True(t, root.Has("keep"))
	assert.Equal(t, 1, root.Len())
}

func TestSet_DeleteStopsAtNonEmptyAncestor(t *testing.T) {
	t.Parallel()

	root := mustMap(t, map[string]any{
		"a": map[string]any{
			"b":       map[string]any{"c": "leaf"},
			"sibling": 1,
		},
	})

	root.Set(MustParsePath("a.b.c"), Absent())

	want := map[string]any{"a": map[string]any{"sibling": int64(1)}}
	if diff := cmp.Diff(want, root.Interface()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestSet_DeleteLastKeyLeavesEmptyRoot(t *testing.T) {
	t.Parallel()

	root := NewMap()
	root.Set(MustParsePath("only"), String("x"))
	root.Set(MustParsePath("only"), Absent())

	assert.Equal(t, 0, root.Len())
}

func TestSet_DeleteMissingIsNoop(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
	}{
		{name: "missing first segment", path: "nope.deeper"},
		{name: "missing leaf", path: "a.missing"},
		{name: "missing middle", path: "a.x.y"},
		{name: "through scalar", path: "a.b.c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := mustMap(t, map[string]any{"a": map[string]any{"b": "scalar"}})
			before := root.Clone()

			root.Set(MustParsePath(tt.path), Absent())

			assert.True(t, before.Equal(root), "tree changed: %v", root)
		})
	}
}

func TestMap_ZeroValueIsUsable(t *testing.T) {
	t.Parallel()

	var m Map

	m.Put("a", Int(1))
	m.Set(MustParsePath("b.c"), String("x"))
	m.Delete("a")

	assert.Equal(t, []string{"b"}, m.Keys())

	got, res := m.Resolve(MustParsePath("b.c"))
	require.Equal(t, Found, res.Outcome)
	assert.True(t, String("x").Equal(got))

	var nilMap *Map

	assert.NotPanics(t, func() { nilMap.Delete("a") })
}

func TestSet_TypeCollisionOverwrite(t *testing.T) {
	t.Parallel()

	root := NewMap()
	root.Set(MustParsePath("a.b"), String("X"))
	root.Set(MustParsePath("a"), String("Y"))

	got, res := root.Resolve(MustParsePath("a"))
	require.Equal(t, Found, res.Outcome)
	assert.True(t, String("Y").Equal(got))

	_, res = root.Resolve(MustParsePath("a.b"))
	assert.Equal(t, Blocked, res.Outcome)

	root.Set(MustParsePath("a.b.c"), Int(1))

	want := map[string]any{"a": map[string]any{"b": map[string]any{"c": int64(1)}}}
	if diff := cmp.Diff(want, root.Interface()); diff != "" {
		t.Errorf("collision overwrite mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_Outcomes(t *testing.T) {
	t.Parallel()

	root := mustMap(t, map[string]any{
		"server": map[string]any{"port": 8080, "tags": []any{"a"}},
	})

	tests := []struct {
		name    string
		path    string
		outcome Outcome
		depth   int
	}{
		{name: "found leaf", path: "server.port", outcome: Found, depth: 1},
		{name: "found map", path: "server", outcome: Found, depth: 0},
		{name: "missing top", path: "client", outcome: Missing, depth: 0},
		{name: "missing leaf", path: "server.host", outcome: Missing, depth: 1},
		{name: "blocked by scalar", path: "server.port.value", outcome: Blocked, depth: 1},
		{name: "blocked by list", path: "server.tags.first", outcome: Blocked, depth: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, res := root.Resolve(MustParsePath(tt.path))
			assert.Equal(t, tt.outcome, res.Outcome)
			assert.Equal(t, tt.depth, res.Depth)
		})
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	v := Build(Path{"a", "b"}, Int(1))

	want := map[string]any{"a": map[string]any{"b": int64(1)}}
	if diff := cmp.Diff(want, v.Interface()); diff != "" {
		t.Errorf("build mismatch (-want +got):\n%s", diff)
	}

	assert.True(t, Int(1).Equal(Build(nil, Int(1))))
}

func TestParsePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Path
		wantErr bool
	}{
		{input: "a", want: Path{"a"}},
		{input: "a.b.c", want: Path{"a", "b", "c"}},
		{input: "", wantErr: true},
		{input: ".", wantErr: true},
		{input: "a..b", wantErr: true},
		{input: "a.", wantErr: true},
		{input: ".a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePath(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPath)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}
