package config

import (
	"errors"
	"testing"

	"github.com/0xalexb/dotconf/tree"
)

type mockSource struct {
	root   *tree.Map
	getErr error
}

func (m *mockSource) Get(path string) (tree.Value, error) {
	if m.getErr != nil {
		return tree.Value{}, m.getErr
	}

	p, err := tree.ParsePath(path)
	if err != nil {
		return tree.Value{}, err
	}

	v, _ := m.root.Resolve(p)

	return v, nil
}

func (m *mockSource) Root() *tree.Map {
	return m.root.Clone()
}

func newSource(t *testing.T, data map[string]any) *mockSource {
	t.Helper()

	root, err := tree.MapOf(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return &mockSource{root: root}
}

type simpleConfig struct {
	Name string `yaml:"name"`
	Port int    `yaml:"port"`
}

type configWithDefaults struct {
	Name    string `yaml:"name"`
	changed bool
}

func (c *configWithDefaults) SetDefaults() bool {
	return c.changed
}

type configWithValidator struct {
	Name string `yaml:"name"`
	err  error
}

func (c *configWithValidator) Validate() error {
	return c.err
}

type configWithBoth struct {
	Name    string `yaml:"name"`
	changed bool
	err     error
}

func (c *configWithBoth) SetDefaults() bool {
	return c.changed
}

func (c *configWithBoth) Validate() error {
	return c.err
}

func TestProvider_Success(t *testing.T) {
	t.Parallel()

	source := newSource(t, map[string]any{
		"services": map[string]any{
			"api": map[string]any{"name": "test", "port": 8080},
		},
	})

	target := &simpleConfig{}
	provider := Provider(target, "services.api")

	result, err := provider(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != target {
		t.Error("expected result to be the same as target")
	}

	if result.Name != "test" {
		t.Errorf("expected Name to be 'test', got %q", result.Name)
	}

	if result.Port != 8080 {
		t.Errorf("expected Port to be 8080, got %d", result.Port)
	}
}

func TestProvider_EmptyPathDecodesWholeDocument(t *testing.T) {
	t.Parallel()

	source := newSource(t, map[string]any{"name": "root", "port": 1})

	result, err := Provider(&simpleConfig{}, "")(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Name != "root" || result.Port != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestProvider_WithValidation_Success(t *testing.T) {
	t.Parallel()

	source := newSource(t, map[string]any{"app": map[string]any{"name": "x"}})
	target := &configWithValidator{err: nil}

	result, err := Provider(target, "app")(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != target {
		t.Error("expected result to be the same as target")
	}
}

func TestProvider_WithDefaultsAndValidation_Success(t *testing.T) {
	t.Parallel()

	source := newSource(t, map[string]any{"app": map[string]any{"name": "x"}})
	target := &configWithBoth{changed: true, err: nil}

	result, err := Provider(target, "app")(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != target {
		t.Error("expected result to be the same as target")
	}

	if result.Name != "x" {
		t.Errorf("expected Name to be 'x', got %q", result.Name)
	}
}

func TestProvider_Errors(t *testing.T) {
	t.Parallel()

	getErr := errors.New("get failed")
	validationErr := errors.New("validation failed")

	tests := []struct {
		name      string
		path      string
		getErr    error
		targetErr error
		wantErr   error
	}{
		{
			name:    "source error",
			path:    "app",
			getErr:  getErr,
			wantErr: getErr,
		},
		{
			name:    "missing section",
			path:    "missing.section",
			wantErr: ErrPathNotFound,
		},
		{
			name:    "blocked section",
			path:    "app.name.inner",
			wantErr: ErrPathNotFound,
		},
		{
			name:    "invalid path",
			path:    "app..name",
			wantErr: tree.ErrInvalidPath,
		},
		{
			name:      "validation error",
			path:      "app",
			targetErr: validationErr,
			wantErr:   validationErr,
		},
	}

	for _, testInfo := range tests {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			source := newSource(t, map[string]any{"app": map[string]any{"name": "x"}})
			source.getErr = testInfo.getErr

			target := &configWithBoth{err: testInfo.targetErr}

			result, err := Provider(target, testInfo.path)(source)

			if result != nil {
				t.Error("expected result to be nil")
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}

			if !errors.Is(err, testInfo.wantErr) {
				t.Errorf("expected error to wrap %v, got %v", testInfo.wantErr, err)
			}
		})
	}
}

func TestProvider_DecodeError(t *testing.T) {
	t.Parallel()

	source := newSource(t, map[string]any{"app": map[string]any{"port": "not a number"}})

	result, err := Provider(&simpleConfig{}, "app")(source)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if result != nil {
		t.Error("expected result to be nil")
	}
}

func TestProvider_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		changed bool
	}{
		{
			name:    "defaults changed",
			changed: true,
		},
		{
			name:    "defaults not changed",
			changed: false,
		},
	}

	for _, testInfo := range tests {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			source := newSource(t, map[string]any{"app": map[string]any{"name": "x"}})
			target := &configWithDefaults{changed: testInfo.changed}

			result, err := Provider(target, "app")(source)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result != target {
				t.Error("expected result to be the same as target")
			}
		})
	}
}

func TestDecode_Scalar(t *testing.T) {
	t.Parallel()

	var port int

	err := Decode(tree.Int(9090), &port)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if port != 9090 {
		t.Errorf("expected 9090, got %d", port)
	}
}
