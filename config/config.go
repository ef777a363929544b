package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/goccy/go-yaml"

	yamlcodec "github.com/0xalexb/dotconf/codec/yaml"
	"github.com/0xalexb/dotconf/tree"
)

// ErrPathNotFound is returned when the requested section is not in the document.
var ErrPathNotFound = errors.New("path not found")

// Source is the read side of a document. *document.Document implements it.
type Source interface {
	Get(path string) (tree.Value, error)
	Root() *tree.Map
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that reads the section at path from a document,
// decodes it into target, sets defaults and validates it.
// An empty path decodes the whole document.
func Provider[T any](target *T, path string) func(Source) (*T, error) {
	return func(source Source) (*T, error) {
		section, err := lookup(source, path)
		if err != nil {
			return nil, fmt.Errorf("reading section error: %w", err)
		}

		err = Decode(section, target)
		if err != nil {
			return nil, fmt.Errorf("decoding error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}

func lookup(source Source, path string) (tree.Value, error) {
	if path == "" {
		return tree.Mapping(source.Root()), nil
	}

	v, err := source.Get(path)
	if err != nil {
		return tree.Value{}, err
	}

	if v.IsAbsent() {
		return tree.Value{}, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	return v, nil
}

// Decode unmarshals v into target using the target's yaml struct tags.
func Decode(v tree.Value, target any) error {
	data, err := yamlcodec.EncodeValue(v)
	if err != nil {
		return err
	}

	err = yaml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}
