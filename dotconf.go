package dotconf

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/0xalexb/dotconf/codec"
	jsoncodec "github.com/0xalexb/dotconf/codec/json"
	yamlcodec "github.com/0xalexb/dotconf/codec/yaml"
	"github.com/0xalexb/dotconf/document"
)

// ErrUnknownFormat is returned when no codec handles a file extension.
var ErrUnknownFormat = errors.New("unknown document format")

// ErrInvalidArgument is document.ErrInvalidArgument.
var ErrInvalidArgument = document.ErrInvalidArgument

// Codecs returns the supported formats.
func Codecs() []codec.Codec {
	return []codec.Codec{jsoncodec.New(), yamlcodec.New()}
}

// CodecFor picks the codec handling the extension of path.
func CodecFor(path string) (codec.Codec, error) { //nolint:ireturn // the concrete codec depends on the extension
	ext := strings.ToLower(filepath.Ext(path))

	for _, c := range Codecs() {
		if slices.Contains(c.Extensions(), ext) {
			return c, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Open creates a document for path, choosing JSON or YAML from the file extension.
func Open(path string, opts ...document.Option) (*document.Document, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: file path must not be empty", ErrInvalidArgument)
	}

	c, err := CodecFor(path)
	if err != nil {
		return nil, err
	}

	return document.New(path, c, opts...)
}

// OpenJSON creates a JSON document for path regardless of its extension.
func OpenJSON(path string, opts ...document.Option) (*document.Document, error) {
	return document.New(path, jsoncodec.New(), opts...)
}

// OpenYAML creates a YAML document for path regardless of its extension.
func OpenYAML(path string, opts ...document.Option) (*document.Document, error) {
	return document.New(path, yamlcodec.New(), opts...)
}
