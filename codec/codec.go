// Package codec defines the capability a document format supplies: turning
// bytes into a root map and back. The JSON and YAML adapters live in the
// json and yaml subpackages.
package codec

import (
	"errors"

	"github.com/0xalexb/dotconf/tree"
)

// ErrMalformed is returned when content cannot be decoded into a root map.
var ErrMalformed = errors.New("malformed document")

// ErrUnencodable is returned when a tree holds a value the format cannot express.
var ErrUnencodable = errors.New("value cannot be encoded")

// Codec encodes and decodes documents of one format.
type Codec interface {
	// Name is the format name, e.g. "json".
	Name() string
	// Extensions lists the file extensions of the format, dot included.
	Extensions() []string
	// Decode parses data into a root map. Failures wrap ErrMalformed.
	Decode(data []byte) (*tree.Map, error)
	// Encode serializes root in the format's native layout.
	Encode(root *tree.Map) ([]byte, error)
}
