package tree

import (
	"errors"
	"fmt"
	"strings"
)

// Separator splits a dotted path into segments.
const Separator = "."

// ErrInvalidPath is returned for empty paths and paths with empty segments.
var ErrInvalidPath = errors.New("invalid path")

// Path is a parsed dotted path: one or more non-empty segments.
type Path []string

// ParsePath splits s on the separator. Literal dots inside a key cannot be
// expressed.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPath)
	}

	segments := strings.Split(s, Separator)
	for i, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: %q has an empty segment at position %d", ErrInvalidPath, s, i)
		}
	}

	return Path(segments), nil
}

// MustParsePath is ParsePath for literals known to be valid.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}

	return p
}

// String joins the segments back into dotted form.
func (p Path) String() string {
	return strings.Join(p, Separator)
}
