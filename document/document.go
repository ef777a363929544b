package document

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/dotconf/codec"
	"github.com/0xalexb/dotconf/storage/file"
	"github.com/0xalexb/dotconf/tree"
)

var (
	// ErrInvalidArgument is returned for empty paths, malformed dotted paths
	// and missing collaborators.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned by typed getters when there is no usable value
	// and no default applies.
	ErrNotFound = errors.New("value not found")
)

// Document is a tree of values backed by one file.
//
// A Document is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
type Document struct {
	path            string
	codec           codec.Codec
	root            *tree.Map
	logger          *slog.Logger
	persistDefaults bool
}

// New creates a document for path using c to read and write it. When the file
// exists it is loaded; otherwise the document starts empty and the file is
// only created by Save. A directory, or a file that cannot be both read and
// written, fails construction.
func New(path string, c codec.Codec, opts ...Option) (*Document, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: file path must not be empty", ErrInvalidArgument)
	}

	if c == nil {
		return nil, fmt.Errorf("%w: codec must not be nil", ErrInvalidArgument)
	}

	cfg := options{
		logger:          nil,
		persistDefaults: true,
	}

	for _, apply := range opts {
		apply(&cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	doc := &Document{
		path:            path,
		codec:           c,
		root:            tree.NewMap(),
		logger:          logger.With(slog.String("document", path), slog.String("format", c.Name())),
		persistDefaults: cfg.persistDefaults,
	}

	exists, err := file.Check(path)
	if err != nil {
		return nil, err
	}

	if exists {
		err = doc.Reload()
		if err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// Path returns the backing file path.
func (d *Document) Path() string {
	return d.path
}

// Codec returns the format the document is read and written with.
func (d *Document) Codec() codec.Codec { //nolint:ireturn // the codec is chosen at construction
	return d.codec
}

// Reload replaces the in-memory tree with the file contents.
func (d *Document) Reload() error {
	data, err := file.Read(d.path)
	if err != nil {
		return err
	}

	root, err := d.codec.Decode(data)
	if err != nil {
		return fmt.Errorf("loading %q: %w", d.path, err)
	}

	d.root = root
	d.logger.Debug("document loaded", slog.Int("keys", root.Len()))

	return nil
}

// Save writes the tree to the backing file, creating parent directories.
func (d *Document) Save() error {
	data, err := d.codec.Encode(d.root)
	if err != nil {
		return fmt.Errorf("%w: encoding %q: %w", file.ErrWrite, d.path, err)
	}

	err = file.Write(d.path, data)
	if err != nil {
		return err
	}

	d.logger.Debug("document saved", slog.Int("bytes", len(data)))

	return nil
}

// Root returns a deep copy of the whole tree.
func (d *Document) Root() *tree.Map {
	return d.root.Clone()
}

// Replace swaps the whole tree for a copy of root. A nil root empties the document.
func (d *Document) Replace(root *tree.Map) {
	d.root = root.Clone()
}

// Contains reports whether key is a top-level entry. The key is not split
// on dots.
func (d *Document) Contains(key string) bool {
	return d.root.Has(key)
}

// Keys returns the top-level keys in document order.
func (d *Document) Keys() []string {
	return d.root.Keys()
}

// Set stores a copy of v at the dotted path. An absent v deletes the entry
// and prunes the maps the delete leaves empty. A non-map value in the way of
// the path is replaced.
func (d *Document) Set(path string, v tree.Value) error {
	p, err := parsePath(path)
	if err != nil {
		return err
	}

	d.root.Set(p, v.Clone())

	return nil
}

// Delete removes the entry at the dotted path. Missing paths are ignored.
func (d *Document) Delete(path string) error {
	return d.Set(path, tree.Absent())
}

// Get returns a copy of the value at the dotted path, or an absent Value.
// It never modifies the document.
func (d *Document) Get(path string) (tree.Value, error) {
	return d.GetOr(path, tree.Absent())
}

// GetOr is Get with a default. When the path is missing and def is not
// absent, def is stored at the path and returned: a read can write.
// When a non-map value sits in the way of the path, a warning is logged and
// an absent Value is returned regardless of def.
func (d *Document) GetOr(path string, def tree.Value) (tree.Value, error) {
	p, err := parsePath(path)
	if err != nil {
		return tree.Value{}, err
	}

	return d.lookup(p, def).Clone(), nil
}

func (d *Document) lookup(p tree.Path, def tree.Value) tree.Value {
	v, res := d.root.Resolve(p)

	switch res.Outcome {
	case tree.Found:
		return v
	case tree.Blocked:
		d.logger.Warn("path runs through a value that is not a map",
			slog.String("path", p.String()),
			slog.String("blocked_at", p[:res.Depth+1].String()),
		)

		return tree.Absent()
	case tree.Missing:
		if def.IsAbsent() {
			return tree.Absent()
		}

		d.persist(p, def)

		return def
	default:
		return tree.Absent()
	}
}

func (d *Document) persist(p tree.Path, v tree.Value) {
	if !d.persistDefaults {
		return
	}

	d.root.Set(p, v.Clone())
	d.logger.Debug("default stored", slog.String("path", p.String()), slog.String("value", v.String()))
}

func parsePath(path string) (tree.Path, error) {
	p, err := tree.ParsePath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return p, nil
}

func notFound(path string) error {
	return fmt.Errorf("%w: %q", ErrNotFound, path)
}
