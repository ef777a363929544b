// Package tree holds the in-memory model behind a document: a closed Value
// sum type, an insertion-ordered Map and the dotted-path surgery that
// inserts, updates and deletes values at any depth.
//
// Paths are split on "." and every segment is an opaque key:
//
//	"server.port"        -> root["server"]["port"]
//	"db.primary.host"    -> root["db"]["primary"]["host"]
//
// Writes create missing intermediate maps and replace a non-map value that
// sits in the way. Deletes prune every map they leave empty, up to but not
// including the root.
//
// Nothing in this package is safe for concurrent mutation.
package tree
