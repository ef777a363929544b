// Package document provides Document, a tree of values read from and written
// to one JSON or YAML file and addressed with dotted paths.
//
// # Reading
//
// Get and the typed getters never fail because a value is missing: Get
// returns an absent Value and the typed getters return ErrNotFound. Each typed
// getter has an Or form taking a default:
//
//	port, err := doc.IntOr("server.port", 8080)
//
// When the path is missing, or for IntOr, FloatOr and the list and
// dictionary getters also when the stored value does not fit the requested
// type, the default is written into the tree and returned. Save makes it
// permanent. WithDefaultPersistence(false) turns the write off.
//
// Stored values are coerced through their text: 8080, "8080" and 8080.0 are
// different values, and only the first two read back through Int.
//
// # Writing
//
// Set creates missing intermediate maps, replaces a non-map value in the way
// of the path and, given an absent Value, deletes and prunes emptied maps.
// Nothing reaches the file until Save.
package document
