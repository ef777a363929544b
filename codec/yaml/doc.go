// Package yaml provides the YAML adapter for documents.
//
// This package uses github.com/goccy/go-yaml. Mappings are decoded with
// UseOrderedMap so key order survives a load/save cycle, and anchors and
// aliases are resolved on load. Documents are written in block style with a
// two-space indent:
//
//	server:
//	  port: 8080
//	  hosts:
//	    - a.example.com
//
// The top level of a document must be a mapping. Empty content loads as an
// empty document.
package yaml
