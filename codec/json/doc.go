// Package json provides the JSON adapter for documents.
//
// Objects are decoded token by token so key order is preserved, and written
// back with tab indentation in the same order. Comments and trailing commas
// are not accepted. The top level of a document must be an object.
package json
