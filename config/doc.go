// Package config binds sections of a document to typed configuration structs.
//
// The package uses an interface-based design with three extension points:
//   - Source: the document to read from (*document.Document)
//   - Validator: validates config after decoding
//   - Defaulter: applies default values before validation
//
// # Path Navigation
//
// The Provider function accepts a dotted path selecting the section to
// decode:
//
//	"api.permissions"           -> doc["api"]["permissions"]
//	"database.connection"       -> doc["database"]["connection"]
//	""                          -> entire document
//
// Sections are decoded with goccy/go-yaml, so structs use yaml tags whatever
// the format of the file.
//
// # Example
//
// A typical usage pattern:
//
//	type APIConfig struct {
//	    Timeout int    `yaml:"timeout"`
//	    BaseURL string `yaml:"base_url"`
//	}
//
//	doc, _ := dotconf.Open("config.yaml")
//	cfg, err := config.Provider(&APIConfig{}, "services.api")(doc)
package config
