// Package dotconf reads and writes nested configuration values in JSON and
// YAML files through dotted paths such as "server.port".
//
// Open picks the format from the file extension:
//
//	doc, err := dotconf.Open("config/app.yaml")
//	if err != nil {
//	    // directory, permission or parse failure
//	}
//	port, err := doc.IntOr("server.port", 8080)
//	_ = doc.Set("server.host", tree.String("0.0.0.0"))
//	err = doc.Save()
//
// The conversion helpers move a whole tree between formats:
//
//	_, err := dotconf.JSONFileToYAMLFile("app.json", "app.yaml", true)
//
// Documents are not safe for concurrent use.
package dotconf
