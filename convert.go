package dotconf

import (
	"fmt"

	"github.com/0xalexb/dotconf/document"
	"github.com/0xalexb/dotconf/tree"
)

// Convert copies the whole tree of src into dst, replacing what dst held,
// and saves dst when save is set. The formats of src and dst may differ.
func Convert(src, dst *document.Document, save bool) error {
	if src == nil || dst == nil {
		return fmt.Errorf("%w: source and destination documents must not be nil", ErrInvalidArgument)
	}

	return assign(dst, src.Root(), save)
}

// ToJSONFile creates a JSON document at path holding root, saving it when
// save is set.
func ToJSONFile(path string, root *tree.Map, save bool) (*document.Document, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: root must not be nil", ErrInvalidArgument)
	}

	dst, err := OpenJSON(path)
	if err != nil {
		return nil, err
	}

	return dst, assign(dst, root, save)
}

// ToYAMLFile creates a YAML document at path holding root, saving it when
// save is set.
func ToYAMLFile(path string, root *tree.Map, save bool) (*document.Document, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: root must not be nil", ErrInvalidArgument)
	}

	dst, err := OpenYAML(path)
	if err != nil {
		return nil, err
	}

	return dst, assign(dst, root, save)
}

// JSONFileToMap loads the JSON file at path and returns its tree.
func JSONFileToMap(path string) (*tree.Map, error) {
	doc, err := OpenJSON(path)
	if err != nil {
		return nil, err
	}

	return doc.Root(), nil
}

// YAMLFileToMap loads the YAML file at path and returns its tree.
func YAMLFileToMap(path string) (*tree.Map, error) {
	doc, err := OpenYAML(path)
	if err != nil {
		return nil, err
	}

	return doc.Root(), nil
}

// JSONFileToYAMLFile copies the JSON file at jsonPath into a YAML document at
// yamlPath, saving it when save is set.
func JSONFileToYAMLFile(jsonPath, yamlPath string, save bool) (*document.Document, error) {
	if yamlPath == "" {
		return nil, fmt.Errorf("%w: yaml path must not be empty", ErrInvalidArgument)
	}

	root, err := JSONFileToMap(jsonPath)
	if err != nil {
		return nil, err
	}

	return ToYAMLFile(yamlPath, root, save)
}

// YAMLFileToJSONFile copies the YAML file at yamlPath into a JSON document at
// jsonPath, saving it when save is set.
func YAMLFileToJSONFile(yamlPath, jsonPath string, save bool) (*document.Document, error) {
	if jsonPath == "" {
		return nil, fmt.Errorf("%w: json path must not be empty", ErrInvalidArgument)
	}

	root, err := YAMLFileToMap(yamlPath)
	if err != nil {
		return nil, err
	}

	return ToJSONFile(jsonPath, root, save)
}

func assign(dst *document.Document, root *tree.Map, save bool) error {
	dst.Replace(root)

	if !save {
		return nil
	}

	err := dst.Save()
	if err != nil {
		return fmt.Errorf("saving %q: %w", dst.Path(), err)
	}

	return nil
}
