package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

const (
	JSONExtension = ".json"
	YAMLExtension = ".yaml"
	YMLExtension  = ".yml"
)

var ErrMissingKind = errors.New("missing document kind")

type Document struct {
	Kind string         `json:"kind"`
	Spec map[string]any `json:"spec"`

	Path string `json:"-"`
}

func Load(path string) ([]Document, error) {
	documents := make([]Document, 0)

	err := filepath.WalkDir(path, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			return nil
		}

		switch filepath.Ext(path) {
		case JSONExtension, YAMLExtension, YMLExtension:
		default:
			return nil
		}

		document, err := parseDocument(path)
		if err != nil {
			return fmt.Errorf("failed to parse document: %w", err)
		}

		documents = append(documents, document)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk through directory: %w", err)
	}

	return documents, nil
}

func parseDocument(path string) (Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read file: %w", err)
	}

	document := Document{Path: path}

	// YAML goes through sigs.k8s.io/yaml so the spec mapping comes out
	// JSON-shaped, like a decoded request body.
	switch filepath.Ext(path) {
	case JSONExtension:
		err = json.Unmarshal(content, &document)
	default:
		err = yaml.Unmarshal(content, &document)
	}
	if err != nil {
		return Document{}, fmt.Errorf("failed to unmarshal document %s: %w", path, err)
	}

	if document.Kind == "" {
		return Document{}, fmt.Errorf("%s: %w", path, ErrMissingKind)
	}

	return document, nil
}
