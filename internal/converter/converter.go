package converter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dorgan-csgroup/SafeScale/internal/catalog"
	"github.com/dorgan-csgroup/SafeScale/pkg/serialize"
	log "github.com/sirupsen/logrus"
	"sigs.k8s.io/yaml"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var ErrUnknownFormat = errors.New("unknown format")

type Config struct {
	Directory string
	Format    string
}

type Converter struct {
	directory string
	format    string
}

func (c *Converter) Run(ctx context.Context, documents []catalog.Document) ([]string, error) {
	if c.format != FormatJSON && c.format != FormatYAML {
		return nil, fmt.Errorf("%q: %w", c.format, ErrUnknownFormat)
	}

	if err := os.MkdirAll(c.directory, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, 0, len(documents))
	for _, document := range documents {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path, err := c.convertDocument(document)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s: %w", document.Path, err)
		}

		log.WithFields(log.Fields{"path": document.Path, "output": path}).
			Debug("document converted")

		paths = append(paths, path)
	}

	return paths, nil
}

func (c *Converter) convertDocument(document catalog.Document) (string, error) {
	entity, err := serialize.DecodeKind(document.Kind, document.Spec)
	if err != nil {
		return "", fmt.Errorf("failed to decode document: %w", err)
	}

	spec, err := serialize.Encode(entity)
	if err != nil {
		return "", fmt.Errorf("failed to encode entity: %w", err)
	}

	out := catalog.Document{Kind: document.Kind, Spec: spec}

	var content []byte
	switch c.format {
	case FormatJSON:
		content, err = json.MarshalIndent(out, "", "  ")
	case FormatYAML:
		content, err = yaml.Marshal(out)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal document: %w", err)
	}

	name := filepath.Base(document.Path)
	name = strings.TrimSuffix(name, filepath.Ext(name)) + "." + c.format

	path := filepath.Join(c.directory, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write document: %w", err)
	}

	return path, nil
}

func New(cfg Config) *Converter {
	return &Converter{directory: cfg.Directory, format: cfg.Format}
}
