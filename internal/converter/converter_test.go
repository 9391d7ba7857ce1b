package converter

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dorgan-csgroup/SafeScale/internal/catalog"
	"github.com/dorgan-csgroup/SafeScale/pkg/serialize"
	"github.com/stretchr/testify/assert"

	_ "github.com/dorgan-csgroup/SafeScale/pkg/models"
)

func Test_Run_JSON(t *testing.T) {
	dir := t.TempDir()

	documents := []catalog.Document{
		{
			Kind: "Subnet",
			Spec: map[string]any{
				"name":       "backend",
				"gatewayIds": []any{"h-gw-1"},
				"state":      float64(3),
				"labels":     map[string]any{"env": "dev"},
			},
			Path: "subnets/backend.yaml",
		},
	}

	paths, err := New(Config{Directory: dir, Format: FormatJSON}).Run(context.Background(), documents)
	assert.Nil(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "backend.json")}, paths)

	content, err := os.ReadFile(paths[0])
	assert.Nil(t, err)

	document := catalog.Document{}
	assert.Nil(t, json.Unmarshal(content, &document))
	assert.Equal(t, "Subnet", document.Kind)
	assert.Equal(t, map[string]any{
		"name":       "backend",
		"gatewayIds": []any{"h-gw-1"},
		"state":      "READY",
	}, document.Spec)
}

func Test_Run_YAML(t *testing.T) {
	dir := t.TempDir()

	documents := []catalog.Document{
		{
			Kind: "HostTemplate",
			Spec: map[string]any{"name": "small", "cores": float64(2)},
			Path: "templates/small.json",
		},
	}

	paths, err := New(Config{Directory: dir, Format: FormatYAML}).Run(context.Background(), documents)
	assert.Nil(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "small.yaml")}, paths)

	reloaded, err := catalog.Load(dir)
	assert.Nil(t, err)
	assert.Equal(t, []catalog.Document{
		{
			Kind: "HostTemplate",
			Spec: map[string]any{"name": "small", "cores": float64(2)},
			Path: filepath.Join(dir, "small.yaml"),
		},
	}, reloaded)
}

func Test_Run_UnknownFormat(t *testing.T) {
	_, err := New(Config{Directory: t.TempDir(), Format: "toml"}).Run(context.Background(), nil)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func Test_Run_UnknownKind(t *testing.T) {
	documents := []catalog.Document{
		{Kind: "Flavor", Spec: map[string]any{"name": "small"}, Path: "templates/flavor.yaml"},
	}

	_, err := New(Config{Directory: t.TempDir(), Format: FormatJSON}).Run(context.Background(), documents)
	assert.ErrorIs(t, err, serialize.ErrUnknownKind)
}

func Test_Run_MistypedDocument(t *testing.T) {
	documents := []catalog.Document{
		{Kind: "Subnet", Spec: map[string]any{"failover": "yes"}, Path: "subnets/backend.yaml"},
	}

	_, err := New(Config{Directory: t.TempDir(), Format: FormatJSON}).Run(context.Background(), documents)

	var decodeErr *serialize.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func Test_Run_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	documents := []catalog.Document{
		{Kind: "Subnet", Spec: map[string]any{"name": "backend"}, Path: "subnets/backend.yaml"},
	}

	_, err := New(Config{Directory: t.TempDir(), Format: FormatJSON}).Run(ctx, documents)
	assert.ErrorIs(t, err, context.Canceled)
}
