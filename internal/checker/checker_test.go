package checker

import (
	"context"
	"testing"

	"github.com/dorgan-csgroup/SafeScale/internal/catalog"
	"github.com/stretchr/testify/assert"

	_ "github.com/dorgan-csgroup/SafeScale/pkg/models"
)

func Test_Run(t *testing.T) {
	documents := []catalog.Document{
		{
			Kind: "HostTemplate",
			Spec: map[string]any{"name": "small", "cores": float64(2), "gpuCount": float64(1)},
			Path: "templates/small.yaml",
		},
		{
			Kind: "Flavor",
			Spec: map[string]any{"name": "small"},
			Path: "templates/flavor.yaml",
		},
		{
			Kind: "Subnet",
			Spec: map[string]any{"failover": "yes"},
			Path: "subnets/backend.yaml",
		},
	}

	report, err := New(Config{Concurrency: 2}).Run(context.Background(), documents)
	assert.Nil(t, err)

	assert.Equal(t, 3, report.Checked)
	assert.Equal(t, 2, report.Failed)

	assert.Equal(t, "templates/small.yaml", report.Results[0].Path)
	assert.Equal(t, "HostTemplate", report.Results[0].Kind)
	assert.Empty(t, report.Results[0].Error)

	assert.Equal(t, "templates/flavor.yaml", report.Results[1].Path)
	assert.NotEmpty(t, report.Results[1].Error)

	assert.Equal(t, "subnets/backend.yaml", report.Results[2].Path)
	assert.NotEmpty(t, report.Results[2].Error)
}

func Test_Run_NoDocuments(t *testing.T) {
	report, err := New(Config{}).Run(context.Background(), nil)
	assert.Nil(t, err)
	assert.Equal(t, Report{Results: []Result{}}, report)
}

func Test_Run_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{}).Run(ctx, []catalog.Document{{Kind: "Subnet", Path: "subnets/backend.yaml"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func Test_New(t *testing.T) {
	assert.Equal(t, DefaultConcurrency, New(Config{}).concurrency)
	assert.Equal(t, DefaultConcurrency, New(Config{Concurrency: -1}).concurrency)
	assert.Equal(t, 8, New(Config{Concurrency: 8}).concurrency)
}
