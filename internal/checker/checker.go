package checker

import (
	"context"
	"errors"
	"fmt"

	"github.com/dorgan-csgroup/SafeScale/internal/catalog"
	"github.com/dorgan-csgroup/SafeScale/pkg/serialize"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const DefaultConcurrency = 4

var ErrFailedDocuments = errors.New("documents failed to decode")

type Result struct {
	Path  string `yaml:"path"`
	Kind  string `yaml:"kind"`
	Error string `yaml:"error,omitempty"`
}

type Report struct {
	Checked int      `yaml:"checked"`
	Failed  int      `yaml:"failed"`
	Results []Result `yaml:"results"`
}

type Config struct {
	Concurrency int
}

type Checker struct {
	concurrency int
}

func (c *Checker) Run(ctx context.Context, documents []catalog.Document) (Report, error) {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(c.concurrency)

	results := make([]Result, len(documents))
	for i, document := range documents {
		i, document := i, document

		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = c.checkDocument(document)

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return Report{}, fmt.Errorf("failed to check documents: %w", err)
	}

	report := Report{
		Checked: len(results),
		Failed:  lo.CountBy(results, func(result Result) bool { return result.Error != "" }),
		Results: results,
	}

	return report, nil
}

func (c *Checker) checkDocument(document catalog.Document) Result {
	result := Result{Path: document.Path, Kind: document.Kind}

	if _, err := serialize.DecodeKind(document.Kind, document.Spec); err != nil {
		log.WithFields(log.Fields{"path": document.Path, "kind": document.Kind}).
			Warnf("document does not decode: %v", err)

		result.Error = err.Error()

		return result
	}

	log.WithFields(log.Fields{"path": document.Path, "kind": document.Kind}).
		Debug("document decoded")

	return result
}

func New(cfg Config) *Checker {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	return &Checker{concurrency: concurrency}
}
