// Package report downloads genome link trait reports and normalizes
// their summaries for speech.
package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ultradian/alexa-genome-match/internal/model/genome"
)

// DefaultFetchTimeout bounds each individual trait request.
const DefaultFetchTimeout = 10 * time.Second

// FetchError reports which trait downloads failed.
type FetchError struct {
	Failed []string
}

func (e *FetchError) Error() string {
	return "report fetch failed for traits: " + strings.Join(e.Failed, ", ")
}

// Fetcher downloads the full trait list concurrently.
type Fetcher struct {
	provider Provider
	timeout  time.Duration
	logger   *zap.Logger
}

// NewFetcher wraps provider with fan-out fetching. A non-positive
// timeout falls back to DefaultFetchTimeout.
func NewFetcher(provider Provider, timeout time.Duration, logger *zap.Logger) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Fetcher{provider: provider, timeout: timeout, logger: logger}
}

// FetchAll requests every trait in genome.Traits in parallel and blocks
// until all complete. On success the returned record is complete, with
// each summary text already cleaned for speech. Any individual failure
// fails the whole load; the returned FetchError names the traits whose
// own fetches erred (sibling fetches cancelled mid-flight are not
// blamed). No partial record is ever returned.
func (f *Fetcher) FetchAll(ctx context.Context, token string) (genome.TraitRecord, error) {
	summaries := make([]Summary, len(genome.Traits))
	fetchErrs := make([]error, len(genome.Traits))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, trait := range genome.Traits {
		i, trait := i, trait
		eg.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(egCtx, f.timeout)
			defer cancel()

			summary, err := f.provider.Fetch(fetchCtx, trait, token)
			if err != nil {
				fetchErrs[i] = err
				return fmt.Errorf("trait %s: %w", trait, err)
			}
			summaries[i] = summary
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		failed := make([]string, 0, len(genome.Traits))
		for i, trait := range genome.Traits {
			if fetchErrs[i] != nil && !errors.Is(fetchErrs[i], context.Canceled) {
				failed = append(failed, trait)
			}
		}
		f.logger.Warn("report download failed",
			zap.Strings("traits", failed),
			zap.Error(err))
		return nil, &FetchError{Failed: failed}
	}

	record := make(genome.TraitRecord, len(genome.Traits))
	for i, trait := range genome.Traits {
		record[trait] = genome.TraitValue{
			Score:  summaries[i].Score,
			Phrase: CleanPhrase(trait, summaries[i].Text),
		}
	}
	return record, nil
}
