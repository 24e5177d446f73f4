// Package harvest aggregates arXiv search results across queries and
// categories and computes the derived columns on the result.
package harvest

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/matsen/arxtab/internal/record"
)

// DefaultCategory is used when no category is given.
const DefaultCategory = "quant-ph"

// Fetcher issues one search request for a (query, category) pair.
// *arxiv.Client satisfies this; tests substitute a fixture.
type Fetcher interface {
	Search(ctx context.Context, query, category string, maxResults int) ([]record.Record, error)
}

// Option configures a Harvester.
type Option func(*Harvester)

// WithLogger sets the logger for progress messages.
func WithLogger(log zerolog.Logger) Option {
	return func(h *Harvester) {
		h.log = log
	}
}

// WithKeepGoing makes per-fetch transport failures non-fatal: failed pairs
// are logged and skipped, and aggregation continues with partial results.
func WithKeepGoing() Option {
	return func(h *Harvester) {
		h.keepGoing = true
	}
}

// Harvester runs fetches over the cross product of queries and categories
// and merges the results into one deduplicated record set.
type Harvester struct {
	fetcher   Fetcher
	log       zerolog.Logger
	keepGoing bool
}

// New creates a Harvester backed by the given fetcher.
func New(fetcher Fetcher, opts ...Option) *Harvester {
	h := &Harvester{
		fetcher: fetcher,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Harvest aggregates all (query, category) pairs and fills in the derived
// columns. This is the whole pipeline short of saving.
func (h *Harvester) Harvest(ctx context.Context, queries, categories []string, maxResults int) ([]record.Record, error) {
	records, err := h.Aggregate(ctx, queries, categories, maxResults)
	if err != nil {
		return nil, err
	}
	return Derive(records), nil
}

// Aggregate fetches every (query, category) pair in the cross product, in
// enumeration order, concatenates the results, and keeps the first
// occurrence of each arxiv_id. Empty inputs fall back to a single empty
// query and the default category.
func (h *Harvester) Aggregate(ctx context.Context, queries, categories []string, maxResults int) ([]record.Record, error) {
	if len(queries) == 0 {
		queries = []string{""}
	}
	if len(categories) == 0 {
		categories = []string{DefaultCategory}
	}

	var all []record.Record
	for _, query := range queries {
		for _, category := range categories {
			records, err := h.fetcher.Search(ctx, query, category, maxResults)
			if err != nil {
				if h.keepGoing {
					h.log.Warn().Err(err).Str("query", query).Str("category", category).Msg("fetch failed, skipping")
					continue
				}
				return nil, fmt.Errorf("fetching query %q category %q: %w", query, category, err)
			}
			all = append(all, records...)
		}
	}

	deduped := Dedup(all)
	h.log.Info().Int("total", len(deduped)).Msg("aggregation complete")
	return deduped, nil
}

// Dedup keeps the first occurrence of each arxiv_id, preserving order.
func Dedup(records []record.Record) []record.Record {
	seen := make(map[string]bool, len(records))
	out := make([]record.Record, 0, len(records))
	for _, rec := range records {
		if seen[rec.ArXivID] {
			continue
		}
		seen[rec.ArXivID] = true
		out = append(out, rec)
	}
	return out
}
