package harvest

import (
	"context"
	"errors"
	"testing"

	"github.com/matsen/arxtab/internal/record"
)

// fakeFetcher records the (query, category) pairs it was called with and
// serves canned results keyed by "query|category".
type fakeFetcher struct {
	calls   []string
	results map[string][]record.Record
	errs    map[string]error
}

func (f *fakeFetcher) Search(ctx context.Context, query, category string, maxResults int) ([]record.Record, error) {
	key := query + "|" + category
	f.calls = append(f.calls, key)
	if err := f.errs[key]; err != nil {
		return nil, err
	}
	return f.results[key], nil
}

func rec(id, title string) record.Record {
	return record.Record{
		ArXivID:       id,
		UpdatedDate:   "2021-03-20T17:00:00Z",
		PublishedDate: "2021-03-15T00:00:00Z",
		Title:         title,
		Authors:       []string{"Alice Example"},
		Categories:    []string{"quant-ph"},
	}
}

func TestAggregateCrossProduct(t *testing.T) {
	fetcher := &fakeFetcher{results: map[string][]record.Record{}}
	h := New(fetcher)

	_, err := h.Aggregate(context.Background(), []string{"a", "b"}, []string{"cat1", "cat2"}, 100)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	want := []string{"a|cat1", "a|cat2", "b|cat1", "b|cat2"}
	if len(fetcher.calls) != len(want) {
		t.Fatalf("Aggregate() issued %d fetches, want %d: %v", len(fetcher.calls), len(want), fetcher.calls)
	}
	for i, w := range want {
		if fetcher.calls[i] != w {
			t.Errorf("fetch %d = %q, want %q", i, fetcher.calls[i], w)
		}
	}
}

func TestAggregateDedupKeepsFirstSeen(t *testing.T) {
	fetcher := &fakeFetcher{results: map[string][]record.Record{
		"a|cat1": {rec("2101.00001", "First Title")},
		"b|cat1": {rec("2101.00001", "Second Title"), rec("2102.00002", "Other")},
	}}
	h := New(fetcher)

	records, err := h.Aggregate(context.Background(), []string{"a", "b"}, []string{"cat1"}, 100)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Aggregate() returned %d records, want 2", len(records))
	}
	if records[0].ArXivID != "2101.00001" || records[0].Title != "First Title" {
		t.Errorf("records[0] = %s %q, want the first-seen copy", records[0].ArXivID, records[0].Title)
	}
	if records[1].ArXivID != "2102.00002" {
		t.Errorf("records[1].ArXivID = %s", records[1].ArXivID)
	}
}

func TestAggregateDefaults(t *testing.T) {
	fetcher := &fakeFetcher{results: map[string][]record.Record{}}
	h := New(fetcher)

	_, err := h.Aggregate(context.Background(), nil, nil, 100)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if len(fetcher.calls) != 1 || fetcher.calls[0] != "|"+DefaultCategory {
		t.Errorf("calls = %v, want one fetch of the default category", fetcher.calls)
	}
}

func TestAggregateFetchFailureAborts(t *testing.T) {
	boom := errors.New("boom")
	fetcher := &fakeFetcher{
		results: map[string][]record.Record{"a|cat1": {rec("2101.00001", "T")}},
		errs:    map[string]error{"a|cat2": boom},
	}
	h := New(fetcher)

	_, err := h.Aggregate(context.Background(), []string{"a"}, []string{"cat1", "cat2"}, 100)
	if !errors.Is(err, boom) {
		t.Fatalf("Aggregate() error = %v, want wrapped boom", err)
	}
}

func TestAggregateKeepGoing(t *testing.T) {
	fetcher := &fakeFetcher{
		results: map[string][]record.Record{"a|cat1": {rec("2101.00001", "T")}},
		errs:    map[string]error{"a|cat2": errors.New("boom")},
	}
	h := New(fetcher, WithKeepGoing())

	records, err := h.Aggregate(context.Background(), []string{"a"}, []string{"cat1", "cat2"}, 100)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if len(records) != 1 {
		t.Errorf("Aggregate() returned %d records, want 1 (partial)", len(records))
	}
}

func TestHarvestEndToEnd(t *testing.T) {
	first := rec("2101.00001", "Quantum Error Correction")
	first.Comment = "12 pages, 3 figures"
	second := rec("2102.00002", "Variational Quantum Eigensolvers Revisited")

	fetcher := &fakeFetcher{results: map[string][]record.Record{
		"|quant-ph": {first, second},
	}}
	h := New(fetcher)

	records, err := h.Harvest(context.Background(), []string{""}, []string{"quant-ph"}, 1000)
	if err != nil {
		t.Fatalf("Harvest() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Harvest() returned %d records, want 2", len(records))
	}

	got := records[0]
	if got.Pages == nil || *got.Pages != 12 {
		t.Errorf("Pages = %v, want 12", got.Pages)
	}
	if got.Figures == nil || *got.Figures != 3 {
		t.Errorf("Figures = %v, want 3", got.Figures)
	}
	if got.NumAuthors != 1 {
		t.Errorf("NumAuthors = %d, want 1", got.NumAuthors)
	}
	if got.TitleLength != 3 {
		t.Errorf("TitleLength = %d, want 3", got.TitleLength)
	}
	if got.PubYear != 2021 || got.PubMonth != 3 || got.PubDay != 15 {
		t.Errorf("date parts = %d-%d-%d, want 2021-3-15", got.PubYear, got.PubMonth, got.PubDay)
	}

	if records[1].Pages != nil {
		t.Errorf("records[1].Pages = %v, want nil (no comment)", records[1].Pages)
	}
}

func TestDedup(t *testing.T) {
	records := []record.Record{
		rec("a", "1"), rec("b", "2"), rec("a", "3"), rec("c", "4"), rec("b", "5"),
	}
	got := Dedup(records)
	if len(got) != 3 {
		t.Fatalf("Dedup() returned %d records, want 3", len(got))
	}
	wantTitles := []string{"1", "2", "4"}
	for i, w := range wantTitles {
		if got[i].Title != w {
			t.Errorf("got[%d].Title = %q, want %q", i, got[i].Title, w)
		}
	}
}
