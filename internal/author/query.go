// Package author provides author matching and frequency analysis over
// harvested records.
package author

import (
	"sort"
	"strings"

	"github.com/matsen/arxtab/internal/record"
)

// Matches reports whether query occurs as a case-insensitive substring of
// any author name in the list.
func Matches(query string, authors []string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	joined := strings.ToLower(strings.Join(authors, " "))
	return strings.Contains(joined, q)
}

// Filter returns the records whose author list matches the query.
func Filter(records []record.Record, query string) []record.Record {
	var out []record.Record
	for _, rec := range records {
		if Matches(query, rec.Authors) {
			out = append(out, rec)
		}
	}
	return out
}

// Count is an author name with its number of occurrences.
type Count struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Frequent returns the authors appearing more than threshold times across
// all records, sorted by count descending, name ascending on ties.
func Frequent(records []record.Record, threshold int) []Count {
	counts := make(map[string]int)
	for _, rec := range records {
		for _, name := range rec.Authors {
			counts[name]++
		}
	}

	var out []Count
	for name, n := range counts {
		if n > threshold {
			out = append(out, Count{Name: name, Count: n})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
