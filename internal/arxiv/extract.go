package arxiv

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/matsen/arxtab/internal/record"
)

// idPrefix is the fixed URL prefix on every entry id element.
const idPrefix = "http://arxiv.org/abs/"

// ExtractRecords converts feed entries into records. Malformed entries are
// logged and skipped rather than aborting the batch.
func ExtractRecords(entries []Entry, log zerolog.Logger) []record.Record {
	records := make([]record.Record, 0, len(entries))
	for i := range entries {
		rec, err := ExtractRecord(i, &entries[i])
		if err != nil {
			log.Warn().Err(err).Msg("skipping malformed entry")
			continue
		}
		records = append(records, rec)
	}
	return records
}

// ExtractRecord converts one Atom entry into a record. It returns a
// *MalformedEntryError when a required field is missing or empty.
func ExtractRecord(index int, e *Entry) (record.Record, error) {
	id := extractID(e.ID)
	if id == "" {
		return record.Record{}, &MalformedEntryError{Index: index, Field: "id"}
	}
	if e.Updated == "" {
		return record.Record{}, &MalformedEntryError{Index: index, Field: "updated"}
	}
	if e.Published == "" {
		return record.Record{}, &MalformedEntryError{Index: index, Field: "published"}
	}
	title := strings.TrimSpace(e.Title)
	if title == "" {
		return record.Record{}, &MalformedEntryError{Index: index, Field: "title"}
	}

	authors := make([]string, 0, len(e.Authors))
	for _, a := range e.Authors {
		if name := strings.TrimSpace(a.Name); name != "" {
			authors = append(authors, name)
		}
	}

	categories := make([]string, 0, len(e.Categories))
	for _, cat := range e.Categories {
		if cat.Term != "" {
			categories = append(categories, cat.Term)
		}
	}

	return record.Record{
		ArXivID:       id,
		UpdatedDate:   e.Updated,
		PublishedDate: e.Published,
		Title:         title,
		Summary:       strings.TrimSpace(e.Summary),
		Authors:       authors,
		Comment:       strings.TrimSpace(e.Comment),
		Categories:    categories,
	}, nil
}

// extractID strips the abs URL prefix from an entry id, keeping any version
// suffix. Entries with an unrecognized id shape yield "".
func extractID(entryURL string) string {
	if strings.HasPrefix(entryURL, idPrefix) {
		return entryURL[len(idPrefix):]
	}
	// Some mirrors serve https ids; fall back to the /abs/ segment.
	if i := strings.Index(entryURL, "/abs/"); i >= 0 {
		return entryURL[i+len("/abs/"):]
	}
	return ""
}
