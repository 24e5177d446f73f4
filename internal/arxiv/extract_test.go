package arxiv

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func validEntry() Entry {
	return Entry{
		ID:        "http://arxiv.org/abs/2101.00001v2",
		Updated:   "2021-03-20T17:00:00Z",
		Published: "2021-03-15T00:00:00Z",
		Title:     "Quantum Error Correction with Surface Codes",
		Summary:   "We study surface codes.",
		Authors: []Author{
			{Name: "Alice Example"},
			{Name: "Bob Example"},
		},
		Comment: "12 pages, 3 figures",
		Categories: []Category{
			{Term: "quant-ph"},
			{Term: "cond-mat.mes-hall"},
		},
	}
}

func TestExtractRecord(t *testing.T) {
	entry := validEntry()

	rec, err := ExtractRecord(0, &entry)
	if err != nil {
		t.Fatalf("ExtractRecord() error = %v", err)
	}

	if rec.ArXivID != "2101.00001v2" {
		t.Errorf("ArXivID = %q, want %q", rec.ArXivID, "2101.00001v2")
	}
	if rec.UpdatedDate != "2021-03-20T17:00:00Z" {
		t.Errorf("UpdatedDate = %q", rec.UpdatedDate)
	}
	if rec.PublishedDate != "2021-03-15T00:00:00Z" {
		t.Errorf("PublishedDate = %q", rec.PublishedDate)
	}
	if len(rec.Authors) != 2 || rec.Authors[0] != "Alice Example" {
		t.Errorf("Authors = %v", rec.Authors)
	}
	if rec.Comment != "12 pages, 3 figures" {
		t.Errorf("Comment = %q", rec.Comment)
	}
	if len(rec.Categories) != 2 || rec.Categories[0] != "quant-ph" {
		t.Errorf("Categories = %v", rec.Categories)
	}
}

func TestExtractRecordMissingFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Entry)
		wantField string
	}{
		{"missing id", func(e *Entry) { e.ID = "" }, "id"},
		{"unrecognized id shape", func(e *Entry) { e.ID = "not-a-url" }, "id"},
		{"missing updated", func(e *Entry) { e.Updated = "" }, "updated"},
		{"missing published", func(e *Entry) { e.Published = "" }, "published"},
		{"blank title", func(e *Entry) { e.Title = "  \n " }, "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := validEntry()
			tt.mutate(&entry)

			_, err := ExtractRecord(3, &entry)
			var malformed *MalformedEntryError
			if !errors.As(err, &malformed) {
				t.Fatalf("ExtractRecord() error = %v, want *MalformedEntryError", err)
			}
			if malformed.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", malformed.Field, tt.wantField)
			}
			if malformed.Index != 3 {
				t.Errorf("Index = %d, want 3", malformed.Index)
			}
		})
	}
}

func TestExtractRecordOptionalFields(t *testing.T) {
	entry := validEntry()
	entry.Authors = nil
	entry.Comment = ""
	entry.Categories = nil

	rec, err := ExtractRecord(0, &entry)
	if err != nil {
		t.Fatalf("ExtractRecord() error = %v", err)
	}
	if len(rec.Authors) != 0 {
		t.Errorf("Authors = %v, want empty", rec.Authors)
	}
	if rec.Comment != "" {
		t.Errorf("Comment = %q, want empty", rec.Comment)
	}
}

func TestExtractRecordsSkipsMalformed(t *testing.T) {
	good := validEntry()
	bad := validEntry()
	bad.Title = ""

	records := ExtractRecords([]Entry{bad, good}, zerolog.Nop())
	if len(records) != 1 {
		t.Fatalf("ExtractRecords() returned %d records, want 1", len(records))
	}
	if records[0].ArXivID != "2101.00001v2" {
		t.Errorf("ArXivID = %q", records[0].ArXivID)
	}
}

func TestExtractIDHTTPS(t *testing.T) {
	got := extractID("https://arxiv.org/abs/1901.11103v1")
	if got != "1901.11103v1" {
		t.Errorf("extractID() = %q, want %q", got, "1901.11103v1")
	}
}
