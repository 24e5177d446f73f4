// Package record defines the core domain types for harvested arXiv articles.
package record

import (
	"strconv"
	"strings"
)

// Record represents one article extracted from an arXiv API response.
// The first eight fields come straight from the Atom entry; the rest are
// derived columns populated by harvest.Derive. A record is never mutated
// after creation except to fill in the derived columns.
type Record struct {
	// Identity and primary metadata
	ArXivID       string   `json:"arxiv_id"` // unique key after aggregation
	UpdatedDate   string   `json:"updated_date"`
	PublishedDate string   `json:"published_date"`
	Title         string   `json:"title"`
	Summary       string   `json:"summary"`
	Authors       []string `json:"authors"`
	Comment       string   `json:"comment,omitempty"` // empty when the entry has no comment
	Categories    []string `json:"categories"`

	// Derived columns
	Pages       *int `json:"pages,omitempty"`   // nil when not stated in the comment
	Figures     *int `json:"figures,omitempty"` // nil when not stated in the comment
	NumAuthors  int  `json:"num_of_authors"`
	TitleLength int  `json:"title_length"`
	PubYear     int  `json:"year_of_publishing"`  // 0 when published_date is malformed
	PubMonth    int  `json:"month_of_publishing"` // 0 when published_date is malformed
	PubDay      int  `json:"date_of_publishing"`  // 0 when published_date is malformed
}

// ListSeparator joins multi-valued cells (authors, categories) in CSV output.
const ListSeparator = "; "

// Header is the CSV column order: primary fields first, derived columns after,
// no index column.
var Header = []string{
	"arxiv_id",
	"updated_date",
	"published_date",
	"title",
	"summary",
	"authors",
	"comment",
	"categories",
	"pages",
	"figures",
	"num_of_authors",
	"title_length",
	"year_of_publishing",
	"month_of_publishing",
	"date_of_publishing",
}

// Row renders the record as one CSV row matching Header. Absent integer
// columns render as empty cells.
func (r Record) Row() []string {
	return []string{
		r.ArXivID,
		r.UpdatedDate,
		r.PublishedDate,
		r.Title,
		r.Summary,
		strings.Join(r.Authors, ListSeparator),
		r.Comment,
		strings.Join(r.Categories, ListSeparator),
		formatOptionalInt(r.Pages),
		formatOptionalInt(r.Figures),
		strconv.Itoa(r.NumAuthors),
		strconv.Itoa(r.TitleLength),
		strconv.Itoa(r.PubYear),
		strconv.Itoa(r.PubMonth),
		strconv.Itoa(r.PubDay),
	}
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
