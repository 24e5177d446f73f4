package harvest

import (
	"strconv"
	"strings"

	"github.com/matsen/arxtab/internal/comment"
	"github.com/matsen/arxtab/internal/record"
)

// Derive computes the derived columns for each record and returns a new
// slice; the input records are not modified.
func Derive(records []record.Record) []record.Record {
	out := make([]record.Record, len(records))
	for i, rec := range records {
		if pages, ok := comment.Pages(rec.Comment); ok {
			rec.Pages = &pages
		}
		if figures, ok := comment.Figures(rec.Comment); ok {
			rec.Figures = &figures
		}
		rec.NumAuthors = len(rec.Authors)
		rec.TitleLength = len(strings.Fields(rec.Title))
		rec.PubYear, rec.PubMonth, rec.PubDay = parseDateParts(rec.PublishedDate)
		out[i] = rec
	}
	return out
}

// parseDateParts reads year, month and day from the fixed offsets of an
// ISO-8601 timestamp ("YYYY-MM-DD..."). Strings too short or non-numeric at
// those offsets yield all zeroes rather than a partial date.
func parseDateParts(s string) (year, month, day int) {
	if len(s) < 10 {
		return 0, 0, 0
	}

	year, err := strconv.Atoi(s[0:4])
	if err != nil {
		return 0, 0, 0
	}
	month, err = strconv.Atoi(s[5:7])
	if err != nil {
		return 0, 0, 0
	}
	day, err = strconv.Atoi(s[8:10])
	if err != nil {
		return 0, 0, 0
	}
	return year, month, day
}
