package harvest

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/matsen/arxtab/internal/record"
)

// SaveCSV writes records to a CSV file with a header row, overwriting any
// existing file at path.
func SaveCSV(records []record.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(record.Header); err != nil {
		f.Close()
		return fmt.Errorf("writing header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(rec.Row()); err != nil {
			f.Close()
			return fmt.Errorf("writing record %s: %w", rec.ArXivID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}
