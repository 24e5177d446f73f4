// Package pdf inspects local PDF files.
package pdf

import (
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PageCount returns the number of pages in a PDF file. Useful for checking
// comment-derived page counts against the actual document.
func PageCount(filePath string) (int, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", filePath, err)
	}
	defer f.Close()

	return r.NumPage(), nil
}
