package comment

import "testing"

func TestExtractCount(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		keyword string
		want    int
		wantOK  bool
	}{
		// Plain counts
		{"pages and figures", "12 pages, 3 figures", "page", 12, true},
		{"figures from same comment", "12 pages, 3 figures", "figure", 3, true},
		{"singular keyword", "1 page, 1 figure", "page", 1, true},
		{"trailing text", "10 pages, accepted to PRL", "page", 10, true},
		{"mixed case", "12 Pages, 3 Figures", "page", 12, true},
		{"punctuation stripped", "12 pages; 3 figures.", "figure", 3, true},

		// Additive counts
		{"additive", "5+3 pages", "page", 8, true},
		{"additive three parts", "10+2+1 pages", "page", 13, true},
		{"additive with empty part", "5+ pages", "page", 5, true},
		{"malformed additive", "5+x pages", "page", 0, false},

		// Keyword glued to the number
		{"no space before keyword", "12pages, 3 figures", "page", 12, true},
		{"no space singular", "7page document", "page", 7, true},

		// Absent results
		{"empty comment", "", "page", 0, false},
		{"keyword missing", "3 figures, to appear in PRA", "page", 0, false},
		{"non-numeric predecessor", "many pages", "page", 0, false},
		{"keyword only as substring, no prefix", "pagesetting notes", "page", 0, false},
		{"keyword is first token", "pages unknown", "page", 0, false},
		{"number after keyword", "pages: 12", "page", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractCount(tt.comment, tt.keyword)
			if ok != tt.wantOK {
				t.Fatalf("ExtractCount(%q, %q) ok = %v, want %v", tt.comment, tt.keyword, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ExtractCount(%q, %q) = %d, want %d", tt.comment, tt.keyword, got, tt.want)
			}
		})
	}
}

func TestPagesAndFigures(t *testing.T) {
	comment := "21 pages, 14 figures, published in Quantum"

	if got, ok := Pages(comment); !ok || got != 21 {
		t.Errorf("Pages(%q) = %d, %v, want 21, true", comment, got, ok)
	}
	if got, ok := Figures(comment); !ok || got != 14 {
		t.Errorf("Figures(%q) = %d, %v, want 14, true", comment, got, ok)
	}
}
