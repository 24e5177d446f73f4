// Package comment extracts page and figure counts from arXiv comment strings.
//
// Comments are free text like "12 pages, 3 figures, accepted to PRL" or
// "5+3 pages, comments welcome". Extraction is best effort: when no count
// can be bound to the keyword the result is simply absent.
package comment

import (
	"strconv"
	"strings"
)

// Pages extracts the page count from a comment string.
func Pages(comment string) (int, bool) {
	return ExtractCount(comment, "page")
}

// Figures extracts the figure count from a comment string.
func Figures(comment string) (int, bool) {
	return ExtractCount(comment, "figure")
}

// ExtractCount extracts the integer count associated with keyword from a
// free-text comment. It returns (0, false) when the comment is empty, the
// keyword does not occur, or no parseable number precedes the keyword.
//
// Additive counts like "5+3 pages" are summed. A malformed additive
// expression ("5+x pages") yields absent rather than a partial sum.
func ExtractCount(comment, keyword string) (int, bool) {
	cleaned := strings.ToLower(sanitize(comment))
	if !strings.Contains(cleaned, keyword) {
		return 0, false
	}

	words := strings.Fields(cleaned)
	candidate, ok := findCandidate(words, keyword)
	if !ok {
		return 0, false
	}

	return parseCandidate(candidate)
}

// sanitize strips every character outside [a-zA-Z0-9 +]. The '+' survives so
// additive page counts remain parseable.
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ', r == '+':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// findCandidate locates the token that should hold the count. Search order:
// the token before the plural keyword, then before the singular keyword,
// then the prefix of the first token containing the keyword as a substring
// (e.g. "12pages"). Returns false when no candidate token exists at all.
func findCandidate(words []string, keyword string) (string, bool) {
	if i := indexOf(words, keyword+"s"); i > 0 {
		return words[i-1], true
	} else if i == 0 {
		return "", false // keyword is the first token, nothing precedes it
	}

	if i := indexOf(words, keyword); i > 0 {
		return words[i-1], true
	} else if i == 0 {
		return "", false
	}

	for _, word := range words {
		if i := strings.Index(word, keyword); i >= 0 {
			return word[:i], true
		}
	}
	return "", false
}

func indexOf(words []string, target string) int {
	for i, w := range words {
		if w == target {
			return i
		}
	}
	return -1
}

// parseCandidate interprets a candidate token as a count: either a plain
// integer or an additive expression like "5+3".
func parseCandidate(token string) (int, bool) {
	if isDigits(token) {
		n, err := strconv.Atoi(token)
		if err != nil {
			return 0, false
		}
		return n, true
	}

	if strings.Contains(token, "+") {
		sum := 0
		for _, part := range strings.Split(token, "+") {
			if part == "" {
				continue
			}
			if !isDigits(part) {
				return 0, false
			}
			n, err := strconv.Atoi(part)
			if err != nil {
				return 0, false
			}
			sum += n
		}
		return sum, true
	}

	return 0, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
