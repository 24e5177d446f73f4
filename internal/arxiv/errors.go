package arxiv

import (
	"errors"
	"fmt"
)

// ErrTransport indicates the request to the arXiv API failed or timed out.
var ErrTransport = errors.New("arxiv request failed")

// TransportError wraps a failed request with the URL that was being fetched.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is makes TransportError match ErrTransport in errors.Is checks.
func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// MalformedEntryError reports a feed entry missing a required field.
// Such entries are skipped, never aborting the batch.
type MalformedEntryError struct {
	Index int    // position of the entry in the feed
	Field string // name of the missing field
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("entry %d: missing %s", e.Index, e.Field)
}
