package vision

import (
	"errors"
	"fmt"
)

// Sentinel errors for collaborator failures. Both abort the pipeline; the
// caller must not persist any diary rows for the attempt.
var (
	ErrVisionCallFailed     = errors.New("vision call failed")
	ErrEnrichmentCallFailed = errors.New("nutrition enrichment call failed")
)

// MalformedResponseError means the model replied with text that contains no
// parseable JSON payload where one was required. Raw carries the full reply
// for diagnostics; it is never shown to end users.
type MalformedResponseError struct {
	Raw string
}

func (e *MalformedResponseError) Error() string {
	preview := e.Raw
	if len(preview) > 200 {
		preview = preview[:200] + "..."
	}
	return fmt.Sprintf("malformed model response: %q", preview)
}

// ItemValidationError reports the first parsed food item that is missing a
// required field. The whole batch is rejected (all-or-nothing).
type ItemValidationError struct {
	Index  int
	Reason string
}

func (e *ItemValidationError) Error() string {
	return fmt.Sprintf("food item %d invalid: %s", e.Index, e.Reason)
}
