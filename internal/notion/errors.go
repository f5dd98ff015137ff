package notion

import (
	"errors"
	"fmt"
)

// Block tree validation errors.
// These errors are returned by Validate before any network transmission,
// so malformed payloads are rejected locally with a clear message instead
// of letting the API reject them opaquely.
//
// Package-level sentinel errors allow callers to branch with errors.Is
// while keeping human-readable messages. Validation wraps these sentinels
// with position information via fmt.Errorf("%w").
var (
	// ErrInvalidHeadingLevel is returned when a heading block's level is
	// outside 1-3. The constructor accepts any level; validation is where
	// the range is enforced.
	ErrInvalidHeadingLevel = errors.New("invalid heading level: must be 1, 2, or 3")

	// ErrNestingTooDeep is returned when block children are nested deeper
	// than the API accepts in a single page-creation request (two levels).
	ErrNestingTooDeep = errors.New("block nesting too deep: the API accepts at most two levels of children per request")

	// ErrTextTooLong is returned when a single rich text element exceeds
	// the API's per-element limit of 2000 characters.
	ErrTextTooLong = errors.New("rich text too long: must be at most 2000 characters per element")

	// ErrTooManyChildren is returned when a block list exceeds the API's
	// limit of 100 blocks per children array in one request.
	ErrTooManyChildren = errors.New("too many child blocks: the API accepts at most 100 blocks per children array")

	// ErrInvalidPageID is returned when the parent page identifier is not
	// 32 hexadecimal characters after normalization.
	ErrInvalidPageID = errors.New("invalid page id: expected 32 hexadecimal characters (dashes are ignored)")

	// ErrUnknownBlockType is returned when a block carries no recognized
	// payload. This indicates a programming error rather than bad input.
	ErrUnknownBlockType = errors.New("unknown block type")
)

// APIError is returned by the client when the API responds with any status
// other than 200. The response body is preserved verbatim as the only
// diagnostic the external service provides; no further classification of
// failure causes is attempted.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Body is the raw response body, unaltered.
	Body string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("notion API error: status %d: %s", e.StatusCode, e.Body)
}
