package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that a requested local item has no matching file.
// It means "absent", not a system fault.
var ErrNotFound = errors.New("not found")

// ParseError reports a malformed metadata block in a local file. Bulk
// loads skip the broken item and continue; single-item lookups propagate.
type ParseError struct {
	Slug string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing document %q: %v", e.Slug, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RemoteServiceError reports a non-success response or transport failure
// from the remote CMS. Status is 0 when no HTTP response was received.
// The catalog builder downgrades this to local-only operation instead of
// failing the build.
type RemoteServiceError struct {
	Status  int
	Message string
}

func (e *RemoteServiceError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("cms request failed: %s", e.Message)
	}

	return fmt.Sprintf("cms request failed: status %d: %s", e.Status, e.Message)
}
