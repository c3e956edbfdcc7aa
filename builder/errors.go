package builder

import (
	"errors"
	"fmt"
)

// ErrFetchNotConfigured is returned by Fetch when the client has no fetch function.
var ErrFetchNotConfigured = errors.New("builder: no fetch function configured, use WithFetchFunc or WithHTTPClient")

// DuplicateSelectionError reports a field recorded twice on one builder.
type DuplicateSelectionError struct {
	TypeName string
	Field    string
}

func (e *DuplicateSelectionError) Error() string {
	if e.TypeName == "" {
		return fmt.Sprintf("builder: %s already set before. duplicated", e.Field)
	}
	return fmt.Sprintf("builder: %s.%s already set before. duplicated", e.TypeName, e.Field)
}

// RequestError is returned when the server answers with a non-2xx status.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("builder: request failed with status %d: %s", e.StatusCode, e.Body)
}
