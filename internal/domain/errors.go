package domain

import "fmt"

// ValidationError reports a missing or invalid required field. It is raised
// before any write is attempted.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// DuplicateError reports an import for a catalog id that is already in the
// collection.
type DuplicateError struct {
	MalID int64
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("anime with mal id %d is already in the collection", e.MalID)
}

// NotFoundError reports an operation targeting an unknown entry id.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("entry %d not found", e.ID)
}

// RemoteError carries a non-2xx response from the remote substrate or the
// catalog API.
type RemoteError struct {
	StatusCode int
	URL        string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s", e.StatusCode, e.URL)
}
