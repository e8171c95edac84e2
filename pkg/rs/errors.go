package rs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLinkNotFound is matched by every *LinkNotFoundError.
	ErrLinkNotFound = errors.New("link not found")

	// ErrRelationshipNotFound is returned when no relationship of the
	// current document references the requested person.
	ErrRelationshipNotFound = errors.New("relationship not found")
)

// LinkNotFoundError reports that none of the requested relations is
// available on the current entity.
type LinkNotFoundError struct {
	Resource string
	Rels     []string
}

func (e *LinkNotFoundError) Error() string {
	quoted := make([]string, len(e.Rels))
	for i, rel := range e.Rels {
		quoted[i] = fmt.Sprintf("%q", rel)
	}
	return fmt.Sprintf("%s: no %s link", e.Resource, strings.Join(quoted, " or "))
}

// Is makes errors.Is(err, ErrLinkNotFound) hold.
func (e *LinkNotFoundError) Is(target error) bool {
	return target == ErrLinkNotFound
}

// TransportError wraps a failure to send a request or read its response.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that does not fit the expected entity.
type DecodeError struct {
	Resource    string
	ContentType string
	Err         error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s (%s): %v", e.Resource, e.ContentType, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// StatusError is returned by IfSuccessful for a non-2xx response.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s returned status %d", e.Method, e.URL, e.StatusCode)
}
