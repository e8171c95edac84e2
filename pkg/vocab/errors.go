package vocab

import (
	"errors"
	"fmt"
)

var (
	// ErrUnmappedURI is returned when a URI is not bound to any member and
	// the vocabulary has no unknown sentinel.
	ErrUnmappedURI = errors.New("unmapped uri")

	// ErrUndeclaredMember is returned when a symbol that is not part of the
	// vocabulary is asked for its URI.
	ErrUndeclaredMember = errors.New("undeclared member")

	// ErrUnknownName is returned by ParseName when no member matches.
	ErrUnknownName = errors.New("unknown name")
)

// LookupError describes a failed lookup in a single vocabulary.
type LookupError struct {
	Vocabulary string // Vocabulary name (e.g., "OrdinanceStatus")
	Value      string // The URI or symbol that failed to resolve
	Err        error  // One of the sentinel errors above
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("vocab %s: %s: %q", e.Vocabulary, e.Err, e.Value)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
