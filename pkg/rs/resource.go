package rs

import (
	"net/http"

	"github.com/jonesej/gedcomx-java/pkg/gedcomx"
)

// MediaTypes are the canonical media types of a resource.
type MediaTypes struct {
	JSON string
	XML  string
}

// For returns the media type of the given format.
func (m MediaTypes) For(format Format) string {
	if format == FormatXML {
		return m.XML
	}
	return m.JSON
}

// GedcomxMediaTypes are the media types of plain GEDCOM X resources.
var GedcomxMediaTypes = MediaTypes{
	JSON: gedcomx.JSONMediaType,
	XML:  gedcomx.XMLMediaType,
}

// Resource describes one kind of API resource: what it decodes to, which
// relations it knows how to follow and where its links live.
type Resource[T any] struct {
	// Name identifies the resource in errors and logs.
	Name string

	// MediaTypes are sent as Accept and Content-Type.
	MediaTypes MediaTypes

	// Rels are the relations the resource's view follows.
	Rels []string

	// Scope narrows link lookup to part of the entity, e.g. the person
	// inside a person document. When nil the entity itself is used if it
	// implements gedcomx.Linker.
	Scope func(entity *T) gedcomx.Linker

	// Success decides whether a response status carries an entity.
	// When nil only 200 OK does.
	Success func(status int) bool
}

func (r *Resource[T]) success(status int) bool {
	if r.Success != nil {
		return r.Success(status)
	}
	return status == http.StatusOK
}

func (r *Resource[T]) scope(entity *T) gedcomx.Linker {
	if entity == nil {
		return nil
	}
	if r.Scope != nil {
		return r.Scope(entity)
	}
	if l, ok := any(entity).(gedcomx.Linker); ok {
		return l
	}
	return nil
}
