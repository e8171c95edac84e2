package rs

import (
	"context"
	"errors"
	"net/http"

	"github.com/jonesej/gedcomx-java/pkg/gedcomx"
)

// PersonResource is a document describing one person. Its links are those
// of the person, falling back to the document when it has no person.
var PersonResource = &Resource[gedcomx.Gedcomx]{
	Name:       "person",
	MediaTypes: GedcomxMediaTypes,
	Rels:       []string{RelSelf, RelAncestry, RelDescendancy, RelSpouses},
	Scope:      personScope,
}

func personScope(doc *gedcomx.Gedcomx) gedcomx.Linker {
	if p := doc.Person(); p != nil {
		return p
	}
	return doc
}

// PersonState is the state of a person document.
type PersonState struct {
	*State[gedcomx.Gedcomx]
}

// ReadPerson reads the person at uri.
func ReadPerson(ctx context.Context, client *Client, uri string) (*PersonState, error) {
	s, err := Read(ctx, client, PersonResource, uri)
	if err != nil {
		return nil, err
	}
	return &PersonState{s}, nil
}

// Person returns the person of the document, or nil.
func (s *PersonState) Person() *gedcomx.Person {
	return s.Entity().Person()
}

// ReadAncestry reads the ancestry of the person.
func (s *PersonState) ReadAncestry(ctx context.Context) (*AncestryResultsState, bool, error) {
	next, ok, err := optional(Follow(ctx, s.State, RelAncestry, http.MethodGet, AncestryResource))
	if !ok {
		return nil, false, err
	}
	return &AncestryResultsState{next}, true, nil
}

// ReadDescendancy reads the descendancy of the person.
func (s *PersonState) ReadDescendancy(ctx context.Context) (*DescendancyResultsState, bool, error) {
	next, ok, err := optional(Follow(ctx, s.State, RelDescendancy, http.MethodGet, DescendancyResource))
	if !ok {
		return nil, false, err
	}
	return &DescendancyResultsState{next}, true, nil
}

// ReadSpouses reads the spouses of the person.
func (s *PersonState) ReadSpouses(ctx context.Context) (*PersonSpousesState, bool, error) {
	next, ok, err := optional(Follow(ctx, s.State, RelSpouses, http.MethodGet, PersonSpousesResource))
	if !ok {
		return nil, false, err
	}
	return &PersonSpousesState{next}, true, nil
}

// Update replaces the person with person.
func (s *PersonState) Update(ctx context.Context, person *gedcomx.Person) (*PersonState, error) {
	if person == nil {
		return nil, errors.New("rs: Update requires a person")
	}
	next, err := s.Put(ctx, &gedcomx.Gedcomx{Persons: []gedcomx.Person{*person}})
	if err != nil {
		return nil, err
	}
	return &PersonState{next}, nil
}

// Remove deletes the person.
func (s *PersonState) Remove(ctx context.Context) (*PersonState, error) {
	next, err := s.Delete(ctx)
	if err != nil {
		return nil, err
	}
	return &PersonState{next}, nil
}
