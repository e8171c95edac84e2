package rs

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonesej/gedcomx-java/pkg/gedcomx"
)

// PersonSpousesResource is the list of a person's spouses together with
// the couple relationships linking them.
var PersonSpousesResource = &Resource[gedcomx.Gedcomx]{
	Name:       "person-spouses",
	MediaTypes: GedcomxMediaTypes,
	Rels:       []string{RelSelf, RelPerson},
}

// PersonSpousesState is the state of a person-spouses document.
type PersonSpousesState struct {
	*State[gedcomx.Gedcomx]
}

// ReadPersonSpouses reads the person-spouses document at uri.
func ReadPersonSpouses(ctx context.Context, client *Client, uri string) (*PersonSpousesState, error) {
	s, err := Read(ctx, client, PersonSpousesResource, uri)
	if err != nil {
		return nil, err
	}
	return &PersonSpousesState{s}, nil
}

// Persons returns the spouses, or nil when nothing was decoded.
func (s *PersonSpousesState) Persons() []gedcomx.Person {
	if doc := s.Entity(); doc != nil {
		return doc.Persons
	}
	return nil
}

// Relationships returns the couple relationships, or nil when nothing was
// decoded.
func (s *PersonSpousesState) Relationships() []gedcomx.Relationship {
	if doc := s.Entity(); doc != nil {
		return doc.Relationships
	}
	return nil
}

// FindRelationshipTo returns the first relationship, in document order,
// whose person1 or person2 is a local reference to spouse.
func (s *PersonSpousesState) FindRelationshipTo(spouse *gedcomx.Person) *gedcomx.Relationship {
	if spouse == nil {
		return nil
	}
	relationships := s.Relationships()
	for i := range relationships {
		if relationships[i].References(spouse.ID) {
			return &relationships[i]
		}
	}
	return nil
}

// ReadPerson reads the person whose spouses these are.
func (s *PersonSpousesState) ReadPerson(ctx context.Context) (*PersonState, bool, error) {
	next, ok, err := optional(Follow(ctx, s.State, RelPerson, http.MethodGet, PersonResource))
	if !ok {
		return nil, false, err
	}
	return &PersonState{next}, true, nil
}

// ReadSpouse reads spouse through its person link, or its self link when
// it has no person link.
func (s *PersonSpousesState) ReadSpouse(ctx context.Context, spouse *gedcomx.Person) (*PersonState, bool, error) {
	if spouse == nil {
		return nil, false, nil
	}
	next, ok, err := optional(FollowFrom(ctx, s.State, spouse, http.MethodGet, PersonResource, RelPerson, RelSelf))
	if !ok {
		return nil, false, err
	}
	return &PersonState{next}, true, nil
}

// ReadAncestryWithSpouse reads the ancestry of spouse.
func (s *PersonSpousesState) ReadAncestryWithSpouse(ctx context.Context, spouse *gedcomx.Person) (*AncestryResultsState, bool, error) {
	if spouse == nil {
		return nil, false, nil
	}
	next, ok, err := optional(FollowFrom(ctx, s.State, spouse, http.MethodGet, AncestryResource, RelAncestry))
	if !ok {
		return nil, false, err
	}
	return &AncestryResultsState{next}, true, nil
}

// ReadDescendancyWithSpouse reads the descendancy of spouse.
func (s *PersonSpousesState) ReadDescendancyWithSpouse(ctx context.Context, spouse *gedcomx.Person) (*DescendancyResultsState, bool, error) {
	if spouse == nil {
		return nil, false, nil
	}
	next, ok, err := optional(FollowFrom(ctx, s.State, spouse, http.MethodGet, DescendancyResource, RelDescendancy))
	if !ok {
		return nil, false, err
	}
	return &DescendancyResultsState{next}, true, nil
}

// ReadRelationship reads relationship through its relationship link, or
// its self link when it has no relationship link.
func (s *PersonSpousesState) ReadRelationship(ctx context.Context, relationship *gedcomx.Relationship) (*RelationshipState, bool, error) {
	if relationship == nil {
		return nil, false, nil
	}
	next, ok, err := optional(FollowFrom(ctx, s.State, relationship, http.MethodGet, RelationshipResource, RelRelationship, RelSelf))
	if !ok {
		return nil, false, err
	}
	return &RelationshipState{next}, true, nil
}

// RemoveRelationship deletes relationship. It fails with a
// *LinkNotFoundError when the relationship has neither a relationship nor
// a self link.
func (s *PersonSpousesState) RemoveRelationship(ctx context.Context, relationship *gedcomx.Relationship) (*RelationshipState, error) {
	if relationship == nil {
		return nil, errors.New("rs: RemoveRelationship requires a relationship")
	}
	next, err := FollowFrom(ctx, s.State, relationship, http.MethodDelete, RelationshipResource, RelRelationship, RelSelf)
	if err != nil {
		return nil, fmt.Errorf("unable to remove relationship: %w", err)
	}
	if err := next.DecodeErr(); err != nil {
		return nil, err
	}
	return &RelationshipState{next}, nil
}

// RemoveRelationshipTo deletes the relationship to spouse found by
// FindRelationshipTo. It fails with ErrRelationshipNotFound when there is
// none.
func (s *PersonSpousesState) RemoveRelationshipTo(ctx context.Context, spouse *gedcomx.Person) (*RelationshipState, error) {
	relationship := s.FindRelationshipTo(spouse)
	if relationship == nil {
		return nil, fmt.Errorf("unable to remove relationship to %q: %w", spouseID(spouse), ErrRelationshipNotFound)
	}
	return s.RemoveRelationship(ctx, relationship)
}

func spouseID(p *gedcomx.Person) string {
	if p == nil {
		return ""
	}
	return p.ID
}
