package rs

import (
	"context"
	"net/http"

	"github.com/jonesej/gedcomx-java/pkg/gedcomx"
)

// RelationshipResource is a document describing one relationship.
var RelationshipResource = &Resource[gedcomx.Gedcomx]{
	Name:       "relationship",
	MediaTypes: GedcomxMediaTypes,
	Rels:       []string{RelSelf, RelPerson1, RelPerson2},
	Scope:      relationshipScope,
}

func relationshipScope(doc *gedcomx.Gedcomx) gedcomx.Linker {
	if r := doc.Relationship(); r != nil {
		return r
	}
	return doc
}

// RelationshipState is the state of a relationship document.
type RelationshipState struct {
	*State[gedcomx.Gedcomx]
}

// ReadRelationship reads the relationship at uri.
func ReadRelationship(ctx context.Context, client *Client, uri string) (*RelationshipState, error) {
	s, err := Read(ctx, client, RelationshipResource, uri)
	if err != nil {
		return nil, err
	}
	return &RelationshipState{s}, nil
}

// Relationship returns the relationship of the document, or nil.
func (s *RelationshipState) Relationship() *gedcomx.Relationship {
	return s.Entity().Relationship()
}

// Person1 returns the first person when it is embedded in the document.
func (s *RelationshipState) Person1() *gedcomx.Person {
	if r := s.Relationship(); r != nil {
		return s.Entity().FindPerson(r.Person1.Fragment())
	}
	return nil
}

// Person2 returns the second person when it is embedded in the document.
func (s *RelationshipState) Person2() *gedcomx.Person {
	if r := s.Relationship(); r != nil {
		return s.Entity().FindPerson(r.Person2.Fragment())
	}
	return nil
}

// ReadPerson1 reads the first person of the relationship.
func (s *RelationshipState) ReadPerson1(ctx context.Context) (*PersonState, bool, error) {
	r := s.Relationship()
	if r == nil {
		return nil, false, nil
	}
	return s.readMember(ctx, RelPerson1, r.Person1)
}

// ReadPerson2 reads the second person of the relationship.
func (s *RelationshipState) ReadPerson2(ctx context.Context) (*PersonState, bool, error) {
	r := s.Relationship()
	if r == nil {
		return nil, false, nil
	}
	return s.readMember(ctx, RelPerson2, r.Person2)
}

// readMember follows the relation link when present, otherwise the
// reference itself when it points outside the document. Local references
// are served by Person1 and Person2 instead.
func (s *RelationshipState) readMember(ctx context.Context, rel string, ref *gedcomx.ResourceReference) (*PersonState, bool, error) {
	next, ok, err := optional(Follow(ctx, s.State, rel, http.MethodGet, PersonResource))
	if err != nil {
		return nil, false, err
	}
	if ok {
		return &PersonState{next}, true, nil
	}

	if ref == nil || ref.Resource == "" || ref.IsLocal() {
		return nil, false, nil
	}
	next, err = FollowHref(ctx, s.State, ref.Resource, http.MethodGet, PersonResource)
	if err != nil {
		return nil, false, err
	}
	return &PersonState{next}, true, nil
}
