package rs

import (
	"context"
	"net/http"

	"github.com/jonesej/gedcomx-java/pkg/gedcomx"
)

// CollectionResource is the entry point of a GEDCOM X collection.
var CollectionResource = &Resource[gedcomx.Gedcomx]{
	Name:       "collection",
	MediaTypes: GedcomxMediaTypes,
	Rels:       []string{RelSelf, RelCurrentUserPerson},
}

// CollectionState is the state of a collection document.
type CollectionState struct {
	*State[gedcomx.Gedcomx]
}

// ReadCollection reads the collection at uri.
func ReadCollection(ctx context.Context, client *Client, uri string) (*CollectionState, error) {
	s, err := Read(ctx, client, CollectionResource, uri)
	if err != nil {
		return nil, err
	}
	return &CollectionState{s}, nil
}

// ReadCurrentUserPerson reads the person of the authenticated user.
func (s *CollectionState) ReadCurrentUserPerson(ctx context.Context) (*PersonState, bool, error) {
	next, ok, err := optional(Follow(ctx, s.State, RelCurrentUserPerson, http.MethodGet, PersonResource))
	if !ok {
		return nil, false, err
	}
	return &PersonState{next}, true, nil
}

// ReadPerson reads the person at href, resolved against the collection URL.
func (s *CollectionState) ReadPerson(ctx context.Context, href gedcomx.URI) (*PersonState, error) {
	next, err := FollowHref(ctx, s.State, href, http.MethodGet, PersonResource)
	if err != nil {
		return nil, err
	}
	return &PersonState{next}, nil
}
