package rs

import (
	"context"

	"github.com/jonesej/gedcomx-java/pkg/gedcomx"
)

// AncestryResource is the result of an ancestry query.
var AncestryResource = &Resource[gedcomx.Gedcomx]{
	Name:       "ancestry",
	MediaTypes: GedcomxMediaTypes,
	Rels:       []string{RelSelf},
}

// AncestryResultsState is the state of an ancestry query.
type AncestryResultsState struct {
	*State[gedcomx.Gedcomx]
}

// ReadAncestry reads the ancestry result at uri.
func ReadAncestry(ctx context.Context, client *Client, uri string) (*AncestryResultsState, error) {
	s, err := Read(ctx, client, AncestryResource, uri)
	if err != nil {
		return nil, err
	}
	return &AncestryResultsState{s}, nil
}

// Tree returns the ancestry as a tree, or nil when nothing was decoded.
func (s *AncestryResultsState) Tree() *AncestryTree {
	if s.Entity() == nil {
		return nil
	}
	return NewAncestryTree(s.Entity())
}
