package rs

import (
	"context"

	"github.com/jonesej/gedcomx-java/pkg/gedcomx"
)

// DescendancyResource is the result of a descendancy query.
var DescendancyResource = &Resource[gedcomx.Gedcomx]{
	Name:       "descendancy",
	MediaTypes: GedcomxMediaTypes,
	Rels:       []string{RelSelf},
}

// DescendancyResultsState is the state of a descendancy query.
type DescendancyResultsState struct {
	*State[gedcomx.Gedcomx]
}

// ReadDescendancy reads the descendancy result at uri.
func ReadDescendancy(ctx context.Context, client *Client, uri string) (*DescendancyResultsState, error) {
	s, err := Read(ctx, client, DescendancyResource, uri)
	if err != nil {
		return nil, err
	}
	return &DescendancyResultsState{s}, nil
}

// Tree returns the descendancy as a tree, or nil when nothing was decoded.
func (s *DescendancyResultsState) Tree() *DescendancyTree {
	if s.Entity() == nil {
		return nil
	}
	return NewDescendancyTree(s.Entity())
}
