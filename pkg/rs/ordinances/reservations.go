// Package ordinances reads and cancels FamilySearch temple ordinance
// reservations.
package ordinances

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonesej/gedcomx-java/pkg/familysearch"
	"github.com/jonesej/gedcomx-java/pkg/gedcomx"
	"github.com/jonesej/gedcomx-java/pkg/rs"
)

// RelReservation links an ordinance to its reservation.
const RelReservation = "reservation"

// MediaTypes are the FamilySearch media types.
var MediaTypes = rs.MediaTypes{
	JSON: familysearch.JSONMediaType,
	XML:  familysearch.XMLMediaType,
}

// ReservationsResource is the list of ordinances reserved by a user.
var ReservationsResource = &rs.Resource[familysearch.Platform]{
	Name:       "reservations",
	MediaTypes: MediaTypes,
	Rels:       []string{rs.RelSelf, rs.RelPerson},
}

// ReservationsState is the state of a reservations document.
type ReservationsState struct {
	*rs.State[familysearch.Platform]
}

// ReadReservations reads the reservations document at uri.
func ReadReservations(ctx context.Context, client *rs.Client, uri string) (*ReservationsState, error) {
	s, err := rs.Read(ctx, client, ReservationsResource, uri)
	if err != nil {
		return nil, err
	}
	return &ReservationsState{s}, nil
}

// Ordinances returns the ordinances of the document.
func (s *ReservationsState) Ordinances() []familysearch.Ordinance {
	if doc := s.Entity(); doc != nil {
		return doc.Ordinances
	}
	return nil
}

// Reserved returns the ordinances currently in a reserved status.
func (s *ReservationsState) Reserved() []familysearch.Ordinance {
	var out []familysearch.Ordinance
	for _, o := range s.Ordinances() {
		if o.IsReserved() {
			out = append(out, o)
		}
	}
	return out
}

// Reservations returns the legacy reservation entries of the document.
//
//nolint:staticcheck // Reservation is deprecated but still on the wire.
func (s *ReservationsState) Reservations() []familysearch.Reservation {
	if doc := s.Entity(); doc != nil {
		return doc.Reservations
	}
	return nil
}

// ReadPerson reads the person an ordinance is for: through the ordinance's
// person link, otherwise through its person reference. A local reference
// is resolved to the person of the document and read through that
// person's person or self link.
func (s *ReservationsState) ReadPerson(ctx context.Context, o *familysearch.Ordinance) (*rs.PersonState, bool, error) {
	if o == nil {
		return nil, false, nil
	}

	next, err := rs.FollowFrom(ctx, s.State, o, http.MethodGet, rs.PersonResource, rs.RelPerson)
	if err == nil {
		return &rs.PersonState{State: next}, true, nil
	}
	if !errors.Is(err, rs.ErrLinkNotFound) {
		return nil, false, err
	}

	ref := o.Person
	switch {
	case ref == nil || ref.Resource == "":
		return nil, false, nil
	case ref.IsLocal():
		doc := s.Entity()
		if doc == nil {
			return nil, false, nil
		}
		p := doc.FindPerson(ref.Fragment())
		if p == nil {
			return nil, false, nil
		}
		next, err = rs.FollowFrom(ctx, s.State, p, http.MethodGet, rs.PersonResource, rs.RelPerson, rs.RelSelf)
	default:
		next, err = rs.FollowHref(ctx, s.State, ref.Resource, http.MethodGet, rs.PersonResource)
	}
	if errors.Is(err, rs.ErrLinkNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &rs.PersonState{State: next}, true, nil
}

// CancelReservation deletes the reservation of an ordinance through its
// reservation link, or its self link when it has no reservation link. It
// fails with a *rs.LinkNotFoundError when the ordinance has neither.
func (s *ReservationsState) CancelReservation(ctx context.Context, o *familysearch.Ordinance) (*ReservationsState, error) {
	if o == nil {
		return nil, errors.New("ordinances: CancelReservation requires an ordinance")
	}
	next, err := rs.FollowFrom(ctx, s.State, o, http.MethodDelete, ReservationsResource, RelReservation, rs.RelSelf)
	if err != nil {
		return nil, fmt.Errorf("unable to cancel reservation of %s: %w", describe(o), err)
	}
	if err := next.DecodeErr(); err != nil {
		return nil, err
	}
	return &ReservationsState{next}, nil
}

func describe(o *familysearch.Ordinance) string {
	if o.ID != "" {
		return fmt.Sprintf("ordinance %q", o.ID)
	}
	if t := o.KnownType(); t != "" {
		return string(t)
	}
	return "ordinance"
}

var _ gedcomx.Linker = (*familysearch.Ordinance)(nil)
