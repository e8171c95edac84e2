package familysearch

import "github.com/jonesej/gedcomx-java/pkg/gedcomx"

const (
	// JSONMediaType is the FamilySearch JSON media type.
	JSONMediaType = "application/x-fs-v1+json"

	// XMLMediaType is the FamilySearch XML media type.
	XMLMediaType = "application/x-fs-v1+xml"

	// Namespace is the FamilySearch platform namespace.
	Namespace = "http://familysearch.org/v1/"
)

// Platform is a GEDCOM X document carrying FamilySearch extension elements.
type Platform struct {
	gedcomx.Gedcomx
	Ordinances   []Ordinance   `json:"ordinances,omitempty" xml:"http://familysearch.org/v1/ ordinance,omitempty"`
	Reservations []Reservation `json:"reservations,omitempty" xml:"http://familysearch.org/v1/ reservation,omitempty"`
	ChangeInfo   []ChangeInfo  `json:"changeInfo,omitempty" xml:"http://familysearch.org/v1/ changeInfo,omitempty"`
}

// FindOrdinance returns the ordinance with the given id, or nil.
func (p *Platform) FindOrdinance(id string) *Ordinance {
	if p == nil || id == "" {
		return nil
	}
	for i := range p.Ordinances {
		if p.Ordinances[i].ID == id {
			return &p.Ordinances[i]
		}
	}
	return nil
}

// Ordinance is a temple ordinance of a person.
type Ordinance struct {
	gedcomx.Conclusion
	Type        gedcomx.URI                `json:"type,omitempty" xml:"type,attr,omitempty"`
	Status      gedcomx.URI                `json:"status,omitempty" xml:"http://familysearch.org/v1/ status,omitempty"`
	Date        *gedcomx.Date              `json:"date,omitempty" xml:"http://familysearch.org/v1/ date,omitempty"`
	TempleCode  string                     `json:"templeCode,omitempty" xml:"http://familysearch.org/v1/ templeCode,omitempty"`
	Person      *gedcomx.ResourceReference `json:"person,omitempty" xml:"http://familysearch.org/v1/ person,omitempty"`
	Reserver    *gedcomx.ResourceReference `json:"reserver,omitempty" xml:"http://familysearch.org/v1/ reserver,omitempty"`
	Participant *gedcomx.ResourceReference `json:"participant,omitempty" xml:"http://familysearch.org/v1/ participant,omitempty"`
}

// KnownType maps the ordinance type URI onto OrdinanceTypes.
func (o *Ordinance) KnownType() OrdinanceType {
	if o.Type == "" {
		return ""
	}
	t, _ := OrdinanceTypes.FromURI(string(o.Type))
	return t
}

// KnownStatus maps the ordinance status URI onto OrdinanceStatuses.
func (o *Ordinance) KnownStatus() OrdinanceStatus {
	if o.Status == "" {
		return ""
	}
	s, _ := OrdinanceStatuses.FromURI(string(o.Status))
	return s
}

// IsReserved reports whether the ordinance is in one of the reserved states.
func (o *Ordinance) IsReserved() bool {
	switch o.KnownStatus() {
	case StatusReserved, StatusReservedPrinted, StatusReservedWaiting,
		StatusReservedShared, StatusReservedSharedPrinted:
		return true
	default:
		return false
	}
}

// Reservation is an ordinance reservation.
//
// Deprecated: Reservation carries no fields beyond the conclusion base and
// exists only so that documents which still serialize a "reservations"
// wrapper keep decoding. Use Ordinance with a reserved status instead. It
// will be removed once the API stops emitting it.
type Reservation struct {
	gedcomx.Conclusion
}

// ChangeInfo describes one change in a change-history entry.
type ChangeInfo struct {
	Operation      gedcomx.URI                `json:"operation,omitempty" xml:"operation,attr,omitempty"`
	ObjectType     gedcomx.URI                `json:"objectType,omitempty" xml:"objectType,attr,omitempty"`
	ObjectModifier gedcomx.URI                `json:"objectModifier,omitempty" xml:"objectModifier,attr,omitempty"`
	Reason         string                     `json:"reason,omitempty" xml:"http://familysearch.org/v1/ reason,omitempty"`
	Parent         *gedcomx.ResourceReference `json:"parent,omitempty" xml:"http://familysearch.org/v1/ parent,omitempty"`
}

// KnownOperation maps the operation URI onto ChangeOperations.
func (c *ChangeInfo) KnownOperation() ChangeOperation {
	if c.Operation == "" {
		return ""
	}
	op, _ := ChangeOperations.FromURI(string(c.Operation))
	return op
}

// KnownObjectModifier maps the object modifier URI onto
// ChangeObjectModifiers. The vocabulary has no sentinel, so an unmapped
// modifier is an error.
func (c *ChangeInfo) KnownObjectModifier() (ChangeObjectModifier, error) {
	return ChangeObjectModifiers.FromURI(string(c.ObjectModifier))
}
