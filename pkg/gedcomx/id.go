package gedcomx

import "github.com/google/uuid"

// NewID returns a fresh document-local id.
func NewID() string {
	return uuid.NewString()
}

// NewPerson builds a person with a fresh local id, one name and an
// optional gender.
func NewPerson(fullName string, gender GenderType) (*Person, error) {
	p := &Person{Conclusion: Conclusion{ID: NewID()}}

	if fullName != "" {
		p.Names = []Name{{NameForms: []NameForm{{FullText: fullName}}}}
	}

	if gender != "" {
		u, err := gender.URI()
		if err != nil {
			return nil, err
		}
		p.Gender = &Gender{Type: u}
	}

	return p, nil
}

// NewCoupleRelationship builds a couple relationship between two persons
// of the same document.
func NewCoupleRelationship(p1, p2 *Person) *Relationship {
	couple, _ := RelationshipCouple.URI()
	return &Relationship{
		Conclusion: Conclusion{ID: NewID()},
		Type:       couple,
		Person1:    LocalRef(p1.ID),
		Person2:    LocalRef(p2.ID),
	}
}
