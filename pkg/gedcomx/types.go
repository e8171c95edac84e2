package gedcomx

import "github.com/jonesej/gedcomx-java/pkg/vocab"

// GenderType enumerates the GEDCOM X gender types.
type GenderType string

const (
	GenderMale     GenderType = "Male"
	GenderFemale   GenderType = "Female"
	GenderUnknown  GenderType = "Unknown"
	GenderIntersex GenderType = "Intersex"
	GenderOther    GenderType = "OTHER"
)

// GenderTypes is the vocabulary of GenderType.
var GenderTypes = vocab.Define(vocab.Definition[GenderType]{
	Name:      "GenderType",
	Namespace: TypesNamespace,
	Members:   []GenderType{GenderMale, GenderFemale, GenderUnknown, GenderIntersex, GenderOther},
	Unknown:   GenderOther,
})

// URI returns the URI bound to g.
func (g GenderType) URI() (URI, error) {
	u, err := GenderTypes.ToURI(g)
	return URI(u), err
}

// RelationshipType enumerates the GEDCOM X relationship types.
type RelationshipType string

const (
	RelationshipCouple      RelationshipType = "Couple"
	RelationshipParentChild RelationshipType = "ParentChild"
	RelationshipEnslavedBy  RelationshipType = "EnslavedBy"
	RelationshipOther       RelationshipType = "OTHER"
)

// RelationshipTypes is the vocabulary of RelationshipType.
var RelationshipTypes = vocab.Define(vocab.Definition[RelationshipType]{
	Name:      "RelationshipType",
	Namespace: TypesNamespace,
	Members:   []RelationshipType{RelationshipCouple, RelationshipParentChild, RelationshipEnslavedBy, RelationshipOther},
	Unknown:   RelationshipOther,
})

// URI returns the URI bound to r.
func (r RelationshipType) URI() (URI, error) {
	u, err := RelationshipTypes.ToURI(r)
	return URI(u), err
}

// NameType enumerates the GEDCOM X name types.
type NameType string

const (
	NameBirth     NameType = "BirthName"
	NameMarried   NameType = "MarriedName"
	NameAlsoKnown NameType = "AlsoKnownAs"
	NameNickname  NameType = "Nickname"
	NameAdoptive  NameType = "AdoptiveName"
	NameFormal    NameType = "FormalName"
	NameReligious NameType = "ReligiousName"
	NameOther     NameType = "OTHER"
)

// NameTypes is the vocabulary of NameType.
var NameTypes = vocab.Define(vocab.Definition[NameType]{
	Name:      "NameType",
	Namespace: TypesNamespace,
	Members: []NameType{
		NameBirth, NameMarried, NameAlsoKnown, NameNickname,
		NameAdoptive, NameFormal, NameReligious, NameOther,
	},
	Unknown: NameOther,
})

// URI returns the URI bound to n.
func (n NameType) URI() (URI, error) {
	u, err := NameTypes.ToURI(n)
	return URI(u), err
}

// ConfidenceLevel enumerates the GEDCOM X confidence levels.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "High"
	ConfidenceMedium ConfidenceLevel = "Medium"
	ConfidenceLow    ConfidenceLevel = "Low"
	ConfidenceOther  ConfidenceLevel = "OTHER"
)

// ConfidenceLevels is the vocabulary of ConfidenceLevel.
var ConfidenceLevels = vocab.Define(vocab.Definition[ConfidenceLevel]{
	Name:      "ConfidenceLevel",
	Namespace: TypesNamespace,
	Members:   []ConfidenceLevel{ConfidenceHigh, ConfidenceMedium, ConfidenceLow, ConfidenceOther},
	Unknown:   ConfidenceOther,
})

// URI returns the URI bound to c.
func (c ConfidenceLevel) URI() (URI, error) {
	u, err := ConfidenceLevels.ToURI(c)
	return URI(u), err
}

// FactType enumerates the GEDCOM X fact types this client understands.
type FactType string

const (
	FactBirth       FactType = "Birth"
	FactChristening FactType = "Christening"
	FactDeath       FactType = "Death"
	FactBurial      FactType = "Burial"
	FactMarriage    FactType = "Marriage"
	FactDivorce     FactType = "Divorce"
	FactResidence   FactType = "Residence"
	FactOccupation  FactType = "Occupation"
	FactOther       FactType = "OTHER"
)

// FactTypes is the vocabulary of FactType.
var FactTypes = vocab.Define(vocab.Definition[FactType]{
	Name:      "FactType",
	Namespace: TypesNamespace,
	Members: []FactType{
		FactBirth, FactChristening, FactDeath, FactBurial,
		FactMarriage, FactDivorce, FactResidence, FactOccupation, FactOther,
	},
	Unknown: FactOther,
})

// URI returns the URI bound to f.
func (f FactType) URI() (URI, error) {
	u, err := FactTypes.ToURI(f)
	return URI(u), err
}
