package gedcomx

import (
	"encoding/xml"
	"strings"
)

// Gedcomx is the root document returned by the API.
type Gedcomx struct {
	XMLName       xml.Name       `json:"-" xml:"http://gedcomx.org/v1/ gedcomx"`
	ID            string         `json:"id,omitempty" xml:"id,attr,omitempty"`
	Lang          string         `json:"lang,omitempty" xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty"`
	Description   URI            `json:"description,omitempty" xml:"description,attr,omitempty"`
	Attribution   *Attribution   `json:"attribution,omitempty" xml:"attribution,omitempty"`
	Persons       []Person       `json:"persons,omitempty" xml:"person,omitempty"`
	Relationships []Relationship `json:"relationships,omitempty" xml:"relationship,omitempty"`
	Links         Links          `json:"links,omitempty" xml:"link,omitempty"`
}

// Link implements Linker.
func (g *Gedcomx) Link(rel string) (Link, bool) {
	return g.Links.Find(rel)
}

// Person returns the first person of the document, or nil.
func (g *Gedcomx) Person() *Person {
	if g == nil || len(g.Persons) == 0 {
		return nil
	}
	return &g.Persons[0]
}

// Relationship returns the first relationship of the document, or nil.
func (g *Gedcomx) Relationship() *Relationship {
	if g == nil || len(g.Relationships) == 0 {
		return nil
	}
	return &g.Relationships[0]
}

// FindPerson returns the person with the given local id, or nil.
func (g *Gedcomx) FindPerson(id string) *Person {
	if g == nil || id == "" {
		return nil
	}
	for i := range g.Persons {
		if g.Persons[i].ID == id {
			return &g.Persons[i]
		}
	}
	return nil
}

// Conclusion holds the fields shared by every conclusion.
type Conclusion struct {
	ID          string       `json:"id,omitempty" xml:"id,attr,omitempty"`
	Lang        string       `json:"lang,omitempty" xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty"`
	Confidence  URI          `json:"confidence,omitempty" xml:"confidence,attr,omitempty"`
	Attribution *Attribution `json:"attribution,omitempty" xml:"attribution,omitempty"`
	Notes       []Note       `json:"notes,omitempty" xml:"note,omitempty"`
	Links       Links        `json:"links,omitempty" xml:"link,omitempty"`
}

// Link implements Linker.
func (c *Conclusion) Link(rel string) (Link, bool) {
	return c.Links.Find(rel)
}

// KnownConfidence maps the confidence URI onto ConfidenceLevels.
func (c *Conclusion) KnownConfidence() ConfidenceLevel {
	if c.Confidence == "" {
		return ""
	}
	level, _ := ConfidenceLevels.FromURI(string(c.Confidence))
	return level
}

// Attribution records who contributed a conclusion and why.
type Attribution struct {
	Contributor   *ResourceReference `json:"contributor,omitempty" xml:"contributor,omitempty"`
	Modified      int64              `json:"modified,omitempty" xml:"modified,omitempty"`
	ChangeMessage string             `json:"changeMessage,omitempty" xml:"changeMessage,omitempty"`
}

// Note is a free-form note attached to a conclusion.
type Note struct {
	Subject string `json:"subject,omitempty" xml:"subject,omitempty"`
	Text    string `json:"text,omitempty" xml:"text,omitempty"`
}

// Person is a person conclusion.
type Person struct {
	Conclusion
	Private bool               `json:"private,omitempty" xml:"private,attr,omitempty"`
	Living  bool               `json:"living,omitempty" xml:"living,omitempty"`
	Gender  *Gender            `json:"gender,omitempty" xml:"gender,omitempty"`
	Names   []Name             `json:"names,omitempty" xml:"name,omitempty"`
	Facts   []Fact             `json:"facts,omitempty" xml:"fact,omitempty"`
	Display *DisplayProperties `json:"display,omitempty" xml:"display,omitempty"`
}

// Name returns the full text of the first name form, or the display name.
func (p *Person) Name() string {
	for _, name := range p.Names {
		for _, form := range name.NameForms {
			if form.FullText != "" {
				return form.FullText
			}
		}
	}
	if p.Display != nil {
		return p.Display.Name
	}
	return ""
}

// KnownGender maps the gender URI onto GenderTypes.
func (p *Person) KnownGender() GenderType {
	if p.Gender == nil || p.Gender.Type == "" {
		return ""
	}
	g, _ := GenderTypes.FromURI(string(p.Gender.Type))
	return g
}

// Relationship is a relationship between two persons.
type Relationship struct {
	Conclusion
	Type    URI                `json:"type,omitempty" xml:"type,attr,omitempty"`
	Person1 *ResourceReference `json:"person1,omitempty" xml:"person1,omitempty"`
	Person2 *ResourceReference `json:"person2,omitempty" xml:"person2,omitempty"`
	Facts   []Fact             `json:"facts,omitempty" xml:"fact,omitempty"`
}

// KnownType maps the relationship type URI onto RelationshipTypes.
func (r *Relationship) KnownType() RelationshipType {
	if r.Type == "" {
		return ""
	}
	t, _ := RelationshipTypes.FromURI(string(r.Type))
	return t
}

// References reports whether person1 or person2 points at the local
// person id ("#<id>").
func (r *Relationship) References(personID string) bool {
	if personID == "" {
		return false
	}
	return r.Person1.Fragment() == personID || r.Person2.Fragment() == personID
}

// ResourceReference points at another resource, either in the same
// document ("#id") or elsewhere (an absolute URI).
type ResourceReference struct {
	Resource   URI    `json:"resource,omitempty" xml:"resource,attr,omitempty"`
	ResourceID string `json:"resourceId,omitempty" xml:"resourceId,attr,omitempty"`
}

// LocalRef builds a reference to an entity of the same document.
func LocalRef(id string) *ResourceReference {
	return &ResourceReference{Resource: URI("#" + id)}
}

// Fragment returns the local id of a "#id" reference, or "".
func (r *ResourceReference) Fragment() string {
	if r == nil {
		return ""
	}
	s := string(r.Resource)
	if !strings.HasPrefix(s, "#") {
		return ""
	}
	return s[1:]
}

// IsLocal reports whether the reference points into the same document.
func (r *ResourceReference) IsLocal() bool {
	return r != nil && strings.HasPrefix(string(r.Resource), "#")
}

// Gender is a gender conclusion.
type Gender struct {
	Type URI `json:"type,omitempty" xml:"type,attr,omitempty"`
}

// Name is a name conclusion.
type Name struct {
	Type      URI        `json:"type,omitempty" xml:"type,attr,omitempty"`
	NameForms []NameForm `json:"nameForms,omitempty" xml:"nameForm,omitempty"`
}

// KnownType maps the name type URI onto NameTypes.
func (n *Name) KnownType() NameType {
	if n.Type == "" {
		return ""
	}
	t, _ := NameTypes.FromURI(string(n.Type))
	return t
}

// NameForm is one representation of a name.
type NameForm struct {
	Lang     string `json:"lang,omitempty" xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty"`
	FullText string `json:"fullText,omitempty" xml:"fullText,omitempty"`
}

// Fact is a fact conclusion (birth, death, marriage, ...).
type Fact struct {
	Type  URI             `json:"type,omitempty" xml:"type,attr,omitempty"`
	Date  *Date           `json:"date,omitempty" xml:"date,omitempty"`
	Place *PlaceReference `json:"place,omitempty" xml:"place,omitempty"`
	Value string          `json:"value,omitempty" xml:"value,omitempty"`
}

// KnownType maps the fact type URI onto FactTypes.
func (f *Fact) KnownType() FactType {
	if f.Type == "" {
		return ""
	}
	t, _ := FactTypes.FromURI(string(f.Type))
	return t
}

// PlaceReference names a place, optionally pointing at its description.
type PlaceReference struct {
	Original       string `json:"original,omitempty" xml:"original,omitempty"`
	DescriptionRef URI    `json:"description,omitempty" xml:"description,attr,omitempty"`
}

// DisplayProperties is the server-computed summary of a person used by
// ancestry and descendancy results.
type DisplayProperties struct {
	Name              string `json:"name,omitempty" xml:"name,omitempty"`
	Gender            string `json:"gender,omitempty" xml:"gender,omitempty"`
	Lifespan          string `json:"lifespan,omitempty" xml:"lifespan,omitempty"`
	BirthDate         string `json:"birthDate,omitempty" xml:"birthDate,omitempty"`
	BirthPlace        string `json:"birthPlace,omitempty" xml:"birthPlace,omitempty"`
	DeathDate         string `json:"deathDate,omitempty" xml:"deathDate,omitempty"`
	DeathPlace        string `json:"deathPlace,omitempty" xml:"deathPlace,omitempty"`
	AscendancyNumber  string `json:"ascendancyNumber,omitempty" xml:"ascendancyNumber,omitempty"`
	DescendancyNumber string `json:"descendancyNumber,omitempty" xml:"descendancyNumber,omitempty"`
}
