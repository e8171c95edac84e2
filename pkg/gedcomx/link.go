package gedcomx

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Link is a hypermedia link embedded in a representation.
type Link struct {
	Rel      string `json:"rel,omitempty" xml:"rel,attr"`
	Href     URI    `json:"href,omitempty" xml:"href,attr,omitempty"`
	Template string `json:"template,omitempty" xml:"template,attr,omitempty"`
	Type     string `json:"type,omitempty" xml:"type,attr,omitempty"`
	Accept   string `json:"accept,omitempty" xml:"accept,attr,omitempty"`
	Allow    string `json:"allow,omitempty" xml:"allow,attr,omitempty"`
	Hreflang string `json:"hreflang,omitempty" xml:"hreflang,attr,omitempty"`
	Title    string `json:"title,omitempty" xml:"title,attr,omitempty"`
}

// Linker is implemented by every entity that carries links.
type Linker interface {
	Link(rel string) (Link, bool)
}

// Links is an ordered collection of links.
//
// In JSON, links are an object keyed by relation:
//
//	"links": {
//	  "self":   {"href": "https://api.example.org/persons/P-1"},
//	  "person": {"href": "https://api.example.org/persons/P-1"}
//	}
//
// A relation whose value is an array carries several links. Decoding keeps
// document order so that first-match lookup is deterministic. A plain array
// of link objects (each with its own "rel") is accepted as well.
type Links []Link

// Find returns the first link whose relation equals rel exactly.
func (l Links) Find(rel string) (Link, bool) {
	for _, link := range l {
		if link.Rel == rel {
			return link, true
		}
	}
	return Link{}, false
}

// All returns every link whose relation equals rel, in document order.
func (l Links) All(rel string) []Link {
	var out []Link
	for _, link := range l {
		if link.Rel == rel {
			out = append(out, link)
		}
	}
	return out
}

// Rels returns the distinct relations in document order.
func (l Links) Rels() []string {
	seen := make(map[string]bool, len(l))
	var out []string
	for _, link := range l {
		if !seen[link.Rel] {
			seen[link.Rel] = true
			out = append(out, link.Rel)
		}
	}
	return out
}

// MarshalJSON encodes the links as an object keyed by relation.
func (l Links) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, rel := range l.Rels() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(rel)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		group := l.All(rel)
		for j := range group {
			group[j].Rel = ""
		}

		var value []byte
		if len(group) == 1 {
			value, err = json.Marshal(group[0])
		} else {
			value, err = json.Marshal(group)
		}
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes either the keyed-object form or an array of links.
func (l *Links) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if data[0] == '[' {
		var list []Link
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*l = list
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("links: expected object, got %v", tok)
	}

	var out Links
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		rel, ok := tok.(string)
		if !ok {
			return fmt.Errorf("links: expected relation name, got %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("links: relation %q: %w", rel, err)
		}
		raw = bytes.TrimSpace(raw)

		var group []Link
		if len(raw) > 0 && raw[0] == '[' {
			if err := json.Unmarshal(raw, &group); err != nil {
				return fmt.Errorf("links: relation %q: %w", rel, err)
			}
		} else {
			var link Link
			if err := json.Unmarshal(raw, &link); err != nil {
				return fmt.Errorf("links: relation %q: %w", rel, err)
			}
			group = []Link{link}
		}

		for _, link := range group {
			link.Rel = rel
			out = append(out, link)
		}
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*l = out
	return nil
}
