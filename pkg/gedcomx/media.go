package gedcomx

const (
	// JSONMediaType is the canonical GEDCOM X JSON media type.
	JSONMediaType = "application/x-gedcomx-v1+json"

	// XMLMediaType is the canonical GEDCOM X XML media type.
	XMLMediaType = "application/x-gedcomx-v1+xml"

	// Namespace is the XML namespace of GEDCOM X documents.
	Namespace = "http://gedcomx.org/v1/"

	// TypesNamespace is the namespace of the GEDCOM X controlled vocabularies.
	TypesNamespace = "http://gedcomx.org/"
)

// URI is a URI reference as it appears on the wire.
type URI string

// String returns the URI as a string.
func (u URI) String() string {
	return string(u)
}

// IsZero reports whether the URI is empty.
func (u URI) IsZero() bool {
	return u == ""
}
