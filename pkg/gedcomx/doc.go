// Package gedcomx provides the GEDCOM X data model used by the REST client.
//
// Entities carry both `json` and `xml` struct tags so that one type serves
// both canonical media types:
//
//	application/x-gedcomx-v1+json
//	application/x-gedcomx-v1+xml
//
// Every link-bearing entity implements Linker. Link lookup is exact and
// case-sensitive, and the first link with a matching relation wins.
//
// Type-valued fields (gender type, relationship type, ...) keep the raw URI
// sent by the server so nothing is lost when a newer server introduces a
// value this package does not know about. The Known* accessors map the URI
// onto the corresponding controlled vocabulary.
package gedcomx
