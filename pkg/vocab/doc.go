// Package vocab maps controlled-vocabulary members to their canonical URIs.
//
// A controlled vocabulary is a closed set of symbols (for example the
// FamilySearch ordinance statuses "Ready", "Reserved", ...) where each symbol
// is bound to exactly one URI, normally the vocabulary namespace followed by
// the symbol:
//
//	http://familysearch.org/v1/Ready
//
// Individual members may live in a different namespace than the rest of the
// vocabulary (ChangeObjectModifier borrows "Person" and "Couple" from the
// GEDCOM X types namespace).
//
// # Unknown values
//
// Vocabularies that declare an unknown sentinel (conventionally "OTHER")
// resolve every unmapped URI to that sentinel. Vocabularies without one
// return a *LookupError wrapping ErrUnmappedURI.
//
// # Registry
//
// Vocabularies created with Define are also added to a process-wide registry
// so that tooling can resolve an arbitrary URI without knowing which
// vocabulary it belongs to:
//
//	for _, m := range vocab.Lookup("http://gedcomx.org/Couple") {
//	    fmt.Println(m.Vocabulary, m.Symbol)
//	}
package vocab
