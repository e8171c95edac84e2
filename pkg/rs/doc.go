// Package rs is a client for the GEDCOM X hypermedia REST API.
//
// Navigation starts from an entry point (ReadCollection, ReadPerson, ...)
// and proceeds by following the links embedded in each response. Every
// step returns a new immutable State wrapping the request that was sent,
// the response that came back and, when the status was a success, the
// decoded entity.
//
//	client := rs.New(http.DefaultClient, rs.WithAccessToken(token))
//	collection, err := rs.ReadCollection(ctx, client, "https://api.example.org/platform/collections/tree")
//	if err != nil {
//		return err
//	}
//	me, ok, err := collection.ReadCurrentUserPerson(ctx)
//
// Read-only navigations report a missing link with ok == false. Mutating
// navigations report it as a *LinkNotFoundError.
package rs
