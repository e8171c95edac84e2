// Package familysearch contains the FamilySearch extension of the GEDCOM X
// model: ordinances, ordinance reservations and change-history metadata,
// together with their controlled vocabularies.
//
// FamilySearch documents use their own media types:
//
//	application/x-fs-v1+json
//	application/x-fs-v1+xml
package familysearch
