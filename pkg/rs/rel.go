package rs

// Link relations understood by the resource views. Relations not listed
// here are still reachable through Follow.
const (
	RelSelf              = "self"
	RelCollection        = "collection"
	RelCurrentUserPerson = "current-user-person"
	RelPerson            = "person"
	RelPerson1           = "person1"
	RelPerson2           = "person2"
	RelRelationship      = "relationship"
	RelSpouses           = "spouses"
	RelAncestry          = "ancestry"
	RelDescendancy       = "descendancy"
)
