package familysearch

import (
	"github.com/jonesej/gedcomx-java/pkg/gedcomx"
	"github.com/jonesej/gedcomx-java/pkg/vocab"
)

// OrdinanceStatus enumerates the reservation states of an ordinance.
type OrdinanceStatus string

const (
	// The ordinance is not needed because the person was born in the covenant.
	StatusBornInCovenant OrdinanceStatus = "BornInCovenant"

	// The ordinance has been completed.
	StatusCompleted OrdinanceStatus = "Completed"

	// The ordinance can not be reserved because more information is needed about the person.
	StatusNeedMoreInformation OrdinanceStatus = "NeedMoreInformation"

	// The ordinance can not be reserved without special permission.
	StatusNeedPermission OrdinanceStatus = "NeedPermission"

	// The ordinance is not available to be reserved.
	StatusNotAvailable OrdinanceStatus = "NotAvailable"

	// The ordinance is not needed according to the policies of the Church.
	StatusNotNeeded OrdinanceStatus = "NotNeeded"

	// The ordinance can not currently be reserved but is expected to become Ready.
	StatusNotReady OrdinanceStatus = "NotReady"

	// The ordinance can be reserved.
	StatusReady OrdinanceStatus = "Ready"

	// The ordinance has been reserved.
	StatusReserved OrdinanceStatus = "Reserved"

	// The ordinance has been reserved and printed.
	StatusReservedPrinted OrdinanceStatus = "ReservedPrinted"

	// The ordinance has been reserved and is waiting for prerequisite ordinances.
	StatusReservedWaiting OrdinanceStatus = "ReservedWaiting"

	// The ordinance has been reserved and shared with Church inventory.
	StatusReservedShared OrdinanceStatus = "ReservedShared"

	// The ordinance was shared with Church inventory; a secondary reservation is available.
	StatusReservedSharedReady OrdinanceStatus = "ReservedSharedReady"

	// The ordinance was shared with Church inventory and has been reserved and printed.
	StatusReservedSharedPrinted OrdinanceStatus = "ReservedSharedPrinted"

	// Any status this client does not know about.
	StatusOther OrdinanceStatus = "OTHER"
)

// OrdinanceStatuses is the vocabulary of OrdinanceStatus.
var OrdinanceStatuses = vocab.Define(vocab.Definition[OrdinanceStatus]{
	Name:      "OrdinanceStatus",
	Namespace: Namespace,
	Members: []OrdinanceStatus{
		StatusBornInCovenant, StatusCompleted, StatusNeedMoreInformation,
		StatusNeedPermission, StatusNotAvailable, StatusNotNeeded,
		StatusNotReady, StatusReady, StatusReserved, StatusReservedPrinted,
		StatusReservedWaiting, StatusReservedShared, StatusReservedSharedReady,
		StatusReservedSharedPrinted, StatusOther,
	},
	Unknown: StatusOther,
})

// URI returns the URI bound to s.
func (s OrdinanceStatus) URI() (gedcomx.URI, error) {
	u, err := OrdinanceStatuses.ToURI(s)
	return gedcomx.URI(u), err
}

// OrdinanceType enumerates the temple ordinances.
type OrdinanceType string

const (
	OrdinanceBaptism               OrdinanceType = "Baptism"
	OrdinanceConfirmation          OrdinanceType = "Confirmation"
	OrdinanceInitiatory            OrdinanceType = "Initiatory"
	OrdinanceEndowment             OrdinanceType = "Endowment"
	OrdinanceSealingChildToParents OrdinanceType = "SealingChildToParents"
	OrdinanceSealingToSpouse       OrdinanceType = "SealingToSpouse"
	OrdinanceOther                 OrdinanceType = "OTHER"
)

// OrdinanceTypes is the vocabulary of OrdinanceType.
var OrdinanceTypes = vocab.Define(vocab.Definition[OrdinanceType]{
	Name:      "OrdinanceType",
	Namespace: Namespace,
	Members: []OrdinanceType{
		OrdinanceBaptism, OrdinanceConfirmation, OrdinanceInitiatory,
		OrdinanceEndowment, OrdinanceSealingChildToParents,
		OrdinanceSealingToSpouse, OrdinanceOther,
	},
	Unknown: OrdinanceOther,
})

// URI returns the URI bound to t.
func (t OrdinanceType) URI() (gedcomx.URI, error) {
	u, err := OrdinanceTypes.ToURI(t)
	return gedcomx.URI(u), err
}

// ChangeObjectModifier enumerates the objects a change can be scoped to.
// Person and Couple live in the GEDCOM X types namespace.
type ChangeObjectModifier string

const (
	ModifierPerson                      ChangeObjectModifier = "Person"
	ModifierCouple                      ChangeObjectModifier = "Couple"
	ModifierChildAndParentsRelationship ChangeObjectModifier = "ChildAndParentsRelationship"
)

// ChangeObjectModifiers is the vocabulary of ChangeObjectModifier. It has
// no unknown sentinel.
var ChangeObjectModifiers = vocab.Define(vocab.Definition[ChangeObjectModifier]{
	Name:      "ChangeObjectModifier",
	Namespace: Namespace,
	Members: []ChangeObjectModifier{
		ModifierPerson, ModifierCouple, ModifierChildAndParentsRelationship,
	},
	Namespaces: map[ChangeObjectModifier]string{
		ModifierPerson: gedcomx.TypesNamespace,
		ModifierCouple: gedcomx.TypesNamespace,
	},
})

// URI returns the URI bound to m.
func (m ChangeObjectModifier) URI() (gedcomx.URI, error) {
	u, err := ChangeObjectModifiers.ToURI(m)
	return gedcomx.URI(u), err
}

// ChangeOperation enumerates the operations recorded in change history.
type ChangeOperation string

const (
	OperationCreate  ChangeOperation = "Create"
	OperationRead    ChangeOperation = "Read"
	OperationUpdate  ChangeOperation = "Update"
	OperationDelete  ChangeOperation = "Delete"
	OperationMerge   ChangeOperation = "Merge"
	OperationUnmerge ChangeOperation = "Unmerge"
	OperationRestore ChangeOperation = "Restore"
	OperationOther   ChangeOperation = "OTHER"
)

// ChangeOperations is the vocabulary of ChangeOperation.
var ChangeOperations = vocab.Define(vocab.Definition[ChangeOperation]{
	Name:      "ChangeOperation",
	Namespace: Namespace,
	Members: []ChangeOperation{
		OperationCreate, OperationRead, OperationUpdate, OperationDelete,
		OperationMerge, OperationUnmerge, OperationRestore, OperationOther,
	},
	Unknown: OperationOther,
})

// URI returns the URI bound to o.
func (o ChangeOperation) URI() (gedcomx.URI, error) {
	u, err := ChangeOperations.ToURI(o)
	return gedcomx.URI(u), err
}
