package domain

// Action is the closed set of state transitions understood by the reducer.
// The set is sealed: only the variants in this file implement it, and adding
// a variant means extending the reducer in the same change.
type Action interface {
	isAction()
}

// SetLanguage switches the active display language.
type SetLanguage struct {
	Language Language
}

// AddAnimal appends an animal to the herd.
type AddAnimal struct {
	Animal Animal
}

// UpdateAnimal replaces the animal whose id matches, in place.
type UpdateAnimal struct {
	Animal Animal
}

// DeleteAnimal removes every animal with the given id. Related records are
// left untouched; dangling references are reported by validation, not
// cascaded.
type DeleteAnimal struct {
	ID string
}

// AddHealthRecord appends a health record.
type AddHealthRecord struct {
	Record HealthRecord
}

// UpdateHealthRecord replaces the health record whose id matches, in place.
type UpdateHealthRecord struct {
	Record HealthRecord
}

// DeleteHealthRecord removes every health record with the given id.
type DeleteHealthRecord struct {
	ID string
}

// AddBreedingRecord appends a breeding record.
type AddBreedingRecord struct {
	Record BreedingRecord
}

// UpdateBreedingRecord replaces the breeding record whose id matches, in place.
type UpdateBreedingRecord struct {
	Record BreedingRecord
}

// DeleteBreedingRecord removes every breeding record with the given id.
type DeleteBreedingRecord struct {
	ID string
}

// AddProductionRecord appends a production record. Production records have no
// update or delete transitions.
type AddProductionRecord struct {
	Record ProductionRecord
}

// UpdateNotificationStatus patches the status of the notification whose id
// matches. Unknown ids are a no-op.
type UpdateNotificationStatus struct {
	ID     string
	Status NotificationStatus
}

func (SetLanguage) isAction()              {}
func (AddAnimal) isAction()                {}
func (UpdateAnimal) isAction()             {}
func (DeleteAnimal) isAction()             {}
func (AddHealthRecord) isAction()          {}
func (UpdateHealthRecord) isAction()       {}
func (DeleteHealthRecord) isAction()       {}
func (AddBreedingRecord) isAction()        {}
func (UpdateBreedingRecord) isAction()     {}
func (DeleteBreedingRecord) isAction()     {}
func (AddProductionRecord) isAction()      {}
func (UpdateNotificationStatus) isAction() {}
