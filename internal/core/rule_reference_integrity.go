package core

import (
	"context"
	"fmt"
)

// ReferenceIntegrityRule reports records whose animal references do not
// resolve. Dangling references are tolerated (deletes never cascade); views
// render a placeholder for the missing animal.
type ReferenceIntegrityRule struct{}

// NewReferenceIntegrityRule constructs the rule.
func NewReferenceIntegrityRule() ReferenceIntegrityRule {
	return ReferenceIntegrityRule{}
}

// Name identifies the rule in violations.
func (ReferenceIntegrityRule) Name() string {
	return "reference_integrity"
}

// Evaluate checks every animal reference in the snapshot.
func (r ReferenceIntegrityRule) Evaluate(_ context.Context, state State, _ []Change) (Result, error) {
	known := make(map[string]struct{}, len(state.Animals))
	for _, a := range state.Animals {
		known[a.ID] = struct{}{}
	}

	var res Result
	report := func(entity EntityType, recordID, field, animalID string) {
		res.Violations = append(res.Violations, Violation{
			Rule:     r.Name(),
			Severity: SeverityWarn,
			Message:  fmt.Sprintf("%s references unknown animal %s", field, animalID),
			Entity:   entity,
			EntityID: recordID,
		})
	}

	for _, rec := range state.HealthRecords {
		if _, ok := known[rec.AnimalID]; !ok {
			report(EntityHealthRecord, rec.ID, "animal_id", rec.AnimalID)
		}
	}
	for _, rec := range state.ProductionRecords {
		if _, ok := known[rec.AnimalID]; !ok {
			report(EntityProductionRecord, rec.ID, "animal_id", rec.AnimalID)
		}
	}
	for _, rec := range state.BreedingRecords {
		if _, ok := known[rec.FemaleAnimalID]; !ok {
			report(EntityBreedingRecord, rec.ID, "female_animal_id", rec.FemaleAnimalID)
		}
		if rec.MaleAnimalID != "" {
			if _, ok := known[rec.MaleAnimalID]; !ok {
				report(EntityBreedingRecord, rec.ID, "male_animal_id", rec.MaleAnimalID)
			}
		}
	}
	return res, nil
}
