package core

import (
	"context"
	"fmt"
)

// DateValidityRule reports records whose required dates are missing. The seed
// loader maps unparseable date strings to the zero time, so zero required
// dates mean the source data was malformed. Derived computations treat such
// records as unscheduled.
type DateValidityRule struct{}

// NewDateValidityRule constructs the rule.
func NewDateValidityRule() DateValidityRule {
	return DateValidityRule{}
}

// Name identifies the rule in violations.
func (DateValidityRule) Name() string {
	return "date_validity"
}

// Evaluate checks every required date field in the snapshot.
func (r DateValidityRule) Evaluate(_ context.Context, state State, _ []Change) (Result, error) {
	var res Result
	report := func(entity EntityType, recordID, field string) {
		res.Violations = append(res.Violations, Violation{
			Rule:     r.Name(),
			Severity: SeverityWarn,
			Message:  fmt.Sprintf("%s is missing or unparseable", field),
			Entity:   entity,
			EntityID: recordID,
		})
	}

	for _, a := range state.Animals {
		if a.BirthDate.IsZero() {
			report(EntityAnimal, a.ID, "birth_date")
		}
	}
	for _, rec := range state.HealthRecords {
		if rec.Date.IsZero() {
			report(EntityHealthRecord, rec.ID, "date")
		}
	}
	for _, rec := range state.BreedingRecords {
		if rec.Date.IsZero() {
			report(EntityBreedingRecord, rec.ID, "date")
		}
	}
	for _, rec := range state.ProductionRecords {
		if rec.Date.IsZero() {
			report(EntityProductionRecord, rec.ID, "date")
		}
	}
	for _, p := range state.MarketPrices {
		if p.Date.IsZero() {
			report(EntityMarketPrice, p.ID, "date")
		}
	}
	return res, nil
}
