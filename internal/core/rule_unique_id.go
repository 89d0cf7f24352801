package core

import (
	"context"
	"fmt"
)

// UniqueIDRule reports duplicate ids within a collection. Ids are unique by
// convention, not enforced on append, so duplicates surface here instead of
// failing a dispatch.
type UniqueIDRule struct{}

// NewUniqueIDRule constructs the rule.
func NewUniqueIDRule() UniqueIDRule {
	return UniqueIDRule{}
}

// Name identifies the rule in violations.
func (UniqueIDRule) Name() string {
	return "unique_id"
}

// Evaluate scans every collection for repeated ids.
func (r UniqueIDRule) Evaluate(_ context.Context, state State, _ []Change) (Result, error) {
	var res Result
	check := func(entity EntityType, ids []string) {
		seen := make(map[string]int, len(ids))
		for _, id := range ids {
			seen[id]++
		}
		for _, id := range ids {
			if seen[id] > 1 {
				res.Violations = append(res.Violations, Violation{
					Rule:     r.Name(),
					Severity: SeverityWarn,
					Message:  fmt.Sprintf("id %s appears %d times", id, seen[id]),
					Entity:   entity,
					EntityID: id,
				})
				seen[id] = 0
			}
		}
	}

	check(EntityAnimal, collectIDs(state.Animals, animalID))
	check(EntityHealthRecord, collectIDs(state.HealthRecords, healthRecordID))
	check(EntityBreedingRecord, collectIDs(state.BreedingRecords, breedingRecordID))
	check(EntityProductionRecord, collectIDs(state.ProductionRecords, func(p ProductionRecord) string { return p.ID }))
	check(EntityMarketPrice, collectIDs(state.MarketPrices, func(p MarketPrice) string { return p.ID }))
	check(EntityNotification, collectIDs(state.Notifications, func(n Notification) string { return n.ID }))
	return res, nil
}

func collectIDs[T any](records []T, idOf func(T) string) []string {
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		ids = append(ids, idOf(rec))
	}
	return ids
}
