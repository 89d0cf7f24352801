package core

import "herdcore/pkg/domain"

// reduce applies an action to a state snapshot and returns the next snapshot
// plus the changes it performed. It is pure and copy-on-write: only the
// collection an action targets is reallocated, every other collection is
// shared with the previous snapshot. An action that matches nothing returns
// the input state unchanged with no changes. Unknown action values reduce to
// the input state.
func reduce(state State, action Action) (State, []Change) {
	switch a := action.(type) {
	case domain.SetLanguage:
		if state.Language == a.Language {
			return state, nil
		}
		next := state
		before := state.Language
		next.Language = a.Language
		return next, []Change{{Entity: EntityLanguage, Action: ChangeUpdate, Before: before, After: a.Language}}

	case domain.AddAnimal:
		next := state
		next.Animals = appendRecord(state.Animals, a.Animal)
		return next, []Change{{Entity: EntityAnimal, Action: ChangeCreate, After: a.Animal}}

	case domain.UpdateAnimal:
		updated, before := replaceRecord(state.Animals, a.Animal, animalID)
		if updated == nil {
			return state, nil
		}
		next := state
		next.Animals = updated
		return next, []Change{{Entity: EntityAnimal, Action: ChangeUpdate, Before: *before, After: a.Animal}}

	case domain.DeleteAnimal:
		remaining, removed := removeRecords(state.Animals, a.ID, animalID)
		if len(removed) == 0 {
			return state, nil
		}
		next := state
		next.Animals = remaining
		return next, deleteChanges(EntityAnimal, removed)

	case domain.AddHealthRecord:
		next := state
		next.HealthRecords = appendRecord(state.HealthRecords, a.Record)
		return next, []Change{{Entity: EntityHealthRecord, Action: ChangeCreate, After: a.Record}}

	case domain.UpdateHealthRecord:
		updated, before := replaceRecord(state.HealthRecords, a.Record, healthRecordID)
		if updated == nil {
			return state, nil
		}
		next := state
		next.HealthRecords = updated
		return next, []Change{{Entity: EntityHealthRecord, Action: ChangeUpdate, Before: *before, After: a.Record}}

	case domain.DeleteHealthRecord:
		remaining, removed := removeRecords(state.HealthRecords, a.ID, healthRecordID)
		if len(removed) == 0 {
			return state, nil
		}
		next := state
		next.HealthRecords = remaining
		return next, deleteChanges(EntityHealthRecord, removed)

	case domain.AddBreedingRecord:
		next := state
		next.BreedingRecords = appendRecord(state.BreedingRecords, a.Record)
		return next, []Change{{Entity: EntityBreedingRecord, Action: ChangeCreate, After: a.Record}}

	case domain.UpdateBreedingRecord:
		updated, before := replaceRecord(state.BreedingRecords, a.Record, breedingRecordID)
		if updated == nil {
			return state, nil
		}
		next := state
		next.BreedingRecords = updated
		return next, []Change{{Entity: EntityBreedingRecord, Action: ChangeUpdate, Before: *before, After: a.Record}}

	case domain.DeleteBreedingRecord:
		remaining, removed := removeRecords(state.BreedingRecords, a.ID, breedingRecordID)
		if len(removed) == 0 {
			return state, nil
		}
		next := state
		next.BreedingRecords = remaining
		return next, deleteChanges(EntityBreedingRecord, removed)

	case domain.AddProductionRecord:
		next := state
		next.ProductionRecords = appendRecord(state.ProductionRecords, a.Record)
		return next, []Change{{Entity: EntityProductionRecord, Action: ChangeCreate, After: a.Record}}

	case domain.UpdateNotificationStatus:
		for i, n := range state.Notifications {
			if n.ID != a.ID || n.Status == a.Status {
				continue
			}
			patched := n
			patched.Status = a.Status
			updated := make([]Notification, len(state.Notifications))
			copy(updated, state.Notifications)
			updated[i] = patched
			next := state
			next.Notifications = updated
			return next, []Change{{Entity: EntityNotification, Action: ChangeUpdate, Before: n, After: patched}}
		}
		return state, nil

	default:
		return state, nil
	}
}

func animalID(a Animal) string                 { return a.ID }
func healthRecordID(r HealthRecord) string     { return r.ID }
func breedingRecordID(r BreedingRecord) string { return r.ID }

// appendRecord copies the slice and appends rec, leaving the input intact.
func appendRecord[T any](records []T, rec T) []T {
	out := make([]T, 0, len(records)+1)
	out = append(out, records...)
	return append(out, rec)
}

// replaceRecord swaps in rec at the position of the record sharing its id.
// Returns (nil, nil) when no record matches.
func replaceRecord[T any](records []T, rec T, idOf func(T) string) ([]T, *T) {
	id := idOf(rec)
	for i := range records {
		if idOf(records[i]) != id {
			continue
		}
		before := records[i]
		out := make([]T, len(records))
		copy(out, records)
		out[i] = rec
		return out, &before
	}
	return nil, nil
}

// removeRecords drops every record with the given id, preserving order.
func removeRecords[T any](records []T, id string, idOf func(T) string) ([]T, []T) {
	var removed []T
	for i := range records {
		if idOf(records[i]) == id {
			removed = append(removed, records[i])
		}
	}
	if len(removed) == 0 {
		return records, nil
	}
	out := make([]T, 0, len(records)-len(removed))
	for i := range records {
		if idOf(records[i]) != id {
			out = append(out, records[i])
		}
	}
	return out, removed
}

func deleteChanges[T any](entity EntityType, removed []T) []Change {
	changes := make([]Change, 0, len(removed))
	for _, rec := range removed {
		changes = append(changes, Change{Entity: entity, Action: ChangeDelete, Before: rec})
	}
	return changes
}
