package core

import (
	"testing"
	"time"

	"herdcore/pkg/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedState() State {
	return State{
		Language: domain.LanguageEnglish,
		Animals: []Animal{
			{ID: "a1", Name: "Lakshmi", Type: domain.AnimalCow, Gender: domain.GenderFemale, BirthDate: day(2021, time.May, 10)},
			{ID: "a2", Name: "Kalu", Type: domain.AnimalGoat, Gender: domain.GenderMale, BirthDate: day(2023, time.January, 2)},
		},
		HealthRecords: []HealthRecord{
			{ID: "h1", AnimalID: "a1", Date: day(2025, time.February, 1), Type: domain.HealthVaccination},
		},
		BreedingRecords: []BreedingRecord{
			{ID: "b1", FemaleAnimalID: "a1", Date: day(2025, time.January, 15), Method: domain.BreedingNatural, SuccessStatus: domain.BreedingPending},
		},
		Notifications: []Notification{
			{ID: "n1", Title: "Vaccination due", Status: domain.NotificationPending},
		},
	}
}

func TestDispatchAddAppendsInOrder(t *testing.T) {
	store := NewStore(seedState())
	changes := store.Dispatch(domain.AddAnimal{Animal: Animal{ID: "a3", Name: "Rani"}})
	if len(changes) != 1 || changes[0].Action != ChangeCreate {
		t.Fatalf("changes = %+v, want one create", changes)
	}

	animals := store.State().Animals
	if len(animals) != 3 || animals[2].ID != "a3" {
		t.Fatalf("animals = %+v, want a3 appended last", animals)
	}
	if store.Revision() != 1 {
		t.Fatalf("revision = %d, want 1", store.Revision())
	}
}

func TestDispatchUpdateReplacesInPlace(t *testing.T) {
	store := NewStore(seedState())
	updated := Animal{ID: "a1", Name: "Lakshmi II", Type: domain.AnimalCow, Gender: domain.GenderFemale}
	changes := store.Dispatch(domain.UpdateAnimal{Animal: updated})
	if len(changes) != 1 || changes[0].Action != ChangeUpdate {
		t.Fatalf("changes = %+v, want one update", changes)
	}
	before, ok := changes[0].Before.(Animal)
	if !ok || before.Name != "Lakshmi" {
		t.Fatalf("change before = %+v, want original Lakshmi", changes[0].Before)
	}

	animals := store.State().Animals
	if animals[0].Name != "Lakshmi II" || animals[1].ID != "a2" {
		t.Fatalf("animals = %+v, want a1 replaced in place", animals)
	}
}

func TestDispatchUpdateUnknownIDIsNoOp(t *testing.T) {
	store := NewStore(seedState())
	before := store.State()
	if changes := store.Dispatch(domain.UpdateAnimal{Animal: Animal{ID: "missing"}}); changes != nil {
		t.Fatalf("changes = %+v, want none", changes)
	}
	if store.Revision() != 0 {
		t.Fatalf("revision = %d, want 0", store.Revision())
	}
	after := store.State()
	if len(after.Animals) != len(before.Animals) {
		t.Fatalf("state changed on no-op update")
	}
}

func TestDispatchDeleteRemovesAllMatches(t *testing.T) {
	state := seedState()
	state.Animals = append(state.Animals, Animal{ID: "a1", Name: "Duplicate"})
	store := NewStore(state)

	changes := store.Dispatch(domain.DeleteAnimal{ID: "a1"})
	if len(changes) != 2 {
		t.Fatalf("changes = %+v, want two deletes", changes)
	}
	animals := store.State().Animals
	if len(animals) != 1 || animals[0].ID != "a2" {
		t.Fatalf("animals = %+v, want only a2", animals)
	}

	if extra := store.Dispatch(domain.DeleteAnimal{ID: "a1"}); extra != nil {
		t.Fatalf("second delete = %+v, want no-op", extra)
	}
}

func TestDispatchDeleteDoesNotCascade(t *testing.T) {
	store := NewStore(seedState())
	store.Dispatch(domain.DeleteAnimal{ID: "a1"})

	state := store.State()
	if len(state.HealthRecords) != 1 || state.HealthRecords[0].AnimalID != "a1" {
		t.Fatalf("health records = %+v, want dangling a1 record retained", state.HealthRecords)
	}
	if len(state.BreedingRecords) != 1 {
		t.Fatalf("breeding records = %+v, want retained", state.BreedingRecords)
	}
}

func TestDispatchNotificationStatusPatch(t *testing.T) {
	store := NewStore(seedState())
	changes := store.Dispatch(domain.UpdateNotificationStatus{ID: "n1", Status: domain.NotificationDone})
	if len(changes) != 1 {
		t.Fatalf("changes = %+v, want one update", changes)
	}
	n, _ := store.State().FindNotification("n1")
	if n.Status != domain.NotificationDone || n.Title != "Vaccination due" {
		t.Fatalf("notification = %+v, want status patched and fields retained", n)
	}

	if again := store.Dispatch(domain.UpdateNotificationStatus{ID: "n1", Status: domain.NotificationDone}); again != nil {
		t.Fatalf("idempotent patch = %+v, want no-op", again)
	}
	if missing := store.Dispatch(domain.UpdateNotificationStatus{ID: "nope", Status: domain.NotificationDone}); missing != nil {
		t.Fatalf("patch of unknown id = %+v, want no-op", missing)
	}
}

func TestDispatchSetLanguage(t *testing.T) {
	store := NewStore(seedState())
	store.Dispatch(domain.SetLanguage{Language: domain.LanguageHindi})
	if got := store.State().Language; got != domain.LanguageHindi {
		t.Fatalf("language = %q, want hindi", got)
	}
	if again := store.Dispatch(domain.SetLanguage{Language: domain.LanguageHindi}); again != nil {
		t.Fatalf("same-language set = %+v, want no-op", again)
	}
}

func TestDispatchUnknownActionIsNoOp(t *testing.T) {
	store := NewStore(seedState())
	if changes := store.Dispatch(nil); changes != nil {
		t.Fatalf("changes = %+v, want none", changes)
	}
	if store.Revision() != 0 {
		t.Fatalf("revision = %d, want 0", store.Revision())
	}
}

func TestDispatchSharesUntouchedCollections(t *testing.T) {
	store := NewStore(seedState())
	before := store.State()
	store.Dispatch(domain.AddAnimal{Animal: Animal{ID: "a3", Name: "Rani"}})
	after := store.State()

	if sameBacking(before.Animals, after.Animals) {
		t.Fatalf("animals slice should be reallocated")
	}
	if !sameBacking(before.HealthRecords, after.HealthRecords) {
		t.Fatalf("health records should be shared with the previous snapshot")
	}
	if !sameBacking(before.BreedingRecords, after.BreedingRecords) {
		t.Fatalf("breeding records should be shared with the previous snapshot")
	}
	if !sameBacking(before.Notifications, after.Notifications) {
		t.Fatalf("notifications should be shared with the previous snapshot")
	}

	if before.Animals[0].Name != "Lakshmi" || len(before.Animals) != 2 {
		t.Fatalf("earlier snapshot mutated: %+v", before.Animals)
	}
}

func sameBacking[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return len(a) == len(b)
	}
	return &a[0] == &b[0]
}
