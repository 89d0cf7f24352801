package core

import (
	"context"
	"testing"
	"time"

	"herdcore/pkg/domain"
)

func TestUpcomingHealthEvents(t *testing.T) {
	today := day(2025, time.March, 10)
	in5 := day(2025, time.March, 15)
	in20 := day(2025, time.March, 30)
	in40 := day(2025, time.April, 19)
	past := day(2025, time.March, 1)

	state := State{
		Animals: []Animal{{ID: "a1", Name: "Lakshmi"}},
		HealthRecords: []HealthRecord{
			{ID: "h1", AnimalID: "a1", NextScheduledDate: &in20},
			{ID: "h2", AnimalID: "a1", NextScheduledDate: &in5},
			{ID: "h3", AnimalID: "a1", NextScheduledDate: &in40},
			{ID: "h4", AnimalID: "ghost", NextScheduledDate: &today},
			{ID: "h5", AnimalID: "a1", NextScheduledDate: &past},
			{ID: "h6", AnimalID: "a1"},
		},
	}

	events := UpcomingHealthEvents(state, today)
	if len(events) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(events))
	}
	if events[0].Record.ID != "h4" || events[1].Record.ID != "h2" || events[2].Record.ID != "h1" {
		t.Fatalf("order = %q, %q, %q; want h4, h2, h1", events[0].Record.ID, events[1].Record.ID, events[2].Record.ID)
	}
	if events[0].AnimalName != "" {
		t.Fatalf("dangling reference should yield empty animal name, got %q", events[0].AnimalName)
	}
	if events[1].AnimalName != "Lakshmi" || events[1].Status != domain.ScheduleDueSoon {
		t.Fatalf("event = %+v, want Lakshmi due soon", events[1])
	}
	if events[2].Status != domain.ScheduleUpcoming {
		t.Fatalf("h1 status = %q, want upcoming", events[2].Status)
	}

	overdue := OverdueHealthEvents(state, today)
	if len(overdue) != 1 || overdue[0].Record.ID != "h5" || overdue[0].Days != -9 {
		t.Fatalf("overdue = %+v, want h5 at -9 days", overdue)
	}
}

func TestPendingBreedings(t *testing.T) {
	today := day(2025, time.March, 10)
	in3 := day(2025, time.March, 13)
	pastDue := day(2025, time.February, 20)

	state := State{
		Animals: []Animal{{ID: "a1", Name: "Lakshmi"}, {ID: "a2", Name: "Rani"}},
		BreedingRecords: []BreedingRecord{
			{ID: "b1", FemaleAnimalID: "a1", ExpectedDueDate: &in3, SuccessStatus: domain.BreedingPending},
			{ID: "b2", FemaleAnimalID: "a2", ExpectedDueDate: &pastDue, SuccessStatus: domain.BreedingPending},
			{ID: "b3", FemaleAnimalID: "a1", ExpectedDueDate: &pastDue, SuccessStatus: domain.BreedingSuccessful},
			{ID: "b4", FemaleAnimalID: "a2", SuccessStatus: domain.BreedingPending},
		},
	}

	events := PendingBreedings(state, today)
	if len(events) != 3 {
		t.Fatalf("len(events) = %d, want 3 (concluded excluded)", len(events))
	}
	if events[0].Record.ID != "b2" || events[0].Status != domain.ScheduleOverdue {
		t.Fatalf("first = %+v, want overdue b2", events[0])
	}
	if events[1].Record.ID != "b1" || events[1].Status != domain.ScheduleDueSoon {
		t.Fatalf("second = %+v, want due-soon b1", events[1])
	}
	if events[2].Record.ID != "b4" || events[2].Days != nil || events[2].Status != domain.ScheduleUnscheduled {
		t.Fatalf("third = %+v, want undated b4 last", events[2])
	}
}

func TestSummarize(t *testing.T) {
	today := day(2025, time.March, 10)
	in2 := day(2025, time.March, 12)
	pastDue := day(2025, time.March, 1)
	due := day(2025, time.April, 2)

	state := State{
		Animals: []Animal{
			{ID: "a1", Type: domain.AnimalCow},
			{ID: "a2", Type: domain.AnimalCow},
			{ID: "a3", Type: domain.AnimalGoat},
		},
		HealthRecords: []HealthRecord{
			{ID: "h1", AnimalID: "a1", NextScheduledDate: &in2},
			{ID: "h2", AnimalID: "a2", NextScheduledDate: &pastDue},
		},
		BreedingRecords: []BreedingRecord{
			{ID: "b1", FemaleAnimalID: "a1", ExpectedDueDate: &due, SuccessStatus: domain.BreedingPending},
			{ID: "b2", FemaleAnimalID: "a1", ExpectedDueDate: &pastDue, SuccessStatus: domain.BreedingPending},
		},
		ProductionRecords: []ProductionRecord{
			{ID: "p1", AnimalID: "a1", Type: domain.ProductionMilk, Quantity: 12, Date: day(2025, time.March, 8)},
			{ID: "p2", AnimalID: "a1", Type: domain.ProductionMilk, Quantity: 11, Date: day(2025, time.March, 9)},
			{ID: "p3", AnimalID: "a1", Type: domain.ProductionMilk, Quantity: 10, Date: day(2025, time.February, 1)},
			{ID: "p4", AnimalID: "a3", Type: domain.ProductionEggs, Quantity: 6, Date: day(2025, time.March, 10)},
		},
		Notifications: []Notification{
			{ID: "n1", Status: domain.NotificationPending},
			{ID: "n2", Status: domain.NotificationDone},
			{ID: "n3", Status: domain.NotificationPending},
		},
	}

	sum := Summarize(state, today)
	if sum.TotalAnimals != 3 || sum.AnimalsByType[domain.AnimalCow] != 2 || sum.AnimalsByType[domain.AnimalGoat] != 1 {
		t.Fatalf("animal counts = %+v", sum)
	}
	if sum.UpcomingHealthEvents != 1 || sum.OverdueHealthEvents != 1 {
		t.Fatalf("health counts = %+v", sum)
	}
	if sum.ExpectedBirths != 1 {
		t.Fatalf("expected births = %d, want 1 (overdue due date excluded)", sum.ExpectedBirths)
	}
	if sum.PendingNotifications != 2 {
		t.Fatalf("pending notifications = %d, want 2", sum.PendingNotifications)
	}
	if sum.WeeklyProduction[domain.ProductionMilk] != 23 {
		t.Fatalf("weekly milk = %v, want 23", sum.WeeklyProduction[domain.ProductionMilk])
	}
	if sum.WeeklyProduction[domain.ProductionEggs] != 6 {
		t.Fatalf("weekly eggs = %v, want 6", sum.WeeklyProduction[domain.ProductionEggs])
	}
}

func TestDateValidityRule(t *testing.T) {
	state := State{
		Animals:       []Animal{{ID: "a1"}},
		HealthRecords: []HealthRecord{{ID: "h1", AnimalID: "a1", Date: day(2025, time.January, 1)}},
		MarketPrices:  []MarketPrice{{ID: "m1", Item: "Milk"}},
	}
	res, err := NewDateValidityRule().Evaluate(context.Background(), state, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(res.Violations) != 2 {
		t.Fatalf("violations = %+v, want missing animal birth date and market price date", res.Violations)
	}
}
