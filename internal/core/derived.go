package core

import (
	"sort"
	"time"

	"herdcore/pkg/domain"
)

// UpcomingWindowDays bounds the look-ahead window for upcoming health events
// shown on the dashboard and health pages.
const UpcomingWindowDays = 30

// HealthEvent pairs a health record with its derived schedule classification.
// AnimalName is the placeholder "Unknown" marker's counterpart: it is empty
// when the referenced animal does not exist, and views decide how to render
// that.
type HealthEvent struct {
	Record     HealthRecord
	AnimalName string
	Days       int
	Status     ScheduleStatus
}

// UpcomingHealthEvents returns health records scheduled within the next
// UpcomingWindowDays days (today included), soonest first.
func UpcomingHealthEvents(state State, today time.Time) []HealthEvent {
	return selectHealthEvents(state, today, func(days int) bool {
		return days >= 0 && days <= UpcomingWindowDays
	})
}

// OverdueHealthEvents returns health records whose scheduled date has passed,
// most overdue first.
func OverdueHealthEvents(state State, today time.Time) []HealthEvent {
	return selectHealthEvents(state, today, func(days int) bool {
		return days < 0
	})
}

func selectHealthEvents(state State, today time.Time, keep func(days int) bool) []HealthEvent {
	var events []HealthEvent
	for _, rec := range state.HealthRecords {
		days := domain.DaysUntil(rec.NextScheduledDate, today)
		if days == nil || !keep(*days) {
			continue
		}
		ev := HealthEvent{
			Record: rec,
			Days:   *days,
			Status: domain.ClassifySchedule(days),
		}
		if animal, ok := state.FindAnimal(rec.AnimalID); ok {
			ev.AnimalName = animal.Name
		}
		events = append(events, ev)
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Days < events[j].Days
	})
	return events
}

// BreedingEvent pairs a breeding record with its derived classification.
type BreedingEvent struct {
	Record     BreedingRecord
	FemaleName string
	Days       *int
	Status     ScheduleStatus
}

// PendingBreedings returns pending breeding attempts with their due
// classification, soonest due date first; attempts without a due date sort
// last.
func PendingBreedings(state State, today time.Time) []BreedingEvent {
	var events []BreedingEvent
	for _, rec := range state.BreedingRecords {
		if rec.SuccessStatus != domain.BreedingPending {
			continue
		}
		ev := BreedingEvent{
			Record: rec,
			Days:   domain.DaysUntil(rec.ExpectedDueDate, today),
			Status: domain.BreedingStatus(rec, today),
		}
		if animal, ok := state.FindAnimal(rec.FemaleAnimalID); ok {
			ev.FemaleName = animal.Name
		}
		events = append(events, ev)
	}
	sort.SliceStable(events, func(i, j int) bool {
		di, dj := events[i].Days, events[j].Days
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return *di < *dj
		}
	})
	return events
}

// DashboardSummary aggregates the headline figures for the dashboard page.
type DashboardSummary struct {
	TotalAnimals         int
	AnimalsByType        map[domain.AnimalType]int
	UpcomingHealthEvents int
	OverdueHealthEvents  int
	ExpectedBirths       int
	PendingNotifications int
	WeeklyProduction     map[domain.ProductionType]float64
}

// Summarize computes the dashboard aggregates from a snapshot. Only figures
// the data supports are computed; there are no synthetic trend numbers.
func Summarize(state State, today time.Time) DashboardSummary {
	sum := DashboardSummary{
		TotalAnimals:     len(state.Animals),
		AnimalsByType:    make(map[domain.AnimalType]int),
		WeeklyProduction: make(map[domain.ProductionType]float64),
	}
	for _, a := range state.Animals {
		sum.AnimalsByType[a.Type]++
	}
	sum.UpcomingHealthEvents = len(UpcomingHealthEvents(state, today))
	sum.OverdueHealthEvents = len(OverdueHealthEvents(state, today))
	for _, ev := range PendingBreedings(state, today) {
		if ev.Days != nil && *ev.Days >= 0 {
			sum.ExpectedBirths++
		}
	}
	for _, n := range state.Notifications {
		if n.Status == domain.NotificationPending {
			sum.PendingNotifications++
		}
	}
	weekAgo := today.AddDate(0, 0, -7)
	for _, rec := range state.ProductionRecords {
		if rec.Date.IsZero() || rec.Date.Before(weekAgo) || rec.Date.After(today) {
			continue
		}
		sum.WeeklyProduction[rec.Type] += rec.Quantity
	}
	return sum
}
