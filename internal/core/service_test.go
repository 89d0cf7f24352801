package core

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"herdcore/pkg/domain"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func TestServiceAddAnimalMintsID(t *testing.T) {
	svc := NewService(State{}, WithIDGenerator(sequentialIDs("animal")))
	created, res, err := svc.AddAnimal(context.Background(), Animal{Name: "Rani", Type: domain.AnimalCow, BirthDate: day(2024, time.June, 1)})
	if err != nil {
		t.Fatalf("AddAnimal: %v", err)
	}
	if created.ID != "animal-1" {
		t.Fatalf("id = %q, want animal-1", created.ID)
	}
	if len(res.Violations) != 0 {
		t.Fatalf("violations = %+v, want none", res.Violations)
	}
	if got, ok := svc.State().FindAnimal("animal-1"); !ok || got.Name != "Rani" {
		t.Fatalf("stored animal = %+v, ok = %v", got, ok)
	}
}

func TestServiceUpdateUnknownAnimal(t *testing.T) {
	svc := NewService(State{})
	_, _, err := svc.UpdateAnimal(context.Background(), Animal{ID: "missing"})
	var notFound ErrNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if notFound.Entity != EntityAnimal || notFound.ID != "missing" {
		t.Fatalf("ErrNotFound = %+v", notFound)
	}
}

func TestServiceDeleteAnimalSurfacesDanglingReferences(t *testing.T) {
	svc := NewService(seedState())
	res, err := svc.DeleteAnimal(context.Background(), "a1")
	if err != nil {
		t.Fatalf("DeleteAnimal: %v", err)
	}
	if len(res.Violations) == 0 {
		t.Fatalf("want reference violations after deleting a referenced animal")
	}
	for _, v := range res.Violations {
		if v.Rule != "reference_integrity" {
			t.Fatalf("violation rule = %q, want reference_integrity", v.Rule)
		}
		if v.Severity != SeverityWarn {
			t.Fatalf("violation severity = %q, want warn", v.Severity)
		}
	}
	if len(svc.State().HealthRecords) != 1 {
		t.Fatalf("health records should not cascade on delete")
	}
}

func TestServiceRejectsInvalidInputs(t *testing.T) {
	svc := NewService(seedState())
	ctx := context.Background()

	if _, err := svc.SetLanguage(ctx, Language("klingon")); err == nil {
		t.Fatalf("SetLanguage should reject unsupported languages")
	}
	if _, _, err := svc.AddProductionRecord(ctx, ProductionRecord{AnimalID: "a1", Quantity: -1}); err == nil {
		t.Fatalf("AddProductionRecord should reject negative quantity")
	}
	if _, _, err := svc.UpdateNotificationStatus(ctx, "n1", domain.NotificationStatus("archived")); err == nil {
		t.Fatalf("UpdateNotificationStatus should reject unknown status")
	}
}

func TestServiceUpdateNotificationStatus(t *testing.T) {
	svc := NewService(seedState())
	patched, _, err := svc.UpdateNotificationStatus(context.Background(), "n1", domain.NotificationSnoozed)
	if err != nil {
		t.Fatalf("UpdateNotificationStatus: %v", err)
	}
	if patched.Status != domain.NotificationSnoozed {
		t.Fatalf("status = %q, want snoozed", patched.Status)
	}
}

func TestServiceAuditAndObservability(t *testing.T) {
	audit := NewMemoryAuditSink(0)
	metrics := NewExpvarMetricsRecorder()
	var traceBuf bytes.Buffer
	tracer := NewJSONTracer(&traceBuf)
	at := day(2025, time.March, 10)
	svc := NewService(State{},
		WithClock(fixedClock(at)),
		WithAuditSink(audit),
		WithMetricsRecorder(metrics),
		WithTracer(tracer),
		WithIDGenerator(sequentialIDs("rec")),
	)

	ctx := context.Background()
	if _, _, err := svc.AddAnimal(ctx, Animal{Name: "Raja", BirthDate: day(2024, time.May, 1)}); err != nil {
		t.Fatalf("AddAnimal: %v", err)
	}
	if _, err := svc.DeleteAnimal(ctx, "rec-1"); err != nil {
		t.Fatalf("DeleteAnimal: %v", err)
	}

	entries := audit.Entries()
	if len(entries) != 2 {
		t.Fatalf("audit entries = %d, want 2", len(entries))
	}
	if entries[0].Operation != "add_animal" || entries[0].At != at {
		t.Fatalf("first audit entry = %+v", entries[0])
	}
	if entries[1].Change.Action != ChangeDelete {
		t.Fatalf("second audit entry = %+v, want delete", entries[1])
	}

	recent := audit.Recent(1)
	if len(recent) != 1 || recent[0].Operation != "delete_animal" {
		t.Fatalf("Recent(1) = %+v, want the delete", recent)
	}

	snap := metrics.Snapshot()
	if snap["add_animal"].Success != 1 || snap["delete_animal"].Success != 1 {
		t.Fatalf("metrics = %+v, want one success per operation", snap)
	}

	var spans []JSONTraceEntry
	dec := json.NewDecoder(&traceBuf)
	for dec.More() {
		var entry JSONTraceEntry
		if err := dec.Decode(&entry); err != nil {
			t.Fatalf("decode span: %v", err)
		}
		spans = append(spans, entry)
	}
	if len(spans) != 2 || spans[0].Operation != "add_animal" || spans[0].Status != "success" {
		t.Fatalf("trace entries = %+v", spans)
	}
}

func TestServiceValidateReportsSeedProblems(t *testing.T) {
	state := seedState()
	state.HealthRecords = append(state.HealthRecords, HealthRecord{ID: "h2", AnimalID: "ghost", Date: day(2025, time.January, 5)})
	state.Animals = append(state.Animals, Animal{ID: "a1", Name: "Duplicate", BirthDate: day(2024, time.April, 1)})

	svc := NewService(state)
	res, err := svc.Validate(context.Background())
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	rules := map[string]int{}
	for _, v := range res.Violations {
		rules[v.Rule]++
	}
	if rules["reference_integrity"] != 1 {
		t.Fatalf("reference violations = %d, want 1 (%+v)", rules["reference_integrity"], res.Violations)
	}
	if rules["unique_id"] != 1 {
		t.Fatalf("unique_id violations = %d, want one per duplicated id (%+v)", rules["unique_id"], res.Violations)
	}
	if res.HasBlocking() {
		t.Fatalf("violations should be advisory, got blocking")
	}
}
