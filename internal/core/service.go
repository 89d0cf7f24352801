package core

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"herdcore/pkg/domain"
)

// Service exposes typed operations over the store. Every operation dispatches
// an action, feeds the audit sink, evaluates the rules engine against the new
// snapshot, and reports the outcome to the configured observability hooks.
// Rule violations are surfaced in the Result, never enforced.
type Service struct {
	store   *Store
	engine  *RulesEngine
	logger  Logger
	metrics MetricsRecorder
	tracer  Tracer
	audit   AuditSink
	nowFn   func() time.Time
	idFn    func() string
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the service clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.nowFn = now
			s.store.SetClock(now)
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetricsRecorder attaches a metrics recorder.
func WithMetricsRecorder(rec MetricsRecorder) Option {
	return func(s *Service) {
		if rec != nil {
			s.metrics = rec
		}
	}
}

// WithTracer attaches a tracer.
func WithTracer(tracer Tracer) Option {
	return func(s *Service) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// WithAuditSink attaches an audit sink.
func WithAuditSink(sink AuditSink) Option {
	return func(s *Service) {
		if sink != nil {
			s.audit = sink
		}
	}
}

// WithRulesEngine replaces the rules engine evaluated after each dispatch.
func WithRulesEngine(engine *RulesEngine) Option {
	return func(s *Service) {
		if engine != nil {
			s.engine = engine
		}
	}
}

// WithIDGenerator overrides how ids are minted for records created without
// one. Intended for tests.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.idFn = fn
		}
	}
}

// NewService constructs a service over a store seeded with initial.
func NewService(initial State, opts ...Option) *Service {
	s := &Service{
		store:   NewStore(initial),
		engine:  NewDefaultRulesEngine(),
		logger:  nopLogger{},
		metrics: nopMetrics{},
		tracer:  nopTracer{},
		nowFn:   func() time.Time { return time.Now().UTC() },
		idFn:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store returns the underlying store.
func (s *Service) Store() *Store {
	return s.store
}

// State returns the current snapshot.
func (s *Service) State() State {
	return s.store.State()
}

// Now returns the service's current time.
func (s *Service) Now() time.Time {
	return s.nowFn()
}

// ErrNotFound is returned when an operation targets an id that does not exist.
type ErrNotFound struct {
	Entity EntityType
	ID     string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// run dispatches an action and performs the shared bookkeeping: audit,
// rule evaluation, metrics, tracing, logging.
func (s *Service) run(ctx context.Context, operation string, action Action) (Result, error) {
	ctx, span := s.tracer.Start(ctx, operation)
	started := s.nowFn()

	changes := s.store.Dispatch(action)
	if len(changes) > 0 && s.audit != nil {
		at := s.nowFn()
		entries := make([]AuditEntry, 0, len(changes))
		for _, c := range changes {
			entries = append(entries, AuditEntry{At: at, Operation: operation, Change: c})
		}
		s.audit.Record(ctx, entries)
	}

	res, err := s.engine.Evaluate(ctx, s.store.State(), changes)
	duration := s.nowFn().Sub(started)
	s.metrics.Observe(ctx, operation, err == nil, duration)
	span.End(err)

	if err != nil {
		s.logger.Errorw("rule evaluation failed", "operation", operation, "error", err)
		return Result{}, err
	}
	s.logger.Debugw("dispatch applied",
		"operation", operation,
		"changes", len(changes),
		"violations", len(res.Violations),
		"revision", s.store.Revision(),
	)
	return res, nil
}

// SetLanguage switches the active display language.
func (s *Service) SetLanguage(ctx context.Context, lang Language) (Result, error) {
	if !lang.Valid() {
		return Result{}, fmt.Errorf("unsupported language %q", lang)
	}
	return s.run(ctx, "set_language", domain.SetLanguage{Language: lang})
}

// AddAnimal appends an animal, minting an id when none is set.
func (s *Service) AddAnimal(ctx context.Context, animal Animal) (Animal, Result, error) {
	if animal.ID == "" {
		animal.ID = s.idFn()
	}
	res, err := s.run(ctx, "add_animal", domain.AddAnimal{Animal: animal})
	return animal, res, err
}

// UpdateAnimal replaces the animal with a matching id.
func (s *Service) UpdateAnimal(ctx context.Context, animal Animal) (Animal, Result, error) {
	if _, ok := s.store.State().FindAnimal(animal.ID); !ok {
		return Animal{}, Result{}, ErrNotFound{Entity: EntityAnimal, ID: animal.ID}
	}
	res, err := s.run(ctx, "update_animal", domain.UpdateAnimal{Animal: animal})
	return animal, res, err
}

// DeleteAnimal removes the animal with the given id. Deleting an absent id is
// a no-op. Records referencing the animal are not cascaded; the
// reference-integrity rule reports them in the returned Result.
func (s *Service) DeleteAnimal(ctx context.Context, id string) (Result, error) {
	return s.run(ctx, "delete_animal", domain.DeleteAnimal{ID: id})
}

// AddHealthRecord appends a health record, minting an id when none is set.
func (s *Service) AddHealthRecord(ctx context.Context, rec HealthRecord) (HealthRecord, Result, error) {
	if rec.ID == "" {
		rec.ID = s.idFn()
	}
	res, err := s.run(ctx, "add_health_record", domain.AddHealthRecord{Record: rec})
	return rec, res, err
}

// UpdateHealthRecord replaces the health record with a matching id.
func (s *Service) UpdateHealthRecord(ctx context.Context, rec HealthRecord) (HealthRecord, Result, error) {
	if _, ok := s.store.State().FindHealthRecord(rec.ID); !ok {
		return HealthRecord{}, Result{}, ErrNotFound{Entity: EntityHealthRecord, ID: rec.ID}
	}
	res, err := s.run(ctx, "update_health_record", domain.UpdateHealthRecord{Record: rec})
	return rec, res, err
}

// DeleteHealthRecord removes the health record with the given id.
func (s *Service) DeleteHealthRecord(ctx context.Context, id string) (Result, error) {
	return s.run(ctx, "delete_health_record", domain.DeleteHealthRecord{ID: id})
}

// AddBreedingRecord appends a breeding record, minting an id when none is set.
func (s *Service) AddBreedingRecord(ctx context.Context, rec BreedingRecord) (BreedingRecord, Result, error) {
	if rec.ID == "" {
		rec.ID = s.idFn()
	}
	if rec.SuccessStatus == "" {
		rec.SuccessStatus = domain.BreedingPending
	}
	res, err := s.run(ctx, "add_breeding_record", domain.AddBreedingRecord{Record: rec})
	return rec, res, err
}

// UpdateBreedingRecord replaces the breeding record with a matching id.
func (s *Service) UpdateBreedingRecord(ctx context.Context, rec BreedingRecord) (BreedingRecord, Result, error) {
	if _, ok := s.store.State().FindBreedingRecord(rec.ID); !ok {
		return BreedingRecord{}, Result{}, ErrNotFound{Entity: EntityBreedingRecord, ID: rec.ID}
	}
	res, err := s.run(ctx, "update_breeding_record", domain.UpdateBreedingRecord{Record: rec})
	return rec, res, err
}

// DeleteBreedingRecord removes the breeding record with the given id.
func (s *Service) DeleteBreedingRecord(ctx context.Context, id string) (Result, error) {
	return s.run(ctx, "delete_breeding_record", domain.DeleteBreedingRecord{ID: id})
}

// AddProductionRecord appends a production record, minting an id when none is
// set. Production records are append-only.
func (s *Service) AddProductionRecord(ctx context.Context, rec ProductionRecord) (ProductionRecord, Result, error) {
	if rec.ID == "" {
		rec.ID = s.idFn()
	}
	if rec.Quantity < 0 {
		return ProductionRecord{}, Result{}, fmt.Errorf("production quantity must be non-negative, got %v", rec.Quantity)
	}
	res, err := s.run(ctx, "add_production_record", domain.AddProductionRecord{Record: rec})
	return rec, res, err
}

// UpdateNotificationStatus patches the status of one notification.
func (s *Service) UpdateNotificationStatus(ctx context.Context, id string, status domain.NotificationStatus) (Notification, Result, error) {
	if !status.Valid() {
		return Notification{}, Result{}, fmt.Errorf("unsupported notification status %q", status)
	}
	if _, ok := s.store.State().FindNotification(id); !ok {
		return Notification{}, Result{}, ErrNotFound{Entity: EntityNotification, ID: id}
	}
	res, err := s.run(ctx, "update_notification_status", domain.UpdateNotificationStatus{ID: id, Status: status})
	patched, _ := s.store.State().FindNotification(id)
	return patched, res, err
}

// Validate evaluates the rules engine against the current snapshot without
// dispatching anything.
func (s *Service) Validate(ctx context.Context) (Result, error) {
	return s.engine.Evaluate(ctx, s.store.State(), nil)
}
