package domain

import "context"

// Severity classifies a rule violation.
type Severity string

// Rule evaluation severities. Validation here is advisory: no rule blocks a
// dispatch, but SeverityBlock is kept so callers can distinguish fatal
// dataset problems from reportable ones.
const (
	// SeverityBlock marks violations callers should refuse to proceed past.
	SeverityBlock Severity = "block"
	// SeverityWarn marks violations that are surfaced but tolerated.
	SeverityWarn Severity = "warn"
	SeverityLog  Severity = "log"
)

// Violation describes a single rule finding against a record.
type Violation struct {
	Rule     string     `json:"rule"`
	Severity Severity   `json:"severity"`
	Message  string     `json:"message"`
	Entity   EntityType `json:"entity"`
	EntityID string     `json:"entity_id,omitempty"`
}

// Result aggregates violations from the rules engine.
type Result struct {
	Violations []Violation
}

// Merge appends violations from another result.
func (r *Result) Merge(other Result) {
	if len(other.Violations) == 0 {
		return
	}
	r.Violations = append(r.Violations, other.Violations...)
}

// HasBlocking returns true if the result contains blocking violations.
func (r Result) HasBlocking() bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityBlock {
			return true
		}
	}
	return false
}

// Rule defines an evaluation executed against a state snapshot.
type Rule interface {
	Name() string
	Evaluate(ctx context.Context, state State, changes []Change) (Result, error)
}

// RulesEngine orchestrates rule evaluation.
type RulesEngine struct {
	rules []Rule
}

// NewRulesEngine constructs an engine instance.
func NewRulesEngine() *RulesEngine {
	return &RulesEngine{}
}

// Register appends a rule to the engine.
func (e *RulesEngine) Register(rule Rule) {
	e.rules = append(e.rules, rule)
}

// Evaluate executes all registered rules and aggregates their results.
func (e *RulesEngine) Evaluate(ctx context.Context, state State, changes []Change) (Result, error) {
	var combined Result
	for _, rule := range e.rules {
		res, err := rule.Evaluate(ctx, state, changes)
		if err != nil {
			return Result{}, err
		}
		combined.Merge(res)
	}
	return combined, nil
}
