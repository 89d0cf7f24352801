// Package core implements the in-memory state store, reducer, derived-status
// selectors, validation rules, and service facade behind the dashboard.
package core

import "herdcore/pkg/domain"

// Core aliases the domain types so internal packages can use them without the
// extra import. pkg/domain remains the canonical definition site.
type (
	State            = domain.State
	Action           = domain.Action
	Animal           = domain.Animal
	HealthRecord     = domain.HealthRecord
	BreedingRecord   = domain.BreedingRecord
	ProductionRecord = domain.ProductionRecord
	MarketPrice      = domain.MarketPrice
	DiseaseGuide     = domain.DiseaseGuide
	KnowledgeArticle = domain.KnowledgeArticle
	Notification     = domain.Notification
	Language         = domain.Language
	EntityType       = domain.EntityType
	Change           = domain.Change
	ChangeAction     = domain.ChangeAction
	Violation        = domain.Violation
	Result           = domain.Result
	Severity         = domain.Severity
	Rule             = domain.Rule
	RulesEngine      = domain.RulesEngine
	ScheduleStatus   = domain.ScheduleStatus
)

// Re-exported constants keep call sites inside this package terse.
const (
	EntityAnimal           = domain.EntityAnimal
	EntityHealthRecord     = domain.EntityHealthRecord
	EntityBreedingRecord   = domain.EntityBreedingRecord
	EntityProductionRecord = domain.EntityProductionRecord
	EntityMarketPrice      = domain.EntityMarketPrice
	EntityDiseaseGuide     = domain.EntityDiseaseGuide
	EntityKnowledgeArticle = domain.EntityKnowledgeArticle
	EntityNotification     = domain.EntityNotification
	EntityLanguage         = domain.EntityLanguage

	ChangeCreate = domain.ChangeCreate
	ChangeUpdate = domain.ChangeUpdate
	ChangeDelete = domain.ChangeDelete

	SeverityBlock = domain.SeverityBlock
	SeverityWarn  = domain.SeverityWarn
	SeverityLog   = domain.SeverityLog
)

// NewRulesEngine constructs an empty rules engine.
func NewRulesEngine() *RulesEngine {
	return domain.NewRulesEngine()
}

// NewDefaultRulesEngine builds a rules engine with the built-in policy set.
func NewDefaultRulesEngine() *RulesEngine {
	engine := NewRulesEngine()
	engine.Register(NewReferenceIntegrityRule())
	engine.Register(NewUniqueIDRule())
	engine.Register(NewDateValidityRule())
	return engine
}
