// Package domain defines the core entities, value types, and rule
// evaluation primitives used by herdcore.
package domain

import "time"

// EntityType identifies the type of record held in application state.
type EntityType string

// Supported entity type identifiers used in Change records and state collections.
const (
	// EntityAnimal identifies an individual animal record.
	EntityAnimal EntityType = "animal"
	// EntityHealthRecord identifies a health event record.
	EntityHealthRecord EntityType = "health_record"
	// EntityBreedingRecord identifies a breeding attempt record.
	EntityBreedingRecord EntityType = "breeding_record"
	// EntityProductionRecord identifies a production yield record.
	EntityProductionRecord EntityType = "production_record"
	// EntityMarketPrice identifies a market price quote.
	EntityMarketPrice EntityType = "market_price"
	// EntityDiseaseGuide identifies a disease reference entry.
	EntityDiseaseGuide EntityType = "disease_guide"
	// EntityKnowledgeArticle identifies a knowledge base article.
	EntityKnowledgeArticle EntityType = "knowledge_article"
	// EntityNotification identifies a notification record.
	EntityNotification EntityType = "notification"
	// EntityLanguage identifies the active display language setting.
	EntityLanguage EntityType = "language"
)

// Language enumerates the supported display languages.
type Language string

// Supported display languages.
const (
	LanguageEnglish  Language = "english"
	LanguageHindi    Language = "hindi"
	LanguageAssamese Language = "assamese"
)

// Languages lists all supported languages in display order.
func Languages() []Language {
	return []Language{LanguageEnglish, LanguageHindi, LanguageAssamese}
}

// Valid reports whether the language is one of the supported values.
func (l Language) Valid() bool {
	switch l {
	case LanguageEnglish, LanguageHindi, LanguageAssamese:
		return true
	}
	return false
}

// AnimalType enumerates the livestock species tracked by the system.
type AnimalType string

// Canonical species identifiers.
const (
	AnimalCow     AnimalType = "cow"
	AnimalGoat    AnimalType = "goat"
	AnimalSheep   AnimalType = "sheep"
	AnimalChicken AnimalType = "chicken"
	AnimalDuck    AnimalType = "duck"
	AnimalPig     AnimalType = "pig"
	AnimalBuffalo AnimalType = "buffalo"
	AnimalOther   AnimalType = "other"
)

// AnimalTypes lists all species identifiers in display order.
func AnimalTypes() []AnimalType {
	return []AnimalType{
		AnimalCow, AnimalGoat, AnimalSheep, AnimalChicken,
		AnimalDuck, AnimalPig, AnimalBuffalo, AnimalOther,
	}
}

// Gender identifies the sex of an animal.
type Gender string

// Animal genders.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// HealthEventType enumerates kinds of health events.
type HealthEventType string

// Canonical health event types.
const (
	HealthVaccination HealthEventType = "vaccination"
	HealthDeworming   HealthEventType = "deworming"
	HealthTreatment   HealthEventType = "treatment"
	HealthCheckup     HealthEventType = "checkup"
)

// BreedingMethod enumerates how a breeding attempt was performed.
type BreedingMethod string

// Breeding methods.
const (
	BreedingNatural    BreedingMethod = "natural"
	BreedingArtificial BreedingMethod = "artificial"
)

// SuccessStatus is the tri-state outcome of a breeding attempt.
type SuccessStatus string

// Breeding outcomes. Once a record leaves BreedingPending, due-date urgency
// classification no longer applies to it.
const (
	BreedingPending      SuccessStatus = "pending"
	BreedingSuccessful   SuccessStatus = "successful"
	BreedingUnsuccessful SuccessStatus = "unsuccessful"
)

// ProductionType enumerates tracked production yields.
type ProductionType string

// Production types.
const (
	ProductionMilk   ProductionType = "milk"
	ProductionEggs   ProductionType = "eggs"
	ProductionWeight ProductionType = "weight"
)

// ArticleCategory classifies knowledge base articles.
type ArticleCategory string

// Knowledge article categories.
const (
	CategoryFeeding  ArticleCategory = "feeding"
	CategoryShelter  ArticleCategory = "shelter"
	CategoryHygiene  ArticleCategory = "hygiene"
	CategoryBreeding ArticleCategory = "breeding"
	CategoryHealth   ArticleCategory = "health"
	CategoryGeneral  ArticleCategory = "general"
)

// ArticleCategories lists the categories in display order.
func ArticleCategories() []ArticleCategory {
	return []ArticleCategory{
		CategoryFeeding, CategoryShelter, CategoryHygiene,
		CategoryBreeding, CategoryHealth, CategoryGeneral,
	}
}

// NotificationType classifies notifications for display grouping.
type NotificationType string

// Notification types.
const (
	NotifyVaccination NotificationType = "vaccination"
	NotifyBreeding    NotificationType = "breeding"
	NotifyHealth      NotificationType = "health"
	NotifyGeneral     NotificationType = "general"
)

// NotificationStatus tracks the user-driven lifecycle of a notification.
type NotificationStatus string

// Notification statuses. Transitions happen only via explicit user action;
// notifications never expire on their own.
const (
	NotificationPending NotificationStatus = "pending"
	NotificationDone    NotificationStatus = "done"
	NotificationSnoozed NotificationStatus = "snoozed"
)

// Valid reports whether the status is one of the supported values.
func (s NotificationStatus) Valid() bool {
	switch s {
	case NotificationPending, NotificationDone, NotificationSnoozed:
		return true
	}
	return false
}

// Animal represents an individual animal (or managed batch) on the farm.
type Animal struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Type          AnimalType `json:"type"`
	Breed         string     `json:"breed"`
	BirthDate     time.Time  `json:"birth_date"`
	Gender        Gender     `json:"gender"`
	TagNumber     string     `json:"tag_number,omitempty"`
	Weight        *float64   `json:"weight,omitempty"`
	PurchaseDate  *time.Time `json:"purchase_date,omitempty"`
	PurchasePrice *float64   `json:"purchase_price,omitempty"`
	ImageURL      string     `json:"image_url,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

// HealthRecord captures a health event for an animal. NextScheduledDate is
// advisory only: nothing transitions when it elapses, classification is
// computed on read.
type HealthRecord struct {
	ID                string          `json:"id"`
	AnimalID          string          `json:"animal_id"`
	Date              time.Time       `json:"date"`
	Type              HealthEventType `json:"type"`
	Description       string          `json:"description"`
	Medicine          string          `json:"medicine,omitempty"`
	Dosage            string          `json:"dosage,omitempty"`
	Veterinarian      string          `json:"veterinarian,omitempty"`
	Cost              *float64        `json:"cost,omitempty"`
	NextScheduledDate *time.Time      `json:"next_scheduled_date,omitempty"`
}

// BreedingRecord tracks a breeding attempt between a female animal and an
// optional male animal.
type BreedingRecord struct {
	ID              string         `json:"id"`
	FemaleAnimalID  string         `json:"female_animal_id"`
	MaleAnimalID    string         `json:"male_animal_id,omitempty"`
	Date            time.Time      `json:"date"`
	Method          BreedingMethod `json:"method"`
	Notes           string         `json:"notes,omitempty"`
	ExpectedDueDate *time.Time     `json:"expected_due_date,omitempty"`
	ActualBirthDate *time.Time     `json:"actual_birth_date,omitempty"`
	OffspringCount  *int           `json:"offspring_count,omitempty"`
	SuccessStatus   SuccessStatus  `json:"success_status"`
}

// ProductionRecord captures a production yield for an animal on a date.
type ProductionRecord struct {
	ID       string         `json:"id"`
	AnimalID string         `json:"animal_id"`
	Date     time.Time      `json:"date"`
	Type     ProductionType `json:"type"`
	Quantity float64        `json:"quantity"`
	Notes    string         `json:"notes,omitempty"`
}

// MarketPrice is one observed price quote for an item at a location. Multiple
// quotes may exist for the same item; the current price is the most recent by
// date.
type MarketPrice struct {
	ID       string    `json:"id"`
	Item     string    `json:"item"`
	Price    float64   `json:"price"`
	Unit     string    `json:"unit"`
	Location string    `json:"location"`
	Date     time.Time `json:"date"`
}

// DiseaseGuide is static reference content describing a livestock disease.
type DiseaseGuide struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	AnimalTypes   []AnimalType `json:"animal_types"`
	Symptoms      []string     `json:"symptoms"`
	Treatment     string       `json:"treatment"`
	Prevention    string       `json:"prevention"`
	EmergencyCare string       `json:"emergency_care,omitempty"`
}

// KnowledgeArticle is static husbandry guidance, with markdown content.
type KnowledgeArticle struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Content     string          `json:"content"`
	Category    ArticleCategory `json:"category"`
	AnimalTypes []AnimalType    `json:"animal_types"`
	ImageURL    string          `json:"image_url,omitempty"`
	Language    Language        `json:"language"`
}

// Notification is an actionable alert surfaced to the user. RelatedID, when
// set, points at the record that triggered it (an animal, health record, or
// breeding record id).
type Notification struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Date        time.Time          `json:"date"`
	Type        NotificationType   `json:"type"`
	Status      NotificationStatus `json:"status"`
	RelatedID   string             `json:"related_id,omitempty"`
}

// State aggregates the active display language and every entity collection.
// Collections are ordered: insertion order is authoritative. The store owns
// all collections exclusively; consumers treat snapshots as read-only.
type State struct {
	Language          Language           `json:"language"`
	Animals           []Animal           `json:"animals"`
	HealthRecords     []HealthRecord     `json:"health_records"`
	BreedingRecords   []BreedingRecord   `json:"breeding_records"`
	ProductionRecords []ProductionRecord `json:"production_records"`
	MarketPrices      []MarketPrice      `json:"market_prices"`
	DiseaseGuides     []DiseaseGuide     `json:"disease_guides"`
	KnowledgeArticles []KnowledgeArticle `json:"knowledge_articles"`
	Notifications     []Notification     `json:"notifications"`
}

// FindAnimal returns the animal with the given id from the snapshot.
func (s State) FindAnimal(id string) (Animal, bool) {
	for _, a := range s.Animals {
		if a.ID == id {
			return a, true
		}
	}
	return Animal{}, false
}

// FindHealthRecord returns the health record with the given id.
func (s State) FindHealthRecord(id string) (HealthRecord, bool) {
	for _, r := range s.HealthRecords {
		if r.ID == id {
			return r, true
		}
	}
	return HealthRecord{}, false
}

// FindBreedingRecord returns the breeding record with the given id.
func (s State) FindBreedingRecord(id string) (BreedingRecord, bool) {
	for _, r := range s.BreedingRecords {
		if r.ID == id {
			return r, true
		}
	}
	return BreedingRecord{}, false
}

// FindNotification returns the notification with the given id.
func (s State) FindNotification(id string) (Notification, bool) {
	for _, n := range s.Notifications {
		if n.ID == id {
			return n, true
		}
	}
	return Notification{}, false
}

// Change describes a mutation applied to a collection during a dispatch.
type Change struct {
	Entity EntityType
	Action ChangeAction
	Before any
	After  any
}

// ChangeAction indicates the type of modification performed.
type ChangeAction string

// Change actions enumerate the mutations captured in the audit trail.
const (
	// ChangeCreate indicates a record was appended.
	ChangeCreate ChangeAction = "create"
	// ChangeUpdate indicates a record was replaced or patched.
	ChangeUpdate ChangeAction = "update"
	ChangeDelete ChangeAction = "delete"
)
