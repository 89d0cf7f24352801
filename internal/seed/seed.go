// Package seed loads YAML datasets into application state. Date strings are
// parsed explicitly so a malformed date becomes a reported violation instead
// of a failed load.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"herdcore/internal/core"
	"herdcore/pkg/domain"
)

//go:embed seed.yaml
var defaultSeed []byte

// dateLayout is the only accepted date format in datasets.
const dateLayout = "2006-01-02"

// parseRule names the violations produced while parsing, as opposed to the
// engine rules evaluated afterwards.
const parseRule = "seed_parse"

type document struct {
	Language          string                `yaml:"language"`
	Animals           []animalDoc           `yaml:"animals"`
	HealthRecords     []healthRecordDoc     `yaml:"health_records"`
	BreedingRecords   []breedingRecordDoc   `yaml:"breeding_records"`
	ProductionRecords []productionRecordDoc `yaml:"production_records"`
	MarketPrices      []marketPriceDoc      `yaml:"market_prices"`
	DiseaseGuides     []diseaseGuideDoc     `yaml:"disease_guides"`
	KnowledgeArticles []knowledgeArticleDoc `yaml:"knowledge_articles"`
	Notifications     []notificationDoc     `yaml:"notifications"`
}

type animalDoc struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Type          string   `yaml:"type"`
	Breed         string   `yaml:"breed"`
	BirthDate     string   `yaml:"birth_date"`
	Gender        string   `yaml:"gender"`
	TagNumber     string   `yaml:"tag_number"`
	Weight        *float64 `yaml:"weight"`
	PurchaseDate  string   `yaml:"purchase_date"`
	PurchasePrice *float64 `yaml:"purchase_price"`
	ImageURL      string   `yaml:"image_url"`
	Notes         string   `yaml:"notes"`
}

type healthRecordDoc struct {
	ID                string   `yaml:"id"`
	AnimalID          string   `yaml:"animal_id"`
	Date              string   `yaml:"date"`
	Type              string   `yaml:"type"`
	Description       string   `yaml:"description"`
	Medicine          string   `yaml:"medicine"`
	Dosage            string   `yaml:"dosage"`
	Veterinarian      string   `yaml:"veterinarian"`
	Cost              *float64 `yaml:"cost"`
	NextScheduledDate string   `yaml:"next_scheduled_date"`
}

type breedingRecordDoc struct {
	ID              string `yaml:"id"`
	FemaleAnimalID  string `yaml:"female_animal_id"`
	MaleAnimalID    string `yaml:"male_animal_id"`
	Date            string `yaml:"date"`
	Method          string `yaml:"method"`
	Notes           string `yaml:"notes"`
	ExpectedDueDate string `yaml:"expected_due_date"`
	ActualBirthDate string `yaml:"actual_birth_date"`
	OffspringCount  *int   `yaml:"offspring_count"`
	SuccessStatus   string `yaml:"success_status"`
}

type productionRecordDoc struct {
	ID       string  `yaml:"id"`
	AnimalID string  `yaml:"animal_id"`
	Date     string  `yaml:"date"`
	Type     string  `yaml:"type"`
	Quantity float64 `yaml:"quantity"`
	Notes    string  `yaml:"notes"`
}

type marketPriceDoc struct {
	ID       string  `yaml:"id"`
	Item     string  `yaml:"item"`
	Price    float64 `yaml:"price"`
	Unit     string  `yaml:"unit"`
	Location string  `yaml:"location"`
	Date     string  `yaml:"date"`
}

type diseaseGuideDoc struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	AnimalTypes   []string `yaml:"animal_types"`
	Symptoms      []string `yaml:"symptoms"`
	Treatment     string   `yaml:"treatment"`
	Prevention    string   `yaml:"prevention"`
	EmergencyCare string   `yaml:"emergency_care"`
}

type knowledgeArticleDoc struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Content     string   `yaml:"content"`
	Category    string   `yaml:"category"`
	AnimalTypes []string `yaml:"animal_types"`
	ImageURL    string   `yaml:"image_url"`
	Language    string   `yaml:"language"`
}

type notificationDoc struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Date        string `yaml:"date"`
	Type        string `yaml:"type"`
	Status      string `yaml:"status"`
	RelatedID   string `yaml:"related_id"`
}

// loader accumulates parse violations while converting documents.
type loader struct {
	violations []domain.Violation
}

func (l *loader) report(entity domain.EntityType, id, field, raw string) {
	l.violations = append(l.violations, domain.Violation{
		Rule:     parseRule,
		Severity: domain.SeverityWarn,
		Message:  fmt.Sprintf("%s: cannot parse date %q", field, raw),
		Entity:   entity,
		EntityID: id,
	})
}

// date parses a required date. Malformed input reports a violation and yields
// the zero time, which downstream treats as unscheduled.
func (l *loader) date(entity domain.EntityType, id, field, raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		l.report(entity, id, field, raw)
		return time.Time{}
	}
	return t
}

// optionalDate parses an optional date. Empty input is nil without comment.
func (l *loader) optionalDate(entity domain.EntityType, id, field, raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		l.report(entity, id, field, raw)
		return nil
	}
	return &t
}

func (l *loader) state(doc document) domain.State {
	state := domain.State{Language: domain.LanguageEnglish}
	if lang := domain.Language(doc.Language); lang.Valid() {
		state.Language = lang
	}

	for _, d := range doc.Animals {
		state.Animals = append(state.Animals, domain.Animal{
			ID:            d.ID,
			Name:          d.Name,
			Type:          domain.AnimalType(d.Type),
			Breed:         d.Breed,
			BirthDate:     l.date(domain.EntityAnimal, d.ID, "birth_date", d.BirthDate),
			Gender:        domain.Gender(d.Gender),
			TagNumber:     d.TagNumber,
			Weight:        d.Weight,
			PurchaseDate:  l.optionalDate(domain.EntityAnimal, d.ID, "purchase_date", d.PurchaseDate),
			PurchasePrice: d.PurchasePrice,
			ImageURL:      d.ImageURL,
			Notes:         d.Notes,
		})
	}
	for _, d := range doc.HealthRecords {
		state.HealthRecords = append(state.HealthRecords, domain.HealthRecord{
			ID:                d.ID,
			AnimalID:          d.AnimalID,
			Date:              l.date(domain.EntityHealthRecord, d.ID, "date", d.Date),
			Type:              domain.HealthEventType(d.Type),
			Description:       d.Description,
			Medicine:          d.Medicine,
			Dosage:            d.Dosage,
			Veterinarian:      d.Veterinarian,
			Cost:              d.Cost,
			NextScheduledDate: l.optionalDate(domain.EntityHealthRecord, d.ID, "next_scheduled_date", d.NextScheduledDate),
		})
	}
	for _, d := range doc.BreedingRecords {
		status := domain.SuccessStatus(d.SuccessStatus)
		if status == "" {
			status = domain.BreedingPending
		}
		state.BreedingRecords = append(state.BreedingRecords, domain.BreedingRecord{
			ID:              d.ID,
			FemaleAnimalID:  d.FemaleAnimalID,
			MaleAnimalID:    d.MaleAnimalID,
			Date:            l.date(domain.EntityBreedingRecord, d.ID, "date", d.Date),
			Method:          domain.BreedingMethod(d.Method),
			Notes:           d.Notes,
			ExpectedDueDate: l.optionalDate(domain.EntityBreedingRecord, d.ID, "expected_due_date", d.ExpectedDueDate),
			ActualBirthDate: l.optionalDate(domain.EntityBreedingRecord, d.ID, "actual_birth_date", d.ActualBirthDate),
			OffspringCount:  d.OffspringCount,
			SuccessStatus:   status,
		})
	}
	for _, d := range doc.ProductionRecords {
		state.ProductionRecords = append(state.ProductionRecords, domain.ProductionRecord{
			ID:       d.ID,
			AnimalID: d.AnimalID,
			Date:     l.date(domain.EntityProductionRecord, d.ID, "date", d.Date),
			Type:     domain.ProductionType(d.Type),
			Quantity: d.Quantity,
			Notes:    d.Notes,
		})
	}
	for _, d := range doc.MarketPrices {
		state.MarketPrices = append(state.MarketPrices, domain.MarketPrice{
			ID:       d.ID,
			Item:     d.Item,
			Price:    d.Price,
			Unit:     d.Unit,
			Location: d.Location,
			Date:     l.date(domain.EntityMarketPrice, d.ID, "date", d.Date),
		})
	}
	for _, d := range doc.DiseaseGuides {
		state.DiseaseGuides = append(state.DiseaseGuides, domain.DiseaseGuide{
			ID:            d.ID,
			Name:          d.Name,
			AnimalTypes:   animalTypes(d.AnimalTypes),
			Symptoms:      d.Symptoms,
			Treatment:     d.Treatment,
			Prevention:    d.Prevention,
			EmergencyCare: d.EmergencyCare,
		})
	}
	for _, d := range doc.KnowledgeArticles {
		state.KnowledgeArticles = append(state.KnowledgeArticles, domain.KnowledgeArticle{
			ID:          d.ID,
			Title:       d.Title,
			Content:     d.Content,
			Category:    domain.ArticleCategory(d.Category),
			AnimalTypes: animalTypes(d.AnimalTypes),
			ImageURL:    d.ImageURL,
			Language:    domain.Language(d.Language),
		})
	}
	for _, d := range doc.Notifications {
		state.Notifications = append(state.Notifications, domain.Notification{
			ID:          d.ID,
			Title:       d.Title,
			Description: d.Description,
			Date:        l.date(domain.EntityNotification, d.ID, "date", d.Date),
			Type:        domain.NotificationType(d.Type),
			Status:      domain.NotificationStatus(d.Status),
			RelatedID:   d.RelatedID,
		})
	}
	return state
}

func animalTypes(raw []string) []domain.AnimalType {
	if len(raw) == 0 {
		return nil
	}
	out := make([]domain.AnimalType, 0, len(raw))
	for _, r := range raw {
		out = append(out, domain.AnimalType(r))
	}
	return out
}

// Load reads a YAML dataset and validates it with the built-in rules.
// The returned Result carries both parse violations and rule violations;
// only undecodable YAML is an error.
func Load(r io.Reader) (domain.State, domain.Result, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return domain.State{}, domain.Result{}, fmt.Errorf("read dataset: %w", err)
	}
	return parse(raw)
}

// LoadFile reads a YAML dataset from disk.
func LoadFile(path string) (domain.State, domain.Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.State{}, domain.Result{}, fmt.Errorf("read dataset: %w", err)
	}
	return parse(raw)
}

// Default loads the embedded dataset.
func Default() (domain.State, domain.Result, error) {
	return parse(defaultSeed)
}

func parse(raw []byte) (domain.State, domain.Result, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return domain.State{}, domain.Result{}, fmt.Errorf("decode dataset: %w", err)
	}

	l := &loader{}
	state := l.state(doc)
	res := domain.Result{Violations: l.violations}

	ruleRes, err := core.NewDefaultRulesEngine().Evaluate(context.Background(), state, nil)
	if err != nil {
		return domain.State{}, domain.Result{}, fmt.Errorf("validate dataset: %w", err)
	}
	res.Merge(ruleRes)
	return state, res, nil
}
