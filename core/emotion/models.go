package emotion

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/kokoro/core"
)

// Distribution patterns
const (
	PatternNormal  = "normal"
	PatternBimodal = "bimodal"
	PatternStress  = "stress"
	PatternHappy   = "happy"
)

var Patterns = []string{PatternNormal, PatternBimodal, PatternStress, PatternHappy}

// Score bounds
const (
	MinEmotion = 1.0
	MaxEmotion = 5.0
)

// Records carry an hour of day; a school day runs from 5am onwards.
const (
	MinHour = 5
	MaxHour = 23
)

type (
	// ClassCharacteristics biases generation for a whole class.
	// Cohesion is accepted and carried but not read by the generation math yet.
	ClassCharacteristics struct {
		Baseline   float64 `json:"baselineEmotion"`
		Volatility float64 `json:"volatility"`
		Cohesion   float64 `json:"cohesion"`
	}

	// EventEffect is a time-windowed perturbation (exam week, school trip, ...).
	// Dates are UTC midnights; the window is inclusive on both ends.
	EventEffect struct {
		Name      string    `json:"name"`
		StartDate time.Time `json:"startDate"`
		EndDate   time.Time `json:"endDate"`
		Impact    float64   `json:"impact"`
	}

	// Configuration is the validated input of a generation run.
	// Build one from a GenerationRequest; the generation core assumes validity
	// and does not re-check bounds.
	Configuration struct {
		StudentCount    int                  `json:"studentCount"`
		PeriodDays      int                  `json:"periodDays"`
		Pattern         string               `json:"distributionPattern"`
		SeasonalEffects bool                 `json:"seasonalEffects"`
		Events          []EventEffect        `json:"eventEffects"`
		Class           ClassCharacteristics `json:"classCharacteristics"`
	}

	// Record is one generated observation. Immutable once appended.
	Record struct {
		Date    time.Time `json:"date"`
		Student int       `json:"student"`
		Emotion float64   `json:"emotion"`
		Hour    int       `json:"hour"`
	}
)

// Valid reports whether a record may take part in aggregation.
func (r Record) Valid() bool {
	return !r.Date.IsZero() &&
		r.Student >= 0 &&
		r.Emotion >= MinEmotion && r.Emotion <= MaxEmotion &&
		r.Hour >= 0 && r.Hour <= 23
}

// Day truncates t to a UTC midnight; all generation dates live at day granularity.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DefaultClass is used when a request omits classCharacteristics.
func DefaultClass() ClassCharacteristics {
	return ClassCharacteristics{Baseline: 3.0, Volatility: 0.5, Cohesion: 0.5}
}

type (
	// GenerationRequest contains information needed to run a generation.
	// Omitted fields fall back to the configured demo defaults.
	GenerationRequest struct {
		StudentCount    int            `json:"studentCount" validate:"min=10,max=500"`
		PeriodDays      int            `json:"periodDays" validate:"min=7,max=365"`
		Pattern         string         `json:"distributionPattern" validate:"required,pattern"`
		SeasonalEffects *bool          `json:"seasonalEffects"`
		Events          []EventRequest `json:"eventEffects" validate:"omitempty,dive"`
		Class           *ClassRequest  `json:"classCharacteristics"`
	}

	EventRequest struct {
		Name      string    `json:"name" validate:"required"`
		StartDate time.Time `json:"startDate" validate:"required"`
		EndDate   time.Time `json:"endDate" validate:"required"`
		Impact    float64   `json:"impact" validate:"min=-1,max=1"`
	}

	ClassRequest struct {
		Baseline   float64 `json:"baselineEmotion" validate:"min=2.5,max=3.5"`
		Volatility float64 `json:"volatility" validate:"min=0.1,max=1"`
		Cohesion   float64 `json:"cohesion" validate:"min=0.1,max=1"`
	}
)

// Validate fills omitted fields from the demo defaults, validates the request
// and builds the Configuration a generation run consumes.
func (gr *GenerationRequest) Validate(validate *validator.Validate, defaults core.DemoConfig) (Configuration, error) {
	if gr.StudentCount == 0 {
		gr.StudentCount = defaults.StudentCount
	}
	if gr.PeriodDays == 0 {
		gr.PeriodDays = defaults.PeriodDays
	}
	gr.Pattern = core.CleanString(gr.Pattern, true /* lower */)
	if gr.Pattern == "" {
		gr.Pattern = defaults.Pattern
	}

	if err := validate.Struct(gr); err != nil {
		return Configuration{}, err
	}

	cfg := Configuration{
		StudentCount:    gr.StudentCount,
		PeriodDays:      gr.PeriodDays,
		Pattern:         gr.Pattern,
		SeasonalEffects: defaults.SeasonalEffects,
		Events:          make([]EventEffect, 0, len(gr.Events)),
		Class:           DefaultClass(),
	}
	if gr.SeasonalEffects != nil {
		cfg.SeasonalEffects = *gr.SeasonalEffects
	}
	for _, ev := range gr.Events {
		cfg.Events = append(cfg.Events, EventEffect{
			Name:      core.CleanString(ev.Name),
			StartDate: Day(ev.StartDate),
			EndDate:   Day(ev.EndDate),
			Impact:    ev.Impact,
		})
	}
	if gr.Class != nil {
		cfg.Class = ClassCharacteristics{
			Baseline:   gr.Class.Baseline,
			Volatility: gr.Class.Volatility,
			Cohesion:   gr.Class.Cohesion,
		}
	}
	return cfg, nil
}
