// Package score rates a facility's suitability for a battery energy storage
// project on a 0-100 scale, combining utility economics, site fit, grid risk,
// and permitting feasibility into one presentation-ready result.
package score

import "time"

// SiteContext is the immutable input to a scoring request. The calling layer
// is responsible for validation and defaults; Score itself is total and never
// rejects an input.
type SiteContext struct {
	// Location: two-letter state code or full state name, plus optional zip.
	State string `json:"state" validate:"required"`
	Zip   string `json:"zip,omitempty"`

	// Industry category, e.g. "hotel", "car_wash", "data_center".
	Industry string `json:"industry" validate:"required"`

	// Utility context.
	ElectricityRate   float64 `json:"electricity_rate" validate:"gte=0"`
	DemandChargePerKW float64 `json:"demand_charge_per_kw" validate:"gte=0"`
	HasTOU            bool    `json:"has_tou"`
	PeakRate          float64 `json:"peak_rate,omitempty" validate:"gte=0"`
	OffPeakRate       float64 `json:"off_peak_rate,omitempty" validate:"gte=0"`
	UtilityName       string  `json:"utility_name,omitempty"`

	// Optional facility attributes.
	EstimatedPeakKW float64 `json:"estimated_peak_kw,omitempty" validate:"gte=0"`
	SquareFootage   float64 `json:"square_footage,omitempty" validate:"gte=0"`
	HasSolar        bool    `json:"has_solar,omitempty"`
	HasGenerator    bool    `json:"has_generator,omitempty"`

	// Manual overrides for site-specific knowledge the tables can't supply.
	Overrides *Overrides `json:"overrides,omitempty"`
}

// Overrides carries per-site corrections to the state-level lookup tables.
type Overrides struct {
	SAIDIMinutes     *float64 `json:"saidi_minutes,omitempty"`
	RateTrajectory   string   `json:"rate_trajectory,omitempty"`
	PermitComplexity string   `json:"permit_complexity,omitempty"`
}

// Label is the qualitative grade derived from the total score.
type Label string

const (
	LabelExceptional    Label = "exceptional"     // >= 85
	LabelStrong         Label = "strong"          // >= 70
	LabelGood           Label = "good"            // >= 55
	LabelModerate       Label = "moderate"        // >= 40
	LabelLimited        Label = "limited"         // >= 25
	LabelNotRecommended Label = "not_recommended" // < 25
)

// Confidence reflects how many optional inputs were supplied, not how good
// the site is.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Goal identifies a suggested project objective.
type Goal string

const (
	GoalCostSavings    Goal = "cost_savings"
	GoalPeakShaving    Goal = "peak_shaving"
	GoalResilience     Goal = "resilience"
	GoalSustainability Goal = "sustainability"
)

// CategoryScore is one of the four weighted sub-scores.
type CategoryScore struct {
	Score     float64            `json:"score"`
	Max       float64            `json:"max"`
	Breakdown map[string]float64 `json:"breakdown"`
	Insights  []string           `json:"insights"`

	// factors preserves the fixed component order for key-driver ranking;
	// the Breakdown map loses it.
	factors []KeyDriver
}

// KeyDriver is a named sub-score used for the top-3 driver ranking.
type KeyDriver struct {
	Factor string  `json:"factor"`
	Score  float64 `json:"score"`
}

// SuggestedGoal is a ranked project-objective recommendation.
type SuggestedGoal struct {
	Goal           Goal   `json:"goal"`
	Priority       int    `json:"priority"` // 1 is highest
	Reason         string `json:"reason"`
	EstimatedValue string `json:"estimated_value,omitempty"`
}

// Result is the complete suitability assessment for one site. Created fresh
// per call and never mutated afterwards.
type Result struct {
	TotalScore int   `json:"total_score"`
	Label      Label `json:"label"`

	Economic    CategoryScore `json:"economic_opportunity"`
	SiteFit     CategoryScore `json:"site_fit"`
	Risk        CategoryScore `json:"risk_resilience"`
	Feasibility CategoryScore `json:"feasibility"`

	KeyDrivers     []KeyDriver     `json:"key_drivers"`
	SuggestedGoals []SuggestedGoal `json:"suggested_goals"`
	Confidence     Confidence      `json:"confidence"`

	CalculatedAt time.Time `json:"calculated_at"`
	DataSources  []string  `json:"data_sources"`
}
