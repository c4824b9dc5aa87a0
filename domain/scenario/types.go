package scenario

import (
	"math"
	"sort"

	"bizstats/domain/core"
	"bizstats/domain/stats"
)

const (
	DefaultConfidence = 0.95
	DefaultAlpha      = 0.05
	DefaultPreview    = 10
)

// Scenario keys
const (
	KeyLogistics  core.ScenarioKey = "logistics"
	KeyProduction core.ScenarioKey = "production"
	KeyDelivery   core.ScenarioKey = "delivery"
)

// Scenario is the full set of literal constants for one pipeline.
// The reference values are deliberately different from the simulated
// parameters so the exercise shows a rejection.
type Scenario struct {
	Key         core.ScenarioKey `json:"key"`
	Title       string           `json:"title"`
	Question    string           `json:"question"`
	Family      stats.Family     `json:"family"`
	Params      stats.Params     `json:"params"`
	Size        int              `json:"size"`
	Seed        int64            `json:"seed"`
	Null        float64          `json:"null"`
	Alpha       float64          `json:"alpha"`
	Confidence  float64          `json:"confidence"`
	Preview     int              `json:"preview"`
	SampleLabel string           `json:"sample_label"`
	Unit        string           `json:"unit"`
	Percent     bool             `json:"percent"` // render interval bounds as percentages
}

// Logistics is the order-rate scenario: orders per hour after automating the
// warehouse, compared against the historical rate of 12.
func Logistics() Scenario {
	return Scenario{
		Key:         KeyLogistics,
		Title:       "LogiMexico order rate",
		Question:    "Has the automated system changed the hourly order rate?",
		Family:      stats.FamilyPoisson,
		Params:      stats.Params{Lambda: 14},
		Size:        60,
		Seed:        42,
		Null:        12,
		Alpha:       DefaultAlpha,
		Confidence:  DefaultConfidence,
		Preview:     DefaultPreview,
		SampleLabel: "Orders per hour",
		Unit:        "orders/hour",
	}
}

// Production is the defect-rate scenario: defective pieces out of 500 per
// turn over 40 turns, compared against the historical rate of 3%.
func Production() Scenario {
	return Scenario{
		Key:         KeyProduction,
		Title:       "Production center defect rate",
		Question:    "Has the defect proportion changed from 3%?",
		Family:      stats.FamilyBinomial,
		Params:      stats.Params{Trials: 500, P: 0.025},
		Size:        40,
		Seed:        123,
		Null:        0.03,
		Alpha:       DefaultAlpha,
		Confidence:  DefaultConfidence,
		Preview:     DefaultPreview,
		SampleLabel: "Defects per turn",
		Unit:        "defect rate",
		Percent:     true,
	}
}

// Delivery is the delivery-time scenario: days per delivery compared against
// the 4-day commercial promise.
func Delivery() Scenario {
	return Scenario{
		Key:         KeyDelivery,
		Title:       "Customer delivery promise",
		Question:    "Are deliveries meeting the 4-day promise?",
		Family:      stats.FamilyNormal,
		Params:      stats.Params{Mu: 4.2, Sigma: 0.8},
		Size:        80,
		Seed:        456,
		Null:        4.0,
		Alpha:       DefaultAlpha,
		Confidence:  DefaultConfidence,
		Preview:     DefaultPreview,
		SampleLabel: "Delivery times",
		Unit:        "days",
	}
}

var registry = map[core.ScenarioKey]func() Scenario{
	KeyLogistics:  Logistics,
	KeyProduction: Production,
	KeyDelivery:   Delivery,
}

// All returns every built-in scenario in a stable order
func All() []Scenario {
	return []Scenario{Logistics(), Production(), Delivery()}
}

// Keys lists the registered scenario keys alphabetically
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	return keys
}

// Lookup finds a built-in scenario by name
func Lookup(name string) (Scenario, error) {
	key, err := core.ParseScenarioKey(name)
	if err != nil {
		return Scenario{}, core.NewUnknownScenarioError(name)
	}
	build, ok := registry[key]
	if !ok {
		return Scenario{}, core.NewUnknownScenarioError(name)
	}
	return build(), nil
}

// Validate checks sizes, levels, parameters and the reference value
func (s Scenario) Validate() error {
	if err := s.Params.Validate(s.Family); err != nil {
		return err
	}

	minSize := 1
	if s.Family == stats.FamilyNormal {
		minSize = 2 // standard error needs n-1 > 0
	}
	if s.Size < minSize {
		return core.NewParameterError("size", float64(s.Size), "is too small")
	}
	if !(s.Confidence > 0 && s.Confidence < 1) {
		return core.NewLevelError("confidence", s.Confidence)
	}
	if !(s.Alpha > 0 && s.Alpha < 1) {
		return core.NewLevelError("alpha", s.Alpha)
	}

	switch s.Family {
	case stats.FamilyPoisson:
		if !(s.Null > 0) {
			return core.NewParameterError("null rate", s.Null, "must be positive")
		}
	case stats.FamilyBinomial:
		if !(s.Null > 0 && s.Null < 1) {
			return core.NewParameterError("null proportion", s.Null, "must be in (0, 1)")
		}
	case stats.FamilyNormal:
		if math.IsNaN(s.Null) || math.IsInf(s.Null, 0) {
			return core.NewParameterError("null mean", s.Null, "must be finite")
		}
	}
	return nil
}

// WithSeed returns a copy using a different seed
func (s Scenario) WithSeed(seed int64) Scenario {
	s.Seed = seed
	return s
}

// WithConfidence returns a copy using a different confidence level
func (s Scenario) WithConfidence(level float64) Scenario {
	s.Confidence = level
	return s
}

// WithAlpha returns a copy using a different significance level
func (s Scenario) WithAlpha(alpha float64) Scenario {
	s.Alpha = alpha
	return s
}

// WithPreview returns a copy showing n leading sample values
func (s Scenario) WithPreview(n int) Scenario {
	s.Preview = n
	return s
}
