package verdict

import (
	"bizstats/domain/core"
)

// Outcome is the business reading of a hypothesis test
type Outcome string

const (
	// Order rate (Poisson)
	OutcomeRateChanged   Outcome = "rate_changed"
	OutcomeRateUnchanged Outcome = "rate_unchanged"

	// Defect proportion (Binomial)
	OutcomeQualityImproved  Outcome = "quality_improved"
	OutcomeQualityWorsened  Outcome = "quality_worsened"
	OutcomeQualityUnchanged Outcome = "quality_unchanged"

	// Delivery promise (Normal)
	OutcomeUnderperforming Outcome = "underperforming"
	OutcomeOverperforming  Outcome = "overperforming"
	OutcomePromiseMet      Outcome = "promise_met"
)

// Decision is the recommendation printed at the end of a run
type Decision struct {
	Scenario core.ScenarioKey `json:"scenario"`
	Outcome  Outcome          `json:"outcome"`
	Headline string           `json:"headline"`
	Advice   string           `json:"advice"`
}

// Lines returns the headline and advice in print order
func (d Decision) Lines() []string {
	return []string{"DECISION: " + d.Headline, d.Advice}
}
