package decision

import (
	"fmt"
	"strconv"

	"bizstats/domain/scenario"
	"bizstats/domain/stats"
	"bizstats/domain/verdict"
)

// Reporter maps a test outcome to a business recommendation. It does no
// computation beyond reading the reject flag and the side of the deviation.
type Reporter struct{}

// NewReporter creates a decision reporter
func NewReporter() *Reporter {
	return &Reporter{}
}

// Decide picks the recommendation for the scenario's family
func (r *Reporter) Decide(s scenario.Scenario, result stats.TestResult) verdict.Decision {
	var d verdict.Decision
	switch s.Family {
	case stats.FamilyPoisson:
		d = r.orderRate(result)
	case stats.FamilyBinomial:
		d = r.defectRate(result)
	default:
		d = r.deliveryPromise(result)
	}
	d.Scenario = s.Key
	return d
}

func (r *Reporter) orderRate(result stats.TestResult) verdict.Decision {
	if result.Reject {
		return verdict.Decision{
			Outcome:  verdict.OutcomeRateChanged,
			Headline: "The new system HAS significantly changed the order rate.",
			Advice:   "LogiMexico must readjust its staffing and operating capacity.",
		}
	}
	return verdict.Decision{
		Outcome:  verdict.OutcomeRateUnchanged,
		Headline: "There is not enough evidence of a change.",
		Advice:   "The current operation can be kept.",
	}
}

func (r *Reporter) defectRate(result stats.TestResult) verdict.Decision {
	if !result.Reject {
		return verdict.Decision{
			Outcome:  verdict.OutcomeQualityUnchanged,
			Headline: "There is not enough evidence that the defect rate changed.",
			Advice:   "Keep monitoring against the current quality baseline.",
		}
	}
	if result.Deviation() == stats.DirectionBelow {
		return verdict.Decision{
			Outcome:  verdict.OutcomeQualityImproved,
			Headline: "The defect rate is significantly LOWER than before.",
			Advice:   "Keep the new process and update the quality baseline.",
		}
	}
	return verdict.Decision{
		Outcome:  verdict.OutcomeQualityWorsened,
		Headline: "The defect rate is significantly HIGHER than before.",
		Advice:   "Review the production line before the next turn.",
	}
}

func (r *Reporter) deliveryPromise(result stats.TestResult) verdict.Decision {
	promise := fmt.Sprintf("%s-day", strconv.FormatFloat(result.Null, 'f', -1, 64))

	if !result.Reject {
		return verdict.Decision{
			Outcome:  verdict.OutcomePromiseMet,
			Headline: fmt.Sprintf("The %s promise IS being met.", promise),
			Advice:   "The commercial offer can be kept or even improved.",
		}
	}
	if result.Deviation() == stats.DirectionAbove {
		return verdict.Decision{
			Outcome:  verdict.OutcomeUnderperforming,
			Headline: fmt.Sprintf("The %s promise is NOT being met.", promise),
			Advice:   "Deliveries take LONGER than promised. Improve logistics or change the commercial promise.",
		}
	}
	return verdict.Decision{
		Outcome:  verdict.OutcomeOverperforming,
		Headline: "Deliveries arrive FASTER than promised.",
		Advice:   "Excellent! This can be used as a competitive advantage.",
	}
}
