// Package status classifies a practice's performance from its conversion rate.
package status

// Status is the closed set of performance buckets.
type Status string

const (
	High   Status = "high"
	Stable Status = "stable"
	AtRisk Status = "at-risk"
)

// Thresholds, in percent.
const (
	HighThreshold   = 20.0
	AtRiskThreshold = 10.0
)

// All lists every status in display order.
var All = []Status{High, Stable, AtRisk}

// Classify maps a conversion rate to a status. A rate of exactly 20 is High
// and exactly 10 is Stable.
func Classify(conversionRate float64) Status {
	if conversionRate >= HighThreshold {
		return High
	}
	if conversionRate < AtRiskThreshold {
		return AtRisk
	}
	return Stable
}

// Label is the badge text.
func (s Status) Label() string {
	switch s {
	case High:
		return "High Performer"
	case AtRisk:
		return "At Risk"
	default:
		return "Stable"
	}
}

// Tone names the badge color treatment.
func (s Status) Tone() string {
	switch s {
	case High:
		return "green"
	case AtRisk:
		return "red"
	default:
		return "blue"
	}
}

func (s Status) String() string { return string(s) }
