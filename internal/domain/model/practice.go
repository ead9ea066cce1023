// Package model contains domain models passed between layers.
package model

import "slices"

// Practice is one dental practice's monthly performance snapshot.
// Records are supplied once and never mutated.
type Practice struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	City    string `yaml:"city"`
	Country string `yaml:"country"`

	NewPatientsThisMonth int `yaml:"new_patients_this_month"`
	AppointmentRequests  int `yaml:"appointment_requests"`

	// ConversionRate and ShowRate are percentages, nominally within [0, 100].
	ConversionRate float64 `yaml:"conversion_rate"`
	ShowRate       float64 `yaml:"show_rate"`

	// ShowRateTrend is the month-over-month show rate change, when known.
	ShowRateTrend *float64 `yaml:"show_rate_trend,omitempty"`

	// MonthlyTrend holds new-patient counts, oldest first. Usually six points.
	MonthlyTrend []float64 `yaml:"monthly_trend"`
}

// Clone returns a deep copy so callers cannot alias the stored slices.
func (p Practice) Clone() Practice {
	c := p
	c.MonthlyTrend = slices.Clone(p.MonthlyTrend)
	if p.ShowRateTrend != nil {
		v := *p.ShowRateTrend
		c.ShowRateTrend = &v
	}
	return c
}

// TrendMax returns the largest trend value, or 0 for an empty trend.
func (p Practice) TrendMax() float64 {
	if len(p.MonthlyTrend) == 0 {
		return 0
	}
	return slices.Max(p.MonthlyTrend)
}
