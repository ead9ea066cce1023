package repository

import "github.com/okian/practicedash/internal/domain/model"

// DefaultPractices returns the built-in records shown when no practices file
// is configured.
func DefaultPractices() []model.Practice {
	return []model.Practice{
		{
			ID:                   "1",
			Name:                 "Downtown Dental Care",
			City:                 "San Francisco",
			Country:              "USA",
			NewPatientsThisMonth: 42,
			AppointmentRequests:  180,
			ConversionRate:       23.3,
			ShowRate:             87.5,
			MonthlyTrend:         []float64{28, 32, 35, 38, 41, 42},
		},
		{
			ID:                   "2",
			Name:                 "Bright Smiles Clinic",
			City:                 "Austin",
			Country:              "USA",
			NewPatientsThisMonth: 18,
			AppointmentRequests:  220,
			ConversionRate:       8.2,
			ShowRate:             72.3,
			MonthlyTrend:         []float64{25, 22, 20, 19, 18, 18},
		},
		{
			ID:                   "3",
			Name:                 "Elite Dental Studio",
			City:                 "Toronto",
			Country:              "Canada",
			NewPatientsThisMonth: 31,
			AppointmentRequests:  195,
			ConversionRate:       15.9,
			ShowRate:             81.0,
			MonthlyTrend:         []float64{22, 25, 27, 28, 30, 31},
		},
	}
}
