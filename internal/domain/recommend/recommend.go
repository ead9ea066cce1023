// Package recommend selects advisory text for a practice from fixed scripts.
package recommend

import (
	"slices"

	"github.com/okian/practicedash/internal/domain/model"
)

// MaxRecommendations caps how many lines a card shows.
const MaxRecommendations = 2

// Branch identifies which rule produced a selection.
type Branch string

const (
	// LowConversion fires below 10% conversion.
	LowConversion Branch = "low_conversion"
	// BookingFriction fires below 15% conversion with more than 30 requests.
	BookingFriction Branch = "booking_friction"
	// Strong fires at or above 20% conversion.
	Strong Branch = "strong"
	// Monitor covers everything else.
	Monitor Branch = "monitor"
)

const (
	lowConversionRate   = 10.0
	frictionRate        = 15.0
	frictionMinRequests = 30
	strongRate          = 20.0
)

var scripts = map[Branch][]string{
	LowConversion: {
		"Improve follow-up speed to capture more appointment requests",
		"Review messaging and value proposition on landing pages",
	},
	BookingFriction: {
		"Optimize booking flow to reduce friction and increase conversions",
		"Consider adding live chat support during business hours",
	},
	Strong: {
		"Maintain current follow-up processes—performance is strong",
		"Consider expanding marketing reach to increase volume",
	},
	Monitor: {
		"Continue monitoring conversion trends month-over-month",
		"Test A/B variations on appointment booking CTAs",
	},
}

// Pick returns the rule branch for a practice. Rules are checked in order and
// the first match wins, so 12% with 40 requests is BookingFriction even
// though it also sits in Monitor's range.
func Pick(p model.Practice) Branch {
	switch {
	case p.ConversionRate < lowConversionRate:
		return LowConversion
	case p.ConversionRate < frictionRate && p.AppointmentRequests > frictionMinRequests:
		return BookingFriction
	case p.ConversionRate >= strongRate:
		return Strong
	default:
		return Monitor
	}
}

// Select returns the branch and its recommendations, at most MaxRecommendations.
func Select(p model.Practice) (Branch, []string) {
	b := Pick(p)
	return b, truncate(scripts[b])
}

// For returns the recommendations for a practice.
func For(p model.Practice) []string {
	_, recs := Select(p)
	return recs
}

func truncate(lines []string) []string {
	return slices.Clone(lines[:min(len(lines), MaxRecommendations)])
}
