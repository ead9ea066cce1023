// Package view turns practice records into a presentational tree and renders
// it. The tree (Page -> Card -> Badge, Metrics, Trend, Recommendations) is a
// plain value; the HTML and terminal renderers only read it.
package view

import (
	"math"
	"math/big"
	"strconv"

	"github.com/okian/practicedash/internal/domain/model"
	"github.com/okian/practicedash/internal/domain/recommend"
	"github.com/okian/practicedash/internal/domain/status"
)

// Page is the whole dashboard.
type Page struct {
	Title    string
	Subtitle string

	// GlobalMax is the largest trend value across every card. Bars only
	// scale against it when the builder uses dynamic scaling.
	GlobalMax float64

	Cards []Card
}

// Card is one practice.
type Card struct {
	ID       string
	Name     string
	Location string

	Status          status.Status
	Badge           Badge
	Metrics         []Metric
	Trend           Trend
	Branch          recommend.Branch
	Recommendations []string
}

// Badge is the status pill next to the practice name.
type Badge struct {
	Label string
	Tone  string
}

// Metric is one cell of the 2x2 metric grid.
type Metric struct {
	Label  string
	Value  string
	Suffix string
}

// Builder assembles Pages from practice records.
type Builder struct {
	scale Scale
}

// NewBuilder returns a Builder with the default fixed scale.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{scale: DefaultScale()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Scale returns the builder's trend scale.
func (b *Builder) Scale() Scale { return b.scale }

// Page builds the dashboard for practices, in the given order.
func (b *Builder) Page(title, subtitle string, practices []model.Practice, globalMax float64) Page {
	cards := make([]Card, len(practices))
	for i, p := range practices {
		cards[i] = b.Card(p, globalMax)
		// ids are sanitized, so two practices could collide without the index
		cards[i].Trend.ChartID += "-" + strconv.Itoa(i)
	}
	return Page{
		Title:     title,
		Subtitle:  subtitle,
		GlobalMax: globalMax,
		Cards:     cards,
	}
}

// Card builds a single practice card.
func (b *Builder) Card(p model.Practice, globalMax float64) Card {
	st := status.Classify(p.ConversionRate)
	branch, recs := recommend.Select(p)
	return Card{
		ID:       p.ID,
		Name:     p.Name,
		Location: Location(p.City, p.Country),
		Status:   st,
		Badge:    Badge{Label: st.Label(), Tone: st.Tone()},
		Metrics: []Metric{
			{Label: "New Patients", Value: strconv.Itoa(p.NewPatientsThisMonth)},
			{Label: "Appointment Requests", Value: strconv.Itoa(p.AppointmentRequests)},
			{Label: "Conversion Rate", Value: FormatRate(p.ConversionRate), Suffix: "%"},
			{Label: "Show Rate", Value: FormatRate(p.ShowRate), Suffix: "%"},
		},
		Trend:           b.scale.For(globalMax).Trend(p.ID, p.MonthlyTrend),
		Branch:          branch,
		Recommendations: recs,
	}
}

// Location renders "City, Country".
func Location(city, country string) string {
	return city + ", " + country
}

// FormatRate formats a percentage with one decimal, without the % sign.
// Exact ties round away from zero (90.25 -> "90.3"); the rounding works on
// the float's exact binary value, so 0.35 (stored just below) gives "0.3".
func FormatRate(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	x := new(big.Float).SetPrec(256).SetFloat64(math.Abs(v))
	x.Mul(x, big.NewFloat(10))
	x.Add(x, big.NewFloat(0.5))
	tenths, _ := x.Int(nil)

	digits := tenths.String()
	if len(digits) < 2 {
		digits = "0" + digits
	}
	out := digits[:len(digits)-1] + "." + digits[len(digits)-1:]
	if v < 0 {
		out = "-" + out
	}
	return out
}
