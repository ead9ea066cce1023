package view

import (
	"fmt"
	"math"
	"strconv"
)

// Trend chart geometry, in pixels.
const (
	BarWidth   = 34
	BarGap     = 6
	PlotHeight = 160

	defaultAxisMax       = 45.0
	defaultMinBarPercent = 8.0
)

// Scale controls how trend values map to bar heights.
type Scale struct {
	// AxisMax is the value of a full-height bar.
	AxisMax float64
	// Gridlines are the labelled axis values, top to bottom.
	Gridlines []float64
	// MinBarPercent keeps small and zero bars visible.
	MinBarPercent float64
	// Dynamic replaces AxisMax with the page's global maximum.
	Dynamic bool
}

// DefaultScale is the fixed 0..45 axis.
func DefaultScale() Scale {
	return Scale{
		AxisMax:       defaultAxisMax,
		Gridlines:     []float64{45, 35, 25, 15, 0},
		MinBarPercent: defaultMinBarPercent,
	}
}

// For resolves the scale for a page. With Dynamic set and a positive
// globalMax, the axis becomes globalMax and the gridlines are stretched
// proportionally. A non-positive axis falls back to the default.
func (s Scale) For(globalMax float64) Scale {
	out := s
	out.Gridlines = append([]float64(nil), s.Gridlines...)
	if out.AxisMax <= 0 {
		out.AxisMax = defaultAxisMax
	}
	if !s.Dynamic || globalMax <= 0 {
		return out
	}
	ratio := globalMax / out.AxisMax
	for i, g := range out.Gridlines {
		out.Gridlines[i] = g * ratio
	}
	out.AxisMax = globalMax
	return out
}

// HeightPercent returns v as a percentage of the axis, floored at
// MinBarPercent. It is not capped; renderers clip at the plot edge.
// NaN draws as the minimum bar.
func (s Scale) HeightPercent(v float64) float64 {
	if math.IsNaN(v) {
		return s.MinBarPercent
	}
	return max(v/s.axis()*100, s.MinBarPercent)
}

func (s Scale) axis() float64 {
	if s.AxisMax <= 0 {
		return defaultAxisMax
	}
	return s.AxisMax
}

// Trend is a card's bar chart.
type Trend struct {
	// ChartID is unique per card and safe to use as an SVG id prefix.
	ChartID   string
	Bars      []Bar
	AxisMax   float64
	Gridlines []Gridline
}

// Bar is one month.
type Bar struct {
	Month         int
	Value         float64
	HeightPercent float64
	Tooltip       string
}

// Gridline is one dashed line with its axis label.
type Gridline struct {
	Value   float64
	Label   string
	Percent float64
}

// Trend builds the chart for a series, oldest first.
func (s Scale) Trend(id string, series []float64) Trend {
	t := Trend{
		ChartID:   "trend-" + sanitizeID(id),
		Bars:      make([]Bar, len(series)),
		AxisMax:   s.axis(),
		Gridlines: make([]Gridline, len(s.Gridlines)),
	}
	for i, v := range series {
		t.Bars[i] = Bar{
			Month:         i + 1,
			Value:         v,
			HeightPercent: s.HeightPercent(v),
			Tooltip:       fmt.Sprintf("Month %d: %s", i+1, FormatValue(v)),
		}
	}
	for i, g := range s.Gridlines {
		t.Gridlines[i] = Gridline{
			Value:   g,
			Label:   FormatValue(roundTo(g, 1)),
			Percent: min(max(g/s.axis()*100, 0), 100),
		}
	}
	return t
}

// PlotWidth is the width of the bar area: n bars plus the gaps between them.
func (t Trend) PlotWidth() int {
	n := len(t.Bars)
	if n == 0 {
		return 0
	}
	return n*BarWidth + (n-1)*BarGap
}

// FormatValue prints a number the short way: 28, 2.5, 0.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func roundTo(v float64, decimals int) float64 {
	f, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	if err != nil {
		return v
	}
	return f
}

func sanitizeID(id string) string {
	out := make([]byte, 0, len(id))
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			out = append(out, c)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
