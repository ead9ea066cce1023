package view

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"strings"
	"sync"

	svg "github.com/ajstarks/svgo"
)

// Chart chrome, in pixels.
const (
	axisLabelWidth = 24
	axisGap        = 12
	plotPadTop     = 6
	plotPadBottom  = 6
	labelFontSize  = 12
)

const (
	colorGrid      = "#d1d5db"
	colorAxisLabel = "#9ca3af"
	colorBarBottom = "#10b981"
	colorBarTop    = "#34d399"
)

// TrendSVG draws the bar chart as an inline <svg> element.
//
// svgo escapes title and text content, so the result is safe to embed as
// template.HTML.
func TrendSVG(t Trend) template.HTML {
	plotX := axisLabelWidth + axisGap
	width := plotX + max(t.PlotWidth(), BarWidth)
	height := plotPadTop + PlotHeight + plotPadBottom
	baseline := plotPadTop + PlotHeight

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height,
		`class="trend-chart"`,
		`role="img"`,
		fmt.Sprintf(`aria-label="%d month trend"`, len(t.Bars)),
	)

	gradient := t.ChartID + "-fill"
	canvas.Def()
	canvas.LinearGradient(gradient, 0, 100, 0, 0, []svg.Offcolor{
		{Offset: 0, Color: colorBarBottom, Opacity: 1},
		{Offset: 100, Color: colorBarTop, Opacity: 1},
	})
	canvas.DefEnd()

	canvas.Gstyle(fmt.Sprintf("font-size:%dpx;fill:%s", labelFontSize, colorAxisLabel))
	for _, g := range t.Gridlines {
		y := baseline - pixels(g.Percent)
		canvas.Line(plotX, y, width, y, fmt.Sprintf("stroke:%s;stroke-dasharray:4 3", colorGrid))
		canvas.Text(axisLabelWidth, y+labelFontSize/3, g.Label, "text-anchor:end")
	}
	canvas.Gend()

	for i, b := range t.Bars {
		h := pixels(b.HeightPercent)
		x := plotX + i*(BarWidth+BarGap)
		canvas.Group(`class="trend-bar"`)
		canvas.Title(b.Tooltip)
		canvas.Roundrect(x, baseline-h, BarWidth, h, 3, 3, fmt.Sprintf("fill:url(#%s)", gradient))
		canvas.Gend()
	}
	canvas.End()

	return template.HTML(stripProlog(buf.String())) //nolint:gosec // svgo escapes user text
}

// pixels converts a percentage of the plot height to whole pixels, clamped
// to the plot. NaN is treated as 0.
func pixels(percent float64) int {
	if math.IsNaN(percent) {
		return 0
	}
	percent = min(max(percent, 0), 100)
	return int(percent/100*PlotHeight + 0.5)
}

var pinIcon = sync.OnceValue(func() template.HTML {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(16, 16, 0, 0, 24, 24)
	style := "fill:none;stroke:currentColor;stroke-width:2;stroke-linecap:round;stroke-linejoin:round"
	canvas.Path("M17.657 16.657L13.414 20.9a1.998 1.998 0 01-2.827 0l-4.244-4.243a8 8 0 1111.314 0z", style)
	canvas.Path("M15 11a3 3 0 11-6 0 3 3 0 016 0z", style)
	canvas.End()
	return template.HTML(stripProlog(buf.String())) //nolint:gosec // constant markup
})

// PinIcon is the map-pin shown before a practice's location.
func PinIcon() template.HTML {
	return pinIcon()
}

// stripProlog drops the XML declaration svgo writes; it is not valid inside HTML.
func stripProlog(s string) string {
	if i := strings.Index(s, "<svg"); i > 0 {
		return s[i:]
	}
	return s
}
