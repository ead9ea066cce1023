// Package terminal renders the dashboard as bordered cards for a terminal.
package terminal

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/okian/practicedash/internal/view"
)

const (
	defaultCardWidth = 72
	defaultColumns   = 1
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

var (
	colorTitle  = lipgloss.Color("#111827")
	colorMuted  = lipgloss.Color("#6b7280")
	colorBorder = lipgloss.Color("#d1d5db")
	colorBar    = lipgloss.Color("#10b981")
	colorBullet = lipgloss.Color("#3b82f6")

	toneColors = map[string]lipgloss.Color{
		"green": lipgloss.Color("#15803d"),
		"blue":  lipgloss.Color("#1d4ed8"),
		"red":   lipgloss.Color("#b91c1c"),
	}
)

// Renderer writes a view.Page as text.
type Renderer struct {
	cardWidth int
	columns   int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithCardWidth sets the outer width of each card.
func WithCardWidth(w int) Option {
	return func(r *Renderer) {
		if w > 0 {
			r.cardWidth = w
		}
	}
}

// WithColumns lays cards out side by side.
func WithColumns(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.columns = n
		}
	}
}

// New returns a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{cardWidth: defaultCardWidth, columns: defaultColumns}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderPage writes the header and every card.
func (r *Renderer) RenderPage(w io.Writer, p view.Page) error {
	header := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Foreground(colorTitle).Render(p.Title),
		lipgloss.NewStyle().Foreground(colorMuted).Render(p.Subtitle),
	)

	blocks := []string{header, ""}
	if len(p.Cards) == 0 {
		blocks = append(blocks, lipgloss.NewStyle().Foreground(colorMuted).Render("No practices to show."))
	}
	for start := 0; start < len(p.Cards); start += r.columns {
		end := min(start+r.columns, len(p.Cards))
		row := make([]string, 0, end-start)
		for _, c := range p.Cards[start:end] {
			row = append(row, r.card(c))
		}
		blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	if _, err := io.WriteString(w, lipgloss.JoinVertical(lipgloss.Left, blocks...)+"\n"); err != nil {
		return fmt.Errorf("%w: terminal: %w", view.ErrRender, err)
	}
	return nil
}

// RenderCard writes one card.
func (r *Renderer) RenderCard(w io.Writer, c view.Card) error {
	if _, err := io.WriteString(w, r.card(c)+"\n"); err != nil {
		return fmt.Errorf("%w: terminal card %q: %w", view.ErrRender, c.ID, err)
	}
	return nil
}

func (r *Renderer) card(c view.Card) string {
	inner := r.cardWidth - 4 // border + padding

	title := lipgloss.NewStyle().Bold(true).Foreground(colorTitle).Render(c.Name)
	badge := Badge(c.Badge)
	gap := max(inner-lipgloss.Width(title)-lipgloss.Width(badge), 1)
	header := title + strings.Repeat(" ", gap) + badge

	location := lipgloss.NewStyle().Foreground(colorMuted).Render("⌖ " + c.Location)

	lines := []string{header, location, ""}
	lines = append(lines, metricGrid(c.Metrics, inner/2)...)
	lines = append(lines, "",
		lipgloss.NewStyle().Bold(true).Render("6-Month Patient Trend"),
		lipgloss.NewStyle().Foreground(colorBar).Render(Sparkline(c.Trend)),
		lipgloss.NewStyle().Foreground(colorMuted).Render(caption(len(c.Trend.Bars))),
		"",
		lipgloss.NewStyle().Bold(true).Render("Recommendations"),
	)
	bullet := lipgloss.NewStyle().Foreground(colorBullet).Render("•")
	for _, rec := range c.Recommendations {
		lines = append(lines, bullet+" "+rec)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(r.cardWidth - 2).
		Render(strings.Join(lines, "\n"))
}

// Badge renders a status pill such as "● At Risk".
func Badge(b view.Badge) string {
	color, ok := toneColors[b.Tone]
	if !ok {
		color = toneColors["blue"]
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render("● " + b.Label)
}

func metricGrid(metrics []view.Metric, colWidth int) []string {
	cell := lipgloss.NewStyle().Width(colWidth)
	label := lipgloss.NewStyle().Foreground(colorMuted)
	value := lipgloss.NewStyle().Bold(true)

	var rows []string
	for i := 0; i < len(metrics); i += 2 {
		row := make([]string, 0, 2)
		for _, m := range metrics[i:min(i+2, len(metrics))] {
			row = append(row, cell.Render(label.Render(m.Label)+"\n"+value.Render(m.Value+m.Suffix)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return rows
}

// Sparkline draws one block per bar, using the same heights as the HTML
// chart. Bars above the axis use the tallest block.
func Sparkline(t view.Trend) string {
	var b strings.Builder
	top := len(sparkLevels) - 1
	for i, bar := range t.Bars {
		if i > 0 {
			b.WriteByte(' ')
		}
		pct := bar.HeightPercent
		if math.IsNaN(pct) {
			pct = 0
		}
		pct = min(max(pct, 0), 100)
		level := int(pct/100*float64(top) + 0.5)
		b.WriteRune(sparkLevels[level])
	}
	return b.String()
}

// caption spans the sparkline width: "6 mo" on the left, "Now" on the right.
func caption(n int) string {
	width := max(2*n-1, len("6 mo")+1+len("Now"))
	return "6 mo" + strings.Repeat(" ", width-len("6 mo")-len("Now")) + "Now"
}
