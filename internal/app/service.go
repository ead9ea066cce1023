// Package service wires the practice catalog, the domain rules and the view
// layer into the dashboard the HTTP and CLI surfaces render.
package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	repository "github.com/okian/practicedash/internal/adapters/repository"
	"github.com/okian/practicedash/internal/config"
	"github.com/okian/practicedash/internal/domain/model"
	"github.com/okian/practicedash/internal/domain/status"
	"github.com/okian/practicedash/internal/view"
	"github.com/okian/practicedash/internal/view/terminal"
	"github.com/okian/practicedash/pkg/logger"
	"github.com/okian/practicedash/pkg/metrics"
)

// Render surfaces, used as metric labels.
const (
	SurfacePage     = "page"
	SurfaceCard     = "card"
	SurfaceTerminal = "terminal"
)

const (
	defaultTitle    = "Practice Dashboard"
	defaultSubtitle = "Monitor performance across all dental practices"
)

// Service renders the dashboard.
type Service struct {
	mu sync.RWMutex

	// Core components, built by Start
	store    repository.Store
	builder  *view.Builder
	html     *view.HTMLRenderer
	terminal *terminal.Renderer

	// Configuration
	title         string
	subtitle      string
	practicesFile string
	practices     []model.Practice
	scale         view.Scale
	inlineStyles  bool
	termOpts      []terminal.Option

	started bool
	logger  logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTitle sets the page heading and subheading.
func WithTitle(title, subtitle string) Option {
	return func(s *Service) {
		if title != "" {
			s.title = title
		}
		if subtitle != "" {
			s.subtitle = subtitle
		}
	}
}

// WithPracticesFile loads records from a YAML file at Start.
func WithPracticesFile(path string) Option {
	return func(s *Service) {
		s.practicesFile = path
	}
}

// WithPractices supplies the records directly. It wins over WithPracticesFile.
func WithPractices(practices []model.Practice) Option {
	return func(s *Service) {
		s.practices = practices
	}
}

// WithScale sets the trend chart scale.
func WithScale(scale view.Scale) Option {
	return func(s *Service) {
		s.scale = scale
	}
}

// WithInlineStyles embeds the stylesheet in rendered pages.
func WithInlineStyles(inline bool) Option {
	return func(s *Service) {
		s.inlineStyles = inline
	}
}

// WithTerminalOptions configures the terminal renderer.
func WithTerminalOptions(opts ...terminal.Option) Option {
	return func(s *Service) {
		s.termOpts = append(s.termOpts, opts...)
	}
}

// WithConfig applies the dashboard settings from cfg: heading, practices
// file and trend scale.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		if cfg == nil {
			return
		}
		WithTitle(cfg.Title, cfg.Subtitle)(s)
		s.practicesFile = cfg.PracticesFile
		s.scale = view.Scale{
			AxisMax:       cfg.TrendAxisMax,
			Gridlines:     append([]float64(nil), cfg.TrendGridlines...),
			MinBarPercent: cfg.TrendMinBarPercent,
			Dynamic:       cfg.TrendDynamicScale,
		}
	}
}

// New constructs a Service. Call Start before rendering.
func New(opts ...Option) *Service {
	s := &Service{
		title:    defaultTitle,
		subtitle: defaultSubtitle,
		scale:    view.DefaultScale(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the catalog and prepares the renderers.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	practices := s.practices
	source := "built-in"
	switch {
	case practices != nil:
		source = "options"
	case s.practicesFile != "":
		loaded, err := repository.LoadFile(s.practicesFile)
		if err != nil {
			metrics.RecordError("catalog", "load")
			return err
		}
		practices = loaded
		source = s.practicesFile
	}

	catalogOpts := []repository.Option{repository.WithLogger(s.logger)}
	if practices != nil {
		catalogOpts = append(catalogOpts, repository.WithPractices(practices))
	}
	catalog, err := repository.NewCatalog(ctx, catalogOpts...)
	if err != nil {
		metrics.RecordError("catalog", "index")
		return err
	}

	html, err := view.NewHTMLRenderer(view.WithInlineStyles(s.inlineStyles))
	if err != nil {
		metrics.RecordError("view", "template")
		return err
	}

	s.store = catalog
	s.builder = view.NewBuilder(view.WithScale(s.scale))
	s.html = html
	s.terminal = terminal.New(s.termOpts...)
	s.started = true

	if err := s.publishCatalogMetrics(ctx); err != nil {
		return err
	}

	s.logger.Info(ctx, "dashboard service started",
		logger.String("source", source),
		logger.Int("practices", catalog.Count(ctx)),
		logger.Float64("globalMax", catalog.GlobalMax(ctx)),
		logger.Float64("axisMax", s.builder.Scale().AxisMax),
		logger.Bool("dynamicScale", s.scale.Dynamic),
	)
	return nil
}

// Stop marks the service stopped. Rendering afterwards returns ErrNotStarted.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

// publishCatalogMetrics sets the catalog gauges. Statuses never change after
// Start, so this runs once.
func (s *Service) publishCatalogMetrics(ctx context.Context) error {
	practices, err := s.store.All(ctx)
	if err != nil {
		return err
	}
	counts := make(map[status.Status]int, len(status.All))
	for _, p := range practices {
		counts[status.Classify(p.ConversionRate)]++
	}
	for _, st := range status.All {
		metrics.UpdatePracticesByStatus(st.String(), counts[st])
	}
	metrics.UpdatePracticesTotal(len(practices))
	return nil
}

// snapshot is the set of components one call works with. Taking it under
// the read lock keeps a concurrent Stop/Start from swapping them mid-render.
type snapshot struct {
	store    repository.Store
	builder  *view.Builder
	html     *view.HTMLRenderer
	terminal *terminal.Renderer
	logger   logger.Logger
}

func (s *Service) components() (snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return snapshot{}, ErrNotStarted
	}
	return snapshot{
		store:    s.store,
		builder:  s.builder,
		html:     s.html,
		terminal: s.terminal,
		logger:   s.logger,
	}, nil
}

// Page builds the dashboard view model.
func (s *Service) Page(ctx context.Context) (view.Page, error) {
	c, err := s.components()
	if err != nil {
		return view.Page{}, err
	}
	return s.page(ctx, c)
}

func (s *Service) page(ctx context.Context, c snapshot) (view.Page, error) {
	practices, err := c.store.All(ctx)
	if err != nil {
		return view.Page{}, err
	}
	page := c.builder.Page(s.title, s.subtitle, practices, c.store.GlobalMax(ctx))
	for _, card := range page.Cards {
		metrics.RecordRecommendation(string(card.Branch))
	}
	return page, nil
}

// Card builds the view model for one practice. Unknown ids return an error
// wrapping repository.ErrNotFound.
func (s *Service) Card(ctx context.Context, id string) (view.Card, error) {
	c, err := s.components()
	if err != nil {
		return view.Card{}, err
	}
	return s.card(ctx, c, id)
}

func (s *Service) card(ctx context.Context, c snapshot, id string) (view.Card, error) {
	p, err := c.store.Get(ctx, id)
	if err != nil {
		return view.Card{}, err
	}
	card := c.builder.Card(p, c.store.GlobalMax(ctx))
	metrics.RecordRecommendation(string(card.Branch))
	return card, nil
}

// RenderPage writes the full HTML dashboard to w.
func (s *Service) RenderPage(ctx context.Context, w io.Writer) error {
	c, err := s.components()
	if err != nil {
		return err
	}
	page, err := s.page(ctx, c)
	if err != nil {
		return err
	}
	return render(ctx, c.logger, SurfacePage, w, func(buf *bytes.Buffer) error {
		return c.html.RenderPage(buf, page)
	})
}

// RenderCard writes one practice card as an HTML fragment.
func (s *Service) RenderCard(ctx context.Context, id string, w io.Writer) error {
	c, err := s.components()
	if err != nil {
		return err
	}
	card, err := s.card(ctx, c, id)
	if err != nil {
		return err
	}
	return render(ctx, c.logger, SurfaceCard, w, func(buf *bytes.Buffer) error {
		return c.html.RenderCard(buf, card)
	})
}

// RenderTerminal writes the dashboard as terminal text.
func (s *Service) RenderTerminal(ctx context.Context, w io.Writer) error {
	c, err := s.components()
	if err != nil {
		return err
	}
	page, err := s.page(ctx, c)
	if err != nil {
		return err
	}
	return render(ctx, c.logger, SurfaceTerminal, w, func(buf *bytes.Buffer) error {
		return c.terminal.RenderPage(buf, page)
	})
}

// RenderTerminalCard writes one practice card as terminal text.
func (s *Service) RenderTerminalCard(ctx context.Context, id string, w io.Writer) error {
	c, err := s.components()
	if err != nil {
		return err
	}
	card, err := s.card(ctx, c, id)
	if err != nil {
		return err
	}
	return render(ctx, c.logger, SurfaceTerminal, w, func(buf *bytes.Buffer) error {
		return c.terminal.RenderCard(buf, card)
	})
}

// render buffers the output so a failed pass never leaves partial markup in w.
func render(ctx context.Context, log logger.Logger, surface string, w io.Writer, fn func(*bytes.Buffer) error) error {
	start := time.Now()
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		metrics.RecordError("view", surface)
		log.Error(ctx, "render failed", logger.String("surface", surface), logger.Error(err))
		return err
	}
	size := buf.Len()
	if _, err := buf.WriteTo(w); err != nil {
		metrics.RecordError("view", "write")
		return fmt.Errorf("write %s: %w", surface, err)
	}

	elapsed := float64(time.Since(start).Microseconds()) / 1000
	metrics.RecordRender(surface, elapsed, size)
	log.Debug(ctx, "rendered",
		logger.String("surface", surface),
		logger.Int("bytes", size),
		logger.Float64("ms", elapsed),
	)
	return nil
}
