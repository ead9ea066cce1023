package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

//go:embed assets/*
var assetFS embed.FS

// StylesheetName is the stylesheet's path inside Assets.
const StylesheetName = "dashboard.css"

// Assets exposes the static files (stylesheet) rooted at assets/.
func Assets() fs.FS {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		return assetFS
	}
	return sub
}

// HTMLRenderer renders Pages and Cards with html/template.
type HTMLRenderer struct {
	tmpl          *template.Template
	inlineStyles  bool
	stylesheetURL string
	styles        template.CSS
}

// HTMLOption configures an HTMLRenderer.
type HTMLOption func(*HTMLRenderer)

// WithInlineStyles embeds the stylesheet in the page instead of linking it,
// for standalone files.
func WithInlineStyles(inline bool) HTMLOption {
	return func(r *HTMLRenderer) { r.inlineStyles = inline }
}

// WithStylesheetURL sets the href used when styles are linked.
func WithStylesheetURL(url string) HTMLOption {
	return func(r *HTMLRenderer) {
		if url != "" {
			r.stylesheetURL = url
		}
	}
}

// NewHTMLRenderer parses the embedded templates.
func NewHTMLRenderer(opts ...HTMLOption) (*HTMLRenderer, error) {
	funcs := template.FuncMap{
		"trendSVG": TrendSVG,
		"pinIcon":  PinIcon,
	}
	tmpl, err := template.New("dashboard").Funcs(funcs).ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplate, err)
	}
	css, err := fs.ReadFile(Assets(), StylesheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplate, err)
	}

	r := &HTMLRenderer{
		tmpl:          tmpl,
		stylesheetURL: "/static/" + StylesheetName,
		styles:        template.CSS(css), //nolint:gosec // embedded asset
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

type pageData struct {
	Page          Page
	InlineStyles  bool
	StylesheetURL string
	Styles        template.CSS
}

// RenderPage writes the full HTML document.
func (r *HTMLRenderer) RenderPage(w io.Writer, p Page) error {
	data := pageData{
		Page:          p,
		InlineStyles:  r.inlineStyles,
		StylesheetURL: r.stylesheetURL,
		Styles:        r.styles,
	}
	if err := r.tmpl.ExecuteTemplate(w, "page", data); err != nil {
		return fmt.Errorf("%w: page: %w", ErrRender, err)
	}
	return nil
}

// RenderCard writes a single card fragment.
func (r *HTMLRenderer) RenderCard(w io.Writer, c Card) error {
	if err := r.tmpl.ExecuteTemplate(w, "card", c); err != nil {
		return fmt.Errorf("%w: card %q: %w", ErrRender, c.ID, err)
	}
	return nil
}
