package view

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/okian/practicedash/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestHTMLRenderer_RenderPage(t *testing.T) {
	Convey("Given a page of three practices", t, func() {
		r, err := NewHTMLRenderer()
		So(err, ShouldBeNil)
		page := NewBuilder().Page("Practice Dashboard", "Monitor performance across all dental practices", samplePractices(), 42)

		var buf bytes.Buffer
		So(r.RenderPage(&buf, page), ShouldBeNil)
		out := buf.String()

		Convey("Then the document has a header and one card per practice", func() {
			So(out, ShouldStartWith, "<!DOCTYPE html>")
			So(out, ShouldContainSubstring, "<h1>Practice Dashboard</h1>")
			So(out, ShouldContainSubstring, "Monitor performance across all dental practices")
			So(strings.Count(out, `<article class="card"`), ShouldEqual, 3)
		})

		Convey("Then badges, metrics and locations render", func() {
			So(out, ShouldContainSubstring, "badge-green")
			So(out, ShouldContainSubstring, "High Performer")
			So(out, ShouldContainSubstring, "At Risk")
			So(out, ShouldContainSubstring, "Stable")
			So(out, ShouldContainSubstring, "San Francisco, USA")
			So(out, ShouldContainSubstring, `23.3<span class="metric-suffix">%</span>`)
			So(out, ShouldContainSubstring, `81.0<span class="metric-suffix">%</span>`)
		})

		Convey("Then the trend chart and caption render", func() {
			So(out, ShouldContainSubstring, "6-Month Patient Trend")
			So(out, ShouldContainSubstring, "<title>Month 6: 42</title>")
			So(out, ShouldContainSubstring, "width: 234px")
			So(out, ShouldContainSubstring, "<span>6 mo</span><span>Now</span>")
		})

		Convey("Then recommendations render", func() {
			So(out, ShouldContainSubstring, "<h4>Recommendations</h4>")
			So(out, ShouldContainSubstring, "Test A/B variations on appointment booking CTAs")
		})

		Convey("Then the stylesheet is linked by default", func() {
			So(out, ShouldContainSubstring, `href="/static/dashboard.css"`)
			So(out, ShouldNotContainSubstring, "<style>")
		})
	})

	Convey("Given a renderer with inline styles", t, func() {
		r, err := NewHTMLRenderer(WithInlineStyles(true))
		So(err, ShouldBeNil)

		var buf bytes.Buffer
		So(r.RenderPage(&buf, NewBuilder().Page("T", "S", nil, 0)), ShouldBeNil)

		Convey("Then the css is embedded and the empty state shows", func() {
			So(buf.String(), ShouldContainSubstring, "<style>")
			So(buf.String(), ShouldContainSubstring, ".badge-red")
			So(buf.String(), ShouldContainSubstring, "No practices to show.")
		})
	})

	Convey("Given practice text with markup", t, func() {
		r, _ := NewHTMLRenderer(WithStylesheetURL("/assets/site.css"))
		p := model.Practice{ID: "x", Name: "<script>alert(1)</script>", City: "A&B", Country: "C"}

		var buf bytes.Buffer
		So(r.RenderPage(&buf, NewBuilder().Page("T", "S", []model.Practice{p}, 0)), ShouldBeNil)

		Convey("Then it is escaped", func() {
			So(buf.String(), ShouldNotContainSubstring, "<script>")
			So(buf.String(), ShouldContainSubstring, "&lt;script&gt;")
			So(buf.String(), ShouldContainSubstring, `href="/assets/site.css"`)
		})
	})

	Convey("Given a writer that fails", t, func() {
		r, _ := NewHTMLRenderer()
		err := r.RenderPage(failingWriter{}, NewBuilder().Page("T", "S", samplePractices(), 42))

		Convey("Then ErrRender is returned", func() {
			So(errors.Is(err, ErrRender), ShouldBeTrue)
		})
	})
}

func TestHTMLRenderer_RenderCard(t *testing.T) {
	Convey("Given one card", t, func() {
		r, err := NewHTMLRenderer()
		So(err, ShouldBeNil)
		c := NewBuilder().Card(samplePractices()[1], 42)

		var buf bytes.Buffer
		So(r.RenderCard(&buf, c), ShouldBeNil)

		Convey("Then only the fragment is written", func() {
			So(buf.String(), ShouldStartWith, `<article class="card" id="practice-2" data-status="at-risk">`)
			So(buf.String(), ShouldNotContainSubstring, "<html")
			So(buf.String(), ShouldContainSubstring, "Bright Smiles Clinic")
		})
	})
}

func TestAssets(t *testing.T) {
	Convey("Given the embedded assets", t, func() {
		css, err := fs.ReadFile(Assets(), StylesheetName)

		Convey("Then the stylesheet is present", func() {
			So(err, ShouldBeNil)
			So(string(css), ShouldContainSubstring, ".card")
		})
	})
}
