package api_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okian/practicedash/internal/adapters/http/api"
	repository "github.com/okian/practicedash/internal/adapters/repository"
	"github.com/okian/practicedash/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

// Mock implementations for testing
type mockDashboard struct {
	pageErr error
	cards   map[string]string
	cardIDs []string
}

func (m *mockDashboard) RenderPage(_ context.Context, w io.Writer) error {
	if m.pageErr != nil {
		return m.pageErr
	}
	_, err := io.WriteString(w, "<!DOCTYPE html><h1>Practice Dashboard</h1>")
	return err
}

func (m *mockDashboard) RenderCard(_ context.Context, id string, w io.Writer) error {
	m.cardIDs = append(m.cardIDs, id)
	body, ok := m.cards[id]
	if !ok {
		return fmt.Errorf("%w: %q", repository.ErrNotFound, id)
	}
	_, err := io.WriteString(w, body)
	return err
}

func newMux(deps api.Dependencies) *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(deps).Register(context.Background(), mux)
	return mux
}

func serve(mux *http.ServeMux, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestDashboardRoutes(t *testing.T) {
	Convey("Given a server over a working dashboard", t, func() {
		deps := &mockDashboard{cards: map[string]string{"1": `<article id="practice-1"></article>`}}
		mux := newMux(deps)

		for _, path := range []string{"/", "/dashboard"} {
			Convey("When requesting "+path, func() {
				w := serve(mux, http.MethodGet, path)

				Convey("Then the page is served as HTML", func() {
					So(w.Code, ShouldEqual, http.StatusOK)
					So(w.Header().Get("Content-Type"), ShouldContainSubstring, "text/html")
					So(w.Body.String(), ShouldContainSubstring, "Practice Dashboard")
				})
			})
		}

		Convey("When posting to the dashboard", func() {
			w := serve(mux, http.MethodPost, "/dashboard")

			Convey("Then it is rejected with 405", func() {
				So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
				So(w.Header().Get("Allow"), ShouldContainSubstring, "GET")
				So(w.Body.String(), ShouldContainSubstring, "method_not_allowed")
			})
		})

		Convey("When requesting an unknown path", func() {
			w := serve(mux, http.MethodGet, "/nope")

			Convey("Then the mux returns 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})

	Convey("Given a server whose render fails", t, func() {
		mux := newMux(&mockDashboard{pageErr: errors.New("template exploded")})
		w := serve(mux, http.MethodGet, "/dashboard")

		Convey("Then a JSON 500 is returned without the internal message", func() {
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
			So(w.Header().Get("Content-Type"), ShouldContainSubstring, "application/json")
			So(w.Body.String(), ShouldContainSubstring, "render_failed")
			So(w.Body.String(), ShouldNotContainSubstring, "exploded")
		})
	})
}

func TestPracticeRoute(t *testing.T) {
	Convey("Given a server with one practice", t, func() {
		deps := &mockDashboard{cards: map[string]string{"1": `<article id="practice-1"></article>`}}
		mux := newMux(deps)

		Convey("When requesting a known practice", func() {
			w := serve(mux, http.MethodGet, "/practices/1")

			Convey("Then the card fragment is served", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `id="practice-1"`)
				So(deps.cardIDs, ShouldResemble, []string{"1"})
			})
		})

		Convey("When requesting an unknown practice", func() {
			w := serve(mux, http.MethodGet, "/practices/42")

			Convey("Then a JSON 404 is returned", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				So(w.Body.String(), ShouldContainSubstring, "not_found")
			})
		})

		Convey("When the id is missing or nested", func() {
			for _, path := range []string{"/practices/", "/practices/1/extra"} {
				w := serve(mux, http.MethodGet, path)
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			}

			Convey("Then the dependency is never called", func() {
				So(deps.cardIDs, ShouldBeEmpty)
			})
		})
	})
}

func TestHealthRoute(t *testing.T) {
	Convey("Given a server", t, func() {
		mux := newMux(&mockDashboard{})

		// Drive one request through the middleware so counters exist.
		serve(mux, http.MethodGet, "/dashboard")
		w := serve(mux, http.MethodGet, "/healthz")

		Convey("Then healthz exposes the custom registry", func() {
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "practicedash_dashboard_http_requests_total")
			So(w.Body.String(), ShouldNotContainSubstring, "go_goroutines")
		})
	})
}

func TestRequestLogging(t *testing.T) {
	Convey("Given a server logging to a buffer", t, func() {
		var buf bytes.Buffer
		So(logger.Init(logger.WithWriter(&buf)), ShouldBeNil)
		defer func() { _ = logger.Init() }()

		mux := http.NewServeMux()
		api.NewServer(&mockDashboard{}, api.WithLogger(logger.Get())).Register(context.Background(), mux)

		req := httptest.NewRequest(http.MethodGet, "/practices/missing", nil)
		req.Header.Set(api.RequestIDHeader, "req-7")
		mux.ServeHTTP(httptest.NewRecorder(), req)

		Convey("Then the failed request is logged with its request id", func() {
			out := buf.String()
			So(out, ShouldContainSubstring, "request failed")
			So(out, ShouldContainSubstring, "request_id=req-7")
			So(out, ShouldContainSubstring, "status=404")
		})
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	Convey("Given the request id middleware", t, func() {
		var seen string
		h := api.RequestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
			seen = api.RequestIDFromContext(r.Context())
		})

		Convey("When no id is sent", func() {
			w := httptest.NewRecorder()
			h(w, httptest.NewRequest(http.MethodGet, "/", nil))

			Convey("Then a uuid is minted and echoed", func() {
				So(seen, ShouldHaveLength, 36)
				So(strings.Count(seen, "-"), ShouldEqual, 4)
				So(w.Header().Get(api.RequestIDHeader), ShouldEqual, seen)
			})
		})

		Convey("When the caller supplies an id", func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(api.RequestIDHeader, "abc-123")
			w := httptest.NewRecorder()
			h(w, req)

			Convey("Then it is propagated", func() {
				So(seen, ShouldEqual, "abc-123")
				So(w.Header().Get(api.RequestIDHeader), ShouldEqual, "abc-123")
			})
		})
	})
}
