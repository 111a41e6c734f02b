// Package server exposes the credit pipeline over HTTP.
//
// # Routes
//
//	GET  /healthz             liveness probe, answers "ok"
//	GET  /v1/license?url=     license name for a license URL
//	POST /v1/credit           render the credit of a graph in the request body
//	GET  /v1/credit/page?url= fetch a web page and render the credit in its metadata
//
// The credit routes accept these query parameters:
//
//	format     output: text (default), html, json, dot or svg
//	input      body format for POST: json (default), nt, yaml or html
//	subject    subject IRI or "_:label"; empty selects the document subject
//	base       document base (the page URL for html input)
//	depth      rendered source levels, default 1
//	max_depth  resolved source levels
//	lang       message catalog language, e.g. "sv"
//	refresh    for /v1/credit/page, bypass the page cache when "true"
//
// Errors are JSON objects {"code": ..., "message": ...} with the status
// from [apierrors.HTTPStatus]; a graph without credit metadata is a 422
// with code NO_CREDIT.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/libcredit/pkg/fetch"
	"github.com/matzehuels/libcredit/pkg/pipeline"
)

// MaxBodySize bounds POST bodies.
const MaxBodySize = 4 << 20

// Server serves the HTTP API.
type Server struct {
	runner  *pipeline.Runner
	fetcher *fetch.Client
	logger  *log.Logger

	// Defaults are merged into every request's pipeline options; query
	// parameters override them.
	Defaults pipeline.Options
}

// New creates a server. A nil fetcher disables /v1/credit/page.
func New(runner *pipeline.Runner, fetcher *fetch.Client, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, fetcher: fetcher, logger: logger}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/license", s.handleLicense)
		r.Post("/credit", s.handleCredit)
		r.Get("/credit/page", s.handlePage)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errNotFound(r.URL.Path))
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// requestLogger logs one line per request with its status and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
