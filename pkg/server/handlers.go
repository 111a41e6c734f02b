package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	apierrors "github.com/matzehuels/libcredit/pkg/errors"
	"github.com/matzehuels/libcredit/pkg/fetch"
	creditio "github.com/matzehuels/libcredit/pkg/io"
	"github.com/matzehuels/libcredit/pkg/license"
	"github.com/matzehuels/libcredit/pkg/pipeline"
)

var contentTypes = map[string]string{
	pipeline.OutputText: "text/plain; charset=utf-8",
	pipeline.OutputHTML: "text/html; charset=utf-8",
	pipeline.OutputJSON: "application/json",
	pipeline.OutputDOT:  "text/vnd.graphviz; charset=utf-8",
	pipeline.OutputSVG:  "image/svg+xml",
}

type errorResponse struct {
	Code    apierrors.Code `json:"code"`
	Message string         `json:"message"`
}

type licenseResponse struct {
	URL   string `json:"url"`
	Name  string `json:"name"`
	Known bool   `json:"known"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleLicense(w http.ResponseWriter, r *http.Request) {
	u := r.URL.Query().Get("url")
	if u == "" {
		writeError(w, apierrors.New(apierrors.ErrCodeInvalidInput, "url is required"))
		return
	}
	writeJSON(w, http.StatusOK, licenseResponse{URL: u, Name: license.Name(u), Known: license.Known(u)})
}

func (s *Server) handleCredit(w http.ResponseWriter, r *http.Request) {
	opts, output, err := s.options(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if opts.Format == "" {
		opts.Format = pipeline.DefaultFormat
	}

	body := http.MaxBytesReader(w, r.Body, MaxBodySize)
	res, err := s.runner.Execute(r.Context(), body, opts)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			err = apierrors.New(apierrors.ErrCodeInvalidInput, "request body exceeds %d bytes", MaxBodySize)
		}
		writeError(w, err)
		return
	}
	writeArtifact(w, output, res.Artifacts[output])
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if s.fetcher == nil {
		writeError(w, apierrors.New(apierrors.ErrCodeUnsupported, "page fetching is disabled"))
		return
	}
	q := r.URL.Query()
	pageURL := q.Get("url")
	if err := apierrors.ValidateURL(pageURL); err != nil {
		writeError(w, err)
		return
	}
	opts, output, err := s.options(r)
	if err != nil {
		writeError(w, err)
		return
	}
	opts.Format = creditio.FormatHTML
	opts.Base = pageURL

	page, err := s.fetcher.Page(r.Context(), pageURL, q.Get("refresh") == "true")
	if err != nil {
		writeError(w, fetchError(pageURL, err))
		return
	}
	res, err := s.runner.Execute(r.Context(), bytes.NewReader(page), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeArtifact(w, output, res.Artifacts[output])
}

// options builds pipeline options from the server defaults and the query.
// It returns the single requested output.
func (s *Server) options(r *http.Request) (pipeline.Options, string, error) {
	q := r.URL.Query()
	opts := s.Defaults
	opts.Logger = nil

	output := q.Get("format")
	if output == "" {
		output = pipeline.DefaultOutput
	}
	if err := pipeline.ValidateOutput(output); err != nil {
		return opts, "", err
	}
	opts.Outputs = []string{output}

	if v := q.Get("input"); v != "" {
		opts.Format = v
	}
	if v := q.Get("subject"); v != "" {
		opts.Subject = v
	}
	if v := q.Get("base"); v != "" {
		opts.Base = v
	}
	if v := q.Get("lang"); v != "" {
		opts.Language = v
	}
	if v := q.Get("depth"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, "", apierrors.New(apierrors.ErrCodeInvalidInput, "depth must be an integer: %q", v)
		}
		opts.SourceDepth = &n
	}
	if v := q.Get("max_depth"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, "", apierrors.New(apierrors.ErrCodeInvalidInput, "max_depth must be an integer: %q", v)
		}
		opts.MaxDepth = n
	}
	return opts, output, nil
}

func fetchError(pageURL string, err error) error {
	var apiErr *apierrors.Error
	var rl *apierrors.RateLimitedError
	switch {
	case errors.As(err, &apiErr), errors.As(err, &rl):
		return err
	case errors.Is(err, fetch.ErrNotFound):
		return apierrors.Wrap(apierrors.ErrCodeNotFound, err, "page not found: %s", pageURL)
	default:
		return apierrors.Wrap(apierrors.ErrCodeNetwork, err, "cannot fetch %s", pageURL)
	}
}

func errNotFound(path string) error {
	return apierrors.New(apierrors.ErrCodeNotFound, "no route for %s", path)
}

func writeArtifact(w http.ResponseWriter, output string, data []byte) {
	w.Header().Set("Content-Type", contentTypes[output])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := apierrors.GetCode(err)
	var rl *apierrors.RateLimitedError
	if errors.As(err, &rl) {
		code = rl.Code()
	}
	if code == "" {
		code = apierrors.ErrCodeInternal
	}
	writeJSON(w, apierrors.HTTPStatus(err), errorResponse{Code: code, Message: apierrors.UserMessage(err)})
}
