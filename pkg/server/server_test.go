package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/libcredit/pkg/fetch"
	"github.com/matzehuels/libcredit/pkg/pipeline"
)

const graph = `{"triples": [
  {"s": "", "p": "http://purl.org/dc/elements/1.1/source", "o": "http://example.org/photo", "type": "uri"},
  {"s": "http://example.org/photo", "p": "http://purl.org/dc/elements/1.1/title", "o": "Wild flowers"},
  {"s": "http://example.org/photo", "p": "http://purl.org/dc/elements/1.1/creator", "o": "Anna"},
  {"s": "http://example.org/photo", "p": "http://purl.org/dc/elements/1.1/source", "o": "http://example.org/a", "type": "uri"},
  {"s": "http://example.org/photo", "p": "http://purl.org/dc/elements/1.1/source", "o": "http://example.org/b", "type": "uri"},
  {"s": "http://example.org/a", "p": "http://purl.org/dc/elements/1.1/title", "o": "Meadow"},
  {"s": "http://example.org/b", "p": "http://purl.org/dc/elements/1.1/title", "o": "Forest"}
]}`

func quietLogger() *log.Logger { return log.New(io.Discard) }

func newTestServer(t *testing.T, fetcher *fetch.Client) *httptest.Server {
	t.Helper()
	s := New(pipeline.NewRunner(nil, nil, quietLogger()), fetcher, quietLogger())
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, u string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(u)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func post(t *testing.T, u, body string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Post(u, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(data)
}

func decodeError(t *testing.T, body string) errorResponse {
	t.Helper()
	var e errorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &e), body)
	return e
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, body := get(t, ts.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body)
	assert.NotEmpty(t, resp.Header.Get("Content-Type"))
}

func TestLicense(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, body := get(t, ts.URL+"/v1/license?url="+url.QueryEscape("http://creativecommons.org/licenses/by/3.0/au/"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var lr licenseResponse
	require.NoError(t, json.Unmarshal([]byte(body), &lr))
	assert.Equal(t, "CC BY 3.0 (AU)", lr.Name)
	assert.True(t, lr.Known)

	resp, body = get(t, ts.URL+"/v1/license?url="+url.QueryEscape("http://example.com/terms"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &lr))
	assert.Equal(t, "http://example.com/terms", lr.Name)
	assert.False(t, lr.Known)

	resp, body = get(t, ts.URL+"/v1/license")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_INPUT", string(decodeError(t, body).Code))
}

func TestCredit(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, body := post(t, ts.URL+"/v1/credit", graph)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, "Wild flowers by Anna. Sources:\n    * Meadow.\n    * Forest.", body)

	resp, body = post(t, ts.URL+"/v1/credit?depth=0&lang=sv", graph)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Equal(t, "Wild flowers av Anna.", body)

	resp, body = post(t, ts.URL+"/v1/credit?format=json&subject="+url.QueryEscape("http://example.org/a"), graph)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	var obj map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &obj))
	assert.Equal(t, "Meadow.", obj["line"])

	resp, body = post(t, ts.URL+"/v1/credit?format=html", graph)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Contains(t, body, "Wild flowers")

	resp, body = post(t, ts.URL+"/v1/credit?format=dot", graph)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.True(t, strings.HasPrefix(body, "digraph credit {"))
}

func TestCreditNTriples(t *testing.T) {
	ts := newTestServer(t, nil)
	in := `<http://example.org/p> <http://purl.org/dc/elements/1.1/title> "Rivers" .`
	resp, body := post(t, ts.URL+"/v1/credit?input=nt&subject="+url.QueryEscape("http://example.org/p"), in)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Equal(t, "Rivers.", body)
}

func TestCreditErrors(t *testing.T) {
	ts := newTestServer(t, nil)
	tests := []struct {
		name   string
		query  string
		body   string
		status int
		code   string
	}{
		{"no credit", "", `{"triples": []}`, http.StatusUnprocessableEntity, "NO_CREDIT"},
		{"malformed", "", `{"triples": [`, http.StatusBadRequest, "INVALID_INPUT"},
		{"bad format", "?format=gif", graph, http.StatusBadRequest, "INVALID_FORMAT"},
		{"bad input", "?input=xml", graph, http.StatusBadRequest, "INVALID_FORMAT"},
		{"bad depth", "?depth=deep", graph, http.StatusBadRequest, "INVALID_INPUT"},
		{"bad max depth", "?max_depth=x", graph, http.StatusBadRequest, "INVALID_INPUT"},
		{"bad language", "?lang=xx", graph, http.StatusBadRequest, "INVALID_LANGUAGE"},
		{"bad subject", "?subject=a%20b", graph, http.StatusBadRequest, "INVALID_SUBJECT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := post(t, ts.URL+"/v1/credit"+tt.query, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode, body)
			assert.Equal(t, tt.code, string(decodeError(t, body).Code))
		})
	}
}

func TestNotFoundRoute(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, body := get(t, ts.URL+"/v2/nothing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", string(decodeError(t, body).Code))
}

func TestPage(t *testing.T) {
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/photo" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, `<html><head>
<meta property="og:title" content="Harbour">
<meta name="dc.creator" content="Cy">
<link rel="license" href="http://creativecommons.org/publicdomain/zero/1.0/">
</head></html>`)
	}))
	defer site.Close()

	fetcher := fetch.NewClient(nil, nil, time.Minute, fetch.WithRetry(1, time.Millisecond))
	ts := newTestServer(t, fetcher)

	resp, body := get(t, ts.URL+"/v1/credit/page?url="+url.QueryEscape(site.URL+"/photo"))
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Equal(t, "Harbour by Cy (CC0 1.0).", body)

	resp, body = get(t, ts.URL+"/v1/credit/page?url="+url.QueryEscape(site.URL+"/missing"))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", string(decodeError(t, body).Code))

	resp, body = get(t, ts.URL+"/v1/credit/page?url=ftp://example.org/x")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_URL", string(decodeError(t, body).Code))
}

func TestPageDisabled(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, body := get(t, ts.URL+"/v1/credit/page?url="+url.QueryEscape("http://example.org/"))
	assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
	assert.Equal(t, "UNSUPPORTED", string(decodeError(t, body).Code))
}

func TestDefaults(t *testing.T) {
	s := New(pipeline.NewRunner(nil, nil, quietLogger()), nil, quietLogger())
	s.Defaults = pipeline.Options{Language: "sv", SourceDepth: new(int)}
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, body := post(t, ts.URL+"/v1/credit", graph)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Equal(t, "Wild flowers av Anna.", body)
}
