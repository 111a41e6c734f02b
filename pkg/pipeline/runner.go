package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/libcredit/pkg/cache"
	"github.com/matzehuels/libcredit/pkg/credit"
	apierrors "github.com/matzehuels/libcredit/pkg/errors"
	"github.com/matzehuels/libcredit/pkg/i18n"
	creditio "github.com/matzehuels/libcredit/pkg/io"
	"github.com/matzehuels/libcredit/pkg/observability"
	"github.com/matzehuels/libcredit/pkg/rdf"
)

// TTLCredit is how long rendered credits stay cached.
const TTLCredit = 24 * time.Hour

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it to avoid duplicating the stage logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// Catalogs is an optional directory of <language>.toml message
	// catalogs consulted before the embedded ones.
	Catalogs string
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → build → render pipeline over src.
func (r *Runner) Execute(ctx context.Context, src io.Reader, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{Artifacts: make(map[string][]byte)}

	// Stage 1: Load
	loadStart := time.Now()
	doc, err := r.Load(ctx, src, opts)
	if err != nil {
		return nil, err
	}
	result.Document = doc
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.TripleCount = doc.Graph.Len()
	result.GraphHash = GraphHash(doc.Graph)

	r.Logger.Info("loaded graph",
		"format", opts.Format,
		"triples", result.Stats.TripleCount,
		"duration", result.Stats.LoadTime)

	// Stage 2: Build
	buildStart := time.Now()
	c, err := r.Build(ctx, doc, opts)
	if err != nil {
		return nil, err
	}
	result.Credit = c
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.RecordCount = c.Count()
	result.Stats.SourceDepth = c.Depth()

	r.Logger.Info("built credit",
		"records", result.Stats.RecordCount,
		"depth", result.Stats.SourceDepth,
		"duration", result.Stats.BuildTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, hits, err := r.RenderWithCacheInfo(ctx, c, result.GraphHash, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.Hits = hits
	result.CacheInfo.RenderHit = len(hits) == len(opts.Outputs)

	r.Logger.Info("rendered outputs",
		"outputs", opts.Outputs,
		"cached", len(hits),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load decodes src in opts.Format.
func (r *Runner) Load(ctx context.Context, src io.Reader, opts Options) (*creditio.Document, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.Format)
	start := time.Now()

	doc, err := creditio.Read(src, opts.Format, opts.Base)
	if err != nil {
		code := apierrors.ErrCodeInvalidInput
		if errors.Is(err, creditio.ErrUnknownFormat) {
			code = apierrors.ErrCodeInvalidFormat
		}
		err = apierrors.Wrap(code, err, "cannot read %s input", opts.Format)
		hooks.OnLoadComplete(ctx, opts.Format, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnLoadComplete(ctx, opts.Format, doc.Graph.Len(), time.Since(start), nil)
	return doc, nil
}

// Build resolves the credit for opts.Subject, or for the document subject
// when it is empty.
func (r *Runner) Build(ctx context.Context, doc *creditio.Document, opts Options) (*credit.Credit, error) {
	label := opts.Subject
	if label == "" {
		label = "<>"
	}
	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, label)
	start := time.Now()

	b := credit.Builder{Base: doc.Base, MaxDepth: opts.MaxDepth}
	c := b.Build(doc.Graph, SubjectTerm(opts.Subject))
	if c == nil {
		err := apierrors.New(apierrors.ErrCodeNoCredit, "no credit metadata found for %s", label)
		hooks.OnBuildComplete(ctx, label, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnBuildComplete(ctx, label, c.Count(), time.Since(start), nil)
	return c, nil
}

// RenderWithCacheInfo renders every output in opts.Outputs, serving what it
// can from the cache. It returns the outputs that were cache hits.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, c *credit.Credit, graphHash string, opts Options) (map[string][]byte, []string, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Outputs)
	start := time.Now()

	artifacts, hits, err := r.render(ctx, c, graphHash, opts)
	hooks.OnRenderComplete(ctx, opts.Outputs, time.Since(start), err)
	return artifacts, hits, err
}

func (r *Runner) render(ctx context.Context, c *credit.Credit, graphHash string, opts Options) (map[string][]byte, []string, error) {
	tr, err := r.Translator(opts.Language)
	if err != nil {
		return nil, nil, err
	}

	var catalog string
	if loc, ok := tr.(*i18n.Locale); ok {
		catalog = loc.Digest()
	}

	artifacts := make(map[string][]byte, len(opts.Outputs))
	var hits []string
	for _, output := range opts.Outputs {
		key := ""
		if graphHash != "" {
			keyOpts := opts.CreditKeyOpts(output)
			keyOpts.Catalog = catalog
			key = r.Keyer.CreditKey(graphHash, keyOpts)
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				artifacts[output] = data
				hits = append(hits, output)
				continue
			}
		}

		data, err := Render(ctx, c, output, tr, opts)
		if err != nil {
			return nil, nil, err
		}
		artifacts[output] = data

		if key != "" {
			if err := r.Cache.Set(ctx, key, data, TTLCredit); err != nil {
				opts.Logger.Debug("cache write failed", "output", output, "error", err)
			}
		}
	}
	return artifacts, hits, nil
}

// Translator returns the message catalog for lang: the runner's catalog
// directory first, then the embedded catalogs. An empty or English lang
// means untranslated output and yields a nil Translator.
func (r *Runner) Translator(lang string) (i18n.Translator, error) {
	code := i18n.Normalize(lang)
	if code == "" || code == "en" {
		return nil, nil
	}
	if r.Catalogs != "" {
		loc, err := i18n.LoadDir(r.Catalogs, code)
		if err == nil {
			return loc, nil
		}
		if !errors.Is(err, i18n.ErrUnknownLanguage) {
			return nil, apierrors.Wrap(apierrors.ErrCodeInvalidLanguage, err, "cannot load catalog for %s", lang)
		}
	}
	loc, err := i18n.Load(code)
	if err != nil {
		return nil, apierrors.Wrap(apierrors.ErrCodeInvalidLanguage, err, "no catalog for %s", lang)
	}
	return loc, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// SubjectTerm parses a subject option: "" is the zero Term (document
// subject), "_:x" a blank node, anything else an IRI.
func SubjectTerm(s string) rdf.Term {
	switch {
	case s == "":
		return rdf.Term{}
	case len(s) > 2 && s[:2] == "_:":
		return rdf.Blank(s[2:])
	default:
		return rdf.Resource(s)
	}
}

// GraphHash hashes the N-Triples serialization of g.
func GraphHash(g *rdf.Store) string {
	var buf bytes.Buffer
	if err := creditio.WriteNTriples(g, &buf); err != nil {
		return ""
	}
	return cache.Hash(buf.Bytes())
}

