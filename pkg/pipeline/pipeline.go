// Package pipeline runs the load → build → render sequence behind the CLI
// and the HTTP server.
//
// By centralizing this logic both entry points share defaults, validation,
// caching and observability events.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: decode a graph in one of the [creditio.Formats]
//  2. Build: resolve the credit tree for a subject (or the document subject)
//  3. Render: produce each requested output (text, html, json, dot, svg)
//
// Each stage emits [observability.PipelineHooks] events and an info log
// line. Rendered outputs are cached by graph hash and render settings.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, file, pipeline.Options{
//	    Format:   "yaml",
//	    Outputs:  []string{"text", "html"},
//	    Language: "sv",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(string(result.Artifacts["text"]))
//
// A run that finds no credit metadata fails with an error carrying
// [errors.ErrCodeNoCredit].
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/libcredit/pkg/cache"
	"github.com/matzehuels/libcredit/pkg/credit"
	apierrors "github.com/matzehuels/libcredit/pkg/errors"
	creditio "github.com/matzehuels/libcredit/pkg/io"
	"github.com/matzehuels/libcredit/pkg/render/diagram"
	"github.com/matzehuels/libcredit/pkg/render/markup"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultFormat is the input format used when none is given.
	DefaultFormat = creditio.FormatJSON

	// DefaultMaxDepth bounds source resolution for cyclic or very deep
	// graphs. Zero would mean unbounded.
	DefaultMaxDepth = 16

	// DefaultOutput is rendered when no outputs are requested.
	DefaultOutput = OutputText
)

// Output names.
const (
	OutputText = "text"
	OutputHTML = "html"
	OutputJSON = "json"
	OutputDOT  = "dot"
	OutputSVG  = "svg"
)

// ValidOutputs lists the supported outputs in rendering order.
var ValidOutputs = []string{OutputText, OutputHTML, OutputJSON, OutputDOT, OutputSVG}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Format string `json:"format,omitempty"` // input format, see creditio.Formats
	Base   string `json:"base,omitempty"`   // document base; the page URL for HTML

	// Build options
	Subject  string `json:"subject,omitempty"` // IRI or "_:label"; empty selects the document subject
	MaxDepth int    `json:"max_depth,omitempty"`

	// Render options
	Outputs     []string        `json:"outputs,omitempty"`
	SourceDepth *int            `json:"source_depth,omitempty"` // nil renders credit.DefaultSourceDepth
	Language    string          `json:"language,omitempty"`
	Markup      markup.Config   `json:"markup,omitempty"`
	Diagram     diagram.Options `json:"-"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the loaded graph.
	Document *creditio.Document

	// GraphHash is the content hash of the graph's N-Triples form.
	GraphHash string

	// Credit is the resolved credit tree.
	Credit *credit.Credit

	// Artifacts contains rendered outputs keyed by output name.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which outputs came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	TripleCount int
	RecordCount int
	SourceDepth int // levels of sources below the top record
	LoadTime    time.Duration
	BuildTime   time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits during rendering.
type CacheInfo struct {
	RenderHit bool     // Whether every artifact came from cache
	Hits      []string // Outputs served from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateOutput checks that an output name is valid.
func ValidateOutput(output string) error {
	if !slices.Contains(ValidOutputs, output) {
		return apierrors.New(apierrors.ErrCodeInvalidFormat,
			"invalid output: %q (must be one of: %s)", output, strings.Join(ValidOutputs, ", "))
	}
	return nil
}

// ValidateOutputs checks that all outputs are valid.
func ValidateOutputs(outputs []string) error {
	for _, o := range outputs {
		if err := ValidateOutput(o); err != nil {
			return err
		}
	}
	return nil
}

// ValidateInput checks that an input format is valid.
func ValidateInput(format string) error {
	if !slices.Contains(creditio.Formats, format) {
		return apierrors.New(apierrors.ErrCodeInvalidFormat,
			"invalid input format: %q (must be one of: %s)", format, strings.Join(creditio.Formats, ", "))
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	o.Format = strings.ToLower(o.Format)
	if err := ValidateInput(o.Format); err != nil {
		return err
	}
	if err := apierrors.ValidateSubject(o.Subject); err != nil {
		return err
	}
	if err := apierrors.ValidateLanguage(o.Language); err != nil {
		return err
	}
	if o.MaxDepth < 0 {
		return apierrors.New(apierrors.ErrCodeInvalidInput, "max_depth must not be negative")
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = DefaultMaxDepth
	}

	if len(o.Outputs) == 0 {
		o.Outputs = []string{DefaultOutput}
	}
	if err := ValidateOutputs(o.Outputs); err != nil {
		return err
	}
	o.Outputs = ordered(o.Outputs)

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ordered deduplicates outputs and sorts them in ValidOutputs order.
func ordered(outputs []string) []string {
	var out []string
	for _, v := range ValidOutputs {
		if slices.Contains(outputs, v) {
			out = append(out, v)
		}
	}
	return out
}

// Depth returns the effective source depth.
func (o *Options) Depth() int {
	if o.SourceDepth == nil {
		return credit.DefaultSourceDepth
	}
	return max(*o.SourceDepth, 0)
}

// CreditKeyOpts returns cache key options for one rendered output.
func (o *Options) CreditKeyOpts(output string) cache.CreditKeyOpts {
	opts := cache.CreditKeyOpts{
		Subject:     o.Subject,
		Format:      output,
		Language:    o.Language,
		SourceDepth: o.Depth(),
		MaxDepth:    o.MaxDepth,
	}
	switch output {
	case OutputHTML:
		opts.Markup = fmt.Sprintf("%+v", o.Markup)
	case OutputDOT, OutputSVG:
		opts.Markup = fmt.Sprintf("%+v", o.Diagram)
	}
	return opts
}
