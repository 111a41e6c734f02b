package io

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/libcredit/pkg/rdf"
)

// Input format names.
const (
	FormatJSON     = "json"
	FormatNTriples = "nt"
	FormatYAML     = "yaml"
	FormatHTML     = "html"
)

// Formats lists the input format names accepted by [Read] and [Import].
var Formats = []string{FormatJSON, FormatNTriples, FormatYAML, FormatHTML}

var extFormats = map[string]string{
	".json":     FormatJSON,
	".nt":       FormatNTriples,
	".ntriples": FormatNTriples,
	".yaml":     FormatYAML,
	".yml":      FormatYAML,
	".html":     FormatHTML,
	".htm":      FormatHTML,
	".xhtml":    FormatHTML,
}

// FormatFromPath guesses the input format from a file extension.
func FormatFromPath(path string) (string, bool) {
	f, ok := extFormats[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// Read decodes r in the named format. base is the document base: for HTML
// it is the page URL, for N-Triples it replaces <>, and for JSON and YAML
// it applies when the input declares no base of its own. In every format
// the empty subject names the document base.
func Read(r io.Reader, format, base string) (*Document, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return readJSON(r, base)
	case FormatNTriples, "ntriples", "n-triples":
		return ReadNTriples(r, base)
	case FormatYAML, "yml":
		return readYAML(r, base)
	case FormatHTML, "htm":
		return ReadHTML(r, base)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Import reads the file at path. An empty format is inferred from the
// extension.
func Import(path, format string) (*Document, error) {
	if format == "" {
		var ok bool
		if format, ok = FormatFromPath(path); !ok {
			return nil, fmt.Errorf("%w: cannot infer from %s", ErrUnknownFormat, path)
		}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, format, "")
}

type document struct {
	Base    string   `json:"base,omitempty"`
	Triples []triple `json:"triples"`
}

type triple struct {
	S        string `json:"s"`
	P        string `json:"p"`
	O        string `json:"o"`
	Type     string `json:"type,omitempty"`
	Lang     string `json:"lang,omitempty"`
	Datatype string `json:"datatype,omitempty"`
}

// ReadJSON decodes a JSON triple list from r.
//
// ReadJSON returns an error if the JSON is malformed, if an object type is
// unknown, or if a statement is not a valid triple (for example a
// literal-typed subject or an empty predicate). Errors name the offending
// triple by index. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Document, error) {
	return readJSON(r, "")
}

func readJSON(r io.Reader, base string) (*Document, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	doc := newDocument(cmp.Or(data.Base, base))
	for i, t := range data.Triples {
		if t.P == "" {
			return nil, fmt.Errorf("triple %d: %w: empty predicate", i, rdf.ErrInvalidTriple)
		}
		obj, err := t.object()
		if err != nil {
			return nil, fmt.Errorf("triple %d: %w", i, err)
		}
		if err := doc.Graph.Add(doc.node(t.S), rdf.Resource(t.P), obj); err != nil {
			return nil, fmt.Errorf("triple %d: %w", i, err)
		}
	}
	return doc, nil
}

func (t triple) object() (rdf.Term, error) {
	switch t.Type {
	case "", "literal":
		return rdf.Term{Kind: rdf.KindLiteral, Value: t.O, Lang: t.Lang, Datatype: t.Datatype}, nil
	case "uri", "iri":
		return rdf.Resource(t.O), nil
	case "bnode":
		return rdf.Blank(strings.TrimPrefix(t.O, "_:")), nil
	default:
		return rdf.Term{}, fmt.Errorf("unknown object type %q", t.Type)
	}
}

// ImportJSON reads a JSON file at path. See [ReadJSON].
func ImportJSON(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
