package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/libcredit/pkg/rdf"
)

// WriteJSON encodes a document as a JSON triple list and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(doc *Document, w io.Writer) error {
	out := document{Triples: make([]triple, 0, doc.Graph.Len())}
	if doc.Base.IsResource() {
		out.Base = doc.Base.Value
	}

	for _, t := range doc.Graph.Triples() {
		tr := triple{
			S: subjectString(t.Subject),
			P: t.Predicate.Value,
			O: t.Object.Value,
		}
		switch t.Object.Kind {
		case rdf.KindResource:
			tr.Type = "uri"
		case rdf.KindBlank:
			tr.Type = "bnode"
			tr.O = "_:" + t.Object.Value
		default:
			tr.Lang = t.Object.Lang
			tr.Datatype = t.Object.Datatype
		}
		out.Triples = append(out.Triples, tr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func subjectString(t rdf.Term) string {
	if t.IsBlank() {
		return "_:" + t.Value
	}
	return t.Value
}

// ExportJSON writes a document to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(doc *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(doc, f)
}
