package io

import (
	"errors"

	"github.com/matzehuels/libcredit/pkg/rdf"
)

// ErrUnknownFormat is returned for unrecognized input format names and
// file extensions.
var ErrUnknownFormat = errors.New("unknown input format")

// Document is a parsed graph.
type Document struct {
	// Graph holds the statements in input order.
	Graph *rdf.Store

	// Base is the subject whose dc:source names the described work. The
	// zero Term selects the empty IRI <>.
	Base rdf.Term
}

func newDocument(base string) *Document {
	d := &Document{Graph: rdf.NewStore()}
	if base != "" {
		d.Base = rdf.Resource(base)
	}
	return d
}

// node parses a subject string: "_:x" is a blank node, anything else an
// IRI, with "" naming the document base.
func (d *Document) node(s string) rdf.Term {
	switch {
	case len(s) > 2 && s[:2] == "_:":
		return rdf.Blank(s[2:])
	case s == "" && d.Base.IsResource():
		return d.Base
	default:
		return rdf.Resource(s)
	}
}
