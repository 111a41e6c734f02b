package rdf

import (
	"strconv"
	"strings"
)

// Kind identifies the type of a Term.
type Kind int

const (
	// KindNone is the zero Kind; a Term of this kind is "no term".
	KindNone Kind = iota
	// KindResource is a named node (IRI).
	KindResource
	// KindBlank is an unnamed node.
	KindBlank
	// KindLiteral is a literal value.
	KindLiteral
)

func (k Kind) String() string {
	switch k {
	case KindResource:
		return "uri"
	case KindBlank:
		return "bnode"
	case KindLiteral:
		return "literal"
	default:
		return "none"
	}
}

// Term is a node or value in a graph. The zero Term is "no term".
type Term struct {
	Kind     Kind
	Value    string // IRI, blank node label, or lexical value
	Lang     string // literal language tag
	Datatype string // literal datatype IRI
}

// Resource returns a named node term.
func Resource(iri string) Term { return Term{Kind: KindResource, Value: iri} }

// Blank returns a blank node term with the given label (without "_:").
func Blank(label string) Term { return Term{Kind: KindBlank, Value: label} }

// Literal returns a plain literal term.
func Literal(value string) Term { return Term{Kind: KindLiteral, Value: value} }

// LangLiteral returns a language-tagged literal term.
func LangLiteral(value, lang string) Term {
	return Term{Kind: KindLiteral, Value: value, Lang: lang}
}

// IsZero reports whether t is the zero Term.
func (t Term) IsZero() bool { return t.Kind == KindNone }

// IsResource reports whether t is a named node.
func (t Term) IsResource() bool { return t.Kind == KindResource }

// IsBlank reports whether t is a blank node.
func (t Term) IsBlank() bool { return t.Kind == KindBlank }

// IsLiteral reports whether t is a literal.
func (t Term) IsLiteral() bool { return t.Kind == KindLiteral }

// IsNode reports whether t can be used as a subject.
func (t Term) IsNode() bool { return t.Kind == KindResource || t.Kind == KindBlank }

// String returns the N-Triples form of t.
func (t Term) String() string {
	switch t.Kind {
	case KindResource:
		return "<" + t.Value + ">"
	case KindBlank:
		return "_:" + t.Value
	case KindLiteral:
		s := strconv.Quote(t.Value)
		if t.Lang != "" {
			return s + "@" + t.Lang
		}
		if t.Datatype != "" {
			return s + "^^<" + t.Datatype + ">"
		}
		return s
	default:
		return ""
	}
}

// Triple is a single subject-predicate-object statement.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

func (t Triple) String() string {
	return strings.Join([]string{t.Subject.String(), t.Predicate.String(), t.Object.String(), "."}, " ")
}
