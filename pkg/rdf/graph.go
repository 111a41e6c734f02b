package rdf

// Graph is the query capability the credit resolver consumes.
type Graph interface {
	// Each returns every object of (subject, predicate) in store order.
	Each(subject, predicate Term) []Term

	// Any returns the first object of (subject, predicate).
	Any(subject, predicate Term) (Term, bool)

	// Holds reports whether the statement (subject, predicate, object) exists.
	Holds(subject, predicate, object Term) bool
}

// Lister is implemented by graphs that can enumerate all statements about a
// subject.
type Lister interface {
	Statements(subject Term) []Triple
}
