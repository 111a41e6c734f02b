package rdf

import "errors"

// ErrInvalidTriple is returned by [Store.Add] for statements whose subject
// is not a node or whose predicate is not a resource.
var ErrInvalidTriple = errors.New("invalid triple")

type key struct {
	subject   Term
	predicate Term
}

// Store is an in-memory Graph that preserves insertion order.
// Duplicate statements are ignored.
type Store struct {
	triples  []Triple
	index    map[key][]Term
	subjects map[Term][]int
	seen     map[Triple]struct{}
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		index:    make(map[key][]Term),
		subjects: make(map[Term][]int),
		seen:     make(map[Triple]struct{}),
	}
}

// Add inserts a statement. Adding an existing statement is a no-op.
func (s *Store) Add(subject, predicate, object Term) error {
	if !subject.IsNode() || !predicate.IsResource() || object.IsZero() {
		return ErrInvalidTriple
	}
	t := Triple{Subject: subject, Predicate: predicate, Object: object}
	if _, ok := s.seen[t]; ok {
		return nil
	}
	s.seen[t] = struct{}{}
	s.subjects[subject] = append(s.subjects[subject], len(s.triples))
	s.triples = append(s.triples, t)
	k := key{subject, predicate}
	s.index[k] = append(s.index[k], object)
	return nil
}

// MustAdd is like Add but panics on an invalid statement.
// It is intended for tests and static fixtures.
func (s *Store) MustAdd(subject, predicate, object Term) *Store {
	if err := s.Add(subject, predicate, object); err != nil {
		panic(err)
	}
	return s
}

// Each returns the objects of (subject, predicate) in insertion order.
func (s *Store) Each(subject, predicate Term) []Term {
	objs := s.index[key{subject, predicate}]
	if len(objs) == 0 {
		return nil
	}
	out := make([]Term, len(objs))
	copy(out, objs)
	return out
}

// Any returns the first object of (subject, predicate).
func (s *Store) Any(subject, predicate Term) (Term, bool) {
	objs := s.index[key{subject, predicate}]
	if len(objs) == 0 {
		return Term{}, false
	}
	return objs[0], true
}

// Holds reports whether the statement exists.
func (s *Store) Holds(subject, predicate, object Term) bool {
	_, ok := s.seen[Triple{Subject: subject, Predicate: predicate, Object: object}]
	return ok
}

// Statements returns every statement with the given subject.
func (s *Store) Statements(subject Term) []Triple {
	idx := s.subjects[subject]
	out := make([]Triple, len(idx))
	for i, n := range idx {
		out[i] = s.triples[n]
	}
	return out
}

// Triples returns all statements in insertion order.
func (s *Store) Triples() []Triple {
	out := make([]Triple, len(s.triples))
	copy(out, s.triples)
	return out
}

// Len returns the number of statements.
func (s *Store) Len() int { return len(s.triples) }

var (
	_ Graph  = (*Store)(nil)
	_ Lister = (*Store)(nil)
)
