package rdf

import (
	"errors"
	"testing"

	"github.com/matzehuels/libcredit/pkg/vocab"
)

func TestStoreAddAndQuery(t *testing.T) {
	s := NewStore()
	src := Resource("urn:src")
	title := Resource(vocab.DCTitle)

	s.MustAdd(src, title, Literal("first"))
	s.MustAdd(src, title, Literal("second"))
	s.MustAdd(src, title, Literal("first")) // duplicate

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	got := s.Each(src, title)
	if len(got) != 2 || got[0].Value != "first" || got[1].Value != "second" {
		t.Errorf("Each() = %v, want [first second]", got)
	}

	first, ok := s.Any(src, title)
	if !ok || first.Value != "first" {
		t.Errorf("Any() = %v, %v; want first, true", first, ok)
	}

	if _, ok := s.Any(src, Resource(vocab.DCCreator)); ok {
		t.Error("Any() on missing predicate should report false")
	}

	if !s.Holds(src, title, Literal("second")) {
		t.Error("Holds() should find an added statement")
	}
	if s.Holds(src, title, Literal("third")) {
		t.Error("Holds() should not find a missing statement")
	}
}

func TestStoreEachReturnsCopy(t *testing.T) {
	s := NewStore()
	src := Resource("urn:src")
	p := Resource(vocab.DCTitle)
	s.MustAdd(src, p, Literal("a"))

	got := s.Each(src, p)
	got[0] = Literal("changed")

	if again := s.Each(src, p); again[0].Value != "a" {
		t.Errorf("store was mutated through Each result: %v", again)
	}
}

func TestStoreRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		s, p, o Term
	}{
		{"LiteralSubject", Literal("x"), Resource(vocab.DCTitle), Literal("y")},
		{"BlankPredicate", Resource("urn:a"), Blank("p"), Literal("y")},
		{"ZeroObject", Resource("urn:a"), Resource(vocab.DCTitle), Term{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewStore().Add(tt.s, tt.p, tt.o)
			if !errors.Is(err, ErrInvalidTriple) {
				t.Errorf("Add() error = %v, want ErrInvalidTriple", err)
			}
		})
	}
}

func TestStoreStatements(t *testing.T) {
	s := NewStore()
	a, b := Resource("urn:a"), Resource("urn:b")
	s.MustAdd(a, Resource(vocab.DCTitle), Literal("A"))
	s.MustAdd(b, Resource(vocab.DCTitle), Literal("B"))
	s.MustAdd(a, Resource(vocab.DCCreator), Literal("someone"))

	stmts := s.Statements(a)
	if len(stmts) != 2 {
		t.Fatalf("Statements() returned %d, want 2", len(stmts))
	}
	if stmts[1].Predicate.Value != vocab.DCCreator {
		t.Errorf("Statements()[1] = %v, want creator statement", stmts[1])
	}
}

func TestTermString(t *testing.T) {
	tests := []struct {
		term Term
		want string
	}{
		{Resource("http://x/"), "<http://x/>"},
		{Blank("b0"), "_:b0"},
		{Literal("hi"), `"hi"`},
		{LangLiteral("hej", "sv"), `"hej"@sv`},
		{Term{Kind: KindLiteral, Value: "1", Datatype: "http://www.w3.org/2001/XMLSchema#int"}, `"1"^^<http://www.w3.org/2001/XMLSchema#int>`},
		{Term{}, ""},
	}
	for _, tt := range tests {
		if got := tt.term.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
