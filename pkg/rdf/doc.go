// Package rdf defines the triple-store capability consumed by the credit
// resolver, plus a small in-memory implementation.
//
// # Terms
//
// A [Term] is one of three kinds:
//
//   - [KindResource]: a named node identified by an IRI
//   - [KindBlank]: an unnamed node with a store-local label
//   - [KindLiteral]: a lexical value with an optional language tag or datatype
//
// Containers (rdf:Seq, rdf:Bag, rdf:Alt) are ordinary nodes typed with
// rdf:type; see [ContainerKindOf] and [Members].
//
// # Graph Capability
//
// The resolver only needs three queries, captured by [Graph]:
//
//	objs := g.Each(subject, predicate)       // ordered objects
//	obj, ok := g.Any(subject, predicate)     // first object
//	ok := g.Holds(subject, predicate, object)
//
// Graphs that can list every statement about a subject implement [Lister] as
// well; container enumeration uses it when available and otherwise probes
// rdf:_1, rdf:_2, ... until the first gap.
//
// # Store
//
// [Store] is an insertion-ordered, in-memory [Graph]. It is not safe for
// concurrent mutation; concurrent readers are fine once loading is complete.
//
//	s := rdf.NewStore()
//	s.Add(rdf.Resource("urn:src"), rdf.Resource(vocab.DCTitle), rdf.Literal("a title"))
package rdf
