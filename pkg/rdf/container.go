package rdf

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/libcredit/pkg/vocab"
)

// ContainerKind classifies RDF container nodes.
type ContainerKind int

const (
	NotContainer ContainerKind = iota
	Seq
	Bag
	Alt
)

func (k ContainerKind) String() string {
	switch k {
	case Seq:
		return "seq"
	case Bag:
		return "bag"
	case Alt:
		return "alt"
	default:
		return "none"
	}
}

var (
	typePred = Resource(vocab.RDFType)
	seqType  = Resource(vocab.RDFSeq)
	bagType  = Resource(vocab.RDFBag)
	altType  = Resource(vocab.RDFAlt)
)

// ContainerKindOf returns the container kind of node, or NotContainer.
func ContainerKindOf(g Graph, node Term) ContainerKind {
	if !node.IsNode() {
		return NotContainer
	}
	switch {
	case g.Holds(node, typePred, altType):
		return Alt
	case g.Holds(node, typePred, seqType):
		return Seq
	case g.Holds(node, typePred, bagType):
		return Bag
	default:
		return NotContainer
	}
}

// Members returns the members of a container node in ascending index order.
// If g implements [Lister] every rdf:_N statement is used; otherwise the
// indexes are probed from 1 until the first missing one.
func Members(g Graph, node Term) []Term {
	if l, ok := g.(Lister); ok {
		return listedMembers(l, node)
	}
	var out []Term
	for n := 1; ; n++ {
		objs := g.Each(node, Resource(vocab.Member(n)))
		if len(objs) == 0 {
			return out
		}
		out = append(out, objs...)
	}
}

type member struct {
	key   string
	index int
	obj   Term
}

func listedMembers(l Lister, node Term) []Term {
	var ms []member
	for _, t := range l.Statements(node) {
		suffix, ok := strings.CutPrefix(t.Predicate.Value, vocab.RDFMemberPrefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil || n < 1 {
			continue
		}
		ms = append(ms, member{key: suffix, index: n, obj: t.Object})
	}

	// Keys sort lexicographically first ("10" < "2"); the stable numeric
	// pass then restores index order while keeping store order per key.
	slices.SortStableFunc(ms, func(a, b member) int { return strings.Compare(a.key, b.key) })
	slices.SortStableFunc(ms, func(a, b member) int { return cmp.Compare(a.index, b.index) })

	out := make([]Term, len(ms))
	for i, m := range ms {
		out[i] = m.obj
	}
	return out
}
