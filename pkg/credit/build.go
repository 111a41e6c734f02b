package credit

import (
	"github.com/matzehuels/libcredit/pkg/rdf"
	"github.com/matzehuels/libcredit/pkg/vocab"
)

var documentSource = rdf.Resource(vocab.DCSource)

// Builder configures credit resolution. The zero Builder is ready to use.
type Builder struct {
	// Base is the subject whose dc:source names the described work when
	// Build is called without a subject. Defaults to the empty IRI <>.
	Base rdf.Term

	// MaxDepth bounds how many source levels below the subject are
	// resolved. Zero means unbounded; see the package documentation on
	// cycles.
	MaxDepth int
}

// Build resolves the credit for subject in g using a zero Builder.
func Build(g rdf.Graph, subject rdf.Term) *Credit {
	return Builder{}.Build(g, subject)
}

// Build resolves the credit for subject. When subject is the zero Term the
// work is located through the base subject's dc:source; without one, Build
// returns nil.
func (b Builder) Build(g rdf.Graph, subject rdf.Term) *Credit {
	if subject.IsZero() {
		var ok bool
		if subject, ok = b.documentSubject(g); !ok {
			return nil
		}
	}
	return b.build(resolver{g: g}, subject, 0)
}

func (b Builder) documentSubject(g rdf.Graph) (rdf.Term, bool) {
	base := b.Base
	if base.IsZero() {
		base = rdf.Resource("")
	}
	t, ok := g.Any(base, documentSource)
	switch {
	case !ok:
		return rdf.Term{}, false
	case t.IsNode():
		return t, true
	case t.IsLiteral() && IsURL(t.Value):
		return rdf.Resource(t.Value), true
	default:
		return rdf.Term{}, false
	}
}

func (b Builder) build(r resolver, subject rdf.Term, depth int) *Credit {
	c := &Credit{
		Title:   r.title(subject),
		Attrib:  r.attribution(subject),
		License: r.license(subject),
	}
	if b.MaxDepth <= 0 || depth < b.MaxDepth {
		c.Sources = r.sources(subject, func(child rdf.Term) *Credit {
			return b.build(r, child, depth+1)
		})
	}
	if !c.HasTitle() && !c.HasAttrib() && !c.HasLicense() && len(c.Sources) == 0 {
		return nil
	}
	return c
}
