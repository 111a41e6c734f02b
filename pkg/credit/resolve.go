package credit

import (
	"regexp"
	"strings"

	"github.com/matzehuels/libcredit/pkg/license"
	"github.com/matzehuels/libcredit/pkg/rdf"
	"github.com/matzehuels/libcredit/pkg/vocab"
)

func predicates(iris ...string) []rdf.Term {
	out := make([]rdf.Term, len(iris))
	for i, iri := range iris {
		out[i] = rdf.Resource(iri)
	}
	return out
}

// Predicate chains, highest priority first.
var (
	titlePreds        = predicates(vocab.DCTitle, vocab.DCTermsTitle, vocab.OGTitle)
	titleURLPreds     = predicates(vocab.OGURL)
	attribNamePreds   = predicates(vocab.CCAttributionName)
	attribURLPreds    = predicates(vocab.CCAttributionURL)
	creatorPreds      = predicates(vocab.DCCreator, vocab.DCTermsCreator)
	handlePreds       = predicates(vocab.TwitterCreator)
	photographerPreds = predicates(vocab.FlickrBy)
	licensePreds      = predicates(vocab.XHVLicense, vocab.DCTermsLicense, vocab.CCLicense)
	rightsPreds       = predicates(vocab.DCRights, vocab.DCTermsRights)
	sourcePreds       = predicates(vocab.DCSource, vocab.DCTermsSource)

	blankValuePreds = predicates(vocab.RDFValue, vocab.RDFSLabel)
)

var flickrRe = regexp.MustCompile(`^https?://(www\.)?flickr\.com/`)

// IsURL reports whether s is acceptable as a link target: it must start
// with "http:" or "https:".
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http:") || strings.HasPrefix(s, "https:")
}

type resolver struct {
	g rdf.Graph
}

// text returns the values of the first predicate in preds that has any.
func (r resolver) text(subject rdf.Term, preds []rdf.Term) []string {
	for _, p := range preds {
		var vals []string
		for _, o := range r.g.Each(subject, p) {
			vals = append(vals, r.values(o)...)
		}
		if len(vals) > 0 {
			return vals
		}
	}
	return nil
}

// url returns the first value across preds that passes IsURL.
func (r resolver) url(subject rdf.Term, preds []rdf.Term) string {
	for _, p := range preds {
		for _, o := range r.g.Each(subject, p) {
			for _, v := range r.values(o) {
				if IsURL(v) {
					return v
				}
			}
		}
	}
	return ""
}

// values expands one object into its textual values.
func (r resolver) values(o rdf.Term) []string {
	if !o.IsBlank() {
		return r.scalar(o)
	}
	switch rdf.ContainerKindOf(r.g, o) {
	case rdf.Alt:
		if members := rdf.Members(r.g, o); len(members) > 0 {
			return r.scalar(members[0])
		}
		return nil
	case rdf.Seq, rdf.Bag:
		var out []string
		for _, m := range rdf.Members(r.g, o) {
			out = append(out, r.scalar(m)...)
		}
		return out
	default:
		return r.scalar(o)
	}
}

// scalar returns the value of a non-container term. Blank nodes contribute
// their rdf:value or rdfs:label.
func (r resolver) scalar(t rdf.Term) []string {
	switch t.Kind {
	case rdf.KindLiteral, rdf.KindResource:
		if t.Value == "" {
			return nil
		}
		return []string{t.Value}
	case rdf.KindBlank:
		for _, p := range blankValuePreds {
			for _, v := range r.g.Each(t, p) {
				if v.IsLiteral() && v.Value != "" {
					return []string{v.Value}
				}
			}
		}
	}
	return nil
}

func (r resolver) title(subject rdf.Term) Field {
	var f Field
	if texts := r.text(subject, titlePreds); len(texts) > 0 {
		f.Text = texts[0]
	}
	f.URL = r.url(subject, titleURLPreds)
	if f.URL == "" && subject.IsResource() && IsURL(subject.Value) {
		f.URL = subject.Value
	}
	if f.Text == "" {
		f.Text = f.URL
	}
	return f
}

func (r resolver) attribution(subject rdf.Term) Attribution {
	a := Attribution{
		Names: r.text(subject, attribNamePreds),
		URL:   r.url(subject, attribURLPreds),
	}
	if len(a.Names) == 0 {
		a.Names = r.text(subject, creatorPreds)
	}
	if len(a.Names) == 0 {
		a.Names = r.text(subject, handlePreds)
	}
	if len(a.Names) == 0 && subject.IsResource() && flickrRe.MatchString(subject.Value) {
		a.Names = r.text(subject, photographerPreds)
	}
	if a.URL == "" && len(a.Names) == 1 && IsURL(a.Names[0]) {
		a.URL = a.Names[0]
	}
	if len(a.Names) == 0 && a.URL != "" {
		a.Names = []string{a.URL}
	}
	return a
}

func (r resolver) license(subject rdf.Term) Field {
	if url := r.url(subject, licensePreds); url != "" {
		return Field{Text: license.Name(url), URL: url}
	}
	if texts := r.text(subject, rightsPreds); len(texts) > 0 {
		return Field{Text: texts[0]}
	}
	return Field{}
}

// sources builds every source of subject with build, in predicate order,
// dropping those that resolve to nil. Container objects contribute their
// members.
func (r resolver) sources(subject rdf.Term, build func(rdf.Term) *Credit) []*Credit {
	var out []*Credit
	add := func(o rdf.Term) {
		var child rdf.Term
		switch {
		case o.IsNode():
			child = o
		case o.IsLiteral() && IsURL(o.Value):
			child = rdf.Resource(o.Value)
		default:
			return
		}
		if c := build(child); c != nil {
			out = append(out, c)
		}
	}

	for _, p := range sourcePreds {
		for _, o := range r.g.Each(subject, p) {
			if rdf.ContainerKindOf(r.g, o) == rdf.NotContainer {
				add(o)
				continue
			}
			for _, m := range rdf.Members(r.g, o) {
				add(m)
			}
		}
	}
	return out
}
