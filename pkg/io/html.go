package io

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/matzehuels/libcredit/pkg/rdf"
	"github.com/matzehuels/libcredit/pkg/vocab"
)

// metaPrefixes maps lower-cased meta name/property prefixes to namespaces.
// Both "dc." and "dc:" spellings appear in the wild.
var metaPrefixes = []struct{ prefix, ns string }{
	{"og:", vocab.OG},
	{"twitter:", vocab.Twitter},
	{"dc.", vocab.DC},
	{"dc:", vocab.DC},
	{"dcterms.", vocab.DCTerms},
	{"dcterms:", vocab.DCTerms},
	{"cc:", vocab.CC},
	{"flickr_photos:", vocab.Flickr},
}

// resourceValued predicates carry links rather than text.
var resourceValued = map[string]bool{
	vocab.OGURL:            true,
	vocab.CCAttributionURL: true,
	vocab.CCLicense:        true,
	vocab.DCTermsLicense:   true,
	vocab.DCSource:         true,
	vocab.DCTermsSource:    true,
	vocab.XHVLicense:       true,
}

var titlePredicates = []string{vocab.DCTitle, vocab.DCTermsTitle, vocab.OGTitle, vocab.TwitterTitle}

type page struct {
	base    *url.URL
	subject rdf.Term
	g       *rdf.Store

	title     string
	author    string
	canonical string
}

// ReadHTML extracts credit metadata from an HTML page: meta elements using
// the Open Graph, Twitter, Dublin Core, ccREL and Flickr prefixes, license
// links, the canonical link, the author meta element and the page title.
// Relative links resolve against pageURL.
//
// The statements describe pageURL, and the document's dc:source points at
// it. Without a pageURL the page is described by a blank node.
func ReadHTML(r io.Reader, pageURL string) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	doc := newDocument("")
	p := &page{g: doc.Graph, subject: rdf.Blank("page")}
	if pageURL != "" {
		if p.base, err = url.Parse(pageURL); err != nil {
			return nil, fmt.Errorf("page url: %w", err)
		}
		p.subject = rdf.Resource(pageURL)
	}

	if err := p.walk(root); err != nil {
		return nil, err
	}
	if err := p.fallbacks(); err != nil {
		return nil, err
	}
	if p.g.Len() > 0 {
		if err := doc.Graph.Add(rdf.Resource(""), rdf.Resource(vocab.DCSource), p.subject); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func (p *page) walk(n *html.Node) error {
	if n.Type == html.ElementNode {
		if err := p.element(n); err != nil {
			return err
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := p.walk(c); err != nil {
			return err
		}
	}
	return nil
}

func (p *page) element(n *html.Node) error {
	switch n.DataAtom {
	case atom.Meta:
		return p.meta(n)
	case atom.Link, atom.A:
		href := attr(n, "href")
		if href == "" {
			return nil
		}
		for _, rel := range strings.Fields(strings.ToLower(attr(n, "rel"))) {
			switch rel {
			case "license":
				if err := p.add(vocab.XHVLicense, href); err != nil {
					return err
				}
			case "canonical":
				if n.DataAtom == atom.Link && p.canonical == "" {
					p.canonical = href
				}
			}
		}
	case atom.Title:
		if p.title == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
			p.title = strings.TrimSpace(n.FirstChild.Data)
		}
	}
	return nil
}

func (p *page) meta(n *html.Node) error {
	content := strings.TrimSpace(attr(n, "content"))
	if content == "" {
		return nil
	}
	for _, key := range []string{attr(n, "property"), attr(n, "name")} {
		if key == "" {
			continue
		}
		if strings.EqualFold(key, "author") {
			if p.author == "" {
				p.author = content
			}
			continue
		}
		if pred, ok := metaPredicate(key); ok {
			return p.add(pred, content)
		}
	}
	return nil
}

func metaPredicate(key string) (string, bool) {
	lower := strings.ToLower(key)
	for _, m := range metaPrefixes {
		if strings.HasPrefix(lower, m.prefix) && len(key) > len(m.prefix) {
			return m.ns + key[len(m.prefix):], true
		}
	}
	return "", false
}

func (p *page) add(pred, value string) error {
	obj := rdf.Literal(value)
	if resourceValued[pred] {
		obj = rdf.Resource(p.resolve(value))
	}
	return p.g.Add(p.subject, rdf.Resource(pred), obj)
}

func (p *page) resolve(href string) string {
	if p.base == nil {
		return href
	}
	u, err := p.base.Parse(href)
	if err != nil {
		return href
	}
	return u.String()
}

func (p *page) has(preds ...string) bool {
	for _, pred := range preds {
		if _, ok := p.g.Any(p.subject, rdf.Resource(pred)); ok {
			return true
		}
	}
	return false
}

// fallbacks adds the canonical link, author and title only where no
// explicit metadata provided them.
func (p *page) fallbacks() error {
	if p.canonical != "" && !p.has(vocab.OGURL) {
		if err := p.add(vocab.OGURL, p.canonical); err != nil {
			return err
		}
	}
	if p.author != "" && !p.has(vocab.DCCreator, vocab.DCTermsCreator, vocab.CCAttributionName, vocab.TwitterCreator) {
		if err := p.add(vocab.DCCreator, p.author); err != nil {
			return err
		}
	}
	if p.title != "" && !p.has(titlePredicates...) {
		return p.add(vocab.DCTitle, p.title)
	}
	return nil
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
