package io

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/libcredit/pkg/rdf"
	"github.com/matzehuels/libcredit/pkg/vocab"
)

// ErrYAMLShape is returned when a YAML document does not follow the
// subjects/predicates layout.
var ErrYAMLShape = errors.New("unexpected YAML structure")

// yamlNodeSpace seeds the name-based UUIDs of anonymous YAML nodes.
var yamlNodeSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/libcredit/yaml"))

type yamlReader struct {
	doc      *Document
	base     string
	prefixes map[string]string
}

// ReadYAML decodes a YAML graph from r. The top-level mapping may hold
// base, prefixes and subjects keys; subjects maps each subject to a mapping
// of predicates to values. Key order is preserved in the resulting graph.
func ReadYAML(r io.Reader) (*Document, error) {
	return readYAML(r, "")
}

func readYAML(r io.Reader, base string) (*Document, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return newDocument(base), nil
		}
		return nil, fmt.Errorf("decode: %w", err)
	}
	top := &root
	if top.Kind == yaml.DocumentNode && len(top.Content) == 1 {
		top = top.Content[0]
	}
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrYAMLShape)
	}

	yr := &yamlReader{prefixes: make(map[string]string)}
	var subjects *yaml.Node
	for i := 0; i+1 < len(top.Content); i += 2 {
		k, v := top.Content[i], top.Content[i+1]
		switch k.Value {
		case "base":
			yr.base = v.Value
		case "prefixes":
			if v.Kind != yaml.MappingNode {
				return nil, yr.errorf(v, "prefixes must be a mapping")
			}
			for j := 0; j+1 < len(v.Content); j += 2 {
				yr.prefixes[v.Content[j].Value] = v.Content[j+1].Value
			}
		case "subjects":
			subjects = v
		default:
			return nil, yr.errorf(k, "unknown key %q", k.Value)
		}
	}

	if yr.base == "" {
		yr.base = base
	}
	yr.doc = newDocument(yr.base)
	if subjects == nil {
		return yr.doc, nil
	}
	if subjects.Kind != yaml.MappingNode {
		return nil, yr.errorf(subjects, "subjects must be a mapping")
	}
	for i := 0; i+1 < len(subjects.Content); i += 2 {
		s := yr.subject(subjects.Content[i].Value)
		if err := yr.properties(s, subjects.Content[i+1]); err != nil {
			return nil, err
		}
	}
	return yr.doc, nil
}

func (yr *yamlReader) errorf(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("line %d: %w: %s", n.Line, ErrYAMLShape, fmt.Sprintf(format, args...))
}

func (yr *yamlReader) subject(s string) rdf.Term {
	switch {
	case s == "" || s == "<>":
		return rdf.Resource(yr.base)
	case strings.HasPrefix(s, "_:"):
		return rdf.Blank(s[2:])
	default:
		return rdf.Resource(yr.expand(strings.Trim(s, "<>")))
	}
}

// expand resolves a CURIE against the document prefixes, then the
// well-known ones. Anything else is returned unchanged.
func (yr *yamlReader) expand(s string) string {
	prefix, local, ok := strings.Cut(s, ":")
	if !ok || strings.HasPrefix(local, "//") {
		return s
	}
	if ns, ok := yr.prefixes[prefix]; ok {
		return ns + local
	}
	if ns, ok := vocab.Prefixes[prefix]; ok {
		return ns + local
	}
	return s
}

func (yr *yamlReader) properties(s rdf.Term, n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return yr.errorf(n, "properties of %s must be a mapping", s)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		p := rdf.Resource(yr.expand(n.Content[i].Value))
		objs, err := yr.objects(n.Content[i+1])
		if err != nil {
			return err
		}
		for _, o := range objs {
			if err := yr.doc.Graph.Add(s, p, o); err != nil {
				return fmt.Errorf("line %d: %w", n.Content[i].Line, err)
			}
		}
	}
	return nil
}

// objects converts a value node. Sequences yield one object per item.
func (yr *yamlReader) objects(n *yaml.Node) ([]rdf.Term, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return []rdf.Term{yr.scalar(n)}, nil
	case yaml.SequenceNode:
		var out []rdf.Term
		for _, c := range n.Content {
			objs, err := yr.objects(c)
			if err != nil {
				return nil, err
			}
			out = append(out, objs...)
		}
		return out, nil
	case yaml.MappingNode:
		o, err := yr.mapping(n)
		if err != nil {
			return nil, err
		}
		return []rdf.Term{o}, nil
	case yaml.AliasNode:
		return yr.objects(n.Alias)
	default:
		return nil, yr.errorf(n, "unsupported value")
	}
}

func (yr *yamlReader) scalar(n *yaml.Node) rdf.Term {
	v := n.Value
	if n.Tag != "!!str" && n.Tag != "" && n.Tag != "!" {
		return rdf.Literal(v)
	}
	switch {
	case strings.HasPrefix(v, "_:") && len(v) > 2:
		return rdf.Blank(v[2:])
	case strings.HasPrefix(v, "<") && strings.HasSuffix(v, ">"):
		return yr.subject(v)
	case strings.HasPrefix(v, "http://"), strings.HasPrefix(v, "https://"), strings.HasPrefix(v, "urn:"):
		return rdf.Resource(v)
	default:
		return rdf.Literal(v)
	}
}

// mapping handles the explicit forms {literal, lang, datatype}, {iri},
// {seq|bag|alt: [...]} and nested descriptions, which become blank nodes.
func (yr *yamlReader) mapping(n *yaml.Node) (rdf.Term, error) {
	fields := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		fields[n.Content[i].Value] = n.Content[i+1]
	}

	if lit, ok := fields["literal"]; ok {
		t := rdf.Literal(lit.Value)
		if l, ok := fields["lang"]; ok {
			t.Lang = l.Value
		}
		if dt, ok := fields["datatype"]; ok {
			t.Datatype = yr.expand(dt.Value)
		}
		return t, nil
	}
	if iri, ok := fields["iri"]; ok && len(fields) == 1 {
		return yr.subject(iri.Value), nil
	}
	if len(fields) == 1 {
		for name, class := range map[string]string{"seq": vocab.RDFSeq, "bag": vocab.RDFBag, "alt": vocab.RDFAlt} {
			if items, ok := fields[name]; ok {
				return yr.container(n, class, items)
			}
		}
	}

	b := blankAt(n)
	if err := yr.properties(b, n); err != nil {
		return rdf.Term{}, err
	}
	return b, nil
}

func (yr *yamlReader) container(n *yaml.Node, class string, items *yaml.Node) (rdf.Term, error) {
	members, err := yr.objects(items)
	if err != nil {
		return rdf.Term{}, err
	}
	b := blankAt(n)
	g := yr.doc.Graph
	if err := g.Add(b, rdf.Resource(vocab.RDFType), rdf.Resource(class)); err != nil {
		return rdf.Term{}, err
	}
	for i, m := range members {
		if err := g.Add(b, rdf.Resource(vocab.Member(i+1)), m); err != nil {
			return rdf.Term{}, err
		}
	}
	return b, nil
}

// blankAt labels the anonymous node n by its position in the document, so
// reading the same input twice yields the same graph. Aliases of n share it.
func blankAt(n *yaml.Node) rdf.Term {
	pos := fmt.Appendf(nil, "%d:%d", n.Line, n.Column)
	return rdf.Blank(uuid.NewSHA1(yamlNodeSpace, pos).String())
}
