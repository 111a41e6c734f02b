package io

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/libcredit/pkg/rdf"
)

// ErrSyntax is wrapped by N-Triples parse errors.
var ErrSyntax = errors.New("syntax error")

// ReadNTriples parses N-Triples from r. The empty IRI <> refers to base,
// which is also the document base when set. Errors carry the line number.
func ReadNTriples(r io.Reader, base string) (*Document, error) {
	doc := newDocument(base)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4<<20)

	for n := 1; sc.Scan(); n++ {
		t, ok, err := parseLine(sc.Text(), base)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		if !ok {
			continue
		}
		if err := doc.Graph.Add(t.Subject, t.Predicate, t.Object); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return doc, nil
}

type lexer struct {
	s    string
	pos  int
	base string
}

func (l *lexer) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at column %d: %s", ErrSyntax, l.pos+1, fmt.Sprintf(format, args...))
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.s) && (l.s[l.pos] == ' ' || l.s[l.pos] == '\t' || l.s[l.pos] == '\r') {
		l.pos++
	}
}

func (l *lexer) done() bool {
	l.skipSpace()
	return l.pos >= len(l.s) || l.s[l.pos] == '#'
}

func parseLine(line, base string) (rdf.Triple, bool, error) {
	l := &lexer{s: line, base: base}
	if l.done() {
		return rdf.Triple{}, false, nil
	}

	var t rdf.Triple
	var err error
	if t.Subject, err = l.node(); err != nil {
		return t, false, err
	}
	l.skipSpace()
	if t.Predicate, err = l.iri(); err != nil {
		return t, false, err
	}
	l.skipSpace()
	if t.Object, err = l.term(); err != nil {
		return t, false, err
	}
	l.skipSpace()
	if l.pos >= len(l.s) || l.s[l.pos] != '.' {
		return t, false, l.errorf("expected '.'")
	}
	l.pos++
	if !l.done() {
		return t, false, l.errorf("trailing characters")
	}
	return t, true, nil
}

func (l *lexer) node() (rdf.Term, error) {
	if strings.HasPrefix(l.s[l.pos:], "_:") {
		return l.blank()
	}
	return l.iri()
}

func (l *lexer) term() (rdf.Term, error) {
	if l.pos < len(l.s) && l.s[l.pos] == '"' {
		return l.literal()
	}
	return l.node()
}

func (l *lexer) iri() (rdf.Term, error) {
	if l.pos >= len(l.s) || l.s[l.pos] != '<' {
		return rdf.Term{}, l.errorf("expected IRI")
	}
	end := strings.IndexByte(l.s[l.pos:], '>')
	if end < 0 {
		return rdf.Term{}, l.errorf("unterminated IRI")
	}
	raw := l.s[l.pos+1 : l.pos+end]
	l.pos += end + 1
	v, err := unescape(raw)
	if err != nil {
		return rdf.Term{}, l.errorf("%v", err)
	}
	if v == "" {
		v = l.base
	}
	return rdf.Resource(v), nil
}

func (l *lexer) blank() (rdf.Term, error) {
	l.pos += 2
	start := l.pos
	for l.pos < len(l.s) && l.s[l.pos] != ' ' && l.s[l.pos] != '\t' && l.s[l.pos] != '\r' {
		l.pos++
	}
	// A label may contain dots but not end with one.
	for l.pos > start && l.s[l.pos-1] == '.' {
		l.pos--
	}
	if l.pos == start {
		return rdf.Term{}, l.errorf("empty blank node label")
	}
	return rdf.Blank(l.s[start:l.pos]), nil
}

func (l *lexer) literal() (rdf.Term, error) {
	l.pos++
	start := l.pos
	for l.pos < len(l.s) && l.s[l.pos] != '"' {
		if l.s[l.pos] == '\\' {
			l.pos++
		}
		l.pos++
	}
	if l.pos >= len(l.s) {
		return rdf.Term{}, l.errorf("unterminated literal")
	}
	value, err := unescape(l.s[start:l.pos])
	if err != nil {
		return rdf.Term{}, l.errorf("%v", err)
	}
	l.pos++

	t := rdf.Literal(value)
	switch {
	case strings.HasPrefix(l.s[l.pos:], "@"):
		l.pos++
		start := l.pos
		for l.pos < len(l.s) && (isAlnum(l.s[l.pos]) || l.s[l.pos] == '-') {
			l.pos++
		}
		if l.pos == start {
			return rdf.Term{}, l.errorf("empty language tag")
		}
		t.Lang = l.s[start:l.pos]
	case strings.HasPrefix(l.s[l.pos:], "^^"):
		l.pos += 2
		dt, err := l.iri()
		if err != nil {
			return rdf.Term{}, err
		}
		t.Datatype = dt.Value
	}
	return t, nil
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// unescape decodes ECHAR and UCHAR escapes.
func unescape(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", errors.New("dangling escape")
		}
		switch s[i] {
		case 't':
			b.WriteByte('\t')
		case 'b':
			b.WriteByte('\b')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 'f':
			b.WriteByte('\f')
		case '"', '\'', '\\':
			b.WriteByte(s[i])
		case 'u', 'U':
			size := 4
			if s[i] == 'U' {
				size = 8
			}
			if i+size >= len(s) {
				return "", fmt.Errorf("short \\%c escape", s[i])
			}
			r, err := strconv.ParseUint(s[i+1:i+1+size], 16, 32)
			if err != nil || !utf8.ValidRune(rune(r)) {
				return "", fmt.Errorf("invalid \\%c escape", s[i])
			}
			b.WriteRune(rune(r))
			i += size
		default:
			return "", fmt.Errorf("unknown escape \\%c", s[i])
		}
	}
	return b.String(), nil
}

// WriteNTriples writes every statement of g as N-Triples.
func WriteNTriples(g *rdf.Store, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, t := range g.Triples() {
		fmt.Fprintf(bw, "%s %s %s .\n", ntTerm(t.Subject), ntTerm(t.Predicate), ntTerm(t.Object))
	}
	return bw.Flush()
}

func ntTerm(t rdf.Term) string {
	switch t.Kind {
	case rdf.KindResource:
		return "<" + escapeIRI(t.Value) + ">"
	case rdf.KindBlank:
		return "_:" + t.Value
	default:
		s := `"` + escapeLiteral(t.Value) + `"`
		if t.Lang != "" {
			return s + "@" + t.Lang
		}
		if t.Datatype != "" {
			return s + "^^<" + escapeIRI(t.Datatype) + ">"
		}
		return s
	}
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\b", `\b`,
	"\f", `\f`,
)

func escapeLiteral(s string) string { return literalEscaper.Replace(s) }

func escapeIRI(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r <= 0x20 || strings.ContainsRune("<>\"{}|^`\\", r) {
			fmt.Fprintf(&b, `\u%04X`, r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
