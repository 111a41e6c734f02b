package credit

import (
	"errors"

	"github.com/matzehuels/libcredit/pkg/i18n"
)

// ErrUnknownPlaceholder is returned by Format when a (possibly translated)
// template contains a placeholder other than <title>, <attrib> or
// <license>.
var ErrUnknownPlaceholder = errors.New("unknown placeholder")

// DefaultSourceDepth renders immediate sources but not their sources.
const DefaultSourceDepth = 1

type formatConfig struct {
	depth      int
	translator i18n.Translator
}

// FormatOption configures Format.
type FormatOption func(*formatConfig)

// WithSourceDepth sets how many source levels are rendered. Zero (or a
// negative value) renders no sources at all.
func WithSourceDepth(depth int) FormatOption {
	return func(c *formatConfig) { c.depth = max(depth, 0) }
}

// WithTranslator translates templates and source labels with t in the
// i18n.Domain domain. A nil t leaves messages untranslated.
func WithTranslator(t i18n.Translator) FormatOption {
	return func(c *formatConfig) {
		if t != nil {
			c.translator = t
		}
	}
}

// line is one tokenized record, ready to be emitted.
type line struct {
	tokens  []token
	label   string
	sources []*line
}

// Format renders c with f. A nil c produces no calls. The record tree is
// tokenized up front; if any template is malformed Format returns an error
// wrapping ErrUnknownPlaceholder before calling f.
func Format(c *Credit, f Formatter, opts ...FormatOption) error {
	if c == nil {
		return nil
	}
	cfg := formatConfig{
		depth:      DefaultSourceDepth,
		translator: i18n.Untranslated{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	l, err := compose(c, cfg.depth, cfg.translator)
	if err != nil {
		return err
	}
	l.emit(f)
	return nil
}

func compose(c *Credit, depth int, tr i18n.Translator) (*line, error) {
	l := &line{}

	if tmpl := Template(c.HasTitle(), c.HasAttrib(), c.HasLicense()); tmpl != "" {
		tmpl = tr.Translate(tmpl).OnDomain(i18n.Domain).Fetch()
		tokens, err := tokenize(tmpl, c)
		if err != nil {
			return nil, err
		}
		l.tokens = tokens
	}

	if depth > 0 && len(c.Sources) > 0 {
		l.label = tr.Translate(SourceLabel).
			OnDomain(i18n.Domain).
			IfPlural(len(c.Sources), SourcesLabel).
			Fetch()
		l.sources = make([]*line, 0, len(c.Sources))
		for _, s := range c.Sources {
			sl, err := compose(s, depth-1, tr)
			if err != nil {
				return nil, err
			}
			l.sources = append(l.sources, sl)
		}
	}
	return l, nil
}

func (l *line) emit(f Formatter) {
	f.Begin()
	for _, t := range l.tokens {
		switch t.kind {
		case tokenTitle:
			f.AddTitle(t.text, t.url)
		case tokenAttrib:
			f.AddAttrib(t.text, t.url)
		case tokenLicense:
			f.AddLicense(t.text, t.url)
		default:
			f.AddText(t.text)
		}
	}
	if len(l.sources) > 0 {
		f.BeginSources(l.label)
		for _, s := range l.sources {
			f.BeginSource()
			s.emit(f)
			f.EndSource()
		}
		f.EndSources()
	}
	f.End()
}
