package i18n

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// Domain is the message domain used by credit formatting.
const Domain = "libcredit"

// Sentinel errors for catalog loading.
var (
	// ErrUnknownLanguage is returned when no catalog exists for a language.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrInvalidCatalog is returned for catalogs that fail validation.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

//go:embed locales/*.toml
var embedded embed.FS

type catalogFile struct {
	Language string    `toml:"language"`
	Domain   string    `toml:"domain"`
	Plural   string    `toml:"plural"`
	Messages []message `toml:"messages"`
}

type message struct {
	ID        string   `toml:"id"`
	IDPlural  string   `toml:"id_plural"`
	Str       string   `toml:"str"`
	StrPlural []string `toml:"str_plural"`
}

// Locale is a parsed catalog for one language and domain. It implements
// both [Catalog] and [Translator].
type Locale struct {
	language string
	domain   string
	plural   pluralRule
	singular map[string]string
	plurals  map[string][]string
	digest   string
}

// Language returns the catalog's language tag.
func (l *Locale) Language() string { return l.language }

// Digest identifies the catalog contents; it changes whenever the catalog
// source does.
func (l *Locale) Digest() string { return l.digest }

// Translate starts a lookup against this locale.
func (l *Locale) Translate(key string) Translation {
	return NewTranslation(l, key)
}

// Gettext implements Catalog.
func (l *Locale) Gettext(domain, msgid string) (string, bool) {
	if !l.inDomain(domain) {
		return "", false
	}
	s, ok := l.singular[msgid]
	return s, ok
}

// NGettext implements Catalog.
func (l *Locale) NGettext(domain, msgid, msgidPlural string, n int) (string, bool) {
	if !l.inDomain(domain) {
		return "", false
	}
	forms, ok := l.plurals[msgid]
	if !ok {
		return "", false
	}
	i := l.plural.index(n)
	if i >= len(forms) {
		return "", false
	}
	return forms[i], true
}

func (l *Locale) inDomain(domain string) bool {
	return domain == "" || domain == l.domain
}

// Parse decodes a TOML catalog.
func Parse(data []byte) (*Locale, error) {
	var f catalogFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if f.Language == "" {
		return nil, fmt.Errorf("%w: missing language", ErrInvalidCatalog)
	}
	if f.Domain == "" {
		f.Domain = Domain
	}
	rule, err := parsePluralRule(f.Plural)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	l := &Locale{
		language: f.Language,
		domain:   f.Domain,
		plural:   rule,
		singular: make(map[string]string),
		plurals:  make(map[string][]string),
	}
	sum := sha256.Sum256(data)
	l.digest = hex.EncodeToString(sum[:])
	for _, m := range f.Messages {
		if m.ID == "" {
			return nil, fmt.Errorf("%w: message without id", ErrInvalidCatalog)
		}
		if m.IDPlural != "" {
			if len(m.StrPlural) < rule.forms() {
				return nil, fmt.Errorf("%w: %q needs %d plural forms, has %d",
					ErrInvalidCatalog, m.ID, rule.forms(), len(m.StrPlural))
			}
			l.plurals[m.ID] = m.StrPlural
			continue
		}
		l.singular[m.ID] = m.Str
	}
	return l, nil
}

// LoadFile reads a catalog from a file.
func LoadFile(name string) (*Locale, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return l, nil
}

// Load returns the embedded catalog for lang. Locale strings such as
// "sv_SE.UTF-8" are reduced to their language part.
func Load(lang string) (*Locale, error) {
	return loadFS(embedded, "locales", lang)
}

// LoadDir returns the catalog for lang from dir, which holds files named
// <language>.toml.
func LoadDir(dir, lang string) (*Locale, error) {
	return loadFS(os.DirFS(dir), ".", lang)
}

func loadFS(fsys fs.FS, dir, lang string) (*Locale, error) {
	code := Normalize(lang)
	data, err := fs.ReadFile(fsys, path.Join(dir, code+".toml"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, lang)
	}
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Languages lists the embedded catalog languages.
func Languages() []string {
	entries, err := fs.ReadDir(embedded, "locales")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".toml"); ok {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

// Normalize reduces a POSIX locale or BCP 47 tag to its lower-case
// language part: "sv_SE.UTF-8" and "sv-SE" both become "sv".
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "_-.@"); i >= 0 {
		lang = lang[:i]
	}
	return lang
}
