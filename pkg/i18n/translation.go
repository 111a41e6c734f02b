package i18n

// Translator is the capability consumed by credit formatting.
type Translator interface {
	Translate(key string) Translation
}

// Catalog resolves message ids for one language.
type Catalog interface {
	// Gettext returns the translation of msgid in domain.
	Gettext(domain, msgid string) (string, bool)

	// NGettext returns the plural form of msgid selected by n.
	NGettext(domain, msgid, msgidPlural string, n int) (string, bool)
}

// Translation is a pending message lookup. The zero value, and any
// Translation built from a nil Catalog, fetches the untranslated text.
type Translation struct {
	catalog   Catalog
	key       string
	pluralKey string
	domain    string
	count     int
	plural    bool
}

// NewTranslation starts a lookup of key against catalog, which may be nil.
func NewTranslation(catalog Catalog, key string) Translation {
	return Translation{catalog: catalog, key: key}
}

// OnDomain selects the message domain.
func (t Translation) OnDomain(name string) Translation {
	t.domain = name
	return t
}

// IfPlural turns the lookup into a plural lookup selected by count.
func (t Translation) IfPlural(count int, pluralKey string) Translation {
	t.count = count
	t.pluralKey = pluralKey
	t.plural = true
	return t
}

// Fetch resolves the lookup.
func (t Translation) Fetch() string {
	if t.catalog != nil {
		if t.plural {
			if s, ok := t.catalog.NGettext(t.domain, t.key, t.pluralKey, t.count); ok {
				return s
			}
		} else if s, ok := t.catalog.Gettext(t.domain, t.key); ok {
			return s
		}
	}
	if t.plural && t.count != 1 {
		return t.pluralKey
	}
	return t.key
}

// Untranslated is a Translator that never translates.
type Untranslated struct{}

// Translate returns a lookup with no catalog.
func (Untranslated) Translate(key string) Translation {
	return NewTranslation(nil, key)
}
