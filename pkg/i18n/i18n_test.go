package i18n

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestTranslationFallback(t *testing.T) {
	tr := Untranslated{}

	if got := tr.Translate("<title>.").OnDomain(Domain).Fetch(); got != "<title>." {
		t.Errorf("Fetch() = %q, want untranslated id", got)
	}

	tests := []struct {
		n    int
		want string
	}{
		{0, "Sources:"},
		{1, "Source:"},
		{2, "Sources:"},
		{7, "Sources:"},
	}
	for _, tt := range tests {
		got := tr.Translate("Source:").OnDomain(Domain).IfPlural(tt.n, "Sources:").Fetch()
		if got != tt.want {
			t.Errorf("plural fallback n=%d: got %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestZeroTranslation(t *testing.T) {
	var tr Translation
	if got := tr.Fetch(); got != "" {
		t.Errorf("zero Translation Fetch() = %q, want empty", got)
	}
}

func TestLoadSwedish(t *testing.T) {
	sv, err := Load("sv_SE.UTF-8")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sv.Language() != "sv" {
		t.Errorf("Language() = %q, want sv", sv.Language())
	}

	got := sv.Translate("<title> by <attrib> (<license>).").OnDomain(Domain).Fetch()
	if got != "<title> av <attrib> (<license>)." {
		t.Errorf("template translation = %q", got)
	}

	one := sv.Translate("Source:").OnDomain(Domain).IfPlural(1, "Sources:").Fetch()
	two := sv.Translate("Source:").OnDomain(Domain).IfPlural(2, "Sources:").Fetch()
	if one != "Källa:" || two != "Källor:" {
		t.Errorf("plural forms = %q, %q; want Källa:, Källor:", one, two)
	}

	// Other domains fall back to the id.
	if got := sv.Translate("<title>.").OnDomain("other").Fetch(); got != "<title>." {
		t.Errorf("foreign domain = %q, want id", got)
	}
	// Unknown ids fall back to the id.
	if got := sv.Translate("unknown").OnDomain(Domain).Fetch(); got != "unknown" {
		t.Errorf("unknown id = %q", got)
	}
}

func TestFrenchPluralRule(t *testing.T) {
	fr, err := Load("fr")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// "n > 1": zero takes the singular form.
	if got := fr.Translate("Source:").OnDomain(Domain).IfPlural(0, "Sources:").Fetch(); got != "Source :" {
		t.Errorf("n=0 got %q, want singular", got)
	}
	if got := fr.Translate("Source:").OnDomain(Domain).IfPlural(3, "Sources:").Fetch(); got != "Sources :" {
		t.Errorf("n=3 got %q, want plural", got)
	}
}

func TestLoadUnknown(t *testing.T) {
	_, err := Load("xx")
	if !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("Load(xx) error = %v, want ErrUnknownLanguage", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"NoLanguage", `domain = "libcredit"`},
		{"BadRule", "language = \"xx\"\nplural = \"n % 10\""},
		{"MissingForms", "language = \"xx\"\n[[messages]]\nid = \"a\"\nid_plural = \"b\"\nstr_plural = [\"only\"]"},
		{"NoID", "language = \"xx\"\n[[messages]]\nstr = \"x\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); !errors.Is(err, ErrInvalidCatalog) {
				t.Errorf("Parse() error = %v, want ErrInvalidCatalog", err)
			}
		})
	}

	if _, err := Parse([]byte("not = [toml")); err == nil {
		t.Error("Parse() should fail on malformed TOML")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	data := "language = \"de\"\n[[messages]]\nid = \"<title>.\"\nstr = \"<title>.\"\n" +
		"[[messages]]\nid = \"Source:\"\nid_plural = \"Sources:\"\nstr_plural = [\"Quelle:\", \"Quellen:\"]\n"
	if err := os.WriteFile(filepath.Join(dir, "de.toml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	de, err := LoadDir(dir, "de-DE")
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if got := de.Translate("Source:").OnDomain(Domain).IfPlural(2, "Sources:").Fetch(); got != "Quellen:" {
		t.Errorf("got %q, want Quellen:", got)
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	if len(langs) != 2 || langs[0] != "fr" || langs[1] != "sv" {
		t.Errorf("Languages() = %v, want [fr sv]", langs)
	}
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"sv_SE.UTF-8": "sv",
		"sv-SE":       "sv",
		"SV":          "sv",
		" fr ":        "fr",
		"de@euro":     "de",
		"":            "",
	}
	for in, want := range tests {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}
