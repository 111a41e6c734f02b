package errors

import (
	"strings"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "graph.json", false},
		{"nested", "testdata/graph.ttl", false},
		{"absolute", "/etc/libcredit/catalogs", false},
		{"dots in name", "v1..2.json", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"traversal", "catalogs/../../etc", true},
		{"windows traversal", "catalogs\\..\\etc", true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) code = %v", tt.input, GetCode(err))
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"http", "http://example.org/photo", false},
		{"https", "https://www.flickr.com/photos/x/1/", false},

		{"empty", "", true},
		{"ftp", "ftp://example.org/", true},
		{"relative", "/photo", true},
		{"no host", "http:///photo", true},
		{"bad escape", "http://example.org/%zz", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSubject(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"document", "", false},
		{"iri", "http://example.org/photo#it", false},
		{"urn", "urn:isbn:0451450523", false},
		{"blank", "_:b0", false},

		{"space", "http://example.org/a b", true},
		{"angle", "<http://example.org/>", true},
		{"bare blank", "_:", true},
		{"too long", "urn:" + strings.Repeat("x", 2048), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSubject(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSubject(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLanguage(t *testing.T) {
	for _, ok := range []string{"", "sv", "fr", "pt-BR", "de_DE", "zh-Hant-TW"} {
		if err := ValidateLanguage(ok); err != nil {
			t.Errorf("ValidateLanguage(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"s", "sv/../../x", "english language", "1x"} {
		if err := ValidateLanguage(bad); !Is(err, ErrCodeInvalidLanguage) {
			t.Errorf("ValidateLanguage(%q) = %v, want INVALID_LANGUAGE", bad, err)
		}
	}
}

func TestValidateFormat(t *testing.T) {
	allowed := []string{"text", "html"}
	if err := ValidateFormat("html", allowed); err != nil {
		t.Errorf("ValidateFormat(html) = %v", err)
	}
	err := ValidateFormat("pdf", allowed)
	if !Is(err, ErrCodeInvalidFormat) {
		t.Fatalf("ValidateFormat(pdf) = %v", err)
	}
	if !strings.Contains(err.Error(), "text, html") {
		t.Errorf("error %q does not list valid formats", err)
	}
}
