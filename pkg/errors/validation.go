package errors

import (
	"net/url"
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// ValidatePath validates a file path supplied to the server or read from
// configuration.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	for _, part := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	return nil
}

// ValidateURL validates a page URL before it is fetched. It must be an
// absolute http or https URL with a host.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidURL, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidURL, "URL must use http or https scheme")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidURL, err, "malformed URL")
	}
	if u.Host == "" {
		return New(ErrCodeInvalidURL, "URL has no host")
	}

	return nil
}

// ValidateSubject validates a subject IRI or blank node label ("_:x").
// The empty string is valid and selects the document subject.
func ValidateSubject(subject string) error {
	if len(subject) > 2048 {
		return New(ErrCodeInvalidSubject, "subject too long (max 2048 characters)")
	}
	for _, r := range subject {
		if unicode.IsSpace(r) || unicode.IsControl(r) || strings.ContainsRune("<>\"{}|^`\\", r) {
			return New(ErrCodeInvalidSubject, "subject contains invalid character %q", r)
		}
	}
	if subject == "_:" {
		return New(ErrCodeInvalidSubject, "blank node subject needs a label")
	}
	return nil
}

// languageTagRegex matches simple BCP 47 / POSIX locale names such as
// "sv", "pt-BR" or "de_DE".
var languageTagRegex = regexp.MustCompile(`^[A-Za-z]{2,3}([-_][A-Za-z0-9]{2,8})*$`)

// ValidateLanguage validates a language tag. The empty string is valid and
// means untranslated output.
func ValidateLanguage(lang string) error {
	if lang == "" || languageTagRegex.MatchString(lang) {
		return nil
	}
	return New(ErrCodeInvalidLanguage, "invalid language tag: %q", lang)
}

// ValidateFormat checks that name is one of allowed.
func ValidateFormat(name string, allowed []string) error {
	if slices.Contains(allowed, name) {
		return nil
	}
	return New(ErrCodeInvalidFormat, "unknown format %q (valid: %s)", name, strings.Join(allowed, ", "))
}
