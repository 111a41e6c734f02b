package credit

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/libcredit/pkg/i18n"
)

// recorder logs every formatter call as a short event string.
type recorder struct {
	events []string
}

func (r *recorder) Begin()                    { r.add("begin") }
func (r *recorder) End()                      { r.add("end") }
func (r *recorder) BeginSources(label string) { r.add("sources " + label) }
func (r *recorder) EndSources()               { r.add("/sources") }
func (r *recorder) BeginSource()              { r.add("source") }
func (r *recorder) EndSource()                { r.add("/source") }

func (r *recorder) AddTitle(text, url string) {
	r.add(fmt.Sprintf("title %s|%s", text, url))
}
func (r *recorder) AddAttrib(text, url string) {
	r.add(fmt.Sprintf("attrib %s|%s", text, url))
}
func (r *recorder) AddLicense(text, url string) {
	r.add(fmt.Sprintf("license %s|%s", text, url))
}
func (r *recorder) AddText(text string) { r.add("text " + text) }

func (r *recorder) add(e string) { r.events = append(r.events, e) }

// line concatenates the visible text of the recorded events.
func (r *recorder) line() string {
	var b strings.Builder
	for _, e := range r.events {
		kind, rest, _ := strings.Cut(e, " ")
		switch kind {
		case "text":
			b.WriteString(rest)
		case "title", "attrib", "license":
			text, _, _ := strings.Cut(rest, "|")
			b.WriteString(text)
		}
	}
	return b.String()
}

func format(t *testing.T, c *Credit, opts ...FormatOption) *recorder {
	t.Helper()
	r := &recorder{}
	if err := Format(c, r, opts...); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	return r
}

func TestFormatTemplates(t *testing.T) {
	title := Field{Text: "a title", URL: "http://src/"}
	attrib := Attribution{Names: []string{"someone"}}
	lic := Field{Text: "CC BY 4.0", URL: "http://creativecommons.org/licenses/by/4.0/"}

	tests := []struct {
		name   string
		credit *Credit
		want   string
	}{
		{"All", &Credit{Title: title, Attrib: attrib, License: lic}, "a title by someone (CC BY 4.0)."},
		{"TitleAttrib", &Credit{Title: title, Attrib: attrib}, "a title by someone."},
		{"TitleLicense", &Credit{Title: title, License: lic}, "a title (CC BY 4.0)."},
		{"Title", &Credit{Title: title}, "a title."},
		{"AttribLicense", &Credit{Attrib: attrib, License: lic}, "Credit: someone (CC BY 4.0)."},
		{"Attrib", &Credit{Attrib: attrib}, "Credit: someone."},
		{"License", &Credit{License: lic}, "License: CC BY 4.0."},
		{"Nothing", &Credit{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := format(t, tt.credit).line(); got != tt.want {
				t.Errorf("line = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatEvents(t *testing.T) {
	c := &Credit{
		Title:   Field{Text: "a title", URL: "http://src/"},
		Attrib:  Attribution{Names: []string{"name"}, URL: "http://attrib/"},
		License: Field{Text: "All rights reserved"},
	}
	want := []string{
		"begin",
		"title a title|http://src/",
		"text  by ",
		"attrib name|http://attrib/",
		"text  (",
		"license All rights reserved|",
		"text ).",
		"end",
	}
	if got := format(t, c).events; !reflect.DeepEqual(got, want) {
		t.Errorf("events =\n%q\nwant\n%q", got, want)
	}
}

func TestFormatMultipleAttrib(t *testing.T) {
	c := &Credit{
		Title:  Field{Text: "t"},
		Attrib: Attribution{Names: []string{"a", "b", "c"}, URL: "http://x/"},
	}
	r := format(t, c)
	if got := r.line(); got != "t by a, b, c." {
		t.Errorf("line = %q", got)
	}
	attribs := 0
	for _, e := range r.events {
		if strings.HasPrefix(e, "attrib ") {
			attribs++
			if !strings.HasSuffix(e, "|http://x/") {
				t.Errorf("attrib event %q lost its URL", e)
			}
		}
	}
	if attribs != 3 {
		t.Errorf("got %d attrib events, want 3", attribs)
	}
}

func tree() *Credit {
	return &Credit{
		Title: Field{Text: "root"},
		Sources: []*Credit{
			{
				Title:   Field{Text: "child"},
				Sources: []*Credit{{Title: Field{Text: "grandchild"}}},
			},
		},
	}
}

func TestFormatSourceDepth(t *testing.T) {
	tests := []struct {
		depth int
		want  []string
	}{
		{0, []string{"begin", "title root|", "text .", "end"}},
		{-3, []string{"begin", "title root|", "text .", "end"}},
		{1, []string{
			"begin", "title root|", "text .",
			"sources Source:",
			"source", "begin", "title child|", "text .", "end", "/source",
			"/sources",
			"end",
		}},
		{2, []string{
			"begin", "title root|", "text .",
			"sources Source:",
			"source", "begin", "title child|", "text .",
			"sources Source:",
			"source", "begin", "title grandchild|", "text .", "end", "/source",
			"/sources",
			"end", "/source",
			"/sources",
			"end",
		}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.depth), func(t *testing.T) {
			got := format(t, tree(), WithSourceDepth(tt.depth)).events
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("events =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestFormatDefaultDepth(t *testing.T) {
	got := format(t, tree()).events
	want := format(t, tree(), WithSourceDepth(DefaultSourceDepth)).events
	if !reflect.DeepEqual(got, want) {
		t.Errorf("default depth differs from DefaultSourceDepth")
	}
}

func TestFormatSourcesLabel(t *testing.T) {
	c := &Credit{Title: Field{Text: "root"}}
	c.Sources = []*Credit{{Title: Field{Text: "one"}}}
	if !containsEvent(format(t, c).events, "sources Source:") {
		t.Error("single source should use the singular label")
	}

	c.Sources = append(c.Sources, &Credit{Title: Field{Text: "two"}})
	if !containsEvent(format(t, c).events, "sources Sources:") {
		t.Error("two sources should use the plural label")
	}
}

func TestFormatSourcesWithoutFields(t *testing.T) {
	c := &Credit{Sources: []*Credit{{License: Field{Text: "PD"}}}}
	want := []string{
		"begin",
		"sources Source:",
		"source", "begin", "text License: ", "license PD|", "text .", "end", "/source",
		"/sources",
		"end",
	}
	if got := format(t, c).events; !reflect.DeepEqual(got, want) {
		t.Errorf("events =\n%q\nwant\n%q", got, want)
	}
}

func TestFormatIdempotent(t *testing.T) {
	c := tree()
	first := format(t, c, WithSourceDepth(2)).events
	second := format(t, c, WithSourceDepth(2)).events
	if !reflect.DeepEqual(first, second) {
		t.Error("formatting the same credit twice produced different events")
	}
}

func TestFormatNil(t *testing.T) {
	r := &recorder{}
	if err := Format(nil, r); err != nil {
		t.Fatalf("Format(nil) error = %v", err)
	}
	if len(r.events) != 0 {
		t.Errorf("Format(nil) produced %q", r.events)
	}
}

func TestFormatSwedish(t *testing.T) {
	sv, err := i18n.Load("sv")
	if err != nil {
		t.Fatalf("Load(sv) error = %v", err)
	}

	c := &Credit{
		Title:  Field{Text: "Bild"},
		Attrib: Attribution{Names: []string{"Anna"}},
		Sources: []*Credit{
			{Attrib: Attribution{Names: []string{"Bo"}}},
			{License: Field{Text: "CC0 1.0"}},
		},
	}
	r := format(t, c, WithTranslator(sv))
	if got := r.line(); got != "Bild av Anna.Upphov: Bo.Licens: CC0 1.0." {
		t.Errorf("line = %q", got)
	}
	if !containsEvent(r.events, "sources Källor:") {
		t.Errorf("plural Swedish label missing from %q", r.events)
	}

	c.Sources = c.Sources[:1]
	if !containsEvent(format(t, c, WithTranslator(sv)).events, "sources Källa:") {
		t.Error("singular Swedish label missing")
	}
}

func TestFormatNilTranslator(t *testing.T) {
	c := &Credit{Title: Field{Text: "t"}}
	if got := format(t, c, WithTranslator(nil)).line(); got != "t." {
		t.Errorf("line = %q, want t.", got)
	}
}

// brokenTranslator maps every template to one with an unknown placeholder.
type brokenTranslator struct{}

func (brokenTranslator) Translate(key string) i18n.Translation {
	return i18n.NewTranslation(brokenCatalog{}, key)
}

type brokenCatalog struct{}

func (brokenCatalog) Gettext(_, msgid string) (string, bool) {
	if strings.Contains(msgid, "<") {
		return "<title> <year>", true
	}
	return "", false
}

func (brokenCatalog) NGettext(string, string, string, int) (string, bool) {
	return "", false
}

func TestFormatUnknownPlaceholder(t *testing.T) {
	r := &recorder{}
	err := Format(tree(), r, WithTranslator(brokenTranslator{}))
	if !errors.Is(err, ErrUnknownPlaceholder) {
		t.Fatalf("Format() error = %v, want ErrUnknownPlaceholder", err)
	}
	if !strings.Contains(err.Error(), "<year>") {
		t.Errorf("error %q does not name the placeholder", err)
	}
	if len(r.events) != 0 {
		t.Errorf("formatter received %q before the error", r.events)
	}
}

func TestCreditFormatMethod(t *testing.T) {
	c := &Credit{License: Field{Text: "MIT"}}
	r := &recorder{}
	if err := c.Format(r, WithSourceDepth(0)); err != nil {
		t.Fatal(err)
	}
	if got := r.line(); got != "License: MIT." {
		t.Errorf("line = %q", got)
	}
}

func containsEvent(events []string, want string) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}
