package sprintf

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/styledtext"
	"golang.org/x/text/language"
)

func format(t *testing.T, template string, args ...interface{}) *styledtext.Text {
	t.Helper()
	out, err := FormatLocale(language.Und, styledtext.TextFromString(template), args...)
	if err != nil {
		t.Fatalf("format %q: %v", template, err)
	}
	return out
}

func TestPlainFormattingMatchesFmt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	// for plain templates and arguments the result must equal what the
	// conversion primitive produces on its own
	cases := []struct {
		template string
		args     []interface{}
	}{
		{"no specifiers at all", nil},
		{"%d items", []interface{}{3}},
		{"%s-%s", []interface{}{"a", "b"}},
		{"pi = %6.3f", []interface{}{3.14159}},
		{"hex %x, octal %o", []interface{}{255, 8}},
		{"padded %-5d|", []interface{}{42}},
	}
	for _, c := range cases {
		out := format(t, c.template, c.args...)
		want := fmt.Sprintf(c.template, c.args...)
		if out.String() != want {
			t.Errorf("template %q: expected %q, have %q", c.template, want, out.String())
		}
	}
}

func TestPositionalArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	out := format(t, "%2$s %1$s", "x", "y")
	if out.String() != "y x" {
		t.Errorf("expected 'y x', have %q", out.String())
	}
}

func TestSequentialIndices(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	out := format(t, "%s-%s", "a", "b")
	if out.String() != "a-b" {
		t.Errorf("expected 'a-b', have %q", out.String())
	}
}

func TestRelativeReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	out := format(t, "%1$s and %<s", "x")
	if out.String() != "x and x" {
		t.Errorf("expected 'x and x', have %q", out.String())
	}
	// an explicit index re-targets the base for following relative terms
	out = format(t, "%2$d twice %<d", 1, 7)
	if out.String() != "7 twice 7" {
		t.Errorf("expected '7 twice 7', have %q", out.String())
	}
}

func TestLiteralEscapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	out := format(t, "100%% done\n")
	if out.String() != "100% done\n" {
		t.Errorf("expected '100%% done\\n', have %q", out.String())
	}
	out = format(t, "a%nb")
	if out.String() != "a\nb" {
		t.Errorf("expected %%n to produce a newline, have %q", out.String())
	}
}

func TestStyledArgumentPreservation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	link := styledtext.TextFromString("link")
	link.Style(teststyle("clickable"), 0, link.Len())
	out, err := FormatLocale(language.Und, styledtext.TextFromString("Click %s"), link)
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "Click link" {
		t.Errorf("expected 'Click link', have %q", out.String())
	}
	spans := out.Spans()
	if len(spans) != 1 {
		t.Fatalf("expected exactly 1 span in the result, have %d", len(spans))
	}
	if spans[0].From != 6 || spans[0].To != 10 {
		t.Errorf("expected span to cover 6…10, have %d…%d", spans[0].From, spans[0].To)
	}
	if len(out.StylesAt(3)) != 0 {
		t.Errorf("expected no style outside the substituted range")
	}
}

func TestTemplateSpansPreserved(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	template := styledtext.TextFromString("Hello %s!")
	template.Style(teststyle("bold"), 0, 5)   // "Hello"
	template.Style(teststyle("italic"), 8, 9) // "!"
	out, err := FormatLocale(language.Und, template, "world")
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "Hello world!" {
		t.Errorf("expected 'Hello world!', have %q", out.String())
	}
	spans := out.Spans()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, have %d", len(spans))
	}
	if spans[0].From != 0 || spans[0].To != 5 {
		t.Errorf("expected untouched span 0…5, have %d…%d", spans[0].From, spans[0].To)
	}
	if spans[1].From != 11 || spans[1].To != 12 {
		t.Errorf("expected trailing span to shift to 11…12, have %d…%d", spans[1].From, spans[1].To)
	}
	// the template itself must be untouched
	if template.String() != "Hello %s!" {
		t.Errorf("expected template to be unchanged, have %q", template.String())
	}
}

func TestDuplicateUseLimitation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	// a styled argument's spans can be included only once in the result;
	// duplicates appear as text only
	styled := styledtext.TextFromString("dup")
	styled.Style(teststyle("bold"), 0, 3)
	out, err := FormatLocale(language.Und, styledtext.TextFromString("%1$s %1$s"), styled)
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "dup dup" {
		t.Errorf("expected 'dup dup', have %q", out.String())
	}
	spans := out.Spans()
	if len(spans) != 1 {
		t.Fatalf("expected exactly 1 span, have %d", len(spans))
	}
	if spans[0].From != 0 || spans[0].To != 3 {
		t.Errorf("expected the first occurrence to carry the span, have %d…%d", spans[0].From, spans[0].To)
	}
}

func TestIndexOutOfRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	_, err := FormatLocale(language.Und, styledtext.TextFromString("%2$s"), "only one")
	if !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, have %v", err)
	}
	_, err = FormatLocale(language.Und, styledtext.TextFromString("%s %s"), "just one")
	if !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds for exhausted arguments, have %v", err)
	}
}

func TestRelativeBeforeConsumption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	// %< before any consumption resolves to index -1; this is fatal, not
	// a silent no-op
	_, err := FormatLocale(language.Und, styledtext.TextFromString("%<s"), "x")
	if !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, have %v", err)
	}
}

func TestMalformedExplicitIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	_, err := FormatLocale(language.Und, styledtext.TextFromString("%99999999999999999999$d"), 1)
	if !errors.Is(err, ErrMalformedSpecifier) {
		t.Errorf("expected ErrMalformedSpecifier, have %v", err)
	}
}

func TestUnsupportedConversion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	_, err := FormatLocale(language.Und, styledtext.TextFromString("%d"), "not a number")
	if !errors.Is(err, ErrUnsupportedConversion) {
		t.Errorf("expected ErrUnsupportedConversion, have %v", err)
	}
}

func TestArgumentContainingConversionMarker(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	out, err := FormatLocale(language.Und, styledtext.TextFromString("%s"), "100%! sure")
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "100%! sure" {
		t.Errorf("expected the argument to pass through unchanged, have %q", out.String())
	}
	// a genuinely bad pairing must still be caught, marker in the argument or not
	_, err = FormatLocale(language.Und, styledtext.TextFromString("%d"), "100%! sure")
	if !errors.Is(err, ErrUnsupportedConversion) {
		t.Errorf("expected ErrUnsupportedConversion, have %v", err)
	}
}

func TestIdempotenceWithoutSpecifiers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	template := styledtext.TextFromString("plain rich text")
	template.Style(teststyle("bold"), 6, 10)
	out, err := FormatLocale(language.Und, template, "ignored")
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != template.String() {
		t.Errorf("expected content unchanged, have %q", out.String())
	}
	spans := out.Spans()
	if len(spans) != 1 || spans[0].From != 6 || spans[0].To != 10 {
		t.Errorf("expected pre-existing span untouched, have %v", spans)
	}
}

func TestArgumentsAreNotRescanned(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	// argument content is untrusted with respect to the format grammar
	out := format(t, "%s end", "%d")
	if out.String() != "%d end" {
		t.Errorf("expected '%%d end', have %q", out.String())
	}
}

func TestExtraArgumentsIgnored(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	out := format(t, "%s", "a", "b", "c")
	if out.String() != "a" {
		t.Errorf("expected extra arguments to be ignored, have %q", out.String())
	}
}

func TestLocaleAwareConversion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	out, err := FormatLocale(language.German, styledtext.TextFromString("%d"), 1234567)
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "1.234.567" {
		t.Errorf("expected German digit grouping '1.234.567', have %q", out.String())
	}
}

// --- Test Helpers ----------------------------------------------------------

type mystyle []string

func teststyle(sty string) mystyle {
	return mystyle{sty}
}

func (sty mystyle) Equals(other styledtext.Style) bool {
	o, ok := other.(mystyle)
	if !ok || len(sty) != len(o) {
		return false
	}
	for i, s := range o {
		if s != sty[i] {
			return false
		}
	}
	return true
}

func (sty mystyle) String() string {
	return fmt.Sprintf("%v", []string(sty))
}

var _ styledtext.Style = mystyle{}
