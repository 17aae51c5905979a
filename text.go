package styledtext

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
	"slices"
	"unicode/utf8"
)

// Text is a styled text: a flat UTF-8 buffer together with a collection of
// style spans. Its text and its spans are automatically synchronized.
//
// A text created by
//
//	Text{}
//
// is a valid object and behaves like the empty string.
//
// Methods that take or return positions use byte offsets.
type Text struct {
	buf   []byte
	spans []Span
}

// TextFromString creates a stylable text from a string.
func TextFromString(s string) *Text {
	return &Text{buf: []byte(s)}
}

// TextFromText creates a deep copy of a styled text. The copy's spans are
// independent descriptors; mutating the copy never affects the original.
func TextFromText(t *Text) *Text {
	if t == nil {
		return &Text{}
	}
	c := &Text{
		buf:   append([]byte(nil), t.buf...),
		spans: append([]Span(nil), t.spans...),
	}
	return c
}

// String returns the complete text as a Go string, without any styles.
func (t *Text) String() string {
	if t == nil {
		return ""
	}
	return string(t.buf)
}

// Len returns the text length in bytes.
func (t *Text) Len() uint64 {
	if t == nil {
		return 0
	}
	return uint64(len(t.buf))
}

// IsVoid reports whether the text has no bytes.
func (t *Text) IsVoid() bool {
	return t.Len() == 0
}

// CharCount returns the number of UTF-8 runes in the text.
func (t *Text) CharCount() uint64 {
	if t == nil {
		return 0
	}
	return uint64(utf8.RuneCount(t.buf))
}

// Report outputs a substring: Report(i,l) => outputs the bytes bi,...,bi+l-1.
func (t *Text) Report(i, l uint64) (string, error) {
	if i+l > t.Len() {
		return "", ErrIndexOutOfBounds
	}
	return string(t.buf[i : i+l]), nil
}

// Section copies a piece of styled text, delimited by parameters from and to.
// Spans overlapping the section boundaries are clipped to the section.
func Section(t *Text, from, to uint64) (*Text, error) {
	if from > to || to > t.Len() {
		return nil, ErrIndexOutOfBounds
	}
	section := &Text{buf: append([]byte(nil), t.buf[from:to]...)}
	for _, spn := range t.spans {
		if spn.To <= from || spn.From >= to {
			continue
		}
		l, r := spn.From, spn.To
		if l < from {
			l = from
		}
		if r > to {
			r = to
		}
		section.spans = append(section.spans, Span{
			Style: spn.Style,
			From:  l - from,
			To:    r - from,
			Mode:  spn.Mode,
		})
	}
	return section, nil
}

// Style styles a run of text, given the start and end position. Given range
// boundaries will silently be restricted to valid text positions without
// flagging an error. This may result in the style not being applied due to
// an invalid range.
func (t *Text) Style(sty Style, from, to uint64) *Text {
	if from > to {
		from, to = to, from
	}
	spn := Span{Style: sty, From: from, To: to, Mode: ExclusiveExclusive}.contained(t.Len())
	if spn.void() {
		tracer().Errorf("styled text: illegal span for style, cannot style")
		return t
	}
	t.Attach(spn)
	return t
}

// Attach adds a span to the text. The span's range is silently clamped to
// valid text positions; a void span is dropped.
func (t *Text) Attach(spn Span) *Text {
	spn = spn.contained(t.Len())
	if spn.void() {
		return t
	}
	t.spans = append(t.spans, spn)
	sortSpans(t.spans)
	return t
}

// Spans returns a copy of the text's style spans, in canonical order.
func (t *Text) Spans() []Span {
	if t == nil || len(t.spans) == 0 {
		return nil
	}
	return append([]Span(nil), t.spans...)
}

// SpanCount returns the number of style spans attached to the text.
func (t *Text) SpanCount() int {
	if t == nil {
		return 0
	}
	return len(t.spans)
}

// StylesAt returns all styles covering byte position pos.
func (t *Text) StylesAt(pos uint64) []Style {
	var styles []Style
	for _, spn := range t.spans {
		if spn.From <= pos && pos < spn.To {
			styles = append(styles, spn.Style)
		}
	}
	return styles
}

// EachSpan applies a function to each span of the text, in canonical order.
// Iteration stops at the first callback error and returns that error to
// the caller.
func (t *Text) EachSpan(f func(Span) error) error {
	for _, spn := range t.spans {
		if err := f(spn); err != nil {
			return err
		}
	}
	return nil
}

// RangeSpans returns an iterator over all spans in canonical order.
func (t *Text) RangeSpans() iter.Seq[Span] {
	return func(yield func(Span) bool) {
		for _, spn := range t.spans {
			if !yield(spn) {
				return
			}
		}
	}
}

// EachStyledRun applies a function to each run of uniformly styled text.
// pos is the text position of this run of text within the overall styled
// text. Unstyled runs are reported with a nil style slice. Since spans may
// overlap, a run can carry more than one style.
//
// This may be thought of as a “push”-interface to access style runs for a
// text; it is the interface output drivers work with.
func (t *Text) EachStyledRun(f func(content string, styles []Style, pos uint64) error) error {
	if t.IsVoid() {
		return nil
	}
	cuts := t.runBoundaries()
	for i := 0; i+1 < len(cuts); i++ {
		a, b := cuts[i], cuts[i+1]
		var styles []Style
		for _, spn := range t.spans {
			if spn.From <= a && b <= spn.To {
				styles = append(styles, spn.Style)
			}
		}
		if err := f(string(t.buf[a:b]), styles, a); err != nil {
			return err
		}
	}
	return nil
}

// runBoundaries collects the sorted, de-duplicated cut positions which
// partition the text into uniformly styled runs, always including 0 and
// the text length.
func (t *Text) runBoundaries() []uint64 {
	cuts := make([]uint64, 0, 2+2*len(t.spans))
	cuts = append(cuts, 0, t.Len())
	for _, spn := range t.spans {
		cuts = append(cuts, spn.From, spn.To)
	}
	slices.Sort(cuts)
	return slices.Compact(cuts)
}
