package styledtext

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "bytes"

// TextBuilder is for building styled text from styled fragments.
type TextBuilder struct {
	buf   bytes.Buffer
	spans []Span
	done  bool
}

// NewTextBuilder creates a new and empty builder for styledtext.Text.
func NewTextBuilder() *TextBuilder {
	return &TextBuilder{}
}

// Append appends a text fragment, styled with sty, at the end of the text
// to build. A nil style appends an unstyled fragment. Empty fragments are
// silently dropped.
func (b *TextBuilder) Append(fragment string, sty Style) error {
	if b.done {
		return ErrTextCompleted
	}
	if fragment == "" {
		return nil
	}
	pos := uint64(b.buf.Len())
	b.buf.WriteString(fragment)
	if sty != nil {
		b.spans = append(b.spans, Span{
			Style: sty,
			From:  pos,
			To:    uint64(b.buf.Len()),
			Mode:  ExclusiveExclusive,
		})
	}
	return nil
}

// Len returns the length in bytes of the text built up to now.
func (b *TextBuilder) Len() uint64 {
	return uint64(b.buf.Len())
}

// Text returns the styled text which this builder is holding up to now.
// It is illegal to continue adding fragments after Text has been called,
// but Text may be called multiple times.
func (b *TextBuilder) Text() *Text {
	b.done = true
	t := TextFromString(b.buf.String())
	if t.IsVoid() {
		tracer().Debugf("text builder: text is void")
		return t
	}
	for _, spn := range b.spans {
		t.Attach(spn)
	}
	return t
}
