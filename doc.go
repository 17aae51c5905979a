/*
Package styledtext provides rich text: text together with out-of-band style
annotations, attached to ranges of characters.

# Styled Text

A styledtext.Text holds a flat UTF-8 buffer plus an ordered collection of
span attachments. Each span associates a Style with a byte range [From,To)
of the buffer. Spans are value-like range descriptors, not shared live
objects: copying a piece of styled text into another one copies the span
descriptors, offset to the insertion point.

Texts are mutable. The central mutation is Replace, which splices a
(possibly styled) replacement into a byte range of the buffer while keeping
all span boundaries consistent: spans strictly inside the replaced range are
dropped, spans behind it are shifted by the length delta, and spans
overlapping one of the range boundaries are clipped.

Clients which need printf-style formatting of styled text should refer to
the subpackage sprintf. Subpackage inline provides a catalog of concrete
styles, subpackage formatter renders styled text to terminals and HTML.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package styledtext

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'styledtext'
func tracer() tracing.Trace {
	return tracing.Select("styledtext")
}

// TextError is an error type for the styledtext module
type TextError string

func (e TextError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a text position is
// greater than the length of the text.
const ErrIndexOutOfBounds = TextError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TextError("illegal arguments")

// ErrTextCompleted signals that a text builder has already completed a text
// and it's illegal to further add fragments.
const ErrTextCompleted = TextError("forbidden to add fragments; text has been completed")
