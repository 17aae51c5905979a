/*
Package sprintf provides printf-style formatting which works on styled text
and preserves style spans.

Both the format template as well as any %s-arguments may be styled texts;
their spans survive substitution. A call like

	link := styledtext.TextFromString("our website")
	inline.MakeClickable(link, color.New(color.FgBlue), openBrowser)
	msg, err := sprintf.Format(styledtext.TextFromString("Please visit %1$s"), link)

produces a styled text where the substituted characters still carry the
clickable span. Formatting of non-styled values is delegated to a
locale-aware conversion primitive (golang.org/x/text/message); the format
grammar is the familiar printf one, including positional (%1$s) and
relative (%<d) argument indices.

Note one limitation of the span model: if the same styled argument is
substituted for more than one specifier, only the first occurrence carries
the spans. Any duplicates appear as plain text.

Formatting is a pure, synchronous, single-pass transformation: a call
either returns a fully-formed styled text or fails with an error, never
with a partial result.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package sprintf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'styledtext'
func tracer() tracing.Trace {
	return tracing.Select("styledtext")
}

// FormatError is an error type for the sprintf package
type FormatError string

func (e FormatError) Error() string {
	return string(e)
}

// ErrMalformedSpecifier is flagged for an explicit argument index term
// which is not a valid positive integer.
const ErrMalformedSpecifier = FormatError("malformed conversion specifier")

// ErrIndexOutOfBounds is flagged whenever a specifier's argument index
// resolves to a negative number or beyond the argument count. A relative
// reference (%<) before any argument has been consumed resolves to -1 and
// is flagged with this error as well.
const ErrIndexOutOfBounds = FormatError("argument index out of bounds")

// ErrUnsupportedConversion is flagged when the conversion primitive rejects
// the combination of conversion verb and argument type.
const ErrUnsupportedConversion = FormatError("unsupported conversion for argument")
