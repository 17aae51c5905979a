/*
Package formatter outputs styled text on devices with fixed-width fonts.
Think of this package in terms of `fmt.Println` for styled text.

Output of styled text differs in many aspects from simple string output.
Not only do we need an output device which is capable of displaying text
styles, but we need to consider line-breaking as well. This package helps
performing the following tasks:

▪︎ Select a formatter for a given (monospaced) output device

▪︎ Create a suitable formatting configuration

▪︎ Format a styled text and output it to the device

Line breaking applies rules from UAX#14, character widths are computed
according to UAX#11 on grapheme clusters (UAX#29). This package does not
constitute a typesetter: we will not deal with fonts, glyphing, variable
text widths or elaborate line-breaking algorithms. Bi-directional text is
not handled either; text is output in logical order.

# API

Clients select an instance of type formatter.Format and possibly configure
it to their needs:

	text := styledtext.TextFromString("The quick brown fox jumps over the lazy dog!")
	text.Style(inline.BoldStyle, 4, 9) // want 'quick' in boldface

	console := NewConsoleFixedWidthFormat(nil, nil)
	console.Print(text, nil)

formatter.Format is an interface type and this package offers two
implementations, one for console output (like in the example above) and one
for HTML output.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'styledtext'
func tracer() tracing.Trace {
	return tracing.Select("styledtext")
}
