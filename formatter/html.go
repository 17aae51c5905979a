package formatter

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"io"

	"github.com/npillmayer/styledtext"
	"github.com/npillmayer/styledtext/inline"
	"github.com/npillmayer/uax/uax11"
)

var htmlStyleNames map[inline.Style]string = map[inline.Style]string{
	inline.PlainStyle:     "",
	inline.BoldStyle:      "b",
	inline.ItalicsStyle:   "i",
	inline.StrongStyle:    "strong",
	inline.EmStyle:        "em",
	inline.SmallStyle:     "small",
	inline.MarkedStyle:    "mark",
	inline.UnderlineStyle: "u",
}

// HTML is a format for simple HTML output.
type HTML struct{}

// NewHTML creates an HTML formatter.
func NewHTML() *HTML {
	return &HTML{}
}

// Print outputs a styled text as HTML.
//
// If parameter config is nil, a default configuration will be used.
// Config.Context will also be created based on heuristics from the user
// environment.
func (html *HTML) Print(text *styledtext.Text, w io.Writer, config *Config) error {
	if config == nil {
		config = &Config{
			LineWidth: 40,
			Context:   uax11.ContextFromEnvironment(),
		}
	}
	return Output(text, w, config, html)
}

// StyledText is called by the formatting driver to output a run of
// uniformly styled text.
// (Part of interface Format)
func (html *HTML) StyledText(s string, styles []styledtext.Style, w io.Writer) {
	var closers []string
	for _, sty := range styles {
		switch st := sty.(type) {
		case inline.Style:
			w.Write([]byte(tags(st, false)))
			closers = append([]string{tags(st, true)}, closers...)
		case *inline.ActionStyle:
			w.Write([]byte("<a href=\"" + st.Href + "\">"))
			closers = append([]string{"</a>"}, closers...)
		case *inline.ColorStyle:
			if st.Underline {
				w.Write([]byte("<u>"))
				closers = append([]string{"</u>"}, closers...)
			}
		}
	}
	w.Write([]byte(s))
	for _, c := range closers {
		w.Write([]byte(c))
	}
}

// Preamble is called by the output driver before a text will be formatted.
// It outputs a `pre` tag.
// (Part of interface Format)
func (html *HTML) Preamble(w io.Writer) {
	w.Write([]byte("<pre>\n"))
}

// Postamble will be called after a text has been formatted.
// It outputs a closing `</pre>` tag.
// (Part of interface Format)
func (html *HTML) Postamble(w io.Writer) {
	w.Write([]byte("\n</pre>\n"))
}

// Line is a signal from the output driver that a new line is to be output.
//
// Currently does nothing.
// (Part of interface Format)
func (html *HTML) Line(length int, linelength int, w io.Writer) {
}

// Newline will be called at the end of every formatted line of text.
// It outputs a `<br>` tag.
// (Part of interface Format)
func (html *HTML) Newline(w io.Writer) {
	w.Write([]byte("<br>"))
}

// tags produces the opening or closing HTML tags for a bitmask style.
func tags(s inline.Style, closing bool) string {
	if s == 0 {
		return ""
	}
	str := ""
	if closing {
		for i := 7; i >= 1; i-- {
			if s&(1<<i) > 0 {
				str = str + "</" + htmlStyleNames[1<<i] + ">"
			}
		}
	} else {
		for i := 1; i <= 7; i++ {
			if s&(1<<i) > 0 {
				str = str + "<" + htmlStyleNames[1<<i] + ">"
			}
		}
	}
	return str // may be empty string
}
