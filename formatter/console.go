package formatter

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/styledtext"
	"github.com/npillmayer/styledtext/inline"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ControlCodes holds certain escape sequences which a terminal uses to
// delimit formatted output.
type ControlCodes struct {
	Preamble, Postamble []byte
	Newline             []byte
}

// DefaultCodes is the default set of control codes.
var DefaultCodes = ControlCodes{
	Preamble:  []byte{},
	Postamble: []byte{},
	Newline:   []byte{'\n'},
}

// ConsoleFixedWidth is a type for outputting formatted text to a console
// with a fixed width font. Styles are visualized with colors: clickable
// spans and color overrides (inline.ColorStyle) are rendered directly,
// bitmask styles are looked up in a configurable palette.
type ConsoleFixedWidth struct {
	Codes   *ControlCodes
	colors  map[styledtext.Style]*color.Color
	ccnt    int // number of character positions already printed for line
	ctarget int // linelength in fixedwidth ‘en’s
}

// NewConsoleFixedWidthFormat creates a new formatter. It is to be used for
// consoles with a fixed width font.
//
// codes is a table of escape sequences to delimit output.
// colors is a map from styles to colors, used for display. It may contain
// just a subset of the styles used in the texts which will be handled
// by this formatter.
func NewConsoleFixedWidthFormat(codes *ControlCodes, colors map[styledtext.Style]*color.Color) *ConsoleFixedWidth {
	fw := &ConsoleFixedWidth{
		Codes: &DefaultCodes,
	}
	if codes != nil {
		fw.Codes = codes
	}
	if colors == nil {
		fw.colors = makeDefaultPalette()
	} else {
		fw.colors = colors
	}
	return fw
}

func makeDefaultPalette() map[styledtext.Style]*color.Color {
	palette := map[styledtext.Style]*color.Color{
		inline.BoldStyle:      color.New(color.Bold),
		inline.ItalicsStyle:   color.New(color.Italic),
		inline.StrongStyle:    color.New(color.Bold),
		inline.EmStyle:        color.New(color.Italic),
		inline.MarkedStyle:    color.New(color.ReverseVideo),
		inline.UnderlineStyle: color.New(color.Underline),
	}
	return palette
}

// Print outputs a styled text to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive). Config.Context
// will also be created based on heuristics from the user environment.
func (fw *ConsoleFixedWidth) Print(text *styledtext.Text, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Output(text, os.Stdout, config, fw)
}

// StyledText is called by the formatting driver to output a run of
// uniformly styled text. It uses colors to visualize styles.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) StyledText(s string, styles []styledtext.Style, w io.Writer) {
	if c := fw.colorFor(styles); c != nil {
		c.Fprint(w, s)
		return
	}
	w.Write([]byte(s))
}

// colorFor selects a display color for a set of styles. An explicit color
// override wins over palette entries.
func (fw *ConsoleFixedWidth) colorFor(styles []styledtext.Style) *color.Color {
	for _, sty := range styles {
		if override, ok := sty.(*inline.ColorStyle); ok && override.Color != nil {
			if override.Underline {
				c := *override.Color
				c.Add(color.Underline)
				return &c
			}
			return override.Color
		}
	}
	for _, sty := range styles {
		if c, ok := fw.colors[sty]; ok {
			return c
		}
	}
	return nil
}

// Preamble is called by the output driver before a text will be formatted.
// It outputs the `Preamble` escape sequence from fw.Codes.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Preamble(w io.Writer) {
	w.Write(fw.Codes.Preamble)
}

// Postamble will be called after a text has been formatted.
// It outputs the `Postamble` escape sequence from fw.Codes.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Postamble(w io.Writer) {
	w.Write(fw.Codes.Postamble)
}

// Line is a signal from the output driver that a new line is to be output.
// length is the total width of the characters that will be formatted,
// measured in “en”s, i.e. fixed width positions. linelength is the target
// line length to wrap long lines.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Line(length int, linelength int, w io.Writer) {
	fw.ccnt = 0
	fw.ctarget = linelength
}

// Newline will be called at the end of every formatted line of text.
// It outputs the `Newline` escape sequence from fw.Codes.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Newline(w io.Writer) {
	w.Write(fw.Codes.Newline)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
