package formatter

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"errors"
	"io"
	"os"

	"github.com/npillmayer/styledtext"
	"github.com/npillmayer/uax/uax11"
)

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth int
	Debug     bool
	Context   *uax11.Context
}

// Format is an interface for formatting drivers, given an io.Writer
type Format interface {
	Preamble(io.Writer)
	Postamble(io.Writer)
	StyledText(string, []styledtext.Style, io.Writer)
	Line(int, int, io.Writer)
	Newline(io.Writer)
}

// Output formats a styled text using a given formatter.
//
// Neither of the arguments may be nil. However, it is safe to have
// config.Context set to nil. In this case, uax11.LatinContext is used.
func Output(text *styledtext.Text, out io.Writer, config *Config, format Format) error {
	//
	if text == nil || config == nil || format == nil {
		return errors.New("illegal argument: nil")
	} else if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	breaks := firstFit(text, config.LineWidth, config.Context)
	format.Preamble(out)
	prevpos := uint64(0)
	for i, pos := range breaks {
		line, err := styledtext.Section(text, prevpos, pos)
		if err != nil {
			tracer().Errorf("error cutting line section: %v", err)
			return err
		}
		tracer().Infof("[%3d] \"%s\"", i, line)
		tracer().Infof("      with spans = %v", line.Spans())
		format.Line(int(line.Len()), config.LineWidth, out)
		err = line.EachStyledRun(func(content string, styles []styledtext.Style, pos uint64) error {
			tracer().Debugf("%v: %d… = \"%s\"", styles, pos, content)
			format.StyledText(content, styles, out)
			return nil
		})
		if err != nil {
			return err
		}
		format.Newline(out)
		prevpos = pos
	}
	format.Postamble(out)
	return nil
}

// Print outputs a styled text to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive). Config.Context
// will also be created based on heuristics from the user environment.
func Print(text *styledtext.Text, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	consoleFmt := NewConsoleFixedWidthFormat(nil, nil)
	return Output(text, os.Stdout, config, consoleFmt)
}
