/*
Package inline provides a catalog of concrete styles for styled text:
bitmask styles for the common inline text formats, clickable spans, and
color overrides. It also imports styled text from inline HTML fragments.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'styledtext'
func tracer() tracing.Trace {
	return tracing.Select("styledtext")
}
