package sprintf

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/styledtext"
	"golang.org/x/text/language"
)

// Format formats according to a styled template and returns the resulting
// styled text. Plain-value conversions use the ambient locale of the
// calling user.
//
// The template's spans are preserved in all untouched regions. Arguments
// substituted for %s may themselves be styled texts; their spans travel
// with them into the result. If there are more arguments than the template
// references, the additional arguments are ignored.
func Format(template *styledtext.Text, args ...interface{}) (*styledtext.Text, error) {
	return FormatLocale(ambientLanguage(), template, args...)
}

// FormatString is a convenience variant of Format for plain templates.
func FormatString(template string, args ...interface{}) (*styledtext.Text, error) {
	return Format(styledtext.TextFromString(template), args...)
}

// FormatLocale is a version of Format with an explicit locale for
// plain-value conversions. language.Und disables locale-sensitive
// formatting, i.e., values are converted invariantly.
//
// Formatting either fully succeeds or fails; on error the returned text
// is nil. Error conditions are a malformed explicit argument index
// (ErrMalformedSpecifier), an argument index outside the argument list
// (ErrIndexOutOfBounds), and a conversion rejected by the conversion
// primitive (ErrUnsupportedConversion).
func FormatLocale(lang language.Tag, template *styledtext.Text, args ...interface{}) (*styledtext.Text, error) {
	out := styledtext.TextFromText(template)
	conv := newConverter(lang)
	var cursor uint64
	argAt := -1                            // index of the last consumed argument
	spliced := map[*styledtext.Text]bool{} // styled arguments already substituted with spans
	//
	for cursor < out.Len() {
		// the scanner works on the buffer's current content, never on a
		// stale view from before a splice
		spec, ok := nextSpecifier(out.String(), cursor)
		if !ok {
			break
		}
		tracer().Debugf("sprintf: specifier %q%q%q @ %d…%d", spec.Arg, spec.Mod, spec.Verb, spec.Start, spec.End)
		var repl *styledtext.Text
		switch {
		case spec.Verb == "%":
			repl = styledtext.TextFromString("%")
		case spec.Verb == "n":
			repl = styledtext.TextFromString("\n")
		default:
			argIdx, err := resolveIndex(spec.Arg, &argAt)
			if err != nil {
				return nil, err
			}
			if argIdx < 0 || argIdx >= len(args) {
				return nil, fmt.Errorf("%w: index %d with %d argument(s)", ErrIndexOutOfBounds, argIdx, len(args))
			}
			arg := args[argIdx]
			if styledArg, isStyled := arg.(*styledtext.Text); isStyled && spec.Verb == "s" {
				// substitute the styled text verbatim; its spans can be
				// attached only once, duplicates degrade to plain text
				if spliced[styledArg] {
					repl = styledtext.TextFromString(styledArg.String())
				} else {
					spliced[styledArg] = true
					repl = styledArg
				}
			} else {
				plain, err := conv.convert(spec.Mod, spec.Verb, arg)
				if err != nil {
					return nil, err
				}
				repl = styledtext.TextFromString(plain)
			}
		}
		if err := out.Replace(spec.Start, spec.End, repl); err != nil {
			return nil, err
		}
		// resume scanning after the inserted text: argument content is
		// untrusted and must never be interpreted as further specifiers
		cursor = spec.Start + repl.Len()
	}
	return out, nil
}

// resolveIndex maps a specifier's argument term to a 0-based argument
// index. argAt tracks the index of the last consumed argument: an implicit
// (empty) term advances it, an explicit "N$" term re-targets it, and a
// relative "<" term reuses it unchanged. A relative term before any
// consumption yields -1, which the caller flags as out of bounds.
func resolveIndex(argTerm string, argAt *int) (int, error) {
	switch argTerm {
	case "":
		*argAt++
		return *argAt, nil
	case "<":
		return *argAt, nil
	}
	n, err := strconv.Atoi(strings.TrimSuffix(argTerm, "$"))
	if err != nil {
		return 0, fmt.Errorf("%w: argument index %q: %v", ErrMalformedSpecifier, argTerm, err)
	}
	*argAt = n - 1
	return *argAt, nil
}
