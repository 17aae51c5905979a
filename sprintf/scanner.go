package sprintf

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "regexp"

// specifierPattern matches a printf-style conversion specifier. It has
// exactly three capture groups:
//
//	(1) argument term:   empty, "<", or digits followed by '$'
//	(2) modifier term:   flag/width/precision characters, no letters
//	(3) conversion term: one letter, or 't'/'T' plus one letter for
//	    date/time sub-formats, or a literal '%'
//
// 't' and 'T' never match standalone, so "%tY" is one specifier and a
// dangling "%t" is no match at all. Text around failed matches is left
// untouched; scanning never errors.
var specifierPattern = regexp.MustCompile(`%([0-9]+\$|<?)([^a-zA-Z%]*)([a-su-zA-SU-Z%]|[tT][a-zA-Z])`)

// Specifier is a parsed conversion specifier, together with its byte span
// [Start,End) in the scanned text at the time of matching.
type Specifier struct {
	Arg   string // "", "<", or "N$"
	Mod   string // flags, width, precision
	Verb  string // conversion letter(s), or "%"
	Start uint64
	End   uint64
}

// nextSpecifier finds the leftmost specifier in s at or after byte position
// pos. The second return value is false if no specifier matches.
func nextSpecifier(s string, pos uint64) (Specifier, bool) {
	if pos >= uint64(len(s)) {
		return Specifier{}, false
	}
	m := specifierPattern.FindStringSubmatchIndex(s[pos:])
	if m == nil {
		return Specifier{}, false
	}
	spec := Specifier{
		Arg:   group(s[pos:], m, 1),
		Mod:   group(s[pos:], m, 2),
		Verb:  group(s[pos:], m, 3),
		Start: pos + uint64(m[0]),
		End:   pos + uint64(m[1]),
	}
	return spec, true
}

func group(s string, m []int, i int) string {
	if m[2*i] < 0 {
		return ""
	}
	return s[m[2*i]:m[2*i+1]]
}
