package styledtext

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "sort"

// Style represents a styling-format which can be applied to a run of text.
type Style interface {
	Equals(other Style) bool // does this Style look equal or differently than another one ?
	String() string          // return some kind of identifying string
}

// Boundary determines how a span behaves when text is inserted exactly at
// one of its boundaries: an inclusive boundary absorbs the inserted text,
// an exclusive boundary does not.
//
// All spans produced by this module use ExclusiveExclusive. The other modes
// are honored for client-created spans.
type Boundary int8

const (
	ExclusiveExclusive Boundary = iota
	InclusiveExclusive
	ExclusiveInclusive
	InclusiveInclusive
)

func (b Boundary) String() string {
	switch b {
	case ExclusiveExclusive:
		return "[excl,excl]"
	case InclusiveExclusive:
		return "[incl,excl]"
	case ExclusiveInclusive:
		return "[excl,incl]"
	case InclusiveInclusive:
		return "[incl,incl]"
	}
	return "[?,?]"
}

func (b Boundary) startInclusive() bool {
	return b == InclusiveExclusive || b == InclusiveInclusive
}

func (b Boundary) endInclusive() bool {
	return b == ExclusiveInclusive || b == InclusiveInclusive
}

// Span attaches a style to a byte range [From,To) of a styled text.
// Spans are value-like descriptors; they carry no reference to the text
// they are attached to.
type Span struct {
	Style Style
	From  uint64
	To    uint64
	Mode  Boundary
}

func (spn Span) void() bool {
	return spn.To <= spn.From
}

// contained restricts a span to valid positions of a text of length l.
// Out-of-range boundaries are silently clamped, which may render the
// span void.
func (spn Span) contained(l uint64) Span {
	if spn.From > l {
		spn.From = l
	}
	if spn.To > l {
		spn.To = l
	}
	return spn
}

// sortSpans establishes the canonical span order: ascending From, stable
// for equal positions.
func sortSpans(spans []Span) {
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].From < spans[j].From
	})
}
