package inline

import (
	"fmt"

	"github.com/npillmayer/styledtext"
)

// Some standard text formats
const (
	PlainStyle Style = 0
	BoldStyle  Style = 1 << iota
	ItalicsStyle
	StrongStyle
	EmStyle
	SmallStyle
	MarkedStyle
	UnderlineStyle
)

func styleString(s Style) string {
	switch s {
	case PlainStyle:
		return "plain"
	case BoldStyle:
		return "b"
	case ItalicsStyle:
		return "i"
	case StrongStyle:
		return "strong"
	case EmStyle:
		return "em"
	case SmallStyle:
		return "small"
	case MarkedStyle:
		return "marked"
	case UnderlineStyle:
		return "u"
	}
	return fmt.Sprintf("Style(%d)", s)
}

// Style is a text style, applicable on runs of characters
type Style int

func (s Style) Add(other Style) Style {
	return s | other
}

func (s Style) Minus(other Style) Style {
	return s & ^other
}

func (s Style) String() string {
	if s == 0 {
		return styleString(0)
	}
	str := ""
	for i := 1; i <= 7; i++ {
		if s&(1<<i) > 0 {
			str = str + styleString(1<<i)
		}
	}
	if str != "" {
		return str
	}
	return styleString(s)
}

func (s Style) Equals(other styledtext.Style) bool {
	o, ok := other.(Style)
	return ok && o == s
}

var _ styledtext.Style = PlainStyle
