package inline

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/fatih/color"
	"github.com/npillmayer/styledtext"
)

// ActionStyle marks a run of text as clickable. Activating the run invokes
// the attached zero-argument callback. Href optionally names a link target
// for output drivers which support hyperlinks.
//
// ActionStyle does not define any visual appearance; pair it with a
// ColorStyle for that.
type ActionStyle struct {
	Href    string
	OnClick func()
}

// Activate invokes the attached callback, if any.
func (a *ActionStyle) Activate() {
	if a.OnClick != nil {
		a.OnClick()
	}
}

// Equals is part of interface styledtext.Style.
func (a *ActionStyle) Equals(other styledtext.Style) bool {
	o, ok := other.(*ActionStyle)
	return ok && o == a
}

func (a *ActionStyle) String() string {
	if a.Href != "" {
		return "clickable(" + a.Href + ")"
	}
	return "clickable"
}

// ColorStyle overrides the displayed color of a run of text, and whether
// the run is underlined.
type ColorStyle struct {
	Color     *color.Color
	Underline bool
}

// Equals is part of interface styledtext.Style.
func (c *ColorStyle) Equals(other styledtext.Style) bool {
	o, ok := other.(*ColorStyle)
	return ok && o != nil && o.Color == c.Color && o.Underline == c.Underline
}

func (c *ColorStyle) String() string {
	return "color"
}

// MakeClickable attaches a clickable behavior and a color override (no
// underline) to the entire extent of a styled text. It returns its input,
// with both spans attached.
//
// MakeClickable is independent of the formatting engine in package sprintf:
// it may be applied before or after formatting and never participates in
// specifier resolution.
func MakeClickable(t *styledtext.Text, col *color.Color, onClick func()) *styledtext.Text {
	t.Style(&ActionStyle{OnClick: onClick}, 0, t.Len())
	t.Style(&ColorStyle{Color: col, Underline: false}, 0, t.Len())
	return t
}

var (
	_ styledtext.Style = &ActionStyle{}
	_ styledtext.Style = &ColorStyle{}
)
