package inline

import (
	"io"

	"github.com/fatih/color"
	"github.com/npillmayer/styledtext"
	"golang.org/x/net/html"
)

// StyleFromHTMLName maps an inline HTML element name to a text style.
// Unknown names map to PlainStyle.
func StyleFromHTMLName(name string) Style {
	switch name {
	case "b":
		return BoldStyle
	case "i":
		return ItalicsStyle
	case "strong":
		return StrongStyle
	case "em":
		return EmStyle
	case "small":
		return SmallStyle
	case "mark":
		return MarkedStyle
	case "u":
		return UnderlineStyle
	}
	return PlainStyle
}

// InnerText creates a styled text for the textual content of an HTML element
// and all its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, except that InnerText cannot respect CSS styling (including
// properties changing the visibility of the node's descendents).
// Therefore the resulting styled text is limited to inline span elements like
//
//	<strong> … </strong>
//	<i> … </i>
//
// etc. Clients should provide a paragraph-like element. Anchor elements
// produce clickable spans (ActionStyle carrying the href, plus an underlined
// blue ColorStyle).
func InnerText(n *html.Node) (*styledtext.Text, error) {
	if n == nil {
		return nil, styledtext.ErrIllegalArguments
	}
	b := styledtext.NewTextBuilder()
	var links []styledtext.Span
	collectText(n, PlainStyle, b, &links)
	t := b.Text()
	for _, spn := range links {
		t.Attach(spn)
	}
	return t, nil
}

// TextFromHTML creates a styled text from the textual content of an HTML
// fragment. The HTML fragment should reflect the content of a
// paragraph-like element.
func TextFromHTML(input io.Reader) (*styledtext.Text, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	b := styledtext.NewTextBuilder()
	var links []styledtext.Span
	for _, n := range nodes {
		collectText(n, PlainStyle, b, &links)
	}
	t := b.Text()
	for _, spn := range links {
		t.Attach(spn)
	}
	return t, nil
}

func collectText(n *html.Node, style Style, b *styledtext.TextBuilder, links *[]styledtext.Span) {
	if n.Type == html.ElementNode {
		if n.Data == "a" {
			start := b.Len()
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				collectText(c, style, b, links)
			}
			if b.Len() == start {
				return
			}
			action := &ActionStyle{Href: attrValue(n, "href")}
			display := &ColorStyle{Color: color.New(color.FgBlue), Underline: true}
			*links = append(*links,
				styledtext.Span{Style: action, From: start, To: b.Len()},
				styledtext.Span{Style: display, From: start, To: b.Len()},
			)
			return
		}
		st := StyleFromHTMLName(n.Data)
		if st != PlainStyle {
			style = st
		}
	} else if n.Type == html.TextNode {
		tracer().Debugf("styled inline text = %s (%v)", n.Data, style)
		if style == PlainStyle {
			b.Append(n.Data, nil)
		} else {
			b.Append(n.Data, style)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, style, b, links)
	}
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
