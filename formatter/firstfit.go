package formatter

import (
	"bufio"
	"strings"

	"github.com/npillmayer/styledtext"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

// --- Line breaking ---------------------------------------------------------
/*
Wikipedia:

	1. |  SpaceLeft := LineWidth
	2. |  for each Word in Text
	3. |      if (Width(Word) + SpaceWidth) > SpaceLeft
	4. |           insert line break before Word in Text
	5. |           SpaceLeft := LineWidth - Width(Word)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)
*/
func firstFit(text *styledtext.Text, linewidth int, context *uax11.Context) []uint64 {
	//
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	spaceleft := linewidth
	segmenter.Init(bufio.NewReader(strings.NewReader(text.String())))
	breaks := make([]uint64, 0, 20)
	prevpos := 0
	linestart := true
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		gstr := grapheme.StringFromString(frag)
		fraglen := uax11.StringWidth(gstr, context)
		if fraglen >= spaceleft {
			if linestart { // fragment is too long for a line
				pos := prevpos + len(frag)
				breaks = append(breaks, uint64(pos))
				tracer().Infof("break @ %d", pos)
				spaceleft = linewidth
			} else { // fragment overshoots line
				breaks = append(breaks, uint64(prevpos))
				tracer().Infof("break @ %d", prevpos)
				spaceleft = linewidth - fraglen
				linestart = false
			}
		} else { // no break, just append the fragment to the current line
			spaceleft -= fraglen
			linestart = false
		}
		prevpos += len(frag)
	}
	if spaceleft < linewidth { // we have a partial line to consume
		breaks = append(breaks, text.Len())
		tracer().Infof("break @ %d", text.Len())
	}
	return breaks
}
