package styledtext

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Replace splices repl into the byte range [from,to) of the text, mutating
// the text in place. repl may be nil, which deletes the range.
//
// Span bookkeeping follows one rule set, applied to every attached span:
//
//   - spans lying strictly inside the replaced range are dropped,
//   - spans behind the replaced range are shifted by the length delta,
//   - spans overlapping one boundary of the range are clipped,
//   - spans enclosing the whole range stretch by the length delta.
//
// For a pure insertion (from == to) a span boundary coinciding with the
// insertion point absorbs the inserted text only if the span's Boundary
// mode marks that side as inclusive.
//
// repl's spans are copied into the text as value descriptors, offset by
// from. Spans rendered void by clipping are discarded.
func (t *Text) Replace(from, to uint64, repl *Text) error {
	if from > to {
		return ErrIllegalArguments
	}
	if to > t.Len() {
		return ErrIndexOutOfBounds
	}
	ins := repl.Len()
	delta := int64(ins) - int64(to-from)
	insertion := from == to
	replSpans := repl.Spans() // snapshot, repl may alias t
	//
	spans := t.spans[:0]
	for _, spn := range t.spans {
		switch {
		case spn.To < from: // completely in front of the range
			// keep unchanged
		case spn.To == from: // ends at the range start
			if insertion && spn.Mode.endInclusive() {
				spn.To += ins
			}
		case spn.From >= to: // starts at or behind the range end
			if insertion && spn.From == to && spn.Mode.startInclusive() {
				spn.To += ins // start stays put, span absorbs the insertion
			} else {
				spn.From = shift(spn.From, delta)
				spn.To = shift(spn.To, delta)
			}
		case spn.From < from && spn.To > to: // encloses the range
			spn.To = shift(spn.To, delta)
		case spn.From >= from && spn.To <= to: // strictly inside the range
			continue // drop
		case spn.From < from: // overlaps the range start
			spn.To = from
		default: // overlaps the range end
			spn.From = from + ins
			spn.To = shift(spn.To, delta)
		}
		if spn.void() {
			continue
		}
		spans = append(spans, spn)
	}
	for _, spn := range replSpans {
		spn.From += from
		spn.To += from
		if spn.void() {
			continue
		}
		spans = append(spans, spn)
	}
	sortSpans(spans)
	t.spans = spans
	//
	buf := make([]byte, 0, uint64(len(t.buf))+ins)
	buf = append(buf, t.buf[:from]...)
	if repl != nil {
		buf = append(buf, repl.buf...)
	}
	buf = append(buf, t.buf[to:]...)
	t.buf = buf
	return nil
}

// Insert splices repl into the text at position i.
func (t *Text) Insert(i uint64, repl *Text) error {
	return t.Replace(i, i, repl)
}

// Delete removes the byte range [from,to) from the text.
func (t *Text) Delete(from, to uint64) error {
	return t.Replace(from, to, nil)
}

// Append concatenates repl to the end of the text.
func (t *Text) Append(repl *Text) *Text {
	_ = t.Replace(t.Len(), t.Len(), repl)
	return t
}

func shift(pos uint64, delta int64) uint64 {
	return uint64(int64(pos) + delta)
}
