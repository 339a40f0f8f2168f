package scroll

// LayoutOracle resolves a section to its vertical offset from the top of the
// rendered document. A section that is not currently laid out reports
// ok=false; the tracker tolerates partial absence.
//
// Offsets are ephemeral: layout changes whenever the document is re-rendered
// (resize, content reload), so implementations are rebuilt per render and
// never cached across renders.
type LayoutOracle interface {
	SectionTop(id SectionID) (top int, ok bool)
}

// OffsetTable is a LayoutOracle backed by a plain map. The display layer
// fills one in while composing the document; tests fill one in by hand.
type OffsetTable map[SectionID]int

// SectionTop implements LayoutOracle.
func (t OffsetTable) SectionTop(id SectionID) (int, bool) {
	top, ok := t[id]
	return top, ok
}
