package buffer

import "github.com/iw2rmb/mono/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	nextCursor := clampInt(b.moveCursor(prevCursor, m), 0, len(b.clusters))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	} else if r, ok := b.Selection(); ok && m.Unit == MoveGrapheme && (m.Dir == DirLeft || m.Dir == DirRight) {
		// Collapse the selection onto the side the arrow points to.
		nextCursor = r.Start
		if m.Dir == DirRight {
			nextCursor = r.End
		}
	}

	if prevCursor == nextCursor && prevSel == nextSel {
		return
	}

	b.cursor = nextCursor
	b.sel = nextSel
	b.version++
}

func (b *Buffer) moveCursor(off int, m Move) int {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(off, m.Dir)
	case MoveWord:
		return b.moveWord(off, m.Dir)
	case MoveLine:
		return b.moveLine(off, m.Dir)
	case MoveDoc:
		return b.moveDoc(off, m.Dir)
	default:
		return off
	}
}

func (b *Buffer) moveGrapheme(off int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		return off - 1
	case DirRight:
		return off + 1
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveWord(off int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		return prevWordBoundary(b.clusters, off)
	case DirRight:
		return nextWordBoundary(b.clusters, off)
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveLine(off int, dir MoveDir) int {
	p := b.PosOf(off)
	switch dir {
	case DirHome:
		return b.OffsetOf(Pos{Row: p.Row})
	case DirEnd:
		return b.OffsetOf(Pos{Row: p.Row, GraphemeCol: b.lineLen(p.Row)})
	case DirUp:
		if p.Row == 0 {
			return b.OffsetOf(Pos{Row: 0})
		}
		return b.OffsetOf(Pos{Row: p.Row - 1, GraphemeCol: p.GraphemeCol})
	case DirDown:
		if p.Row == b.LineCount()-1 {
			return len(b.clusters)
		}
		return b.OffsetOf(Pos{Row: p.Row + 1, GraphemeCol: p.GraphemeCol})
	default:
		return off
	}
}

func (b *Buffer) moveDoc(off int, dir MoveDir) int {
	switch dir {
	case DirHome, DirUp:
		return 0
	case DirEnd, DirDown:
		return len(b.clusters)
	default:
		return off
	}
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - line breaks count as whitespace, so words span lines
func prevWordBoundary(clusters []string, off int) int {
	i := clampInt(off, 0, len(clusters))
	for i > 0 && grapheme.IsSpace(clusters[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(clusters[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(clusters []string, off int) int {
	i := clampInt(off, 0, len(clusters))
	for i < len(clusters) && grapheme.IsSpace(clusters[i]) {
		i++
	}
	for i < len(clusters) && !grapheme.IsSpace(clusters[i]) {
		i++
	}
	return i
}
