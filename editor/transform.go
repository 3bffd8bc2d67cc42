package editor

import "github.com/iw2rmb/mono/bionic"

// document is the rendered form of the buffer: the bionic markup, its node
// tree, and the caret located inside that tree.
type document struct {
	markup bionic.Markup
	tree   *bionic.Node
	caret  bionic.Position

	// plain is set when the text could not be transformed and the tree holds
	// it unemphasized.
	plain bool

	textVersion uint64
}

// transform re-renders the buffer text and restores the caret in the new
// tree. It runs synchronously after every text mutation.
func (m *Model) transform() {
	offset := m.buf.Cursor()
	text := m.buf.Text()

	markup, err := bionic.Render(text)
	if err != nil {
		m.doc.markup = nil
		m.doc.tree = plainTree(text)
		m.doc.plain = true
	} else {
		m.doc.markup = markup
		m.doc.tree = bionic.Tree(markup)
		m.doc.plain = false
	}
	m.doc.textVersion = m.buf.TextVersion()
	m.placeCaret(offset)
	m.layout.valid = false
}

// placeCaret locates offset in the current tree. An offset that cannot be
// found lands at the end of the document.
func (m *Model) placeCaret(offset int) {
	pos, ok := bionic.RestoreCaret(m.doc.tree, offset)
	if !ok {
		pos = bionic.RestoreCaretOrEnd(m.doc.tree, offset)
	}
	m.doc.caret = pos
}

// caretOffset reads the caret back as a flat offset.
func (m *Model) caretOffset() int {
	return bionic.CaretOffset(m.doc.tree, m.doc.caret)
}

// Caret returns the caret position inside the rendered tree.
func (m Model) Caret() bionic.Position { return m.doc.caret }

// Tree returns the rendered node tree.
func (m Model) Tree() *bionic.Node { return m.doc.tree }

// Markup returns the current bionic markup. It is nil when the document is
// empty or could not be transformed.
func (m Model) Markup() bionic.Markup { return m.doc.markup }

func plainTree(text string) *bionic.Node {
	root := &bionic.Node{Kind: bionic.NodeRoot}
	if text != "" {
		root.Children = []*bionic.Node{{Kind: bionic.NodeText, Text: text}}
	}
	return root
}
