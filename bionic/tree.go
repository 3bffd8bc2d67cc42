package bionic

import "github.com/iw2rmb/mono/internal/grapheme"

// NodeKind distinguishes the nodes of a rendered Tree.
type NodeKind int

const (
	NodeRoot NodeKind = iota
	NodeEmphasis
	NodeText
)

// Node is an element of the rendered markup tree. Text nodes carry text and
// have no children; root and emphasis nodes only have children.
type Node struct {
	Kind     NodeKind
	Text     string
	Children []*Node
}

// TextLen returns the number of grapheme clusters under n.
func (n *Node) TextLen() int {
	if n == nil {
		return 0
	}
	if n.Kind == NodeText {
		return grapheme.Count(n.Text)
	}
	total := 0
	for _, c := range n.Children {
		total += c.TextLen()
	}
	return total
}

// Position addresses a caret inside the tree. For text nodes Offset counts
// clusters; for root and emphasis nodes it counts children.
type Position struct {
	Node   *Node
	Offset int
}

// Tree builds the node tree for m. Adjacent plain text is merged into a single
// text node, so the tree alternates emphasis and text children under the root.
func Tree(m Markup) *Node {
	root := &Node{Kind: NodeRoot}
	appendText := func(s string) {
		if s == "" {
			return
		}
		if n := len(root.Children); n > 0 && root.Children[n-1].Kind == NodeText {
			root.Children[n-1].Text += s
			return
		}
		root.Children = append(root.Children, &Node{Kind: NodeText, Text: s})
	}

	for _, s := range m {
		appendText(s.Leading)
		if s.Bold != "" {
			root.Children = append(root.Children, &Node{
				Kind:     NodeEmphasis,
				Children: []*Node{{Kind: NodeText, Text: s.Bold}},
			})
		}
		appendText(s.Rest)
		appendText(s.Trailing)
	}
	return root
}

// WalkText calls fn for every text node of root in document order.
// emphasized is true for text inside an emphasis node.
func WalkText(root *Node, fn func(n *Node, emphasized bool)) {
	var walk func(n *Node, emphasized bool)
	walk = func(n *Node, emphasized bool) {
		if n == nil {
			return
		}
		if n.Kind == NodeText {
			fn(n, emphasized)
			return
		}
		for _, c := range n.Children {
			walk(c, emphasized || n.Kind == NodeEmphasis)
		}
	}
	walk(root, false)
}

// TextNodes returns the text nodes of root in document order.
func TextNodes(root *Node) []*Node {
	var out []*Node
	WalkText(root, func(n *Node, _ bool) { out = append(out, n) })
	return out
}

// CaretOffset returns the flat cluster offset of sel: the length of all text
// preceding the caret plus the local offset. A position whose node is not part
// of the tree maps to the end of the document.
func CaretOffset(root *Node, sel Position) int {
	if root == nil {
		return 0
	}
	local := maxInt(sel.Offset, 0)

	total := 0
	var walk func(n *Node) bool
	walk = func(n *Node) bool {
		if n == sel.Node {
			if n.Kind == NodeText {
				total += minInt(local, n.TextLen())
				return true
			}
			for i, c := range n.Children {
				if i >= local {
					break
				}
				total += c.TextLen()
			}
			return true
		}
		if n.Kind == NodeText {
			total += n.TextLen()
			return false
		}
		for _, c := range n.Children {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(root)
	return total
}

// RestoreCaret finds the text node and local offset for a flat offset.
//
// Offsets on a node boundary resolve to the end of the earlier node. ok is
// false when offset exceeds the total text length; negative offsets are
// treated as zero.
func RestoreCaret(root *Node, offset int) (pos Position, ok bool) {
	if root == nil {
		return Position{}, false
	}
	offset = maxInt(offset, 0)
	if len(root.Children) == 0 && root.Kind != NodeText {
		if offset == 0 {
			return Position{Node: root, Offset: 0}, true
		}
		return Position{}, false
	}
	return restoreCaret(root, offset)
}

func restoreCaret(n *Node, offset int) (Position, bool) {
	if n.Kind == NodeText {
		if offset <= n.TextLen() {
			return Position{Node: n, Offset: offset}, true
		}
		return Position{}, false
	}

	cur := 0
	for _, c := range n.Children {
		l := c.TextLen()
		if cur+l >= offset {
			if p, ok := restoreCaret(c, offset-cur); ok {
				return p, true
			}
		}
		cur += l
	}
	return Position{}, false
}

// RestoreCaretOrEnd is RestoreCaret with the end-of-document fallback: an
// offset past the end lands after the last cluster.
func RestoreCaretOrEnd(root *Node, offset int) Position {
	if p, ok := RestoreCaret(root, offset); ok {
		return p
	}
	nodes := TextNodes(root)
	if len(nodes) == 0 {
		return Position{Node: root}
	}
	last := nodes[len(nodes)-1]
	return Position{Node: last, Offset: last.TextLen()}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
