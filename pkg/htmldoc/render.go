package htmldoc

import (
	"strings"

	"golang.org/x/net/html"
)

// Render serializes the tree as canonical HTML: lowercase tags, every
// attribute double-quoted with its value escaped, text escaped, void
// elements emitted without a closing tag, comments dropped. Because it
// walks an already structured tree the output is well-formed by
// construction and re-parses to an equivalent tree.
func Render(n *Node) string {
	var sb strings.Builder
	renderNode(&sb, n)
	return sb.String()
}

func renderNode(sb *strings.Builder, n *Node) {
	switch n.Type {
	case DocumentNode:
		for _, c := range n.Children {
			renderNode(sb, c)
		}

	case TextNode:
		sb.WriteString(html.EscapeString(n.Data))

	case CommentNode:
		// Comments carry no display value and are a historical injection
		// vector; they never reach serialized output.

	case ElementNode:
		sb.WriteByte('<')
		sb.WriteString(n.Data)
		for _, a := range n.Attr {
			sb.WriteByte(' ')
			sb.WriteString(a.Key)
			sb.WriteString(`="`)
			sb.WriteString(html.EscapeString(a.Val))
			sb.WriteByte('"')
		}
		sb.WriteByte('>')
		if IsVoid(n.Data) {
			return
		}
		for _, c := range n.Children {
			renderNode(sb, c)
		}
		sb.WriteString("</")
		sb.WriteString(n.Data)
		sb.WriteByte('>')
	}
}

// RenderText flattens the tree to plain decoded text: the content of text
// nodes concatenated in document order, with no markup characters and no
// re-escaping. A single space separates text runs that were divided by a
// block-level element boundary so words from adjacent blocks do not run
// together; runs already separated by whitespace get no extra space.
func RenderText(n *Node) string {
	var w textWriter
	w.walk(n)
	return w.sb.String()
}

type textWriter struct {
	sb      strings.Builder
	last    byte // last byte written, 0 when nothing written yet
	pending bool // a block boundary was crossed since the last write
}

func (w *textWriter) walk(n *Node) {
	switch n.Type {
	case TextNode:
		w.text(n.Data)
	case DocumentNode:
		for _, c := range n.Children {
			w.walk(c)
		}
	case ElementNode:
		block := IsBlock(n.Data)
		if block {
			w.pending = true
		}
		for _, c := range n.Children {
			w.walk(c)
		}
		if block {
			w.pending = true
		}
	}
}

func (w *textWriter) text(s string) {
	if s == "" {
		return
	}
	if w.pending && w.last != 0 && !isSpace(w.last) && !isSpace(s[0]) {
		w.sb.WriteByte(' ')
	}
	w.pending = false
	w.sb.WriteString(s)
	w.last = s[len(s)-1]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}
