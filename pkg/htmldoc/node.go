package htmldoc

import "golang.org/x/net/html"

// NodeType discriminates the variants of a Node.
type NodeType int

const (
	DocumentNode NodeType = iota
	ElementNode
	TextNode
	CommentNode
)

// Node is one node of a parsed HTML fragment. The tree is exclusively
// owned: every child belongs to exactly one parent and there are no parent
// or sibling back-references, so splicing children during sanitization is a
// plain slice operation.
type Node struct {
	Type NodeType

	// Data holds the lowercase tag name for elements, the decoded character
	// content for text nodes and the body for comments. It is empty for the
	// document root.
	Data string

	// Attr holds element attributes in source order with unique lowercase
	// keys. Values are entity-decoded by the tokenizer.
	Attr []html.Attribute

	Children []*Node
}

// LookupAttr returns the value of the named attribute and whether it is present.
func (n *Node) LookupAttr(key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, replacing an existing value or
// appending a new attribute.
func (n *Node) SetAttr(key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// voidElements cannot have children and are serialized without a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// IsVoid reports whether tag names a void element.
func IsVoid(tag string) bool { return voidElements[tag] }

// blockElements delimit text runs when a tree is flattened to plain text.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"tbody": true, "td": true, "tfoot": true, "th": true, "thead": true,
	"tr": true, "ul": true,
}

// IsBlock reports whether tag names a block-level element.
func IsBlock(tag string) bool { return blockElements[tag] }
