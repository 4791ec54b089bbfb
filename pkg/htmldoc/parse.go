package htmldoc

import (
	"errors"
	"strings"

	"golang.org/x/net/html"
)

// Parse turns input into a document tree. It never fails on malformed
// markup; the returned error is non-nil only when one of the resource caps
// in limits is exceeded, in which case the partial tree is discarded.
func Parse(input string, limits Limits) (*Node, error) {
	if limits.MaxInputBytes > 0 && len(input) > limits.MaxInputBytes {
		return nil, errors.Join(ErrResourceLimit, ErrInputTooLarge)
	}

	root := &Node{Type: DocumentNode}
	stack := []*Node{root}
	nodes := 0

	addNode := func(n *Node) error {
		nodes++
		if limits.MaxNodes > 0 && nodes > limits.MaxNodes {
			return errors.Join(ErrResourceLimit, ErrNodeLimitExceeded)
		}
		parent := stack[len(stack)-1]
		parent.Children = append(parent.Children, n)
		return nil
	}

	z := html.NewTokenizer(strings.NewReader(input))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// End of input. Any elements still open are implicitly closed
			// by abandoning the stack; the tree under root is complete.
			return root, nil

		case html.TextToken:
			tok := z.Token()
			if tok.Data == "" {
				continue
			}
			if err := addNode(&Node{Type: TextNode, Data: tok.Data}); err != nil {
				return nil, err
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			el := &Node{Type: ElementNode, Data: tok.Data, Attr: dedupeAttrs(tok.Attr)}
			if err := addNode(el); err != nil {
				return nil, err
			}
			if tok.Type == html.SelfClosingTagToken || IsVoid(tok.Data) {
				continue
			}
			if limits.MaxDepth > 0 && len(stack)-1 >= limits.MaxDepth {
				return nil, errors.Join(ErrResourceLimit, ErrDepthLimitExceeded)
			}
			stack = append(stack, el)

		case html.EndTagToken:
			tok := z.Token()
			// Close up to the nearest matching open element; a stray end
			// tag with no open counterpart is ignored.
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].Data == tok.Data {
					stack = stack[:i]
					break
				}
			}

		case html.CommentToken:
			tok := z.Token()
			if err := addNode(&Node{Type: CommentNode, Data: tok.Data}); err != nil {
				return nil, err
			}

		case html.DoctypeToken:
			// Doctypes carry nothing a fragment needs.
		}
	}
}

// dedupeAttrs enforces unique attribute names, first occurrence wins.
func dedupeAttrs(attrs []html.Attribute) []html.Attribute {
	if len(attrs) < 2 {
		return attrs
	}
	seen := make(map[string]bool, len(attrs))
	out := attrs[:0]
	for _, a := range attrs {
		if seen[a.Key] {
			continue
		}
		seen[a.Key] = true
		out = append(out, a)
	}
	return out
}
