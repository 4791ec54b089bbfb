package sanitizer

import (
	"strings"
	"sync"

	"golang.org/x/net/html"

	"github.com/hiroshiyui/baudrate-sub005/pkg/htmldoc"
)

// SanitizeFederation sanitizes remote federated content under the strict
// federation policy and returns escaped HTML.
func SanitizeFederation(input string) (string, error) {
	return Sanitize(input, policies["federation"], defaultLimits())
}

// SanitizeMarkdown sanitizes locally rendered markdown output under the
// permissive markdown policy and returns escaped HTML.
func SanitizeMarkdown(input string) (string, error) {
	return Sanitize(input, policies["markdown"], defaultLimits())
}

// StripTags discards all markup and returns decoded plain text. Content of
// dangerous containers (script, style, ...) is removed, everything else is
// flattened, with a single space separating text runs that block-level
// elements kept apart.
func StripTags(input string) (string, error) {
	return Sanitize(input, policies["strip_tags"], defaultLimits())
}

// Sanitize runs the full pipeline (tolerant parse, policy application,
// canonical serialization) with explicit resource limits. The three named
// entry points are thin wrappers over it.
func Sanitize(input string, p *Policy, limits htmldoc.Limits) (string, error) {
	root, err := htmldoc.Parse(input, limits)
	if err != nil {
		return "", err
	}
	p.sanitizeChildren(root)
	if p.textOnly {
		return htmldoc.RenderText(root), nil
	}
	return htmldoc.Render(root), nil
}

// defaultLimits resolves the resource caps once per process, applying any
// environment overrides.
var defaultLimits = sync.OnceValue(func() htmldoc.Limits {
	l, err := htmldoc.LoadLimits()
	if err != nil {
		return htmldoc.DefaultLimits()
	}
	return l
})

// sanitizeChildren replaces n's child list with the sanitized versions of
// its children, splicing in promoted grandchildren where a child was
// unwrapped.
func (p *Policy) sanitizeChildren(n *htmldoc.Node) {
	var out []*htmldoc.Node
	for _, c := range n.Children {
		out = append(out, p.sanitizeNode(c)...)
	}
	n.Children = out
}

// sanitizeNode sanitizes one node and returns the nodes standing in its
// place: the node itself when kept, its already-sanitized children when
// unwrapped, nothing when removed. Children are always sanitized before a
// node is spliced away, so promoted nodes are never processed twice.
func (p *Policy) sanitizeNode(c *htmldoc.Node) []*htmldoc.Node {
	switch c.Type {
	case htmldoc.TextNode:
		return []*htmldoc.Node{c}

	case htmldoc.CommentNode:
		return nil

	case htmldoc.ElementNode:
		if p.destructive[c.Data] {
			return nil
		}
		if p.textOnly {
			// Keep the element shell so the text renderer still sees
			// block boundaries; it emits no markup either way.
			c.Attr = nil
			p.sanitizeChildren(c)
			return []*htmldoc.Node{c}
		}
		if !p.allowedTags[c.Data] {
			p.sanitizeChildren(c)
			return c.Children
		}
		c.Attr = p.filterAttrs(c)
		p.sanitizeChildren(c)
		if c.Data == "a" && p.linkRel != "" {
			if _, ok := c.LookupAttr("href"); ok {
				c.SetAttr("rel", p.linkRel)
			}
		}
		return []*htmldoc.Node{c}

	default:
		p.sanitizeChildren(c)
		return c.Children
	}
}

// filterAttrs applies the per-tag attribute allowlist, the unconditional
// event-handler ban, URL scheme validation and any value filters. An
// element losing every attribute is kept; losing a URL attribute never
// removes the element itself.
func (p *Policy) filterAttrs(el *htmldoc.Node) []html.Attribute {
	allowed := p.allowedAttrs[el.Data]
	out := el.Attr[:0]
	for _, a := range el.Attr {
		key := strings.ToLower(a.Key)
		// No legitimate use justifies an event handler, whatever the policy says.
		if strings.HasPrefix(key, "on") {
			continue
		}
		if !allowed[key] {
			continue
		}
		if p.urlAttrs[key] {
			cleaned, ok := p.validateURL(a.Val)
			if !ok {
				continue
			}
			a.Val = cleaned
		}
		if f, ok := p.filters[el.Data+"."+key]; ok {
			v, keep := f(a.Val)
			if !keep {
				continue
			}
			a.Val = v
		}
		a.Key = key
		out = append(out, a)
	}
	return out
}
