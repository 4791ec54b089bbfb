// Package htmldoc provides a fault-tolerant HTML fragment parser, an owned
// document tree and canonical renderers for that tree.
//
// The parser accepts arbitrary text, malformed, truncated or deliberately
// adversarial markup included, and always produces a tree. Tokenization
// (tag and attribute scanning, quoted and unquoted values, comments,
// doctypes and character-reference decoding) is delegated to the
// golang.org/x/net/html tokenizer; tree construction is performed here with
// a simple open-element stack so that resource limits can be enforced while
// the tree is being built rather than after the fact.
//
// Recovery rules:
//
//   - unclosed elements are implicitly closed at end of input,
//   - an end tag closes up to the nearest matching open element and is
//     ignored when no such element is open,
//   - doctypes are dropped, comments are preserved as Comment nodes,
//   - character references are decoded into literal text.
//
// The only failure conditions are the resource caps described by Limits;
// they exist to fail closed on denial-of-service payloads (megabytes of
// input, megabyte-deep nesting, millions of empty tags) instead of
// consuming unbounded memory or CPU.
//
// The resulting tree is a single-rooted, acyclic ownership structure with
// no parent back-references, built fresh per call and safe to mutate by the
// caller.
//
// Usage:
//
//	root, err := htmldoc.Parse(input, htmldoc.DefaultLimits())
//	if err != nil {
//	    // one of the resource caps was exceeded
//	}
//	out := htmldoc.Render(root)
package htmldoc
