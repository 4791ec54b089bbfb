// Package sanitizer neutralizes injection vectors in untrusted HTML while
// preserving legitimate formatting. It is the trust boundary between raw
// user or federated content and everything that stores or renders it.
//
// Input is parsed with the fault-tolerant parser from pkg/htmldoc, the
// resulting tree is walked depth-first under an immutable Policy, and the
// sanitized tree is re-emitted as canonical escaped HTML or as plain
// decoded text.
//
// # Policies
//
// Three named policies cover the application's content sources:
//
//   - federation: strict allowlist for remote, federated content (inline
//     formatting, lists, links, blockquotes, code). Links are restricted to
//     http/https and receive rel="nofollow noopener noreferrer".
//   - markdown: permissive allowlist matching what the local markdown
//     renderer can legitimately produce, adding tables and images.
//   - strip_tags: empty allowlist; only decoded text survives.
//
// For every policy, dangerous containers (script, style, iframe, object,
// form, svg, math, ...) are removed together with their content, other
// disallowed elements are unwrapped in place of their children, comments
// are dropped, event-handler attributes are dropped unconditionally, and
// URL-valued attributes must carry an allowed scheme or none at all.
//
// The allowlist contents themselves are configuration data, embedded as
// policies.yaml and loaded once at package init; the engine's contract is
// the mechanism, not any particular list.
//
// # Usage
//
//	clean, err := sanitizer.SanitizeFederation(remoteHTML)
//	clean, err := sanitizer.SanitizeMarkdown(renderedHTML)
//	text, err := sanitizer.StripTags(anyHTML)
//
// Each call is a pure, synchronous computation over its own private tree;
// the only shared state is the read-only policy table, so arbitrarily many
// calls may run concurrently. The returned error is non-nil only when a
// resource cap is exceeded (matchable with errors.Is against
// ErrResourceLimit); malformed markup is recovered from silently and can
// never fail a call.
package sanitizer
