package sanitizer

import (
	"net/url"
	"strings"
)

// validateURL decides whether a URL-valued attribute may keep its value
// and returns the normalized form to emit. ASCII control characters are
// stripped before scheme extraction, since browsers ignore them when
// resolving a scheme and "java\tscript:" style obfuscation must not slip
// past; the stripped form is what gets emitted. A value with no scheme at all
// (relative reference, fragment, bare path) is accepted: it cannot carry
// an executable scheme. An unparseable value is rejected.
func (p *Policy) validateURL(raw string) (string, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, raw)
	cleaned = strings.TrimSpace(cleaned)

	u, err := url.Parse(cleaned)
	if err != nil {
		return "", false
	}
	if u.Scheme == "" {
		return cleaned, true
	}
	if !p.schemes[strings.ToLower(u.Scheme)] {
		return "", false
	}
	return cleaned, true
}
