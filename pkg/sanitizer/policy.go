package sanitizer

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// AttrFilter validates or rewrites a single attribute value. It returns
// the value to keep and false to drop the attribute entirely.
type AttrFilter func(value string) (string, bool)

// Policy describes what HTML a single sanitization mode considers safe.
// Policies are built once at package init from the embedded policy table
// and never mutated afterwards, so they are shareable across concurrent
// calls without locking.
type Policy struct {
	name         string
	allowedTags  map[string]bool
	allowedAttrs map[string]map[string]bool
	urlAttrs     map[string]bool
	schemes      map[string]bool
	destructive  map[string]bool
	filters      map[string]AttrFilter // keyed "tag.attr"
	linkRel      string
	textOnly     bool
}

// Name returns the policy's registry name.
func (p *Policy) Name() string { return p.name }

// Named returns the policy registered under name. Requesting a name that
// does not exist is a programmer error and returns ErrUnknownPolicy.
func Named(name string) (*Policy, error) {
	p, ok := policies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
	return p, nil
}

// MustNamed is Named but panics on an unknown name. Intended for wiring
// code where the name is a compile-time constant.
func MustNamed(name string) *Policy {
	p, err := Named(name)
	if err != nil {
		panic(err)
	}
	return p
}

//go:embed policies.yaml
var policyData []byte

var policies map[string]*Policy

// safeSpanClasses are the microformat classes federated content may carry
// on spans (actor cards, hashtags, mentions, ellipsis hiding).
var safeSpanClasses = map[string]bool{
	"h-card":    true,
	"hashtag":   true,
	"mention":   true,
	"invisible": true,
}

var languageClassRe = regexp.MustCompile(`^language-[a-zA-Z0-9_+\-]+$`)

// namedFilters binds the filter names used in policies.yaml to their
// implementations.
var namedFilters = map[string]AttrFilter{
	// span-classes keeps only known-safe class tokens and drops the
	// attribute when none survive.
	"span-classes": func(v string) (string, bool) {
		var kept []string
		for _, c := range strings.Fields(v) {
			if safeSpanClasses[c] {
				kept = append(kept, c)
			}
		}
		if len(kept) == 0 {
			return "", false
		}
		return strings.Join(kept, " "), true
	},
	// language-class admits only the renderer's code-fence language
	// marker, e.g. class="language-erlang".
	"language-class": func(v string) (string, bool) {
		if languageClassRe.MatchString(v) {
			return v, true
		}
		return "", false
	},
}

type policyFile struct {
	Policies      map[string]policySpec `yaml:"policies"`
	Destructive   []string              `yaml:"destructive"`
	URLAttributes []string              `yaml:"url_attributes"`
}

type policySpec struct {
	Tags       []string            `yaml:"tags"`
	Attributes map[string][]string `yaml:"attributes"`
	Schemes    []string            `yaml:"schemes"`
	LinkRel    string              `yaml:"link_rel"`
	Filters    map[string]string   `yaml:"filters"`
	TextOnly   bool                `yaml:"text_only"`
}

// init builds the immutable policy table. The YAML is a build artifact
// embedded in the binary, so a parse failure or a dangling filter name is
// a defect caught by the first test run, not a runtime condition.
func init() {
	var pf policyFile
	if err := yaml.Unmarshal(policyData, &pf); err != nil {
		panic(fmt.Sprintf("sanitizer: corrupt embedded policy table: %v", err))
	}

	destructive := toSet(pf.Destructive)
	urlAttrs := toSet(pf.URLAttributes)

	policies = make(map[string]*Policy, len(pf.Policies))
	for name, spec := range pf.Policies {
		p := &Policy{
			name:         name,
			allowedTags:  toSet(spec.Tags),
			allowedAttrs: make(map[string]map[string]bool, len(spec.Attributes)),
			urlAttrs:     urlAttrs,
			schemes:      toSet(spec.Schemes),
			destructive:  destructive,
			filters:      make(map[string]AttrFilter, len(spec.Filters)),
			linkRel:      spec.LinkRel,
			textOnly:     spec.TextOnly,
		}
		for tag, attrs := range spec.Attributes {
			p.allowedAttrs[tag] = toSet(attrs)
		}
		for key, filterName := range spec.Filters {
			f, ok := namedFilters[filterName]
			if !ok {
				panic(fmt.Sprintf("sanitizer: policy %q references unknown filter %q", name, filterName))
			}
			p.filters[key] = f
		}
		policies[name] = p
	}
}

func toSet(values []string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[strings.ToLower(v)] = true
	}
	return m
}
