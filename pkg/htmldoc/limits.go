package htmldoc

import "github.com/hiroshiyui/baudrate-sub005/pkg/config"

// Limits caps the resources a single parse may consume. A zero value for
// any field disables that cap; use DefaultLimits unless the caller has a
// reason to tune them.
type Limits struct {
	// MaxInputBytes rejects over-long inputs before tokenization starts.
	MaxInputBytes int `env:"SANITIZER_MAX_INPUT_BYTES" envDefault:"1048576"`

	// MaxDepth caps element nesting. Together with the renderers walking
	// the constructed tree this bounds all recursion in the engine.
	MaxDepth int `env:"SANITIZER_MAX_DEPTH" envDefault:"200"`

	// MaxNodes caps the total number of nodes in the constructed tree.
	MaxNodes int `env:"SANITIZER_MAX_NODES" envDefault:"100000"`
}

// DefaultLimits returns the built-in caps: 1 MiB of input, 200 levels of
// nesting, 100k nodes. Generous for post-sized content, small enough to
// bound adversarial payloads.
func DefaultLimits() Limits {
	return Limits{
		MaxInputBytes: 1 << 20,
		MaxDepth:      200,
		MaxNodes:      100_000,
	}
}

// LoadLimits returns the caps with deployment overrides applied from the
// environment (SANITIZER_MAX_INPUT_BYTES, SANITIZER_MAX_DEPTH,
// SANITIZER_MAX_NODES). On a load failure it falls back to DefaultLimits
// and reports the error.
func LoadLimits() (Limits, error) {
	var l Limits
	if err := config.Load(&l); err != nil {
		return DefaultLimits(), err
	}
	return l, nil
}
