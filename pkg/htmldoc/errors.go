package htmldoc

import "errors"

var (
	// ErrResourceLimit is the umbrella error joined into every limit
	// violation, so callers can match any cap with a single errors.Is.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrInputTooLarge is returned when the input exceeds Limits.MaxInputBytes.
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")

	// ErrDepthLimitExceeded is returned when element nesting exceeds Limits.MaxDepth.
	ErrDepthLimitExceeded = errors.New("element nesting exceeds maximum allowed depth")

	// ErrNodeLimitExceeded is returned when the tree would exceed Limits.MaxNodes.
	ErrNodeLimitExceeded = errors.New("document exceeds maximum allowed node count")
)
