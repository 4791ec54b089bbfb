package sanitizer

import (
	"errors"

	"github.com/hiroshiyui/baudrate-sub005/pkg/htmldoc"
)

var (
	// ErrUnknownPolicy is returned by Named for a policy name that does
	// not exist. This is a bug in the calling code, never a property of
	// the input being sanitized.
	ErrUnknownPolicy = errors.New("unknown sanitization policy")

	// ErrResourceLimit matches any resource-cap violation surfaced by the
	// underlying parser, re-exported so callers need not import htmldoc to
	// distinguish oversized submissions from other failures.
	ErrResourceLimit = htmldoc.ErrResourceLimit
)
