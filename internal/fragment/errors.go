package fragment

import "errors"

// Error conditions surfaced by manager operations. Callers match these
// with errors.Is; the wrapped message carries the offending name or path.
var (
	ErrMissingArgument    = errors.New("missing argument")
	ErrInvalidSourcePath  = errors.New("invalid source path")
	ErrUnknownFragment    = errors.New("unknown fragment")
	ErrAlreadyEnabled     = errors.New("already enabled")
	ErrUnsupportedVersion = errors.New("system PHP version is not supported")
)
