package analyzer

import "errors"

var (
	// ErrNilFunction is returned when a nil function node is analyzed.
	ErrNilFunction = errors.New("analyzer: function is nil")

	// ErrMissingBody is returned for a function without a statement body.
	// One malformed function never aborts analysis of the rest of a batch.
	ErrMissingBody = errors.New("analyzer: function has no body")

	// ErrASTTooLarge is returned when a function body exceeds the configured
	// node cap (Config.MaxASTNodes).
	ErrASTTooLarge = errors.New("analyzer: syntax tree exceeds node cap")

	// ErrInvalidConfig is returned by ParseConfig for out-of-range values.
	ErrInvalidConfig = errors.New("analyzer: invalid configuration")
)
