package oracle

import "errors"

// Error taxonomy shared by every consumer of the AI oracles.
// Callers own retry/backoff policy; nothing in this package retries.
var (
	// ErrNotConfigured means the required API credential or model is absent.
	ErrNotConfigured = errors.New("ai oracle is not configured")

	// ErrEmptyInput means the caller passed text that is empty after trimming.
	ErrEmptyInput = errors.New("input text is empty")

	// ErrEmptyResponse means the oracle answered but returned no usable content.
	ErrEmptyResponse = errors.New("oracle returned no usable content")

	// ErrUnparsableResponse means the oracle content was not valid or
	// recoverable JSON when a structured response was requested.
	ErrUnparsableResponse = errors.New("oracle response is not valid JSON")
)
