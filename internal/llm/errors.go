package llm

import "errors"

// Sentinel errors returned by the Ollama client and ExtractJSON. The
// schedule agent treats every one of them as a reason to fall back to the
// rule-based plan.
var (
	// ErrOllamaUnavailable means the server refused the connection or failed
	// the /api/tags reachability check.
	ErrOllamaUnavailable = errors.New("ollama server unavailable")
	// ErrTimeout means the schedule task ran past its configured timeout.
	ErrTimeout = errors.New("llm request timed out")
	// ErrInvalidOutput means no plan object could be decoded from the
	// model's text.
	ErrInvalidOutput = errors.New("invalid llm output format")
	// ErrRetryExhausted wraps the last error after MaxRetries attempts.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
