package analysis

import "fmt"

// ErrorKind tags the recoverable failure modes of an analysis request.
type ErrorKind string

const (
	// KindInvalidInput - empty or unusable company name.
	KindInvalidInput ErrorKind = "invalid_input"
	// KindNotFound - company name could not be resolved to a ticker.
	KindNotFound ErrorKind = "not_found"
	// KindNoData - ticker resolved but upstream returned no price history.
	KindNoData ErrorKind = "no_data"
	// KindInsufficientData - fewer than 2 bars, statistics undefined.
	KindInsufficientData ErrorKind = "insufficient_data"
)

// Error is a tagged analysis failure. Every failure the pipeline can
// produce is one of these; transport errors from upstream are wrapped in
// KindNoData since the effect on the caller is the same.
type Error struct {
	Kind   ErrorKind
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

// newError builds a tagged Error with a formatted reason.
func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}
