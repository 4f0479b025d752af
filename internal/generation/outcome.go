package generation

import "errors"

// FailureKind classifies a failed generation.
type FailureKind int

// Failure kinds.
const (
	KindNone FailureKind = iota
	KindRateLimited
	KindTimeout
	KindOther
)

// String implements fmt.Stringer.
func (k FailureKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindRateLimited:
		return "rate_limited"
	case KindTimeout:
		return "timeout"
	default:
		return "other"
	}
}

// Outcome is the result of a guarded generation: Text on success, Err otherwise.
type Outcome struct {
	Text string
	Err  error
}

// OK reports whether generation succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Kind classifies the outcome.
func (o Outcome) Kind() FailureKind {
	return Classify(o.Err)
}

// Classify maps an error to its FailureKind. Timeout wins over rate limiting
// so a deadline hit during backoff is still reported as a timeout.
func Classify(err error) FailureKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrTimeout):
		return KindTimeout
	case IsRateLimited(err):
		return KindRateLimited
	default:
		return KindOther
	}
}
