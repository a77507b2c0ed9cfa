package scan

import (
	"fmt"
	"time"
)

// Outcome is the classified result of one probe.
type Outcome int

const (
	OutcomeFound Outcome = iota
	OutcomeNotFound
	OutcomeUnknown
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "FOUND"
	case OutcomeNotFound:
		return "NOT_FOUND"
	case OutcomeUnknown:
		return "UNKNOWN"
	case OutcomeError:
		return "ERROR"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the immutable record of one probe. HTTPStatus is zero when the
// request never completed; ErrorDetail is set iff Outcome is OutcomeError.
type Result struct {
	Platform    string
	URL         string
	Outcome     Outcome
	HTTPStatus  int
	Elapsed     time.Duration
	ErrorDetail string
}

// Config tunes the probe executor.
type Config struct {
	UserAgent    string
	Concurrency  int
	Timeout      time.Duration
	MaxBodyBytes int64

	// MaxJitter is the upper bound of the random delay before each probe,
	// spreading the initial burst across the concurrency window.
	MaxJitter time.Duration
}
