package transfertrace

import "fmt"

// MalformedValuePolicy decides what happens when a frame value is not valid hexadecimal.
type MalformedValuePolicy int

const (
	// SubstituteZero treats the frame as moving zero and keeps walking.
	// The problem is reported as a MalformedValueError diagnostic.
	SubstituteZero MalformedValuePolicy = iota

	// FailTrace aborts the walk of the whole trace with the MalformedValueError.
	FailTrace
)

// ParseMalformedValuePolicy maps a configuration string ("zero" or "fail") to a policy.
func ParseMalformedValuePolicy(s string) (MalformedValuePolicy, error) {
	switch s {
	case "", "zero":
		return SubstituteZero, nil
	case "fail":
		return FailTrace, nil
	default:
		return 0, fmt.Errorf("unknown malformed value policy %q", s)
	}
}

func (p MalformedValuePolicy) String() string {
	switch p {
	case SubstituteZero:
		return "zero"
	case FailTrace:
		return "fail"
	default:
		return fmt.Sprintf("MalformedValuePolicy(%d)", int(p))
	}
}

// config holds the walk settings shared by Walk and Collect.
type config struct {
	malformedValuePolicy MalformedValuePolicy
}

// Option customizes Walk and Collect.
type Option func(*config)

// WithMalformedValuePolicy sets how malformed frame values are handled.
//
// Default: SubstituteZero.
func WithMalformedValuePolicy(p MalformedValuePolicy) Option {
	return func(c *config) {
		c.malformedValuePolicy = p
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		malformedValuePolicy: SubstituteZero,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
