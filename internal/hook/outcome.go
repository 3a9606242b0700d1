package hook

import "fmt"

// Disposition says what the hook run did. It is deliberately separate from
// the error return: a skip is a successful run that changed nothing, and
// callers should never mistake one for the other.
type Disposition int

const (
	// Applied means resolver configuration was attempted for the network.
	Applied Disposition = iota
	// Skipped means a benign condition made the run a no-op.
	Skipped
)

// Outcome is the result of a hook run that did not fail.
type Outcome struct {
	Disposition Disposition
	// Reason explains a skip; empty for Applied.
	Reason string
}

func applied() Outcome {
	return Outcome{Disposition: Applied}
}

func skip(format string, args ...interface{}) Outcome {
	return Outcome{Disposition: Skipped, Reason: fmt.Sprintf(format, args...)}
}

func (o Outcome) String() string {
	if o.Disposition == Applied {
		return "applied"
	}
	return "skipped: " + o.Reason
}
