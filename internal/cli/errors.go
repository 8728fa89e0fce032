package cli

// constError is an error type usable as a constant sentinel.
type constError string

func (e constError) Error() string { return string(e) }

const (
	// ErrNotInteractive is returned when the UI is launched without a terminal.
	ErrNotInteractive constError = "the interactive UI needs a terminal; use 'matcompare search', 'popular' or 'compare' instead"
	// ErrNoMatch is returned when a compare query finds nothing.
	ErrNoMatch constError = "no material matches query"
	// ErrSameMaterial is returned when both compare queries resolve to one material.
	ErrSameMaterial constError = "both queries resolve to the same material"
	// ErrUnsupportedFormat is returned for an unknown --output value.
	ErrUnsupportedFormat constError = "unsupported output format"
)
