package menu

import (
	"errors"
	"fmt"
)

// Option pairs a display label with the value handed back when it is chosen.
// Labels may carry annotations or emoji; values are opaque tokens.
type Option struct {
	Label string
	Value string
}

var (
	// ErrCancelled is returned when the user backs out of a selection.
	// It is an outcome, not a failure; callers usually map it to exit 130.
	ErrCancelled = errors.New("selection cancelled")

	// ErrNoOptions is returned when a menu is invoked with an empty list.
	ErrNoOptions = errors.New("no options to select from")

	// ErrValueCount is returned when labels and values differ in length.
	ErrValueCount = errors.New("label/value count mismatch")
)

// Pair builds an Option list from parallel label and value slices.
// A nil values slice means each value defaults to its label.
func Pair(labels, values []string) ([]Option, error) {
	if len(labels) == 0 {
		return nil, ErrNoOptions
	}
	if values == nil {
		values = labels
	}
	if len(values) != len(labels) {
		return nil, fmt.Errorf("%w: %d labels, %d values", ErrValueCount, len(labels), len(values))
	}
	opts := make([]Option, len(labels))
	for i := range labels {
		opts[i] = Option{Label: labels[i], Value: values[i]}
	}
	return opts, nil
}
