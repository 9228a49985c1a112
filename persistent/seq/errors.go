package seq

import "errors"

var (
	// ErrEmptySequence signals that an element has been requested from an
	// empty sequence.
	ErrEmptySequence = errors.New("seq: sequence is empty")
	// ErrIndexOutOfRange signals a position outside of a sequence.
	ErrIndexOutOfRange = errors.New("seq: index out of range")
)
