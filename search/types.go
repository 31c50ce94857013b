package search

import "errors"

// NotFound is the index returned when the target is absent.
const NotFound = -1

// ErrNilCondition is returned by BinaryFunc when no condition is supplied.
var ErrNilCondition = errors.New("search: condition function is nil")

// Position tells BinaryFunc where the answer lies relative to a probed index.
type Position int

const (
	// Found means the probed index is the answer.
	Found Position = iota
	// Left means the answer lies strictly left of the probed index.
	Left
	// Right means the answer lies strictly right of the probed index.
	Right
)

// String implements fmt.Stringer.
func (p Position) String() string {
	switch p {
	case Found:
		return "found"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
