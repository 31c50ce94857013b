package problems

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("problems: grid must have at least one row and one column")

	// ErrNonRectangular indicates grid rows of differing lengths.
	ErrNonRectangular = errors.New("problems: all grid rows must have the same length")

	// ErrEmptyInput indicates an empty slice where at least one element is needed.
	ErrEmptyInput = errors.New("problems: input must not be empty")
)
