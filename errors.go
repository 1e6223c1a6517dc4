package bitgrid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when a word buffer does not hold exactly
	// WordWidth*Height words.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidDimension is returned when a dimension is negative.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrOutOfRange is returned when cell coordinates fall outside the grid.
	ErrOutOfRange = errors.New("out of range")

	// ErrSizeMismatch is returned when two grids of different shape are combined.
	ErrSizeMismatch = errors.New("size mismatch")

	// ErrInvalidOffset is returned when an expansion offset does not move whole words.
	ErrInvalidOffset = errors.New("invalid offset")
)

// LengthError indicates a word buffer whose length does not match the grid shape.
//
// errors.Is(err, ErrInvalidLength) reports true for a *LengthError.
type LengthError struct {
	Op       string
	Expected int
	Actual   int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: %v: (wordWidth * height) %d does not equal len(data) %d",
		e.Op, ErrInvalidLength, e.Expected, e.Actual)
}

func (e *LengthError) Is(target error) bool { return target == ErrInvalidLength }

// InvalidDimensionError indicates a negative word width or height.
type InvalidDimensionError struct {
	WordWidth int
	Height    int
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("%v: wordWidth=%d height=%d", ErrInvalidDimension, e.WordWidth, e.Height)
}

func (e *InvalidDimensionError) Is(target error) bool { return target == ErrInvalidDimension }

// OutOfRangeError indicates cell coordinates outside the grid.
type OutOfRangeError struct {
	Op     string
	X, Y   int
	Width  int
	Height int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: %v: x=%d y=%d (width=%d height=%d)",
		e.Op, ErrOutOfRange, e.X, e.Y, e.Width, e.Height)
}

func (e *OutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }

// SizeMismatchError indicates an operation on two grids of different shape.
type SizeMismatchError struct {
	Op             string
	WordWidth      int
	Height         int
	OtherWordWidth int
	OtherHeight    int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("%s: %v: %dx%d vs %dx%d words",
		e.Op, ErrSizeMismatch, e.WordWidth, e.Height, e.OtherWordWidth, e.OtherHeight)
}

func (e *SizeMismatchError) Is(target error) bool { return target == ErrSizeMismatch }
