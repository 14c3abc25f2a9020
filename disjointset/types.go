package disjointset

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when an element index is outside [0, Len()).
var ErrIndexOutOfRange = errors.New("disjointset: index out of range")

// IndexError reports the offending index and the size of the set.
// It unwraps to ErrIndexOutOfRange.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("disjointset: index %d out of range [0, %d)", e.Index, e.Len)
}

// Unwrap lets errors.Is(err, ErrIndexOutOfRange) match.
func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }
