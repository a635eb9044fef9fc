package seq

import (
	"go.ytsaurus.tech/library/go/core/xerrors"
)

var (
	// ErrInvalidRange is returned when start and end do not satisfy 0 <= start <= end <= length.
	ErrInvalidRange = xerrors.NewSentinel("invalid range")
	// ErrStaleView is returned when the backing sequence of a View changed its length.
	ErrStaleView = xerrors.NewSentinel("stale view")
	// ErrIndexOutOfRange is returned when an index is outside of [0, length).
	ErrIndexOutOfRange = xerrors.NewSentinel("index out of range")
	// ErrUnsupported is returned by length-changing calls on fixed-length collections.
	ErrUnsupported = xerrors.NewSentinel("unsupported operation")
)

func checkRange(length, start, end int) error {
	if start < 0 || start > end || end > length {
		return ErrInvalidRange.Wrap(xerrors.Errorf("[%d, %d) is not within [0, %d]", start, end, length))
	}
	return nil
}

func checkIndex(length, i int) error {
	if i < 0 || i >= length {
		return ErrIndexOutOfRange.Wrap(xerrors.Errorf("index %d, length %d", i, length))
	}
	return nil
}

// CheckRange reports whether [start, end) is a valid range of a sequence of given length.
func CheckRange(length, start, end int) error {
	return checkRange(length, start, end)
}
