// Package seq provides index-addressed sequences and the operations that
// mutate them in place: range sorting, range shuffling, range reversal and
// fixed-length slice views.
//
// A View aliases a contiguous range of a backing Sequence. It never copies
// elements and rejects every length-changing call. Before touching the
// backing sequence it compares the backing length with the length observed
// at construction time and fails with ErrStaleView on mismatch.
//
// Only the length is compared: a backing sequence that shrinks and grows
// back to its original length is still considered live, even though its
// elements may have moved.
//
// Sorting is an in-place dual-pivot introsort and is not stable.
package seq
