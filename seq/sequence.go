package seq

// Sequence is an ordered collection with O(1) indexed reads and writes.
//
// At and Put panic when i is outside of [0, Len()).
type Sequence[T any] interface {
	Len() int
	At(i int) T
	Put(i int, v T)
}

// Resizable is a Sequence whose length may be changed.
type Resizable[T any] interface {
	Sequence[T]

	// Append adds values to the end.
	Append(values ...T) error
	// Insert inserts values before index i, i == Len() appends.
	Insert(i int, values ...T) error
	// RemoveAt removes and returns the element at index i.
	RemoveAt(i int) (T, error)
	// RemoveRange removes elements of [start, end).
	RemoveRange(start, end int) error
	// ReplaceRange replaces elements of [start, end) with values.
	ReplaceRange(start, end int, values ...T) error
	// Clear removes all elements.
	Clear() error
	// SetLen truncates or extends the sequence with zero values.
	SetLen(n int) error
}

// Array adapts a Go slice to Sequence. Its length is fixed.
type Array[T any] []T

func (a Array[T]) Len() int { return len(a) }

func (a Array[T]) At(i int) T { return a[i] }

func (a Array[T]) Put(i int, v T) { a[i] = v }

var (
	_ Sequence[int]  = Array[int](nil)
	_ Resizable[int] = (*List[int])(nil)
	_ Resizable[int] = (*View[int])(nil)
)
