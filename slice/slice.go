package slice

import (
	"math"
	"unsafe"
)

// SizeOf is the in-memory size of one T.
func SizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// MaxLen is the largest number of T a single block could ever hold.
func MaxLen[T any]() int {
	size := SizeOf[T]()
	if size == 0 {
		return math.MaxInt
	}
	return int(uintptr(math.MaxInt) / size)
}

// SameBlock reports whether a and b start at the same slot of the same
// allocation. Two nil blocks are the same (empty) block.
func SameBlock[T any](a, b []T) bool {
	return unsafe.SliceData(a) == unsafe.SliceData(b)
}

// One views the single slot p as a one element block.
func One[T any](p *T) []T {
	return unsafe.Slice(p, 1)
}
