package consts

// Color is the color flag of a red-black tree node.
type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// GrowthFactor and InitialCapacity define the vector growth policy:
// an empty buffer grows to InitialCapacity, a full one to cap*GrowthFactor.
const (
	GrowthFactor    = 2
	InitialCapacity = 1
)

// FreeListDepth bounds how many released blocks of one length a free list
// keeps around.
const FreeListDepth = 64
