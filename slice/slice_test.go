package slice

import "testing"

import (
	"math"
)

func TestSizeOf(t *testing.T) {
	if SizeOf[uint64]() != 8 {
		t.Fatalf("expected 8 got %d", SizeOf[uint64]())
	}
	if SizeOf[struct{}]() != 0 {
		t.Fatalf("expected 0 got %d", SizeOf[struct{}]())
	}
}

func TestMaxLen(t *testing.T) {
	if MaxLen[uint64]() != math.MaxInt/8 {
		t.Fatalf("wrong max len %d", MaxLen[uint64]())
	}
	if MaxLen[struct{}]() != math.MaxInt {
		t.Fatalf("zero sized types should not be bounded")
	}
}

func TestSameBlock(t *testing.T) {
	a := make([]int, 4)
	b := make([]int, 4)
	if !SameBlock(a, a[:2]) {
		t.Fatal("a prefix view is the same block")
	}
	if SameBlock(a, a[1:]) {
		t.Fatal("an offset view does not start at the same slot")
	}
	if SameBlock(a, b) {
		t.Fatal("distinct allocations")
	}
	if !SameBlock[int](nil, nil) {
		t.Fatal("nil blocks are the same")
	}
}

func TestOne(t *testing.T) {
	x := 7
	block := One(&x)
	if len(block) != 1 || cap(block) != 1 {
		t.Fatalf("bad block %v", block)
	}
	block[0] = 9
	if x != 9 {
		t.Fatal("One should alias the slot")
	}
}
