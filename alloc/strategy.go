package alloc

import (
	"github.com/AniTigerSib/STL-Containers/consts"
)

// Strategy is the allocation policy a container is constructed with. It is
// not tied to an element type: Rebind turns it into an Allocator for
// whatever the container actually stores (elements, list nodes, tree
// nodes).
type Strategy struct {
	name    string
	pool    int
	budget  *budget
	metered bool
}

type Option func(*Strategy)

// WithName labels the strategy in metrics and logs.
func WithName(name string) Option {
	return func(s *Strategy) {
		s.name = name
	}
}

// WithPool recycles released blocks through a free list holding up to
// depth blocks per length. A depth <= 0 uses consts.FreeListDepth.
func WithPool(depth int) Option {
	return func(s *Strategy) {
		if depth <= 0 {
			depth = consts.FreeListDepth
		}
		s.pool = depth
	}
}

// WithBudget caps the number of live slots. Exceeding it is an allocation
// failure.
func WithBudget(slots int) Option {
	return func(s *Strategy) {
		s.budget = &budget{limit: slots}
	}
}

// WithMetrics routes allocations through a Metered allocator.
func WithMetrics() Option {
	return func(s *Strategy) {
		s.metered = true
	}
}

// Use copies every setting of other, including its budget, so containers
// built with Use(other) share one budget.
func Use(other *Strategy) Option {
	return func(s *Strategy) {
		if other != nil {
			*s = *other
		}
	}
}

func NewStrategy(opts ...Option) *Strategy {
	s := &Strategy{name: "heap"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name is the label used in metrics and logs. A nil strategy is "heap".
func (s *Strategy) Name() string {
	if s == nil {
		return "heap"
	}
	return s.name
}

// Used is the number of live slots charged against the budget, or 0 when
// the strategy has none.
func (s *Strategy) Used() int {
	if s == nil || s.budget == nil {
		return 0
	}
	return s.budget.used
}

// Limit is the budget in slots, or -1 when unbounded.
func (s *Strategy) Limit() int {
	if s == nil || s.budget == nil {
		return -1
	}
	return s.budget.limit
}

// Rebind builds an Allocator for U following s. A nil strategy rebinds to
// Heap.
func Rebind[U any](s *Strategy) Allocator[U] {
	var a Allocator[U] = Heap[U]{}
	if s == nil {
		return a
	}
	if s.pool > 0 {
		a = NewFreeList[U](a, s.pool)
	}
	if s.budget != nil {
		a = newLimited[U](a, s.budget)
	}
	if s.metered {
		a = NewMetered[U](a, s.name)
	}
	return a
}
