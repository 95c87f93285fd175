package alloc

import (
	"fmt"
)

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

import (
	"github.com/AniTigerSib/STL-Containers/logutil"
)

// Metered counts the traffic going through an allocator and logs every
// block at debug level.
type Metered[T any] struct {
	inner      Allocator[T]
	log        *zap.Logger
	allocs     prometheus.Counter
	frees      prometheus.Counter
	slotAllocs prometheus.Counter
	slotFrees  prometheus.Counter
}

func NewMetered[T any](inner Allocator[T], name string) *Metered[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	var zero T
	return &Metered[T]{
		inner: inner,
		log: logutil.Named("alloc").With(
			zap.String("strategy", name),
			zap.String("type", fmt.Sprintf("%T", zero))),
		allocs:     BlockCounter.WithLabelValues(name, "allocate"),
		frees:      BlockCounter.WithLabelValues(name, "deallocate"),
		slotAllocs: SlotCounter.WithLabelValues(name, "allocate"),
		slotFrees:  SlotCounter.WithLabelValues(name, "deallocate"),
	}
}

func (m *Metered[T]) Allocate(n int) []T {
	block := m.inner.Allocate(n)
	if n > 0 {
		m.allocs.Inc()
		m.slotAllocs.Add(float64(n))
		m.log.Debug("allocate", zap.Int("slots", n))
	}
	return block
}

func (m *Metered[T]) Deallocate(block []T) {
	n := len(block)
	m.inner.Deallocate(block)
	if n > 0 {
		m.frees.Inc()
		m.slotFrees.Add(float64(n))
		m.log.Debug("deallocate", zap.Int("slots", n))
	}
}
