package alloc

import (
	"github.com/prometheus/client_golang/prometheus"
)

import (
	"github.com/AniTigerSib/STL-Containers/errors"
)

var (
	BlockCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stl",
			Subsystem: "alloc",
			Name:      "blocks_total",
			Help:      "blocks allocated and released through metered allocators",
		}, []string{"strategy", "op"})

	SlotCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stl",
			Subsystem: "alloc",
			Name:      "slots_total",
			Help:      "element slots allocated and released through metered allocators",
		}, []string{"strategy", "op"})
)

// RegisterMetrics registers the allocator counters with reg. Registering
// twice with the same registry is not an error.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{BlockCounter, SlotCounter} {
		if err := reg.Register(c); err != nil {
			var dup prometheus.AlreadyRegisteredError
			if !errors.As(err, &dup) {
				return err
			}
		}
	}
	return nil
}
