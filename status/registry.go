package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the simulation and renderer
const (
	KeyTicks        = "sim.ticks"
	KeyElapsed      = "sim.elapsed"
	KeyGatePending  = "gate.pending"
	KeyGateResolved = "gate.resolved"
	KeyRecycled     = "pool.recycled"
	KeyAssetLoaded  = "asset.loaded"
	KeyAssetFailed  = "asset.failed"
	KeyPlayerTilt   = "player.tilt"
	KeyFrames       = "render.frames"
)

// Registry is the central metrics facade
// Systems cache pointers during init; Update loops write directly to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Summary renders all metrics as one sorted "key=value" line for the debug bar
func (r *Registry) Summary() string {
	var b strings.Builder
	r.Ints.Range(func(key string, v *atomic.Int64) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%d", key, v.Load())
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%.2f", key, v.Get())
	})
	return b.String()
}
