// Package status publishes runtime counters from the frame loop to readers
// on other goroutines (logging at exit, the stats viewer).
package status

import (
	"sync"
	"sync/atomic"

	"github.com/elliotchance/orderedmap/v2"
)

// Metric names published by the engine
const (
	Frames        = "frames"
	FrameOverruns = "frame_overruns"
	FrameMaxMs    = "frame_max_ms"
	Mode          = "mode"
	Matches       = "matches"
	CuesPlayed    = "cues_played"
	CuesDropped   = "cues_dropped"
	GestureFrames = "gesture_frames"
)

// Metrics is a named set of metrics of one kind
// Registration locks; writers cache the returned pointer and update it lock-free
type Metrics[T any] struct {
	mu    sync.RWMutex
	items *orderedmap.OrderedMap[string, *T]
}

func NewMetrics[T any]() *Metrics[T] {
	return &Metrics[T]{items: orderedmap.NewOrderedMap[string, *T]()}
}

// Get returns the metric for name, registering it on first use
func (m *Metrics[T]) Get(name string) *T {
	m.mu.RLock()
	ptr, ok := m.items.Get(name)
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items.Get(name); ok {
		return ptr
	}
	ptr = new(T)
	m.items.Set(name, ptr)
	return ptr
}

// Each visits metrics in registration order
func (m *Metrics[T]) Each(fn func(name string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for el := m.items.Front(); el != nil; el = el.Next() {
		fn(el.Key, el.Value)
	}
}

func (m *Metrics[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items.Len()
}

// Registry groups counters, gauges and labels
type Registry struct {
	Counters *Metrics[atomic.Int64]
	Gauges   *Metrics[Gauge]
	Labels   *Metrics[Label]
}

func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetrics[atomic.Int64](),
		Gauges:   NewMetrics[Gauge](),
		Labels:   NewMetrics[Label](),
	}
}

// Snapshot copies every current value into one map, suitable for logrus.Fields
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.Counters.Len()+r.Gauges.Len()+r.Labels.Len())
	r.Counters.Each(func(name string, c *atomic.Int64) { out[name] = c.Load() })
	r.Gauges.Each(func(name string, g *Gauge) { out[name] = g.Get() })
	r.Labels.Each(func(name string, l *Label) { out[name] = l.Get() })
	return out
}
