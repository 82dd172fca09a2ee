package status

import (
	"math"
	"sync/atomic"
)

// Gauge is an atomically updated float64 reading
// Zero value is ready to use
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(val float64) {
	g.bits.Store(math.Float64bits(val))
}

func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Max raises the gauge to val if val is larger, returning the stored value
func (g *Gauge) Max(val float64) float64 {
	for {
		old := g.bits.Load()
		cur := math.Float64frombits(old)
		if val <= cur {
			return cur
		}
		if g.bits.CompareAndSwap(old, math.Float64bits(val)) {
			return val
		}
	}
}

// Label is an atomically replaced short string
type Label struct {
	ptr atomic.Pointer[string]
}

func (l *Label) Set(val string) {
	l.ptr.Store(&val)
}

func (l *Label) Get() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
