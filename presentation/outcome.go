package presentation

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/lixenwraith/retro-pong/match"
)

// Outcome is the read-only result screen of a finished match
type Outcome struct {
	Victory  bool
	Headline string
	Rows     *orderedmap.OrderedMap[string, string]
}

// NewOutcome summarizes sim; ties count as defeats
func NewOutcome(sim *match.Simulation, lang Language) *Outcome {
	t := lang.Text()
	score, hp, stats := sim.Score(), sim.HP(), sim.Stats()

	o := &Outcome{
		Victory: sim.Victory(),
		Rows:    orderedmap.NewOrderedMap[string, string](),
	}
	if o.Victory {
		o.Headline = t.Victory
	} else {
		o.Headline = t.Defeat
	}

	o.Rows.Set(t.FinalScore, fmt.Sprintf("%d - %d", score.Player, score.Opponent))
	o.Rows.Set(t.PlayerHP, fmt.Sprintf("%d", hp.Player))
	o.Rows.Set(t.OpponentHP, fmt.Sprintf("%d", hp.Opponent))
	o.Rows.Set(t.Confidence, fmt.Sprintf("%d%%", sim.Confidence()))
	o.Rows.Set(t.Hits, fmt.Sprintf("%d - %d", stats.PlayerHits, stats.OpponentHits))
	o.Rows.Set(t.LongestRally, fmt.Sprintf("%d", stats.LongestRally))
	return o
}

// Each visits rows in insertion order
func (o *Outcome) Each(fn func(label, value string)) {
	for _, key := range o.Rows.Keys() {
		v, _ := o.Rows.Get(key)
		fn(key, v)
	}
}

// String renders rows as "[label=value ...]" for logs
func (o *Outcome) String() string {
	s := "["
	count := o.Rows.Len()
	o.Each(func(label, value string) {
		s += fmt.Sprintf("%s=%s", label, value)
		count--
		if count > 0 {
			s += " "
		}
	})
	return s + "]"
}
