// Package input turns keyboard and gesture sources into one per-frame snapshot.
package input

import "github.com/lixenwraith/retro-pong/match"

// Nav is a discrete UI navigation event
// NavNone is never emitted by providers
type Nav int

const (
	NavNone Nav = iota
	NavUp
	NavDown
	NavLeft
	NavRight
	NavConfirm
	NavEscape
)

func (n Nav) String() string {
	switch n {
	case NavUp:
		return "up"
	case NavDown:
		return "down"
	case NavLeft:
		return "left"
	case NavRight:
		return "right"
	case NavConfirm:
		return "confirm"
	case NavEscape:
		return "escape"
	default:
		return "none"
	}
}

// Snapshot is everything the session consumes for one frame
type Snapshot struct {
	Controls match.Controls
	Nav      []Nav
	Quit     bool
}

// Provider yields one snapshot per frame and never blocks
type Provider interface {
	Poll() Snapshot
}

// Merge combines snapshots from several providers
// Boolean flags are OR-ed, the first non-zero paddle delta wins, nav events keep provider order
func Merge(snaps ...Snapshot) Snapshot {
	var out Snapshot
	for _, s := range snaps {
		out.Controls.MoveUp = out.Controls.MoveUp || s.Controls.MoveUp
		out.Controls.MoveDown = out.Controls.MoveDown || s.Controls.MoveDown
		if out.Controls.PaddleDelta == 0 {
			out.Controls.PaddleDelta = s.Controls.PaddleDelta
		}
		out.Nav = append(out.Nav, s.Nav...)
		out.Quit = out.Quit || s.Quit
	}
	return out
}

// Multi polls several providers and merges their output
type Multi []Provider

func (m Multi) Poll() Snapshot {
	snaps := make([]Snapshot, 0, len(m))
	for _, p := range m {
		if p != nil {
			snaps = append(snaps, p.Poll())
		}
	}
	return Merge(snaps...)
}
