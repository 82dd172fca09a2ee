package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/retro-pong/constants"
	"github.com/lixenwraith/retro-pong/match"
)

// Keyboard turns terminal key events into snapshots
// Terminals report presses only, so a paddle key stays held for KeyHoldFrames polls
// after its last press or auto-repeat. Not safe for concurrent use; feed it from the frame loop.
type Keyboard struct {
	table *KeyTable

	nav      []Nav
	upHold   int
	downHold int
	quit     bool
}

func NewKeyboard(table *KeyTable) *Keyboard {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Keyboard{table: table, nav: make([]Nav, 0, 8)}
}

// HandleEvent consumes a tcell key event; other events are ignored
func (k *Keyboard) HandleEvent(ev tcell.Event) {
	if key, ok := ev.(*tcell.EventKey); ok {
		k.Press(key.Key(), key.Rune())
	}
}

// Press records one key press
func (k *Keyboard) Press(key tcell.Key, r rune) {
	b, ok := k.table.Lookup(key, r)
	if !ok {
		return
	}

	if b.Quit {
		k.quit = true
	}
	if b.Nav != NavNone {
		k.nav = append(k.nav, b.Nav)
	}

	switch b.Paddle {
	case PaddleUp:
		k.upHold, k.downHold = constants.KeyHoldFrames, 0
	case PaddleDown:
		k.downHold, k.upHold = constants.KeyHoldFrames, 0
	}
}

// Poll drains queued navigation and advances key holds by one frame
func (k *Keyboard) Poll() Snapshot {
	s := Snapshot{
		Controls: match.Controls{MoveUp: k.upHold > 0, MoveDown: k.downHold > 0},
		Quit:     k.quit,
	}
	if len(k.nav) > 0 {
		s.Nav = append([]Nav(nil), k.nav...)
		k.nav = k.nav[:0]
	}

	if k.upHold > 0 {
		k.upHold--
	}
	if k.downHold > 0 {
		k.downHold--
	}
	return s
}
