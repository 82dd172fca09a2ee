package input

import "github.com/gdamore/tcell/v2"

// PaddleDir is the paddle direction a key holds
type PaddleDir uint8

const (
	PaddleNone PaddleDir = iota
	PaddleUp
	PaddleDown
)

// Binding describes what a key does, without function pointers
type Binding struct {
	Nav    Nav
	Paddle PaddleDir
	Quit   bool
}

// KeyTable maps keys to bindings
type KeyTable struct {
	// Special keys (arrows, Enter, Escape, Ctrl+*)
	Keys map[tcell.Key]Binding

	// Printable rune bindings, matched case-insensitively
	Runes map[rune]Binding
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Binding{
			tcell.KeyCtrlC:  {Quit: true},
			tcell.KeyEscape: {Nav: NavEscape},
			tcell.KeyEnter:  {Nav: NavConfirm},
			tcell.KeyUp:     {Nav: NavUp, Paddle: PaddleUp},
			tcell.KeyDown:   {Nav: NavDown, Paddle: PaddleDown},
			tcell.KeyLeft:   {Nav: NavLeft},
			tcell.KeyRight:  {Nav: NavRight},
		},
		Runes: map[rune]Binding{
			' ': {Nav: NavConfirm},
			'w': {Paddle: PaddleUp},
			's': {Paddle: PaddleDown},
		},
	}
}

// Lookup resolves a key; r is only consulted for tcell.KeyRune
func (kt *KeyTable) Lookup(key tcell.Key, r rune) (Binding, bool) {
	if key == tcell.KeyRune {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		b, ok := kt.Runes[r]
		return b, ok
	}
	b, ok := kt.Keys[key]
	return b, ok
}
