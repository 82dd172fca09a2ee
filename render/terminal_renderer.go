// Package render draws session snapshots onto a tcell screen.
// It reads the View only and never mutates game state.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/retro-pong/constants"
	"github.com/lixenwraith/retro-pong/session"
)

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewTerminalRenderer creates a renderer bound to screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{screen: screen, width: w, height: h}
}

// RenderFrame renders the entire frame for v
func (r *TerminalRenderer) RenderFrame(v session.View) {
	r.width, r.height = r.screen.Size()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	if r.width < constants.MinScreenWidth || r.height < constants.MinScreenHeight {
		r.drawText(0, 0, "terminal too small", defaultStyle.Foreground(RgbHPDanger))
		r.screen.Show()
		return
	}

	switch v.Mode {
	case session.ModeMenu:
		r.drawMenu(v, defaultStyle)
	case session.ModeSettings:
		r.drawSettings(v, defaultStyle)
	case session.ModeDifficultySelect:
		r.drawDifficulty(v, defaultStyle)
	case session.ModeDialogue:
		r.drawDialogue(v, defaultStyle)
	case session.ModeMatch:
		r.drawMatch(v, defaultStyle)
	case session.ModeOutcome:
		r.drawOutcome(v, defaultStyle)
	}

	r.screen.Show()
}
