package render

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/retro-pong/constants"
	"github.com/lixenwraith/retro-pong/presentation"
	"github.com/lixenwraith/retro-pong/session"
	"github.com/lixenwraith/retro-pong/vmath"
)

// viewport maps simulation units onto a rectangle of cells
type viewport struct {
	x, y, w, h     int
	fieldW, fieldH float32
}

// cell converts a simulation point to screen coordinates, clamped inside the viewport
func (vp viewport) cell(p mgl32.Vec2) (int, int) {
	cx := int(p.X() / vp.fieldW * float32(vp.w))
	cy := int(p.Y() / vp.fieldH * float32(vp.h))
	return vp.x + vmath.ClampInt(cx, 0, vp.w-1), vp.y + vmath.ClampInt(cy, 0, vp.h-1)
}

// span converts a vertical simulation interval to an inclusive row range
func (vp viewport) span(top, bottom float32) (int, int) {
	r0 := int(top / vp.fieldH * float32(vp.h))
	r1 := int((bottom - 0.001) / vp.fieldH * float32(vp.h))
	return vp.y + vmath.ClampInt(r0, 0, vp.h-1), vp.y + vmath.ClampInt(r1, 0, vp.h-1)
}

func (r *TerminalRenderer) drawMatch(v session.View, style tcell.Style) {
	m := v.Match
	if m == nil {
		return
	}

	r.drawHUD(v, style)

	bottom := 1 // controls hint row
	if v.Layout == presentation.LayoutFixed {
		bottom += constants.FixedDialogueHeight
	}

	panel := 0
	if r.width >= constants.PortraitPanelMinScreenWidth {
		panel = constants.PortraitPanelWidth
	}

	// Field border occupies rows 2..height-bottom-1
	boxX, boxY := 0, 2
	boxW, boxH := r.width-panel, r.height-boxY-bottom
	r.drawBox(boxX, boxY, boxW, boxH, style.Foreground(RgbDim))

	vp := viewport{
		x: boxX + 1, y: boxY + 1, w: boxW - 2, h: boxH - 2,
		fieldW: m.Config.Width, fieldH: m.Config.Height,
	}
	r.drawField(vp, m, style)

	if panel > 0 {
		px := boxX + boxW + 1
		r.drawPortrait(px, boxY, v.Portrait, style.Foreground(MoodColor(m.Mood)))
		if v.Layout == presentation.LayoutFloating && m.ShowLine {
			r.drawSpeech(px-1, boxY+len(v.Portrait.Lines)+1, panel, "", m.Line,
				constants.DialogueMaxLines, style, style.Foreground(MoodColor(m.Mood)))
		}
	} else if v.Layout == presentation.LayoutFloating && m.ShowLine {
		// No room for a panel: float the line over the opponent's half
		r.drawText(vp.x+vp.w/2+2, vp.y, m.Line, style.Foreground(MoodColor(m.Mood)))
	}

	if v.Layout == presentation.LayoutFixed {
		line := ""
		if m.ShowLine {
			line = m.Line
		}
		r.drawSpeech(0, r.height-bottom, r.width, v.Character.Name, line, constants.FixedDialogueHeight-2,
			style, style.Foreground(MoodColor(m.Mood)))
	}

	r.drawCentered(r.height-1, v.Text.ControlsHint, style.Foreground(RgbDim))
}

// drawHUD draws both HP bars with the score between them and, when enabled, the confidence meter
func (r *TerminalRenderer) drawHUD(v session.View, style tcell.Style) {
	m := v.Match
	t := v.Text

	x := r.drawText(0, 0, t.Player+" ", style.Foreground(RgbPlayer))
	x = r.drawBar(x, 0, constants.HPBarWidth, m.HP.Player, constants.MaxHP, HPColor(m.HP.Player), style)
	r.drawText(x+1, 0, fmt.Sprintf("%3d", m.HP.Player), style)

	score := fmt.Sprintf("%d - %d", m.Score.Player, m.Score.Opponent)
	r.drawCentered(0, score, style.Bold(true))

	label := fmt.Sprintf("%3d ", m.HP.Opponent)
	right := r.width - constants.HPBarWidth - utf8.RuneCountInString(v.Character.Name) - 1
	r.drawText(right-utf8.RuneCountInString(label), 0, label, style)
	x = r.drawBar(right, 0, constants.HPBarWidth, m.HP.Opponent, constants.MaxHP, HPColor(m.HP.Opponent), style)
	r.drawText(x+1, 0, v.Character.Name, style.Foreground(RgbOpponent))

	if m.Config.EnableConfidence {
		c := int(m.Confidence)
		x = r.drawText(0, 1, t.Confidence+" ", style.Foreground(RgbDim))
		x = r.drawBar(x, 1, constants.ConfidenceBarWidth, c, constants.ConfidenceMax, MoodColor(m.Confidence.Mood()), style)
		r.drawText(x+1, 1, fmt.Sprintf("%d%%", c), style)
	}
}

func (r *TerminalRenderer) drawField(vp viewport, m *session.MatchView, style tcell.Style) {
	// Center net
	netX := vp.x + vp.w/2
	for y := vp.y; y < vp.y+vp.h; y += 2 {
		r.setCell(netX, y, '┆', style.Foreground(RgbNet))
	}

	for i, p := range m.Trail {
		x, y := vp.cell(p)
		r.setCell(x, y, '·', style.Foreground(trailColor(i, len(m.Trail))))
	}

	r.drawPaddle(vp, m.Player.Center(), m.Player.Top(), m.Player.Bottom(), style.Foreground(RgbPlayer))
	r.drawPaddle(vp, m.Opponent.Center(), m.Opponent.Top(), m.Opponent.Bottom(), style.Foreground(RgbOpponent))

	bx, by := vp.cell(m.Ball.Center())
	r.setCell(bx, by, '●', style.Foreground(RgbBall))
}

func (r *TerminalRenderer) drawPaddle(vp viewport, center mgl32.Vec2, top, bottom float32, style tcell.Style) {
	x, _ := vp.cell(center)
	y0, y1 := vp.span(top, bottom)
	for y := y0; y <= y1; y++ {
		r.setCell(x, y, '█', style)
	}
}
