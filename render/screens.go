package render

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/retro-pong/constants"
	"github.com/lixenwraith/retro-pong/presentation"
	"github.com/lixenwraith/retro-pong/session"
)

const cursorMark = "> "

// drawOptions draws a centered vertical list starting at row y with the cursor row highlighted
func (r *TerminalRenderer) drawOptions(y int, options []string, cursor int, style tcell.Style) {
	for i, opt := range options {
		label := "  " + opt + "  "
		s := style
		if i == cursor {
			label = cursorMark + opt + "  "
			s = style.Foreground(RgbSelected).Bold(true)
		}
		r.drawCentered(y+i*2, label, s)
	}
}

func (r *TerminalRenderer) drawMenu(v session.View, style tcell.Style) {
	t := v.Text
	top := r.height / 4

	r.drawCentered(top, t.Title, style.Foreground(RgbTitle).Bold(true))
	r.drawCentered(top+1, t.Subtitle, style.Foreground(RgbDim))
	r.drawOptions(top+4, []string{t.Start, t.Settings, t.Exit}, v.MenuCursor, style)
}

func (r *TerminalRenderer) drawSettings(v session.View, style tcell.Style) {
	t := v.Text
	top := r.height / 4

	r.drawCentered(top, t.Settings, style.Foreground(RgbTitle).Bold(true))
	rows := []string{
		fmt.Sprintf("%-10s < %3d >", t.Music, v.Settings.MusicVolume),
		fmt.Sprintf("%-10s < %3d >", t.SFX, v.Settings.SFXVolume),
		fmt.Sprintf("%-10s < %3s >", t.Language, v.Settings.Language),
	}
	r.drawOptions(top+3, rows, v.SettingsCursor, style)
	r.drawCentered(top+3+len(rows)*2+1, "[ESC] "+t.Back, style.Foreground(RgbDim))
}

func (r *TerminalRenderer) drawDifficulty(v session.View, style tcell.Style) {
	t := v.Text
	top := r.height / 4

	r.drawCentered(top, t.SelectDifficulty, style.Foreground(RgbTitle).Bold(true))
	r.drawOptions(top+3, t.Difficulty[:], v.DifficultyCursor, style)
	r.drawCentered(top+3+len(t.Difficulty)*2+1, "[ESC] "+t.Back, style.Foreground(RgbDim))
}

// drawPortrait draws art lines with their top-left at (x, y), returning the art width
func (r *TerminalRenderer) drawPortrait(x, y int, a presentation.Asset, style tcell.Style) int {
	width := 0
	for i, line := range a.Lines {
		r.drawText(x, y+i, line, style)
		width = max(width, utf8.RuneCountInString(line))
	}
	return width
}

// drawSpeech draws a bordered box holding name and wrapped text, clipped to maxLines
func (r *TerminalRenderer) drawSpeech(x, y, w int, name, text string, maxLines int, style tcell.Style, textStyle tcell.Style) int {
	lines := wrapText(text, w-4)
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	h := max(len(lines), 1) + 2
	r.drawBox(x, y, w, h, style.Foreground(RgbDialogueBorder))
	if name != "" {
		r.drawText(x+2, y, " "+name+" ", style.Foreground(RgbSpeaker).Bold(true))
	}
	for i, line := range lines {
		r.drawText(x+2, y+1+i, line, textStyle)
	}
	return h
}

func (r *TerminalRenderer) drawDialogue(v session.View, style tcell.Style) {
	t := v.Text
	c := v.Character

	header := fmt.Sprintf("%s  [%s]  HP %d", c.Name, t.Difficulty[c.Level], c.DisplayHP)
	r.drawCentered(1, header, style.Foreground(RgbOpponent).Bold(true))

	portraitY := 3
	boxW := min(constants.DialogueWrapWidth+4, r.width-2)

	var boxX, boxY int
	if v.Layout == presentation.LayoutFixed {
		r.drawPortrait((r.width-portraitWidth(v.Portrait))/2, portraitY, v.Portrait, style.Foreground(RgbOpponent))
		boxX = (r.width - boxW) / 2
		boxY = r.height - constants.DialogueMaxLines - 4
	} else {
		artW := r.drawPortrait(2, portraitY, v.Portrait, style.Foreground(RgbOpponent))
		boxX = 2 + artW + 2
		boxW = min(boxW, r.width-boxX-1)
		boxY = portraitY + 1
	}

	h := r.drawSpeech(boxX, boxY, boxW, c.Name, v.Revealed, constants.DialogueMaxLines, style, style)

	progress := fmt.Sprintf("%d/%d", v.LineIndex+1, len(c.Dialogue))
	r.drawText(boxX+boxW-utf8.RuneCountInString(progress)-2, boxY+h-1, progress, style.Foreground(RgbDim))
	if v.LineComplete {
		r.drawCentered(r.height-2, t.Continue, style.Foreground(RgbDim))
	}
}

func portraitWidth(a presentation.Asset) int {
	w := 0
	for _, line := range a.Lines {
		w = max(w, utf8.RuneCountInString(line))
	}
	return w
}

func (r *TerminalRenderer) drawOutcome(v session.View, style tcell.Style) {
	if v.Outcome == nil {
		return
	}
	t := v.Text
	o := v.Outcome
	top := 2

	headStyle := style.Foreground(RgbDefeat).Bold(true)
	if o.Victory {
		headStyle = style.Foreground(RgbVictory).Bold(true)
	}
	r.drawCentered(top, o.Headline, headStyle)

	artW := portraitWidth(v.Portrait)
	r.drawPortrait((r.width-artW)/2, top+2, v.Portrait, style.Foreground(RgbOpponent))

	y := top + 3 + len(v.Portrait.Lines)
	labelW := 0
	o.Each(func(label, _ string) {
		labelW = max(labelW, utf8.RuneCountInString(label))
	})
	o.Each(func(label, value string) {
		r.drawCentered(y, fmt.Sprintf("%-*s  %s", labelW, label, value), style)
		y++
	})

	r.drawCentered(r.height-2, t.ReturnToMenu, style.Foreground(RgbDim))
}
