package render

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/retro-pong/vmath"
)

// drawText writes s from (x, y) clipped to the screen and returns the column after the last rune
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	if y < 0 || y >= r.height {
		return x
	}
	for _, ch := range s {
		if x >= r.width {
			break
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}

// drawCentered writes s horizontally centered on row y
func (r *TerminalRenderer) drawCentered(y int, s string, style tcell.Style) {
	x := (r.width - utf8.RuneCountInString(s)) / 2
	r.drawText(x, y, s, style)
}

// fill paints a rectangle with ch
func (r *TerminalRenderer) fill(x, y, w, h int, ch rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			if col >= 0 && col < r.width && row >= 0 && row < r.height {
				r.screen.SetContent(col, row, ch, nil, style)
			}
		}
	}
}

// drawBox draws a single-line border around the w x h rectangle at (x, y) and clears its interior
func (r *TerminalRenderer) drawBox(x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	r.fill(x+1, y+1, w-2, h-2, ' ', style)
	for col := x + 1; col < x+w-1; col++ {
		r.setCell(col, y, tcell.RuneHLine, style)
		r.setCell(col, y+h-1, tcell.RuneHLine, style)
	}
	for row := y + 1; row < y+h-1; row++ {
		r.setCell(x, row, tcell.RuneVLine, style)
		r.setCell(x+w-1, row, tcell.RuneVLine, style)
	}
	r.setCell(x, y, tcell.RuneULCorner, style)
	r.setCell(x+w-1, y, tcell.RuneURCorner, style)
	r.setCell(x, y+h-1, tcell.RuneLLCorner, style)
	r.setCell(x+w-1, y+h-1, tcell.RuneLRCorner, style)
}

func (r *TerminalRenderer) setCell(x, y int, ch rune, style tcell.Style) {
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

// drawBar draws a width-cell meter filled to value/limit, returning the next column
func (r *TerminalRenderer) drawBar(x, y, width, value, limit int, color tcell.Color, style tcell.Style) int {
	filled := 0
	if limit > 0 {
		filled = vmath.ClampInt(value, 0, limit) * width / limit
	}
	for i := 0; i < width; i++ {
		if i < filled {
			r.setCell(x+i, y, '█', style.Foreground(color))
		} else {
			r.setCell(x+i, y, '░', style.Foreground(RgbBarEmpty))
		}
	}
	return x + width
}

// wrapText breaks s into lines of at most width runes on word boundaries
// Words longer than width are split
func wrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur []rune
	for _, word := range strings.Fields(s) {
		w := []rune(word)
		for len(w) > width {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = nil
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(cur) == 0:
			cur = append(cur, w...)
		case len(cur)+1+len(w) <= width:
			cur = append(cur, ' ')
			cur = append(cur, w...)
		default:
			lines = append(lines, string(cur))
			cur = append([]rune(nil), w...)
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}
