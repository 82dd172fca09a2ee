package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/retro-pong/constants"
	"github.com/lixenwraith/retro-pong/match"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(220, 220, 220) // Body text
	RgbDim        = tcell.NewRGBColor(110, 110, 130) // Hints and borders
	RgbTitle      = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbSelected   = tcell.NewRGBColor(0, 255, 255)   // Cyan cursor row

	RgbPlayer   = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbOpponent = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbBall     = tcell.NewRGBColor(255, 255, 255)
	RgbTrail    = tcell.NewRGBColor(90, 90, 110)
	RgbNet      = tcell.NewRGBColor(60, 60, 80)

	RgbHPHealthy = tcell.NewRGBColor(0, 200, 0)   // Normal Green
	RgbHPWarning = tcell.NewRGBColor(255, 255, 0) // Bright Yellow
	RgbHPDanger  = tcell.NewRGBColor(255, 0, 0)   // Red
	RgbBarEmpty  = tcell.NewRGBColor(50, 50, 50)

	RgbVictory = tcell.NewRGBColor(50, 255, 50)
	RgbDefeat  = tcell.NewRGBColor(255, 120, 120)

	RgbDialogueBorder = tcell.NewRGBColor(180, 180, 180)
	RgbSpeaker        = tcell.NewRGBColor(255, 192, 203) // Pink
)

// HPColor returns the bar color for a hit point value: >50 green, >25 yellow, else red
func HPColor(hp int) tcell.Color {
	switch {
	case hp >= constants.HPHealthyMin:
		return RgbHPHealthy
	case hp >= constants.HPWarningMin:
		return RgbHPWarning
	default:
		return RgbHPDanger
	}
}

// MoodColor tints the opponent's expression line
func MoodColor(m match.Mood) tcell.Color {
	switch m {
	case match.MoodAgitated:
		return RgbHPWarning
	case match.MoodDominant:
		return RgbOpponent
	default:
		return RgbText
	}
}
