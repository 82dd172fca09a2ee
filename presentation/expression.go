package presentation

import (
	"github.com/lixenwraith/retro-pong/constants"
	"github.com/lixenwraith/retro-pong/match"
	"github.com/lixenwraith/retro-pong/vmath"
)

// Per-mood line pools, indexed [language][mood]
var moodLines = [languageCount][match.MoodCount][]string{
	Spanish: {
		match.MoodNeutral: {
			"Tranqui nomás.",
			"A ver pues, demuéstrame.",
			"Yo confío.",
			"Vamos a ver...",
			"Okay, okay.",
		},
		match.MoodDominant: {
			"No pues, yo mando.",
			"Uy, ¿ya te cansaste?",
			"Ven, te enseño.",
			"Así me gusta.",
			"Muy fácil esto.",
			"¿Eso es todo?",
		},
		match.MoodAgitated: {
			"Oye, ya no seas abusivo.",
			"Ya me estás humillando.",
			"¡Aaaa, calla!",
			"No juegues así.",
			"¡Tramposo!",
			"¡Para, para!",
		},
	},
	English: {
		match.MoodNeutral: {
			"Nice and easy.",
			"Go on, show me.",
			"I trust myself.",
			"We'll see...",
			"Okay, okay.",
		},
		match.MoodDominant: {
			"Sorry, I'm in charge here.",
			"Tired already?",
			"Come here, I'll teach you.",
			"That's how I like it.",
			"This is way too easy.",
			"Is that all?",
		},
		match.MoodAgitated: {
			"Hey, stop bullying me.",
			"You're humiliating me.",
			"Ugh, shut up!",
			"Don't play like that.",
			"Cheater!",
			"Stop, stop!",
		},
	},
}

// State is the opponent's presentation during a match
// A new line is picked only when the mood changes, which also restarts the display timer
type State struct {
	lang  Language
	rng   *vmath.FastRand
	mood  match.Mood
	line  string
	timer int
}

// NewState starts neutral with a line already showing
func NewState(lang Language, rng *vmath.FastRand) *State {
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	p := &State{lang: lang.valid(), rng: rng}
	p.pick(match.MoodNeutral)
	return p
}

// Observe feeds the mood for the current frame and reports whether it changed
func (p *State) Observe(mood match.Mood) bool {
	if p.timer > 0 {
		p.timer--
	}
	if mood == p.mood {
		return false
	}
	p.pick(mood)
	return true
}

func (p *State) pick(mood match.Mood) {
	pool := moodLines[p.lang][mood]
	p.mood = mood
	p.line = pool[p.rng.Intn(len(pool))]
	p.timer = constants.ExpressionDisplayFrames
}

func (p *State) Mood() match.Mood { return p.mood }

// Line returns the current line and whether it is still within its display time
func (p *State) Line() (string, bool) {
	return p.line, p.timer > 0
}

// FramesLeft is the remaining display time of the current line
func (p *State) FramesLeft() int { return p.timer }
