package presentation

import (
	"github.com/lixenwraith/retro-pong/constants"
	"github.com/lixenwraith/retro-pong/difficulty"
)

var characterNames = [languageCount][difficulty.Count]string{
	Spanish: {"Novata", "Competidora", "Maestra", "Leyenda"},
	English: {"Rookie", "Contender", "Master", "Legend"},
}

var dialogues = [languageCount][difficulty.Count][]string{
	Spanish: {
		difficulty.Easy: {
			"¡Hola! Soy principiante... ¡Vamos a divertirnos!",
			"Wow, eres rápido... Intentaré seguirte el ritmo.",
			"¡Esto es más difícil de lo que pensaba!",
		},
		difficulty.Normal: {
			"Hmm... Veamos de qué estás hecho.",
			"No está mal... Pero puedo hacerlo mejor.",
			"¡La victoria será mía!",
		},
		difficulty.Hard: {
			"¿Crees que puedes vencerme? ¡Qué ingenuo!",
			"Mis reflejos son superiores a los tuyos.",
			"¡Prepárate para la derrota!",
		},
		difficulty.God: {
			"...",
			"Patético.",
			"Fin del juego.",
		},
	},
	English: {
		difficulty.Easy: {
			"Hi! I'm just a beginner... Let's have fun!",
			"Wow, you're fast... I'll try to keep up.",
			"This is harder than I thought!",
		},
		difficulty.Normal: {
			"Hmm... Let's see what you're made of.",
			"Not bad... But I can do better.",
			"Victory will be mine!",
		},
		difficulty.Hard: {
			"You think you can beat me? How naive!",
			"My reflexes are far beyond yours.",
			"Prepare for defeat!",
		},
		difficulty.God: {
			"...",
			"Pathetic.",
			"Game over.",
		},
	},
}

// Character is the opponent persona bound to one match
type Character struct {
	Level     difficulty.Level
	Name      string
	Dialogue  []string
	DisplayHP int
}

// NewCharacter builds the persona for level in lang; invalid levels are clamped
func NewCharacter(level difficulty.Level, lang Language) *Character {
	level = difficulty.Clamp(int(level))
	lang = lang.valid()
	return &Character{
		Level:     level,
		Name:      characterNames[lang][level],
		Dialogue:  dialogues[lang][level],
		DisplayHP: constants.MaxHP,
	}
}

// Line returns dialogue line i, or "" when out of range
func (c *Character) Line(i int) string {
	if i < 0 || i >= len(c.Dialogue) {
		return ""
	}
	return c.Dialogue[i]
}
