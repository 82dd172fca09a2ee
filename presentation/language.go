// Package presentation derives what the opponent shows (portrait, line, HP)
// from match state, and holds the localized text tables.
package presentation

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/retro-pong/difficulty"
)

// Language selects a text table
type Language int

const (
	Spanish Language = iota
	English
	languageCount
)

// ParseLanguage accepts "es" or "en", case-insensitive
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(s) {
	case "es":
		return Spanish, nil
	case "en":
		return English, nil
	}
	return Spanish, fmt.Errorf("unknown language %q", s)
}

// Toggle switches between the two languages
func (l Language) Toggle() Language {
	if l == Spanish {
		return English
	}
	return Spanish
}

func (l Language) String() string {
	if l == English {
		return "EN"
	}
	return "ES"
}

func (l Language) valid() Language {
	if l < Spanish || l >= languageCount {
		return Spanish
	}
	return l
}

// Strings is the UI text of one language
type Strings struct {
	Title, Subtitle             string
	Start, Settings, Exit       string
	Music, SFX, Language, Back  string
	SelectDifficulty            string
	Difficulty                  [difficulty.Count]string
	Player, Opponent            string
	Victory, Defeat, FinalScore string
	ReturnToMenu                string
	ControlsHint, Continue      string
	Confidence                  string

	// Outcome summary row labels
	Score, PlayerHP, OpponentHP, Hits, LongestRally string
}

var texts = [languageCount]Strings{
	Spanish: {
		Title:            "RETRO PONG",
		Subtitle:         "Championship Edition",
		Start:            "INICIAR",
		Settings:         "AJUSTES",
		Exit:             "SALIR",
		Music:            "Música",
		SFX:              "Efectos",
		Language:         "Idioma",
		Back:             "Volver",
		SelectDifficulty: "Selecciona Dificultad",
		Difficulty:       [difficulty.Count]string{"FÁCIL", "NORMAL", "DIFÍCIL", "DIOS"},
		Player:           "Jugador",
		Opponent:         "Oponente",
		Victory:          "¡VICTORIA!",
		Defeat:           "¡DERROTA!",
		FinalScore:       "Puntuación Final",
		ReturnToMenu:     "[ESPACIO] Menú Principal",
		ControlsHint:     "W/S o ↑/↓ mover  ESC menú",
		Continue:         "[ESPACIO] continuar",
		Confidence:       "Confianza",
		Score:            "Marcador",
		PlayerHP:         "HP Jugador",
		OpponentHP:       "HP Oponente",
		Hits:             "Golpes",
		LongestRally:     "Rally más largo",
	},
	English: {
		Title:            "RETRO PONG",
		Subtitle:         "Championship Edition",
		Start:            "START",
		Settings:         "SETTINGS",
		Exit:             "EXIT",
		Music:            "Music",
		SFX:              "Sound FX",
		Language:         "Language",
		Back:             "Back",
		SelectDifficulty: "Select Difficulty",
		Difficulty:       [difficulty.Count]string{"EASY", "NORMAL", "HARD", "GOD"},
		Player:           "Player",
		Opponent:         "Opponent",
		Victory:          "VICTORY!",
		Defeat:           "DEFEAT!",
		FinalScore:       "Final Score",
		ReturnToMenu:     "[SPACE] Main Menu",
		ControlsHint:     "W/S or ↑/↓ move  ESC menu",
		Continue:         "[SPACE] continue",
		Confidence:       "Confidence",
		Score:            "Score",
		PlayerHP:         "Player HP",
		OpponentHP:       "Opponent HP",
		Hits:             "Hits",
		LongestRally:     "Longest rally",
	},
}

// Text returns the UI strings for l; unknown languages fall back to Spanish
func (l Language) Text() *Strings {
	return &texts[l.valid()]
}
