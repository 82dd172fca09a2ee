package session

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/retro-pong/constants"
	"github.com/lixenwraith/retro-pong/difficulty"
	"github.com/lixenwraith/retro-pong/engine/fsm"
	"github.com/lixenwraith/retro-pong/match"
	"github.com/lixenwraith/retro-pong/presentation"
)

// Mode is the active screen
type Mode = fsm.StateID

const (
	ModeMenu Mode = iota + 1
	ModeSettings
	ModeDifficultySelect
	ModeDialogue
	ModeMatch
	ModeOutcome
	ModeExit
)

// Main menu rows
const (
	MenuStart = iota
	MenuSettings
	MenuExit
)

// Settings rows
const (
	SettingMusic = iota
	SettingSFX
	SettingLanguage
)

// Cue is an audio trigger event for the sound collaborator
type Cue int

const (
	CueUIMove Cue = iota
	CueDialogueBlip
	CuePaddleHit
	CueScore
)

func (c Cue) String() string {
	switch c {
	case CueUIMove:
		return "ui_move"
	case CueDialogueBlip:
		return "dialogue_blip"
	case CuePaddleHit:
		return "paddle_hit"
	case CueScore:
		return "score"
	default:
		return "unknown"
	}
}

// AudioSink receives fire-and-forget cues and volume changes
// Implementations must not block and swallow their own failures
type AudioSink interface {
	Play(cue Cue)
	SetVolume(music, sfx int)
}

type nopSink struct{}

func (nopSink) Play(Cue)           {}
func (nopSink) SetVolume(int, int) {}

// Settings are the user-adjustable presentation settings
type Settings struct {
	MusicVolume int
	SFXVolume   int
	Language    presentation.Language
}

// DefaultSettings returns mid volume in lang
func DefaultSettings(lang presentation.Language) Settings {
	return Settings{
		MusicVolume: constants.DefaultVolume,
		SFXVolume:   constants.DefaultVolume,
		Language:    lang,
	}
}

// Config is fixed for the lifetime of a session
type Config struct {
	Match        match.Config
	Presentation presentation.Options
	Settings     Settings
}

// MatchView is the read-only match part of a View
type MatchView struct {
	Config     match.Config
	Level      difficulty.Level
	Player     match.Paddle
	Opponent   match.Paddle
	Ball       match.Ball
	Trail      []mgl32.Vec2
	Score      match.Score
	HP         match.HP
	Confidence match.Confidence
	Mood       match.Mood
	Line       string
	ShowLine   bool
}

// View is the read-only snapshot consumed by the renderer
type View struct {
	Mode   Mode
	Text   *presentation.Strings
	Layout presentation.DialogueLayout

	MenuCursor       int
	SettingsCursor   int
	DifficultyCursor int
	Settings         Settings

	Character presentation.Character
	Portrait  presentation.Asset

	// Dialogue typewriter state
	LineIndex    int
	Revealed     string
	LineComplete bool

	Match   *MatchView
	Outcome *presentation.Outcome
}
