// Package session sequences the screens of the game: menu, settings,
// difficulty select, pre-match dialogue, the match itself and the outcome.
//
// All transitions live in one explicit table (see table.go). The session is
// single-threaded: Update is called once per frame with that frame's input.
package session

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/retro-pong/constants"
	"github.com/lixenwraith/retro-pong/difficulty"
	"github.com/lixenwraith/retro-pong/engine/fsm"
	"github.com/lixenwraith/retro-pong/input"
	"github.com/lixenwraith/retro-pong/match"
	"github.com/lixenwraith/retro-pong/presentation"
	"github.com/lixenwraith/retro-pong/vmath"
)

// Session owns the screen flow and, while one exists, the current match
type Session struct {
	cfg       Config
	log       logrus.FieldLogger
	audio     AudioSink
	rng       *vmath.FastRand
	machine   *fsm.Machine[*Session, input.Nav]
	portraits presentation.Portraits

	settings         Settings
	menuCursor       int
	settingsCursor   int
	difficultyCursor int

	// Per-match state, nil outside Dialogue/Match/Outcome
	character  *presentation.Character
	sim        *match.Simulation
	expression *presentation.State
	outcome    *presentation.Outcome

	// Typewriter
	lineIndex int
	line      []rune
	typed     int
	typeTimer int

	controls match.Controls
	quit     bool
}

// New builds a session in Menu
// A nil audio sink disables sound; a nil rng uses a fixed seed
func New(cfg Config, rng *vmath.FastRand, audio AudioSink, log logrus.FieldLogger) (*Session, error) {
	if audio == nil {
		audio = nopSink{}
	}
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}

	machine, err := buildMachine()
	if err != nil {
		return nil, fmt.Errorf("session table: %w", err)
	}

	s := &Session{
		cfg:       cfg,
		log:       log,
		audio:     audio,
		rng:       rng,
		machine:   machine,
		portraits: presentation.LoadPortraits(cfg.Presentation.AssetDir, log),
		settings:  cfg.Settings,
	}
	s.audio.SetVolume(s.settings.MusicVolume, s.settings.SFXVolume)

	if err := machine.Init(s); err != nil {
		return nil, fmt.Errorf("session init: %w", err)
	}
	return s, nil
}

// Update routes this frame's navigation events, then advances the active mode by one tick
func (s *Session) Update(snap input.Snapshot) {
	if snap.Quit {
		s.quit = true
	}
	if s.quit {
		return
	}

	s.controls = snap.Controls
	for _, nav := range snap.Nav {
		s.route(nav)
	}

	from, ticks := s.machine.State(), s.machine.TicksInState()
	s.machine.Update(s)
	s.logTransition(from, ticks, input.NavNone)
}

func (s *Session) route(nav input.Nav) {
	from, ticks := s.machine.State(), s.machine.TicksInState()
	if s.machine.HandleEvent(s, nav) {
		s.logTransition(from, ticks, nav)
	}
}

// logTransition records a mode change; ticks is the time spent in the old mode
func (s *Session) logTransition(from Mode, ticks uint64, nav input.Nav) {
	if s.machine.State() == from {
		return
	}
	s.log.WithFields(logrus.Fields{
		"from":  ModeName(from),
		"to":    s.machine.StateName(),
		"event": nav,
		"ticks": ticks,
	}).Info("session transition")
}

func (s *Session) Mode() Mode { return s.machine.State() }

// Quit reports whether the process should exit
func (s *Session) Quit() bool { return s.quit }

func (s *Session) Settings() Settings { return s.settings }

// Simulation returns the current match, nil outside Dialogue/Match/Outcome
func (s *Session) Simulation() *match.Simulation { return s.sim }

// Character returns the current opponent persona, nil outside a match
func (s *Session) Character() *presentation.Character { return s.character }

func (s *Session) moveCursor(cursor *int, delta, count int) {
	*cursor = vmath.Wrap(*cursor+delta, count)
	s.audio.Play(CueUIMove)
}

func (s *Session) adjustSetting(dir int) {
	step := dir * constants.VolumeStep
	switch s.settingsCursor {
	case SettingMusic:
		s.settings.MusicVolume = vmath.ClampInt(s.settings.MusicVolume+step, constants.VolumeMin, constants.VolumeMax)
	case SettingSFX:
		s.settings.SFXVolume = vmath.ClampInt(s.settings.SFXVolume+step, constants.VolumeMin, constants.VolumeMax)
	case SettingLanguage:
		s.settings.Language = s.settings.Language.Toggle()
	}
	s.audio.SetVolume(s.settings.MusicVolume, s.settings.SFXVolume)
	s.audio.Play(CueUIMove)
}

// enterMenu resets the menu cursor and discards any match
func (s *Session) enterMenu() {
	s.menuCursor = 0
	s.character = nil
	s.sim = nil
	s.expression = nil
	s.outcome = nil
	s.line = nil
}

// startMatch binds a fresh character and simulation to the selected level
func (s *Session) startMatch() {
	level := difficulty.Clamp(s.difficultyCursor)
	s.character = presentation.NewCharacter(level, s.settings.Language)
	s.sim = match.New(level, s.cfg.Match, s.rng)
	s.expression = presentation.NewState(s.settings.Language, s.rng)
	s.outcome = nil
	s.audio.Play(CueUIMove)

	s.log.WithFields(logrus.Fields{
		"difficulty": level,
		"opponent":   s.character.Name,
		"target":     s.sim.Config().TargetScore,
	}).Info("match created")
}

func (s *Session) loadLine(i int) {
	s.lineIndex = i
	s.line = []rune(s.character.Line(i))
	s.typed = 0
	s.typeTimer = 0
}

func (s *Session) lineComplete() bool {
	return s.typed >= len(s.line)
}

// typewrite reveals one character after every TypewriterPacing idle ticks
func (s *Session) typewrite() {
	s.typeTimer++
	if s.typeTimer <= constants.TypewriterPacing || s.lineComplete() {
		return
	}
	s.typed++
	s.typeTimer = 0
	if s.rng.Intn(constants.TypewriterBlipOdds) == 0 {
		s.audio.Play(CueDialogueBlip)
	}
}

func (s *Session) stepMatch() {
	res := s.sim.Step(s.controls)
	if res.Events.Has(match.EventPaddleHit) {
		s.audio.Play(CuePaddleHit)
	}
	if res.Events.Has(match.EventScore) {
		s.audio.Play(CueScore)
		score := s.sim.Score()
		s.log.WithFields(logrus.Fields{
			"scorer":   res.Scorer,
			"player":   score.Player,
			"opponent": score.Opponent,
		}).Debug("point")
	}
	if s.expression.Observe(s.sim.Mood()) {
		s.log.WithField("mood", s.expression.Mood()).Debug("expression changed")
	}
}

// finishMatch copies the final opponent HP onto the displayed character
func (s *Session) finishMatch() {
	s.character.DisplayHP = s.sim.HP().Opponent
}

func (s *Session) abandonMatch() {
	s.log.WithField("frames", s.sim.Stats().Frames).Info("match abandoned")
}

func (s *Session) enterOutcome() {
	s.outcome = presentation.NewOutcome(s.sim, s.settings.Language)
	s.log.WithFields(logrus.Fields{
		"victory": s.outcome.Victory,
		"summary": s.outcome.String(),
	}).Info("match finished")
}

// View snapshots everything the renderer needs
func (s *Session) View() View {
	v := View{
		Mode:             s.machine.State(),
		Text:             s.settings.Language.Text(),
		Layout:           s.cfg.Presentation.Layout,
		MenuCursor:       s.menuCursor,
		SettingsCursor:   s.settingsCursor,
		DifficultyCursor: s.difficultyCursor,
		Settings:         s.settings,
		Portrait:         s.portraits.For(match.MoodNeutral),
		Outcome:          s.outcome,
	}

	if s.character != nil {
		v.Character = *s.character
		v.LineIndex = s.lineIndex
		v.Revealed = string(s.line[:min(s.typed, len(s.line))])
		v.LineComplete = s.lineComplete()
	}

	if s.sim != nil {
		line, show := s.expression.Line()
		v.Match = &MatchView{
			Config:     s.sim.Config(),
			Level:      s.sim.Level(),
			Player:     s.sim.Player(),
			Opponent:   s.sim.Opponent(),
			Ball:       s.sim.Ball(),
			Trail:      s.sim.Trail(),
			Score:      s.sim.Score(),
			HP:         s.sim.HP(),
			Confidence: s.sim.Confidence(),
			Mood:       s.expression.Mood(),
			Line:       line,
			ShowLine:   show,
		}
		if v.Mode == ModeMatch || v.Mode == ModeOutcome {
			v.Portrait = s.portraits.For(s.expression.Mood())
		}
	}
	return v
}
