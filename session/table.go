package session

import (
	"github.com/lixenwraith/retro-pong/constants"
	"github.com/lixenwraith/retro-pong/engine/fsm"
	"github.com/lixenwraith/retro-pong/input"
)

type transition = fsm.Transition[*Session, input.Nav]

var modeNames = map[Mode]string{
	ModeMenu:             "Menu",
	ModeSettings:         "Settings",
	ModeDifficultySelect: "DifficultySelect",
	ModeDialogue:         "Dialogue",
	ModeMatch:            "Match",
	ModeOutcome:          "Outcome",
	ModeExit:             "Exit",
}

// ModeName returns a printable mode name
func ModeName(m Mode) string {
	if n, ok := modeNames[m]; ok {
		return n
	}
	return "None"
}

// buildMachine wires the session transition table
// Transitions of a state are evaluated in the order listed; the first passing guard wins
func buildMachine() (*fsm.Machine[*Session, input.Nav], error) {
	m := fsm.NewMachine[*Session, input.Nav](ModeMenu)

	uiMove := func(s *Session) { s.audio.Play(CueUIMove) }

	// Menu
	menu := m.AddState(ModeMenu, modeNames[ModeMenu])
	menu.OnEnter = append(menu.OnEnter, (*Session).enterMenu)
	for _, t := range []transition{
		{Event: input.NavUp, TargetID: ModeMenu, Action: func(s *Session) { s.moveCursor(&s.menuCursor, -1, constants.MenuOptionCount) }},
		{Event: input.NavDown, TargetID: ModeMenu, Action: func(s *Session) { s.moveCursor(&s.menuCursor, 1, constants.MenuOptionCount) }},
		{Event: input.NavConfirm, Guard: menuAt(MenuStart), TargetID: ModeDifficultySelect, Action: uiMove},
		{Event: input.NavConfirm, Guard: menuAt(MenuSettings), TargetID: ModeSettings, Action: uiMove},
		{Event: input.NavConfirm, Guard: menuAt(MenuExit), TargetID: ModeExit, Action: uiMove},
	} {
		m.AddTransition(ModeMenu, t)
	}

	// Settings
	settings := m.AddState(ModeSettings, modeNames[ModeSettings])
	settings.OnEnter = append(settings.OnEnter, func(s *Session) { s.settingsCursor = 0 })
	for _, t := range []transition{
		{Event: input.NavUp, TargetID: ModeSettings, Action: func(s *Session) { s.moveCursor(&s.settingsCursor, -1, constants.SettingsOptionCount) }},
		{Event: input.NavDown, TargetID: ModeSettings, Action: func(s *Session) { s.moveCursor(&s.settingsCursor, 1, constants.SettingsOptionCount) }},
		{Event: input.NavLeft, TargetID: ModeSettings, Action: func(s *Session) { s.adjustSetting(-1) }},
		{Event: input.NavRight, TargetID: ModeSettings, Action: func(s *Session) { s.adjustSetting(1) }},
		{Event: input.NavEscape, TargetID: ModeMenu, Action: uiMove},
	} {
		m.AddTransition(ModeSettings, t)
	}

	// Difficulty select
	diff := m.AddState(ModeDifficultySelect, modeNames[ModeDifficultySelect])
	diff.OnEnter = append(diff.OnEnter, func(s *Session) { s.difficultyCursor = constants.DefaultDifficultyCursor })
	for _, t := range []transition{
		{Event: input.NavUp, TargetID: ModeDifficultySelect, Action: func(s *Session) { s.moveCursor(&s.difficultyCursor, -1, constants.DifficultyCount) }},
		{Event: input.NavDown, TargetID: ModeDifficultySelect, Action: func(s *Session) { s.moveCursor(&s.difficultyCursor, 1, constants.DifficultyCount) }},
		{Event: input.NavConfirm, TargetID: ModeDialogue, Action: (*Session).startMatch},
		{Event: input.NavEscape, TargetID: ModeMenu, Action: uiMove},
	} {
		m.AddTransition(ModeDifficultySelect, t)
	}

	// Dialogue
	dialogue := m.AddState(ModeDialogue, modeNames[ModeDialogue])
	dialogue.OnEnter = append(dialogue.OnEnter, func(s *Session) { s.loadLine(0) })
	dialogue.OnUpdate = append(dialogue.OnUpdate, (*Session).typewrite)
	for _, t := range []transition{
		{Event: input.NavConfirm, Guard: lastLineShown, TargetID: ModeMatch, Action: uiMove},
		{Event: input.NavConfirm, Guard: (*Session).lineComplete, TargetID: ModeDialogue, Action: func(s *Session) {
			s.loadLine(s.lineIndex + 1)
			s.audio.Play(CueUIMove)
		}},
		{Event: input.NavConfirm, TargetID: ModeDialogue, Action: func(s *Session) {
			s.typed = len(s.line)
			s.audio.Play(CueUIMove)
		}},
	} {
		m.AddTransition(ModeDialogue, t)
	}

	// Match
	play := m.AddState(ModeMatch, modeNames[ModeMatch])
	play.OnUpdate = append(play.OnUpdate, (*Session).stepMatch)
	for _, t := range []transition{
		{Event: input.NavEscape, TargetID: ModeMenu, Action: (*Session).abandonMatch},
		{Guard: func(s *Session) bool { return s.sim.Terminated() }, TargetID: ModeOutcome, Action: (*Session).finishMatch},
	} {
		m.AddTransition(ModeMatch, t)
	}

	// Outcome
	outcome := m.AddState(ModeOutcome, modeNames[ModeOutcome])
	outcome.OnEnter = append(outcome.OnEnter, (*Session).enterOutcome)
	m.AddTransition(ModeOutcome, transition{Event: input.NavConfirm, TargetID: ModeMenu, Action: uiMove})

	// Exit is terminal
	exit := m.AddState(ModeExit, modeNames[ModeExit])
	exit.OnEnter = append(exit.OnEnter, func(s *Session) { s.quit = true })

	return m, m.Validate()
}

func menuAt(row int) fsm.GuardFunc[*Session] {
	return func(s *Session) bool { return s.menuCursor == row }
}

func lastLineShown(s *Session) bool {
	return s.lineComplete() && s.lineIndex >= len(s.character.Dialogue)-1
}
