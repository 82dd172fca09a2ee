package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/lixenwraith/retro-pong/audio"
	"github.com/lixenwraith/retro-pong/input"
	"github.com/lixenwraith/retro-pong/match"
	"github.com/lixenwraith/retro-pong/session"
	"github.com/lixenwraith/retro-pong/status"
)

type fakePlayer struct {
	played     []audio.SoundType
	music, sfx int
}

func (f *fakePlayer) Play(st audio.SoundType)  { f.played = append(f.played, st) }
func (f *fakePlayer) SetVolume(music, sfx int) { f.music, f.sfx = music, sfx }
func (f *fakePlayer) Stats() audio.Stats       { return audio.Stats{Played: uint64(len(f.played))} }

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	if err := scr.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	scr.SetSize(100, 40)
	t.Cleanup(scr.Fini)
	return scr
}

func newTestGame(t *testing.T, cfg Config, sound SoundPlayer) (*Game, tcell.SimulationScreen) {
	t.Helper()
	scr := newTestScreen(t)
	log, _ := logtest.NewNullLogger()
	g, err := NewGame(cfg, scr, sound, log)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return g, scr
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

// advanceDialogue confirms once per frame until the match starts
func advanceDialogue(g *Game, k tcell.Key, r rune) {
	for i := 0; i < 100 && g.Session().Mode() == session.ModeDialogue; i++ {
		g.HandleEvent(key(k, r))
		g.Tick()
	}
}

func TestCueSinkMapping(t *testing.T) {
	p := &fakePlayer{}
	sink := cueSink{player: p}

	cues := []session.Cue{session.CueUIMove, session.CueDialogueBlip, session.CuePaddleHit, session.CueScore, session.Cue(99)}
	for _, c := range cues {
		sink.Play(c)
	}
	sink.SetVolume(30, 80)

	want := []audio.SoundType{audio.SoundUIMove, audio.SoundBlip, audio.SoundPaddleHit, audio.SoundScore}
	if len(p.played) != len(want) {
		t.Fatalf("Expected %d sounds, got %d", len(want), len(p.played))
	}
	for i := range want {
		if p.played[i] != want[i] {
			t.Errorf("Expected %s at %d, got %s", want[i], i, p.played[i])
		}
	}
	if p.music != 30 || p.sfx != 80 {
		t.Errorf("Expected volume 30/80, got %d/%d", p.music, p.sfx)
	}
}

func TestNewGamePushesInitialVolume(t *testing.T) {
	p := &fakePlayer{music: -1, sfx: -1}
	newTestGame(t, DefaultConfig(), p)

	if p.music != 50 || p.sfx != 50 {
		t.Errorf("Expected initial volume 50/50, got %d/%d", p.music, p.sfx)
	}
}

func TestTickRoutesKeys(t *testing.T) {
	p := &fakePlayer{}
	g, _ := newTestGame(t, DefaultConfig(), p)

	if g.Session().Mode() != session.ModeMenu {
		t.Fatalf("Expected Menu, got %s", session.ModeName(g.Session().Mode()))
	}

	g.HandleEvent(key(tcell.KeyEnter, 0))
	if !g.Tick() {
		t.Fatal("Expected game to keep running")
	}
	if g.Session().Mode() != session.ModeDifficultySelect {
		t.Errorf("Expected DifficultySelect, got %s", session.ModeName(g.Session().Mode()))
	}
	if len(p.played) != 1 || p.played[0] != audio.SoundUIMove {
		t.Errorf("Expected one UI move sound, got %v", p.played)
	}

	snap := g.Metrics().Snapshot()
	if snap[status.Mode] != "DifficultySelect" {
		t.Errorf("Expected mode label DifficultySelect, got %v", snap[status.Mode])
	}
	if snap[status.Frames] != int64(1) {
		t.Errorf("Expected 1 frame, got %v", snap[status.Frames])
	}
	if snap[status.CuesPlayed] != int64(1) {
		t.Errorf("Expected 1 cue played, got %v", snap[status.CuesPlayed])
	}
}

func TestTickCountsMatches(t *testing.T) {
	g, _ := newTestGame(t, DefaultConfig(), nil)

	g.HandleEvent(key(tcell.KeyEnter, 0))
	g.Tick()
	g.HandleEvent(key(tcell.KeyEnter, 0))
	g.Tick()
	advanceDialogue(g, tcell.KeyRune, ' ')
	if g.Session().Mode() != session.ModeMatch {
		t.Fatalf("Expected Match, got %s", session.ModeName(g.Session().Mode()))
	}
	if got := g.Metrics().Counters.Get(status.Matches).Load(); got != 1 {
		t.Errorf("Expected 1 match, got %d", got)
	}
}

func TestTickHeldKeyMovesPaddle(t *testing.T) {
	g, _ := newTestGame(t, DefaultConfig(), nil)

	g.HandleEvent(key(tcell.KeyEnter, 0))
	g.Tick()
	g.HandleEvent(key(tcell.KeyEnter, 0))
	g.Tick()
	advanceDialogue(g, tcell.KeyEnter, 0)

	before := g.Session().Simulation().Player().Top()
	g.HandleEvent(key(tcell.KeyRune, 'w'))
	g.Tick()
	after := g.Session().Simulation().Player().Top()

	if after >= before {
		t.Errorf("Expected paddle to move up from %f, got %f", before, after)
	}
}

func TestTickQuit(t *testing.T) {
	g, _ := newTestGame(t, DefaultConfig(), nil)

	g.HandleEvent(key(tcell.KeyCtrlC, 0))
	if g.Tick() {
		t.Error("Expected Tick to stop after Ctrl+C")
	}
}

func TestTickOverruns(t *testing.T) {
	g, _ := newTestGame(t, DefaultConfig(), nil)
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	g.SetClock(clock)

	g.Tick()
	if got := g.overruns.Load(); got != 0 {
		t.Errorf("Expected no overruns with a frozen clock, got %d", got)
	}

	clock.SetStep(40 * time.Millisecond)
	g.Tick()
	g.Tick()
	if got := g.overruns.Load(); got != 2 {
		t.Errorf("Expected 2 overruns, got %d", got)
	}
	if got := g.frameMax.Get(); got != 40 {
		t.Errorf("Expected max frame time 40ms, got %f", got)
	}
}

type stubProvider struct {
	snap input.Snapshot
}

func (s stubProvider) Poll() input.Snapshot { return s.snap }

func TestAddInputMergesProviders(t *testing.T) {
	g, _ := newTestGame(t, DefaultConfig(), nil)
	g.AddInput(stubProvider{snap: input.Snapshot{Nav: []input.Nav{input.NavConfirm}}})

	g.Tick()
	if g.Session().Mode() != session.ModeDifficultySelect {
		t.Errorf("Expected extra provider to confirm, got %s", session.ModeName(g.Session().Mode()))
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	g, scr := newTestGame(t, DefaultConfig(), nil)
	scr.InjectKey(tcell.KeyCtrlC, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := g.Run(ctx); err != nil {
		t.Errorf("Expected clean exit, got %v", err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	g, _ := newTestGame(t, DefaultConfig(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := g.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
	if g.frames.Load() == 0 {
		t.Error("Expected at least one frame before cancel")
	}
}

func TestRunMissingGestureFeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GestureFeed = filepath.Join(t.TempDir(), "missing.jsonl")

	scr := newTestScreen(t)
	log, hook := logtest.NewNullLogger()
	g, err := NewGame(cfg, scr, nil, log)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	g.Run(ctx)

	warned := false
	for _, e := range hook.AllEntries() {
		if e.Message == "gesture input unavailable, keyboard only" {
			warned = true
		}
	}
	if !warned {
		t.Error("Expected warning for missing gesture feed")
	}
	if len(g.inputs) != 1 {
		t.Errorf("Expected keyboard only, got %d providers", len(g.inputs))
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Match != match.DefaultConfig() {
		t.Error("Expected default match rules")
	}
	if cfg.FrameInterval <= 0 {
		t.Error("Expected positive frame interval")
	}
	if !cfg.Audio.Enabled {
		t.Error("Expected audio enabled by default")
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if now := mock.Now(); !now.Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, now)
	}

	mock.Advance(time.Hour)
	if now := mock.Now(); !now.Equal(start.Add(time.Hour)) {
		t.Errorf("Expected %v after Advance, got %v", start.Add(time.Hour), now)
	}

	mock.SetStep(time.Second)
	first := mock.Now()
	second := mock.Now()
	if second.Sub(first) != time.Second {
		t.Errorf("Expected 1s auto step, got %v", second.Sub(first))
	}
}
