// Package engine runs the fixed-timestep frame loop: it gathers input from
// the terminal and optional providers, advances the session by one frame,
// and renders the resulting view.
package engine

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/retro-pong/audio"
	"github.com/lixenwraith/retro-pong/constants"
	"github.com/lixenwraith/retro-pong/input"
	"github.com/lixenwraith/retro-pong/render"
	"github.com/lixenwraith/retro-pong/session"
	"github.com/lixenwraith/retro-pong/status"
	"github.com/lixenwraith/retro-pong/vmath"
)

// statsReporter is implemented by sound backends that count cues
type statsReporter interface {
	Stats() audio.Stats
}

// Game owns the screen, the session and the per-frame wiring between them
type Game struct {
	cfg      Config
	log      logrus.FieldLogger
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	session  *session.Session
	keyboard *input.Keyboard
	inputs   input.Multi
	gesture  *input.Gesture
	sound    SoundPlayer
	clock    Clock

	metrics  *status.Registry
	frames   *atomic.Int64
	overruns *atomic.Int64
	matches  *atomic.Int64
	frameMax *status.Gauge
	modeName *status.Label
	lastMode session.Mode
}

// NewGame builds a game drawing to screen; a nil sound player runs silent
func NewGame(cfg Config, screen tcell.Screen, sound SoundPlayer, log logrus.FieldLogger) (*Game, error) {
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = constants.FrameUpdateInterval
	}

	var sink session.AudioSink
	if sound != nil {
		sink = cueSink{player: sound}
	}

	sess, err := session.New(cfg.Config, vmath.NewFastRand(cfg.Seed), sink, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	kb := input.NewKeyboard(input.DefaultKeyTable())
	metrics := status.NewRegistry()

	g := &Game{
		cfg:      cfg,
		log:      log,
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen),
		session:  sess,
		keyboard: kb,
		inputs:   input.Multi{kb},
		sound:    sound,
		clock:    NewTimeProvider(),
		metrics:  metrics,
		frames:   metrics.Counters.Get(status.Frames),
		overruns: metrics.Counters.Get(status.FrameOverruns),
		matches:  metrics.Counters.Get(status.Matches),
		frameMax: metrics.Gauges.Get(status.FrameMaxMs),
		modeName: metrics.Labels.Get(status.Mode),
		lastMode: sess.Mode(),
	}
	g.modeName.Set(session.ModeName(g.lastMode))
	return g, nil
}

// AddInput registers an extra provider polled after the keyboard each frame
func (g *Game) AddInput(p input.Provider) {
	g.inputs = append(g.inputs, p)
}

// SetClock replaces the frame timing clock
func (g *Game) SetClock(c Clock) {
	g.clock = c
}

func (g *Game) Session() *session.Session { return g.session }

func (g *Game) Metrics() *status.Registry { return g.metrics }

// HandleEvent routes one terminal event
func (g *Game) HandleEvent(ev tcell.Event) {
	switch ev.(type) {
	case *tcell.EventKey:
		g.keyboard.HandleEvent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// Tick runs one frame and reports whether the game should keep running
func (g *Game) Tick() bool {
	start := g.clock.Now()

	g.session.Update(g.inputs.Poll())
	if g.session.Quit() {
		return false
	}

	if mode := g.session.Mode(); mode != g.lastMode {
		g.modeName.Set(session.ModeName(mode))
		if mode == session.ModeMatch {
			g.matches.Add(1)
		}
		g.lastMode = mode
	}

	g.renderer.RenderFrame(g.session.View())
	g.publish()

	elapsed := g.clock.Now().Sub(start)
	g.frames.Add(1)
	g.frameMax.Max(float64(elapsed) / float64(time.Millisecond))
	if elapsed > g.cfg.FrameInterval {
		g.overruns.Add(1)
		g.log.WithField("elapsed", elapsed).Debug("frame overrun")
	}
	return true
}

// publish copies collaborator counters into the metrics registry
func (g *Game) publish() {
	if r, ok := g.sound.(statsReporter); ok {
		st := r.Stats()
		g.metrics.Counters.Get(status.CuesPlayed).Store(int64(st.Played))
		g.metrics.Counters.Get(status.CuesDropped).Store(int64(st.Dropped))
	}
	if g.gesture != nil {
		g.metrics.Counters.Get(status.GestureFrames).Store(int64(g.gesture.Frames()))
	}
}

// Run drives the frame loop until the player quits or ctx ends
func (g *Game) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if g.cfg.GestureFeed != "" {
		g.openGesture(ctx)
	}

	frameTicker := time.NewTicker(g.cfg.FrameInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 256)
	go g.pollEvents(ctx, eventChan)

	defer func() {
		g.log.WithFields(logrus.Fields(g.metrics.Snapshot())).Info("game loop stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-eventChan:
			g.HandleEvent(ev)
		case <-frameTicker.C:
			if !g.Tick() {
				return nil
			}
		}
	}
}

// pollEvents forwards terminal events until the screen is finalized or ctx ends
func (g *Game) pollEvents(ctx context.Context, out chan<- tcell.Event) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// openGesture attaches the landmark feed; failure leaves keyboard-only control
func (g *Game) openGesture(ctx context.Context) {
	speed := g.cfg.Match.PlayerSpeed
	if speed <= 0 {
		speed = constants.PlayerSpeed
	}
	gesture, err := input.OpenGestureFeed(ctx, g.cfg.GestureFeed, speed, g.log)
	if err != nil {
		g.log.WithError(err).Warn("gesture input unavailable, keyboard only")
		return
	}
	g.gesture = gesture
	g.AddInput(gesture)
	g.log.WithField("feed", g.cfg.GestureFeed).Info("gesture input attached")
}
