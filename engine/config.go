package engine

import (
	"time"

	"github.com/lixenwraith/retro-pong/audio"
	"github.com/lixenwraith/retro-pong/constants"
	"github.com/lixenwraith/retro-pong/match"
	"github.com/lixenwraith/retro-pong/presentation"
	"github.com/lixenwraith/retro-pong/session"
)

// Config is collected once at startup and passed down by value
type Config struct {
	session.Config

	Audio audio.AudioConfig

	// Seed feeds the game's random source
	Seed uint64

	// GestureFeed is an optional path to a JSON-lines hand landmark stream
	GestureFeed string

	// FrameInterval is the fixed timestep; zero uses constants.FrameUpdateInterval
	FrameInterval time.Duration
}

// DefaultConfig returns the stock rules in Spanish with the floating dialogue layout
func DefaultConfig() Config {
	lang := presentation.Spanish
	return Config{
		Config: session.Config{
			Match:        match.DefaultConfig(),
			Presentation: presentation.Options{Language: lang, Layout: presentation.LayoutFloating},
			Settings:     session.DefaultSettings(lang),
		},
		Audio:         *audio.DefaultAudioConfig(),
		Seed:          1,
		FrameInterval: constants.FrameUpdateInterval,
	}
}
