package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/zeebo/xxh3"

	"github.com/lixenwraith/retro-pong/audio"
	"github.com/lixenwraith/retro-pong/constants"
	"github.com/lixenwraith/retro-pong/engine"
	"github.com/lixenwraith/retro-pong/presentation"
)

// options holds raw command-line values before validation
type options struct {
	debug       bool
	seed        string
	targetScore int
	maxSpeed    float64
	confidence  bool
	deflection  bool
	trail       bool
	layout      string
	lang        string
	music       int
	sfx         int
	noAudio     bool
	assets      string
	gestureFeed string
	sentryDSN   string
	statsview   string
}

func registerFlags(fs *flag.FlagSet) *options {
	o := &options{}
	fs.BoolVar(&o.debug, "debug", false, "Write debug logs to logs/retro-pong.log")
	fs.StringVar(&o.seed, "seed", "", "Seed string for a reproducible session (default: clock)")
	fs.IntVar(&o.targetScore, "target-score", constants.DefaultTargetScore, "Points needed to win: 10 or 12")
	fs.Float64Var(&o.maxSpeed, "max-speed", constants.DefaultMaxBallSpeed, "Ball speed cap per axis, 15..25")
	fs.BoolVar(&o.confidence, "confidence", true, "Drive opponent expressions from the confidence meter")
	fs.BoolVar(&o.deflection, "deflection", false, "Deflect the ball by paddle hit offset")
	fs.BoolVar(&o.trail, "trail", false, "Draw the ball trail")
	fs.StringVar(&o.layout, "dialogue-layout", "floating", "Match dialogue layout: floating or fixed")
	fs.StringVar(&o.lang, "lang", "es", "Language: es or en")
	fs.IntVar(&o.music, "music", constants.DefaultVolume, "Music volume 0..100")
	fs.IntVar(&o.sfx, "sfx", constants.DefaultVolume, "Sound effect volume 0..100")
	fs.BoolVar(&o.noAudio, "no-audio", false, "Disable the audio device")
	fs.StringVar(&o.assets, "assets", "", "Directory with portraits/ and sounds/ overrides")
	fs.StringVar(&o.gestureFeed, "gesture-feed", "", "JSON-lines hand landmark stream (file or pipe)")
	fs.StringVar(&o.sentryDSN, "sentry-dsn", "", "Report crashes to this Sentry DSN")
	fs.StringVar(&o.statsview, "statsview", "", "Serve runtime stats on this address, e.g. localhost:18066")
	return o
}

// config validates options into the immutable engine configuration
func (o *options) config() (engine.Config, error) {
	cfg := engine.DefaultConfig()

	if o.targetScore != constants.DefaultTargetScore && o.targetScore != constants.AltTargetScore {
		return cfg, fmt.Errorf("target score must be %d or %d, got %d",
			constants.DefaultTargetScore, constants.AltTargetScore, o.targetScore)
	}
	if o.maxSpeed < constants.MinMaxBallSpeed || o.maxSpeed > constants.MaxMaxBallSpeed {
		return cfg, fmt.Errorf("max speed must be in [%d, %d], got %g",
			constants.MinMaxBallSpeed, constants.MaxMaxBallSpeed, o.maxSpeed)
	}
	for _, v := range []int{o.music, o.sfx} {
		if v < constants.VolumeMin || v > constants.VolumeMax {
			return cfg, fmt.Errorf("volume must be in [%d, %d], got %d", constants.VolumeMin, constants.VolumeMax, v)
		}
	}

	lang, err := presentation.ParseLanguage(o.lang)
	if err != nil {
		return cfg, err
	}
	layout, err := presentation.ParseLayout(o.layout)
	if err != nil {
		return cfg, err
	}

	cfg.Match.TargetScore = o.targetScore
	cfg.Match.MaxBallSpeed = float32(o.maxSpeed)
	cfg.Match.EnableConfidence = o.confidence
	cfg.Match.EnableDeflection = o.deflection
	cfg.Match.EnableTrail = o.trail

	cfg.Presentation = presentation.Options{Language: lang, Layout: layout, AssetDir: o.assets}
	cfg.Settings.Language = lang
	cfg.Settings.MusicVolume = o.music
	cfg.Settings.SFXVolume = o.sfx

	cfg.Audio.Enabled = !o.noAudio
	cfg.Audio.AssetDir = o.assets
	cfg.Audio.MusicVolume = audio.PercentToGain(o.music)
	cfg.Audio.SFXVolume = audio.PercentToGain(o.sfx)

	cfg.GestureFeed = o.gestureFeed
	cfg.Seed = hashSeed(o.seed, time.Now)
	return cfg, nil
}

// hashSeed maps a seed string to a FastRand seed; empty falls back to the clock
func hashSeed(s string, now func() time.Time) uint64 {
	if s == "" {
		return uint64(now().UnixNano())
	}
	return xxh3.HashString(s)
}
