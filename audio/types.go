package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundUIMove    SoundType = iota // Menu navigation and confirm
	SoundBlip                       // Dialogue typewriter
	SoundPaddleHit                  // Ball meets paddle
	SoundScore                      // Point scored
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundUIMove:    "ui_move",
	SoundBlip:      "blip",
	SoundPaddleHit: "paddle_hit",
	SoundScore:     "score",
}

func (st SoundType) String() string {
	if st < 0 || st >= soundTypeCount {
		return "unknown"
	}
	return soundNames[st]
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrEmptyAsset     = errors.New("audio asset has no samples")
)
