package audio

import (
	"github.com/lixenwraith/retro-pong/constants"
)

// AudioConfig holds sound settings; volumes are linear gains in [0, 1]
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	SFXVolume     float64
	MusicVolume   float64
	EffectVolumes [soundTypeCount]float64

	// AssetDir optionally holds sounds/<name>.wav overrides and sounds/music.wav
	AssetDir string
}

// DefaultAudioConfig returns the stock mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:     true,
		SampleRate:  constants.AudioSampleRate,
		SFXVolume:   PercentToGain(constants.DefaultVolume),
		MusicVolume: PercentToGain(constants.DefaultVolume),
		EffectVolumes: [soundTypeCount]float64{
			SoundUIMove:    0.5,
			SoundBlip:      0.3,
			SoundPaddleHit: 0.7,
			SoundScore:     0.8,
		},
	}
}

// PercentToGain maps a 0..100 setting onto a clamped linear gain
func PercentToGain(p int) float64 {
	g := float64(p) / 100.0
	if g < 0 {
		g = 0
	}
	if g > 1 {
		g = 1
	}
	return g
}
