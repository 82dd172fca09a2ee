// Package audio plays the game's sound cues and background music through
// the beep speaker. Every operation is safe without an audio device: until
// Initialize succeeds, cues are counted as dropped and nothing is played.
package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/retro-pong/constants"
)

// Stats counts cue requests since creation
type Stats struct {
	Played  uint64
	Dropped uint64
}

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	cfg         AudioConfig
	log         logrus.FieldLogger
	mixer       *beep.Mixer
	assets      assetBank
	music       *beep.Ctrl
	musicVolume *effects.Volume
	initialized bool

	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewSoundManager creates a sound manager; a nil cfg uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig, log logrus.FieldLogger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = constants.AudioSampleRate
	}
	return &SoundManager{
		cfg:   *cfg,
		log:   log,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and loads optional WAV overrides
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrNotInitialized
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	sm.assets = loadAssets(sm.cfg.AssetDir, rate, sm.log)
	speaker.Play(sm.mixer)
	sm.initialized = true

	sm.log.WithFields(logrus.Fields{
		"sample_rate": sm.cfg.SampleRate,
		"music_asset": sm.assets.music != nil,
	}).Info("audio initialized")
	return nil
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close; clearing the mixer silences output
	sm.music = nil
	sm.musicVolume = nil
	sm.initialized = false
}

// Play fires a one-shot cue, preferring a loaded asset over synthesis
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || st < 0 || st >= soundTypeCount {
		sm.dropped.Add(1)
		return
	}

	var streamer beep.Streamer
	if buf := sm.assets.effects[st]; buf != nil {
		streamer = newVolume(buf.Streamer(0, buf.Len()), sm.cfg.EffectVolumes[st]*sm.cfg.SFXVolume)
	} else {
		streamer = GetSoundEffect(st, &sm.cfg)
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played.Add(1)
}

// StartMusic begins the background loop if it is not already playing
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.music != nil && !sm.music.Paused {
		return
	}

	var track beep.Streamer
	if buf := sm.assets.music; buf != nil {
		track = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	} else {
		track = NewMusicGenerator(beep.SampleRate(sm.cfg.SampleRate), constants.MusicBPM)
	}

	vol := &effects.Volume{Streamer: track, Base: 2}
	setGain(vol, sm.cfg.MusicVolume)
	ctrl := &beep.Ctrl{Streamer: vol, Paused: false}

	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()

	sm.music = ctrl
	sm.musicVolume = vol
}

// StopMusic pauses the background loop
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = true
	speaker.Unlock()
}

// SetVolume applies 0..100 music and effect levels; new cues pick up the effect level
func (sm *SoundManager) SetVolume(music, sfx int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.cfg.MusicVolume = PercentToGain(music)
	sm.cfg.SFXVolume = PercentToGain(sfx)

	if sm.musicVolume != nil {
		speaker.Lock()
		setGain(sm.musicVolume, sm.cfg.MusicVolume)
		speaker.Unlock()
	}
}

// Volumes returns the current music and effect gains
func (sm *SoundManager) Volumes() (music, sfx float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.cfg.MusicVolume, sm.cfg.SFXVolume
}

func (sm *SoundManager) Stats() Stats {
	return Stats{Played: sm.played.Load(), Dropped: sm.dropped.Load()}
}
