package constants

import "time"

// Audio Engine
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MusicBPM is the tempo of the synthesized background track
	MusicBPM = 100
)

// Cue Timing
const (
	UIMoveSoundDuration = 40 * time.Millisecond
	UIMoveSoundAttack   = 2 * time.Millisecond
	UIMoveSoundRelease  = 20 * time.Millisecond

	PaddleHitSoundDuration = 60 * time.Millisecond
	PaddleHitSoundAttack   = 2 * time.Millisecond
	PaddleHitSoundRelease  = 40 * time.Millisecond

	ScoreSoundNote1Duration = 90 * time.Millisecond
	ScoreSoundNote2Duration = 220 * time.Millisecond
	ScoreSoundAttack        = 5 * time.Millisecond
	ScoreSoundNote1Release  = 40 * time.Millisecond
	ScoreSoundNote2Release  = 160 * time.Millisecond

	BlipSoundDuration = 25 * time.Millisecond
	BlipSoundAttack   = 2 * time.Millisecond
	BlipSoundRelease  = 10 * time.Millisecond
)
