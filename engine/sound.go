package engine

import (
	"github.com/lixenwraith/retro-pong/audio"
	"github.com/lixenwraith/retro-pong/session"
)

// SoundPlayer is the audio backend driven by session cues
type SoundPlayer interface {
	Play(st audio.SoundType)
	SetVolume(music, sfx int)
}

var cueSounds = map[session.Cue]audio.SoundType{
	session.CueUIMove:       audio.SoundUIMove,
	session.CueDialogueBlip: audio.SoundBlip,
	session.CuePaddleHit:    audio.SoundPaddleHit,
	session.CueScore:        audio.SoundScore,
}

// cueSink adapts a SoundPlayer to session.AudioSink
type cueSink struct {
	player SoundPlayer
}

func (c cueSink) Play(cue session.Cue) {
	if st, ok := cueSounds[cue]; ok {
		c.player.Play(st)
	}
}

func (c cueSink) SetVolume(music, sfx int) {
	c.player.SetVolume(music, sfx)
}
