package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Bass root per bar, one bar every four beats (Am F C G)
var musicProgression = [...]float64{110.00, 87.31, 130.81, 98.00}

// Arpeggio offsets in semitones over each root, one step per eighth note
var musicArp = [...]float64{12, 19, 24, 19}

// MusicGenerator plays an endless kick, bass and square-arp groove
type MusicGenerator struct {
	sr       beep.SampleRate
	pos      int
	beat     int // samples per beat
	kickLen  int
	arpPhase float64
}

// NewMusicGenerator creates a looping background track at the given tempo
func NewMusicGenerator(sr beep.SampleRate, bpm int) *MusicGenerator {
	if bpm <= 0 {
		bpm = 100
	}
	return &MusicGenerator{
		sr:      sr,
		beat:    sr.N(time.Minute / time.Duration(bpm)),
		kickLen: sr.N(100 * time.Millisecond),
	}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.beat
		beatIndex := g.pos / g.beat
		root := musicProgression[(beatIndex/4)%len(musicProgression)]
		t := float64(g.pos) / float64(g.sr)

		// Kick on every beat, pitch falls with its envelope
		kick := 0.0
		if beatPos < g.kickLen {
			kickEnv := 1.0 - float64(beatPos)/float64(g.kickLen)
			kickFreq := 60 * (1 + 2*kickEnv)
			kick = 0.35 * kickEnv * math.Sin(2*math.Pi*kickFreq*float64(beatPos)/float64(g.sr))
		}

		bass := 0.12 * math.Sin(2*math.Pi*root*t)

		// Eighth-note arpeggio, decaying within each step
		step := g.beat / 2
		stepIndex := (g.pos / step) % len(musicArp)
		arpFreq := root * math.Pow(2, musicArp[stepIndex]/12)
		g.arpPhase += arpFreq / float64(g.sr)
		g.arpPhase -= math.Floor(g.arpPhase)
		arpEnv := 1.0 - float64(g.pos%step)/float64(step)
		arp := -0.04 * arpEnv
		if g.arpPhase < 0.5 {
			arp = -arp
		}

		sample := kick + bass + arp
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}
