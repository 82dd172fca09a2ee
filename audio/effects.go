package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/retro-pong/constants"
)

// WaveType selects a voice shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WavePulse // 25% duty, thinner than square
	WaveTriangle
	WaveSaw
	WaveNoise
)

// tone is a single chip-style voice whose pitch glides linearly from one
// frequency to another over its lifetime
type tone struct {
	from, to float64
	wave     WaveType
	rate     float64
	length   int
	pos      int
	phase    float64
	lfsr     uint16
}

// NewOscillator returns a steady tone at freq
func NewOscillator(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, d, wave, rate)
}

// NewSweep returns a tone gliding from one pitch to another
func NewSweep(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &tone{
		from:   from,
		to:     to,
		wave:   wave,
		rate:   float64(rate),
		length: rate.N(d),
		lfsr:   1,
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.length {
		return 0, false
	}
	n := 0
	for ; n < len(samples) && t.pos < t.length; n++ {
		v := t.level()
		samples[n] = [2]float64{v, v}

		freq := t.from + (t.to-t.from)*float64(t.pos)/float64(t.length)
		t.phase += freq / t.rate
		if t.phase >= 1 {
			t.phase -= math.Floor(t.phase)
			t.clockNoise()
		}
		t.pos++
	}
	return n, true
}

func (t *tone) Err() error { return nil }

// level samples the waveform at the current phase
func (t *tone) level() float64 {
	p := t.phase
	switch t.wave {
	case WaveSquare:
		return pulse(p, 0.5)
	case WavePulse:
		return pulse(p, 0.25)
	case WaveTriangle:
		return 1 - 4*math.Abs(p-0.5)
	case WaveSaw:
		return 2*p - 1
	case WaveNoise:
		if t.lfsr&1 == 0 {
			return 1
		}
		return -1
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// clockNoise steps a 15-bit LFSR once per wave period
func (t *tone) clockNoise() {
	bit := (t.lfsr ^ t.lfsr>>1) & 1
	t.lfsr = t.lfsr>>1 | bit<<14
}

func pulse(phase, duty float64) float64 {
	if phase < duty {
		return 1
	}
	return -1
}

// envelope scales a stream by a linear attack, flat hold and linear release
type envelope struct {
	src     beep.Streamer
	attack  int
	release int
	length  int
	pos     int
}

// NewEnvelope trims s to d and shapes its edges
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	e := &envelope{
		src:     s,
		attack:  rate.N(attack),
		release: rate.N(release),
		length:  rate.N(d),
	}
	if e.attack+e.release > e.length {
		e.release = max(e.length-e.attack, 0)
	}
	return e
}

// gain is the envelope level at sample i
func (e *envelope) gain(i int) float64 {
	if i < e.attack {
		return float64(i) / float64(e.attack)
	}
	if left := e.length - i; left < e.release {
		return float64(left) / float64(e.release)
	}
	return 1
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	if left := e.length - e.pos; left < len(samples) {
		samples = samples[:max(left, 0)]
	}
	if len(samples) == 0 {
		return 0, false
	}
	n, ok := e.src.Stream(samples)
	for i := range samples[:n] {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.src.Err() }

// newVolume wraps s in a linear gain
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	v := &effects.Volume{Streamer: s, Base: 2}
	setGain(v, vol)
	return v
}

// setGain converts a linear gain to the Base 2 exponent effects.Volume expects
// math.Log2(0) is -Inf, so zero gain is made silent
func setGain(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(gain)
	v.Silent = false
}

// Sound effect generators

// cue shapes one voice of a sound effect
type cue struct {
	from, to float64
	wave     WaveType
	d        time.Duration
	attack   time.Duration
	release  time.Duration
	gain     float64
}

func (c cue) streamer(rate beep.SampleRate) beep.Streamer {
	v := NewEnvelope(NewSweep(c.from, c.to, c.d, c.wave, rate), c.d, c.attack, c.release, rate)
	if c.gain == 0 || c.gain == 1 {
		return v
	}
	return newVolume(v, c.gain)
}

// CreateUIMoveSound generates a short thin tick for menu navigation
func CreateUIMoveSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	c := cue{from: 660, to: 660, wave: WavePulse,
		d: constants.UIMoveSoundDuration, attack: constants.UIMoveSoundAttack, release: constants.UIMoveSoundRelease}
	return newVolume(c.streamer(rate), cfg.EffectVolumes[SoundUIMove]*cfg.SFXVolume)
}

// CreateBlipSound generates the typewriter voice blip
func CreateBlipSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	c := cue{from: 523.25, to: 523.25, wave: WaveSquare,
		d: constants.BlipSoundDuration, attack: constants.BlipSoundAttack, release: constants.BlipSoundRelease}
	return newVolume(c.streamer(rate), cfg.EffectVolumes[SoundBlip]*cfg.SFXVolume)
}

// CreatePaddleHitSound generates the pong: a square that sags in pitch over a
// triangle an octave up
func CreatePaddleHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d, att, rel := constants.PaddleHitSoundDuration, constants.PaddleHitSoundAttack, constants.PaddleHitSoundRelease

	body := cue{from: 480, to: 440, wave: WaveSquare, d: d, attack: att, release: rel, gain: 0.55}
	ring := cue{from: 960, to: 880, wave: WaveTriangle, d: d, attack: att, release: rel, gain: 0.4}

	mixed := beep.Mix(body.streamer(rate), ring.streamer(rate))
	return newVolume(mixed, cfg.EffectVolumes[SoundPaddleHit]*cfg.SFXVolume)
}

// CreateScoreSound generates a short E5 then a long A5 that bends upward
func CreateScoreSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	first := cue{from: 659.25, to: 659.25, wave: WaveSquare,
		d: constants.ScoreSoundNote1Duration, attack: constants.ScoreSoundAttack, release: constants.ScoreSoundNote1Release}
	second := cue{from: 880, to: 932.33, wave: WaveSquare,
		d: constants.ScoreSoundNote2Duration, attack: constants.ScoreSoundAttack, release: constants.ScoreSoundNote2Release}

	return newVolume(beep.Seq(first.streamer(rate), second.streamer(rate)), cfg.EffectVolumes[SoundScore]*cfg.SFXVolume)
}

// GetSoundEffect returns a synthesized streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundUIMove:
		return CreateUIMoveSound(cfg)
	case SoundBlip:
		return CreateBlipSound(cfg)
	case SoundPaddleHit:
		return CreatePaddleHitSound(cfg)
	case SoundScore:
		return CreateScoreSound(cfg)
	default:
		return nil
	}
}
