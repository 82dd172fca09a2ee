package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/sirupsen/logrus"
)

const (
	// SoundDir is the asset subdirectory holding WAV overrides
	SoundDir = "sounds"
	// MusicName is the base name of the optional music track
	MusicName = "music"

	resampleQuality = 4
)

// assetBank holds decoded WAV overrides; nil entries fall back to synthesis
type assetBank struct {
	effects [soundTypeCount]*beep.Buffer
	music   *beep.Buffer
}

// SoundPath returns the override path for a named sound under dir
func SoundPath(dir, name string) string {
	return filepath.Join(dir, SoundDir, name+".wav")
}

// LoadWAV decodes a WAV file fully into memory at the given sample rate
func LoadWAV(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	// wav streamer closes the file
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != rate {
		src = beep.Resample(resampleQuality, format.SampleRate, rate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if buf.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyAsset)
	}
	return buf, nil
}

// loadAssets reads every known override; missing files are silent, broken ones are logged
func loadAssets(dir string, rate beep.SampleRate, log logrus.FieldLogger) assetBank {
	var bank assetBank
	if dir == "" {
		return bank
	}

	load := func(name string) *beep.Buffer {
		path := SoundPath(dir, name)
		buf, err := LoadWAV(path, rate)
		switch {
		case err == nil:
			log.WithField("path", path).Debug("sound asset loaded")
			return buf
		case errors.Is(err, fs.ErrNotExist):
			log.WithField("path", path).Debug("sound asset missing, using synthesized cue")
		default:
			log.WithError(err).WithField("path", path).Warn("sound asset unreadable")
		}
		return nil
	}

	for st := SoundType(0); st < soundTypeCount; st++ {
		bank.effects[st] = load(st.String())
	}
	bank.music = load(MusicName)
	return bank
}
