package presentation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/retro-pong/asset"
	"github.com/lixenwraith/retro-pong/match"
)

// AssetStatus tells whether an asset came from disk
type AssetStatus int

const (
	AssetMissing AssetStatus = iota
	AssetLoaded
)

func (s AssetStatus) String() string {
	if s == AssetLoaded {
		return "loaded"
	}
	return "missing"
}

// Asset is the result of loading one portrait
// A Missing asset still carries placeholder art so callers never branch on errors
type Asset struct {
	Status AssetStatus
	Path   string
	Lines  []string
}

// Portraits holds one asset per mood
type Portraits [match.MoodCount]Asset

// LoadPortrait reads <dir>/portraits/<mood>.txt, falling back to embedded art
func LoadPortrait(dir string, mood match.Mood) (Asset, error) {
	placeholder := Asset{Status: AssetMissing, Lines: splitArt(asset.DefaultPortraits[mood.String()])}
	if dir == "" {
		return placeholder, nil
	}

	path := filepath.Join(dir, asset.PortraitDir, mood.String()+asset.PortraitExt)
	placeholder.Path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return placeholder, nil
		}
		return placeholder, fmt.Errorf("failed to read portrait %s: %w", path, err)
	}

	lines := splitArt(string(data))
	if len(lines) == 0 {
		return placeholder, nil
	}
	return Asset{Status: AssetLoaded, Path: path, Lines: lines}, nil
}

// LoadPortraits loads every mood; failures are logged and replaced by placeholders
func LoadPortraits(dir string, log logrus.FieldLogger) Portraits {
	var p Portraits
	for m := 0; m < match.MoodCount; m++ {
		mood := match.Mood(m)
		a, err := LoadPortrait(dir, mood)
		if err != nil {
			log.WithError(err).WithField("mood", mood).Warn("portrait unreadable, using placeholder")
		} else if a.Status == AssetMissing && dir != "" {
			log.WithField("path", a.Path).Debug("portrait missing, using placeholder")
		}
		p[m] = a
	}
	return p
}

// For returns the asset for mood
func (p *Portraits) For(mood match.Mood) Asset {
	if mood < 0 || int(mood) >= len(p) {
		return p[match.MoodNeutral]
	}
	return p[mood]
}

// splitArt drops leading/trailing blank lines and trailing whitespace
func splitArt(s string) []string {
	raw := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, strings.TrimRight(l, " \t"))
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
