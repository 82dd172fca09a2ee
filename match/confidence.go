package match

import (
	"github.com/lixenwraith/retro-pong/constants"
	"github.com/lixenwraith/retro-pong/vmath"
)

// Mood is the three-way classification of the opponent's composure
type Mood int

const (
	MoodNeutral Mood = iota
	MoodAgitated
	MoodDominant
	moodCount
)

// MoodCount is the number of moods
const MoodCount = int(moodCount)

func (m Mood) String() string {
	switch m {
	case MoodAgitated:
		return "agitated"
	case MoodDominant:
		return "dominant"
	default:
		return "neutral"
	}
}

// Confidence is the opponent's composure meter, always within [0, 100]
type Confidence int

// Adjust applies delta and clamps the result
func (c Confidence) Adjust(delta int) Confidence {
	return Confidence(vmath.ClampInt(int(c)+delta, constants.ConfidenceMin, constants.ConfidenceMax))
}

// Mood classifies the meter: <=29 agitated, >=75 dominant, else neutral
func (c Confidence) Mood() Mood {
	switch {
	case c <= constants.ConfidenceAgitatedMax:
		return MoodAgitated
	case c >= constants.ConfidenceDominantMin:
		return MoodDominant
	default:
		return MoodNeutral
	}
}

// MoodFromScore classifies by the opponent's lead in points
func MoodFromScore(s Score) Mood {
	diff := s.Opponent - s.Player
	switch {
	case diff >= constants.ScoreDiffDominant:
		return MoodDominant
	case diff <= constants.ScoreDiffAgitated:
		return MoodAgitated
	default:
		return MoodNeutral
	}
}
