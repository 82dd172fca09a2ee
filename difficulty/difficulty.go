// Package difficulty defines the fixed opponent profiles selectable before a match.
package difficulty

import "fmt"

// Level is one of the four discrete difficulty levels
type Level int

const (
	Easy Level = iota
	Normal
	Hard
	God
	levelCount
)

// Profile is the immutable tuning record for a level
type Profile struct {
	BallSpeed      float32 // initial |vx| and |vy| on serve
	AISpeed        float32 // opponent paddle step per frame
	ReactionFactor float32 // multiplier on the opponent's tracking error, <= 1
}

var profiles = [levelCount]Profile{
	Easy:   {BallSpeed: 5, AISpeed: 3, ReactionFactor: 0.7},
	Normal: {BallSpeed: 6, AISpeed: 5, ReactionFactor: 0.85},
	Hard:   {BallSpeed: 7, AISpeed: 7, ReactionFactor: 0.95},
	God:    {BallSpeed: 8, AISpeed: 8, ReactionFactor: 1.0},
}

// Count is the number of selectable levels
const Count = int(levelCount)

// Clamp maps any integer onto the nearest valid level
func Clamp(l int) Level {
	if l < int(Easy) {
		return Easy
	}
	if l > int(God) {
		return God
	}
	return Level(l)
}

// Valid reports whether l is one of the discrete levels
func (l Level) Valid() bool {
	return l >= Easy && l < levelCount
}

// Profile returns the tuning record; invalid levels are clamped first
func (l Level) Profile() Profile {
	return profiles[Clamp(int(l))]
}

func (l Level) String() string {
	switch l {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	case God:
		return "god"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}
