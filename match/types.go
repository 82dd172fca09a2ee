package match

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/retro-pong/vmath"
)

// Side identifies one half of the duel
type Side int

const (
	SidePlayer Side = iota
	SideOpponent
)

func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "opponent"
}

// Paddle is a vertically moving rectangle; x never changes after creation
type Paddle struct {
	vmath.Rect
	Velocity float32 // vertical displacement applied last frame
}

// Ball is the square ball and its per-frame velocity
type Ball struct {
	vmath.Rect
	Vel mgl32.Vec2
}

// Score holds points per side
type Score struct {
	Player, Opponent int
}

// HP holds hit points per side, each in [0, MaxHP]
type HP struct {
	Player, Opponent int
}

// Controls is the per-frame paddle input
// A non-zero PaddleDelta (analog sources) overrides the boolean flags
type Controls struct {
	MoveUp, MoveDown bool
	PaddleDelta      float32
}

// Event is a side-channel notification produced by a step
type Event uint8

const (
	EventPaddleHit Event = 1 << iota
	EventWallBounce
	EventScore
)

// EventSet is a bitmask of events raised during one step
type EventSet uint8

func (s EventSet) Has(e Event) bool { return s&EventSet(e) != 0 }

func (s *EventSet) add(e Event) { *s |= EventSet(e) }

// StepResult reports the outcome of one simulated frame
type StepResult struct {
	Terminated bool
	Events     EventSet
	// Scorer is valid only when Events has EventScore
	Scorer Side
}

// Stats are cumulative per-match counters for the outcome screen
type Stats struct {
	Frames       uint64
	PlayerHits   int
	OpponentHits int
	Rally        int
	LongestRally int
}
