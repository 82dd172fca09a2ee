package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameRate is the nominal simulation and render rate
	FrameRate = 60

	// FrameUpdateInterval is the fixed timestep of one frame (~60 FPS)
	FrameUpdateInterval = time.Second / FrameRate
)

// Playfield Geometry (simulation units)
const (
	PlayfieldWidth  = 800
	PlayfieldHeight = 600

	PaddleWidth  = 10
	PaddleHeight = 80

	// PlayerPaddleX is the left edge of the player paddle
	PlayerPaddleX = 30
	// OpponentPaddleX is the left edge of the opponent paddle (width - 40)
	OpponentPaddleX = PlayfieldWidth - 40

	BallSize = 12
)

// Ball Physics
const (
	// BallGrowthFactor multiplies both velocity components on paddle contact
	BallGrowthFactor = 1.05

	// DefaultMaxBallSpeed caps |vx| and |vy| after growth
	DefaultMaxBallSpeed = 15
	MinMaxBallSpeed     = 15
	MaxMaxBallSpeed     = 25

	// DeflectionFactor scales the normalized hit offset [-1,1] into added vy
	DeflectionFactor = 3

	// TrailLength is the number of recorded ball centers when trails are on
	TrailLength = 8
)

// Paddle Control
const (
	// PlayerSpeed is the player paddle step per frame
	PlayerSpeed = 7

	// OpponentDeadZone suppresses opponent jitter when aligned with the ball
	OpponentDeadZone = 10
)
