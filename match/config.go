package match

import "github.com/lixenwraith/retro-pong/constants"

// Config is the immutable per-match configuration
// Feature flags select between the rule variants the game has shipped with
type Config struct {
	Width, Height float32

	PaddleWidth, PaddleHeight float32
	PlayerX, OpponentX        float32
	BallSize                  float32

	PlayerSpeed  float32
	MaxBallSpeed float32
	TargetScore  int

	// EnableConfidence selects confidence-driven expressions over score-difference ones
	EnableConfidence bool
	// EnableDeflection adds vertical deflection from the hit offset on paddle contact
	EnableDeflection bool
	// EnableTrail records recent ball centers for the renderer
	EnableTrail bool
}

// DefaultConfig returns the standard rule set
func DefaultConfig() Config {
	return Config{
		Width:            constants.PlayfieldWidth,
		Height:           constants.PlayfieldHeight,
		PaddleWidth:      constants.PaddleWidth,
		PaddleHeight:     constants.PaddleHeight,
		PlayerX:          constants.PlayerPaddleX,
		OpponentX:        constants.OpponentPaddleX,
		BallSize:         constants.BallSize,
		PlayerSpeed:      constants.PlayerSpeed,
		MaxBallSpeed:     constants.DefaultMaxBallSpeed,
		TargetScore:      constants.DefaultTargetScore,
		EnableConfidence: true,
	}
}

// normalized fills zero geometry from defaults and clamps tunables to their supported ranges
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.Width <= 0 || c.Height <= 0 {
		c.Width, c.Height = def.Width, def.Height
	}
	if c.PaddleWidth <= 0 || c.PaddleHeight <= 0 {
		c.PaddleWidth, c.PaddleHeight = def.PaddleWidth, def.PaddleHeight
	}
	if c.PlayerX <= 0 && c.OpponentX <= 0 {
		c.PlayerX, c.OpponentX = def.PlayerX, def.OpponentX
	}
	if c.BallSize <= 0 {
		c.BallSize = def.BallSize
	}
	if c.PlayerSpeed <= 0 {
		c.PlayerSpeed = def.PlayerSpeed
	}
	switch {
	case c.MaxBallSpeed <= 0:
		c.MaxBallSpeed = def.MaxBallSpeed
	case c.MaxBallSpeed < constants.MinMaxBallSpeed:
		c.MaxBallSpeed = constants.MinMaxBallSpeed
	case c.MaxBallSpeed > constants.MaxMaxBallSpeed:
		c.MaxBallSpeed = constants.MaxMaxBallSpeed
	}
	if c.TargetScore <= 0 {
		c.TargetScore = def.TargetScore
	}
	return c
}
