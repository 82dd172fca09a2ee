// Package opponent steers the computer-controlled paddle.
package opponent

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/retro-pong/constants"
	"github.com/lixenwraith/retro-pong/difficulty"
	"github.com/lixenwraith/retro-pong/vmath"
)

// Controller tracks the ball with a damped, fixed-step policy
// It is never a perfect tracker: the step is bounded by AISpeed and a dead
// zone holds the paddle when the scaled error is small
type Controller struct {
	DeadZone    float32
	FieldHeight float32
}

// NewController returns a controller for the default playfield
func NewController() Controller {
	return Controller{
		DeadZone:    constants.OpponentDeadZone,
		FieldHeight: constants.PlayfieldHeight,
	}
}

// Move advances paddle by at most one AISpeed step toward the ball center
func (c Controller) Move(paddle *vmath.Rect, ball vmath.Rect, profile difficulty.Profile) {
	errY := ball.Center().Y() - paddle.Center().Y()
	effective := errY * profile.ReactionFactor

	if math32.Abs(effective) > c.DeadZone {
		step := math32.Copysign(profile.AISpeed, effective)
		paddle.Pos = paddle.Pos.Add(mgl32.Vec2{0, step})
	}

	paddle.ClampY(c.FieldHeight)
}

// PredictIntercept projects the ball's center y at column targetX,
// folding the path back off the top and bottom walls
// Returns the current center y when the ball is not moving toward targetX
func (c Controller) PredictIntercept(ball vmath.Rect, vel mgl32.Vec2, targetX float32) float32 {
	center := ball.Center()
	dx := targetX - center.X()
	if vel.X() == 0 || math32.Signbit(dx) != math32.Signbit(vel.X()) {
		return center.Y()
	}

	frames := dx / vel.X()
	y := center.Y() + vel.Y()*frames

	h := c.FieldHeight
	if h <= 0 {
		return center.Y()
	}
	period := 2 * h
	y = math32.Mod(y, period)
	if y < 0 {
		y += period
	}
	if y > h {
		y = period - y
	}
	return y
}
