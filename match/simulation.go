// Package match owns one duel: paddles, ball, score, hit points and the
// opponent's confidence. It performs no I/O; collaborators read state through
// accessors after each Step.
package match

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/retro-pong/constants"
	"github.com/lixenwraith/retro-pong/difficulty"
	"github.com/lixenwraith/retro-pong/opponent"
	"github.com/lixenwraith/retro-pong/vmath"
)

// Simulation is a single match; create one per match and discard it afterwards
type Simulation struct {
	cfg     Config
	level   difficulty.Level
	profile difficulty.Profile
	ai      opponent.Controller
	rng     *vmath.FastRand

	player   Paddle
	opponent Paddle
	ball     Ball

	score      Score
	hp         HP
	confidence Confidence
	terminated bool
	stats      Stats

	trail      [constants.TrailLength]mgl32.Vec2
	trailHead  int
	trailCount int
}

// New creates a match at level; out-of-range levels are clamped to the nearest valid one
// A nil rng is replaced with a fixed-seed generator
func New(level difficulty.Level, cfg Config, rng *vmath.FastRand) *Simulation {
	cfg = cfg.normalized()
	level = difficulty.Clamp(int(level))
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}

	s := &Simulation{
		cfg:        cfg,
		level:      level,
		profile:    level.Profile(),
		ai:         opponent.Controller{DeadZone: constants.OpponentDeadZone, FieldHeight: cfg.Height},
		rng:        rng,
		hp:         HP{Player: constants.MaxHP, Opponent: constants.MaxHP},
		confidence: constants.ConfidenceInitial,
	}

	paddleY := cfg.Height/2 - cfg.PaddleHeight/2
	s.player.Rect = vmath.NewRect(cfg.PlayerX, paddleY, cfg.PaddleWidth, cfg.PaddleHeight)
	s.opponent.Rect = vmath.NewRect(cfg.OpponentX, paddleY, cfg.PaddleWidth, cfg.PaddleHeight)
	s.ball.Rect = vmath.NewRect(0, 0, cfg.BallSize, cfg.BallSize)
	s.ResetBall()

	return s
}

// ResetBall serves from the center with |vx| = |vy| = profile ball speed and random signs
func (s *Simulation) ResetBall() {
	s.ball.SetCenter(mgl32.Vec2{s.cfg.Width / 2, s.cfg.Height / 2})
	speed := s.profile.BallSpeed
	s.ball.Vel = mgl32.Vec2{speed * s.rng.Sign(), speed * s.rng.Sign()}
	s.stats.Rally = 0
	s.trailHead, s.trailCount = 0, 0
}

// Step advances exactly one frame
// Once terminated, further steps leave state untouched and keep reporting termination
func (s *Simulation) Step(ctl Controls) StepResult {
	if s.terminated {
		return StepResult{Terminated: true}
	}

	var res StepResult
	s.stats.Frames++

	s.movePlayer(ctl)

	before := s.opponent.Top()
	s.ai.Move(&s.opponent.Rect, s.ball.Rect, s.profile)
	s.opponent.Velocity = s.opponent.Top() - before

	prevLeft := s.ball.Left()
	s.ball.Pos = s.ball.Pos.Add(s.ball.Vel)

	// Wall bounce resolves before paddle contact
	if s.bounceWalls() {
		res.Events.add(EventWallBounce)
	}

	if s.collidePaddles(prevLeft) {
		res.Events.add(EventPaddleHit)
	}

	if side, scored := s.checkExit(); scored {
		res.Events.add(EventScore)
		res.Scorer = side
	}

	if s.cfg.EnableTrail {
		s.recordTrail()
	}

	s.terminated = s.isOver()
	res.Terminated = s.terminated
	return res
}

func (s *Simulation) movePlayer(ctl Controls) {
	dy := ctl.PaddleDelta
	if dy == 0 {
		if ctl.MoveUp {
			dy -= s.cfg.PlayerSpeed
		}
		if ctl.MoveDown {
			dy += s.cfg.PlayerSpeed
		}
	}

	before := s.player.Top()
	s.player.Pos = s.player.Pos.Add(mgl32.Vec2{0, dy})
	s.player.ClampY(s.cfg.Height)
	s.player.Velocity = s.player.Top() - before
}

// bounceWalls turns vy away from a touched wall and pulls the ball back inside
func (s *Simulation) bounceWalls() bool {
	switch {
	case s.ball.Top() <= 0:
		s.ball.Vel[1] = vmath.Away(s.ball.Vel.Y(), 1)
	case s.ball.Bottom() >= s.cfg.Height:
		s.ball.Vel[1] = vmath.Away(s.ball.Vel.Y(), -1)
	default:
		return false
	}
	s.ball.ClampY(s.cfg.Height)
	return true
}

// collidePaddles resolves at most one paddle contact per frame
// Contact only registers while the ball travels toward the paddle, so an
// overlap that persists after the bounce cannot re-trigger growth
func (s *Simulation) collidePaddles(prevLeft float32) bool {
	switch {
	case s.ball.Vel.X() < 0 && s.reaches(s.player, prevLeft):
		s.deflect(&s.player, 1)
		s.confidence = s.confidence.Adjust(-constants.ConfidenceHitDelta)
		s.stats.PlayerHits++
	case s.ball.Vel.X() > 0 && s.reaches(s.opponent, prevLeft):
		s.deflect(&s.opponent, -1)
		s.confidence = s.confidence.Adjust(constants.ConfidenceHitDelta)
		s.stats.OpponentHits++
	default:
		return false
	}

	s.stats.Rally++
	if s.stats.Rally > s.stats.LongestRally {
		s.stats.LongestRally = s.stats.Rally
	}
	return true
}

// reaches reports whether the ball overlaps p or jumped its full width this frame
// prevLeft is the ball's left edge before integration; a jumped ball is put
// back against the face it crossed
func (s *Simulation) reaches(p Paddle, prevLeft float32) bool {
	if s.ball.Intersects(p.Rect) {
		return true
	}
	if s.ball.Bottom() <= p.Top() || s.ball.Top() >= p.Bottom() {
		return false
	}
	switch {
	case prevLeft >= p.Right() && s.ball.Right() <= p.Left():
		s.ball.Pos[0] = p.Right()
	case prevLeft+s.ball.W <= p.Left() && s.ball.Left() >= p.Right():
		s.ball.Pos[0] = p.Left() - s.ball.W
	default:
		return false
	}
	return true
}

// deflect sends the ball away from p (dir is the new sign of vx) and speeds it up
func (s *Simulation) deflect(p *Paddle, dir float32) {
	vx := vmath.Away(s.ball.Vel.X(), dir) * constants.BallGrowthFactor
	vy := s.ball.Vel.Y() * constants.BallGrowthFactor

	if s.cfg.EnableDeflection {
		half := p.H / 2
		offset := vmath.Clamp((s.ball.Center().Y()-p.Center().Y())/half, -1, 1)
		vy += offset * constants.DeflectionFactor
	}

	s.ball.Vel = mgl32.Vec2{
		vmath.CapAbs(vx, s.cfg.MaxBallSpeed),
		vmath.CapAbs(vy, s.cfg.MaxBallSpeed),
	}
}

// checkExit scores at most one point per frame and re-serves
func (s *Simulation) checkExit() (Side, bool) {
	switch {
	case s.ball.Left() <= 0:
		s.score.Opponent++
		s.hp.Opponent = max(0, s.hp.Opponent-constants.OpponentHPLossOnScoring)
		s.hp.Player = max(0, s.hp.Player-constants.PlayerHPLossOnConcede)
		s.confidence = s.confidence.Adjust(constants.ConfidenceScoreDelta)
		s.ResetBall()
		return SideOpponent, true
	case s.ball.Right() >= s.cfg.Width:
		s.score.Player++
		s.hp.Opponent = max(0, s.hp.Opponent-constants.OpponentHPLossOnConcede)
		s.confidence = s.confidence.Adjust(-constants.ConfidenceScoreDelta)
		s.ResetBall()
		return SidePlayer, true
	}
	return SidePlayer, false
}

func (s *Simulation) isOver() bool {
	return s.hp.Player <= 0 || s.hp.Opponent <= 0 ||
		s.score.Player >= s.cfg.TargetScore || s.score.Opponent >= s.cfg.TargetScore
}

func (s *Simulation) recordTrail() {
	s.trail[s.trailHead] = s.ball.Center()
	s.trailHead = (s.trailHead + 1) % len(s.trail)
	if s.trailCount < len(s.trail) {
		s.trailCount++
	}
}

// Trail returns recorded ball centers, oldest first
func (s *Simulation) Trail() []mgl32.Vec2 {
	out := make([]mgl32.Vec2, 0, s.trailCount)
	start := (s.trailHead - s.trailCount + len(s.trail)) % len(s.trail)
	for i := 0; i < s.trailCount; i++ {
		out = append(out, s.trail[(start+i)%len(s.trail)])
	}
	return out
}

func (s *Simulation) Config() Config              { return s.cfg }
func (s *Simulation) Level() difficulty.Level     { return s.level }
func (s *Simulation) Profile() difficulty.Profile { return s.profile }
func (s *Simulation) Player() Paddle              { return s.player }
func (s *Simulation) Opponent() Paddle            { return s.opponent }
func (s *Simulation) Ball() Ball                  { return s.ball }
func (s *Simulation) Score() Score                { return s.score }
func (s *Simulation) HP() HP                      { return s.hp }
func (s *Simulation) Confidence() Confidence      { return s.confidence }
func (s *Simulation) Terminated() bool            { return s.terminated }
func (s *Simulation) Stats() Stats                { return s.stats }

// Mood classifies the opponent using the configured policy
func (s *Simulation) Mood() Mood {
	if s.cfg.EnableConfidence {
		return s.confidence.Mood()
	}
	return MoodFromScore(s.score)
}

// Victory reports whether the player leads on points; ties are defeats
func (s *Simulation) Victory() bool {
	return s.score.Player > s.score.Opponent
}
