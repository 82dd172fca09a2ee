// Command match-bench plays headless matches between a tracking bot and the
// opponent controller at every difficulty and reports outcome and step cost.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/lixenwraith/retro-pong/difficulty"
	"github.com/lixenwraith/retro-pong/match"
	"github.com/lixenwraith/retro-pong/opponent"
	"github.com/lixenwraith/retro-pong/vmath"
)

var (
	matches    = flag.Int("matches", 200, "Matches per difficulty")
	seed       = flag.Uint64("seed", 1, "Random seed")
	deadzone   = flag.Float64("deadzone", 12, "Bot tracking deadzone in simulation units")
	confidence = flag.Bool("confidence", true, "Enable the confidence meter")
	deflection = flag.Bool("deflection", false, "Enable hit-offset deflection")
	predict    = flag.Bool("predict", false, "Aim the bot at the predicted wall-folded intercept")
)

// maxFrames bounds a single match so a stalemate cannot hang the run
const maxFrames = 1 << 20

type result struct {
	level        difficulty.Level
	wins, losses int
	stalled      int
	frames       uint64
	longestRally int
	elapsed      time.Duration
}

func main() {
	flag.Parse()
	if *matches <= 0 {
		fmt.Fprintln(os.Stderr, "matches must be positive")
		os.Exit(2)
	}

	cfg := match.DefaultConfig()
	cfg.EnableConfidence = *confidence
	cfg.EnableDeflection = *deflection

	fmt.Printf("Match Benchmark: %d matches per level, seed=%d, predict=%t\n\n", *matches, *seed, *predict)
	fmt.Printf("%-8s %6s %6s %6s %10s %10s %10s\n", "Level", "Wins", "Losses", "Stall", "Frames/m", "Rally", "ns/step")
	fmt.Println("------------------------------------------------------------------")

	rng := vmath.NewFastRand(*seed)
	for l := 0; l < difficulty.Count; l++ {
		r := runLevel(difficulty.Level(l), cfg, rng, *matches, newBot(float32(*deadzone), *predict))
		fmt.Printf("%-8s %6d %6d %6d %10d %10d %10.1f\n",
			r.level, r.wins, r.losses, r.stalled,
			r.frames/uint64(*matches), r.longestRally,
			float64(r.elapsed.Nanoseconds())/float64(max(r.frames, 1)))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Printf("\n  Total Alloc:  %d bytes\n", m.TotalAlloc)
	fmt.Printf("  Mallocs:      %d\n", m.Mallocs)
}

// runLevel plays n matches at level and aggregates their outcomes
func runLevel(level difficulty.Level, cfg match.Config, rng *vmath.FastRand, n int, b bot) result {
	r := result{level: level}
	start := time.Now()
	for i := 0; i < n; i++ {
		sim := match.New(level, cfg, rng)
		for !sim.Terminated() && sim.Stats().Frames < maxFrames {
			sim.Step(b.track(sim))
		}

		st := sim.Stats()
		r.frames += st.Frames
		r.longestRally = max(r.longestRally, st.LongestRally)
		switch {
		case !sim.Terminated():
			r.stalled++
		case sim.Victory():
			r.wins++
		default:
			r.losses++
		}
	}
	r.elapsed = time.Since(start)
	return r
}

// bot drives the player paddle
type bot struct {
	deadzone float32
	predict  bool
	aim      opponent.Controller
}

func newBot(deadzone float32, predict bool) bot {
	return bot{deadzone: deadzone, predict: predict, aim: opponent.NewController()}
}

// target is the y the bot steers toward: the ball, its predicted intercept, or mid-field
func (b bot) target(sim *match.Simulation) float32 {
	cfg := sim.Config()
	ball := sim.Ball()
	if ball.Vel.X() >= 0 {
		return cfg.Height / 2
	}
	if !b.predict {
		return ball.Center().Y()
	}
	ai := b.aim
	ai.FieldHeight = cfg.Height
	faceX := cfg.PlayerX + cfg.PaddleWidth + ball.W/2
	return ai.PredictIntercept(ball.Rect, ball.Vel, faceX)
}

// track follows the target with a deadzone
func (b bot) track(sim *match.Simulation) match.Controls {
	paddle := sim.Player().Center().Y()
	target := b.target(sim)

	switch {
	case target < paddle-b.deadzone:
		return match.Controls{MoveUp: true}
	case target > paddle+b.deadzone:
		return match.Controls{MoveDown: true}
	}
	return match.Controls{}
}
