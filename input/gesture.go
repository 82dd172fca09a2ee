package input

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/retro-pong/match"
)

// Landmark is one normalized hand keypoint; y grows downward
type Landmark struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// HandFrame is one line of the tracker feed: 21 landmarks, or none when no hand is visible
type HandFrame struct {
	Landmarks []Landmark `json:"landmarks"`
}

// Pose is the ternary gesture signal
type Pose int32

const (
	PoseNeutral Pose = iota
	PoseUp
	PoseDown
)

func (p Pose) String() string {
	switch p {
	case PoseUp:
		return "up"
	case PoseDown:
		return "down"
	default:
		return "neutral"
	}
}

// Fingertip landmark indices, thumb excluded; each PIP joint sits two indices below its tip
var fingertips = [4]int{8, 12, 16, 20}

const handLandmarks = 21

// Classify counts extended fingers: a fist means up, an open palm (3+) means down
func Classify(f HandFrame) Pose {
	if len(f.Landmarks) < handLandmarks {
		return PoseNeutral
	}

	extended := 0
	for _, tip := range fingertips {
		if f.Landmarks[tip].Y < f.Landmarks[tip-2].Y {
			extended++
		}
	}

	switch {
	case extended == 0:
		return PoseUp
	case extended >= 3:
		return PoseDown
	default:
		return PoseNeutral
	}
}

// Gesture is a Provider fed by an external hand tracker
// Frames are decoded on a reader goroutine; Poll only reads the latest pose
type Gesture struct {
	speed  float32
	log    logrus.FieldLogger
	pose   atomic.Int32
	frames atomic.Uint64
}

// NewGesture maps poses to a paddle delta of ∓speed
func NewGesture(speed float32, log logrus.FieldLogger) *Gesture {
	return &Gesture{speed: speed, log: log}
}

// Run decodes JSON lines from r until EOF, a read error, or ctx is done
// Malformed lines are skipped
func (g *Gesture) Run(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		var f HandFrame
		if err := json.Unmarshal(sc.Bytes(), &f); err != nil {
			g.log.WithError(err).Debug("gesture frame skipped")
			continue
		}
		g.pose.Store(int32(Classify(f)))
		g.frames.Add(1)
	}

	// Feed ended; release the paddle
	g.pose.Store(int32(PoseNeutral))
	if err := sc.Err(); err != nil {
		return fmt.Errorf("gesture feed: %w", err)
	}
	return nil
}

// Pose returns the most recent classification
func (g *Gesture) Pose() Pose {
	return Pose(g.pose.Load())
}

// Frames returns the number of decoded frames
func (g *Gesture) Frames() uint64 {
	return g.frames.Load()
}

func (g *Gesture) Poll() Snapshot {
	var s Snapshot
	switch g.Pose() {
	case PoseUp:
		s.Controls = match.Controls{PaddleDelta: -g.speed}
	case PoseDown:
		s.Controls = match.Controls{PaddleDelta: g.speed}
	}
	return s
}

// OpenGestureFeed starts reading path (file or named pipe) in the background
// The feed is closed when ctx is done
func OpenGestureFeed(ctx context.Context, path string, speed float32, log logrus.FieldLogger) (*Gesture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open gesture feed %s: %w", path, err)
	}

	g := NewGesture(speed, log)
	go func() {
		<-ctx.Done()
		f.Close()
	}()
	go func() {
		if err := g.Run(ctx, f); err != nil && ctx.Err() == nil {
			log.WithError(err).Warn("gesture feed stopped")
		}
	}()
	return g, nil
}
