package input

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/lixenwraith/retro-pong/constants"
	"github.com/lixenwraith/retro-pong/match"
)

func TestKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want Binding
		ok   bool
	}{
		{"arrow up", tcell.KeyUp, 0, Binding{Nav: NavUp, Paddle: PaddleUp}, true},
		{"enter", tcell.KeyEnter, 0, Binding{Nav: NavConfirm}, true},
		{"escape", tcell.KeyEscape, 0, Binding{Nav: NavEscape}, true},
		{"ctrl-c", tcell.KeyCtrlC, 0, Binding{Quit: true}, true},
		{"space", tcell.KeyRune, ' ', Binding{Nav: NavConfirm}, true},
		{"w", tcell.KeyRune, 'w', Binding{Paddle: PaddleUp}, true},
		{"capital S", tcell.KeyRune, 'S', Binding{Paddle: PaddleDown}, true},
		{"unbound rune", tcell.KeyRune, 'x', Binding{}, false},
	}

	for _, tc := range tests {
		got, ok := kt.Lookup(tc.key, tc.r)
		if ok != tc.ok || got != tc.want {
			t.Errorf("%s: expected (%+v, %v), got (%+v, %v)", tc.name, tc.want, tc.ok, got, ok)
		}
	}
}

func TestKeyboardNavDrained(t *testing.T) {
	k := NewKeyboard(nil)
	k.Press(tcell.KeyDown, 0)
	k.Press(tcell.KeyEnter, 0)

	s := k.Poll()
	if !reflect.DeepEqual(s.Nav, []Nav{NavDown, NavConfirm}) {
		t.Errorf("Expected [down confirm], got %v", s.Nav)
	}
	if s := k.Poll(); len(s.Nav) != 0 {
		t.Errorf("Expected nav drained, got %v", s.Nav)
	}
}

func TestKeyboardHoldEmulation(t *testing.T) {
	k := NewKeyboard(nil)
	k.Press(tcell.KeyRune, 'w')

	for i := 0; i < constants.KeyHoldFrames; i++ {
		if s := k.Poll(); !s.Controls.MoveUp || s.Controls.MoveDown {
			t.Fatalf("Frame %d: expected up held, got %+v", i, s.Controls)
		}
	}
	if s := k.Poll(); s.Controls.MoveUp {
		t.Error("Expected up released after hold window")
	}

	// Opposite key cancels the hold immediately
	k.Press(tcell.KeyRune, 'w')
	k.Press(tcell.KeyRune, 's')
	if s := k.Poll(); s.Controls.MoveUp || !s.Controls.MoveDown {
		t.Errorf("Expected only down held, got %+v", s.Controls)
	}
}

func TestKeyboardQuit(t *testing.T) {
	k := NewKeyboard(nil)
	k.Press(tcell.KeyCtrlC, 0)
	if !k.Poll().Quit {
		t.Error("Expected quit after Ctrl+C")
	}
}

func frameWithExtended(n int) HandFrame {
	f := HandFrame{Landmarks: make([]Landmark, handLandmarks)}
	for i, tip := range fingertips {
		f.Landmarks[tip-2].Y = 0.5
		if i < n {
			f.Landmarks[tip].Y = 0.3
		} else {
			f.Landmarks[tip].Y = 0.7
		}
	}
	return f
}

func TestClassify(t *testing.T) {
	tests := []struct {
		extended int
		want     Pose
	}{
		{0, PoseUp},
		{1, PoseNeutral},
		{2, PoseNeutral},
		{3, PoseDown},
		{4, PoseDown},
	}
	for _, tc := range tests {
		if got := Classify(frameWithExtended(tc.extended)); got != tc.want {
			t.Errorf("%d fingers: expected %s, got %s", tc.extended, tc.want, got)
		}
	}

	if got := Classify(HandFrame{}); got != PoseNeutral {
		t.Errorf("Expected neutral without a hand, got %s", got)
	}
}

func TestGestureRunAndPoll(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	g := NewGesture(constants.PlayerSpeed, log)

	feed := strings.Join([]string{
		`{"landmarks":[]}`,
		`not json`,
		fistLine(),
	}, "\n")

	// A pipe keeps the feed open so the pose survives until the writer closes
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	done := make(chan error, 1)
	go func() { done <- g.Run(context.Background(), r) }()

	if _, err := w.WriteString(feed + "\n"); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for g.Frames() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if g.Frames() != 2 {
		t.Fatalf("Expected 2 decoded frames, got %d", g.Frames())
	}
	if g.Pose() != PoseUp {
		t.Errorf("Expected up pose from fist, got %s", g.Pose())
	}
	if s := g.Poll(); s.Controls.PaddleDelta != -constants.PlayerSpeed {
		t.Errorf("Expected delta %d, got %f", -constants.PlayerSpeed, s.Controls.PaddleDelta)
	}

	w.Close()
	if err := <-done; err != nil {
		t.Errorf("Expected clean EOF, got %v", err)
	}
	if g.Pose() != PoseNeutral {
		t.Errorf("Expected neutral after feed ends, got %s", g.Pose())
	}
}

func fistLine() string {
	var b strings.Builder
	b.WriteString(`{"landmarks":[`)
	f := frameWithExtended(0)
	for i, l := range f.Landmarks {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`{"x":0,"y":`)
		switch {
		case l.Y == 0.5:
			b.WriteString("0.5")
		case l.Y == 0.7:
			b.WriteString("0.7")
		default:
			b.WriteString("0")
		}
		b.WriteString("}")
	}
	b.WriteString("]}")
	return b.String()
}

func TestOpenGestureFeedMissing(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	_, err := OpenGestureFeed(context.Background(), filepath.Join(t.TempDir(), "nope"), 7, log)
	if err == nil {
		t.Error("Expected error for missing feed")
	}
}

func TestMerge(t *testing.T) {
	a := Snapshot{Controls: match.Controls{MoveUp: true}, Nav: []Nav{NavUp}}
	b := Snapshot{Controls: match.Controls{PaddleDelta: 7}, Nav: []Nav{NavConfirm}, Quit: true}

	got := Merge(a, b)
	if !got.Controls.MoveUp || got.Controls.PaddleDelta != 7 || !got.Quit {
		t.Errorf("Unexpected merge result %+v", got)
	}
	if !reflect.DeepEqual(got.Nav, []Nav{NavUp, NavConfirm}) {
		t.Errorf("Expected nav in provider order, got %v", got.Nav)
	}

	k := NewKeyboard(nil)
	k.Press(tcell.KeyEscape, 0)
	m := Multi{k, nil}
	if s := m.Poll(); len(s.Nav) != 1 || s.Nav[0] != NavEscape {
		t.Errorf("Expected escape through Multi, got %v", s.Nav)
	}
}
