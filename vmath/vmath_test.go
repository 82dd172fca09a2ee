package vmath

import "testing"

func TestRectIntersects(t *testing.T) {
	paddle := NewRect(30, 260, 10, 80)

	tests := []struct {
		name string
		ball Rect
		want bool
	}{
		{"overlapping", NewRect(35, 290, 12, 12), true},
		{"touching right edge", NewRect(40, 290, 12, 12), false},
		{"above", NewRect(35, 240, 12, 12), false},
		{"clipping bottom corner", NewRect(28, 335, 12, 12), true},
		{"far away", NewRect(400, 300, 12, 12), false},
	}

	for _, tc := range tests {
		if got := paddle.Intersects(tc.ball); got != tc.want {
			t.Errorf("%s: Expected Intersects=%v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestRectClampY(t *testing.T) {
	r := NewRect(30, -15, 10, 80)
	r.ClampY(600)
	if r.Top() != 0 {
		t.Errorf("Expected top clamped to 0, got %f", r.Top())
	}

	r = NewRect(30, 590, 10, 80)
	r.ClampY(600)
	if r.Bottom() != 600 {
		t.Errorf("Expected bottom clamped to 600, got %f", r.Bottom())
	}
}

func TestRectSetCenter(t *testing.T) {
	r := NewRect(0, 0, 12, 12)
	r.Pos[0], r.Pos[1] = 100, 100
	r.SetCenter(r.Center())
	if r.Left() != 100 || r.Top() != 100 {
		t.Errorf("Expected SetCenter(Center()) to be identity, got (%f,%f)", r.Left(), r.Top())
	}
}

func TestAwayAndCapAbs(t *testing.T) {
	if got := Away(-6, 1); got != 6 {
		t.Errorf("Expected Away(-6, +) = 6, got %f", got)
	}
	if got := Away(6, -1); got != -6 {
		t.Errorf("Expected Away(6, -) = -6, got %f", got)
	}
	if got := CapAbs(-30, 15); got != -15 {
		t.Errorf("Expected CapAbs(-30, 15) = -15, got %f", got)
	}
	if got := CapAbs(10, 15); got != 10 {
		t.Errorf("Expected CapAbs(10, 15) = 10, got %f", got)
	}
}

func TestWrap(t *testing.T) {
	cases := []struct{ i, n, want int }{
		{-1, 3, 2},
		{3, 3, 0},
		{1, 4, 1},
		{-5, 4, 3},
		{2, 0, 0},
	}
	for _, c := range cases {
		if got := Wrap(c.i, c.n); got != c.want {
			t.Errorf("Expected Wrap(%d,%d)=%d, got %d", c.i, c.n, c.want, got)
		}
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Expected identical sequences at step %d", i)
		}
	}

	r := NewFastRand(0)
	seenNeg, seenPos := false, false
	for i := 0; i < 200; i++ {
		switch r.Sign() {
		case -1:
			seenNeg = true
		case 1:
			seenPos = true
		default:
			t.Fatal("Sign returned a value other than -1 or 1")
		}
	}
	if !seenNeg || !seenPos {
		t.Error("Expected both signs over 200 draws")
	}
}
