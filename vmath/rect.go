package vmath

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Rect is an axis-aligned rectangle anchored at its top-left corner
// Y grows downward, matching screen coordinates
type Rect struct {
	Pos  mgl32.Vec2
	W, H float32
}

func NewRect(x, y, w, h float32) Rect {
	return Rect{Pos: mgl32.Vec2{x, y}, W: w, H: h}
}

func (r Rect) Left() float32   { return r.Pos.X() }
func (r Rect) Right() float32  { return r.Pos.X() + r.W }
func (r Rect) Top() float32    { return r.Pos.Y() }
func (r Rect) Bottom() float32 { return r.Pos.Y() + r.H }

// Center returns the midpoint of the rectangle
func (r Rect) Center() mgl32.Vec2 {
	return mgl32.Vec2{r.Pos.X() + r.W/2, r.Pos.Y() + r.H/2}
}

// SetCenter moves the rectangle so its midpoint lands on c
func (r *Rect) SetCenter(c mgl32.Vec2) {
	r.Pos = mgl32.Vec2{c.X() - r.W/2, c.Y() - r.H/2}
}

// Box lifts the rectangle into a unit-depth bounding box
func (r Rect) Box() cube.BBox {
	return cube.Box(r.Left(), r.Top(), 0, r.Right(), r.Bottom(), 1)
}

// Intersects reports strict overlap; touching edges do not collide
func (r Rect) Intersects(o Rect) bool {
	return r.Box().IntersectsWith(o.Box())
}

// ClampY keeps the vertical extent within [0, height]
func (r *Rect) ClampY(height float32) {
	y := Clamp(r.Pos.Y(), 0, height-r.H)
	r.Pos = mgl32.Vec2{r.Pos.X(), y}
}
