package balls

import (
	"fmt"
	"math"
)

type Rect struct {
	Left, Top, Right, Bottom int
}

func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}

// Field is the immutable boundary balls are confined to, together with the
// shared ball diameter.
type Field struct {
	Bounds   Rect
	Diameter int
}

// Radius uses integer division, matching the placement grid.
func (f Field) Radius() int { return f.Diameter / 2 }

// Columns and Rows give the placement grid size.
func (f Field) Columns() int { return f.Bounds.Width() / f.Diameter }
func (f Field) Rows() int    { return f.Bounds.Height() / f.Diameter }

// Cells is the number of balls the field can hold without overlap.
func (f Field) Cells() int {
	c, r := f.Columns(), f.Rows()
	if c <= 0 || r <= 0 {
		return 0
	}
	return c * r
}

type Ball struct {
	X, Y   float64
	VX, VY float64
	// OnEdge is set when the ball was corrected against a wall during the
	// last boundary pass.
	OnEdge bool
}

func (b Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

func (b Ball) IsValid() bool {
	for _, v := range [4]float64{b.X, b.Y, b.VX, b.VY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Stats holds counters from the most recent Update.
type Stats struct {
	Step         int
	Collisions   int
	WallContacts int
}
