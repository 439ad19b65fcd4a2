package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Viewport is the visible window onto a level, in screen cells. One level
// unit is Scale columns wide and one row tall.
type Viewport struct {
	Left, Top     int // Scroll offset
	Width, Height int // Visible size
	Scale         int // Columns per level unit
	originX       int // Centering offset when the level is narrower than the view
}

// NewViewport creates a viewport at the top-left of the level.
func NewViewport(scale int) Viewport {
	if scale < 1 {
		scale = 1
	}
	return Viewport{Scale: scale}
}

// Resize sets the visible area.
func (v *Viewport) Resize(width, height int) {
	v.Width = width
	v.Height = height
}

// Follow scrolls so that center (in level units) stays out of the outer
// third of the view on each axis, without scrolling past the level edges.
func (v *Viewport) Follow(center core.Vec, levelW, levelH int) {
	worldW := levelW * v.Scale
	cx := int(math.Round(center.X * float64(v.Scale)))
	cy := int(math.Round(center.Y))
	marginX := v.Width / 3
	marginY := v.Height / 3

	if cx < v.Left+marginX {
		v.Left = cx - marginX
	} else if cx > v.Left+v.Width-marginX {
		v.Left = cx + marginX - v.Width
	}
	if cy < v.Top+marginY {
		v.Top = cy - marginY
	} else if cy > v.Top+v.Height-marginY {
		v.Top = cy + marginY - v.Height
	}

	v.Left = core.Clamp(v.Left, 0, core.Max(0, worldW-v.Width))
	v.Top = core.Clamp(v.Top, 0, core.Max(0, levelH-v.Height))

	v.originX = 0
	if worldW < v.Width {
		v.originX = (v.Width - worldW) / 2
	}
}

// Project converts a level position to view-relative screen cells.
func (v Viewport) Project(pos core.Vec) (x, y int) {
	x = int(math.Round(pos.X*float64(v.Scale))) - v.Left + v.originX
	y = int(math.Round(pos.Y)) - v.Top
	return x, y
}

// CellAt returns the level cell shown at view-relative (sx, sy), and false
// when that screen cell is outside the level.
func (v Viewport) CellAt(sx, sy int) (x, y int, ok bool) {
	col := sx + v.Left - v.originX
	if col < 0 {
		return 0, 0, false
	}
	return col / v.Scale, sy + v.Top, true
}
