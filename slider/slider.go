// Package slider implements the pointer-driven value control used for the
// brightness and volume rows: pointer positions inside a horizontal region are
// mapped onto a value in [0, 100], and the value is mapped back onto the track,
// fill and thumb shapes the widget paints.
//
// Nothing here touches the toolkit, so the geometry is computed once per draw
// from whatever width the layout hands out.
package slider

import "math"

// Bounds of a Control's value.
const (
	Min = 0.0
	Max = 100.0
)

// thumbInset is how much smaller the thumb's diameter is than the track height.
const thumbInset = 6.0

// IconOffset is the distance of the icon anchor from the track's left edge.
const IconOffset = 20.0

// Region is the rectangle a control occupies during one draw.
type Region struct {
	Left, Top, Width, Height float64
}

// Right returns the right edge of r.
func (r Region) Right() float64 { return r.Left + r.Width }

// Rect is an axis-aligned rectangle with rounded corners.
type Rect struct {
	X, Y, Width, Height, CornerRadius float64
}

// Circle is the thumb.
type Circle struct {
	X, Y, Radius float64
}

// Point is a position in widget coordinates.
type Point struct {
	X, Y float64
}

// Geometry is everything needed to paint a control once.
type Geometry struct {
	Track Rect
	// Fill is zero-width when the value is at Min.
	Fill  Rect
	Thumb Circle
	// Icon is the left-center anchor of the icon glyph; it does not move
	// with the value.
	Icon Point
}

// Control holds one BoundedValue.
type Control struct {
	value float64
}

// New returns a control starting at value, clamped into [Min, Max].
func New(value float64) *Control {
	if math.IsNaN(value) {
		value = Min
	}
	return &Control{value: clamp(value, Min, Max)}
}

// Value returns the current value.
func (c *Control) Value() float64 { return c.value }

// Ratio returns the value as a fraction of the track.
func (c *Control) Ratio() float64 { return clamp(c.value/Max, 0, 1) }

// Press handles a click at pointer x. It reports whether the value changed.
func (c *Control) Press(x float64, r Region) bool {
	return c.point(x, r)
}

// Drag handles a drag update at pointer x. It reports whether the value changed.
func (c *Control) Drag(x float64, r Region) bool {
	return c.point(x, r)
}

func (c *Control) point(x float64, r Region) bool {
	// A zero-width control is inert.
	if r.Width <= 0 || math.IsNaN(x) {
		return false
	}
	ratio := clamp((x-r.Left)/r.Width, 0, 1)
	v := ratio * Max
	if v == c.value {
		return false
	}
	c.value = v
	return true
}

// Layout computes the shapes for r at the current value.
func (c *Control) Layout(r Region) Geometry {
	if r.Width <= 0 || r.Height <= 0 {
		return Geometry{
			Track: Rect{X: r.Left, Y: r.Top},
			Fill:  Rect{X: r.Left, Y: r.Top},
			Thumb: Circle{X: r.Left, Y: r.Top + r.Height/2},
			Icon:  Point{X: r.Left, Y: r.Top + r.Height/2},
		}
	}

	ratio := c.Ratio()
	corner := r.Height / 2
	centerY := r.Top + r.Height/2

	diameter := r.Height - thumbInset
	if diameter < 0 {
		diameter = 0
	}
	radius := diameter / 2

	// Keep the whole thumb on the track; a track narrower than the thumb
	// centers it.
	lo, hi := r.Left+radius, r.Right()-radius
	thumbX := r.Left + r.Width*ratio
	if lo > hi {
		thumbX = r.Left + r.Width/2
	} else {
		thumbX = clamp(thumbX, lo, hi)
	}

	return Geometry{
		Track: Rect{X: r.Left, Y: r.Top, Width: r.Width, Height: r.Height, CornerRadius: corner},
		Fill:  Rect{X: r.Left, Y: r.Top, Width: r.Width * ratio, Height: r.Height, CornerRadius: corner},
		Thumb: Circle{X: thumbX, Y: centerY, Radius: radius},
		Icon:  Point{X: r.Left + IconOffset, Y: centerY},
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
