package ui

import (
	"math"

	"github.com/diamondburned/gotk4/pkg/cairo"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/action-center/common"
	"github.com/yllada/action-center/slider"
	"github.com/yllada/action-center/theme"
)

// Track color of every slider, independent of the theme.
const trackGray = 80.0 / 255

// SliderWidget paints a slider.Control on a DrawingArea and feeds it pointer
// input. The icon sits in an overlay so it keeps its place while the fill moves.
type SliderWidget struct {
	overlay  *gtk.Overlay
	area     *gtk.DrawingArea
	icon     *gtk.Image
	control  *slider.Control
	colors   theme.Colors
	onChange func(float64)

	dragStartX float64
}

// NewSliderWidget creates a slider starting at value with the named icon.
func NewSliderWidget(iconName string, value float64, colors theme.Colors) *SliderWidget {
	s := &SliderWidget{
		control: slider.New(value),
		colors:  colors,
	}

	s.area = gtk.NewDrawingArea()
	s.area.SetContentHeight(common.SliderHeight)
	s.area.SetHExpand(true)
	s.area.SetDrawFunc(s.draw)

	click := gtk.NewGestureClick()
	click.ConnectPressed(func(_ int, x, _ float64) {
		s.apply(s.control.Press(x, s.region()))
	})
	s.area.AddController(click)

	drag := gtk.NewGestureDrag()
	drag.ConnectDragBegin(func(x, _ float64) {
		s.dragStartX = x
	})
	drag.ConnectDragUpdate(func(offsetX, _ float64) {
		s.apply(s.control.Drag(s.dragStartX+offsetX, s.region()))
	})
	s.area.AddController(drag)

	s.icon = gtk.NewImageFromIconName(iconName)
	s.icon.SetPixelSize(16)
	s.icon.SetHAlign(gtk.AlignStart)
	s.icon.SetVAlign(gtk.AlignCenter)
	s.icon.SetMarginStart(int(slider.IconOffset) - 8)
	s.icon.SetCanTarget(false)
	s.icon.AddCSSClass("slider-icon")

	s.overlay = gtk.NewOverlay()
	s.overlay.SetChild(s.area)
	s.overlay.AddOverlay(s.icon)

	return s
}

// Widget returns the root widget.
func (s *SliderWidget) Widget() gtk.Widgetter {
	return s.overlay
}

// Value returns the current value.
func (s *SliderWidget) Value() float64 {
	return s.control.Value()
}

// SetOnChange sets the callback run on the GTK thread whenever the value
// changes through pointer input.
func (s *SliderWidget) SetOnChange(callback func(float64)) {
	s.onChange = callback
}

// SetColors repaints the slider with new theme colors.
func (s *SliderWidget) SetColors(colors theme.Colors) {
	s.colors = colors
	s.area.QueueDraw()
}

func (s *SliderWidget) region() slider.Region {
	return slider.Region{
		Width:  float64(s.area.Width()),
		Height: float64(s.area.Height()),
	}
}

func (s *SliderWidget) apply(changed bool) {
	if !changed {
		return
	}
	s.area.QueueDraw()
	if s.onChange != nil {
		s.onChange(s.control.Value())
	}
}

func (s *SliderWidget) draw(_ *gtk.DrawingArea, cr *cairo.Context, width, height int) {
	g := s.control.Layout(slider.Region{Width: float64(width), Height: float64(height)})
	if g.Track.Width <= 0 {
		return
	}

	cr.SetSourceRGBA(trackGray, trackGray, trackGray, 1)
	roundedRect(cr, g.Track)
	cr.Fill()

	if g.Fill.Width > 0 {
		cr.SetSourceRGBA(theme.Float(s.colors.Primary))
		roundedRect(cr, g.Fill)
		cr.Fill()
	}

	cr.SetSourceRGBA(1, 1, 1, 1)
	cr.NewSubPath()
	cr.Arc(g.Thumb.X, g.Thumb.Y, g.Thumb.Radius, 0, 2*math.Pi)
	cr.ClosePath()
	cr.Fill()
}

// roundedRect adds r to the current path. The radius shrinks to fit narrow
// rectangles such as a nearly empty fill.
func roundedRect(cr *cairo.Context, r slider.Rect) {
	radius := math.Min(r.CornerRadius, math.Min(r.Width, r.Height)/2)
	x, y, w, h := r.X, r.Y, r.Width, r.Height

	cr.NewSubPath()
	cr.Arc(x+w-radius, y+radius, radius, -math.Pi/2, 0)
	cr.Arc(x+w-radius, y+h-radius, radius, 0, math.Pi/2)
	cr.Arc(x+radius, y+h-radius, radius, math.Pi/2, math.Pi)
	cr.Arc(x+radius, y+radius, radius, math.Pi, 3*math.Pi/2)
	cr.ClosePath()
}
