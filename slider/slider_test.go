package slider

import (
	"math"
	"testing"
)

func TestNew_ClampsStartValue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{50, 50},
		{-10, 0},
		{250, 100},
	}
	for _, tt := range tests {
		if got := New(tt.in).Value(); got != tt.want {
			t.Errorf("New(%v).Value() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPress(t *testing.T) {
	region := Region{Left: 100, Top: 0, Width: 200, Height: 40}

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"left edge", 100, 0},
		{"middle", 200, 50},
		{"quarter", 150, 25},
		{"right edge", 300, 100},
		{"left of region clamps", -500, 0},
		{"right of region clamps", 900, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(42)
			c.Press(tt.x, region)
			if got := c.Value(); got != tt.want {
				t.Errorf("Press(%v) value = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestPointerAlwaysInBounds(t *testing.T) {
	region := Region{Left: 12, Width: 313, Height: 40}
	c := New(50)

	for x := -1000.0; x <= 1000; x += 0.7 {
		c.Drag(x, region)
		if v := c.Value(); v < Min || v > Max {
			t.Fatalf("Drag(%v) value = %v, outside [0,100]", x, v)
		}
	}
}

func TestDrag_ReportsChange(t *testing.T) {
	region := Region{Width: 100, Height: 40}
	c := New(50)

	if c.Drag(50, region) {
		t.Error("Drag to the current value should report no change")
	}
	if !c.Drag(75, region) {
		t.Error("Drag to a new value should report a change")
	}
	if c.Value() != 75 {
		t.Errorf("Value() = %v, want 75", c.Value())
	}
}

func TestZeroWidthIsInert(t *testing.T) {
	for _, w := range []float64{0, -20} {
		c := New(30)
		region := Region{Left: 10, Width: w, Height: 40}

		if c.Press(10, region) || c.Drag(500, region) {
			t.Errorf("width %v: interaction should be ignored", w)
		}
		if c.Value() != 30 {
			t.Errorf("width %v: value = %v, want 30", w, c.Value())
		}

		g := c.Layout(region)
		if g.Track.Width != 0 || g.Fill.Width != 0 {
			t.Errorf("width %v: geometry = %+v, want zero width", w, g)
		}
		if math.IsNaN(g.Thumb.X) || math.IsInf(g.Thumb.X, 0) {
			t.Errorf("width %v: thumb x = %v", w, g.Thumb.X)
		}
	}
}

func TestNaNPointerIgnored(t *testing.T) {
	c := New(30)
	if c.Press(math.NaN(), Region{Width: 100, Height: 40}) {
		t.Error("NaN pointer should be ignored")
	}
	if c.Value() != 30 {
		t.Errorf("Value() = %v, want 30", c.Value())
	}
}

func TestNew_NaNStartValue(t *testing.T) {
	c := New(math.NaN())
	if c.Value() != Min {
		t.Fatalf("Value() = %v, want %v", c.Value(), Min)
	}
	g := c.Layout(Region{Width: 200, Height: 40})
	if math.IsNaN(g.Fill.Width) || math.IsNaN(g.Thumb.X) {
		t.Errorf("Layout() = %+v, want finite geometry", g)
	}
}

func TestLayout(t *testing.T) {
	region := Region{Left: 10, Top: 5, Width: 200, Height: 40}
	c := New(50)

	g := c.Layout(region)

	if g.Track != (Rect{X: 10, Y: 5, Width: 200, Height: 40, CornerRadius: 20}) {
		t.Errorf("Track = %+v", g.Track)
	}
	if g.Fill.Width != 100 {
		t.Errorf("Fill.Width = %v, want 100", g.Fill.Width)
	}
	if g.Thumb.X != 110 || g.Thumb.Y != 25 || g.Thumb.Radius != 17 {
		t.Errorf("Thumb = %+v, want {110 25 17}", g.Thumb)
	}
	if g.Icon != (Point{X: 30, Y: 25}) {
		t.Errorf("Icon = %+v, want {30 25}", g.Icon)
	}
}

func TestLayout_IconIndependentOfValue(t *testing.T) {
	region := Region{Left: 0, Width: 300, Height: 40}
	low, high := New(0).Layout(region), New(100).Layout(region)
	if low.Icon != high.Icon {
		t.Errorf("icon moved with value: %+v vs %+v", low.Icon, high.Icon)
	}
}

func TestThumbStaysOnTrack(t *testing.T) {
	region := Region{Left: 40, Width: 250, Height: 40}

	for v := 0.0; v <= 100; v += 0.5 {
		g := New(v).Layout(region)
		lo := region.Left + g.Thumb.Radius
		hi := region.Right() - g.Thumb.Radius
		if g.Thumb.X < lo || g.Thumb.X > hi {
			t.Fatalf("value %v: thumb x %v outside [%v, %v]", v, g.Thumb.X, lo, hi)
		}
	}
}

func TestThumbCentersOnNarrowTrack(t *testing.T) {
	region := Region{Left: 0, Width: 20, Height: 40}
	g := New(100).Layout(region)
	if g.Thumb.X != 10 {
		t.Errorf("Thumb.X = %v, want 10", g.Thumb.X)
	}
}
