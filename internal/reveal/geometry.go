package reveal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rect is a box in viewport-relative CSS pixels.
type Rect struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) bottom() float64 { return r.Top + r.Height }
func (r Rect) right() float64  { return r.Left + r.Width }

func (r Rect) area() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Margin grows (positive) or shrinks (negative) the viewport on each side
// before intersecting.
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// ParseMargin reads CSS shorthand with one to four pixel values,
// e.g. "0px 0px -50px 0px". Empty input is the zero margin.
func ParseMargin(s string) (Margin, error) {
	fields := strings.Fields(s)
	vals := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSuffix(f, "px"), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Margin{}, fmt.Errorf("parse margin %q: bad value %q", s, f)
		}
		vals = append(vals, v)
	}
	switch len(vals) {
	case 0:
		return Margin{}, nil
	case 1:
		return Margin{vals[0], vals[0], vals[0], vals[0]}, nil
	case 2:
		return Margin{vals[0], vals[1], vals[0], vals[1]}, nil
	case 3:
		return Margin{vals[0], vals[1], vals[2], vals[1]}, nil
	case 4:
		return Margin{vals[0], vals[1], vals[2], vals[3]}, nil
	}
	return Margin{}, fmt.Errorf("parse margin %q: want 1 to 4 values, got %d", s, len(vals))
}

func (m Margin) String() string {
	return fmt.Sprintf("%gpx %gpx %gpx %gpx", m.Top, m.Right, m.Bottom, m.Left)
}

func (m Margin) apply(viewport Rect) Rect {
	return Rect{
		Top:    viewport.Top - m.Top,
		Left:   viewport.Left - m.Left,
		Width:  viewport.Width + m.Left + m.Right,
		Height: viewport.Height + m.Top + m.Bottom,
	}
}

// Measure returns the fraction of box inside the viewport after applying margin.
// Boxes without area measure 0.
func Measure(viewport Rect, margin Margin, box Rect) float64 {
	boxArea := box.area()
	if boxArea == 0 {
		return 0
	}
	root := margin.apply(viewport)
	w := math.Min(box.right(), root.right()) - math.Max(box.Left, root.Left)
	h := math.Min(box.bottom(), root.bottom()) - math.Max(box.Top, root.Top)
	if w <= 0 || h <= 0 {
		return 0
	}
	return math.Min(1, (w*h)/boxArea)
}
