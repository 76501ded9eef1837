package reveal

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMeasure(t *testing.T) {
	viewport := Rect{Width: 1000, Height: 800}
	tests := []struct {
		name   string
		margin Margin
		box    Rect
		want   float64
	}{
		{"fully inside", Margin{}, Rect{Top: 100, Left: 100, Width: 200, Height: 200}, 1},
		{"below viewport", Margin{}, Rect{Top: 900, Width: 200, Height: 200}, 0},
		{"above viewport", Margin{}, Rect{Top: -300, Width: 200, Height: 200}, 0},
		{"touching edge", Margin{}, Rect{Top: 800, Width: 200, Height: 200}, 0},
		{"forty percent", Margin{}, Rect{Top: 720, Width: 100, Height: 200}, 0.4},
		{"sixty percent", Margin{}, Rect{Top: 680, Width: 100, Height: 200}, 0.6},
		{"clipped horizontally", Margin{}, Rect{Top: 0, Left: 900, Width: 200, Height: 100}, 0.5},
		{"negative bottom margin", Margin{Bottom: -50}, Rect{Top: 700, Width: 100, Height: 100}, 0.5},
		{"positive margin counts approaching", Margin{Bottom: 100}, Rect{Top: 850, Width: 100, Height: 100}, 0.5},
		{"zero area", Margin{}, Rect{Top: 10, Width: 0, Height: 50}, 0},
		{"larger than viewport", Margin{}, Rect{Top: -100, Width: 1000, Height: 1600}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Measure(viewport, tt.margin, tt.box); !near(got, tt.want) {
				t.Errorf("Measure = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseMargin(t *testing.T) {
	tests := []struct {
		in   string
		want Margin
	}{
		{"", Margin{}},
		{"10px", Margin{10, 10, 10, 10}},
		{"10px 20px", Margin{10, 20, 10, 20}},
		{"1 2 3", Margin{1, 2, 3, 2}},
		{"0px 0px -50px 0px", Margin{Bottom: -50}},
	}
	for _, tt := range tests {
		got, err := ParseMargin(tt.in)
		if err != nil {
			t.Errorf("ParseMargin(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMargin(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"1 2 3 4 5", "10em", "NaN"} {
		if _, err := ParseMargin(bad); err == nil {
			t.Errorf("ParseMargin(%q) should fail", bad)
		}
	}
}
