package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectionRoundTrip(t *testing.T) {
	viewports := []Size{
		{Width: 1000, Height: 800},
		{Width: 1920, Height: 1080},
		{Width: 333, Height: 77},
	}
	rects := []Rect{
		{X: 0, Y: 0, Width: 100, Height: 100},
		{X: 12.5, Y: -40, Width: 640, Height: 480},
		{X: 999, Y: 799, Width: 1, Height: 1},
	}

	for _, vp := range viewports {
		for _, r := range rects {
			got := FromViewportPercent(ToViewportPercent(r, vp), vp)
			assert.InDelta(t, r.X, got.X, 1e-9)
			assert.InDelta(t, r.Y, got.Y, 1e-9)
			assert.InDelta(t, r.Width, got.Width, 1e-9)
			assert.InDelta(t, r.Height, got.Height, 1e-9)
		}
	}
}

func TestToViewportPercent(t *testing.T) {
	got := ToViewportPercent(Rect{X: 500, Y: 200, Width: 250, Height: 400}, Size{Width: 1000, Height: 800})
	assert.Equal(t, Rect{X: 50, Y: 25, Width: 25, Height: 50}, got)
}

func TestToViewportPercentZeroViewport(t *testing.T) {
	got := ToViewportPercent(Rect{X: 10, Y: 10, Width: 10, Height: 10}, Size{})
	require.True(t, got.Valid())
	assert.Equal(t, Rect{}, got)
}

func TestProjectPixelIsIdentity(t *testing.T) {
	r := Rect{X: 1, Y: 2, Width: 3, Height: 4}
	assert.Equal(t, r, Project(r, Pixel, Size{Width: 10, Height: 10}))

	got := Project(r, Percent, Size{Width: 200, Height: 100})
	assert.InDelta(t, 2, got.X, 1e-9)
	assert.InDelta(t, 2, got.Y, 1e-9)
	assert.InDelta(t, 6, got.Width, 1e-9)
	assert.InDelta(t, 4, got.Height, 1e-9)
}

func TestRectValid(t *testing.T) {
	assert.True(t, Rect{X: 1, Y: 1, Width: 1, Height: 1}.Valid())
	assert.False(t, Rect{X: math.NaN()}.Valid())
	assert.False(t, Rect{Width: math.Inf(1)}.Valid())
}

func TestRectContainsAndGrow(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 100, Height: 50}
	assert.True(t, r.Contains(Point{X: 10, Y: 10}))
	assert.True(t, r.Contains(Point{X: 109, Y: 59}))
	assert.False(t, r.Contains(Point{X: 110, Y: 30}))
	assert.False(t, r.Contains(Point{X: 9, Y: 30}))

	grown := r.Grow(5)
	assert.Equal(t, Rect{X: 5, Y: 5, Width: 110, Height: 60}, grown)
	assert.True(t, grown.Contains(Point{X: 6, Y: 30}))
}

func TestEdges(t *testing.T) {
	assert.False(t, Edges{}.Any())
	assert.Equal(t, "none", Edges{}.String())

	e := Edges{Top: true, Left: true}
	assert.True(t, e.Any())
	assert.True(t, e.Lateral())
	assert.True(t, e.Vertical())
	assert.Equal(t, "top+left", e.String())
}
