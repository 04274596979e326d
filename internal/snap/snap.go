// Package snap decides which screen edges a dragged window is near and where
// it lands when released there.
package snap

import (
	"fmt"

	"github.com/ItsNotGoodName/x-snapwm/internal/geom"
)

// Zone names a snap target.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneLeft
	ZoneRight
	ZoneTopLeft
	ZoneTopRight
	ZoneBottomLeft
	ZoneBottomRight
	ZoneFull
)

func (z Zone) String() string {
	switch z {
	case ZoneNone:
		return "none"
	case ZoneLeft:
		return "left"
	case ZoneRight:
		return "right"
	case ZoneTopLeft:
		return "top-left"
	case ZoneTopRight:
		return "top-right"
	case ZoneBottomLeft:
		return "bottom-left"
	case ZoneBottomRight:
		return "bottom-right"
	case ZoneFull:
		return "full"
	default:
		return "unknown"
	}
}

// Detector finds the screen edges within Dist pixels of a point.
type Detector struct {
	Dist float64
}

// Detect returns the viewport edges p is within d.Dist of.
func (d Detector) Detect(p geom.Point, vp geom.Size) geom.Edges {
	return geom.Edges{
		Left:   p.X <= d.Dist,
		Top:    p.Y <= d.Dist,
		Right:  p.X >= vp.Width-d.Dist,
		Bottom: p.Y >= vp.Height-d.Dist,
	}
}

// Target returns the percent rectangle for e, or false when no edge is set.
//
// A lateral edge gives a half, a lateral edge with a vertical one gives a
// quarter and a vertical edge alone gives the full viewport.
func Target(e geom.Edges) (geom.Rect, bool) {
	if !e.Any() {
		return geom.Rect{}, false
	}

	if !e.Lateral() {
		return geom.Rect{Width: 100, Height: 100}, true
	}

	r := geom.Rect{Width: 50, Height: 100}
	if e.Right {
		r.X = 50
	}
	if e.Vertical() {
		r.Height = 50
		if e.Bottom {
			r.Y = 50
		}
	}
	return r, true
}

// Classify names the target of e.
func Classify(e geom.Edges) Zone {
	switch {
	case !e.Any():
		return ZoneNone
	case !e.Lateral():
		return ZoneFull
	case !e.Vertical():
		if e.Right {
			return ZoneRight
		}
		return ZoneLeft
	case e.Bottom && e.Right:
		return ZoneBottomRight
	case e.Bottom:
		return ZoneBottomLeft
	case e.Right:
		return ZoneTopRight
	default:
		return ZoneTopLeft
	}
}

// Edges returns the edge set that snaps to z.
func (z Zone) Edges() geom.Edges {
	switch z {
	case ZoneLeft:
		return geom.Edges{Left: true}
	case ZoneRight:
		return geom.Edges{Right: true}
	case ZoneTopLeft:
		return geom.Edges{Top: true, Left: true}
	case ZoneTopRight:
		return geom.Edges{Top: true, Right: true}
	case ZoneBottomLeft:
		return geom.Edges{Bottom: true, Left: true}
	case ZoneBottomRight:
		return geom.Edges{Bottom: true, Right: true}
	case ZoneFull:
		return geom.Edges{Top: true}
	default:
		return geom.Edges{}
	}
}

// ParseZone is the inverse of Zone.String.
func ParseZone(s string) (Zone, error) {
	for z := ZoneNone; z <= ZoneFull; z++ {
		if z.String() == s {
			return z, nil
		}
	}
	return ZoneNone, fmt.Errorf("%s: invalid zone", s)
}
