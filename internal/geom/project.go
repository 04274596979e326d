package geom

// ToViewportPercent converts a pixel rectangle into percentages of vp.
// An axis with a zero or negative viewport dimension projects to 0.
func ToViewportPercent(r Rect, vp Size) Rect {
	return Rect{
		X:      toPercent(r.X, vp.Width),
		Y:      toPercent(r.Y, vp.Height),
		Width:  toPercent(r.Width, vp.Width),
		Height: toPercent(r.Height, vp.Height),
	}
}

// FromViewportPercent converts a percentage rectangle into pixels of vp.
func FromViewportPercent(r Rect, vp Size) Rect {
	return Rect{
		X:      r.X / 100 * vp.Width,
		Y:      r.Y / 100 * vp.Height,
		Width:  r.Width / 100 * vp.Width,
		Height: r.Height / 100 * vp.Height,
	}
}

// Project converts r from unit u into pixels of vp.
func Project(r Rect, u Unit, vp Size) Rect {
	if u == Percent {
		return FromViewportPercent(r, vp)
	}
	return r
}

func toPercent(v, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return v / total * 100
}
