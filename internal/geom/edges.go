package geom

import "strings"

// Edges is a set of screen or window edges.
type Edges struct {
	Top    bool `json:"top"`
	Left   bool `json:"left"`
	Bottom bool `json:"bottom"`
	Right  bool `json:"right"`
}

func (e Edges) Any() bool {
	return e.Top || e.Left || e.Bottom || e.Right
}

// Lateral reports whether a left or right edge is set.
func (e Edges) Lateral() bool {
	return e.Left || e.Right
}

// Vertical reports whether a top or bottom edge is set.
func (e Edges) Vertical() bool {
	return e.Top || e.Bottom
}

func (e Edges) String() string {
	var parts []string
	if e.Top {
		parts = append(parts, "top")
	}
	if e.Left {
		parts = append(parts, "left")
	}
	if e.Bottom {
		parts = append(parts, "bottom")
	}
	if e.Right {
		parts = append(parts, "right")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}
