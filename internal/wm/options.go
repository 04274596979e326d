package wm

// Options configure a controller. They are read once at construction.
//
// MinWidth and MinHeight must be positive; they are not validated.
type Options struct {
	// Resizable enables the resize affordance.
	Resizable bool
	// MinWidth and MinHeight are the pixel floors of a resize.
	MinWidth  float64
	MinHeight float64
	// ResizeWidth is the thickness of the resize affordance around the window.
	ResizeWidth float64
	// ZIndex is a stacking hint for the host. A negative value puts the
	// preview above the window.
	ZIndex int
	// SnapDist is how close to a screen edge the pointer must be to snap.
	SnapDist float64
	// BlurPreviewBg asks the host to blur behind the preview.
	BlurPreviewBg bool
}

func DefaultOptions() Options {
	return Options{
		Resizable:     true,
		MinWidth:      100,
		MinHeight:     100,
		ResizeWidth:   12,
		ZIndex:        0,
		SnapDist:      10,
		BlurPreviewBg: true,
	}
}
