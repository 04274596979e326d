package config

import (
	"github.com/ItsNotGoodName/x-snapwm/internal/geom"
	"github.com/ItsNotGoodName/x-snapwm/internal/wm"
)

var defaultConfig = Config{
	Window: Window{
		Resizable:     true,
		MinWidth:      100,
		MinHeight:     100,
		ResizeWidth:   12,
		ZIndex:        0,
		SnapDist:      10,
		BlurPreviewBg: true,
		X:             100,
		Y:             100,
		Width:         640,
		Height:        480,
	},
	FrameRate: 60,
}

// Default returns the config written on first run.
func Default() Config {
	return defaultConfig
}

type Config struct {
	Window    Window `json:"window" yaml:"window"`
	FrameRate int    `json:"frame_rate" yaml:"frame_rate"`
}

type Window struct {
	Resizable     bool    `json:"resizable" yaml:"resizable"`
	MinWidth      float64 `json:"min_width" yaml:"min_width"`
	MinHeight     float64 `json:"min_height" yaml:"min_height"`
	ResizeWidth   float64 `json:"resize_width" yaml:"resize_width"`
	ZIndex        int     `json:"z_index" yaml:"z_index"`
	SnapDist      float64 `json:"snap_dist" yaml:"snap_dist"`
	BlurPreviewBg bool    `json:"blur_preview_bg" yaml:"blur_preview_bg"`

	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

func (w Window) Options() wm.Options {
	return wm.Options{
		Resizable:     w.Resizable,
		MinWidth:      w.MinWidth,
		MinHeight:     w.MinHeight,
		ResizeWidth:   w.ResizeWidth,
		ZIndex:        w.ZIndex,
		SnapDist:      w.SnapDist,
		BlurPreviewBg: w.BlurPreviewBg,
	}
}

func (w Window) Rect() geom.Rect {
	return geom.Rect{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height}
}
