// pkg/render/color.go
package render

import "image/color"

// LightenColor raises every channel by delta, saturating at 255.
func LightenColor(c color.RGBA, delta int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+delta)),
		G: uint8(min(255, int(c.G)+delta)),
		B: uint8(min(255, int(c.B)+delta)),
		A: 255,
	}
}
