package appicon

import "image/color"

// Gradient stops, deep athletic blue to electric cyan.
var (
	stopDeepBlue   = color.RGBA{26, 77, 153, 255}
	stopOceanBlue  = color.RGBA{0, 128, 204, 255}
	stopBrightCyan = color.RGBA{51, 179, 230, 255}
	stopElectric   = color.RGBA{102, 204, 255, 255}
)

// GradientAt returns the background color at the normalized distance ratio
// from the icon center. The four stops are spread over [0,0.33), [0.33,0.66)
// and [0.66,1]; channels are truncated toward zero and clamped to [0,255].
func GradientAt(ratio float64) color.RGBA {
	switch {
	case ratio < 0.33:
		return lerpRGB(stopDeepBlue, stopOceanBlue, ratio/0.33)
	case ratio < 0.66:
		return lerpRGB(stopOceanBlue, stopBrightCyan, (ratio-0.33)/0.33)
	default:
		return lerpRGB(stopBrightCyan, stopElectric, (ratio-0.66)/0.34)
	}
}

func lerpRGB(from, to color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpChannel(from.R, to.R, t),
		G: lerpChannel(from.G, to.G, t),
		B: lerpChannel(from.B, to.B, t),
		A: 255,
	}
}

func lerpChannel(from, to uint8, t float64) uint8 {
	v := int(float64(from) + (float64(to)-float64(from))*t)
	return uint8(max(0, min(255, v)))
}
