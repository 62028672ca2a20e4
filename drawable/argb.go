package drawable

import "image/color"

// Colors are packed as 0xAARRGGBB, non-premultiplied.

// AlphaComponent returns the alpha of an ARGB color.
func AlphaComponent(argb uint32) uint8 {
	return uint8(argb >> 24)
}

// SetAlphaComponent replaces the alpha of an ARGB color.
func SetAlphaComponent(argb uint32, alpha uint8) uint32 {
	return argb&0x00FFFFFF | uint32(alpha)<<24
}

// ARGBToNRGBA unpacks an ARGB color.
func ARGBToNRGBA(argb uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
		A: uint8(argb >> 24),
	}
}

// NRGBAToARGB packs a color.NRGBA.
func NRGBAToARGB(c color.NRGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ColorToARGB converts any color.Color.
func ColorToARGB(c color.Color) uint32 {
	return NRGBAToARGB(color.NRGBAModel.Convert(c).(color.NRGBA))
}

// mulAlpha scales a by alpha/255 with rounding.
func mulAlpha(a, alpha uint8) uint8 {
	return uint8((uint32(a)*uint32(alpha) + 127) / 255)
}
