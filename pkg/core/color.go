package core

import "github.com/chewxy/math32"

// ChannelToByte scales a linear channel by 255 and truncates it into [0, 255].
// NaN maps to 0.
func ChannelToByte(c float32) uint8 {
	v := c * 255
	switch {
	case math32.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

// ColorToRGB8 converts a linear color to three bytes, clamping each channel
func ColorToRGB8(c Vec3) (r, g, b uint8) {
	return ChannelToByte(c[0]), ChannelToByte(c[1]), ChannelToByte(c[2])
}
