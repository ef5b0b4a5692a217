package main

import (
	"image/color"

	"golang.org/x/image/math/f32"
)

// grayFromUnit maps a value in [0, 1] to an 8-bit grayscale level.
func grayFromUnit(v float32) color.Gray {
	return color.Gray{Y: uint8(v * 255)}
}

// pixelToGrid maps a PNG pixel coordinate to grid-space coordinates
// given a supersampling scale factor, using x/image's float32 vector
// type rather than a hand-rolled one for the sample-grid-to-pixel math.
func pixelToGrid(px, py, scale int) f32.Vec2 {
	s := float32(scale)
	return f32.Vec2{float32(px) / s, float32(py) / s}
}
