package tileoutput

import (
	"image"
	"image/color"
)

// Preview renders a single band (row-major, length nrows*ncols) as an
// 8-bit grayscale image, linearly scaling [min, max] to [0, 255]. Values
// outside [min, max] are clamped. Intended for eyeballing rasterization
// output, not for any part of the rasterization pipeline.
func Preview(band []float64, nrows, ncols int, min, max float64) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, ncols, nrows))

	span := max - min
	if span <= 0 {
		span = 1
	}

	for y := 0; y < nrows; y++ {
		row := band[y*ncols : (y+1)*ncols]
		for x := 0; x < ncols; x++ {
			v := (row[x] - min) / span
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v*255 + 0.5)})
		}
	}
	return img
}
