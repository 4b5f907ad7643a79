// Package tileoutput renders one band of a materialized raster as a
// grayscale image, for visual inspection of rasterization output. It plays
// no part in the rasterization pipeline itself.
package tileoutput

import (
	"fmt"
	"image"
)

// Encoder encodes a preview image into bytes.
type Encoder interface {
	// Encode encodes an image to bytes in the encoder's format.
	Encode(img image.Image) ([]byte, error)

	// Format returns the format name (e.g. "jpeg", "png", "webp").
	Format() string

	// FileExtension returns the appropriate file extension.
	FileExtension() string
}

// NewEncoder creates an encoder for the given format and quality.
// Quality is ignored by formats that don't use it (png).
func NewEncoder(format string, quality int) (Encoder, error) {
	switch format {
	case "jpeg", "jpg":
		return &JPEGEncoder{Quality: quality}, nil
	case "png":
		return &PNGEncoder{}, nil
	case "webp":
		return newWebPEncoder(quality)
	default:
		return nil, fmt.Errorf("unsupported preview format: %q (supported: jpeg, png, webp)", format)
	}
}
