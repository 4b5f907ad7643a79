package tileoutput

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/gen2brain/webp"
)

// DecodeImage decodes preview bytes in the specified format back to an
// image.Image. Supported formats: "png", "jpeg"/"jpg", "webp". WebP
// decoding uses the pure-Go (WASM) codec so it works regardless of CGo
// availability, unlike WebPEncoder.
func DecodeImage(data []byte, format string) (image.Image, error) {
	r := bytes.NewReader(data)
	switch format {
	case "png":
		return png.Decode(r)
	case "jpeg", "jpg":
		return jpeg.Decode(r)
	case "webp":
		return webp.Decode(r)
	default:
		return nil, fmt.Errorf("unsupported decode format: %q", format)
	}
}
