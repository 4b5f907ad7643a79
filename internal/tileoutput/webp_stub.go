//go:build !cgo

package tileoutput

import "fmt"

const webpCGOAvailable = false

func newWebPEncoder(quality int) (Encoder, error) {
	return nil, fmt.Errorf("webp: native libwebp encoder requires CGO (install libwebp-dev and build with CGO_ENABLED=1)")
}
