// Package images normalizes uploaded avatars: any JPEG or PNG comes out as
// a square-bounded webp small enough to serve straight from the bucket.
package images

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	maxDimension = 512
	webpQuality  = 80
)

// ProcessAvatar decodes, downscales and re-encodes an uploaded image.
func ProcessAvatar(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("images: decode: %w", err)
	}

	src = downscale(src, maxDimension)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("images: encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// downscale fits the image inside max x max keeping aspect ratio. Images
// already small enough pass through untouched.
func downscale(src image.Image, max int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return src
	}

	if w > h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
