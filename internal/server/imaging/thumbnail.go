// Package imaging produces JPEG thumbnails for uploaded progress photos.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	maxThumbWidth  = 300
	maxThumbHeight = 300
	thumbQuality   = 80
)

// Thumbnail decodes a JPEG or PNG image and returns a JPEG thumbnail that
// fits inside 300x300 while preserving aspect ratio. Images already within
// the bounds are re-encoded without scaling.
func Thumbnail(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := src.Bounds()
	w, h := fitInside(b.Dx(), b.Dy(), maxThumbWidth, maxThumbHeight)

	var out image.Image = src
	if w != b.Dx() || h != b.Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
		out = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: thumbQuality}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// fitInside scales (w, h) down to fit (maxW, maxH), never scaling up.
func fitInside(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}
	rw := float64(maxW) / float64(w)
	rh := float64(maxH) / float64(h)
	r := rw
	if rh < rw {
		r = rh
	}
	nw := int(float64(w) * r)
	nh := int(float64(h) * r)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return nw, nh
}
