// Copyright (c) 2025 Sahithya Reddy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package face

import (
	"bytes"
	"fmt"
	"image"

	// Registered codecs for image.Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// DecodeAndBound decodes raw image bytes and downscales the result so that
// neither dimension exceeds maxDim, preserving aspect ratio. Bounding keeps
// embedding extraction cost predictable regardless of upload size. Images
// already within bounds are returned undisturbed; nothing is ever upscaled.
func DecodeAndBound(data []byte, maxDim int) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return img, nil
	}

	// Scale the longer edge down to maxDim
	var newW, newH int
	if w >= h {
		newW = maxDim
		newH = h * maxDim / w
	} else {
		newH = maxDim
		newW = w * maxDim / h
	}
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	scaled := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, bounds, draw.Src, nil)
	return scaled, nil
}
