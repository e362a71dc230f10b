package storage

import (
	"bytes"
	"image"
	"image/jpeg"

	"golang.org/x/image/draw"
)

const PlaceholderWidth = 24

// BlurPlaceholder shrinks img to width pixels keeping the aspect ratio. Browsers stretch
// the result back up, which gives the blurred preview shown while the original loads.
func BlurPlaceholder(img image.Image, width int) ([]byte, error) {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, image.ErrFormat
	}

	height := bounds.Dy() * width / bounds.Dx()
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 40}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
