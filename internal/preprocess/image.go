package preprocess

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // register decoder
	"image/jpeg"
	_ "image/png" // register decoder
	"io"

	_ "golang.org/x/image/bmp" // register decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register decoder
)

// fitWithin returns the size of a w x h image scaled down to fit inside
// maxW x maxH, keeping the aspect ratio. Images that already fit are unchanged.
func fitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}
	ratio := min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	nw, nh := int(float64(w)*ratio), int(float64(h)*ratio)
	return max(nw, 1), max(nh, 1)
}

// Compress decodes any supported image from src, flattens transparency onto
// white, scales it to fit maxW x maxH and writes it to dst as JPEG.
func Compress(src io.Reader, dst io.Writer, maxW, maxH, quality int) (image.Point, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return image.Point{}, fmt.Errorf("failed to decode image: %w", err)
	}

	b := img.Bounds()
	w, h := fitWithin(b.Dx(), b.Dy(), maxW, maxH)
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	if w == b.Dx() && h == b.Dy() {
		draw.Draw(out, out.Bounds(), img, b.Min, draw.Over)
	} else {
		draw.CatmullRom.Scale(out, out.Bounds(), img, b, draw.Over, nil)
	}

	if err := jpeg.Encode(dst, out, &jpeg.Options{Quality: quality}); err != nil {
		return image.Point{}, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return image.Pt(w, h), nil
}
