// Package texture loads and samples resource-pack textures.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/ftrvxmtrx/tga"
)

// LoadTexture reads an image file and returns an NRGBA image. PNG is the
// common case; JPEG and TGA turn up in third-party packs.
func LoadTexture(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return toNRGBA(img), nil
}

// toNRGBA converts any decoded image to NRGBA.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// Sample returns the texel at normalized (u, v), clamped to the image.
// (0,0) is the top-left corner. ok is false for a nil image.
func Sample(img *image.NRGBA, u, v float64) (c color.NRGBA, ok bool) {
	if img == nil {
		return color.NRGBA{}, false
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return color.NRGBA{}, false
	}

	px := int(clamp01(u) * float64(w))
	py := int(clamp01(v) * float64(h))
	if px >= w {
		px = w - 1
	}
	if py >= h {
		py = h - 1
	}

	i := img.PixOffset(b.Min.X+px, b.Min.Y+py)
	return color.NRGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: img.Pix[i+3]}, true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
