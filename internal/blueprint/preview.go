package blueprint

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"

	"mc-blueprint-converter/internal/voxel"
)

// WritePreview renders an isometric thumbnail of the structure into the
// bundle directory. The image is rasterized at 2× and downsampled for
// cleaner edges.
func WritePreview(dir string, g *voxel.Grid, opts Options) error {
	size := opts.PreviewSize
	if size <= 0 {
		size = 128
	}
	img := renderIsometric(g, size*2)
	img = downsample(img, size)

	if opts.PreviewWebP {
		f, err := os.Create(filepath.Join(dir, "icon.webp"))
		if err != nil {
			return fmt.Errorf("blueprint: create preview: %w", err)
		}
		defer f.Close()
		if err := nativewebp.Encode(f, img, nil); err != nil {
			return fmt.Errorf("blueprint: encode preview: %w", err)
		}
		return nil
	}

	f, err := os.Create(filepath.Join(dir, "icon.png"))
	if err != nil {
		return fmt.Errorf("blueprint: create preview: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("blueprint: encode preview: %w", err)
	}
	return nil
}

// renderIsometric projects each voxel to x' = x−z, y' = y + (x+z)/2 and
// paints it as a filled square, back to front.
func renderIsometric(g *voxel.Grid, size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	if g.Len() == 0 {
		return img
	}

	b := g.Bounds()
	dx, dy, dz := b.Extents()
	maxDim := dx
	if dy > maxDim {
		maxDim = dy
	}
	if dz > maxDim {
		maxDim = dz
	}

	scale := float64(size) * 0.8 / float64(maxDim)
	cx, cy := size/2, size/2

	keys := g.Keys()
	// Back-to-front painter order.
	sort.Slice(keys, func(i, j int) bool {
		xi, yi, zi := keys[i].Unpack()
		xj, yj, zj := keys[j].Unpack()
		if di, dj := xi+yi+zi, xj+yj+zj; di != dj {
			return di < dj
		}
		return keys[i] < keys[j]
	})

	half := int(scale*0.8) / 2
	if half < 1 {
		half = 1
	}

	for _, k := range keys {
		x, y, z := k.Unpack()
		c, _ := g.ColorKey(k)

		nx := float64(x-b.MinX) - float64(dx)/2
		ny := float64(y-b.MinY) - float64(dy)/2
		nz := float64(z-b.MinZ) - float64(dz)/2

		// z is up in target space, so it drives the screen vertical.
		px := cx + int((nx-ny)*scale)
		py := cy - int(nz*scale) + int((nx+ny)*0.5*scale)

		r := uint8(c >> 16)
		gc := uint8(c >> 8)
		bl := uint8(c)
		for oy := -half; oy <= half; oy++ {
			for ox := -half; ox <= half; ox++ {
				qx, qy := px+ox, py+oy
				if qx < 0 || qx >= size || qy < 0 || qy >= size {
					continue
				}
				i := img.PixOffset(qx, qy)
				img.Pix[i] = r
				img.Pix[i+1] = gc
				img.Pix[i+2] = bl
				img.Pix[i+3] = 255
			}
		}
	}

	return img
}

// downsample shrinks the oversampled render to the target size.
func downsample(img *image.NRGBA, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
