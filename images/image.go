// Package images - pixel-level compositing and alpha manipulation for deriving
// icon variants from a master logo.
//
// Every function in this package returns a freshly allocated *image.NRGBA with
// its origin at (0, 0) and leaves its inputs untouched. Pixels are stored
// non-premultiplied so that RGB survives where alpha drops to zero.
package images

import (
	"image"
	"image/color"
	"image/draw"
)

// NewCanvas allocates a fully transparent square canvas.
//
// Arguments:
//   - size: The width and height of the canvas in pixels.
//
// Returns:
//   - *image.NRGBA: The transparent canvas.
func NewCanvas(size int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, size, size))
}

// NewFilled allocates a w×h image with every pixel set to c.
func NewFilled(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

// ToNRGBA returns a copy of src as non-premultiplied RGBA rebased at (0, 0).
// The result never shares pixel memory with src.
func ToNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if n, ok := src.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			srcOff := n.PixOffset(b.Min.X, b.Min.Y+y)
			dstOff := dst.PixOffset(0, y)
			copy(dst.Pix[dstOff:dstOff+b.Dx()*4], n.Pix[srcOff:srcOff+b.Dx()*4])
		}
		return dst
	}
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// Clone returns a deep copy of img.
func Clone(img *image.NRGBA) *image.NRGBA {
	return ToNRGBA(img)
}
