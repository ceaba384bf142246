package images

import (
	"image"
)

// Mask is an alpha-only image. Operations that consume a Mask can only ever
// see opacity, never color.
type Mask struct {
	alpha *image.Alpha
}

// NewMask copies the alpha channel of img into a Mask with origin (0, 0).
func NewMask(img image.Image) *Mask {
	b := img.Bounds()
	a := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			a.Pix[a.PixOffset(x, y)] = alphaAt(img, b.Min.X+x, b.Min.Y+y)
		}
	}
	return &Mask{alpha: a}
}

// Bounds returns the mask dimensions.
func (m *Mask) Bounds() image.Rectangle {
	return m.alpha.Rect
}

// AlphaAt returns the opacity at (x, y), or 0 outside the mask.
func (m *Mask) AlphaAt(x, y int) uint8 {
	if !(image.Point{X: x, Y: y}.In(m.alpha.Rect)) {
		return 0
	}
	return m.alpha.Pix[m.alpha.PixOffset(x, y)]
}

// Alpha returns a copy of the mask as an *image.Alpha.
func (m *Mask) Alpha() *image.Alpha {
	out := image.NewAlpha(m.alpha.Rect)
	copy(out.Pix, m.alpha.Pix)
	return out
}

// Dilate returns a new mask grown by the square max filter of Dilate.
// A radius <= 0 returns m itself.
func (m *Mask) Dilate(radius int) *Mask {
	if radius <= 0 {
		return m
	}
	w, h := m.alpha.Rect.Dx(), m.alpha.Rect.Dy()
	a := image.NewAlpha(image.Rect(0, 0, w, h))
	a.Pix = dilateChannel(w, h, radius, func(x, y int) uint8 {
		return m.alpha.Pix[y*m.alpha.Stride+x]
	})
	return &Mask{alpha: a}
}

// SubtractMask knocks mask out of base: every pixel's alpha becomes
// max(0, baseAlpha - maskAlpha).
//
// Base RGB is kept even where alpha reaches 0. Partially transparent mask
// pixels only partially cut the base, and pixels outside the mask are left as
// they are.
//
// Arguments:
//   - base: The image to cut.
//   - mask: The cut-out shape, aligned to base's top-left corner.
//
// Returns:
//   - *image.NRGBA: The knocked-out copy of base.
func SubtractMask(base *image.NRGBA, mask *Mask) *image.NRGBA {
	out := ToNRGBA(base)
	w, h := out.Rect.Dx(), out.Rect.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cut := mask.AlphaAt(x, y)
			if cut == 0 {
				continue
			}
			i := out.PixOffset(x, y) + 3
			if a := out.Pix[i]; a > cut {
				out.Pix[i] = a - cut
			} else {
				out.Pix[i] = 0
			}
		}
	}
	return out
}
