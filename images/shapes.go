package images

import (
	"image"

	"github.com/pkg/errors"
)

// BoundingBox is the smallest rectangle enclosing every pixel with non-zero alpha.
type BoundingBox struct {
	// Right and Bottom are exclusive (like image.Rectangle).
	Left, Top, Right, Bottom int
}

// Rect converts the box to an image.Rectangle.
func (b BoundingBox) Rect() image.Rectangle {
	return image.Rect(b.Left, b.Top, b.Right, b.Bottom)
}

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() int { return b.Right - b.Left }

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() int { return b.Bottom - b.Top }

// AlphaBounds computes the tight bounding box of the non-transparent pixels of img.
//
// Coordinates are in img's own coordinate space, so the box can be passed
// straight to SubImage.
//
// Arguments:
//   - img: Any image; only its alpha channel is inspected.
//
// Returns:
//   - BoundingBox: The enclosing box.
//   - bool: False when every pixel is fully transparent.
func AlphaBounds(img image.Image) (BoundingBox, bool) {
	b := img.Bounds()
	box := BoundingBox{Left: b.Max.X, Top: b.Max.Y, Right: b.Min.X, Bottom: b.Min.Y}
	found := false

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if alphaAt(img, x, y) == 0 {
				continue
			}
			found = true
			box.Left = min(box.Left, x)
			box.Top = min(box.Top, y)
			box.Right = max(box.Right, x+1)
			box.Bottom = max(box.Bottom, y+1)
		}
	}

	if !found {
		return BoundingBox{}, false
	}
	return box, true
}

// Crop converts img to NRGBA and trims it to the bounding box of its
// non-transparent content.
//
// Arguments:
//   - img: The master logo.
//
// Returns:
//   - *image.NRGBA: A copy of the cropped content, origin at (0, 0).
//   - error: ErrMissingAlpha if img has no pixel with non-zero alpha.
func Crop(img image.Image) (*image.NRGBA, error) {
	rgba := ToNRGBA(img)
	box, ok := AlphaBounds(rgba)
	if !ok {
		return nil, errors.WithStack(ErrMissingAlpha)
	}
	return ToNRGBA(rgba.SubImage(box.Rect())), nil
}

// alphaAt reads the 8-bit alpha of a pixel without a color model conversion
// for the common concrete types.
func alphaAt(img image.Image, x, y int) uint8 {
	switch m := img.(type) {
	case *image.NRGBA:
		return m.Pix[m.PixOffset(x, y)+3]
	case *image.RGBA:
		return m.Pix[m.PixOffset(x, y)+3]
	case *image.Alpha:
		return m.Pix[m.PixOffset(x, y)]
	default:
		_, _, _, a := img.At(x, y).RGBA()
		return uint8(a >> 8)
	}
}
