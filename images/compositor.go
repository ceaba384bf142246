package images

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/nfnt/resize"
)

// CompositeOptions configures CompositeOnCanvas.
type CompositeOptions struct {
	// Monochrome replaces the content's RGB with black, keeping its alpha,
	// which turns the logo into a silhouette.
	Monochrome bool
	// OffsetX, OffsetY shift the centered content for optical centering.
	// They never influence the scale.
	OffsetX, OffsetY int
}

// FitSize computes the dimensions a w×h source takes when it is scaled
// uniformly to fit a square of round(canvasSize*contentScale) pixels.
//
// Rounding is half-to-even. Both results are at least 1.
//
// Arguments:
//   - w, h: The source dimensions.
//   - canvasSize: The side of the destination canvas.
//   - contentScale: The share of the canvas the content may occupy.
//
// Returns:
//   - int, int: The resized width and height.
func FitSize(w, h, canvasSize int, contentScale float64) (int, int) {
	target := math.RoundToEven(float64(canvasSize) * contentScale)
	scale := math.Min(target/float64(w), target/float64(h))
	newW := max(1, int(math.RoundToEven(float64(w)*scale)))
	newH := max(1, int(math.RoundToEven(float64(h)*scale)))
	return newW, newH
}

// CompositeOnCanvas scales src to fit contentScale of a transparent square
// canvas and pastes it centered.
//
// The source aspect ratio is preserved and the resize uses a Lanczos-3 filter.
// Pasting composites src over the canvas with its own alpha, clipping anything
// an offset pushes past the edge.
//
// Arguments:
//   - src: The (usually cropped) logo.
//   - canvasSize: The side of the output canvas in pixels.
//   - contentScale: The share of the canvas the content may occupy, e.g. 0.722.
//   - opt: Silhouette and offset options.
//
// Returns:
//   - *image.NRGBA: The composed canvas.
//
// Example:
//
// ```go
//
//	icon := CompositeOnCanvas(logo, 32, 0.62, CompositeOptions{Monochrome: true})
//
// ```
func CompositeOnCanvas(src image.Image, canvasSize int, contentScale float64, opt CompositeOptions) *image.NRGBA {
	canvas := NewCanvas(canvasSize)

	b := src.Bounds()
	if b.Empty() || canvasSize <= 0 {
		return canvas
	}

	newW, newH := FitSize(b.Dx(), b.Dy(), canvasSize, contentScale)
	resized := unpremultiply(resize.Resize(uint(newW), uint(newH), src, resize.Lanczos3))

	if opt.Monochrome {
		resized = silhouette(resized)
	}

	x := floorDiv(canvasSize-newW, 2) + opt.OffsetX
	y := floorDiv(canvasSize-newH, 2) + opt.OffsetY
	draw.Draw(canvas, image.Rect(x, y, x+newW, y+newH), resized, image.Point{}, draw.Over)

	return canvas
}

// unpremultiply converts the premultiplied output of a resize to NRGBA.
//
// Lanczos ringing clamps each channel independently, so a color channel can
// end up above alpha. Those channels saturate at 255 instead of wrapping.
func unpremultiply(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			dst.Set(x, y, color.RGBA64{
				R: uint16(min(r, a)),
				G: uint16(min(g, a)),
				B: uint16(min(bl, a)),
				A: uint16(a),
			})
		}
	}
	return dst
}

// silhouette blacks out the RGB channels of img in place and returns it.
func silhouette(img *image.NRGBA) *image.NRGBA {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = 0
		img.Pix[i+1] = 0
		img.Pix[i+2] = 0
	}
	return img
}

// floorDiv divides rounding toward negative infinity, so content larger than
// the canvas stays centered.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
