package images

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/chewxy/math32"
	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points so that four segments approximate
// a circle to within 0.03% of the radius.
const kappa = 4 * (math32.Sqrt2 - 1) / 3

// AddSolidBackground composites img over an opaque canvas filled with c.
//
// Arguments:
//   - img: The foreground.
//   - c: The background color.
//
// Returns:
//   - *image.NRGBA: A new image of the same size as img.
func AddSolidBackground(img image.Image, c color.NRGBA) *image.NRGBA {
	b := img.Bounds()
	bg := NewFilled(b.Dx(), b.Dy(), c)
	draw.Draw(bg, bg.Bounds(), img, b.Min, draw.Over)
	return bg
}

// AddRoundedRectUnderlay draws a filled rounded rectangle spanning
// [inset, size-inset] on each axis behind img.
//
// The edges are anti-aliased and the far edge lies on the boundary between
// pixels size-inset-1 and size-inset, so pixel column size-inset itself stays
// clear. A non-anti-aliased rasterizer that fills end coordinates inclusively
// paints one pixel more on the right and bottom.
//
// The plate shows only where img is transparent or partially transparent.
// The radius is clamped to half the shorter side of the rectangle.
//
// Arguments:
//   - img: The foreground.
//   - inset: Distance in pixels from every edge to the plate.
//   - radius: Corner radius in pixels.
//   - c: The plate color.
//
// Returns:
//   - *image.NRGBA: A new image of the same size as img.
func AddRoundedRectUnderlay(img image.Image, inset, radius int, c color.NRGBA) *image.NRGBA {
	b := img.Bounds()
	canvas := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	fillShape(canvas, c, func(z *vector.Rasterizer) {
		roundedRect(z, insetBox(canvas.Bounds(), inset), float32(radius))
	})
	draw.Draw(canvas, canvas.Bounds(), img, b.Min, draw.Over)
	return canvas
}

// AddRoundedRectOverlay draws the same rounded rectangle as
// AddRoundedRectUnderlay, but on top of a copy of img, so the plate can hide
// the content beneath it.
func AddRoundedRectOverlay(img image.Image, inset, radius int, c color.NRGBA) *image.NRGBA {
	canvas := ToNRGBA(img)
	fillShape(canvas, c, func(z *vector.Rasterizer) {
		roundedRect(z, insetBox(canvas.Bounds(), inset), float32(radius))
	})
	return canvas
}

// AddCircleUnderlay draws a filled ellipse inscribed in [inset, size-inset]
// behind img, with the same anti-aliased boundary as AddRoundedRectUnderlay.
func AddCircleUnderlay(img image.Image, inset int, c color.NRGBA) *image.NRGBA {
	b := img.Bounds()
	canvas := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	fillShape(canvas, c, func(z *vector.Rasterizer) {
		ellipse(z, insetBox(canvas.Bounds(), inset))
	})
	draw.Draw(canvas, canvas.Bounds(), img, b.Min, draw.Over)
	return canvas
}

// box is a float32 rectangle in canvas coordinates.
type box struct {
	X0, Y0, X1, Y1 float32
}

func insetBox(r image.Rectangle, inset int) box {
	return box{
		X0: float32(r.Min.X + inset),
		Y0: float32(r.Min.Y + inset),
		X1: float32(r.Max.X - inset),
		Y1: float32(r.Max.Y - inset),
	}
}

func (b box) empty() bool {
	return b.X1 <= b.X0 || b.Y1 <= b.Y0
}

// fillShape rasterizes the path built by trace and composites c over dst
// with the resulting anti-aliased coverage.
func fillShape(dst *image.NRGBA, c color.NRGBA, trace func(z *vector.Rasterizer)) {
	r := dst.Bounds()
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	trace(z)
	z.Draw(dst, r, image.NewUniform(c), image.Point{})
}

func roundedRect(z *vector.Rasterizer, b box, radius float32) {
	if b.empty() {
		return
	}
	r := math32.Max(0, math32.Min(radius, math32.Min(b.X1-b.X0, b.Y1-b.Y0)/2))
	k := r * kappa

	z.MoveTo(b.X0+r, b.Y0)
	z.LineTo(b.X1-r, b.Y0)
	z.CubeTo(b.X1-r+k, b.Y0, b.X1, b.Y0+r-k, b.X1, b.Y0+r)
	z.LineTo(b.X1, b.Y1-r)
	z.CubeTo(b.X1, b.Y1-r+k, b.X1-r+k, b.Y1, b.X1-r, b.Y1)
	z.LineTo(b.X0+r, b.Y1)
	z.CubeTo(b.X0+r-k, b.Y1, b.X0, b.Y1-r+k, b.X0, b.Y1-r)
	z.LineTo(b.X0, b.Y0+r)
	z.CubeTo(b.X0, b.Y0+r-k, b.X0+r-k, b.Y0, b.X0+r, b.Y0)
	z.ClosePath()
}

func ellipse(z *vector.Rasterizer, b box) {
	if b.empty() {
		return
	}
	rx, ry := (b.X1-b.X0)/2, (b.Y1-b.Y0)/2
	cx, cy := b.X0+rx, b.Y0+ry
	kx, ky := rx*kappa, ry*kappa

	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.ClosePath()
}
