package images

import "image"

// Dilate thickens the opaque regions of img by replacing every pixel's alpha
// with the maximum alpha of the (2*radius+1)² square around it.
//
// Neighbors outside the image are skipped. RGB channels are copied unchanged,
// so only the shape grows. This is what keeps thin glyph strokes from breaking
// up once they are rendered small and used as a cut-out mask.
//
// The cost is O(w·h·radius²), which is fine at icon sizes.
//
// Arguments:
//   - img: The source image.
//   - radius: Neighborhood radius in pixels. Values <= 0 return img itself.
//
// Returns:
//   - *image.NRGBA: The dilated image.
func Dilate(img *image.NRGBA, radius int) *image.NRGBA {
	if radius <= 0 {
		return img
	}

	out := ToNRGBA(img)
	src := out.Pix
	stride := out.Stride
	w, h := out.Rect.Dx(), out.Rect.Dy()
	alpha := dilateChannel(w, h, radius, func(x, y int) uint8 {
		return src[y*stride+x*4+3]
	})
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Pix[y*stride+x*4+3] = alpha[y*w+x]
		}
	}
	return out
}

// dilateChannel runs the square max filter over a w×h channel read through at
// and returns the result row-major.
func dilateChannel(w, h, radius int, at func(x, y int) uint8) []uint8 {
	dst := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		y0, y1 := max(0, y-radius), min(h-1, y+radius)
		for x := 0; x < w; x++ {
			x0, x1 := max(0, x-radius), min(w-1, x+radius)
			var m uint8
		scan:
			for yy := y0; yy <= y1; yy++ {
				for xx := x0; xx <= x1; xx++ {
					if v := at(xx, yy); v > m {
						m = v
						if m == 0xff {
							break scan
						}
					}
				}
			}
			dst[y*w+x] = m
		}
	}
	return dst
}
