package images

import (
	"image"
	"image/color"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// paintRect sets every pixel of r in img to c.
func paintRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// TestAlphaBounds validates the tight bounding box against known layouts.
func TestAlphaBounds(t *testing.T) {
	tests := []struct {
		name     string
		opaque   []image.Rectangle
		expected BoundingBox
	}{
		{"Single pixel", []image.Rectangle{image.Rect(3, 4, 4, 5)}, BoundingBox{3, 4, 4, 5}},
		{"Block", []image.Rectangle{image.Rect(2, 1, 7, 9)}, BoundingBox{2, 1, 7, 9}},
		{"Two islands", []image.Rectangle{image.Rect(1, 8, 2, 9), image.Rect(6, 0, 8, 2)}, BoundingBox{1, 0, 8, 9}},
		{"Full image", []image.Rectangle{image.Rect(0, 0, 10, 10)}, BoundingBox{0, 0, 10, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
			for _, r := range tt.opaque {
				paintRect(img, r, color.NRGBA{R: 9, G: 9, B: 9, A: 1})
			}
			box, ok := AlphaBounds(img)
			require.True(t, ok)
			assert.Equal(t, tt.expected, box)
			assert.Equal(t, tt.expected.Right-tt.expected.Left, box.Width())
			assert.Equal(t, tt.expected.Bottom-tt.expected.Top, box.Height())
		})
	}
}

func TestAlphaBoundsIgnoresColorOfTransparentPixels(t *testing.T) {
	img := NewFilled(6, 6, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	_, ok := AlphaBounds(img)
	assert.False(t, ok, "RGB content without alpha must not count")
}

func TestAlphaBoundsNonZeroOrigin(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 20, 30, 40))
	paintRect(img, image.Rect(12, 25, 14, 26), color.NRGBA{A: 255})
	box, ok := AlphaBounds(img)
	require.True(t, ok)
	assert.Equal(t, image.Rect(12, 25, 14, 26), box.Rect())
}

func TestCrop(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 16))
	paintRect(img, image.Rect(5, 3, 15, 11), color.NRGBA{R: 200, G: 10, B: 10, A: 255})
	paintRect(img, image.Rect(4, 7, 5, 8), color.NRGBA{R: 1, G: 2, B: 3, A: 40})

	cropped, err := Crop(img)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 11, 8), cropped.Bounds(), "crop should be rebased at the origin")
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 40}, cropped.NRGBAAt(0, 4))
	assert.Equal(t, color.NRGBA{R: 200, G: 10, B: 10, A: 255}, cropped.NRGBAAt(1, 0))

	// The input must be left untouched and must not share memory with the crop.
	cropped.SetNRGBA(1, 0, color.NRGBA{})
	assert.Equal(t, color.NRGBA{R: 200, G: 10, B: 10, A: 255}, img.NRGBAAt(5, 3))
}

// TestCropTightness checks that no outermost row or column of a crop is fully transparent.
func TestCropTightness(t *testing.T) {
	layouts := [][]image.Rectangle{
		{image.Rect(0, 0, 1, 1)},
		{image.Rect(3, 3, 4, 9), image.Rect(9, 1, 10, 2)},
		{image.Rect(5, 5, 15, 6), image.Rect(10, 0, 11, 20)},
	}

	for i, layout := range layouts {
		img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
		for _, r := range layout {
			paintRect(img, r, color.NRGBA{R: 50, A: 128})
		}
		cropped, err := Crop(img)
		require.NoError(t, err, "layout %d", i)

		w, h := cropped.Bounds().Dx(), cropped.Bounds().Dy()
		assert.True(t, rowHasAlpha(cropped, 0), "layout %d: top row transparent", i)
		assert.True(t, rowHasAlpha(cropped, h-1), "layout %d: bottom row transparent", i)
		assert.True(t, colHasAlpha(cropped, 0), "layout %d: left column transparent", i)
		assert.True(t, colHasAlpha(cropped, w-1), "layout %d: right column transparent", i)
	}
}

func TestCropFullyTransparent(t *testing.T) {
	_, err := Crop(image.NewNRGBA(image.Rect(0, 0, 8, 8)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingAlpha))
}

func TestCropConvertsPalettedInput(t *testing.T) {
	pal := image.NewPaletted(image.Rect(0, 0, 4, 4), color.Palette{color.Transparent, color.NRGBA{R: 255, A: 255}})
	pal.SetColorIndex(2, 1, 1)

	cropped, err := Crop(pal)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 1, 1), cropped.Bounds())
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, cropped.NRGBAAt(0, 0))
}

func rowHasAlpha(img *image.NRGBA, y int) bool {
	for x := 0; x < img.Bounds().Dx(); x++ {
		if img.NRGBAAt(x, y).A != 0 {
			return true
		}
	}
	return false
}

func colHasAlpha(img *image.NRGBA, x int) bool {
	for y := 0; y < img.Bounds().Dy(); y++ {
		if img.NRGBAAt(x, y).A != 0 {
			return true
		}
	}
	return false
}
