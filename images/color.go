package images

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// ParseHexColor parses an "RRGGBB" or "RRGGBBAA" hex string into a color.
//
// Surrounding whitespace and any leading '#' characters are ignored. Six digits
// imply an opaque color.
//
// Arguments:
//   - text: The color string, e.g. "#FFFFFF" or "FF000080".
//
// Returns:
//   - color.NRGBA: The parsed, non-premultiplied color.
//   - error: ErrInvalidColor (wrapped) if the string is not 6 or 8 hex digits.
func ParseHexColor(text string) (color.NRGBA, error) {
	value := strings.TrimLeft(strings.TrimSpace(text), "#")
	if len(value) != 6 && len(value) != 8 {
		return color.NRGBA{}, errors.Wrapf(ErrInvalidColor, "unsupported color %q", text)
	}

	rgb, err := colorful.Hex("#" + value[:6])
	if err != nil {
		return color.NRGBA{}, errors.Wrapf(ErrInvalidColor, "unsupported color %q: %v", text, err)
	}
	r, g, b := rgb.RGB255()

	a := uint64(0xff)
	if len(value) == 8 {
		a, err = strconv.ParseUint(value[6:], 16, 8)
		if err != nil {
			return color.NRGBA{}, errors.Wrapf(ErrInvalidColor, "unsupported color %q: %v", text, err)
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: uint8(a)}, nil
}

