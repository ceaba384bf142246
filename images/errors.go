package images

import "github.com/pkg/errors"

var (
	// ErrMissingAlpha is returned when an image has no pixel with non-zero alpha,
	// leaving nothing to crop to.
	ErrMissingAlpha = errors.New("image has no alpha bounding box")
	// ErrInvalidColor is returned for color strings that are not 6 or 8 hex digits.
	ErrInvalidColor = errors.New("invalid color")
)
