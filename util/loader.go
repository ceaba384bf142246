package util

import (
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"os"
	"path/filepath"

	"github.com/nvr-ai/iconkit/images"
	"github.com/pkg/errors"
)

// LoadImageFile decodes the image at path.
//
// Arguments:
// - path: Path to a PNG, JPEG or GIF file.
//
// Returns:
// - image.Image: The decoded image.
// - error: Error if the file cannot be opened or decoded.
func LoadImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return img, nil
}

// LoadCroppedLogo decodes the master logo and crops it to its non-transparent content.
//
// Arguments:
// - path: Path to the master logo.
//
// Returns:
// - *image.NRGBA: The cropped logo.
// - error: images.ErrMissingAlpha (wrapped with the path) if the logo is fully transparent.
func LoadCroppedLogo(path string) (*image.NRGBA, error) {
	img, err := LoadImageFile(path)
	if err != nil {
		return nil, err
	}
	cropped, err := images.Crop(img)
	if err != nil {
		return nil, errors.Wrapf(err, "logo %s", path)
	}
	return cropped, nil
}

// SavePNG encodes img as PNG at path, creating parent directories as needed.
func SavePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create directory for %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "encode %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
