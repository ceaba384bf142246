package images

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"image"
)

// Checksum generates a deterministic checksum of an image's size and pixels,
// used to verify that repeated runs produce identical output.
//
// Arguments:
// - img: The image to compute the checksum for.
//
// Returns:
// - A hex-encoded MD5 checksum string, or "empty" for a zero-sized image.
//
// Example:
//
// ```go
//
//	checksum := Checksum(icon)
//	fmt.Printf("Icon checksum: %s\n", checksum)
//
// ```
func Checksum(img image.Image) string {
	b := img.Bounds()
	if b.Empty() {
		return "empty"
	}

	n := ToNRGBA(img)
	hash := md5.New()
	var dims [8]byte
	binary.BigEndian.PutUint32(dims[0:4], uint32(b.Dx()))
	binary.BigEndian.PutUint32(dims[4:8], uint32(b.Dy()))
	hash.Write(dims[:])
	hash.Write(n.Pix)
	return fmt.Sprintf("%x", hash.Sum(nil))
}
