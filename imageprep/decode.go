package imageprep

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp"
)

// Orientation extracts the EXIF orientation tag from JPEG data. Missing or
// unreadable EXIF yields the identity orientation 1.
func Orientation(data []byte) int {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	val, err := tag.Int(0)
	if err != nil {
		return 1
	}
	return val
}

// applyOrientation maps the eight EXIF orientations onto their inverse
// transforms so the decoded pixels appear upright.
func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

// DecodeUpload decodes uploaded image bytes (JPEG, PNG or WebP) and corrects
// EXIF orientation, so phone photos of films come out upright. Returns the
// decoded image and the detected format name.
func DecodeUpload(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	if o := Orientation(data); o != 1 {
		img = applyOrientation(img, o)
	}
	return img, format, nil
}
