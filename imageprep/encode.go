package imageprep

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"strings"

	"github.com/chai2010/webp"
)

// Encode serializes an image in the named format ("png", "jpeg" or "webp")
// and returns the encoded bytes with their MIME type. Quality applies to
// jpeg and webp; webp with quality 0 is encoded lossless. PNG encoding is
// deterministic, so repeated calls over identical pixels produce identical
// bytes.
func Encode(img image.Image, format string, quality int) ([]byte, string, error) {
	var buf bytes.Buffer
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "png", "":
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", fmt.Errorf("failed to encode png: %w", err)
		}
		return buf.Bytes(), "image/png", nil
	case "jpg", "jpeg":
		if quality <= 0 || quality > 100 {
			quality = 90
		}
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, "", fmt.Errorf("failed to encode jpeg: %w", err)
		}
		return buf.Bytes(), "image/jpeg", nil
	case "webp":
		opts := &webp.Options{Lossless: quality <= 0, Quality: float32(quality)}
		if err := webp.Encode(&buf, img, opts); err != nil {
			return nil, "", fmt.Errorf("failed to encode webp: %w", err)
		}
		return buf.Bytes(), "image/webp", nil
	default:
		return nil, "", fmt.Errorf("unsupported output format: %s", format)
	}
}
