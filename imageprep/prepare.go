package imageprep

import (
	"image"

	"github.com/disintegration/imaging"
)

const (
	// DefaultMaxDimension bounds prepared images the way the learning UI
	// expects them: neither side exceeds 1024 pixels.
	DefaultMaxDimension = 1024

	// DefaultClipLimit and DefaultTileGrid are the adaptive-equalization
	// defaults tuned for radiographs.
	DefaultClipLimit = 2.0
	DefaultTileGrid  = 8
)

// PrepareOptions controls the submission pipeline. The zero value is not
// useful; start from DefaultPrepareOptions.
type PrepareOptions struct {
	Enhance   bool
	MaxWidth  int
	MaxHeight int
	ClipLimit float64
	TileGridX int
	TileGridY int
}

// DefaultPrepareOptions returns the standard pipeline settings: bound to
// 1024x1024 with adaptive contrast enhancement on.
func DefaultPrepareOptions() PrepareOptions {
	return PrepareOptions{
		Enhance:   true,
		MaxWidth:  DefaultMaxDimension,
		MaxHeight: DefaultMaxDimension,
		ClipLimit: DefaultClipLimit,
		TileGridX: DefaultTileGrid,
		TileGridY: DefaultTileGrid,
	}
}

// Resize scales the image down so neither dimension exceeds the bounds,
// preserving aspect ratio. Images already within bounds are returned as a
// plain copy; nothing is ever upscaled.
func Resize(img image.Image, maxWidth, maxHeight int) *image.NRGBA {
	return imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
}

// ToGray converts to a single-channel image using ITU-R 601 integer luma
// weights, matching the reference grayscale conversion.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		b := g.Bounds()
		dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
		for y := 0; y < b.Dy(); y++ {
			src := g.Pix[y*g.Stride : y*g.Stride+b.Dx()]
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+b.Dx()], src)
		}
		return dst
	}
	src := imaging.Clone(img)
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		si := y * src.Stride
		di := y * dst.Stride
		for x := 0; x < w; x++ {
			r := int(src.Pix[si])
			g := int(src.Pix[si+1])
			b := int(src.Pix[si+2])
			dst.Pix[di] = uint8((r*299 + g*587 + b*114) / 1000)
			si += 4
			di++
		}
	}
	return dst
}

// grayToNRGBA expands a single-channel image back to three channels (the
// model capability expects three-channel input).
func grayToNRGBA(g *image.Gray) *image.NRGBA {
	bounds := g.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		si := y * g.Stride
		di := y * dst.Stride
		for x := 0; x < w; x++ {
			v := g.Pix[si]
			dst.Pix[di] = v
			dst.Pix[di+1] = v
			dst.Pix[di+2] = v
			dst.Pix[di+3] = 0xff
			si++
			di += 4
		}
	}
	return dst
}

// Prepare runs the submission pipeline in its fixed order: resize, channel
// normalization, then optional adaptive enhancement. Enhancement always goes
// through a single gray channel and back, never per color channel. The whole
// pipeline is deterministic: identical input and options produce identical
// pixels.
func Prepare(img image.Image, opts PrepareOptions) *image.NRGBA {
	resized := Resize(img, opts.MaxWidth, opts.MaxHeight)
	if !opts.Enhance {
		return resized
	}
	gray := ToGray(resized)
	enhanced := EnhanceContrastAdaptive(gray, opts.ClipLimit, opts.TileGridX, opts.TileGridY)
	return grayToNRGBA(enhanced)
}

// PrepareBytes decodes uploaded bytes, corrects orientation, runs Prepare and
// re-encodes as PNG for submission. PNG keeps the pipeline lossless, so the
// output is byte-identical across calls.
func PrepareBytes(data []byte, opts PrepareOptions) ([]byte, string, error) {
	img, _, err := DecodeUpload(data)
	if err != nil {
		return nil, "", err
	}
	prepared := Prepare(img, opts)
	out, mime, err := Encode(prepared, "png", 0)
	if err != nil {
		return nil, "", err
	}
	return out, mime, nil
}
