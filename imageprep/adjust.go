package imageprep

import (
	"image"

	"github.com/disintegration/imaging"
)

// MeanIntensity returns the average of the R, G and B channels over the
// whole image, in the 0-255 range.
func MeanIntensity(img image.Image) float64 {
	src := imaging.Clone(img)
	bounds := src.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return 0
	}
	var sum uint64
	for i := 0; i < len(src.Pix); i += 4 {
		sum += uint64(src.Pix[i]) + uint64(src.Pix[i+1]) + uint64(src.Pix[i+2])
	}
	return float64(sum) / float64(total*3)
}

// InvertIfNegative flips images that appear to be photographic negatives.
// Radiographs re-photographed from film sometimes arrive inverted; a mean
// intensity below mid-gray is treated as a negative and the image is
// inverted, otherwise it is returned unchanged. Reports whether inversion
// was applied.
func InvertIfNegative(img image.Image) (*image.NRGBA, bool) {
	if MeanIntensity(img) < 128 {
		return imaging.Invert(img), true
	}
	return imaging.Clone(img), false
}

// Normalize stretches pixel intensities linearly so the darkest pixel maps
// to 0 and the brightest to 255, computed jointly over the R, G and B
// channels. A constant image has no range to stretch and is returned
// unchanged.
func Normalize(img image.Image) *image.NRGBA {
	src := imaging.Clone(img)
	lo, hi := uint8(255), uint8(0)
	for i := 0; i < len(src.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			v := src.Pix[i+c]
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if hi <= lo {
		return src
	}
	scale := 255.0 / float64(hi-lo)
	var lut [256]uint8
	for v := int(lo); v <= int(hi); v++ {
		lut[v] = uint8(float64(v-int(lo))*scale + 0.5)
	}
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i] = lut[src.Pix[i]]
		src.Pix[i+1] = lut[src.Pix[i+1]]
		src.Pix[i+2] = lut[src.Pix[i+2]]
	}
	return src
}

// EnhanceContrast scales pixel deviation from the image's mean luminance by
// the given factor. Factor 1.0 is the identity; values above 1.0 increase
// contrast around the mean.
func EnhanceContrast(img image.Image, factor float64) *image.NRGBA {
	src := imaging.Clone(img)
	bounds := src.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 || factor == 1.0 {
		return src
	}
	var sum uint64
	for i := 0; i < len(src.Pix); i += 4 {
		r := uint32(src.Pix[i])
		g := uint32(src.Pix[i+1])
		b := uint32(src.Pix[i+2])
		sum += uint64((r*299 + g*587 + b*114) / 1000)
	}
	mean := float64(sum)/float64(total) + 0.5
	mean = float64(int(mean))
	var lut [256]uint8
	for v := 0; v < 256; v++ {
		out := mean + factor*(float64(v)-mean)
		if out < 0 {
			out = 0
		}
		if out > 255 {
			out = 255
		}
		lut[v] = uint8(out + 0.5)
	}
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i] = lut[src.Pix[i]]
		src.Pix[i+1] = lut[src.Pix[i+1]]
		src.Pix[i+2] = lut[src.Pix[i+2]]
	}
	return src
}

// CropBorder removes a uniform margin from every edge, expressed as a
// fraction of each dimension. Radiograph exports often carry a black film
// border that skews intensity statistics; trimming a small fraction keeps
// the anatomy while dropping the frame. Fractions at or above 0.5 would
// leave nothing and return the image unchanged.
func CropBorder(img image.Image, fraction float64) *image.NRGBA {
	if fraction <= 0 || fraction >= 0.5 {
		return imaging.Clone(img)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	bx := int(float64(w) * fraction)
	by := int(float64(h) * fraction)
	if w-2*bx < 1 || h-2*by < 1 {
		return imaging.Clone(img)
	}
	rect := image.Rect(bounds.Min.X+bx, bounds.Min.Y+by, bounds.Max.X-bx, bounds.Max.Y-by)
	return imaging.Crop(img, rect)
}
