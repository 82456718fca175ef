package imageprep

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Stats summarizes pixel intensities for display alongside a prepared
// image. Grayscale images report one channel; color images report three
// (alpha is ignored). SizeKB is the raw pixel payload, not the encoded
// file size.
type Stats struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Channels int     `json:"channels"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	SizeKB   float64 `json:"size_kb"`
}

// ComputeStats gathers Stats for an image in one pass.
func ComputeStats(img image.Image) Stats {
	if g, ok := img.(*image.Gray); ok {
		return grayStats(g)
	}
	src := imaging.Clone(img)
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	n := w * h * 3
	if n == 0 {
		return Stats{Width: w, Height: h, Channels: 3}
	}
	lo, hi := uint8(255), uint8(0)
	var sum, sumSq float64
	for i := 0; i < len(src.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			v := src.Pix[i+c]
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
			f := float64(v)
			sum += f
			sumSq += f * f
		}
	}
	mean := sum / float64(n)
	variance := sumSq/float64(n) - mean*mean
	if variance < 0 {
		variance = 0
	}
	return Stats{
		Width:    w,
		Height:   h,
		Channels: 3,
		Min:      float64(lo),
		Max:      float64(hi),
		Mean:     mean,
		StdDev:   math.Sqrt(variance),
		SizeKB:   float64(n) / 1024.0,
	}
}

func grayStats(g *image.Gray) Stats {
	bounds := g.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	n := w * h
	if n == 0 {
		return Stats{Width: w, Height: h, Channels: 1}
	}
	lo, hi := uint8(255), uint8(0)
	var sum, sumSq float64
	for y := 0; y < h; y++ {
		row := y * g.Stride
		for x := 0; x < w; x++ {
			v := g.Pix[row+x]
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
			f := float64(v)
			sum += f
			sumSq += f * f
		}
	}
	mean := sum / float64(n)
	variance := sumSq/float64(n) - mean*mean
	if variance < 0 {
		variance = 0
	}
	return Stats{
		Width:    w,
		Height:   h,
		Channels: 1,
		Min:      float64(lo),
		Max:      float64(hi),
		Mean:     mean,
		StdDev:   math.Sqrt(variance),
		SizeKB:   float64(n) / 1024.0,
	}
}
