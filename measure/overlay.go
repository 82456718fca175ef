package measure

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/fogleman/gg"
)

// Span is a horizontal measurement across the radiograph, in pixel
// coordinates of the displayed image. X1 and X2 are the endpoints, Y the
// row the measurement was taken at.
type Span struct {
	X1 float64 `json:"x1"`
	X2 float64 `json:"x2"`
	Y  float64 `json:"y"`
}

// Width is the absolute horizontal extent of the span.
func (s Span) Width() float64 {
	return math.Abs(s.X2 - s.X1)
}

// RenderOverlay draws both measurement spans and the resulting ratio onto a
// copy of the radiograph and returns it PNG-encoded. The heart span is drawn
// in red, the chest span in blue, each with end ticks; the computed ratio
// and its category are printed in the top-left corner.
func RenderOverlay(img image.Image, heart, chest Span) ([]byte, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("cannot draw overlay on an empty image")
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	dc := gg.NewContextForRGBA(dst)
	dc.DrawImage(img, 0, 0)
	dc.SetLineWidth(3)

	tick := float64(h) * 0.015
	if tick < 6 {
		tick = 6
	}
	drawSpan(dc, heart, tick, 220, 53, 69)
	drawSpan(dc, chest, tick, 13, 110, 253)

	ratio := CalculateCTR(heart.Width(), chest.Width())
	drawLabel(dc, fmt.Sprintf("CTR %.1f%% - %s", ratio, CategorizeCTR(ratio)))

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawSpan(dc *gg.Context, s Span, tick float64, r, g, b int) {
	dc.SetRGBA255(r, g, b, 230)
	dc.MoveTo(s.X1, s.Y)
	dc.LineTo(s.X2, s.Y)
	dc.Stroke()
	for _, x := range []float64{s.X1, s.X2} {
		dc.MoveTo(x, s.Y-tick)
		dc.LineTo(x, s.Y+tick)
		dc.Stroke()
	}
}

func drawLabel(dc *gg.Context, label string) {
	textW, textH := dc.MeasureString(label)
	const pad = 8.0
	dc.SetRGBA255(0, 0, 0, 180)
	dc.DrawRectangle(pad, pad, textW+2*pad, textH+2*pad)
	dc.Fill()
	dc.SetRGBA255(255, 255, 255, 255)
	dc.DrawStringAnchored(label, pad+(textW+2*pad)/2, pad+(textH+2*pad)/2, 0.5, 0.35)
}
