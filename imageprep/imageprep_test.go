package imageprep

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
)

func newGradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8((x*7 + y*13) % 256)
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: uint8((int(v) + 40) % 256), B: uint8((int(v) + 90) % 256), A: 255})
		}
	}
	return img
}

func newUniform(w, h int, v uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = v
		img.Pix[i+1] = v
		img.Pix[i+2] = v
		img.Pix[i+3] = 255
	}
	return img
}

func TestResize(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
		maxW, maxH int
		wantW      int
		wantH      int
	}{
		{"within bounds untouched", 800, 600, 1024, 1024, 800, 600},
		{"landscape scaled down", 2048, 1024, 1024, 1024, 1024, 512},
		{"portrait scaled down", 1024, 2048, 1024, 1024, 512, 1024},
		{"exact fit untouched", 1024, 1024, 1024, 1024, 1024, 1024},
		{"small image never upscaled", 100, 50, 1024, 1024, 100, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resize(newGradient(tt.srcW, tt.srcH), tt.maxW, tt.maxH)
			b := got.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("Resize(%dx%d, %d, %d) = %dx%d, want %dx%d",
					tt.srcW, tt.srcH, tt.maxW, tt.maxH, b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestToGray(t *testing.T) {
	tests := []struct {
		name string
		in   color.NRGBA
		want uint8
	}{
		{"pure red", color.NRGBA{R: 255, A: 255}, 76},
		{"pure green", color.NRGBA{G: 255, A: 255}, 149},
		{"pure blue", color.NRGBA{B: 255, A: 255}, 29},
		{"white", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, 255},
		{"mid gray", color.NRGBA{R: 128, G: 128, B: 128, A: 255}, 128},
		{"black", color.NRGBA{A: 255}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
			img.SetNRGBA(0, 0, tt.in)
			got := ToGray(img)
			if got.Pix[0] != tt.want {
				t.Errorf("ToGray(%v) = %d, want %d", tt.in, got.Pix[0], tt.want)
			}
		})
	}
}

func TestToGrayPassthrough(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range g.Pix {
		g.Pix[i] = uint8(i * 16)
	}
	got := ToGray(g)
	if !bytes.Equal(got.Pix, g.Pix) {
		t.Error("ToGray should copy a gray image unchanged")
	}
	got.Pix[0] = 99
	if g.Pix[0] == 99 {
		t.Error("ToGray must not alias the source pixels")
	}
}

func TestEnhanceContrastAdaptive(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		src := ToGray(newGradient(256, 256))
		a := EnhanceContrastAdaptive(src, DefaultClipLimit, DefaultTileGrid, DefaultTileGrid)
		b := EnhanceContrastAdaptive(src, DefaultClipLimit, DefaultTileGrid, DefaultTileGrid)
		if !bytes.Equal(a.Pix, b.Pix) {
			t.Error("repeated runs over the same input must be byte-identical")
		}
	})

	t.Run("uniform input stays uniform", func(t *testing.T) {
		src := ToGray(newUniform(128, 128, 100))
		got := EnhanceContrastAdaptive(src, DefaultClipLimit, DefaultTileGrid, DefaultTileGrid)
		first := got.Pix[0]
		for i, v := range got.Pix {
			if v != first {
				t.Fatalf("pixel %d = %d, want uniform %d", i, v, first)
			}
		}
	})

	t.Run("preserves dimensions", func(t *testing.T) {
		src := ToGray(newGradient(130, 70))
		got := EnhanceContrastAdaptive(src, DefaultClipLimit, DefaultTileGrid, DefaultTileGrid)
		if got.Bounds().Dx() != 130 || got.Bounds().Dy() != 70 {
			t.Errorf("got %v, want 130x70", got.Bounds())
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		src := ToGray(newGradient(64, 64))
		orig := make([]uint8, len(src.Pix))
		copy(orig, src.Pix)
		EnhanceContrastAdaptive(src, DefaultClipLimit, DefaultTileGrid, DefaultTileGrid)
		if !bytes.Equal(src.Pix, orig) {
			t.Error("input pixels were modified")
		}
	})
}

func TestInvertIfNegative(t *testing.T) {
	t.Run("dark image inverted", func(t *testing.T) {
		got, inverted := InvertIfNegative(newUniform(10, 10, 30))
		if !inverted {
			t.Fatal("expected inversion for mean 30")
		}
		if got.Pix[0] != 225 {
			t.Errorf("inverted pixel = %d, want 225", got.Pix[0])
		}
	})

	t.Run("bright image unchanged", func(t *testing.T) {
		got, inverted := InvertIfNegative(newUniform(10, 10, 200))
		if inverted {
			t.Fatal("expected no inversion for mean 200")
		}
		if got.Pix[0] != 200 {
			t.Errorf("pixel = %d, want 200", got.Pix[0])
		}
	})

	t.Run("mid gray not inverted", func(t *testing.T) {
		if _, inverted := InvertIfNegative(newUniform(4, 4, 128)); inverted {
			t.Error("mean exactly 128 must not invert")
		}
	})
}

func TestNormalize(t *testing.T) {
	t.Run("stretches to full range", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
		for i, v := range []uint8{50, 100, 150} {
			img.SetNRGBA(i, 0, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
		got := Normalize(img)
		for i, want := range []uint8{0, 128, 255} {
			if got.Pix[i*4] != want {
				t.Errorf("pixel %d = %d, want %d", i, got.Pix[i*4], want)
			}
		}
	})

	t.Run("constant image unchanged", func(t *testing.T) {
		got := Normalize(newUniform(4, 4, 77))
		if got.Pix[0] != 77 {
			t.Errorf("constant pixel = %d, want 77", got.Pix[0])
		}
	})
}

func TestEnhanceContrast(t *testing.T) {
	t.Run("identity factor", func(t *testing.T) {
		src := newGradient(16, 16)
		got := EnhanceContrast(src, 1.0)
		if !bytes.Equal(got.Pix, src.Pix) {
			t.Error("factor 1.0 must leave pixels unchanged")
		}
	})

	t.Run("spreads values around the mean", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
		img.SetNRGBA(0, 0, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
		img.SetNRGBA(1, 0, color.NRGBA{R: 150, G: 150, B: 150, A: 255})
		got := EnhanceContrast(img, 2.0)
		if got.Pix[0] != 75 {
			t.Errorf("dark pixel = %d, want 75", got.Pix[0])
		}
		if got.Pix[4] != 175 {
			t.Errorf("bright pixel = %d, want 175", got.Pix[4])
		}
	})
}

func TestCropBorder(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		fraction float64
		wantW    int
		wantH    int
	}{
		{"five percent", 100, 100, 0.05, 90, 90},
		{"rectangular", 200, 100, 0.05, 180, 90},
		{"zero fraction untouched", 100, 100, 0, 100, 100},
		{"half fraction untouched", 100, 100, 0.5, 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CropBorder(newGradient(tt.w, tt.h), tt.fraction)
			b := got.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("CropBorder(%dx%d, %v) = %dx%d, want %dx%d",
					tt.w, tt.h, tt.fraction, b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestComputeStats(t *testing.T) {
	t.Run("gray checkerboard", func(t *testing.T) {
		g := image.NewGray(image.Rect(0, 0, 2, 2))
		g.Pix = []uint8{0, 255, 0, 255}
		s := ComputeStats(g)
		if s.Channels != 1 {
			t.Errorf("channels = %d, want 1", s.Channels)
		}
		if s.Min != 0 || s.Max != 255 {
			t.Errorf("min/max = %v/%v, want 0/255", s.Min, s.Max)
		}
		if s.Mean != 127.5 {
			t.Errorf("mean = %v, want 127.5", s.Mean)
		}
		if s.StdDev != 127.5 {
			t.Errorf("std = %v, want 127.5", s.StdDev)
		}
	})

	t.Run("uniform color image", func(t *testing.T) {
		s := ComputeStats(newUniform(8, 8, 100))
		if s.Channels != 3 {
			t.Errorf("channels = %d, want 3", s.Channels)
		}
		if s.Mean != 100 || s.StdDev != 0 {
			t.Errorf("mean/std = %v/%v, want 100/0", s.Mean, s.StdDev)
		}
		if s.Width != 8 || s.Height != 8 {
			t.Errorf("dims = %dx%d, want 8x8", s.Width, s.Height)
		}
	})
}

func TestDetectEdges(t *testing.T) {
	// White square on black: edges trace the square's outline only.
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			v := uint8(0)
			if x >= 22 && x < 42 && y >= 22 && y < 42 {
				v = 255
			}
			src.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	got := DetectEdges(src, 50, 150)

	edgeCount := 0
	for _, v := range got.Pix {
		if v != 0 && v != 255 {
			t.Fatalf("edge map must be binary, found %d", v)
		}
		if v == 255 {
			edgeCount++
		}
	}
	if edgeCount < 40 {
		t.Errorf("expected the square outline to show up, got %d edge pixels", edgeCount)
	}
	if got.GrayAt(32, 32).Y != 0 {
		t.Error("square interior must not be an edge")
	}
	if got.GrayAt(2, 2).Y != 0 {
		t.Error("flat background must not be an edge")
	}

	again := DetectEdges(src, 50, 150)
	if !bytes.Equal(got.Pix, again.Pix) {
		t.Error("edge detection must be deterministic")
	}
}

func TestPrepareBytes(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, newGradient(800, 600), &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	data := buf.Bytes()

	t.Run("deterministic output", func(t *testing.T) {
		opts := DefaultPrepareOptions()
		first, mime, err := PrepareBytes(data, opts)
		if err != nil {
			t.Fatalf("PrepareBytes() error = %v", err)
		}
		if mime != "image/png" {
			t.Errorf("mime = %q, want image/png", mime)
		}
		second, _, err := PrepareBytes(data, opts)
		if err != nil {
			t.Fatalf("PrepareBytes() error = %v", err)
		}
		if !bytes.Equal(first, second) {
			t.Error("repeated preparation must produce identical bytes")
		}
	})

	t.Run("bounded dimensions", func(t *testing.T) {
		out, _, err := PrepareBytes(data, DefaultPrepareOptions())
		if err != nil {
			t.Fatalf("PrepareBytes() error = %v", err)
		}
		img, _, err := image.Decode(bytes.NewReader(out))
		if err != nil {
			t.Fatalf("failed to decode output: %v", err)
		}
		b := img.Bounds()
		if b.Dx() > DefaultMaxDimension || b.Dy() > DefaultMaxDimension {
			t.Errorf("output %dx%d exceeds %d", b.Dx(), b.Dy(), DefaultMaxDimension)
		}
	})

	t.Run("enhanced output is single channel content", func(t *testing.T) {
		out, _, err := PrepareBytes(data, DefaultPrepareOptions())
		if err != nil {
			t.Fatalf("PrepareBytes() error = %v", err)
		}
		img, _, err := image.Decode(bytes.NewReader(out))
		if err != nil {
			t.Fatalf("failed to decode output: %v", err)
		}
		nrgba, ok := img.(*image.NRGBA)
		if !ok {
			// PNG may decode grayscale content differently; convert.
			g := ToGray(img)
			if g.Bounds().Dx() == 0 {
				t.Fatal("empty output")
			}
			return
		}
		for i := 0; i < len(nrgba.Pix); i += 4 {
			if nrgba.Pix[i] != nrgba.Pix[i+1] || nrgba.Pix[i+1] != nrgba.Pix[i+2] {
				t.Fatal("enhanced output must have equal channels")
			}
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		if _, _, err := PrepareBytes([]byte("not an image"), DefaultPrepareOptions()); err == nil {
			t.Error("expected an error for undecodable input")
		}
	})
}

func TestEncode(t *testing.T) {
	src := newGradient(32, 32)
	tests := []struct {
		name     string
		format   string
		quality  int
		wantMime string
	}{
		{"png", "png", 0, "image/png"},
		{"jpeg", "jpeg", 90, "image/jpeg"},
		{"jpg alias", "jpg", 85, "image/jpeg"},
		{"webp lossless", "webp", 0, "image/webp"},
		{"webp lossy", "webp", 80, "image/webp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, mime, err := Encode(src, tt.format, tt.quality)
			if err != nil {
				t.Fatalf("Encode(%q) error = %v", tt.format, err)
			}
			if mime != tt.wantMime {
				t.Errorf("mime = %q, want %q", mime, tt.wantMime)
			}
			if len(out) == 0 {
				t.Error("empty encoded output")
			}
		})
	}

	t.Run("unsupported format", func(t *testing.T) {
		if _, _, err := Encode(src, "tiff", 0); err == nil {
			t.Error("expected an error for tiff")
		}
	})
}

func TestMeanIntensity(t *testing.T) {
	if got := MeanIntensity(newUniform(5, 5, 100)); got != 100 {
		t.Errorf("MeanIntensity = %v, want 100", got)
	}
}

func TestOrientationDefault(t *testing.T) {
	out, _, err := Encode(newUniform(4, 4, 10), "png", 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := Orientation(out); got != 1 {
		t.Errorf("Orientation without EXIF = %d, want 1", got)
	}
}
