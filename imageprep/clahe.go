package imageprep

import "image"

// EnhanceContrastAdaptive applies contrast-limited adaptive histogram
// equalization (CLAHE) to a single-channel image. The image is divided into
// tileGridX by tileGridY tiles; each tile's histogram is clipped at
// clipLimit times the uniform bin height before equalization, and per-pixel
// output is bilinearly interpolated between the four nearest tile mappings
// to avoid visible tile seams. Requires single-channel input; multi-channel
// callers must convert to gray first and expand afterwards (see Prepare).
func EnhanceContrastAdaptive(src *image.Gray, clipLimit float64, tileGridX, tileGridY int) *image.Gray {
	if tileGridX < 1 {
		tileGridX = 1
	}
	if tileGridY < 1 {
		tileGridY = 1
	}
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return image.NewGray(bounds)
	}

	// Tiles must cover the image evenly; extend by edge reflection when the
	// dimensions do not divide.
	tileW := (width + tileGridX - 1) / tileGridX
	tileH := (height + tileGridY - 1) / tileGridY
	padded := reflectPad(src, tileW*tileGridX, tileH*tileGridY)

	tileArea := tileW * tileH
	clip := int(clipLimit * float64(tileArea) / 256.0)
	if clip < 1 {
		clip = 1
	}

	// Per-tile clipped-equalization lookup tables.
	luts := make([][256]uint8, tileGridX*tileGridY)
	lutScale := 255.0 / float64(tileArea)
	var hist [256]int
	for ty := 0; ty < tileGridY; ty++ {
		for tx := 0; tx < tileGridX; tx++ {
			for i := range hist {
				hist[i] = 0
			}
			for y := ty * tileH; y < (ty+1)*tileH; y++ {
				row := y * padded.Stride
				for x := tx * tileW; x < (tx+1)*tileW; x++ {
					hist[padded.Pix[row+x]]++
				}
			}
			clipHistogram(&hist, clip)

			lut := &luts[ty*tileGridX+tx]
			sum := 0
			for i := 0; i < 256; i++ {
				sum += hist[i]
				v := int(float64(sum)*lutScale + 0.5)
				if v > 255 {
					v = 255
				}
				lut[i] = uint8(v)
			}
		}
	}

	// Bilinear interpolation between neighboring tile mappings, measured
	// from tile centers.
	dst := image.NewGray(image.Rect(0, 0, width, height))
	invTileW := 1.0 / float64(tileW)
	invTileH := 1.0 / float64(tileH)
	for y := 0; y < height; y++ {
		tyf := (float64(y)+0.5)*invTileH - 0.5
		ty1 := int(tyf)
		if tyf < 0 {
			ty1 = -1
		}
		ty2 := ty1 + 1
		ya := tyf - float64(ty1)
		ty1 = clampInt(ty1, 0, tileGridY-1)
		ty2 = clampInt(ty2, 0, tileGridY-1)

		srcRow := y * src.Stride
		dstRow := y * dst.Stride
		for x := 0; x < width; x++ {
			txf := (float64(x)+0.5)*invTileW - 0.5
			tx1 := int(txf)
			if txf < 0 {
				tx1 = -1
			}
			tx2 := tx1 + 1
			xa := txf - float64(tx1)
			tx1 = clampInt(tx1, 0, tileGridX-1)
			tx2 = clampInt(tx2, 0, tileGridX-1)

			v := src.Pix[srcRow+x]
			top := float64(luts[ty1*tileGridX+tx1][v])*(1-xa) + float64(luts[ty1*tileGridX+tx2][v])*xa
			bottom := float64(luts[ty2*tileGridX+tx1][v])*(1-xa) + float64(luts[ty2*tileGridX+tx2][v])*xa
			out := top*(1-ya) + bottom*ya
			dst.Pix[dstRow+x] = uint8(out + 0.5)
		}
	}
	return dst
}

// clipHistogram caps every bin at clip and spreads the excess uniformly, the
// residue one count at a time over evenly spaced bins.
func clipHistogram(hist *[256]int, clip int) {
	excess := 0
	for i := 0; i < 256; i++ {
		if hist[i] > clip {
			excess += hist[i] - clip
			hist[i] = clip
		}
	}
	if excess == 0 {
		return
	}
	batch := excess / 256
	residual := excess - batch*256
	for i := 0; i < 256; i++ {
		hist[i] += batch
	}
	if residual > 0 {
		step := 256 / residual
		if step < 1 {
			step = 1
		}
		for i := 0; i < 256 && residual > 0; i += step {
			hist[i]++
			residual--
		}
	}
}

// reflectPad extends a gray image to the given size by mirroring edge rows
// and columns (reflection without repeating the border pixel).
func reflectPad(src *image.Gray, width, height int) *image.Gray {
	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == width && srcH == height {
		dst := image.NewGray(image.Rect(0, 0, width, height))
		for y := 0; y < srcH; y++ {
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+srcW], src.Pix[y*src.Stride:y*src.Stride+srcW])
		}
		return dst
	}
	dst := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		sy := reflectIndex(y, srcH)
		srcRow := sy * src.Stride
		dstRow := y * dst.Stride
		for x := 0; x < width; x++ {
			dst.Pix[dstRow+x] = src.Pix[srcRow+reflectIndex(x, srcW)]
		}
	}
	return dst
}

func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}
		if i >= n {
			i = 2*n - 2 - i
		}
	}
	return i
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
