package imageprep

import "image"

// DetectEdges runs Canny edge detection over the image: a 5x5 Gaussian blur
// to suppress noise, Sobel gradients, non-maximum suppression along the
// gradient direction, then hysteresis between the two thresholds. Pixels on
// edges come back as 255 on a black background. Typical thresholds for
// radiographs are 50 and 150.
func DetectEdges(img image.Image, lowThreshold, highThreshold int) *image.Gray {
	if lowThreshold > highThreshold {
		lowThreshold, highThreshold = highThreshold, lowThreshold
	}
	gray := gaussianBlur5(ToGray(img))
	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	if w < 3 || h < 3 {
		return out
	}

	gx := make([]int32, w*h)
	gy := make([]int32, w*h)
	mag := make([]int32, w*h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			p := func(dx, dy int) int32 { return int32(gray.Pix[(y+dy)*gray.Stride+x+dx]) }
			dx := (p(1, -1) + 2*p(1, 0) + p(1, 1)) - (p(-1, -1) + 2*p(-1, 0) + p(-1, 1))
			dy := (p(-1, 1) + 2*p(0, 1) + p(1, 1)) - (p(-1, -1) + 2*p(0, -1) + p(1, -1))
			gx[i] = dx
			gy[i] = dy
			mag[i] = abs32(dx) + abs32(dy)
		}
	}

	// Non-maximum suppression: 2 marks a strong edge, 1 a weak candidate.
	// Sector boundaries at tan(22.5) and tan(67.5) in fixed point.
	const tg22 = 13573 // tan(22.5 degrees) << 15
	low, high := int32(lowThreshold), int32(highThreshold)
	labels := make([]uint8, w*h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			m := mag[i]
			if m <= low {
				continue
			}
			xx := abs32(gx[i])
			yy := abs32(gy[i]) << 15
			tg67 := tg22*xx + (xx << 16)
			var keep bool
			switch {
			case yy < tg22*xx:
				keep = m > mag[i-1] && m >= mag[i+1]
			case yy > tg67:
				keep = m > mag[i-w] && m >= mag[i+w]
			default:
				if (gx[i] ^ gy[i]) < 0 {
					keep = m > mag[i-w+1] && m >= mag[i+w-1]
				} else {
					keep = m > mag[i-w-1] && m >= mag[i+w+1]
				}
			}
			if !keep {
				continue
			}
			if m > high {
				labels[i] = 2
			} else {
				labels[i] = 1
			}
		}
	}

	// Hysteresis: flood from strong pixels through 8-connected weak ones.
	stack := make([]int, 0, w)
	for i, l := range labels {
		if l == 2 {
			stack = append(stack, i)
		}
	}
	neighbors := [8]int{-w - 1, -w, -w + 1, -1, 1, w - 1, w, w + 1}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := i%w, i/w
		out.Pix[y*out.Stride+x] = 255
		if x == 0 || x == w-1 || y == 0 || y == h-1 {
			continue
		}
		for _, d := range neighbors {
			j := i + d
			if labels[j] == 1 {
				labels[j] = 2
				stack = append(stack, j)
			}
		}
	}
	return out
}

// gaussianBlur5 smooths with the separable 5-tap binomial kernel
// [1 4 6 4 1]/16, mirroring edge pixels at the borders.
func gaussianBlur5(src *image.Gray) *image.Gray {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return image.NewGray(bounds)
	}
	kernel := [5]int32{1, 4, 6, 4, 1}

	tmp := make([]int32, w*h)
	for y := 0; y < h; y++ {
		row := y * src.Stride
		for x := 0; x < w; x++ {
			var sum int32
			for k := -2; k <= 2; k++ {
				sum += kernel[k+2] * int32(src.Pix[row+reflectIndex(x+k, w)])
			}
			tmp[y*w+x] = sum
		}
	}

	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := y * dst.Stride
		for x := 0; x < w; x++ {
			var sum int32
			for k := -2; k <= 2; k++ {
				sum += kernel[k+2] * tmp[reflectIndex(y+k, h)*w+x]
			}
			dst.Pix[row+x] = uint8((sum + 128) >> 8)
		}
	}
	return dst
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
