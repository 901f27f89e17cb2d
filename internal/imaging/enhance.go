package imaging

import "image"

// Contrast-limited adaptive histogram equalisation parameters, matching the
// reference pipeline: 8x8 tile grid with a clip limit of 2.0.
const (
	claheClipLimit = 2.0
	claheTiles     = 8
	grayLevels     = 256
)

// Enhance converts the input to grayscale and applies contrast-limited
// adaptive histogram equalisation. The artifact keeps the input dimensions
// and is written as enhanced_<basename>.
func Enhance(inputPath, outputDir string) (string, error) {
	gray, err := loadGray(inputPath)
	if err != nil {
		return "", err
	}

	enhanced := equalizeAdaptive(gray)
	return writeArtifact(enhanced, inputPath, outputDir, "enhanced")
}

// equalizeAdaptive computes a clipped equalisation mapping per tile and
// bilinearly blends the four surrounding tile mappings at every pixel, which
// avoids visible tile seams.
func equalizeAdaptive(src *image.Gray) *image.Gray {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return src
	}

	tilesX, tilesY := claheTiles, claheTiles
	if tilesX > w {
		tilesX = w
	}
	if tilesY > h {
		tilesY = h
	}

	// Per-tile lookup tables.
	luts := make([][]uint8, tilesX*tilesY)
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			x0 := bounds.Min.X + tx*w/tilesX
			x1 := bounds.Min.X + (tx+1)*w/tilesX
			y0 := bounds.Min.Y + ty*h/tilesY
			y1 := bounds.Min.Y + (ty+1)*h/tilesY
			luts[ty*tilesX+tx] = tileLUT(src, x0, y0, x1, y1)
		}
	}

	dst := image.NewGray(bounds)
	tileW := float64(w) / float64(tilesX)
	tileH := float64(h) / float64(tilesY)

	for y := 0; y < h; y++ {
		// Position relative to tile centres.
		fy := (float64(y)+0.5)/tileH - 0.5
		ty0 := int(fy)
		if fy < 0 {
			ty0 = 0
			fy = 0
		}
		ty1 := ty0 + 1
		if ty1 >= tilesY {
			ty1 = tilesY - 1
			ty0 = ty1
		}
		wy := fy - float64(int(fy))

		for x := 0; x < w; x++ {
			fx := (float64(x)+0.5)/tileW - 0.5
			tx0 := int(fx)
			if fx < 0 {
				tx0 = 0
				fx = 0
			}
			tx1 := tx0 + 1
			if tx1 >= tilesX {
				tx1 = tilesX - 1
				tx0 = tx1
			}
			wx := fx - float64(int(fx))

			v := src.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y
			tl := float64(luts[ty0*tilesX+tx0][v])
			tr := float64(luts[ty0*tilesX+tx1][v])
			bl := float64(luts[ty1*tilesX+tx0][v])
			br := float64(luts[ty1*tilesX+tx1][v])

			top := tl*(1-wx) + tr*wx
			bottom := bl*(1-wx) + br*wx
			dst.SetGray(bounds.Min.X+x, bounds.Min.Y+y, grayValue(top*(1-wy)+bottom*wy))
		}
	}
	return dst
}

// tileLUT builds the clipped-histogram equalisation mapping for one tile.
func tileLUT(src *image.Gray, x0, y0, x1, y1 int) []uint8 {
	var hist [grayLevels]int
	pixels := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			hist[src.GrayAt(x, y).Y]++
			pixels++
		}
	}

	lut := make([]uint8, grayLevels)
	if pixels == 0 {
		for i := range lut {
			lut[i] = uint8(i)
		}
		return lut
	}

	// Clip the histogram and redistribute the excess evenly.
	clip := int(claheClipLimit * float64(pixels) / grayLevels)
	if clip < 1 {
		clip = 1
	}
	excess := 0
	for i, count := range hist {
		if count > clip {
			excess += count - clip
			hist[i] = clip
		}
	}
	share := excess / grayLevels
	rem := excess % grayLevels
	for i := range hist {
		hist[i] += share
		if i < rem {
			hist[i]++
		}
	}

	cdf := 0
	for i, count := range hist {
		cdf += count
		lut[i] = grayValue(float64(cdf) * (grayLevels - 1) / float64(pixels)).Y
	}
	return lut
}
