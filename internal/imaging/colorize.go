package imaging

import (
	"image"
	"image/color"
)

// Colorize maps the grayscale input through a jet-style pseudo-colour
// palette: low intensities render blue, midtones green and highlights red.
// The artifact is written as colorized_<basename>.
func Colorize(inputPath, outputDir string) (string, error) {
	gray, err := loadGray(inputPath)
	if err != nil {
		return "", err
	}

	bounds := gray.Bounds()
	dst := image.NewRGBA(bounds)
	lut := jetPalette()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.SetRGBA(x, y, lut[gray.GrayAt(x, y).Y])
		}
	}

	return writeArtifact(dst, inputPath, outputDir, "colorized")
}

// jetPalette precomputes the 256-entry jet lookup table.
func jetPalette() [grayLevels]color.RGBA {
	var lut [grayLevels]color.RGBA
	for i := range lut {
		v := float64(i) / (grayLevels - 1)
		lut[i] = color.RGBA{
			R: jetChannel(v - 0.375),
			G: jetChannel(v - 0.125),
			B: jetChannel(v + 0.125),
			A: 255,
		}
	}
	return lut
}

// jetChannel evaluates one colour channel of the jet ramp: a triangular
// response rising over [0, 0.25], flat at full intensity over [0.25, 0.5],
// and falling back to zero over [0.5, 0.75].
func jetChannel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v < 0.25:
		return grayValue(v * 4 * 255).Y
	case v < 0.5:
		return 255
	case v < 0.75:
		return grayValue((0.75 - v) * 4 * 255).Y
	default:
		return 0
	}
}
