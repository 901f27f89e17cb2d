package ml

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
)

// featuresFromFile decodes the image at path and extracts the model's
// feature vector.
func featuresFromFile(path string, spec inputSpec, pool int) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return featuresFromBytes(data, spec, pool)
}

// featuresFromBytes resizes the decoded image to the model input
// resolution, average-pools it by the export's pooling factor and returns
// per-cell RGB intensities normalised to [0, 1].
func featuresFromBytes(data []byte, spec inputSpec, pool int) ([]float64, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPreprocess, err)
	}

	resized := image.NewRGBA(image.Rect(0, 0, spec.Width, spec.Height))
	xdraw.CatmullRom.Scale(resized, resized.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	cellsX := spec.Width / pool
	cellsY := spec.Height / pool
	features := make([]float64, 0, cellsX*cellsY*spec.Channels)
	cellPixels := float64(pool * pool)

	for cy := 0; cy < cellsY; cy++ {
		for cx := 0; cx < cellsX; cx++ {
			var r, g, b float64
			for y := cy * pool; y < (cy+1)*pool; y++ {
				for x := cx * pool; x < (cx+1)*pool; x++ {
					px := resized.RGBAAt(x, y)
					r += float64(px.R)
					g += float64(px.G)
					b += float64(px.B)
				}
			}
			features = append(features,
				r/cellPixels/255.0,
				g/cellPixels/255.0,
				b/cellPixels/255.0,
			)
		}
	}
	return features, nil
}
