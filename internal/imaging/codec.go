// Package imaging implements the image-processing pipeline: contrast
// enhancement, pseudo-colorization and the placeholder cavity and
// missing-teeth detectors. Every transform takes an input path and an output
// directory, writes a derived artifact named <operation>_<input-basename>,
// and returns the artifact path plus structured findings where applicable.
//
// All algorithms operate on in-memory pixel buffers from the standard image
// packages; inputs may be PNG or JPEG and artifacts keep the input's format.
package imaging

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
)

const jpegQuality = 90

// loadGray decodes the image at path and collapses it to 8-bit grayscale
// using the standard luminance weights.
func loadGray(path string) (*image.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPreprocess, err)
	}
	return toGray(src), nil
}

func toGray(src image.Image) *image.Gray {
	if g, ok := src.(*image.Gray); ok {
		return g
	}
	bounds := src.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x, y, src.At(x, y))
		}
	}
	return gray
}

// loadRGBA decodes the image at path into an RGBA buffer suitable for
// drawing annotations.
func loadRGBA(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPreprocess, err)
	}

	bounds := src.Bounds()
	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x, y, src.At(x, y))
		}
	}
	return rgba, nil
}

// writeArtifact encodes img to <outputDir>/<prefix>_<basename of inputPath>,
// choosing the encoder from the input's extension (PNG unless the input was
// a JPEG).
func writeArtifact(img image.Image, inputPath, outputDir, prefix string) (string, error) {
	name := prefix + "_" + filepath.Base(inputPath)
	outPath := filepath.Join(outputDir, name)

	f, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("create artifact: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(inputPath)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality})
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return "", fmt.Errorf("encode artifact: %w", err)
	}
	return outPath, nil
}
