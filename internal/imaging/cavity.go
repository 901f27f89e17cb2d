package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
)

// Placeholder cavity detector parameters. This is NOT a trained classifier:
// regions are picked by a fixed intensity threshold and sized area filter,
// and confidence scores are random. Results differ across runs on the same
// input.
const (
	cavityThreshold = 70
	cavityMinArea   = 50
	cavityMaxArea   = 1000
)

var cavityBoxColor = color.RGBA{R: 255, A: 255}

// CavityResult is the structured output of the cavity detector.
type CavityResult struct {
	Cavities []domain.CavityFinding `json:"cavities"`
	Count    int                    `json:"count"`
}

// DetectCavities binarises the image below a fixed intensity threshold,
// extracts connected dark regions, keeps those with an area strictly inside
// (cavityMinArea, cavityMaxArea), and annotates each with a bounding box and
// a mock confidence in [0.70, 0.95). The artifact is cavities_<basename>.
func DetectCavities(inputPath, outputDir string) (string, *CavityResult, error) {
	gray, err := loadGray(inputPath)
	if err != nil {
		return "", nil, err
	}
	annotated, err := loadRGBA(inputPath)
	if err != nil {
		return "", nil, err
	}

	regions := darkRegions(gray)
	findings := make([]domain.CavityFinding, 0, len(regions))
	for _, r := range regions {
		if r.area <= cavityMinArea || r.area >= cavityMaxArea {
			continue
		}
		confidence := 0.70 + rand.Float64()*0.25
		box := image.Rect(r.minX, r.minY, r.maxX, r.maxY)
		drawRect(annotated, box, cavityBoxColor, 2)
		drawLabel(annotated, box.Min.X, box.Min.Y-5, fmt.Sprintf("%.2f", confidence), cavityBoxColor)

		findings = append(findings, domain.CavityFinding{
			ID:         len(findings) + 1,
			X:          r.minX,
			Y:          r.minY,
			Width:      r.maxX - r.minX + 1,
			Height:     r.maxY - r.minY + 1,
			Confidence: confidence,
		})
	}

	outPath, err := writeArtifact(annotated, inputPath, outputDir, "cavities")
	if err != nil {
		return "", nil, err
	}
	return outPath, &CavityResult{Cavities: findings, Count: len(findings)}, nil
}

// region is a 4-connected component of below-threshold pixels. The bounding
// box coordinates are inclusive.
type region struct {
	area                   int
	minX, minY, maxX, maxY int
}

// darkRegions labels 4-connected components of pixels darker than the
// cavity threshold using an iterative flood fill.
func darkRegions(gray *image.Gray) []region {
	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	visited := make([]bool, w*h)
	var regions []region

	dark := func(x, y int) bool {
		return gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y < cavityThreshold
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if visited[y*w+x] || !dark(x, y) {
				continue
			}

			r := region{minX: x, minY: y, maxX: x, maxY: y}
			stack := []image.Point{{X: x, Y: y}}
			visited[y*w+x] = true

			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				r.area++
				if p.X < r.minX {
					r.minX = p.X
				}
				if p.X > r.maxX {
					r.maxX = p.X
				}
				if p.Y < r.minY {
					r.minY = p.Y
				}
				if p.Y > r.maxY {
					r.maxY = p.Y
				}

				for _, n := range [4]image.Point{
					{X: p.X + 1, Y: p.Y}, {X: p.X - 1, Y: p.Y},
					{X: p.X, Y: p.Y + 1}, {X: p.X, Y: p.Y - 1},
				} {
					if n.X < 0 || n.X >= w || n.Y < 0 || n.Y >= h {
						continue
					}
					if visited[n.Y*w+n.X] || !dark(n.X, n.Y) {
						continue
					}
					visited[n.Y*w+n.X] = true
					stack = append(stack, n)
				}
			}
			regions = append(regions, r)
		}
	}
	return regions
}
