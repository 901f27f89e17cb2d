package imaging

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
)

// toothPosition is one entry of the fixed canonical catalog the placeholder
// detector iterates. Positions use FDI tooth numbering.
type toothPosition struct {
	id   int
	x, y int
	name string
}

var toothCatalog = [4]toothPosition{
	{id: 18, x: 50, y: 100, name: "Upper Right Third Molar"},
	{id: 21, x: 250, y: 100, name: "Upper Left Central Incisor"},
	{id: 33, x: 200, y: 300, name: "Lower Left Canine"},
	{id: 46, x: 100, y: 300, name: "Lower Right First Molar"},
}

var missingMarkColor = color.RGBA{B: 255, A: 255}

const missingMarkRadius = 20

// MissingTeethResult is the structured output of the missing-teeth detector.
type MissingTeethResult struct {
	MissingTeeth []domain.MissingToothFinding `json:"missing_teeth"`
	Count        int                          `json:"count"`
}

// DetectMissingTeeth is a placeholder detector: for each catalog position it
// flips an unweighted coin, and positions deemed missing are circled and
// reported with a random confidence in [0.75, 0.98). The outcome is entirely
// independent of the image content. The artifact is missing_teeth_<basename>.
func DetectMissingTeeth(inputPath, outputDir string) (string, *MissingTeethResult, error) {
	annotated, err := loadRGBA(inputPath)
	if err != nil {
		return "", nil, err
	}

	findings := make([]domain.MissingToothFinding, 0, len(toothCatalog))
	for _, tooth := range toothCatalog {
		if rand.Float64() <= 0.5 {
			continue
		}
		confidence := math.Round((0.75+rand.Float64()*0.23)*100) / 100

		drawCircle(annotated, tooth.x, tooth.y, missingMarkRadius, missingMarkColor, 2)
		drawLabel(annotated, tooth.x-30, tooth.y-25, fmt.Sprintf("Missing: %d", tooth.id), missingMarkColor)

		findings = append(findings, domain.MissingToothFinding{
			ToothID:    tooth.id,
			Name:       tooth.name,
			Position:   domain.Position{X: tooth.x, Y: tooth.y},
			Confidence: confidence,
		})
	}

	outPath, err := writeArtifact(annotated, inputPath, outputDir, "missing_teeth")
	if err != nil {
		return "", nil, err
	}
	return outPath, &MissingTeethResult{MissingTeeth: findings, Count: len(findings)}, nil
}
