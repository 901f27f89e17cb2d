package handler

import (
	"io"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
	"github.com/batoolShene/DentalDiagnose/internal/imaging"
)

// ImagePipeline is the slice of the imaging package the handlers need.
type ImagePipeline interface {
	Enhance(inputPath, outputDir string) (string, error)
	Colorize(inputPath, outputDir string) (string, error)
	DetectCavities(inputPath, outputDir string) (string, *imaging.CavityResult, error)
	DetectMissingTeeth(inputPath, outputDir string) (string, *imaging.MissingTeethResult, error)
}

// ConditionClassifier runs the multi-label model over a saved upload.
type ConditionClassifier interface {
	Analyze(inputPath, outputDir string) (string, []domain.ConditionFinding, error)
}

// XrayPredictor runs the single-label X-ray model over raw image bytes.
type XrayPredictor interface {
	PredictBytes(data []byte) (*domain.XrayPrediction, error)
}

var _ ImagePipeline = (*imaging.Pipeline)(nil)

// UploadStore persists uploaded files.
type UploadStore interface {
	Dir() string
	// Save stores under a unique generated name.
	Save(r io.Reader, originalName string) (storedName, path string, err error)
	// SaveRaw stores under the sanitized original name.
	SaveRaw(r io.Reader, originalName string) (storedName, path string, err error)
}
