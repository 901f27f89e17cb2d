package ml

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
)

// Multi-label model contract: label order, detection threshold and the index
// of the healthy class, matching the exported MultiLabel model.
const (
	multiLabelFile     = "MultiLabel.json"
	detectionThreshold = 0.4
	healthyIndex       = 3
)

var multiLabelClasses = [4]string{"Caries", "Decayed Tooth", "Ectopic", "Healthy Teeth"}

// Classifier is the multi-label dental condition classifier. The model file
// is loaded lazily on first use, exactly once, and shared by all requests.
type Classifier struct {
	path string
	log  zerolog.Logger

	once sync.Once
	net  *network
	err  error
}

func NewClassifier(modelDir string, log zerolog.Logger) *Classifier {
	return &Classifier{path: filepath.Join(modelDir, multiLabelFile), log: log}
}

func (c *Classifier) load() (*network, error) {
	c.once.Do(func() {
		c.net, c.err = loadNetwork(c.path)
		if c.err != nil {
			c.log.Error().Err(c.err).Str("path", c.path).Msg("multi-label model unavailable")
			return
		}
		// The fallback logic depends on the healthy class position, so the
		// export's label order must match the known contract.
		if len(c.net.Labels) != len(multiLabelClasses) {
			c.net, c.err = nil, fmt.Errorf("%w: unexpected label count in %s", domain.ErrModelUnavailable, c.path)
			c.log.Error().Err(c.err).Msg("multi-label model rejected")
			return
		}
		for i, label := range multiLabelClasses {
			if c.net.Labels[i] != label {
				c.net, c.err = nil, fmt.Errorf("%w: unexpected label order in %s", domain.ErrModelUnavailable, c.path)
				c.log.Error().Err(c.err).Msg("multi-label model rejected")
				return
			}
		}
		c.log.Info().Str("path", c.path).Msg("multi-label model loaded")
	})
	return c.net, c.err
}

// Analyze classifies the image and writes the analysis artifact (an
// unmodified copy of the input, named dental_analysis_<basename>).
//
// Conditions scoring at or above the threshold are reported with their
// confidence as a percentage. When nothing clears the threshold and the
// healthy class is also below it, the single highest-scoring non-healthy
// condition is reported with a low-confidence note.
func (c *Classifier) Analyze(inputPath, outputDir string) (string, []domain.ConditionFinding, error) {
	net, err := c.load()
	if err != nil {
		return "", nil, err
	}

	features, err := featuresFromFile(inputPath, net.Input, net.Pool)
	if err != nil {
		return "", nil, err
	}
	scores, err := net.forward(features)
	if err != nil {
		return "", nil, err
	}

	findings := make([]domain.ConditionFinding, 0, len(scores))
	for i, score := range scores {
		if score >= detectionThreshold {
			findings = append(findings, domain.ConditionFinding{
				Condition:  net.Labels[i],
				Confidence: roundPercent(score),
			})
		}
	}

	if len(findings) == 0 && scores[healthyIndex] < detectionThreshold {
		best := 0
		for i := 1; i < healthyIndex; i++ {
			if scores[i] > scores[best] {
				best = i
			}
		}
		findings = append(findings, domain.ConditionFinding{
			Condition:  net.Labels[best],
			Confidence: roundPercent(scores[best]),
			Note:       "Low confidence detection",
		})
	}

	artifact, err := copyArtifact(inputPath, outputDir, "dental_analysis")
	if err != nil {
		return "", nil, err
	}
	return artifact, findings, nil
}

// roundPercent converts a [0,1] score to a percentage with two decimals.
func roundPercent(score float64) float64 {
	return math.Round(score*100*100) / 100
}

// copyArtifact duplicates the input file under the artifact naming
// convention without altering its contents.
func copyArtifact(inputPath, outputDir, prefix string) (string, error) {
	src, err := os.Open(inputPath)
	if err != nil {
		return "", fmt.Errorf("open input: %w", err)
	}
	defer src.Close()

	outPath := filepath.Join(outputDir, prefix+"_"+filepath.Base(inputPath))
	dst, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("create artifact: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("copy artifact: %w", err)
	}
	return outPath, nil
}
