package ml

import (
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
)

const xrayModelFile = "XrayClassifier.json"

// XrayModel is the single-label X-ray classifier. It has its own label set
// and input resolution, separate from the multi-label model, and returns
// the top label together with the raw score vector.
type XrayModel struct {
	path string
	log  zerolog.Logger

	once sync.Once
	net  *network
	err  error
}

func NewXrayModel(modelDir string, log zerolog.Logger) *XrayModel {
	return &XrayModel{path: filepath.Join(modelDir, xrayModelFile), log: log}
}

func (m *XrayModel) load() (*network, error) {
	m.once.Do(func() {
		m.net, m.err = loadNetwork(m.path)
		if m.err != nil {
			m.log.Error().Err(m.err).Str("path", m.path).Msg("x-ray model unavailable")
			return
		}
		m.log.Info().Str("path", m.path).Msg("x-ray model loaded")
	})
	return m.net, m.err
}

// PredictBytes classifies raw image bytes and returns the top label, its
// confidence and the full per-class score vector.
func (m *XrayModel) PredictBytes(data []byte) (*domain.XrayPrediction, error) {
	net, err := m.load()
	if err != nil {
		return nil, err
	}

	features, err := featuresFromBytes(data, net.Input, net.Pool)
	if err != nil {
		return nil, err
	}
	scores, err := net.forward(features)
	if err != nil {
		return nil, err
	}

	best := 0
	for i, score := range scores {
		if score > scores[best] {
			best = i
		}
	}

	return &domain.XrayPrediction{
		Label:      net.Labels[best],
		Confidence: scores[best],
		Raw:        [][]float64{scores},
	}, nil
}
