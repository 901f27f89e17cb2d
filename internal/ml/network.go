// Package ml runs the pre-trained dental classifiers from exported weight
// files. Models are plain dense networks stored as JSON (layer sizes,
// row-major weights, biases) together with their label set, input
// resolution, pooling factor and output activation. Each model is loaded at
// most once per process and shared across requests.
package ml

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
)

type layerSpec struct {
	Rows    int       `json:"rows"`
	Cols    int       `json:"cols"`
	Weights []float64 `json:"weights"`
	Bias    []float64 `json:"bias"`
}

type inputSpec struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	Channels int `json:"channels"`
}

// network is a loaded model: feature extraction parameters plus the dense
// layer stack. Hidden layers use ReLU; the output activation is part of the
// export.
type network struct {
	Labels    []string    `json:"labels"`
	Input     inputSpec   `json:"input"`
	Pool      int         `json:"pool"`
	OutputAct string      `json:"output_activation"`
	Layers    []layerSpec `json:"layers"`
}

// loadNetwork reads and validates an exported model file. A missing or
// malformed file yields domain.ErrModelUnavailable.
func loadNetwork(path string) (*network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrModelUnavailable, path, err)
	}

	var n network
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrModelUnavailable, path, err)
	}
	if err := n.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrModelUnavailable, path, err)
	}
	return &n, nil
}

func (n *network) validate() error {
	if len(n.Labels) == 0 {
		return fmt.Errorf("no labels")
	}
	if n.Input.Width <= 0 || n.Input.Height <= 0 || n.Input.Channels != 3 {
		return fmt.Errorf("invalid input spec %+v", n.Input)
	}
	if n.Pool <= 0 || n.Input.Width%n.Pool != 0 || n.Input.Height%n.Pool != 0 {
		return fmt.Errorf("pool %d does not divide input %dx%d", n.Pool, n.Input.Width, n.Input.Height)
	}
	if len(n.Layers) == 0 {
		return fmt.Errorf("no layers")
	}

	expect := n.featureLen()
	for i, l := range n.Layers {
		if l.Cols != expect {
			return fmt.Errorf("layer %d expects %d inputs, previous layer yields %d", i, l.Cols, expect)
		}
		if len(l.Weights) != l.Rows*l.Cols || len(l.Bias) != l.Rows {
			return fmt.Errorf("layer %d weight/bias sizes inconsistent", i)
		}
		expect = l.Rows
	}
	if expect != len(n.Labels) {
		return fmt.Errorf("output size %d does not match %d labels", expect, len(n.Labels))
	}
	return nil
}

func (n *network) featureLen() int {
	return (n.Input.Width / n.Pool) * (n.Input.Height / n.Pool) * n.Input.Channels
}

// forward evaluates the dense stack on a feature vector and returns one
// score per label.
func (n *network) forward(features []float64) ([]float64, error) {
	if len(features) != n.featureLen() {
		return nil, fmt.Errorf("%w: got %d features, want %d", domain.ErrPreprocess, len(features), n.featureLen())
	}

	v := features
	for i, l := range n.Layers {
		out := make([]float64, l.Rows)
		for r := 0; r < l.Rows; r++ {
			sum := l.Bias[r]
			row := l.Weights[r*l.Cols : (r+1)*l.Cols]
			for c, w := range row {
				sum += w * v[c]
			}
			out[r] = sum
		}
		if i < len(n.Layers)-1 {
			relu(out)
		}
		v = out
	}

	switch n.OutputAct {
	case "softmax":
		softmax(v)
	default:
		sigmoid(v)
	}
	return v, nil
}

func relu(v []float64) {
	for i, x := range v {
		if x < 0 {
			v[i] = 0
		}
	}
}

func sigmoid(v []float64) {
	for i, x := range v {
		v[i] = 1 / (1 + math.Exp(-x))
	}
}

func softmax(v []float64) {
	maxV := v[0]
	for _, x := range v[1:] {
		if x > maxV {
			maxV = x
		}
	}
	sum := 0.0
	for i, x := range v {
		v[i] = math.Exp(x - maxV)
		sum += v[i]
	}
	for i := range v {
		v[i] /= sum
	}
}
