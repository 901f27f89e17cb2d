package domain

// CavityFinding is one suspected cavity region found by the placeholder
// detector. Coordinates are pixels, origin top-left.
type CavityFinding struct {
	ID         int     `json:"id"`
	X          int     `json:"x"`
	Y          int     `json:"y"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Confidence float64 `json:"confidence"`
}

// Position is a pixel coordinate on the source image.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MissingToothFinding marks a canonical tooth position flagged as missing by
// the placeholder detector.
type MissingToothFinding struct {
	ToothID    int      `json:"tooth_id"`
	Name       string   `json:"name"`
	Position   Position `json:"position"`
	Confidence float64  `json:"confidence"`
}

// ConditionFinding is one detected condition from the multi-label
// classifier. Confidence is a percentage rounded to two decimals. Note is
// set when the finding is a low-confidence fallback.
type ConditionFinding struct {
	Condition  string  `json:"condition"`
	Confidence float64 `json:"confidence"`
	Note       string  `json:"note,omitempty"`
}

// XrayPrediction is the single-label classifier output: the top label, its
// confidence in [0,1], and the raw per-class score vector.
type XrayPrediction struct {
	Label      string      `json:"label"`
	Confidence float64     `json:"confidence"`
	Raw        [][]float64 `json:"raw"`
}
