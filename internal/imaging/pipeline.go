package imaging

import "github.com/rs/zerolog"

// Pipeline bundles the stateless transforms behind one injectable value so
// handlers do not depend on package-level functions.
type Pipeline struct {
	log zerolog.Logger
}

func NewPipeline(log zerolog.Logger) *Pipeline {
	return &Pipeline{log: log}
}

func (p *Pipeline) Enhance(inputPath, outputDir string) (string, error) {
	out, err := Enhance(inputPath, outputDir)
	if err != nil {
		p.log.Error().Err(err).Str("input", inputPath).Msg("enhance failed")
		return "", err
	}
	return out, nil
}

func (p *Pipeline) Colorize(inputPath, outputDir string) (string, error) {
	out, err := Colorize(inputPath, outputDir)
	if err != nil {
		p.log.Error().Err(err).Str("input", inputPath).Msg("colorize failed")
		return "", err
	}
	return out, nil
}

func (p *Pipeline) DetectCavities(inputPath, outputDir string) (string, *CavityResult, error) {
	out, result, err := DetectCavities(inputPath, outputDir)
	if err != nil {
		p.log.Error().Err(err).Str("input", inputPath).Msg("cavity detection failed")
		return "", nil, err
	}
	p.log.Info().Str("input", inputPath).Int("findings", result.Count).Msg("cavity detection complete")
	return out, result, nil
}

func (p *Pipeline) DetectMissingTeeth(inputPath, outputDir string) (string, *MissingTeethResult, error) {
	out, result, err := DetectMissingTeeth(inputPath, outputDir)
	if err != nil {
		p.log.Error().Err(err).Str("input", inputPath).Msg("missing-teeth detection failed")
		return "", nil, err
	}
	p.log.Info().Str("input", inputPath).Int("findings", result.Count).Msg("missing-teeth detection complete")
	return out, result, nil
}
