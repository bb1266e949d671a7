package bloch

import "math"

const tolerance = 1e-9

// recordingRenderer keeps everything it was asked to draw.
type recordingRenderer struct {
	scenes     []Scene
	indicators []Indicator
}

func (r *recordingRenderer) DrawScene(scene Scene) {
	r.scenes = append(r.scenes, scene)
}

func (r *recordingRenderer) DrawIndicator(indicator Indicator) {
	r.indicators = append(r.indicators, indicator)
}

func (r *recordingRenderer) last() Indicator {
	return r.indicators[len(r.indicators)-1]
}

func legacyConfig() *Config {
	config := NewConfig()
	config.AzimuthMode = AzimuthLegacyAtan
	return config
}

var sqrtHalf = math.Sqrt2 / 2
