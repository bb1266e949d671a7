package bloch

import (
	"math"

	"github.com/theapemachine/errnie"
)

const twoPi = 2 * math.Pi

/*
QubitState holds a single qubit's pure state as a point on the Bloch sphere.
Only the two angles are stored; the vector, amplitudes and probabilities are
derived from them on every read.

QubitState does no locking. A host that shares one between goroutines must
serialize access itself (Presenter does).
*/
type QubitState struct {
	inclination float64
	azimuth     float64
	config      *Config
}

// NewQubitState creates a state at (inclination, azimuth). A nil config
// falls back to NewConfig.
func NewQubitState(inclination, azimuth float64, config *Config) *QubitState {
	if config == nil {
		config = NewConfig()
	}

	errnie.Info(
		"NewQubitState - inclination %v, azimuth %v, mode %v",
		inclination,
		azimuth,
		config.AzimuthMode,
	)

	qs := &QubitState{config: config}
	qs.SetFromAngles(inclination, azimuth)
	return qs
}

/*
SetFromAngles stores the inclination as given, without validation, and the
azimuth wrapped into [0, 2π).
*/
func (qs *QubitState) SetFromAngles(inclination, azimuth float64) {
	qs.inclination = inclination
	qs.azimuth = normalizeAzimuth(azimuth)
}

func (qs *QubitState) Inclination() float64 {
	return qs.inclination
}

// Azimuth wraps again on read so the result is always in [0, 2π).
func (qs *QubitState) Azimuth() float64 {
	return normalizeAzimuth(qs.azimuth)
}

func (qs *QubitState) Angles() (inclination, azimuth float64) {
	return qs.Inclination(), qs.Azimuth()
}

// Amplitude0 is the amplitude of measuring |0⟩: cos(θ/2).
func (qs *QubitState) Amplitude0() ComplexNumber {
	return NewComplexNumber(math.Cos(qs.Inclination()/2), 0)
}

// Amplitude1 is the amplitude of measuring |1⟩: e^{iφ}·sin(θ/2).
func (qs *QubitState) Amplitude1() ComplexNumber {
	sinHalf := math.Sin(qs.Inclination() / 2)
	azimuth := qs.Azimuth()

	return NewComplexNumber(math.Cos(azimuth)*sinHalf, math.Sin(azimuth)*sinHalf)
}

func (qs *QubitState) Probability0() float64 {
	m := qs.Amplitude0().Magnitude()
	return m * m
}

func (qs *QubitState) Probability1() float64 {
	m := qs.Amplitude1().Magnitude()
	return m * m
}

/*
AzimuthDefined reports whether the azimuth carries information. Within
PoleTolerance of either pole every azimuth names the same state.
*/
func (qs *QubitState) AzimuthDefined() bool {
	theta := math.Mod(math.Abs(qs.Inclination()), twoPi)
	tol := qs.config.PoleTolerance

	return math.Abs(theta) > tol &&
		math.Abs(theta-math.Pi) > tol &&
		math.Abs(theta-twoPi) > tol
}

// States returns the two measurement outcomes, |0⟩ first.
func (qs *QubitState) States() []State {
	return []State{
		{
			Value:       0,
			Label:       "|0>",
			Amplitude:   qs.Amplitude0(),
			Probability: qs.Probability0(),
		},
		{
			Value:       1,
			Label:       "|1>",
			Amplitude:   qs.Amplitude1(),
			Probability: qs.Probability1(),
		},
	}
}

func normalizeAzimuth(azimuth float64) float64 {
	return math.Mod(math.Mod(azimuth, twoPi)+twoPi, twoPi)
}
