package bloch

import (
	"errors"
	"math"
	"math/cmplx"
)

var ErrZeroAmplitudes = errors.New("bloch: both amplitudes are zero")

// Amplitudes returns the |0⟩ and |1⟩ amplitudes as native complex values.
func (qs *QubitState) Amplitudes() (alpha, beta complex128) {
	return qs.Amplitude0().Complex128(), qs.Amplitude1().Complex128()
}

/*
SetFromAmplitudes sets the state from an arbitrary amplitude pair. The pair
is normalized and its global phase discarded, so only the relative phase
arg(β) - arg(α) survives as the azimuth.
*/
func (qs *QubitState) SetFromAmplitudes(alpha, beta complex128) error {
	a := cmplx.Abs(alpha)
	b := cmplx.Abs(beta)

	if a == 0 && b == 0 {
		return ErrZeroAmplitudes
	}

	inclination := 2 * math.Atan2(b, a)

	// A zero amplitude has no phase of its own.
	var azimuth float64
	if a != 0 && b != 0 {
		azimuth = cmplx.Phase(beta) - cmplx.Phase(alpha)
	}

	qs.SetFromAngles(inclination, azimuth)
	return nil
}
