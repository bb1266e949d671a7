package bloch

import "math"

/*
Vector is a point in the Y-up frame the sphere is drawn in. Y is the
|0⟩/|1⟩ axis; X and Z span the equator, with θ = π/2, φ = 0 at (0, 0, -1).
*/
type Vector struct {
	X, Y, Z float64
}

func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func (v Vector) Normalize() Vector {
	n := v.Length()
	if n == 0 {
		return Vector{}
	}
	inv := 1.0 / n
	return Vector{v.X * inv, v.Y * inv, v.Z * inv}
}

// Vector returns (sinθ·sinφ, cosθ, -sinθ·cosφ).
func (qs *QubitState) Vector() Vector {
	sinTheta := math.Sin(qs.inclination)

	return Vector{
		X: sinTheta * math.Sin(qs.azimuth),
		Y: math.Cos(qs.inclination),
		Z: -sinTheta * math.Cos(qs.azimuth),
	}
}

// Orientation is the rotation hint for a marker sitting on the vector tip.
func (qs *QubitState) Orientation() Vector {
	return Vector{X: -qs.Inclination(), Y: -qs.Azimuth(), Z: 0}
}

/*
SetFromVector sets the state from a unit vector. The inclination is acos(y).
The azimuth depends on the configured AzimuthMode:

  - AzimuthAtan2 computes atan2(x, -z), clamps y into [-1, 1] and pins the
    azimuth to 0 when x and z are both zero.
  - AzimuthLegacyAtan computes atan(x / -z) exactly, with no clamping. Only
    half the sphere round-trips, and x = z = 0 produces NaN.

The input is not normalized; callers pass points already on the sphere.
*/
func (qs *QubitState) SetFromVector(x, y, z float64) {
	if qs.config.AzimuthMode == AzimuthLegacyAtan {
		qs.inclination = math.Acos(y)
		qs.azimuth = math.Mod(math.Atan(x/-z)+twoPi, twoPi)
		return
	}

	qs.inclination = math.Acos(math.Max(-1, math.Min(1, y)))

	if x == 0 && z == 0 {
		qs.azimuth = 0
		return
	}

	qs.azimuth = normalizeAzimuth(math.Atan2(x, -z))
}

func (qs *QubitState) SetVector(v Vector) {
	qs.SetFromVector(v.X, v.Y, v.Z)
}
