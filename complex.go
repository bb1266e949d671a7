package bloch

import (
	"fmt"
	"math"
)

/*
ComplexNumber is a probability amplitude. It is a plain value; nothing
mutates it after construction.
*/
type ComplexNumber struct {
	Real      float64
	Imaginary float64
}

func NewComplexNumber(real, imaginary float64) ComplexNumber {
	return ComplexNumber{Real: real, Imaginary: imaginary}
}

// FromComplex128 converts a native complex value.
func FromComplex128(c complex128) ComplexNumber {
	return ComplexNumber{Real: real(c), Imaginary: imag(c)}
}

// Magnitude returns sqrt(real² + imaginary²).
func (c ComplexNumber) Magnitude() float64 {
	return math.Hypot(c.Real, c.Imaginary)
}

func (c ComplexNumber) Complex128() complex128 {
	return complex(c.Real, c.Imaginary)
}

// Equals compares component-wise within tolerance.
func (c ComplexNumber) Equals(other ComplexNumber, tolerance float64) bool {
	return math.Abs(c.Real-other.Real) <= tolerance &&
		math.Abs(c.Imaginary-other.Imaginary) <= tolerance
}

func (c ComplexNumber) String() string {
	if math.Signbit(c.Imaginary) {
		return fmt.Sprintf("%g-%gi", c.Real, -c.Imaginary)
	}
	return fmt.Sprintf("%g+%gi", c.Real, c.Imaginary)
}
