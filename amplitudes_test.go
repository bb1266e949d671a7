package bloch

import (
	"math"
	"math/cmplx"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSetFromAmplitudes(t *testing.T) {
	Convey("Given a qubit state", t, func() {
		qs := NewQubitState(0, 0, nil)

		Convey("When setting the |+> amplitudes", func() {
			err := qs.SetFromAmplitudes(complex(sqrtHalf, 0), complex(sqrtHalf, 0))

			Convey("It should land on the equator at azimuth 0", func() {
				So(err, ShouldBeNil)
				So(qs.Inclination(), ShouldAlmostEqual, math.Pi/2, tolerance)
				So(qs.Azimuth(), ShouldAlmostEqual, 0, tolerance)
			})
		})

		Convey("When the amplitudes are not normalized", func() {
			err := qs.SetFromAmplitudes(3, 3i)

			Convey("They should be normalized first", func() {
				So(err, ShouldBeNil)
				So(qs.Probability0(), ShouldAlmostEqual, 0.5, tolerance)
				So(qs.Azimuth(), ShouldAlmostEqual, math.Pi/2, tolerance)
			})
		})

		Convey("When the amplitudes carry a global phase", func() {
			phase := cmplx.Exp(complex(0, 1.1))
			err := qs.SetFromAmplitudes(0.6*phase, 0.8i*phase)

			Convey("Only the relative phase should remain", func() {
				So(err, ShouldBeNil)
				So(qs.Probability0(), ShouldAlmostEqual, 0.36, tolerance)
				So(qs.Azimuth(), ShouldAlmostEqual, math.Pi/2, tolerance)
			})
		})

		Convey("When only |1> has weight", func() {
			err := qs.SetFromAmplitudes(0, -1i)

			Convey("It should be the |1> pole", func() {
				So(err, ShouldBeNil)
				So(qs.Inclination(), ShouldAlmostEqual, math.Pi, tolerance)
				So(qs.Azimuth(), ShouldEqual, 0)
			})
		})

		Convey("When both amplitudes are zero", func() {
			qs.SetFromAngles(1, 1)
			err := qs.SetFromAmplitudes(0, 0)

			Convey("It should fail and leave the state alone", func() {
				So(err, ShouldEqual, ErrZeroAmplitudes)
				So(qs.Inclination(), ShouldEqual, 1)
			})
		})

		Convey("Amplitudes should round-trip", func() {
			for theta := 0.2; theta < math.Pi; theta += 0.3 {
				for phi := 0.1; phi < 2*math.Pi; phi += 0.7 {
					qs.SetFromAngles(theta, phi)
					alpha, beta := qs.Amplitudes()

					So(qs.SetFromAmplitudes(alpha, beta), ShouldBeNil)
					So(qs.Inclination(), ShouldAlmostEqual, theta, tolerance)
					So(qs.Azimuth(), ShouldAlmostEqual, phi, tolerance)
				}
			}
		})
	})
}
