package bloch

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestComplexNumber(t *testing.T) {
	Convey("Given complex numbers", t, func() {
		Convey("The magnitude of 3+4i should be 5", func() {
			So(NewComplexNumber(3, 4).Magnitude(), ShouldAlmostEqual, 5, tolerance)
		})

		Convey("The magnitude of zero should be zero", func() {
			So(NewComplexNumber(0, 0).Magnitude(), ShouldEqual, 0)
		})

		Convey("The magnitude should never be negative", func() {
			So(NewComplexNumber(-3, -4).Magnitude(), ShouldAlmostEqual, 5, tolerance)
		})

		Convey("When converting to and from complex128", func() {
			c := NewComplexNumber(1.5, -2)

			So(c.Complex128(), ShouldEqual, complex(1.5, -2))
			So(FromComplex128(c.Complex128()), ShouldResemble, c)
		})

		Convey("Equals should honor the tolerance", func() {
			a := NewComplexNumber(1, 1)

			So(a.Equals(NewComplexNumber(1+1e-12, 1), tolerance), ShouldBeTrue)
			So(a.Equals(NewComplexNumber(1.1, 1), tolerance), ShouldBeFalse)
		})

		Convey("String should show the sign of the imaginary part", func() {
			So(NewComplexNumber(1, 2).String(), ShouldEqual, "1+2i")
			So(NewComplexNumber(1, -2).String(), ShouldEqual, "1-2i")
		})
	})
}
