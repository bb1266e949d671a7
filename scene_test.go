package bloch

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewScene(t *testing.T) {
	Convey("Given the default scene style", t, func() {
		scene := NewScene(NewSceneStyle())

		Convey("It should have three axes through the center", func() {
			So(len(scene.Axes), ShouldEqual, 3)
			for _, axis := range scene.Axes {
				So(axis.From.Length(), ShouldAlmostEqual, 1, tolerance)
				So(axis.To.Length(), ShouldAlmostEqual, 1, tolerance)
				So(axis.Color, ShouldResemble, Grey)
			}
		})

		Convey("It should have an equator of 63 points on the unit circle", func() {
			So(len(scene.Equator), ShouldEqual, 63)
			So(scene.Equator[0], ShouldResemble, Vector{1, 0, 0})
			for _, p := range scene.Equator {
				So(p.Y, ShouldEqual, 0)
				So(p.Length(), ShouldAlmostEqual, 1, tolerance)
			}
		})

		Convey("It should label both poles and the basis states", func() {
			texts := make([]string, 0, len(scene.Labels))
			for _, label := range scene.Labels {
				texts = append(texts, label.Text)
				So(label.Size, ShouldEqual, 0.2)
				So(label.Color, ShouldResemble, Black)
			}

			So(texts, ShouldResemble, []string{"X", "Y", "|0>", "|1>", "|+>", "<-|"})
			So(scene.Labels[2].Position, ShouldResemble, Vector{0, 1.2, 0})
		})
	})

	Convey("Given a custom scene style", t, func() {
		style := NewSceneStyle()
		style.Radius = 2
		style.LabelColor = Blue
		style.EquatorStep = math.Pi / 2

		scene := NewScene(style)

		Convey("Labels should take the style", func() {
			So(scene.Labels[0].Color, ShouldResemble, Blue)
			So(scene.Labels[3].Position.Y, ShouldAlmostEqual, -2.4, tolerance)
		})

		Convey("Equator points should sit on the larger circle", func() {
			So(scene.Equator[1].Z, ShouldAlmostEqual, 2, tolerance)
		})

		Convey("A non-positive step should yield no equator", func() {
			style.EquatorStep = 0
			So(NewScene(style).Equator, ShouldBeEmpty)
		})
	})
}
