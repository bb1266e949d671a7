package bloch

import "math"

// Color is an RGB triple in [0, 1].
type Color struct {
	R, G, B float64
}

var (
	Black = Color{0, 0, 0}
	Grey  = Color{0.3, 0.3, 0.3}
	Blue  = Color{0, 0, 1}
)

// SceneStyle parameterizes the static parts of the sphere drawing.
type SceneStyle struct {
	Radius         float64
	SphereAlpha    float64
	LineColor      Color
	IndicatorColor Color
	LabelColor     Color
	LabelSize      float64
	// EquatorStep is the angle between consecutive equator points.
	EquatorStep float64
}

func NewSceneStyle() SceneStyle {
	return SceneStyle{
		Radius:         1,
		SphereAlpha:    0.4,
		LineColor:      Grey,
		IndicatorColor: Blue,
		LabelColor:     Black,
		LabelSize:      0.2,
		EquatorStep:    math.Pi / 20,
	}
}

type Segment struct {
	Name     string
	From, To Vector
	Color    Color
}

// Label is a text marker. It carries everything a renderer needs to build
// it; nothing about it is shared or hard-coded on the renderer side.
type Label struct {
	Text     string
	Color    Color
	Size     float64
	Position Vector
}

/*
Scene is the static geometry around the state indicator: the translucent
sphere, the three axes, the dashed equator and the basis labels. It is built
once per Presenter.
*/
type Scene struct {
	Radius       float64
	SphereAlpha  float64
	Axes         []Segment
	Equator      []Vector
	EquatorColor Color
	Labels       []Label
}

func NewScene(style SceneStyle) Scene {
	r := style.Radius
	offset := 1.2 * r

	return Scene{
		Radius:      r,
		SphereAlpha: style.SphereAlpha,
		Axes: []Segment{
			{Name: "x", From: Vector{0, 0, -r}, To: Vector{0, 0, r}, Color: style.LineColor},
			{Name: "y", From: Vector{-r, 0, 0}, To: Vector{r, 0, 0}, Color: style.LineColor},
			{Name: "z", From: Vector{0, r, 0}, To: Vector{0, -r, 0}, Color: style.LineColor},
		},
		Equator:      equatorPoints(r, style.EquatorStep),
		EquatorColor: style.LineColor,
		Labels: []Label{
			newLabel("X", style, Vector{0, 0.1 * r, -offset}),
			newLabel("Y", style, Vector{offset, 0, 0}),
			newLabel("|0>", style, Vector{0, offset, 0}),
			newLabel("|1>", style, Vector{0, -offset, 0}),
			newLabel("|+>", style, Vector{0, -0.1 * r, -offset}),
			newLabel("<-|", style, Vector{0, 0, offset}),
		},
	}
}

func newLabel(text string, style SceneStyle, position Vector) Label {
	return Label{
		Text:     text,
		Color:    style.LabelColor,
		Size:     style.LabelSize,
		Position: position,
	}
}

// equatorPoints walks the ring for i < 20π steps, which with the default
// step of π/20 overshoots a full turn slightly so the dashes close.
func equatorPoints(radius, step float64) []Vector {
	if step <= 0 {
		return nil
	}

	points := make([]Vector, 0, int(math.Ceil(math.Pi*20)))
	theta := 0.0
	for i := 0; float64(i) < math.Pi*20; i++ {
		points = append(points, Vector{radius * math.Cos(theta), 0, radius * math.Sin(theta)})
		theta += step
	}
	return points
}
