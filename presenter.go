package bloch

import (
	"log"
	"sync"
	"time"

	"github.com/theapemachine/errnie"
)

/*
Renderer is the scene collaborator. It owns every engine-specific handle
(meshes, materials, textures) and only ever receives plain values.
*/
type Renderer interface {
	DrawScene(scene Scene)
	DrawIndicator(indicator Indicator)
}

// Indicator is the state arrow: a line from the sphere center to the state
// point, capped by a marker rotated by Orientation.
type Indicator struct {
	Origin      Vector
	Tip         Vector
	Orientation Vector
	Color       Color
}

/*
Presenter binds a QubitState to a Renderer. Reads go from the state to the
renderer; the only writes back are angle or vector updates coming from user
interaction. All calls are serialized on the presenter's mutex.
*/
type Presenter struct {
	mu       sync.Mutex
	state    *QubitState
	renderer Renderer
	scene    Scene
	style    SceneStyle
	metrics  *Metrics
}

func NewPresenter(state *QubitState, renderer Renderer, config *Config) *Presenter {
	if config == nil {
		config = NewConfig()
	}

	errnie.Info(
		"NewPresenter - radius %v, alpha %v",
		config.Scene.Radius,
		config.Scene.SphereAlpha,
	)

	p := &Presenter{
		state:    state,
		renderer: renderer,
		scene:    NewScene(config.Scene),
		style:    config.Scene,
		metrics:  NewMetrics(),
	}

	renderer.DrawScene(p.scene)
	return p
}

// Update redraws the indicator from the current state.
func (p *Presenter) Update() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.update()
}

func (p *Presenter) update() {
	startTime := time.Now()

	tip := p.state.Vector()
	r := p.style.Radius

	p.renderer.DrawIndicator(Indicator{
		Origin:      Vector{},
		Tip:         Vector{tip.X * r, tip.Y * r, tip.Z * r},
		Orientation: p.state.Orientation(),
		Color:       p.style.IndicatorColor,
	})

	p.metrics.recordRedraw(startTime, p.state.AzimuthDefined())
}

/*
Drag moves the state to where a pointer ray hit the sphere. The hit point is
projected onto the unit sphere first; a hit at the center has no direction
and is dropped.
*/
func (p *Presenter) Drag(hit Vector) {
	p.mu.Lock()
	defer p.mu.Unlock()

	unit := hit.Normalize()
	if unit == (Vector{}) {
		log.Printf("Ignoring drag to sphere center: %+v", hit)
		p.metrics.recordDrag(true)
		return
	}

	p.state.SetVector(unit)
	p.metrics.recordDrag(false)
	p.update()
}

// SetAngles applies an angle update from UI controls and redraws.
func (p *Presenter) SetAngles(inclination, azimuth float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state.SetFromAngles(inclination, azimuth)
	p.metrics.recordAngleUpdate()
	p.update()
}

func (p *Presenter) Scene() Scene {
	return p.scene
}

func (p *Presenter) Metrics() *Metrics {
	return p.metrics
}
