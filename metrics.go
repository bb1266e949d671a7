package bloch

import (
	"sync"
	"time"
)

// Metrics counts what a Presenter has done with its state.
type Metrics struct {
	mu            sync.RWMutex
	Redraws       int64
	Drags         int64
	IgnoredDrags  int64
	AngleUpdates  int64
	PoleRedraws   int64
	LastRedraw    time.Time
	TotalDrawTime time.Duration
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) recordRedraw(startTime time.Time, azimuthDefined bool) {
	duration := time.Since(startTime)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.Redraws++
	m.TotalDrawTime += duration
	m.LastRedraw = time.Now()

	if !azimuthDefined {
		m.PoleRedraws++
	}
}

func (m *Metrics) recordDrag(ignored bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Drags++
	if ignored {
		m.IgnoredDrags++
	}
}

func (m *Metrics) recordAngleUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.AngleUpdates++
}

func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var avg time.Duration
	if m.Redraws > 0 {
		avg = m.TotalDrawTime / time.Duration(m.Redraws)
	}

	return map[string]interface{}{
		"redraws":        m.Redraws,
		"drags":          m.Drags,
		"ignored_drags":  m.IgnoredDrags,
		"angle_updates":  m.AngleUpdates,
		"pole_redraws":   m.PoleRedraws,
		"avg_draw_micro": avg.Microseconds(),
	}
}
