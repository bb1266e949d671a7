package bloch

// AzimuthMode selects how SetFromVector recovers the azimuth.
type AzimuthMode int

const (
	// AzimuthAtan2 uses a two-argument arctangent and is correct in all
	// four quadrants.
	AzimuthAtan2 AzimuthMode = iota
	// AzimuthLegacyAtan reproduces atan(x / -z), which folds azimuths in
	// (π/2, 3π/2) onto the opposite half of the sphere and yields NaN
	// when x and z are both zero.
	AzimuthLegacyAtan
)

func (m AzimuthMode) String() string {
	switch m {
	case AzimuthLegacyAtan:
		return "legacy-atan"
	default:
		return "atan2"
	}
}

type Config struct {
	AzimuthMode AzimuthMode
	// PoleTolerance is the distance from θ = 0 or θ = π inside which the
	// azimuth is treated as undefined.
	PoleTolerance float64
	Scene         SceneStyle
}

func NewConfig() *Config {
	return &Config{
		AzimuthMode:   AzimuthAtan2,
		PoleTolerance: 1e-9,
		Scene:         NewSceneStyle(),
	}
}
