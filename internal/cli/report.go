package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/theapemachine/bloch"
)

type amplitude struct {
	Real      float64 `yaml:"real" json:"real"`
	Imaginary float64 `yaml:"imaginary" json:"imaginary"`
	Magnitude float64 `yaml:"magnitude" json:"magnitude"`
}

type vector struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

// report is the document printed by every subcommand.
type report struct {
	Mode           string    `yaml:"mode" json:"mode"`
	Units          string    `yaml:"units" json:"units"`
	Inclination    float64   `yaml:"inclination" json:"inclination"`
	Azimuth        float64   `yaml:"azimuth" json:"azimuth"`
	AzimuthDefined bool      `yaml:"azimuth_defined" json:"azimuth_defined"`
	Vector         vector    `yaml:"vector" json:"vector"`
	Amplitude0     amplitude `yaml:"amplitude0" json:"amplitude0"`
	Amplitude1     amplitude `yaml:"amplitude1" json:"amplitude1"`
	Probability0   float64   `yaml:"probability0" json:"probability0"`
	Probability1   float64   `yaml:"probability1" json:"probability1"`
}

func newReport(qs *bloch.QubitState, mode bloch.AzimuthMode, degrees bool) report {
	theta, phi := qs.Angles()
	units := "radians"
	if degrees {
		theta, phi = toDegrees(theta), toDegrees(phi)
		units = "degrees"
	}

	v := qs.Vector()

	return report{
		Mode:           mode.String(),
		Units:          units,
		Inclination:    theta,
		Azimuth:        phi,
		AzimuthDefined: qs.AzimuthDefined(),
		Vector:         vector{X: v.X, Y: v.Y, Z: v.Z},
		Amplitude0:     newAmplitude(qs.Amplitude0()),
		Amplitude1:     newAmplitude(qs.Amplitude1()),
		Probability0:   qs.Probability0(),
		Probability1:   qs.Probability1(),
	}
}

func newAmplitude(c bloch.ComplexNumber) amplitude {
	return amplitude{Real: c.Real, Imaginary: c.Imaginary, Magnitude: c.Magnitude()}
}

func writeReport(w io.Writer, format string, r report) error {
	switch format {
	case "yaml", "":
		data, err := yaml.Marshal(&r)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		return fmt.Errorf("unknown output format %q: valid values are yaml, json", format)
	}
}
