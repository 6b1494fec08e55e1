package ember

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// presetSpec is the YAML shape of one preset. All fields are optional;
// zero values inherit the particle defaults. Durations and lifetimes are
// in ms, rates and velocities per second.
type presetSpec struct {
	Rate     float64 `yaml:"rate"`
	Burst    int     `yaml:"burst"`
	Max      int     `yaml:"max"`
	Duration float64 `yaml:"duration"`
	Loop     bool    `yaml:"loop"`

	Lifetime     float64    `yaml:"lifetime"`
	Velocity     [2]float64 `yaml:"velocity"`
	Acceleration [2]float64 `yaml:"acceleration"`
	SizeStart    float64    `yaml:"size_start"`
	SizeEnd      float64    `yaml:"size_end"`
	OpacityStart float64    `yaml:"opacity_start"`
	OpacityEnd   float64    `yaml:"opacity_end"`
	FadeOut      bool       `yaml:"fade_out"`
	Colors       []string   `yaml:"colors"`
	Shape        string     `yaml:"shape"`
	Blend        string     `yaml:"blend"`
	Spin         float64    `yaml:"spin"` // rotation velocity, deg/sec

	PositionVariance [2]float64 `yaml:"position_variance"`
	VelocityVariance [2]float64 `yaml:"velocity_variance"`
	SizeVariance     float64    `yaml:"size_variance"`
	LifetimeVariance float64    `yaml:"lifetime_variance"`
	ColorVariance    float64    `yaml:"color_variance"`
}

// PresetsFromYAML parses a preset pack: a mapping from preset name to
// emitter fields, for example
//
//	embers:
//	  rate: 40
//	  max: 80
//	  lifetime: 1200
//	  velocity: [0, -60]
//	  size_start: 5
//	  size_end: 1
//	  fade_out: true
//	  colors: ["#ff8800", "#662200"]
//	  blend: additive
//
// Each parsed preset is a factory whose Position, Colors, and Scale inputs
// behave exactly like the built-ins: Scale multiplies every size,
// velocity, rate, and particle-count field uniformly.
func PresetsFromYAML(data []byte) (map[string]PresetFunc, error) {
	var specs map[string]presetSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	presets := make(map[string]PresetFunc, len(specs))
	for name, spec := range specs {
		shape, err := parseShape(spec.Shape)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		blend, err := parseBlend(spec.Blend)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		presets[name] = specPreset(spec, shape, blend)
	}
	return presets, nil
}

// specPreset turns a parsed spec into a preset factory.
func specPreset(spec presetSpec, shape Shape, blend BlendMode) PresetFunc {
	defaults := make([]Color, len(spec.Colors))
	for i, s := range spec.Colors {
		defaults[i] = ParseColor(s)
	}
	return func(o PresetOptions) EmitterOptions {
		o = o.norm()
		k := o.Scale
		p := ParticleOptions{
			Velocity:         Vec2{spec.Velocity[0] * k, spec.Velocity[1] * k},
			Acceleration:     Vec2{spec.Acceleration[0] * k, spec.Acceleration[1] * k},
			StartSize:        spec.SizeStart * k,
			EndSize:          spec.SizeEnd * k,
			StartOpacity:     spec.OpacityStart,
			EndOpacity:       spec.OpacityEnd,
			FadeOut:          spec.FadeOut,
			Lifetime:         spec.Lifetime,
			RotationVelocity: spec.Spin,
			Shape:            shape,
			Blend:            blend,
		}
		colors := o.Colors
		if len(colors) == 0 {
			colors = defaults
		}
		if len(colors) > 0 {
			applyPalette(&p, colors)
		}
		return EmitterOptions{
			Position:         o.Position,
			EmissionRate:     spec.Rate * k,
			BurstCount:       int(float64(spec.Burst) * k),
			MaxParticles:     int(float64(spec.Max) * k),
			Duration:         spec.Duration,
			Loop:             spec.Loop,
			Particle:         p,
			PositionVariance: Vec2{spec.PositionVariance[0] * k, spec.PositionVariance[1] * k},
			VelocityVariance: Vec2{spec.VelocityVariance[0] * k, spec.VelocityVariance[1] * k},
			SizeVariance:     spec.SizeVariance,
			LifetimeVariance: spec.LifetimeVariance,
			ColorVariance:    spec.ColorVariance,
		}
	}
}

func parseShape(s string) (Shape, error) {
	switch s {
	case "", "circle":
		return ShapeCircle, nil
	case "square":
		return ShapeSquare, nil
	case "triangle":
		return ShapeTriangle, nil
	default:
		return 0, fmt.Errorf("unknown shape %q", s)
	}
}

func parseBlend(s string) (BlendMode, error) {
	switch s {
	case "", "normal":
		return BlendNormal, nil
	case "additive":
		return BlendAdditive, nil
	case "multiply":
		return BlendMultiply, nil
	case "screen":
		return BlendScreen, nil
	default:
		return 0, fmt.Errorf("unknown blend mode %q", s)
	}
}
