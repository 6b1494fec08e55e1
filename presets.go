package ember

// PresetOptions are the high-level inputs a preset factory turns into a
// complete [EmitterOptions].
type PresetOptions struct {
	// Position is where the effect plays.
	Position Vec2

	// Colors overrides the preset's default palette. A single entry tints
	// uniformly; two or more become a lifetime gradient.
	Colors []Color

	// Scale multiplies every size, velocity, rate, and particle-count
	// field of the preset uniformly. Zero means 1.
	Scale float64
}

// PresetFunc builds a fully parameterized emitter configuration from a few
// high-level inputs. Preset factories are pure functions.
type PresetFunc func(PresetOptions) EmitterOptions

// norm fills in the Scale default.
func (o PresetOptions) norm() PresetOptions {
	if o.Scale == 0 {
		o.Scale = 1
	}
	return o
}

// colorsOr returns the caller's palette, or the preset default.
func (o PresetOptions) colorsOr(def ...string) []Color {
	if len(o.Colors) > 0 {
		return o.Colors
	}
	colors := make([]Color, len(def))
	for i, s := range def {
		colors[i] = ParseColor(s)
	}
	return colors
}

// applyPalette writes a palette onto a particle template: one entry tints
// uniformly, several form a gradient.
func applyPalette(p *ParticleOptions, colors []Color) {
	if len(colors) == 1 {
		p.Color = colors[0]
		p.Colors = nil
		return
	}
	p.Colors = colors
}

func registerBuiltinPresets(s *System) {
	s.RegisterPreset("explosion", presetExplosion)
	s.RegisterPreset("confetti", presetConfetti)
	s.RegisterPreset("sparkles", presetSparkles)
	s.RegisterPreset("fire", presetFire)
	s.RegisterPreset("smoke", presetSmoke)
	s.RegisterPreset("rain", presetRain)
}

// presetExplosion is a single radial burst of additive-blended fragments:
// 30×scale particles, 800ms lifetime ±20%, velocity variance 400×scale on
// both axes.
func presetExplosion(o PresetOptions) EmitterOptions {
	o = o.norm()
	k := o.Scale
	p := ParticleOptions{
		StartSize:    6 * k,
		EndSize:      1 * k,
		StartOpacity: 1,
		EndOpacity:   0.6,
		FadeOut:      true,
		Lifetime:     800,
		Blend:        BlendAdditive,
		Shape:        ShapeCircle,
	}
	applyPalette(&p, o.colorsOr("#ff6622", "#ffcc33", "#fff8d0"))
	return EmitterOptions{
		Position:         o.Position,
		BurstCount:       int(30 * k),
		MaxParticles:     int(30 * k),
		Duration:         0,
		Particle:         p,
		VelocityVariance: Vec2{400 * k, 400 * k},
		SizeVariance:     0.3,
		LifetimeVariance: 0.2,
	}
}

// presetConfetti throws a burst of tumbling squares that fall under
// gravity.
func presetConfetti(o PresetOptions) EmitterOptions {
	o = o.norm()
	k := o.Scale
	p := ParticleOptions{
		Velocity:         Vec2{0, -260 * k},
		Acceleration:     Vec2{0, 480 * k},
		StartSize:        7 * k,
		EndSize:          7 * k,
		StartOpacity:     1,
		EndOpacity:       1,
		FadeOut:          true,
		Lifetime:         2200,
		RotationVelocity: 540,
		Shape:            ShapeSquare,
	}
	applyPalette(&p, o.colorsOr("#ff4466", "#ffcc33", "#44cc88", "#4488ff", "#cc66ff"))
	return EmitterOptions{
		Position:         o.Position,
		BurstCount:       int(40 * k),
		MaxParticles:     int(40 * k),
		Duration:         0,
		Particle:         p,
		PositionVariance: Vec2{20 * k, 4 * k},
		VelocityVariance: Vec2{180 * k, 120 * k},
		SizeVariance:     0.4,
		LifetimeVariance: 0.25,
		ColorVariance:    0.08,
	}
}

// presetSparkles twinkles continuously around a point until stopped.
func presetSparkles(o PresetOptions) EmitterOptions {
	o = o.norm()
	k := o.Scale
	p := ParticleOptions{
		Velocity:     Vec2{0, -20 * k},
		StartSize:    4 * k,
		EndSize:      1 * k,
		StartOpacity: 1,
		EndOpacity:   0.3,
		FadeOut:      true,
		Lifetime:     600,
		Blend:        BlendAdditive,
		Shape:        ShapeCircle,
	}
	applyPalette(&p, o.colorsOr("#ffffff", "#ffe9a0"))
	return EmitterOptions{
		Position:         o.Position,
		EmissionRate:     24 * k,
		MaxParticles:     int(60 * k),
		Duration:         0,
		Particle:         p,
		PositionVariance: Vec2{26 * k, 26 * k},
		VelocityVariance: Vec2{14 * k, 14 * k},
		SizeVariance:     0.5,
		LifetimeVariance: 0.3,
	}
}

// presetFire is a continuous upward plume fading through a hot-to-dark
// gradient.
func presetFire(o PresetOptions) EmitterOptions {
	o = o.norm()
	k := o.Scale
	p := ParticleOptions{
		Velocity:     Vec2{0, -90 * k},
		Acceleration: Vec2{0, -30 * k},
		StartSize:    12 * k,
		EndSize:      2 * k,
		StartOpacity: 0.9,
		EndOpacity:   0,
		Lifetime:     900,
		Blend:        BlendAdditive,
		Shape:        ShapeCircle,
	}
	applyPalette(&p, o.colorsOr("#fff1a8", "#ff9a22", "#e83a10", "#40100a"))
	return EmitterOptions{
		Position:         o.Position,
		EmissionRate:     60 * k,
		MaxParticles:     int(120 * k),
		Duration:         0,
		Particle:         p,
		PositionVariance: Vec2{10 * k, 4 * k},
		VelocityVariance: Vec2{26 * k, 22 * k},
		SizeVariance:     0.35,
		LifetimeVariance: 0.3,
	}
}

// presetSmoke drifts slow, growing puffs that thin out as they rise.
func presetSmoke(o PresetOptions) EmitterOptions {
	o = o.norm()
	k := o.Scale
	p := ParticleOptions{
		Velocity:     Vec2{0, -45 * k},
		StartSize:    8 * k,
		EndSize:      26 * k,
		StartOpacity: 0.45,
		EndOpacity:   0,
		Lifetime:     2000,
		Shape:        ShapeCircle,
	}
	applyPalette(&p, o.colorsOr("#6b6b6b", "#3a3a3a"))
	return EmitterOptions{
		Position:         o.Position,
		EmissionRate:     15 * k,
		MaxParticles:     int(60 * k),
		Duration:         0,
		Particle:         p,
		PositionVariance: Vec2{8 * k, 3 * k},
		VelocityVariance: Vec2{16 * k, 10 * k},
		SizeVariance:     0.3,
		LifetimeVariance: 0.25,
	}
}

// presetRain streaks thin drops straight down across a wide band above the
// emitter position.
func presetRain(o PresetOptions) EmitterOptions {
	o = o.norm()
	k := o.Scale
	p := ParticleOptions{
		Velocity:     Vec2{0, 420 * k},
		StartSize:    3 * k,
		EndSize:      3 * k,
		StartOpacity: 0.35,
		EndOpacity:   0.35,
		Lifetime:     1200,
		Shape:        ShapeSquare,
	}
	applyPalette(&p, o.colorsOr("#9db8d6"))
	return EmitterOptions{
		Position:         o.Position,
		EmissionRate:     120 * k,
		MaxParticles:     int(240 * k),
		Duration:         0,
		Particle:         p,
		PositionVariance: Vec2{320 * k, 6 * k},
		VelocityVariance: Vec2{20 * k, 60 * k},
		LifetimeVariance: 0.15,
	}
}
