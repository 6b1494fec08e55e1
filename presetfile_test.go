package ember

import "testing"

const testPresetYAML = `
embers:
  rate: 40
  max: 80
  lifetime: 1200
  velocity: [0, -60]
  acceleration: [0, -10]
  size_start: 5
  size_end: 1
  opacity_start: 1
  fade_out: true
  colors: ["#ff8800", "#662200"]
  blend: additive
  velocity_variance: [15, 10]
  lifetime_variance: 0.3
drip:
  burst: 6
  lifetime: 400
  shape: square
  spin: 180
`

func TestPresetsFromYAML(t *testing.T) {
	presets, err := PresetsFromYAML([]byte(testPresetYAML))
	if err != nil {
		t.Fatal(err)
	}
	if len(presets) != 2 {
		t.Fatalf("parsed %d presets, want 2", len(presets))
	}

	opts := presets["embers"](PresetOptions{Position: Vec2{10, 20}})
	assertNear(t, "rate", opts.EmissionRate, 40)
	if opts.MaxParticles != 80 {
		t.Errorf("max = %d, want 80", opts.MaxParticles)
	}
	assertNear(t, "lifetime", opts.Particle.Lifetime, 1200)
	assertNear(t, "velocity.Y", opts.Particle.Velocity.Y, -60)
	assertNear(t, "size start", opts.Particle.StartSize, 5)
	if !opts.Particle.FadeOut {
		t.Error("fade_out not applied")
	}
	if opts.Particle.Blend != BlendAdditive {
		t.Error("blend not applied")
	}
	if len(opts.Particle.Colors) != 2 {
		t.Fatalf("colors = %d, want gradient of 2", len(opts.Particle.Colors))
	}
	assertNear(t, "position.X", opts.Position.X, 10)

	drip := presets["drip"](PresetOptions{})
	if drip.BurstCount != 6 {
		t.Errorf("burst = %d, want 6", drip.BurstCount)
	}
	if drip.Particle.Shape != ShapeSquare {
		t.Error("shape not applied")
	}
	assertNear(t, "spin", drip.Particle.RotationVelocity, 180)
}

func TestYAMLPresetScalesUniformly(t *testing.T) {
	presets, err := PresetsFromYAML([]byte(testPresetYAML))
	if err != nil {
		t.Fatal(err)
	}
	opts := presets["embers"](PresetOptions{Scale: 2})
	assertNear(t, "scaled rate", opts.EmissionRate, 80)
	if opts.MaxParticles != 160 {
		t.Errorf("scaled max = %d, want 160", opts.MaxParticles)
	}
	assertNear(t, "scaled velocity", opts.Particle.Velocity.Y, -120)
	assertNear(t, "scaled size", opts.Particle.StartSize, 10)
	// Time-domain fields stay fixed.
	assertNear(t, "lifetime", opts.Particle.Lifetime, 1200)
}

func TestYAMLPresetColorOverride(t *testing.T) {
	presets, err := PresetsFromYAML([]byte(testPresetYAML))
	if err != nil {
		t.Fatal(err)
	}
	red := ParseColor("#ff0000")
	opts := presets["embers"](PresetOptions{Colors: []Color{red}})
	if opts.Particle.Color != red {
		t.Errorf("color override ignored, got %v", opts.Particle.Color)
	}
	if opts.Particle.Colors != nil {
		t.Error("single color override should clear the gradient")
	}
}

func TestPresetsFromYAMLErrors(t *testing.T) {
	if _, err := PresetsFromYAML([]byte("not: [valid")); err == nil {
		t.Error("malformed YAML should error")
	}
	if _, err := PresetsFromYAML([]byte("x:\n  shape: hexagon\n")); err == nil {
		t.Error("unknown shape should error")
	}
	if _, err := PresetsFromYAML([]byte("x:\n  blend: subtract\n")); err == nil {
		t.Error("unknown blend should error")
	}
}

func TestSystemRegistersYAMLPresets(t *testing.T) {
	s := NewSystem()
	presets, err := PresetsFromYAML([]byte(testPresetYAML))
	if err != nil {
		t.Fatal(err)
	}
	for name, factory := range presets {
		s.RegisterPreset(name, factory)
	}
	e := s.CreateEmitterFromPreset("fx", "embers", PresetOptions{})
	if e == nil {
		t.Fatal("YAML preset not usable through the system")
	}
	e.Start()
	e.Update(100)
	if e.AliveCount() == 0 {
		t.Error("YAML preset emitter produced no particles")
	}
}
