package ember

import "testing"

func testParticleOptions() ParticleOptions {
	return ParticleOptions{
		StartSize:    10,
		EndSize:      2,
		StartOpacity: 1,
		EndOpacity:   0,
		Lifetime:     1000,
	}
}

func TestParticleAgeMonotonic(t *testing.T) {
	p := NewParticle(testParticleOptions())
	prev := p.Age()
	for i := 0; i < 30; i++ {
		p.Update(100)
		if p.Age() <= prev {
			t.Fatalf("age did not increase: %f -> %f", prev, p.Age())
		}
		prev = p.Age()
	}
}

func TestParticleExpiresExactlyOnce(t *testing.T) {
	opts := testParticleOptions()
	ended := 0
	opts.OnEnd = func(*Particle) { ended++ }
	p := NewParticle(opts)

	for i := 0; i < 9; i++ {
		if !p.Update(100) {
			t.Fatalf("particle expired early at tick %d", i)
		}
	}
	// Tick 10 crosses age >= lifetime.
	if p.Update(100) {
		t.Fatal("Update returned true on the expiry tick")
	}
	if ended != 1 {
		t.Fatalf("OnEnd fired %d times, want 1", ended)
	}
	// Never true again, callback never refires.
	for i := 0; i < 5; i++ {
		if p.Update(100) {
			t.Fatal("Update returned true after expiry")
		}
	}
	if ended != 1 {
		t.Fatalf("OnEnd fired %d times after expiry, want 1", ended)
	}
	if p.Active() {
		t.Error("particle still active after expiry")
	}
}

func TestParticlePhysicsIntegration(t *testing.T) {
	opts := testParticleOptions()
	opts.Velocity = Vec2{100, 0}
	opts.Acceleration = Vec2{0, 200}
	opts.Lifetime = 10000
	p := NewParticle(opts)

	// 60 ticks of ~16.67ms = 1 second.
	for i := 0; i < 60; i++ {
		p.Update(1000.0 / 60.0)
	}
	// vy integrates to ~200 px/s after one second.
	assertNear(t, "vy", p.Velocity.Y, 200)
	assertNear(t, "vx", p.Velocity.X, 100)
	// x advances ~100px; y lags x (velocity built up over the second).
	if p.Position.X < 95 || p.Position.X > 105 {
		t.Errorf("x = %f, want ~100", p.Position.X)
	}
	if p.Position.Y <= 50 || p.Position.Y >= 150 {
		t.Errorf("y = %f, want ~100 (semi-implicit Euler)", p.Position.Y)
	}
}

func TestParticleSizeInterpolation(t *testing.T) {
	p := NewParticle(testParticleOptions())
	p.Update(500)
	assertNear(t, "size at half life", p.Size, 6)
}

func TestParticleRotationVelocity(t *testing.T) {
	opts := testParticleOptions()
	opts.Rotation = 10
	opts.RotationVelocity = 90 // deg/sec
	opts.Lifetime = 5000
	p := NewParticle(opts)
	p.Update(1000)
	assertNear(t, "rotation", p.Rotation, 100)
}

func TestParticleOpacityPlainLerp(t *testing.T) {
	p := NewParticle(testParticleOptions())
	p.Update(500)
	assertNear(t, "opacity at half life", p.Opacity, 0.5)
}

func TestParticleFadeOutBoundary(t *testing.T) {
	opts := testParticleOptions()
	opts.StartOpacity = 1
	opts.EndOpacity = 1
	opts.FadeOut = true
	p := NewParticle(opts)

	// Before the final quarter the compressed interpolation holds at 1.
	p.Update(740)
	assertNear(t, "opacity at progress 0.74", p.Opacity, 1)

	// Deep inside the final quarter the value has nearly faded out.
	p.Update(250) // progress 0.99
	assertNear(t, "opacity at progress 0.99", p.Opacity, 0.04)

	// At progress 1.0 the opacity is exactly 0.
	p.Update(10)
	if p.Opacity != 0 {
		t.Errorf("opacity at progress 1.0 = %v, want exactly 0", p.Opacity)
	}
}

func TestParticleFadeOutCompressesInterpolation(t *testing.T) {
	opts := testParticleOptions()
	opts.StartOpacity = 1
	opts.EndOpacity = 0
	opts.FadeOut = true
	p := NewParticle(opts)

	// The start→end lerp is rescaled into [0, 0.75]: at progress 0.375
	// the compressed curve reads lerp(1, 0, 0.5), not lerp(1, 0, 0.375).
	p.Update(375)
	assertNear(t, "compressed interpolation", p.Opacity, 0.5)
}

func TestParticleGradientColor(t *testing.T) {
	opts := testParticleOptions()
	opts.Colors = []Color{{1, 0, 0, 1}, {0, 0, 1, 1}}
	p := NewParticle(opts)

	if p.Color != opts.Colors[0] {
		t.Errorf("initial color = %v, want first stop", p.Color)
	}
	p.Update(500)
	assertNear(t, "mid R", p.Color.R, 0.5)
	assertNear(t, "mid B", p.Color.B, 0.5)
}

func TestParticleResetReuses(t *testing.T) {
	p := NewParticle(testParticleOptions())
	for p.Update(100) {
	}

	opts := testParticleOptions()
	opts.Position = Vec2{50, 60}
	p.Reset(opts)
	if !p.Active() {
		t.Fatal("reset particle not active")
	}
	if p.Age() != 0 {
		t.Errorf("age after reset = %f, want 0", p.Age())
	}
	assertNear(t, "position.X", p.Position.X, 50)
	assertNear(t, "size", p.Size, 10)
	if !p.Update(100) {
		t.Error("reset particle expired immediately")
	}
}

func TestParticleDefaults(t *testing.T) {
	p := NewParticle(ParticleOptions{})
	if p.Lifetime() != 1000 {
		t.Errorf("default lifetime = %f, want 1000", p.Lifetime())
	}
	assertNear(t, "default size", p.Size, 4)
	assertNear(t, "default opacity", p.Opacity, 1)
	if p.Color != ColorWhite {
		t.Errorf("default color = %v, want white", p.Color)
	}
}
