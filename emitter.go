package ember

import "github.com/hajimehoshi/ebiten/v2"

// EmitterOptions controls how an [Emitter] spawns particles.
type EmitterOptions struct {
	// Position is the emitter's origin. Particle.Position in the template
	// is an offset from it.
	Position Vec2

	// EmissionRate is the continuous spawn rate in particles per second.
	// Non-integer rates are honored exactly over time via a fractional
	// accumulator.
	EmissionRate float64

	// BurstCount particles are emitted immediately on Start (and again on
	// every loop restart when Loop is set).
	BurstCount int

	// MaxParticles caps the live particle count; 0 means unlimited.
	// Emission past the cap is silently refused.
	MaxParticles int

	// Duration stops emission after this many ms; 0 runs forever. With
	// Loop, the emitter instead resets its age and re-bursts.
	Duration float64
	Loop     bool

	// Particle is the immutable template each emission resolves variance
	// against. The template itself is never aliased by live particles.
	Particle ParticleOptions

	// PositionVariance and VelocityVariance offset each emitted particle
	// uniformly within ±variance per axis.
	PositionVariance Vec2
	VelocityVariance Vec2

	// SizeVariance and LifetimeVariance scale the template value by an
	// independent random factor in [1−v, 1+v] per particle.
	SizeVariance     float64
	LifetimeVariance float64

	// ColorVariance jitters each RGB channel of the resolved color(s) by
	// a uniform offset in ±v, clamped to [0, 1].
	ColorVariance float64
}

// Emitter owns a pool of particles and converts an emission rate or burst
// count into particle creation events per tick. Emitters are driven by a
// [System] or directly by a host calling Update and Draw once per frame.
type Emitter struct {
	// Position may be moved between ticks; newly emitted particles spawn
	// relative to the current value.
	Position Vec2

	opts         EmitterOptions
	started      bool
	age          float64
	accumulator  float64
	particles    []*Particle
	free         []*Particle
	totalEmitted int
}

// NewEmitter creates an inert emitter. Call Start to begin emitting.
func NewEmitter(opts EmitterOptions) *Emitter {
	return &Emitter{Position: opts.Position, opts: opts}
}

// Options returns a pointer to the emitter's options for live tuning.
// Changes apply to subsequent emissions only.
func (e *Emitter) Options() *EmitterOptions {
	return &e.opts
}

// Start activates the emitter, resetting its age, and fires the initial
// burst when BurstCount is set. A pure-burst emitter (no emission rate, no
// loop) has nothing left to emit afterwards and immediately returns to the
// stopped state, so IsActive tracks only its draining particles.
func (e *Emitter) Start() {
	e.started = true
	e.age = 0
	e.accumulator = 0
	if e.opts.BurstCount > 0 {
		e.Burst(e.opts.BurstCount)
	}
	if e.opts.EmissionRate <= 0 && !e.opts.Loop {
		e.started = false
	}
}

// Stop halts emission. Live particles continue until they expire; keep
// calling Update and Draw until IsActive reports false to avoid visually
// truncating them.
func (e *Emitter) Stop() {
	e.started = false
}

// IsActive reports whether the emitter is started or any particle remains
// live.
func (e *Emitter) IsActive() bool {
	return e.started || len(e.particles) > 0
}

// AliveCount returns the number of live particles.
func (e *Emitter) AliveCount() int {
	return len(e.particles)
}

// TotalEmitted returns the number of particles emitted since creation.
func (e *Emitter) TotalEmitted() int {
	return e.totalEmitted
}

// Particles exposes the live particle list for inspection. The slice is
// owned by the emitter and only valid until the next Update.
func (e *Emitter) Particles() []*Particle {
	return e.particles
}

// Burst immediately attempts to emit n particles, respecting MaxParticles.
func (e *Emitter) Burst(n int) {
	for i := 0; i < n; i++ {
		e.emitParticle()
	}
}

// Update advances the emitter by dt milliseconds: age and duration
// bookkeeping first, then the particles that existed at tick entry are
// updated and the expired ones recycled, and finally loop re-bursts and
// continuous emission append new particles. Particles created during a
// tick start aging on the next tick.
func (e *Emitter) Update(dt float64) {
	loopRestart := false
	if e.started {
		e.age += dt
		if e.opts.Duration > 0 && e.age >= e.opts.Duration {
			if e.opts.Loop {
				e.age = 0
				loopRestart = true
			} else {
				e.started = false
			}
		}
	}

	// Update pre-existing particles, compacting out the expired ones in
	// order so draw order stays stable.
	n := 0
	for _, p := range e.particles {
		if p.Update(dt) {
			e.particles[n] = p
			n++
		} else {
			e.free = append(e.free, p)
		}
	}
	clear(e.particles[n:])
	e.particles = e.particles[:n]

	if loopRestart && e.opts.BurstCount > 0 {
		e.Burst(e.opts.BurstCount)
	}
	if e.started && e.opts.EmissionRate > 0 {
		e.accumulator += e.opts.EmissionRate * dt / 1000
		for e.accumulator >= 1 {
			e.accumulator--
			e.emitParticle()
		}
	}
}

// Draw renders all live particles onto dst.
func (e *Emitter) Draw(dst *ebiten.Image) {
	for _, p := range e.particles {
		p.Draw(dst)
	}
}

// emitParticle resolves variance against the template and activates one
// particle, recycling an expired one when possible. Emission past the
// MaxParticles cap is silently dropped.
func (e *Emitter) emitParticle() {
	if e.opts.MaxParticles > 0 && len(e.particles) >= e.opts.MaxParticles {
		return
	}
	resolved := resolveParticleOptions(&e.opts, e.Position)
	var p *Particle
	if n := len(e.free); n > 0 {
		p = e.free[n-1]
		e.free[n-1] = nil
		e.free = e.free[:n-1]
		p.Reset(resolved)
	} else {
		p = NewParticle(resolved)
	}
	e.particles = append(e.particles, p)
	e.totalEmitted++
}

// resolveParticleOptions returns a fresh options value with all variance
// applied, rolled once at emission time. The emitter template is never
// mutated or aliased.
func resolveParticleOptions(opts *EmitterOptions, origin Vec2) ParticleOptions {
	out := opts.Particle

	out.Position = Vec2{
		X: origin.X + out.Position.X + randRange(-opts.PositionVariance.X, opts.PositionVariance.X),
		Y: origin.Y + out.Position.Y + randRange(-opts.PositionVariance.Y, opts.PositionVariance.Y),
	}
	out.Velocity = Vec2{
		X: out.Velocity.X + randRange(-opts.VelocityVariance.X, opts.VelocityVariance.X),
		Y: out.Velocity.Y + randRange(-opts.VelocityVariance.Y, opts.VelocityVariance.Y),
	}
	if v := opts.SizeVariance; v > 0 {
		f := randRange(1-v, 1+v)
		out.StartSize *= f
		out.EndSize *= f
	}
	if v := opts.LifetimeVariance; v > 0 {
		out.Lifetime *= randRange(1-v, 1+v)
	}
	if v := opts.ColorVariance; v > 0 {
		if len(out.Colors) >= 2 {
			jittered := make([]Color, len(out.Colors))
			for i, c := range out.Colors {
				jittered[i] = jitterColor(c, v)
			}
			out.Colors = jittered
		} else {
			out.Color = jitterColor(out.Color, v)
		}
	}
	return out
}

// jitterColor offsets each RGB channel by a uniform random value in ±v.
func jitterColor(c Color, v float64) Color {
	return Color{
		R: Clamp(c.R+randRange(-v, v), 0, 1),
		G: Clamp(c.G+randRange(-v, v), 0, 1),
		B: Clamp(c.B+randRange(-v, v), 0, 1),
		A: c.A,
	}
}
