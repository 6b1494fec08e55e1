package ember

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ParticleOptions is the fully resolved description of a single particle.
// Emitters build one per emission from their template plus variance; see
// [EmitterOptions]. A zero Lifetime defaults to 1000ms, a zero StartSize to
// 4px, and zero start/end opacity to fully opaque, so a zero-value options
// struct still produces a visible particle.
type ParticleOptions struct {
	Position     Vec2
	Velocity     Vec2 // px/sec
	Acceleration Vec2 // px/sec²

	// StartSize and EndSize bound the linear size interpolation over the
	// particle's lifetime. Size is the bounding dimension in pixels.
	StartSize float64
	EndSize   float64

	// StartOpacity and EndOpacity bound the opacity interpolation.
	// When FadeOut is set, the interpolation is compressed into the first
	// three quarters of the lifetime and the final quarter multiplies the
	// result down to exactly zero.
	StartOpacity float64
	EndOpacity   float64
	FadeOut      bool

	// Color tints the particle. Colors, when it has two or more entries,
	// takes precedence and is sampled as a gradient over the lifetime.
	Color  Color
	Colors []Color

	Rotation         float64 // degrees
	RotationVelocity float64 // degrees/sec

	Shape  Shape
	Sprite *ebiten.Image // required when Shape is ShapeSprite
	Blend  BlendMode

	Lifetime float64 // ms

	// OnEnd fires exactly once, on the update call that crosses Lifetime.
	OnEnd func(*Particle)
}

// Particle is a single simulated point. Particles are owned by their
// emitter; the exported fields are the live state mutated each tick and may
// be freely read (or pushed around) by host code between updates.
type Particle struct {
	Position     Vec2
	Velocity     Vec2
	Acceleration Vec2
	Rotation     float64
	Size         float64
	Opacity      float64
	Color        Color

	startSize        float64
	endSize          float64
	startOpacity     float64
	endOpacity       float64
	fadeOut          bool
	colors           []Color
	rotationVelocity float64
	shape            Shape
	sprite           *ebiten.Image
	blend            BlendMode

	age      float64
	lifetime float64
	active   bool
	onEnd    func(*Particle)
}

// NewParticle creates a particle from fully resolved options.
func NewParticle(opts ParticleOptions) *Particle {
	p := &Particle{}
	p.Reset(opts)
	return p
}

// Reset re-initializes the particle in place for pool reuse: all options
// are re-resolved, age returns to zero, and the particle becomes active.
func (p *Particle) Reset(opts ParticleOptions) {
	if opts.Lifetime <= 0 {
		opts.Lifetime = 1000
	}
	if opts.StartSize <= 0 {
		opts.StartSize = 4
	}
	if opts.StartOpacity == 0 && opts.EndOpacity == 0 {
		opts.StartOpacity = 1
		opts.EndOpacity = 1
	}
	if len(opts.Colors) < 2 && opts.Color.A == 0 {
		opts.Color = ColorWhite
	}

	p.Position = opts.Position
	p.Velocity = opts.Velocity
	p.Acceleration = opts.Acceleration
	p.Rotation = opts.Rotation
	p.rotationVelocity = opts.RotationVelocity

	p.startSize = opts.StartSize
	p.endSize = opts.EndSize
	p.Size = opts.StartSize

	p.startOpacity = opts.StartOpacity
	p.endOpacity = opts.EndOpacity
	p.fadeOut = opts.FadeOut
	p.Opacity = p.opacityAt(0)

	p.colors = opts.Colors
	if len(p.colors) >= 2 {
		p.Color = p.colors[0]
	} else {
		p.Color = opts.Color
	}

	p.shape = opts.Shape
	p.sprite = opts.Sprite
	p.blend = opts.Blend

	p.age = 0
	p.lifetime = opts.Lifetime
	p.active = true
	p.onEnd = opts.OnEnd
}

// Active reports whether the particle's age is still below its lifetime.
func (p *Particle) Active() bool { return p.active }

// Age returns the particle's age in ms. Age keeps growing after expiry.
func (p *Particle) Age() float64 { return p.age }

// Lifetime returns the particle's total lifetime in ms.
func (p *Particle) Lifetime() float64 { return p.lifetime }

// Progress returns the normalized lifetime progress in [0, 1].
func (p *Particle) Progress() float64 {
	return Clamp(p.age/p.lifetime, 0, 1)
}

// Update advances physics and visual interpolation by dt milliseconds.
// It returns false on the first call where age crosses the lifetime,
// firing OnEnd exactly once at that moment, and never returns true again.
func (p *Particle) Update(dt float64) bool {
	p.age += dt
	if p.age >= p.lifetime {
		if p.active {
			p.active = false
			// Leave the visuals at their terminal values so an end-of-life
			// read sees progress 1 (opacity exactly 0 under FadeOut).
			p.applyVisuals(1)
			if p.onEnd != nil {
				cb := p.onEnd
				p.onEnd = nil
				cb(p)
			}
		}
		return false
	}

	secs := dt / 1000
	p.Velocity = p.Velocity.Add(p.Acceleration.Scale(secs))
	p.Position = p.Position.Add(p.Velocity.Scale(secs))
	p.Rotation += p.rotationVelocity * secs

	p.applyVisuals(p.age / p.lifetime)
	return true
}

// applyVisuals recomputes size, opacity, and color for progress t. These
// are pure functions of t, never integrated, so they carry no accumulation
// error across ticks.
func (p *Particle) applyVisuals(t float64) {
	p.Size = Lerp(p.startSize, p.endSize, t)
	p.Opacity = p.opacityAt(t)
	if len(p.colors) >= 2 {
		p.Color = GradientAt(p.colors, t)
	}
}

// opacityAt returns the opacity for lifetime progress t. Without FadeOut
// this is a plain start→end lerp. With FadeOut the start→end interpolation
// is rescaled into [0, 0.75] and the final quarter multiplies the
// interpolated value down to zero, reaching exactly 0 at t = 1.
func (p *Particle) opacityAt(t float64) float64 {
	if !p.fadeOut {
		return Lerp(p.startOpacity, p.endOpacity, t)
	}
	o := Lerp(p.startOpacity, p.endOpacity, Clamp(t/0.75, 0, 1))
	if t > 0.75 {
		o *= (1 - t) / 0.25
	}
	return o
}

// Draw renders the particle onto dst. It is a no-op while the particle is
// inactive or fully transparent.
func (p *Particle) Draw(dst *ebiten.Image) {
	if !p.active || p.Opacity <= 0 {
		return
	}

	img := p.sprite
	if p.shape != ShapeSprite {
		img = shapeImage(p.shape)
	}
	if img == nil {
		return
	}

	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())
	s := p.Size / math.Max(w, h)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(s, s)
	op.GeoM.Rotate(p.Rotation * math.Pi / 180)
	op.GeoM.Translate(p.Position.X, p.Position.Y)
	op.ColorScale.Scale(float32(p.Color.R), float32(p.Color.G), float32(p.Color.B), 1)
	op.ColorScale.ScaleAlpha(float32(p.Opacity * p.Color.A))
	op.Blend = p.blend.EbitenBlend()
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// shapeBaseSize is the rasterized size of the cached shape textures.
// Particles scale them to Size at draw time.
const shapeBaseSize = 32

// Cached white shape textures, rasterized lazily on first draw so that
// pure-simulation use never touches the GPU.
var shapeImages [3]*ebiten.Image

func shapeImage(s Shape) *ebiten.Image {
	if int(s) >= len(shapeImages) {
		return nil
	}
	if shapeImages[s] == nil {
		shapeImages[s] = rasterizeShape(s)
	}
	return shapeImages[s]
}

func rasterizeShape(s Shape) *ebiten.Image {
	img := ebiten.NewImage(shapeBaseSize, shapeBaseSize)
	const half = float32(shapeBaseSize) / 2
	switch s {
	case ShapeCircle:
		vector.DrawFilledCircle(img, half, half, half, ColorWhite.toRGBA(), true)
	case ShapeSquare:
		img.Fill(ColorWhite.toRGBA())
	case ShapeTriangle:
		var path vector.Path
		path.MoveTo(half, 0)
		path.LineTo(shapeBaseSize, shapeBaseSize)
		path.LineTo(0, shapeBaseSize)
		path.Close()
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		for i := range vs {
			vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = 1, 1, 1, 1
		}
		img.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{})
	}
	return img
}

var whitePixelImage *ebiten.Image

// whitePixel returns a shared 1×1 white image used as the triangle fill
// source. No sync: ember is single-threaded.
func whitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(ColorWhite.toRGBA())
	}
	return whitePixelImage
}
