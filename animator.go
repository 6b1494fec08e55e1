package ember

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultFrameDuration is the per-frame duration used when a Frame leaves
// Duration unset, in ms.
const DefaultFrameDuration = 100

// Frame is one cell of a sprite animation.
type Frame struct {
	// Rect is the frame's source rectangle within the animation's sheet.
	Rect image.Rectangle
	// Duration in ms; zero or negative selects DefaultFrameDuration.
	Duration float64
	// Anchor is the rotation/scale pivot as a fraction of the frame size.
	// The zero value selects the center (0.5, 0.5).
	Anchor Vec2
}

// Animation is an ordered list of frames over one sprite sheet.
// PingPong takes precedence over Loop at sequence boundaries.
type Animation struct {
	Sheet    *ebiten.Image
	Frames   []Frame
	Loop     bool
	PingPong bool
}

// NewGridAnimation builds an Animation from a sheet laid out as a uniform
// grid of frameW×frameH cells. frames lists cell indices in row-major
// order; duration applies to every frame.
func NewGridAnimation(sheet *ebiten.Image, frameW, frameH int, frames []int, duration float64, loop, pingPong bool) *Animation {
	perRow := sheet.Bounds().Dx() / frameW
	list := make([]Frame, len(frames))
	for i, idx := range frames {
		x := (idx % perRow) * frameW
		y := (idx / perRow) * frameH
		list[i] = Frame{
			Rect:     image.Rect(x, y, x+frameW, y+frameH),
			Duration: duration,
		}
	}
	return &Animation{Sheet: sheet, Frames: list, Loop: loop, PingPong: pingPong}
}

// AnimatorDrawOptions control how [Animator.Draw] blits the current frame.
// Zero-value Scale and Alpha mean 1.
type AnimatorDrawOptions struct {
	Scale    float64
	Rotation float64 // degrees, around the frame anchor
	FlipX    bool
	FlipY    bool
	Alpha    float64
}

// Animator is a frame-sequencing state machine for one animated entity.
// It is driven by Update(dt) once per frame and holds a registry of named
// animations plus the current playback state.
type Animator struct {
	// OnComplete fires when a one-shot animation reaches its end.
	OnComplete func(id string)

	animations map[string]*Animation
	events     map[string]map[int]func(frame int)

	current   string
	frame     int
	frameTime float64
	dir       int
	playing   bool
}

// NewAnimator creates an empty Animator.
func NewAnimator() *Animator {
	return &Animator{
		animations: make(map[string]*Animation),
		events:     make(map[string]map[int]func(int)),
		dir:        1,
	}
}

// RegisterAnimation adds (or replaces) a named animation definition.
func (a *Animator) RegisterAnimation(id string, anim *Animation) {
	a.animations[id] = anim
}

// RegisterAnimations adds every animation in the map.
func (a *Animator) RegisterAnimations(anims map[string]*Animation) {
	for id, anim := range anims {
		a.RegisterAnimation(id, anim)
	}
}

// OnFrame registers a callback fired when frameIndex of animation id is
// departed, exactly once per visit, just before the frame index changes.
func (a *Animator) OnFrame(id string, frameIndex int, fn func(frame int)) {
	m := a.events[id]
	if m == nil {
		m = make(map[int]func(int))
		a.events[id] = m
	}
	m[frameIndex] = fn
}

// Play switches to the named animation. Replaying the animation that is
// already current is a no-op unless reset is true, so hosts can call Play
// every frame without restarting the sequence. Unknown ids warn and leave
// playback unchanged.
func (a *Animator) Play(id string, reset bool) {
	if _, ok := a.animations[id]; !ok {
		warnf("ember: unknown animation %q", id)
		return
	}
	if id == a.current && a.playing && !reset {
		return
	}
	a.current = id
	a.frame = 0
	a.frameTime = 0
	a.dir = 1
	a.playing = true
}

// Pause suspends playback, keeping the current frame position.
func (a *Animator) Pause() {
	a.playing = false
}

// Resume continues playback after a Pause. A no-op with no current
// animation.
func (a *Animator) Resume() {
	if a.current != "" {
		a.playing = true
	}
}

// Stop halts playback and resets to the first frame.
func (a *Animator) Stop() {
	a.playing = false
	a.frame = 0
	a.frameTime = 0
	a.dir = 1
}

// Playing reports whether an animation is advancing.
func (a *Animator) Playing() bool { return a.playing }

// Current returns the id of the current animation, or "".
func (a *Animator) Current() string { return a.current }

// CurrentFrame returns the current frame index within the current
// animation.
func (a *Animator) CurrentFrame() int { return a.frame }

// Update advances playback by dt milliseconds. At a frame boundary the
// behavior branches on PingPong (reverse direction at the ends), then Loop
// (wrap around), then one-shot (stop on the last frame and fire
// OnComplete).
func (a *Animator) Update(dt float64) {
	if !a.playing {
		return
	}
	anim := a.animations[a.current]
	if anim == nil || len(anim.Frames) == 0 {
		return
	}
	a.frameTime += dt
	for {
		d := anim.Frames[a.frame].Duration
		if d <= 0 {
			d = DefaultFrameDuration
		}
		if a.frameTime < d {
			return
		}
		a.frameTime -= d

		next, ok := a.nextFrame(anim)
		if !ok {
			a.playing = false
			a.frameTime = 0
			if a.OnComplete != nil {
				a.OnComplete(a.current)
			}
			return
		}
		if next != a.frame {
			a.fireFrameEvent(a.frame)
			a.frame = next
		}
	}
}

// nextFrame computes the frame index after the current one, updating the
// playback direction for ping-pong. ok is false when a one-shot animation
// has finished.
func (a *Animator) nextFrame(anim *Animation) (next int, ok bool) {
	n := len(anim.Frames)
	next = a.frame + a.dir
	if next >= 0 && next < n {
		return next, true
	}
	if anim.PingPong {
		a.dir = -a.dir
		next = a.frame + a.dir
		if next < 0 {
			next = 0
		}
		if next >= n {
			next = n - 1
		}
		return next, true
	}
	if anim.Loop {
		if a.dir > 0 {
			return 0, true
		}
		return n - 1, true
	}
	return a.frame, false
}

// fireFrameEvent invokes the departure callback for the given frame of the
// current animation, if registered.
func (a *Animator) fireFrameEvent(frame int) {
	if m := a.events[a.current]; m != nil {
		if fn := m[frame]; fn != nil {
			fn(frame)
		}
	}
}

// Draw blits the current frame at (x, y) using the frame's anchor as the
// rotation and scale pivot. A no-op with no current animation.
func (a *Animator) Draw(dst *ebiten.Image, x, y float64, opts AnimatorDrawOptions) {
	anim := a.animations[a.current]
	if anim == nil || anim.Sheet == nil || len(anim.Frames) == 0 {
		return
	}
	fr := anim.Frames[a.frame]
	sub := anim.Sheet.SubImage(fr.Rect).(*ebiten.Image)
	w := float64(fr.Rect.Dx())
	h := float64(fr.Rect.Dy())

	anchor := fr.Anchor
	if anchor == (Vec2{}) {
		anchor = Vec2{0.5, 0.5}
	}
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	alpha := opts.Alpha
	if alpha == 0 {
		alpha = 1
	}
	sx, sy := scale, scale
	if opts.FlipX {
		sx = -sx
	}
	if opts.FlipY {
		sy = -sy
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-anchor.X*w, -anchor.Y*h)
	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(opts.Rotation * math.Pi / 180)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(sub, op)
}
