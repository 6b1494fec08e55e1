package ember

import "time"

// TweenID is a handle for cancelling a scheduled tween.
type TweenID uint64

// TweenConfig controls a tween's timing and lifecycle.
type TweenConfig struct {
	// Duration of one cycle in ms. A non-positive duration completes on
	// the first update after the delay.
	Duration float64
	// Delay before interpolation begins, in ms. The target is not touched
	// during the delay window. Delay applies to the first cycle only.
	Delay float64
	// Easing selects one of the named curves (see easing.go). Empty or
	// unknown names fall back to linear.
	Easing string
	// Yoyo swaps from and to at each cycle end and resets timing instead
	// of terminating. A yoyo tween runs until StopTween.
	Yoyo bool
	// Repeat is the number of additional full cycles; −1 repeats forever.
	Repeat int
	// OnUpdate fires after the target values are written, every update.
	OnUpdate func()
	// OnComplete fires exactly once, when the tween (including all
	// repeat cycles) is fully done. Stopped tweens never fire it.
	OnComplete func()
}

// interpolator is the per-tween write strategy, chosen once at creation
// from the target's shape rather than re-detected every tick.
type interpolator interface {
	apply(t float64) // write values at eased progress t
	complete()       // write the exact end values
	swap()           // exchange from and to (yoyo)
}

type floatInterp struct {
	target   *float64
	from, to float64
}

func (i *floatInterp) apply(t float64) { *i.target = Lerp(i.from, i.to, t) }
func (i *floatInterp) complete()       { *i.target = i.to }
func (i *floatInterp) swap()           { i.from, i.to = i.to, i.from }

type vec2Interp struct {
	target   *Vec2
	from, to Vec2
}

func (i *vec2Interp) apply(t float64) {
	i.target.X = Lerp(i.from.X, i.to.X, t)
	i.target.Y = Lerp(i.from.Y, i.to.Y, t)
}
func (i *vec2Interp) complete() { *i.target = i.to }
func (i *vec2Interp) swap()     { i.from, i.to = i.to, i.from }

type valuesInterp struct {
	targets  map[string]*float64
	from, to map[string]float64
}

func (i *valuesInterp) apply(t float64) {
	for k, target := range i.targets {
		*target = Lerp(i.from[k], i.to[k], t)
	}
}
func (i *valuesInterp) complete() {
	for k, target := range i.targets {
		*target = i.to[k]
	}
}
func (i *valuesInterp) swap() { i.from, i.to = i.to, i.from }

// tweenState is one scheduled tween.
type tweenState struct {
	id       TweenID
	interp   interpolator
	duration float64
	delay    float64
	easing   EaseFunc
	yoyo     bool
	repeat   int
	started  time.Time
	elapsed  float64 // dt-accumulated, for external inspection

	onUpdate   func()
	onComplete func()
	done       bool
}

// Tweener schedules and advances many concurrent tweens. Cycle timing is
// measured against a wall clock for robustness under variable frame
// rates; Update(dt) only accumulates the Elapsed bookkeeping value.
type Tweener struct {
	tweens []*tweenState
	nextID TweenID

	// now is the clock; swapped for a synthetic one in tests.
	now func() time.Time
}

// NewTweener creates an empty Tweener using the system monotonic clock.
func NewTweener() *Tweener {
	return &Tweener{now: time.Now}
}

// TweenFloat schedules a tween writing the interpolated value onto
// *target each update.
func (w *Tweener) TweenFloat(target *float64, from, to float64, cfg TweenConfig) TweenID {
	return w.schedule(&floatInterp{target: target, from: from, to: to}, cfg)
}

// TweenVec2 schedules a tween interpolating both components of *target.
func (w *Tweener) TweenVec2(target *Vec2, from, to Vec2, cfg TweenConfig) TweenID {
	return w.schedule(&vec2Interp{target: target, from: from, to: to}, cfg)
}

// TweenValues schedules a tween over a generic flat set of named float
// fields. Every key of targets is interpolated from from[key] to to[key];
// missing keys read as zero.
func (w *Tweener) TweenValues(targets map[string]*float64, from, to map[string]float64, cfg TweenConfig) TweenID {
	return w.schedule(&valuesInterp{targets: targets, from: from, to: to}, cfg)
}

func (w *Tweener) schedule(interp interpolator, cfg TweenConfig) TweenID {
	easing, ok := EasingByName(cfg.Easing)
	if !ok && cfg.Easing != "" {
		debugf("ember: unknown easing %q, using linear", cfg.Easing)
	}
	w.nextID++
	tw := &tweenState{
		id:         w.nextID,
		interp:     interp,
		duration:   cfg.Duration,
		delay:      cfg.Delay,
		easing:     easing,
		yoyo:       cfg.Yoyo,
		repeat:     cfg.Repeat,
		started:    w.now(),
		onUpdate:   cfg.OnUpdate,
		onComplete: cfg.OnComplete,
	}
	w.tweens = append(w.tweens, tw)
	return tw.id
}

// StopTween removes a tween immediately without firing its completion
// callback. It reports whether the id was active.
func (w *Tweener) StopTween(id TweenID) bool {
	for _, tw := range w.tweens {
		if tw.id == id && !tw.done {
			tw.done = true
			return true
		}
	}
	return false
}

// ActiveCount returns the number of scheduled tweens, including those
// still inside their delay window.
func (w *Tweener) ActiveCount() int {
	return len(w.tweens)
}

// Elapsed returns the dt-accumulated time a tween has been scheduled, in
// ms. ok is false for unknown or finished ids.
func (w *Tweener) Elapsed(id TweenID) (elapsed float64, ok bool) {
	for _, tw := range w.tweens {
		if tw.id == id && !tw.done {
			return tw.elapsed, true
		}
	}
	return 0, false
}

// Update advances all active tweens once. Tweens scheduled from inside a
// callback are picked up on the next update.
func (w *Tweener) Update(dt float64) {
	now := w.now()
	n := len(w.tweens)
	for _, tw := range w.tweens[:n] {
		if tw.done {
			continue
		}
		w.step(tw, now, dt)
	}

	// Compact out finished tweens.
	kept := w.tweens[:0]
	for _, tw := range w.tweens {
		if !tw.done {
			kept = append(kept, tw)
		}
	}
	clear(w.tweens[len(kept):])
	w.tweens = kept
}

func (w *Tweener) step(tw *tweenState, now time.Time, dt float64) {
	tw.elapsed += dt

	run := float64(now.Sub(tw.started))/float64(time.Millisecond) - tw.delay
	if run < 0 {
		return // still in the delay window
	}
	t := 1.0
	if tw.duration > 0 {
		t = run / tw.duration
	}
	if t < 1 {
		tw.interp.apply(tw.easing(Clamp(t, 0, 1)))
		if tw.onUpdate != nil {
			tw.onUpdate()
		}
		return
	}

	// One full cycle is done.
	if tw.repeat != 0 {
		if tw.repeat > 0 {
			tw.repeat--
		}
		w.restartCycle(tw, now)
		return
	}
	if tw.yoyo {
		w.restartCycle(tw, now)
		return
	}

	tw.interp.complete()
	if tw.onUpdate != nil {
		tw.onUpdate()
	}
	tw.done = true
	if tw.onComplete != nil {
		tw.onComplete()
	}
}

// restartCycle begins the next repeat or yoyo cycle: swap endpoints for
// yoyo, land exactly on the cycle boundary value, and restart timing.
// Delay applies to the first cycle only.
func (w *Tweener) restartCycle(tw *tweenState, now time.Time) {
	tw.interp.complete()
	if tw.yoyo {
		tw.interp.swap()
	}
	tw.started = now
	tw.delay = 0
	if tw.onUpdate != nil {
		tw.onUpdate()
	}
}
