// Package ember is a frame-driven 2D effects engine for [Ebitengine].
//
// Ember provides the particle emitters, preset effects, sprite animation,
// and property tweening that arcade-style games reach for every frame:
// explosions, confetti, fire, smoke, sparkles, rain, frame-sequenced
// sprites, and eased value animation.
//
// # Quick start
//
// The simplest way to get a window with effects on screen is [Run], which
// creates the game loop for you and feeds measured frame times to a
// [System]:
//
//	sys := ember.NewSystem()
//	sys.CreateEmitterFromPreset("boom", "explosion", ember.PresetOptions{
//		Position: ember.Vec2{X: 320, Y: 240},
//	}).Start()
//	ember.Run(ember.RunConfig{
//		Title: "Boom", Width: 640, Height: 480, System: sys,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [System.Update] and [System.Draw] directly; the engine never hides a
// scheduler from you. Every component is advanced by an explicit
// Update(dt) call, with dt measured in milliseconds, so the whole
// simulation can be driven (and tested) with synthetic time.
//
// # Components
//
// [System] owns named emitters and a preset registry. [Emitter] converts
// an emission rate or burst count into live [Particle] values, applying
// per-particle variance around a template. [Animator] sequences sprite
// sheet frames with loop, ping-pong, and one-shot playback. [Tweener]
// interpolates arbitrary float fields with delay, easing, yoyo, and
// repeat semantics, using the easing catalog from [gween].
//
// Preset effects can also be loaded from YAML files, see
// [System.LoadPresetFile].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package ember
