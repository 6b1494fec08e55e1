package ember

import (
	"fmt"
	"os"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// System is a registry of named emitters and named presets with a single
// render surface. Each System owns its own preset table; independent
// systems never share mutable preset state.
//
// A System does not schedule itself: drive it with Update(dt) and
// Draw(dst) from your frame loop, or let [Run] wire that up for you.
type System struct {
	emitters map[string]*Emitter
	order    []string // emitter ids in creation order, for stable draw order
	presets  map[string]PresetFunc
	images   map[string]*ebiten.Image

	surface *ebiten.Image
	width   int
	height  int
}

// NewSystem creates a System with the six built-in presets registered:
// explosion, confetti, sparkles, fire, smoke, and rain.
func NewSystem() *System {
	s := &System{
		emitters: make(map[string]*Emitter),
		presets:  make(map[string]PresetFunc),
		images:   make(map[string]*ebiten.Image),
	}
	registerBuiltinPresets(s)
	return s
}

// CreateEmitter registers a new emitter under id and returns it. An
// existing emitter under the same id is stopped and detached first; it is
// unreachable via GetEmitter from that point on, and its remaining
// particles are dropped with it.
func (s *System) CreateEmitter(id string, opts EmitterOptions) *Emitter {
	if old, ok := s.emitters[id]; ok {
		old.Stop()
	} else {
		s.order = append(s.order, id)
	}
	e := NewEmitter(opts)
	s.emitters[id] = e
	return e
}

// CreateEmitterFromPreset registers a new emitter built by the named
// preset factory. An unknown preset name logs a warning and returns nil;
// it never panics, since this is typically called from hot game-update
// code.
func (s *System) CreateEmitterFromPreset(id, preset string, opts PresetOptions) *Emitter {
	factory, ok := s.presets[preset]
	if !ok {
		warnf("ember: unknown preset %q (emitter %q not created)", preset, id)
		return nil
	}
	return s.CreateEmitter(id, factory(opts))
}

// GetEmitter returns the emitter registered under id, or nil.
func (s *System) GetEmitter(id string) *Emitter {
	return s.emitters[id]
}

// RemoveEmitter stops and unregisters the emitter under id.
func (s *System) RemoveEmitter(id string) {
	e, ok := s.emitters[id]
	if !ok {
		return
	}
	e.Stop()
	delete(s.emitters, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
}

// EmitterCount returns the number of registered emitters.
func (s *System) EmitterCount() int {
	return len(s.emitters)
}

// RegisterPreset adds (or replaces) a named preset factory.
func (s *System) RegisterPreset(name string, factory PresetFunc) {
	s.presets[name] = factory
}

// PresetNames returns the registered preset names in sorted order.
func (s *System) PresetNames() []string {
	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LoadImage loads an image file and registers it under name, for use as
// a sprite particle shape.
func (s *System) LoadImage(name, path string) error {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return fmt.Errorf("load image %q: %w", path, err)
	}
	s.images[name] = img
	return nil
}

// AddImage registers an already constructed image under name.
func (s *System) AddImage(name string, img *ebiten.Image) {
	s.images[name] = img
}

// GetImage returns the image registered under name, or nil.
func (s *System) GetImage(name string) *ebiten.Image {
	return s.images[name]
}

// Resize sizes the system's render surface to w×h, recreating it only
// when the size actually changes. [Run] calls this from Layout so the
// surface tracks the window.
func (s *System) Resize(w, h int) {
	if w <= 0 || h <= 0 || (w == s.width && h == s.height) {
		return
	}
	s.width, s.height = w, h
	s.surface = ebiten.NewImage(w, h)
}

// Update advances every registered emitter by dt milliseconds.
func (s *System) Update(dt float64) {
	for _, id := range s.order {
		s.emitters[id].Update(dt)
	}
}

// Draw renders all emitters onto dst, in emitter creation order. When a
// surface has been sized via Resize, emitters are composited through it;
// otherwise they draw directly onto dst.
func (s *System) Draw(dst *ebiten.Image) {
	target := dst
	if s.surface != nil {
		s.surface.Clear()
		target = s.surface
	}
	for _, id := range s.order {
		s.emitters[id].Draw(target)
	}
	if s.surface != nil {
		dst.DrawImage(s.surface, nil)
	}
}

// AliveCount returns the total number of live particles across all
// emitters.
func (s *System) AliveCount() int {
	total := 0
	for _, e := range s.emitters {
		total += e.AliveCount()
	}
	return total
}

// DrawStats prints FPS, TPS, and particle counts onto the top-left corner
// of dst. Intended for demos and debugging.
func (s *System) DrawStats(dst *ebiten.Image) {
	ebitenutil.DebugPrint(dst, fmt.Sprintf(
		"FPS: %.1f\nTPS: %.1f\nemitters: %d  particles: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), s.EmitterCount(), s.AliveCount()))
}

// Destroy clears the emitter and image tables and releases the render
// surface. The system may be reused afterwards; built-ins and registered
// presets survive.
func (s *System) Destroy() {
	s.emitters = make(map[string]*Emitter)
	s.order = s.order[:0]
	s.images = make(map[string]*ebiten.Image)
	s.surface = nil
	s.width, s.height = 0, 0
}

// LoadPresetFile reads a YAML preset pack and registers every preset in
// it. See [PresetsFromYAML] for the file format.
func (s *System) LoadPresetFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read preset file %s: %w", path, err)
	}
	presets, err := PresetsFromYAML(data)
	if err != nil {
		return fmt.Errorf("parse preset file %s: %w", path, err)
	}
	for name, factory := range presets {
		s.presets[name] = factory
	}
	return nil
}
