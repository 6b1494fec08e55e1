package ember

import "testing"

func TestSystemCreateAndGetEmitter(t *testing.T) {
	s := NewSystem()
	e := s.CreateEmitter("sparks", testEmitterOptions())
	if e == nil {
		t.Fatal("CreateEmitter returned nil")
	}
	if s.GetEmitter("sparks") != e {
		t.Error("GetEmitter returned a different emitter")
	}
	if s.GetEmitter("nope") != nil {
		t.Error("GetEmitter for unknown id should be nil")
	}
	if s.EmitterCount() != 1 {
		t.Errorf("EmitterCount = %d, want 1", s.EmitterCount())
	}
}

func TestSystemOverwriteStopsAndDetachesOldEmitter(t *testing.T) {
	s := NewSystem()
	old := s.CreateEmitter("fx", testEmitterOptions())
	old.Start()

	replacement := s.CreateEmitter("fx", testEmitterOptions())
	if s.GetEmitter("fx") != replacement {
		t.Error("old emitter still reachable after overwrite")
	}
	if old.IsActive() && old.AliveCount() == 0 {
		t.Error("replaced emitter was not stopped")
	}
	if s.EmitterCount() != 1 {
		t.Errorf("EmitterCount = %d, want 1 after overwrite", s.EmitterCount())
	}
	// The replaced emitter no longer advances with the system.
	before := old.TotalEmitted()
	s.Update(1000)
	if old.TotalEmitted() != before {
		t.Error("replaced emitter still emitting via System.Update")
	}
}

func TestSystemRemoveEmitter(t *testing.T) {
	s := NewSystem()
	e := s.CreateEmitter("fx", testEmitterOptions())
	e.Start()
	s.RemoveEmitter("fx")
	if s.GetEmitter("fx") != nil {
		t.Error("emitter reachable after RemoveEmitter")
	}
	s.RemoveEmitter("fx") // removing twice is a no-op
	if s.EmitterCount() != 0 {
		t.Errorf("EmitterCount = %d, want 0", s.EmitterCount())
	}
}

func TestSystemUpdateDrivesEmitters(t *testing.T) {
	s := NewSystem()
	a := s.CreateEmitter("a", testEmitterOptions())
	b := s.CreateEmitter("b", testEmitterOptions())
	a.Start()
	b.Start()

	s.Update(100)
	if a.AliveCount() == 0 || b.AliveCount() == 0 {
		t.Error("System.Update did not advance all emitters")
	}
	if s.AliveCount() != a.AliveCount()+b.AliveCount() {
		t.Error("System.AliveCount does not sum emitter counts")
	}
}

func TestUnknownPresetReturnsNil(t *testing.T) {
	s := NewSystem()
	if e := s.CreateEmitterFromPreset("fx", "vortex", PresetOptions{}); e != nil {
		t.Error("unknown preset should return nil")
	}
	if s.GetEmitter("fx") != nil {
		t.Error("unknown preset should not register an emitter")
	}
}

func TestRegisterPreset(t *testing.T) {
	s := NewSystem()
	s.RegisterPreset("pulse", func(o PresetOptions) EmitterOptions {
		return EmitterOptions{Position: o.Position, BurstCount: 7}
	})
	e := s.CreateEmitterFromPreset("p", "pulse", PresetOptions{Position: Vec2{5, 6}})
	if e == nil {
		t.Fatal("registered preset not usable")
	}
	if e.Options().BurstCount != 7 {
		t.Errorf("BurstCount = %d, want 7", e.Options().BurstCount)
	}
	assertNear(t, "position.X", e.Position.X, 5)
}

func TestPresetTablesAreInstanceOwned(t *testing.T) {
	s1 := NewSystem()
	s2 := NewSystem()
	s1.RegisterPreset("custom", func(PresetOptions) EmitterOptions {
		return EmitterOptions{}
	})
	if e := s2.CreateEmitterFromPreset("x", "custom", PresetOptions{}); e != nil {
		t.Error("preset registered on one System leaked into another")
	}
}

func TestBuiltinPresetNames(t *testing.T) {
	s := NewSystem()
	names := s.PresetNames()
	want := []string{"confetti", "explosion", "fire", "rain", "smoke", "sparkles"}
	if len(names) != len(want) {
		t.Fatalf("PresetNames = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("PresetNames = %v, want %v", names, want)
		}
	}
}

func TestSystemDestroy(t *testing.T) {
	s := NewSystem()
	s.CreateEmitter("fx", testEmitterOptions())
	s.Destroy()
	if s.GetEmitter("fx") != nil {
		t.Error("emitter survives Destroy")
	}
	if s.EmitterCount() != 0 {
		t.Error("EmitterCount non-zero after Destroy")
	}
	// Presets survive; the system is reusable.
	if e := s.CreateEmitterFromPreset("boom", "explosion", PresetOptions{}); e == nil {
		t.Error("built-in presets lost after Destroy")
	}
}
