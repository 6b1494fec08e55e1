package ember

import "testing"

func TestEasingEndpoints(t *testing.T) {
	for _, name := range EasingNames() {
		fn, ok := EasingByName(name)
		if !ok {
			t.Fatalf("EasingByName(%q) not ok", name)
		}
		assertNear(t, name+"(0)", fn(0), 0)
		assertNear(t, name+"(1)", fn(1), 1)
	}
}

func TestEasingByNameUnknownFallsBackToLinear(t *testing.T) {
	fn, ok := EasingByName("wobble")
	if ok {
		t.Error("unknown easing reported ok")
	}
	assertNear(t, "fallback(0.3)", fn(0.3), 0.3)
}

func TestQuadraticCurves(t *testing.T) {
	in, _ := EasingByName(EaseIn)
	out, _ := EasingByName(EaseOut)
	inOut, _ := EasingByName(EaseInOut)

	assertNear(t, "easeIn(0.5)", in(0.5), 0.25)
	assertNear(t, "easeOut(0.5)", out(0.5), 0.75)
	assertNear(t, "easeInOut(0.5)", inOut(0.5), 0.5)
	assertNear(t, "easeInOut(0.25)", inOut(0.25), 0.125)
}

func TestCubicCurves(t *testing.T) {
	in, _ := EasingByName(EaseCubicIn)
	out, _ := EasingByName(EaseCubicOut)

	assertNear(t, "cubicIn(0.5)", in(0.5), 0.125)
	assertNear(t, "cubicOut(0.5)", out(0.5), 0.875)
}

func TestBounceOutReferencePoints(t *testing.T) {
	// Standard four-piece bounce with n1=7.5625, d1=2.75.
	fn, _ := EasingByName(EaseBounceOut)
	assertNear(t, "bounceOut(0)", fn(0), 0)
	assertNear(t, "bounceOut(0.5)", fn(0.5), 0.765625)
	assertNear(t, "bounceOut(1)", fn(1), 1)
}

func TestBounceInMirrorsBounceOut(t *testing.T) {
	in, _ := EasingByName(EaseBounceIn)
	out, _ := EasingByName(EaseBounceOut)
	for _, p := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		assertNear(t, "bounceIn mirror", in(p), 1-out(1-p))
	}
}

func TestElasticOvershoots(t *testing.T) {
	out, _ := EasingByName(EaseElasticOut)
	overshot := false
	for p := 0.05; p < 1; p += 0.05 {
		if out(p) > 1 {
			overshot = true
			break
		}
	}
	if !overshot {
		t.Error("elasticOut never overshoots 1, not an elastic curve")
	}
}
