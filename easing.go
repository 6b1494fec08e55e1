package ember

import "github.com/tanema/gween/ease"

// EaseFunc maps linear time progress in [0, 1] to shaped progress.
type EaseFunc func(t float64) float64

// Easing names accepted by [Tweener] and the preset file format. The
// quadratic family keeps its historical short names; cubic, elastic, and
// bounce are spelled out.
const (
	EaseLinear     = "linear"
	EaseIn         = "easeIn"    // quadratic in
	EaseOut        = "easeOut"   // quadratic out
	EaseInOut      = "easeInOut" // quadratic in-out
	EaseCubicIn    = "cubicIn"
	EaseCubicOut   = "cubicOut"
	EaseCubicInOut = "cubicInOut"
	EaseElasticIn  = "elasticIn"
	EaseElasticOut = "elasticOut"
	EaseBounceIn   = "bounceIn"
	EaseBounceOut  = "bounceOut"
)

// easings maps curve names to their progress-form functions. The formulas
// come from gween's ease package (the standard Penner set; bounce is the
// four-piece formula with n1=7.5625, d1=2.75).
var easings = map[string]EaseFunc{
	EaseLinear:     easeFrom(ease.Linear),
	EaseIn:         easeFrom(ease.InQuad),
	EaseOut:        easeFrom(ease.OutQuad),
	EaseInOut:      easeFrom(ease.InOutQuad),
	EaseCubicIn:    easeFrom(ease.InCubic),
	EaseCubicOut:   easeFrom(ease.OutCubic),
	EaseCubicInOut: easeFrom(ease.InOutCubic),
	EaseElasticIn:  easeFrom(ease.InElastic),
	EaseElasticOut: easeFrom(ease.OutElastic),
	EaseBounceIn:   easeFrom(ease.InBounce),
	EaseBounceOut:  easeFrom(ease.OutBounce),
}

// easeFrom adapts a gween ease.TweenFunc to the progress form by evaluating
// it with begin 0, change 1, duration 1.
func easeFrom(fn ease.TweenFunc) EaseFunc {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// EasingByName returns the named easing curve. Unknown names fall back to
// linear with ok=false.
func EasingByName(name string) (fn EaseFunc, ok bool) {
	if fn, ok := easings[name]; ok {
		return fn, true
	}
	return easings[EaseLinear], false
}

// EasingNames returns the names of all registered easing curves, in no
// particular order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	return names
}
