package ember

import "log"

// globalDebug gates verbose diagnostics. No sync: ember is single-threaded.
var globalDebug bool

// SetDebug toggles verbose diagnostics on stderr, such as gradient fallback
// and sheet frame lookup warnings. Hard contract violations (unknown preset
// names) are always logged.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// debugf logs only when debug mode is enabled.
func debugf(format string, args ...any) {
	if globalDebug {
		log.Printf(format, args...)
	}
}

// warnf logs unconditionally. Used for the narrow set of caller mistakes
// that degrade to a no-op instead of an error return.
func warnf(format string, args ...any) {
	log.Printf(format, args...)
}
