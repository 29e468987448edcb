package bramble

import (
	"os"
	"time"
)

// globalDebug enables the Pod bounds overlay and per-frame timing logs.
// Read without a Loop pointer, so it is package state; bramble is
// single-threaded.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, every Pod paints
// a translucent rectangle over its bounds (stronger while hot) and frame
// timings are logged periodically.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// DebugMode reports whether debug mode is enabled.
func DebugMode() bool {
	return globalDebug
}

// debugFromEnv enables debug mode when BRAMBLE_DEBUG is set.
func debugFromEnv() {
	if _, ok := os.LookupEnv("BRAMBLE_DEBUG"); ok {
		SetDebugMode(true)
	}
}

// debugLogInterval is the number of frames between timing logs.
const debugLogInterval = 120

// debugStats holds per-frame counts and the moving averages of the frame
// phases. Only logged when debug mode is on.
type debugStats struct {
	frame        uint64
	events       int
	commandCount int
	update       time.Duration // events, update and layout
	paint        time.Duration
	render       time.Duration
}

// debugLog logs averaged pass timings every debugLogInterval frames.
func debugLog(stats debugStats) {
	if !globalDebug || stats.frame%debugLogInterval != 0 {
		return
	}
	logger.Debug("bramble: frame",
		"frame", stats.frame,
		"events", stats.events,
		"commands", stats.commandCount,
		"update", stats.update,
		"paint", stats.paint,
		"render", stats.render,
		"total", stats.update+stats.paint+stats.render,
	)
}
