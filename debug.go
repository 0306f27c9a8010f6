package rowan

import (
	"fmt"
	"os"
)

// globalDebug gates diagnostic warnings (no sync — rowan is single-threaded).
var globalDebug bool

// SetDebug enables or disables diagnostic warnings on stderr.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// debugf prints a warning to stderr when debug mode is on.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[rowan] "+format+"\n", args...)
}
