package utils

import (
	"log"
	"sync/atomic"
)

var debugEnabled atomic.Bool

// SetDebug turns [DEBUG] log lines on or off
func SetDebug(enabled bool) {
	debugEnabled.Store(enabled)
}

// Debugf writes a [DEBUG] line when LOG_LEVEL=debug
func Debugf(format string, args ...any) {
	if debugEnabled.Load() {
		log.Printf("[DEBUG] "+format, args...)
	}
}
