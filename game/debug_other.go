//go:build !js

package game

import "log"

// Debug logs a message through the standard logger if debug mode is enabled.
func Debug(args ...interface{}) {
	if EnableDebug {
		log.Println(append([]interface{}{"[debug]"}, args...)...)
	}
}

// Debugf logs a formatted message if debug mode is enabled.
func Debugf(format string, args ...interface{}) {
	if EnableDebug {
		log.Printf("[debug] "+format, args...)
	}
}

// DebugWarn logs a warning if debug mode is enabled.
func DebugWarn(args ...interface{}) {
	if EnableDebug {
		log.Println(append([]interface{}{"[warn]"}, args...)...)
	}
}

// DebugError logs an error. Errors are always shown.
func DebugError(args ...interface{}) {
	log.Println(append([]interface{}{"[error]"}, args...)...)
}

func init() {
	log.SetFlags(log.Ltime | log.Lmicroseconds)
}
