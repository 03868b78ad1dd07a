//go:build debug

package gridpoly

import (
	"log"
	"os"
)

// Debug logger instance
var logger = log.New(os.Stderr, "[gridpoly DEBUG] ", log.LstdFlags)

// logDebugf logs debug messages when the binary is built with the debug tag.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
