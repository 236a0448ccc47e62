package glh

import (
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// errorCallback is process-wide; the context serializes all access to it.
var errorCallback func(string)

// SetErrorCallback registers fn to receive native debug messages. The
// registration is process-wide and the last registration wins; there is no
// way to unregister. The context must support the debug message callback
// extension.
func SetErrorCallback(fn func(msg string)) {
	errorCallback = fn
	gl.DebugMessageCallback(debugProc, nil)
	slog.Debug("error callback set")
}

func debugProc(source, gltype, id, severity uint32, length int32,
	message string, userParam unsafe.Pointer) {
	slog.Error("native debug message", "source", source, "type", gltype,
		"id", id, "severity", severity, "message", message)

	if cb := errorCallback; cb != nil {
		cb(message)
	}
}
