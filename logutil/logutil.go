package logutil

import (
	"sync/atomic"
)

import (
	"go.uber.org/zap"
)

var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(zap.NewNop())
}

// GetGlobalLogger returns the logger every package of this module reports
// to. It is a no-op logger until SetGlobalLogger is called.
func GetGlobalLogger() *zap.Logger {
	return global.Load()
}

// SetGlobalLogger replaces the global logger and returns the previous one.
// A nil logger installs a no-op logger.
func SetGlobalLogger(l *zap.Logger) *zap.Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return global.Swap(l)
}

// Named is shorthand for GetGlobalLogger().Named(name).
func Named(name string) *zap.Logger {
	return GetGlobalLogger().Named(name)
}
