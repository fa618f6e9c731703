package logging

import (
	"sync"
)

var (
	instance *Logger
	once     sync.Once
)

// InitLogger initializes the global logger with the given configuration.
// It must be called before GetGlobalLogger.
func InitLogger(config *LogConfig) error {
	var err error
	once.Do(func() {
		instance, err = NewLogger(config)
	})
	return err
}

// GetGlobalLogger returns the singleton logger instance.
// It panics if InitLogger has not been called yet.
func GetGlobalLogger() *Logger {
	if instance == nil {
		panic("logger not initialized - call logging.InitLogger() first")
	}
	return instance
}
