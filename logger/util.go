package logger

// WithKV returns a logger carrying a single metadata key/value pair.
func WithKV(logger Logger, key string, value interface{}) Logger {
	return logger.With(map[string]interface{}{key: value})
}

// IsDebugEnabled is shorthand for logger.IsLevelEnabled(LevelDebug). A nil
// logger is never enabled.
func IsDebugEnabled(logger Logger) bool {
	return logger != nil && logger.IsLevelEnabled(LevelDebug)
}
