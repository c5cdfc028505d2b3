package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLoggerSink(t *testing.T) {
	sink := &testSink{}
	logger := NewConsoleLogger(LevelNone)
	logger.SetSink(sink, LevelDebug)

	logger.Trace("hidden")
	assert.Nil(t, sink.buf)

	logger.WithPrefix("[memo]").With(map[string]interface{}{"name": "fib"}).Debug("cache bypassed for %d args", 2)
	line := string(sink.buf)
	assert.Contains(t, line, "[DEBUG]")
	assert.Contains(t, line, "[memo] cache bypassed for 2 args")
	assert.Contains(t, line, `{"name":"fib"}`)
	assert.False(t, strings.Contains(line, "\033["))
}

func TestConsoleLoggerLevels(t *testing.T) {
	logger := NewConsoleLogger(LevelWarn)
	assert.False(t, logger.IsLevelEnabled(LevelInfo))
	assert.True(t, logger.IsLevelEnabled(LevelError))
	assert.True(t, IsDebugEnabled(NewConsoleLogger(LevelTrace)))
	assert.False(t, IsDebugEnabled(nil))
}
