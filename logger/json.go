package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"
)

// JSONLogEntry is a single structured log line.
type JSONLogEntry struct {
	Timestamp time.Time              `json:"timestamp,omitempty"`
	Message   string                 `json:"message"`
	Severity  string                 `json:"severity,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Component string                 `json:"component,omitempty"`
}

// String renders the entry as JSON, defaulting the severity to INFO.
func (e JSONLogEntry) String() string {
	if e.Severity == "" {
		e.Severity = "INFO"
	}
	out, err := json.Marshal(e)
	if err != nil {
		log.Printf("json.Marshal: %v", err)
	}
	return string(out)
}

type jsonLogger struct {
	metadata     map[string]interface{}
	component    string
	sink         Sink
	sinkLogLevel LogLevel
	noConsole    bool
	logLevel     LogLevel
}

var _ Logger = (*jsonLogger)(nil)
var _ SinkLogger = (*jsonLogger)(nil)

func (c *jsonLogger) clone() *jsonLogger {
	return &jsonLogger{
		metadata:     copyMetadata(c.metadata, nil),
		component:    c.component,
		sink:         c.sink,
		sinkLogLevel: c.sinkLogLevel,
		noConsole:    c.noConsole,
		logLevel:     c.logLevel,
	}
}

func (c *jsonLogger) WithContext(ctx context.Context) Logger {
	return c.clone()
}

func (c *jsonLogger) SetSink(sink Sink, level LogLevel) {
	c.sink = sink
	c.sinkLogLevel = level
}

// WithPrefix appends prefix to the component, ignoring repeats.
func (c *jsonLogger) WithPrefix(prefix string) Logger {
	l := c.clone()
	switch {
	case l.component == "":
		l.component = prefix
	case !strings.Contains(l.component, prefix):
		l.component += " " + prefix
	}
	return l
}

func (c *jsonLogger) With(metadata map[string]interface{}) Logger {
	l := c.clone()
	l.metadata = copyMetadata(c.metadata, metadata)
	if comp, ok := l.metadata["component"].(string); ok {
		l.component = comp
		delete(l.metadata, "component")
	}
	return l
}

func (c *jsonLogger) IsLevelEnabled(level LogLevel) bool {
	return (!c.noConsole && level >= c.logLevel) || (c.sink != nil && level >= c.sinkLogLevel)
}

func (c *jsonLogger) log(level LogLevel, severity string, msg string, args ...interface{}) {
	if !c.IsLevelEnabled(level) {
		return
	}
	_msg := msg
	if len(args) > 0 {
		_msg = fmt.Sprintf(msg, args...)
	}
	entry := JSONLogEntry{
		Severity:  severity,
		Message:   _msg,
		Metadata:  c.metadata,
		Component: c.component,
		Timestamp: time.Now(),
	}
	if !c.noConsole && level >= c.logLevel {
		log.Println(entry)
	}
	if c.sink != nil && level >= c.sinkLogLevel {
		entry.Message = ansiColorStripper.ReplaceAllString(entry.Message, "")
		buf, _ := json.Marshal(entry)
		if _, err := c.sink.Write(buf); err != nil {
			log.Printf("sink.Write: %v", err)
		}
	}
}

func (c *jsonLogger) Trace(msg string, args ...interface{}) {
	c.log(LevelTrace, "TRACE", msg, args...)
}

func (c *jsonLogger) Debug(msg string, args ...interface{}) {
	c.log(LevelDebug, "DEBUG", msg, args...)
}

func (c *jsonLogger) Info(msg string, args ...interface{}) {
	c.log(LevelInfo, "INFO", msg, args...)
}

func (c *jsonLogger) Warn(msg string, args ...interface{}) {
	c.log(LevelWarn, "WARNING", msg, args...)
}

func (c *jsonLogger) Error(msg string, args ...interface{}) {
	c.log(LevelError, "ERROR", msg, args...)
}

// NewJSONLogger returns a new Logger instance which can be used for structured logging
func NewJSONLogger(levels ...LogLevel) Logger {
	level := GetLevelFromEnv()
	if len(levels) > 0 {
		level = levels[0]
	}
	return &jsonLogger{logLevel: level, sinkLogLevel: LevelNone}
}

// NewJSONLoggerWithSink returns a new Logger instance using a sink and suppressing the console logging
func NewJSONLoggerWithSink(sink Sink, level LogLevel) SinkLogger {
	return &jsonLogger{noConsole: true, sink: sink, sinkLogLevel: level, logLevel: LevelNone}
}
