package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Level type
type Level uint32

const (
	// ErrorLevel level. Used for errors that should definitely be noted.
	ErrorLevel Level = iota
	// WarnLevel level. Non-critical entries that deserve eyes.
	WarnLevel
	// InfoLevel level. General operational entries.
	InfoLevel
	// DebugLevel level. One entry per executed operation.
	DebugLevel
	// TraceLevel level. Request parsing and other fine grained events.
	TraceLevel
)

var LevelMap = map[Level]string{
	ErrorLevel: "error",
	WarnLevel:  "warn",
	InfoLevel:  "info",
	DebugLevel: "debug",
	TraceLevel: "trace",
}

func (l Level) String() string {
	if s, ok := LevelMap[l]; ok {
		return s
	}
	return fmt.Sprintf("level(%d)", uint32(l))
}

// ParseLevel parses a level name
func ParseLevel(s string) (Level, error) {
	for level, name := range LevelMap {
		if strings.EqualFold(name, s) {
			return level, nil
		}
	}
	return InfoLevel, fmt.Errorf("unknown log level %q", s)
}

type LogPayload struct {
	Level   Level
	Fields  map[string]interface{}
	Error   error
	Message string
}

type LogFunc func(payload LogPayload)

func NoopLogFunc(payload LogPayload) {}

func NewNoopLogger() *LogWrapper {
	return NewLogWrapper(NoopLogFunc, map[string]interface{}{})
}

// NewSimpleLogFunc returns a logging func writing key=value lines to stdout
func NewSimpleLogFunc(level Level) LogFunc {
	return NewWriterLogFunc(os.Stdout, level)
}

// NewWriterLogFunc returns a logging func writing key=value lines to w
func NewWriterLogFunc(w io.Writer, level Level) LogFunc {
	return func(payload LogPayload) {
		if level < payload.Level {
			return
		}

		m := map[string]interface{}{
			"msg":   payload.Message,
			"level": payload.Level.String(),
		}
		keys := []string{"level", "msg"}

		if payload.Error != nil {
			m["error"] = payload.Error.Error()
			keys = append(keys, "error")
		}

		extra := []string{}
		for k, v := range payload.Fields {
			if _, reserved := m[k]; !reserved {
				extra = append(extra, k)
				m[k] = v
			}
		}
		sort.Strings(extra)
		keys = append(keys, extra...)

		fields := make([]string, 0, len(keys))
		for _, k := range keys {
			fields = append(fields, fmt.Sprintf("%s=%q", k, fmt.Sprint(m[k])))
		}

		fmt.Fprintln(w, strings.Join(fields, " "))
	}
}

type LogWrapper struct {
	LogFunc LogFunc
	Fields  map[string]interface{}
	Error   error
}

// NewLogWrapper returns a new log wrapper
func NewLogWrapper(logFunc LogFunc, fields map[string]interface{}) *LogWrapper {
	if logFunc == nil {
		logFunc = NoopLogFunc
	}

	if fields == nil {
		fields = map[string]interface{}{}
	}

	return &LogWrapper{
		LogFunc: logFunc,
		Fields:  fields,
	}
}

// clone clones a log wrapper to iteratively build the log
func (l *LogWrapper) clone() *LogWrapper {
	newWrapper := &LogWrapper{
		LogFunc: l.LogFunc,
		Error:   l.Error,
		Fields:  make(map[string]interface{}, len(l.Fields)+1),
	}

	for k, v := range l.Fields {
		newWrapper.Fields[k] = v
	}

	return newWrapper
}

func (l *LogWrapper) WithError(err error) *LogWrapper {
	newWrapper := l.clone()
	newWrapper.Error = err
	return newWrapper
}

func (l *LogWrapper) WithField(key string, value interface{}) *LogWrapper {
	newWrapper := l.clone()
	newWrapper.Fields[key] = value
	return newWrapper
}

func (l *LogWrapper) log(level Level, format string, v ...interface{}) {
	l.LogFunc(LogPayload{
		Level:   level,
		Fields:  l.Fields,
		Error:   l.Error,
		Message: fmt.Sprintf(format, v...),
	})
}

func (l *LogWrapper) Tracef(format string, v ...interface{}) {
	l.log(TraceLevel, format, v...)
}

func (l *LogWrapper) Debugf(format string, v ...interface{}) {
	l.log(DebugLevel, format, v...)
}

func (l *LogWrapper) Infof(format string, v ...interface{}) {
	l.log(InfoLevel, format, v...)
}

func (l *LogWrapper) Warnf(format string, v ...interface{}) {
	l.log(WarnLevel, format, v...)
}

func (l *LogWrapper) Errorf(format string, v ...interface{}) {
	l.log(ErrorLevel, format, v...)
}
