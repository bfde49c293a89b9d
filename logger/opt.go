package logger

import (
	"io"
	"log"
)

// A LoggerOptFn is a functional option configuring a StdLogger when constructing a new one.
type LoggerOptFn func(*StdLogger)

// WithDate toggles stamping each line with the date and time.
func WithDate(on bool) LoggerOptFn {
	return func(l *StdLogger) {
		l.date = on
	}
}

// WithEnv sets the environment StdLogger is operating in.
func WithEnv(env string) LoggerOptFn {
	return func(l *StdLogger) {
		l.env = env
	}
}

// WithLevel sets the log level StdLogger uses.
func WithLevel(level LogLevel) LoggerOptFn {
	return func(l *StdLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger StdLogger uses.
//
// The log.Logger's own flags and prefix are used as-is;
// WithDate, WithOutput, and WithPrefix have no effect.
func WithLogger(log *log.Logger) LoggerOptFn {
	return func(l *StdLogger) {
		l.l = log
	}
}

// WithOutput sets where StdLogger writes to.
func WithOutput(w io.Writer) LoggerOptFn {
	return func(l *StdLogger) {
		l.out = w
	}
}

// WithPrefix sets the tag StdLogger starts each message with.
func WithPrefix(prefix string) LoggerOptFn {
	return func(l *StdLogger) {
		l.prefix = prefix
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) LoggerOptFn {
	return func(l *StdLogger) {
		l.skip = skip
	}
}
