package logger

//go:generate mockgen -destination loggermock/loggermock.go -package loggermock github.com/xy-planning-network/terminus/logger Logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"regexp"
	"runtime"

	"github.com/fatih/color"
)

const (
	// DefaultPrefix tags every line written by the error stage's logger.
	DefaultPrefix = "app:error"

	knownFrames = 2
)

var terminusPathRegex = regexp.MustCompile("terminus.*$")

// The Logger interface defines the levels a logging can occur at.
type Logger interface {
	Debug(msg string, ctx *LogContext)
	Error(msg string, ctx *LogContext)
	Fatal(msg string, ctx *LogContext)
	Info(msg string, ctx *LogContext)
	Warn(msg string, ctx *LogContext)

	LogLevel() LogLevel
}

// The SkipLogger interface defines a Logger that scrolls back
// the number of frames provided in order to ascertain the call site.
type SkipLogger interface {
	AddSkip(i int) SkipLogger
	Skip() int
	Logger
}

type LogLevel int

const (
	LogLevelUnk LogLevel = iota
	LogLevelDebug
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelFatal
)

func NewLogLevel(val string) LogLevel {
	switch val {
	case "DEBUG":
		return LogLevelDebug
	case "INFO":
		return LogLevelInfo
	case "WARN":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	case "FATAL":
		return LogLevelFatal
	default:
		return LogLevelUnk
	}
}

func (ll LogLevel) String() string {
	return map[LogLevel]string{
		LogLevelDebug: "[DEBUG]",
		LogLevelInfo:  "[INFO]",
		LogLevelWarn:  "[WARN]",
		LogLevelError: "[ERROR]",
		LogLevelFatal: "[FATAL]",
		LogLevelUnk:   "[UNK]",
	}[ll]
}

// StdLogger implements Logger using log.
type StdLogger struct {
	skip   int
	env    string
	out    io.Writer
	prefix string
	date   bool
	l      *log.Logger
	ll     LogLevel
}

// New constructs a Logger.
//
// Logs are printed to os.Stdout by default, using the std lib log pkg.
// Each line starts with the date and time, followed by the prefix, DefaultPrefix by default.
// The default environment is DEVELOPMENT.
// The default log level is INFO.
//
// When the SENTRY_DSN env var is set, New returns a *SentryLogger wrapping the *StdLogger.
func New(opts ...LoggerOptFn) Logger {
	l := NewStdLogger(opts...)
	if sentryDsn := os.Getenv("SENTRY_DSN"); sentryDsn != "" {
		l.Info("SENTRY_DSN set, configuring SentryLogger", nil)
		return NewSentryLogger(l, sentryDsn)
	}

	return l
}

// NewStdLogger constructs a *StdLogger, never reporting to Sentry.
func NewStdLogger(opts ...LoggerOptFn) *StdLogger {
	l := &StdLogger{
		env:    getEnvOrString("ENVIRONMENT", "DEVELOPMENT"),
		out:    os.Stdout,
		prefix: DefaultPrefix,
		date:   true,
		ll:     LogLevelInfo,
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.l == nil {
		flags := log.Lmsgprefix
		if l.date {
			flags |= log.LstdFlags
		}

		prefix := l.prefix
		if prefix != "" {
			prefix += " "
		}

		l.l = log.New(l.out, prefix, flags)
	}

	return l
}

// AddSkip replaces the current number of frames to scroll back
// when logging a message.
//
// Use Skip to get the current skip amount
// when needing to add to it with AddSkip.
func (l *StdLogger) AddSkip(i int) SkipLogger {
	newl := *l
	newl.skip = i
	return &newl
}

// Debug writes a debug log.
func (l *StdLogger) Debug(msg string, ctx *LogContext) {
	if l.ll > LogLevelDebug {
		return
	}

	l.log(color.WhiteString, LogLevelDebug, msg, ctx)
}

// Error writes an error log.
func (l *StdLogger) Error(msg string, ctx *LogContext) {
	if l.ll > LogLevelError {
		return
	}

	l.log(color.RedString, LogLevelError, msg, ctx)
}

// Fatal writes a fatal log.
func (l *StdLogger) Fatal(msg string, ctx *LogContext) {
	if l.ll > LogLevelFatal {
		return
	}

	l.log(color.MagentaString, LogLevelFatal, msg, ctx)
}

// Info writes an info log.
func (l *StdLogger) Info(msg string, ctx *LogContext) {
	if l.ll > LogLevelInfo {
		return
	}

	l.log(color.BlueString, LogLevelInfo, msg, ctx)
}

// Warn writes a warning log.
func (l *StdLogger) Warn(msg string, ctx *LogContext) {
	if l.ll > LogLevelWarn {
		return
	}

	l.log(color.YellowString, LogLevelWarn, msg, ctx)
}

// LogLevel returns the LogLevel set for the StdLogger.
func (l *StdLogger) LogLevel() LogLevel { return l.ll }

// Skip returns the current amount of frames to scroll back
// when logging a message.
func (l *StdLogger) Skip() int { return l.skip }

// log executes printing the log message,
// including any context if available.
func (l *StdLogger) log(colorizer func(string, ...any) string, level LogLevel, msg string, ctx *LogContext) {
	var toPrint string
	if ctx != nil && ctx.Caller != "" {
		toPrint = ctx.Caller
	} else {
		// frames inside StdLogger plus any added by wrappers
		_, file, line, _ := runtime.Caller(knownFrames + l.skip)
		toPrint = formatCaller(file, line)
	}

	msg = colorizer("%s %s '%s'", level, toPrint, msg)
	if ctx == nil {
		l.l.Println(msg)
		return
	}

	l.l.Println(msg, "log_context:", ctx)
}

// formatCaller prints the file and the directory it is in
// e.g.,:
// /home/dev/my-project/main.go => my-project/main.go:1
// /home/dev/my-project/internal/internal.go => internal/internal.go:1
//
// Files within this module print their path from the module root.
func formatCaller(file string, line int) string {
	if match := terminusPathRegex.FindString(file); match != "" {
		return fmt.Sprintf(callerTmpl, match, line)
	}

	return fmt.Sprintf(callerTmpl, immediateFilepath(file), line)
}

func immediateFilepath(file string) string {
	dir, file := path.Split(file)
	return path.Join(path.Base(dir), file)
}

func getEnvOrString(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}
