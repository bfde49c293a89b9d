/*
Package logger provides logging functionality to a terminus app by defining the required behavior in [Logger]
and providing an implementation of it with [StdLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, [StdLogger] accepts a [LogLevel],
and if initialized with [LogLevelWarn],
only [*StdLogger.Warn], [*StdLogger.Error], and [*StdLogger.Fatal] produce messages.

A Logger is configured once, when the app starts, and handed to those needing it.

# StdLogger

Log messages emitted by [StdLogger] are composed of a few parts:
	- timestamp
	- prefix
	- log level
	- call site
	- message
	- log context

Here's an example:
	2022/04/28 15:55:21 app:error [ERROR] http/resp/responder.go:43 'boom' log_context: {"error":"boom"}

The prefix, [DefaultPrefix] unless set by [WithPrefix], tags which part of the app wrote the line.
The file, line number, and parent directory of where a [StdLogger] method was called comprise the call site.
Lastly, the log context is a JSON-encoded [*LogContext].

# SkipLogger

Sometimes, especially with internal packages, the file and line number in a log needs to be configurable.
[SkipLogger] provides additional configuration functionality by setting the number of frames to skip
back in order to reach the desired caller.
*/
package logger
