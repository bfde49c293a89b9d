/*
Package ranger initializes and manages a terminus app with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type.
A [Ranger] ought to be constructed with [New].
[New] wires, in order, a [logger.Logger], a [*template.Parser] for error templates,
a [*metrics.Recorder], the [*resp.Responder] answering every error,
and a [*router.Router] funnelling every handler's error to that responder.

[*Ranger.Guide] begins a terminus app's web server.
By default, [*Ranger.Guide] listens on [DefaultPort] (:3000),
assuming either a reverse proxy proxies requests
or only a client application makes direct requests to the terminus web server.

Upon calling [*Ranger.Guide], all routes configured up to that point are now active.
Stop that web server with [*Ranger.Shutdown],
call [*Ranger.Cancel],
or send a signal [*Ranger.Guide] listens for.

# Configuration

A developer configures a terminus app through environment variables
and by passing a [RangerOption] to [New].

Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - CORS_ORIGIN: the origin allowed to make cross-origin requests; default: none
  - ENVIRONMENT: the environment the application is running in; cf. [terminus.Environment]
  - HOST: the host the application is running on; default: localhost
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - LOG_PREFIX: the tag every log line starts with; default: app:error
  - MAINTENANCE_MODE: answer every request with a 503; default: false
  - METRICS_PATH: the path Prometheus metrics are served at; default: /metrics
  - PORT: the port the application should listen on; default: :3000
  - RATE_BURST: the number of requests an IP address may make at once; default: 20
  - RATE_LIMIT: the number of requests per second an IP address may make; default: 5
  - SENTRY_DSN: the DSN errors are reported to Sentry with; default: none
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
  - SHUTDOWN_TIMEOUT: the time - as understood by [time.ParseDuration] - allowed for in-flight requests on shutdown; default: 5s
  - TEMPLATE_DIR: the directory error templates are looked up in; default: tmpl
  - TRACING: record errors on OpenTelemetry spans of the global tracer provider; default: false
*/
package ranger
