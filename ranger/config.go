package ranger

import (
	"fmt"
	"strings"
	"time"

	"github.com/xy-planning-network/terminus"
	"github.com/xy-planning-network/terminus/http/middleware"
	"github.com/xy-planning-network/terminus/logger"
	"golang.org/x/time/rate"
)

const (
	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar  = "LOG_LEVEL"
	defaultLogLevel = "INFO"
	logPrefixEnvVar = "LOG_PREFIX"
	sentryDsnEnvVar = "SENTRY_DSN"

	// Web server defaults
	DefaultHost               = "localhost"
	hostEnvVar                = "HOST"
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second
	shutdownTimeoutEnvVar     = "SHUTDOWN_TIMEOUT"
	DefaultShutdownTimeout    = 5 * time.Second

	// HTTP defaults
	corsOriginEnvVar      = "CORS_ORIGIN"
	forceHTTPSEnvVar      = "FORCE_HTTPS"
	maintenanceModeEnvVar = "MAINTENANCE_MODE"
	metricsPathEnvVar     = "METRICS_PATH"
	DefaultMetricsPath    = "/metrics"
	rateLimitEnvVar       = "RATE_LIMIT"
	rateBurstEnvVar       = "RATE_BURST"
	templateDirEnvVar     = "TEMPLATE_DIR"
	DefaultTemplateDir    = "tmpl"
	tracingEnvVar         = "TRACING"
)

// A Config holds every setting a *Ranger reads from the environment.
type Config struct {
	Env terminus.Environment

	LogLevel  logger.LogLevel
	LogPrefix string
	SentryDSN string

	Host            string
	Port            string
	ReadTimeout     time.Duration
	IdleTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	CORSOrigin      string
	MaintenanceMode bool

	// ForceHTTPS redirects plain HTTP requests outside development.
	ForceHTTPS bool

	// MetricsPath is where Prometheus metrics are served; empty disables serving them.
	MetricsPath string

	RateLimit rate.Limit
	RateBurst int

	// TemplateDir is the directory error templates are first looked up in.
	TemplateDir string

	Tracing bool
}

// NewConfig reads a Config from environment variables, applying defaults for those unset.
//
// An ENVIRONMENT or LOG_LEVEL that is set but not understood is an error.
func NewConfig() (Config, error) {
	cfg := Config{
		Env:             terminus.EnvVarOrEnv(environmentEnvVar, terminus.Development),
		LogPrefix:       terminus.EnvVarOrString(logPrefixEnvVar, logger.DefaultPrefix),
		SentryDSN:       terminus.EnvVarOrString(sentryDsnEnvVar, ""),
		Host:            terminus.EnvVarOrString(hostEnvVar, DefaultHost),
		Port:            terminus.EnvVarOrString(portEnvVar, DefaultPort),
		ReadTimeout:     terminus.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		IdleTimeout:     terminus.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		WriteTimeout:    terminus.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
		ShutdownTimeout: terminus.EnvVarOrDuration(shutdownTimeoutEnvVar, DefaultShutdownTimeout),
		CORSOrigin:      terminus.EnvVarOrString(corsOriginEnvVar, ""),
		MaintenanceMode: terminus.EnvVarOrBool(maintenanceModeEnvVar, false),
		ForceHTTPS:      terminus.EnvVarOrBool(forceHTTPSEnvVar, false),
		MetricsPath:     terminus.EnvVarOrString(metricsPathEnvVar, DefaultMetricsPath),
		RateLimit:       rate.Limit(terminus.EnvVarOrInt(rateLimitEnvVar, int(middleware.DefaultRate))),
		RateBurst:       terminus.EnvVarOrInt(rateBurstEnvVar, middleware.DefaultBurst),
		TemplateDir:     terminus.EnvVarOrString(templateDirEnvVar, DefaultTemplateDir),
		Tracing:         terminus.EnvVarOrBool(tracingEnvVar, false),
	}

	if raw := terminus.EnvVarOrString(environmentEnvVar, ""); raw != "" && cfg.Env.String() != strings.ToUpper(raw) {
		return cfg, fmt.Errorf("%w: %s %q", ErrNotValid, environmentEnvVar, raw)
	}

	raw := strings.ToUpper(terminus.EnvVarOrString(logLevelEnvVar, defaultLogLevel))
	cfg.LogLevel = logger.NewLogLevel(raw)
	if cfg.LogLevel == logger.LogLevelUnk {
		return cfg, fmt.Errorf("%w: %s %q", ErrNotValid, logLevelEnvVar, raw)
	}

	if cfg.Port != "" && cfg.Port[0] != ':' {
		cfg.Port = ":" + cfg.Port
	}

	return cfg, nil
}

// Addr is the address the web server listens on.
func (c Config) Addr() string {
	if c.Host == DefaultHost {
		return c.Port
	}

	return c.Host + c.Port
}
