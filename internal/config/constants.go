package config

import "time"

const (
	envProvider        = "PROVIDER"
	envHTTPTimeout     = "HTTP_TIMEOUT"
	envRefreshInterval = "REFRESH_INTERVAL"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envLogFile         = "LOG_FILE"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultProvider    = "balldontlie"
	defaultHTTPTimeout = 10 * Duration(time.Second)
	// Upper bound on how long the viewer waits for input before redrawing.
	defaultRefreshInterval = 250 * Duration(time.Millisecond)
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultMetricsPort     = "9090"
	defaultMetricsEnabled  = false
	defaultServiceName     = "nba-scores"
)
