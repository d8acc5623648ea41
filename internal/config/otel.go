package config

// Otel configures trace export. An empty CollectorURL disables exporting
// entirely.
type Otel struct {
	ServiceName   string  `env:"OTEL_SERVICE_NAME" envDefault:"shopbill"`
	CollectorURL  string  `env:"OTEL_COLLECTOR_URL"`
	CollectorAuth string  `env:"OTEL_COLLECTOR_AUTH"`
	Insecure      bool    `env:"OTEL_INSECURE"`
	TraceIDRatio  float64 `env:"OTEL_TRACE_ID_RATIO" envDefault:"0.1"`
}
