package observability

import "github.com/fakunet/backoffice/internal/config"

// Config carries the observability-facing slice of application config.
type Config struct {
	ServiceName string
	Environment string
	Version     string

	LogLevel  string
	LogFormat string

	MetricsEnabled  bool
	MetricsEndpoint string
	MetricsProtocol string
}

func LoadConfig(cfg config.Config) Config {
	return Config{
		ServiceName:     cfg.AppName,
		Environment:     cfg.Environment,
		Version:         cfg.AppVersion,
		LogLevel:        cfg.LogLevel,
		LogFormat:       cfg.LogFormat,
		MetricsEnabled:  cfg.MetricsEnabled,
		MetricsEndpoint: cfg.MetricsEndpoint,
		MetricsProtocol: cfg.MetricsProtocol,
	}
}

func (c Config) Debug() bool {
	return c.Environment != "production"
}
