package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func (s *source) loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      s.boolEnvOrDefault(envMetricsOn, true),
		Port:         s.envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: s.envOrDefault(envOtelEndpoint, ""),
		ServiceName:  s.envOrDefault(envOtelService, defaultServiceName),
		OtlpInsecure: s.boolEnvOrDefault(envOtelInsecure, true),
	}
}
