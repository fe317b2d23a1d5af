package config

// LoggingConfig controls log level, format and optional file output.
type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

func (s *source) loadLogging() LoggingConfig {
	return LoggingConfig{
		Level:  s.envOrDefault(envLogLevel, defaultLogLevel),
		Format: s.envOrDefault(envLogFormat, defaultLogFormat),
		File:   s.envOrDefault(envLogFile, ""),
	}
}
