package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port               string
	VideoProvider      string
	LeagueProvider     string
	YouTube            YouTubeConfig
	KBO                KBOConfig
	CacheTTL           Duration
	HighlightCount     int
	CORSAllowedOrigins []string
	Metrics            MetricsConfig
	Logging            LoggingConfig
}

// Load reads configuration from environment variables with sensible defaults. When CONFIG_FILE
// points at a YAML file its keys are used for anything the environment leaves unset.
func Load() (Config, error) {
	return LoadFile(os.Getenv(envConfigFile))
}

// LoadFile is Load with an explicit config file path; an empty path reads the environment only.
func LoadFile(path string) (Config, error) {
	src := newSource()
	if strings.TrimSpace(path) != "" {
		if err := src.readFile(path); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}
	return src.load(), nil
}

func (s *source) load() Config {
	return Config{
		Port:               s.envOrDefault(envPort, defaultPort),
		VideoProvider:      strings.ToLower(s.envOrDefault(envVideoProvider, defaultVideoProvider)),
		LeagueProvider:     strings.ToLower(s.envOrDefault(envLeagueProvider, defaultLeagueProvider)),
		YouTube:            s.loadYouTube(),
		KBO:                s.loadKBO(),
		CacheTTL:           s.durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
		HighlightCount:     s.intEnvOrDefault(envHighlightCount, defaultHighlightCount),
		CORSAllowedOrigins: s.listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		Metrics:            s.loadMetrics(),
		Logging:            s.loadLogging(),
	}
}
