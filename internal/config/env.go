package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Duration wraps time.Duration for clearer type usage in Config.
type Duration = time.Duration

// source resolves keys from the environment first, then an optional config file.
type source struct {
	v *viper.Viper
}

func newSource() *source {
	v := viper.New()
	v.AutomaticEnv()
	return &source{v: v}
}

func (s *source) readFile(path string) error {
	s.v.SetConfigFile(path)
	return s.v.ReadInConfig()
}

func (s *source) raw(key string) string {
	return strings.TrimSpace(s.v.GetString(key))
}

func (s *source) envOrDefault(key, defaultValue string) string {
	if val := s.raw(key); val != "" {
		return val
	}
	return defaultValue
}

func (s *source) durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := s.raw(key)
	if raw == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

func (s *source) intEnvOrDefault(key string, defaultValue int) int {
	raw := s.raw(key)
	if raw == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return defaultValue
	}
	return val
}

func (s *source) floatEnvOrDefault(key string, defaultValue float64) float64 {
	raw := s.raw(key)
	if raw == "" {
		return defaultValue
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil || val <= 0 {
		return defaultValue
	}
	return val
}

func (s *source) boolEnvOrDefault(key string, defaultValue bool) bool {
	raw := s.raw(key)
	if raw == "" {
		return defaultValue
	}
	if raw == "1" || strings.EqualFold(raw, "true") || strings.EqualFold(raw, "yes") {
		return true
	}
	if raw == "0" || strings.EqualFold(raw, "false") || strings.EqualFold(raw, "no") {
		return false
	}
	return defaultValue
}

func (s *source) listEnvOrDefault(key, defaultValue string) []string {
	raw := s.envOrDefault(key, defaultValue)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
