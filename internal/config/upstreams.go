package config

// YouTubeConfig controls how we talk to the YouTube Data API.
type YouTubeConfig struct {
	APIKey  string
	BaseURL string
	RPS     float64
	Burst   int
}

// KBOConfig controls how we talk to the KBO league web service.
type KBOConfig struct {
	BaseURL string
	RPS     float64
}

func (s *source) loadYouTube() YouTubeConfig {
	return YouTubeConfig{
		APIKey:  s.envOrDefault(envYouTubeAPIKey, ""),
		BaseURL: s.envOrDefault(envYouTubeBaseURL, defaultYouTubeBaseURL),
		RPS:     s.floatEnvOrDefault(envYouTubeRPS, defaultYouTubeRPS),
		Burst:   s.intEnvOrDefault(envYouTubeBurst, defaultYouTubeBurst),
	}
}

func (s *source) loadKBO() KBOConfig {
	return KBOConfig{
		BaseURL: s.envOrDefault(envKBOBaseURL, defaultKBOBaseURL),
		RPS:     s.floatEnvOrDefault(envKBORPS, defaultKBORPS),
	}
}
