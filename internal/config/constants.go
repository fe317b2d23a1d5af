package config

import "time"

const (
	envConfigFile     = "CONFIG_FILE"
	envPort           = "PORT"
	envVideoProvider  = "VIDEO_PROVIDER"
	envLeagueProvider = "LEAGUE_PROVIDER"
	envYouTubeAPIKey  = "YOUTUBE_API_KEY"
	envYouTubeBaseURL = "YOUTUBE_BASE_URL"
	envYouTubeRPS     = "YOUTUBE_RPS"
	envYouTubeBurst   = "YOUTUBE_BURST"
	envKBOBaseURL     = "KBO_BASE_URL"
	envKBORPS         = "KBO_RPS"
	envCacheTTL       = "CACHE_TTL"
	envHighlightCount = "HIGHLIGHT_COUNT"
	envCORSOrigins    = "CORS_ALLOWED_ORIGINS"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"
	envLogFile        = "LOG_FILE"

	defaultPort           = "4000"
	defaultVideoProvider  = ProviderYouTube
	defaultLeagueProvider = ProviderKBO
	defaultYouTubeBaseURL = "https://www.googleapis.com/youtube/v3"
	defaultKBOBaseURL     = "https://www.koreabaseball.com/ws"
	// The Data API bills 100 units per search; a low steady rate keeps a single key inside its daily quota.
	defaultYouTubeRPS   = 1.0
	defaultYouTubeBurst = 5
	defaultKBORPS       = 2.0
	defaultCacheTTL     = 5 * Duration(time.Minute)
	// Matches the page size the highlight pages request.
	defaultHighlightCount = 10
	defaultCORSOrigins    = "*"
	defaultMetricsPort    = "9090"
	defaultServiceName    = "kbo-fan-service"
	defaultLogLevel       = "info"
	defaultLogFormat      = "text"

	// ProviderYouTube and ProviderKBO select the live upstreams; ProviderFixture serves embedded data.
	ProviderYouTube = "youtube"
	ProviderKBO     = "kbo"
	ProviderFixture = "fixture"
)
