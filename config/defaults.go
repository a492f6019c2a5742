package config

import (
	"strings"
	"time"
)

const (
	defaultBcryptCost = 12
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour

	defaultInferenceEndpoint    = "https://api-inference.huggingface.co"
	defaultZeroShotModel        = "valhalla/distilbart-mnli-12-3"
	defaultDescriptionModel     = "mrm8488/t5-base-finetuned-common_gen"
	defaultMultilingualModel    = "google/mt5-small"
	defaultScoreThreshold       = 0.7
	defaultMaxTags              = 5
	defaultMaxTextLength        = 1000
	defaultMaxDescriptionLength = 200
	defaultInferenceTimeout     = 15 * time.Second
	defaultEnrichmentCacheTTL   = time.Hour
	defaultBreakerFailures      = 5
	defaultBreakerTimeout       = 30 * time.Second
	defaultAIRatePerMinute      = 10
	defaultSuggestionLimit      = 5

	defaultJobTTL             = 24 * time.Hour
	defaultNATSSubject        = "soko.enrichment.tags"
	defaultAnonymousPerMinute = 60
)

// DefaultCandidateLabels are the zero-shot labels used when none are configured.
func DefaultCandidateLabels() []string {
	return []string{
		"electronics", "microcontroller", "sensor", "development board",
		"power tool", "pump", "motor", "component", "kit", "prototyping",
		"raspberry pi", "arduino", "esp32", "iot", "robotics",
	}
}

// ApplyDefaults fills optional sections and zero values. It is idempotent.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Auth.AccessTTL == 0 {
		cfg.Auth.AccessTTL = defaultAccessTTL
	}
	if cfg.Auth.RefreshTTL == 0 {
		cfg.Auth.RefreshTTL = defaultRefreshTTL
	}

	if cfg.Proximity == nil {
		cfg.Proximity = &ProximityConfig{}
	}

	cfg.applyEnrichmentDefaults()

	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Cache.JobTTL == 0 {
		cfg.Cache.JobTTL = defaultJobTTL
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.PubSub.NATSSubject == "" {
		cfg.PubSub.NATSSubject = defaultNATSSubject
	}

	if cfg.Blob == nil {
		cfg.Blob = &BlobConfig{}
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
	if cfg.RateLimit.AnonymousPerMinute == 0 {
		cfg.RateLimit.AnonymousPerMinute = defaultAnonymousPerMinute
	}
}

func (cfg *Config) applyEnrichmentDefaults() {
	if cfg.Enrichment == nil {
		cfg.Enrichment = &EnrichmentConfig{}
	}
	e := cfg.Enrichment

	if e.Endpoint == "" {
		e.Endpoint = defaultInferenceEndpoint
	}
	if e.ZeroShotModel == "" {
		e.ZeroShotModel = defaultZeroShotModel
	}
	if e.DescriptionModel == "" {
		e.DescriptionModel = defaultDescriptionModel
	}
	if e.MultilingualModel == "" {
		e.MultilingualModel = defaultMultilingualModel
	}
	if len(e.CandidateLabels) == 0 {
		e.CandidateLabels = DefaultCandidateLabels()
	}
	if e.ScoreThreshold == 0 {
		e.ScoreThreshold = defaultScoreThreshold
	}
	if e.MaxTags == 0 {
		e.MaxTags = defaultMaxTags
	}
	if e.MaxTextLength == 0 {
		e.MaxTextLength = defaultMaxTextLength
	}
	if e.MaxDescriptionLength == 0 {
		e.MaxDescriptionLength = defaultMaxDescriptionLength
	}
	if e.Timeout == 0 {
		e.Timeout = defaultInferenceTimeout
	}
	if e.CacheTTL == 0 {
		e.CacheTTL = defaultEnrichmentCacheTTL
	}
	if e.BreakerFailures == 0 {
		e.BreakerFailures = defaultBreakerFailures
	}
	if e.BreakerTimeout == 0 {
		e.BreakerTimeout = defaultBreakerTimeout
	}
	if e.RatePerMinute == 0 {
		e.RatePerMinute = defaultAIRatePerMinute
	}
	if e.SuggestionLimit == 0 {
		e.SuggestionLimit = defaultSuggestionLimit
	}
}
