package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Proximity configuration for radius defaults and paging
	Proximity *ProximityConfig `json:"proximity" yaml:"proximity"`

	// Enrichment configuration for tagging, description and suggestions
	Enrichment *EnrichmentConfig `json:"enrichment" yaml:"enrichment"`

	// Cache configuration for enrichment results and tag job status
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// PubSub configuration for tag job dispatch
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Blob configuration for profile pictures
	Blob *BlobConfig `json:"blob" yaml:"blob"`

	// RateLimit configuration for anonymous endpoints
	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTTL  time.Duration `json:"accessTTL" yaml:"accessTTL"`
	RefreshTTL time.Duration `json:"refreshTTL" yaml:"refreshTTL"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`

	// Queries slower than this are logged as warnings; 0 means 200ms
	SlowQuery time.Duration `json:"slowQuery" yaml:"slowQuery"`
}

// ProximityConfig defines default radii (km) per listing kind and paging bounds.
type ProximityConfig struct {
	BusinessRadiusKm       float64 `json:"businessRadiusKm" yaml:"businessRadiusKm"`
	ProductRadiusKm        float64 `json:"productRadiusKm" yaml:"productRadiusKm"`
	ServiceRadiusKm        float64 `json:"serviceRadiusKm" yaml:"serviceRadiusKm"`
	NearbyBusinessRadiusKm float64 `json:"nearbyBusinessRadiusKm" yaml:"nearbyBusinessRadiusKm"`
	AvailabilityRadiusKm   float64 `json:"availabilityRadiusKm" yaml:"availabilityRadiusKm"`
	DefaultPageSize        int     `json:"defaultPageSize" yaml:"defaultPageSize"`
	MaxPageSize            int     `json:"maxPageSize" yaml:"maxPageSize"`
}

// EnrichmentConfig defines the hosted inference endpoint and model settings
type EnrichmentConfig struct {
	// Base URL of a Hugging Face compatible inference API
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Bearer token for the inference API
	Token string `json:"token" yaml:"token"`

	ZeroShotModel     string   `json:"zeroShotModel" yaml:"zeroShotModel"`
	DescriptionModel  string   `json:"descriptionModel" yaml:"descriptionModel"`
	MultilingualModel string   `json:"multilingualModel" yaml:"multilingualModel"`
	CandidateLabels   []string `json:"candidateLabels" yaml:"candidateLabels"`

	// Minimum zero-shot score for a label to be kept
	ScoreThreshold float64 `json:"scoreThreshold" yaml:"scoreThreshold"`
	MaxTags        int     `json:"maxTags" yaml:"maxTags"`

	// Maximum length of text accepted by the tag endpoint
	MaxTextLength int `json:"maxTextLength" yaml:"maxTextLength"`

	// Maximum generated description length
	MaxDescriptionLength int `json:"maxDescriptionLength" yaml:"maxDescriptionLength"`

	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
	CacheTTL time.Duration `json:"cacheTTL" yaml:"cacheTTL"`

	// Circuit breaker: consecutive failures before opening and cool-down
	BreakerFailures uint32        `json:"breakerFailures" yaml:"breakerFailures"`
	BreakerTimeout  time.Duration `json:"breakerTimeout" yaml:"breakerTimeout"`

	// Requests per minute per user on the AI endpoints
	RatePerMinute int `json:"ratePerMinute" yaml:"ratePerMinute"`

	// Number of suggestions returned
	SuggestionLimit int `json:"suggestionLimit" yaml:"suggestionLimit"`
}

// CacheConfig selects the cache backend
type CacheConfig struct {
	// Driver: "valkey" or "memory" (badger in-memory)
	Driver string `json:"driver" yaml:"driver"`

	// Valkey address (host:port) for the valkey driver
	Address string `json:"address" yaml:"address"`

	// How long tag job status is kept
	JobTTL time.Duration `json:"jobTTL" yaml:"jobTTL"`
}

// PubSubConfig defines Pub/Sub configuration for tag job dispatch
type PubSubConfig struct {
	// Provider type: "inline", "local", "google" or "nats"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Push audience checked on OIDC tokens by the worker (for google provider)
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`

	// NATS server URL and subject (for nats provider)
	NATSURL     string `json:"natsUrl" yaml:"natsUrl"`
	NATSSubject string `json:"natsSubject" yaml:"natsSubject"`
}

// BlobConfig defines where profile pictures are written
type BlobConfig struct {
	// gocloud bucket URL, e.g. file:///var/soko/media, gs://bucket, s3://bucket
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Public URL prefix prepended to stored object keys
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
}

// RateLimitConfig defines anonymous request limits
type RateLimitConfig struct {
	AnonymousPerMinute int `json:"anonymousPerMinute" yaml:"anonymousPerMinute"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
