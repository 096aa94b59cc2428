package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	RecipeAPI RecipeAPIConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Spelling  SpellingConfig
	Search    SearchConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RecipeAPIConfig holds recipe search API credentials and endpoints
type RecipeAPIConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	BaseURL      string `mapstructure:"base_url"`
	TokenURL     string `mapstructure:"token_url"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type     string        `mapstructure:"type"` // "memory" or "redis"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP     int `mapstructure:"per_ip"`     // inbound requests per minute per client IP
	RecipeAPI int `mapstructure:"recipe_api"` // outbound recipe API requests per hour
}

// SpellingConfig holds spell corrector tuning
type SpellingConfig struct {
	MaxEditDistance    int     `mapstructure:"max_edit_distance"`
	AutoApplyThreshold float64 `mapstructure:"auto_apply_threshold"`
	EnableDebugLogging bool    `mapstructure:"enable_debug_logging"`
}

// SearchConfig holds search orchestration tuning
type SearchConfig struct {
	MaxFanOut  int `mapstructure:"max_fan_out"` // max expanded queries issued per search
	MaxResults int `mapstructure:"max_results"` // max results per API query
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pantrypal/")

	v.SetEnvPrefix("PANTRYPAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Recipe API defaults
	v.SetDefault("recipeapi.client_id", "")
	v.SetDefault("recipeapi.client_secret", "")
	v.SetDefault("recipeapi.base_url", "https://platform.fatsecret.com/rest")
	v.SetDefault("recipeapi.token_url", "https://oauth.fatsecret.com/connect/token")

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.ttl", "24h")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
	v.SetDefault("ratelimit.recipe_api", 5000)

	// Spelling defaults
	v.SetDefault("spelling.max_edit_distance", 2)
	v.SetDefault("spelling.auto_apply_threshold", 0.7)
	v.SetDefault("spelling.enable_debug_logging", false)

	// Search defaults
	v.SetDefault("search.max_fan_out", 5)
	v.SetDefault("search.max_results", 10)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.RecipeAPI.ClientID == "" || config.RecipeAPI.ClientSecret == "" {
		return fmt.Errorf("recipe API credentials are required (set PANTRYPAL_RECIPEAPI_CLIENT_ID and PANTRYPAL_RECIPEAPI_CLIENT_SECRET)")
	}

	if config.Cache.Type != "memory" && config.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("Redis URL is required when cache type is 'redis'")
	}

	if config.Spelling.AutoApplyThreshold < 0 || config.Spelling.AutoApplyThreshold > 1 {
		return fmt.Errorf("spelling auto-apply threshold must be in [0,1], got: %f", config.Spelling.AutoApplyThreshold)
	}

	return nil
}
