package shared

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv        string        `mapstructure:"app_env" validate:"oneof=dev development prod production test"`
	LogLevel      string        `mapstructure:"log_level"`
	HTTPAddr      string        `mapstructure:"http_addr" validate:"required"`
	MetricsAddr   string        `mapstructure:"metrics_addr"`
	SourceURL     string        `mapstructure:"source_url" validate:"required"`
	ListingLimit  int           `mapstructure:"listing_limit" validate:"min=1"`
	SourceRPS     int           `mapstructure:"source_rps" validate:"min=1"`
	SourceTimeout time.Duration `mapstructure:"source_timeout" validate:"min=0"`
	Container     string        `mapstructure:"container" validate:"oneof=memory redis"`
	RedisAddr     string        `mapstructure:"redis_addr" validate:"required_if=Container redis"`
	RedisPass     string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db" validate:"min=0"`
	RedisKey      string        `mapstructure:"redis_key"`
	OutputPath    string        `mapstructure:"output_path"`
}

// Load reads configuration from the environment (APP_ENV, SOURCE_URL, ...)
// on top of defaults and validates it.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := validator.New().Struct(c); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if c.SourceTimeout == 0 {
		log.Debug().Msg("SOURCE_TIMEOUT is 0; source fetches have no deadline")
	}
	return c, nil
}

// Every key needs a default so AutomaticEnv can see it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "prod")
	v.SetDefault("log_level", "info")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("metrics_addr", "")
	v.SetDefault("source_url", "data/airbnb_listings2/airbnb_sf_listings_500.json")
	v.SetDefault("listing_limit", 50)
	v.SetDefault("source_rps", 1)
	v.SetDefault("source_timeout", "0s")
	v.SetDefault("container", "memory")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("redis_key", "staycards:cards")
	v.SetDefault("output_path", "")
}
