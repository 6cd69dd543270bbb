package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned when no text-generation credential is configured.
var ErrMissingAPIKey = errors.New("AI_API_KEY is required")

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	AI    AIConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// IsDevelopment reports whether internal error details may be exposed to clients.
func (c AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns the key/value connection string used by the gorm postgres driver.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

// MigrationURL returns the pgx5:// URL understood by golang-migrate.
func (c DBConfig) MigrationURL() string {
	u := url.URL{
		Scheme:   "pgx5",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// Enabled reports whether a Redis host was configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type AIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxLength   int
	Temperature float64
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "5000")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("AI_BASE_URL", "https://api-inference.huggingface.co")
	v.SetDefault("AI_MODEL", "microsoft/DialoGPT-medium")
	v.SetDefault("AI_MAX_LENGTH", 800)
	v.SetDefault("AI_TEMPERATURE", 0.7)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		var pathErr *fs.PathError
		if !errors.As(err, &notFound) && !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	ttl, err := time.ParseDuration(v.GetString("PROFILE_CACHE_TTL"))
	if err != nil || ttl <= 0 {
		ttl = 10 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port: v.GetString("APP_PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			TTL:      ttl,
		},
		AI: AIConfig{
			APIKey:      v.GetString("AI_API_KEY"),
			BaseURL:     v.GetString("AI_BASE_URL"),
			Model:       v.GetString("AI_MODEL"),
			MaxLength:   v.GetInt("AI_MAX_LENGTH"),
			Temperature: v.GetFloat64("AI_TEMPERATURE"),
		},
	}

	if config.AI.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	return config, nil
}
