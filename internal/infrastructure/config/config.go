package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "SENTIMENT"

// Config holds the application configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Model  ModelConfig  `mapstructure:"model"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Queue  QueueConfig  `mapstructure:"queue"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host string     `mapstructure:"host"`
	Port int        `mapstructure:"port"`
	Mode string     `mapstructure:"mode"`
	CORS CORSConfig `mapstructure:"cors"`
}

// CORSConfig controls cross-origin request support
type CORSConfig struct {
	Enabled        bool     `mapstructure:"enabled"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ModelConfig describes the inference endpoint serving the sentiment model
type ModelConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	ID           string        `mapstructure:"id"`
	Token        string        `mapstructure:"token"`
	Timeout      time.Duration `mapstructure:"timeout"`
	WaitForModel bool          `mapstructure:"wait_for_model"`
	Warmup       bool          `mapstructure:"warmup"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the host:port address of the Redis server
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// QueueConfig controls publishing of received tweets
type QueueConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Topic   string `mapstructure:"topic"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from defaults, an optional config file,
// a .env file and SENTIMENT_* environment variables, in increasing priority.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors.enabled", true)
	v.SetDefault("server.cors.allowed_origins", []string{"*"})

	v.SetDefault("model.base_url", "https://api-inference.huggingface.co")
	v.SetDefault("model.id", "swaraj150/improved_finetuned_model")
	v.SetDefault("model.token", "")
	v.SetDefault("model.timeout", 30*time.Second)
	v.SetDefault("model.wait_for_model", true)
	v.SetDefault("model.warmup", true)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("queue.enabled", false)
	v.SetDefault("queue.topic", "tweet_topic")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Validate checks the configuration for values the service cannot run with
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	if c.Model.BaseURL == "" {
		return errors.New("model.base_url is required")
	}
	if c.Model.ID == "" {
		return errors.New("model.id is required")
	}
	if c.Model.Timeout <= 0 {
		return fmt.Errorf("invalid model.timeout %s", c.Model.Timeout)
	}
	if c.Queue.Enabled && c.Queue.Topic == "" {
		return errors.New("queue.topic is required when queue is enabled")
	}
	return nil
}
