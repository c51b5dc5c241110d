package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/srgjo27/concert_booking/internal/core/services"
)

type Config struct {
	HTTPAddr        string
	RedisAddr       string
	SeatCacheTTL    time.Duration
	BookingStrategy string
	LogLevel        string
	LogFormat       string
	LoadTest        LoadTestConfig
}

type LoadTestConfig struct {
	Workers int
	Timeout time.Duration
}

func Default() Config {
	return Config{
		HTTPAddr:        ":8080",
		SeatCacheTTL:    30 * time.Second,
		BookingStrategy: services.StrategyLockFree,
		LogLevel:        "info",
		LogFormat:       "text",
		LoadTest: LoadTestConfig{
			Workers: 5,
			Timeout: 10 * time.Second,
		},
	}
}

// Load reads an optional .env file and then the environment. Variables
// already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	defaults := Default()
	v.SetDefault("http_addr", defaults.HTTPAddr)
	v.SetDefault("redis_addr", defaults.RedisAddr)
	v.SetDefault("seat_cache_ttl", defaults.SeatCacheTTL)
	v.SetDefault("booking_strategy", defaults.BookingStrategy)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)
	v.SetDefault("loadtest_workers", defaults.LoadTest.Workers)
	v.SetDefault("loadtest_timeout", defaults.LoadTest.Timeout)

	cfg := Config{
		HTTPAddr:        v.GetString("http_addr"),
		RedisAddr:       v.GetString("redis_addr"),
		SeatCacheTTL:    v.GetDuration("seat_cache_ttl"),
		BookingStrategy: strings.ToLower(v.GetString("booking_strategy")),
		LogLevel:        v.GetString("log_level"),
		LogFormat:       v.GetString("log_format"),
		LoadTest: LoadTestConfig{
			Workers: v.GetInt("loadtest_workers"),
			Timeout: v.GetDuration("loadtest_timeout"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch c.BookingStrategy {
	case services.StrategyLockFree, services.StrategyMutex:
	default:
		return fmt.Errorf("invalid BOOKING_STRATEGY %q: want %s or %s", c.BookingStrategy, services.StrategyLockFree, services.StrategyMutex)
	}

	if c.LoadTest.Workers <= 0 {
		return fmt.Errorf("invalid LOADTEST_WORKERS %d: must be positive", c.LoadTest.Workers)
	}
	if c.LoadTest.Timeout <= 0 {
		return fmt.Errorf("invalid LOADTEST_TIMEOUT %s: must be positive", c.LoadTest.Timeout)
	}
	if c.SeatCacheTTL <= 0 {
		return fmt.Errorf("invalid SEAT_CACHE_TTL %s: must be positive", c.SeatCacheTTL)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return nil
}

// ConfigureLogging applies level and format to the standard logrus logger.
func (c Config) ConfigureLogging() {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if strings.EqualFold(c.LogFormat, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
