package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

type AppConfig struct {
	Env                Environment `yaml:"env"`
	LogLevel           string      `yaml:"log_level"`
	ServerPort         string      `yaml:"server_port"`
	RawBodyLog         bool        `yaml:"raw_body_log"`
	HttpTimeoutSeconds int         `yaml:"http_timeout_seconds"`
}

type YouTubeConfig struct {
	WatchURL          string  `yaml:"watch_url"`
	OEmbedURL         string  `yaml:"oembed_url"`
	MaxAttempts       int     `yaml:"max_attempts"`
	InitialWaitMs     int     `yaml:"initial_wait_ms"`
	MaxWaitMs         int     `yaml:"max_wait_ms"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

type TierConfig struct {
	MinSentences int     `yaml:"min_sentences"`
	Percent      float64 `yaml:"percent"`
}

type SummaryConfig struct {
	Damping       float64    `yaml:"damping"`
	Tolerance     float64    `yaml:"tolerance"`
	MaxIterations int        `yaml:"max_iterations"`
	MinSentences  int        `yaml:"min_sentences"`
	ReadingWPM    int        `yaml:"reading_wpm"`
	Short         TierConfig `yaml:"short"`
	Medium        TierConfig `yaml:"medium"`
	Detailed      TierConfig `yaml:"detailed"`
}

type Config struct {
	App     AppConfig     `yaml:"app"`
	YouTube YouTubeConfig `yaml:"youtube"`
	Summary SummaryConfig `yaml:"summary"`
}

// Load builds configuration in three layers: built-in defaults, an optional
// YAML file named by YTBRIEF_CONFIG, and environment variables on top.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path := os.Getenv("YTBRIEF_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	return cfg, nil
}

func Default() *Config {
	return &Config{
		App: AppConfig{
			Env:                Development,
			LogLevel:           "debug",
			ServerPort:         "8080",
			RawBodyLog:         false,
			HttpTimeoutSeconds: 30,
		},
		YouTube: YouTubeConfig{
			WatchURL:          "https://www.youtube.com/watch",
			OEmbedURL:         "https://www.youtube.com/oembed",
			MaxAttempts:       3,
			InitialWaitMs:     500,
			MaxWaitMs:         10000,
			BackoffMultiplier: 2.0,
			RequestsPerSecond: 2.0,
			Burst:             4,
		},
		Summary: SummaryConfig{
			Damping:       0.85,
			Tolerance:     1e-4,
			MaxIterations: 100,
			MinSentences:  3,
			ReadingWPM:    200,
			Short:         TierConfig{MinSentences: 3, Percent: 0.10},
			Medium:        TierConfig{MinSentences: 7, Percent: 0.25},
			Detailed:      TierConfig{MinSentences: 12, Percent: 0.40},
		},
	}
}

func (c *Config) applyEnv() {
	env := parseEnvironment(getEnv("APP_ENV", string(c.App.Env)))
	c.App.Env = env
	if env == Production {
		c.App.LogLevel = "info"
	}
	c.App.LogLevel = getEnv("APP_LOG_LEVEL", c.App.LogLevel)
	c.App.ServerPort = getEnv("APP_SERVER_PORT", c.App.ServerPort)
	c.App.RawBodyLog = getEnvBool("APP_RAW_BODY_LOG", c.App.RawBodyLog)
	c.App.HttpTimeoutSeconds = getEnvInt("APP_HTTP_TIMEOUT_SECONDS", c.App.HttpTimeoutSeconds)

	c.YouTube.WatchURL = getEnv("YOUTUBE_WATCH_URL", c.YouTube.WatchURL)
	c.YouTube.OEmbedURL = getEnv("YOUTUBE_OEMBED_URL", c.YouTube.OEmbedURL)
	c.YouTube.MaxAttempts = getEnvInt("YOUTUBE_MAX_ATTEMPTS", c.YouTube.MaxAttempts)
	c.YouTube.InitialWaitMs = getEnvInt("YOUTUBE_INITIAL_WAIT_MS", c.YouTube.InitialWaitMs)
	c.YouTube.MaxWaitMs = getEnvInt("YOUTUBE_MAX_WAIT_MS", c.YouTube.MaxWaitMs)
	c.YouTube.BackoffMultiplier = getEnvFloat("YOUTUBE_BACKOFF_MULTIPLIER", c.YouTube.BackoffMultiplier)
	c.YouTube.RequestsPerSecond = getEnvFloat("YOUTUBE_REQUESTS_PER_SECOND", c.YouTube.RequestsPerSecond)
	c.YouTube.Burst = getEnvInt("YOUTUBE_BURST", c.YouTube.Burst)

	c.Summary.Damping = getEnvFloat("SUMMARY_DAMPING", c.Summary.Damping)
	c.Summary.Tolerance = getEnvFloat("SUMMARY_TOLERANCE", c.Summary.Tolerance)
	c.Summary.MaxIterations = getEnvInt("SUMMARY_MAX_ITERATIONS", c.Summary.MaxIterations)
	c.Summary.MinSentences = getEnvInt("SUMMARY_MIN_SENTENCES", c.Summary.MinSentences)
	c.Summary.ReadingWPM = getEnvInt("SUMMARY_READING_WPM", c.Summary.ReadingWPM)
	c.Summary.Short.MinSentences = getEnvInt("SUMMARY_SHORT_MIN_SENTENCES", c.Summary.Short.MinSentences)
	c.Summary.Short.Percent = getEnvFloat("SUMMARY_SHORT_PERCENT", c.Summary.Short.Percent)
	c.Summary.Medium.MinSentences = getEnvInt("SUMMARY_MEDIUM_MIN_SENTENCES", c.Summary.Medium.MinSentences)
	c.Summary.Medium.Percent = getEnvFloat("SUMMARY_MEDIUM_PERCENT", c.Summary.Medium.Percent)
	c.Summary.Detailed.MinSentences = getEnvInt("SUMMARY_DETAILED_MIN_SENTENCES", c.Summary.Detailed.MinSentences)
	c.Summary.Detailed.Percent = getEnvFloat("SUMMARY_DETAILED_PERCENT", c.Summary.Detailed.Percent)
}

func (c *Config) Validate() error {
	if c.App.ServerPort == "" {
		return fmt.Errorf("app server port is required")
	}
	if c.YouTube.WatchURL == "" || c.YouTube.OEmbedURL == "" {
		return fmt.Errorf("youtube endpoint URLs are required")
	}
	if c.YouTube.MaxAttempts < 1 {
		c.YouTube.MaxAttempts = 1
	}
	if c.Summary.Damping <= 0 || c.Summary.Damping >= 1 {
		return fmt.Errorf("summary damping must be in (0, 1), got %v", c.Summary.Damping)
	}
	if c.Summary.Tolerance <= 0 {
		return fmt.Errorf("summary tolerance must be positive, got %v", c.Summary.Tolerance)
	}
	if c.Summary.MaxIterations < 1 {
		return fmt.Errorf("summary max iterations must be at least 1, got %d", c.Summary.MaxIterations)
	}
	if c.Summary.MinSentences < 1 {
		c.Summary.MinSentences = 1
	}
	if c.Summary.ReadingWPM < 1 {
		c.Summary.ReadingWPM = 200
	}
	return nil
}

func parseEnvironment(envStr string) Environment {
	env := Environment(strings.ToLower(envStr))

	switch env {
	case Development, Production:
		return env
	default:
		return Development
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value == "true" {
		return true
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
