package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// External services
	Clarifai ClarifaiConfig
	OpenAI   OpenAIConfig

	// In-memory state
	Session   SessionConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type ClarifaiConfig struct {
	PAT        string
	UserID     string
	AppID      string
	WorkflowID string
	BaseURL    string
}

type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	IntentModel string
	VisionModel string
}

type SessionConfig struct {
	TTL        time.Duration
	MaxEntries int
}

type RateLimitConfig struct {
	PerMin  int
	Enabled bool
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Clarifai
	cfg.Clarifai.PAT = viper.GetString("clarifai.pat")
	cfg.Clarifai.UserID = viper.GetString("clarifai.user_id")
	cfg.Clarifai.AppID = viper.GetString("clarifai.app_id")
	cfg.Clarifai.WorkflowID = viper.GetString("clarifai.workflow_id")
	cfg.Clarifai.BaseURL = viper.GetString("clarifai.base_url")
	if pat := viper.GetString("clarifai_pat"); pat != "" {
		cfg.Clarifai.PAT = pat
	}

	// OpenAI
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	cfg.OpenAI.Model = viper.GetString("openai.model")
	cfg.OpenAI.IntentModel = viper.GetString("openai.intent_model")
	cfg.OpenAI.VisionModel = viper.GetString("openai.vision_model")
	if key := viper.GetString("openai_api_key"); key != "" {
		cfg.OpenAI.APIKey = key
	}

	// Session store
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxEntries = viper.GetInt("session.max_entries")

	// Rate limiting
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("clarifai.user_id", "clarifai")
	viper.SetDefault("clarifai.app_id", "main")
	viper.SetDefault("clarifai.workflow_id", "Food")
	viper.SetDefault("clarifai.base_url", "https://api.clarifai.com")

	viper.SetDefault("openai.model", "gpt-4o")
	viper.SetDefault("openai.intent_model", "gpt-4o-mini")
	viper.SetDefault("openai.vision_model", "gpt-4o")

	viper.SetDefault("session.ttl", "24h")
	viper.SetDefault("session.max_entries", 1000)

	viper.SetDefault("rate_limit.per_min", 60)
	viper.SetDefault("rate_limit.enabled", true)
}
