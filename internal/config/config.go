package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

// Config aggregates the service configuration.
type Config struct {
	Server ServerConfig
	AI     AIConfig
	Store  StoreConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	store, err := loadStoreConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, AI: ai, Store: store}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow passing ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig describes the chat-completion provider used for the thank-you
// generator and the chat widget. OpenAI credentials take precedence; Ark
// credentials are accepted as the alternate provider.
type AIConfig struct {
	OpenAIAPIKey  string
	OpenAIBaseURL string
	ArkAPIKey     string
	ArkAccessKey  string
	ArkSecretKey  string
	ArkBaseURL    string
	ArkRegion     string
	Model         string

	ChatMaxTokens   int
	ChatTemperature float32
}

// Enabled reports whether a provider credential is present.
func (c AIConfig) Enabled() bool {
	return c.OpenAIAPIKey != "" || c.ArkAPIKey != "" || (c.ArkAccessKey != "" && c.ArkSecretKey != "")
}

// NewChatModel builds a model instance for the configured provider. The
// optional bounds apply to every completion the instance produces.
func (c AIConfig) NewChatModel(ctx context.Context, maxTokens *int, temperature *float32) (model.ChatModel, error) {
	if c.OpenAIAPIKey != "" {
		return openai.NewChatModel(ctx, &openai.ChatModelConfig{
			APIKey:      c.OpenAIAPIKey,
			BaseURL:     c.OpenAIBaseURL,
			Model:       c.Model,
			MaxTokens:   maxTokens,
			Temperature: temperature,
		})
	}

	if c.ArkAPIKey != "" || (c.ArkAccessKey != "" && c.ArkSecretKey != "") {
		return ark.NewChatModel(ctx, &ark.ChatModelConfig{
			BaseURL:     c.ArkBaseURL,
			Region:      c.ArkRegion,
			APIKey:      c.ArkAPIKey,
			AccessKey:   c.ArkAccessKey,
			SecretKey:   c.ArkSecretKey,
			Model:       c.Model,
			MaxTokens:   maxTokens,
			Temperature: temperature,
		})
	}

	return nil, fmt.Errorf("aucune clé API configurée : fournir OPENAI_API_KEY ou ARK_API_KEY/AK+SK")
}

func loadAIConfig() (AIConfig, error) {
	chatMaxTokens := 300
	if override, err := parseOptionalIntEnv("CHAT_MAX_TOKENS"); err != nil {
		return AIConfig{}, err
	} else if override != nil {
		chatMaxTokens = *override
	}

	chatTemperature := float32(0.8)
	if override, err := parseOptionalFloat32Env("CHAT_TEMPERATURE"); err != nil {
		return AIConfig{}, err
	} else if override != nil {
		chatTemperature = *override
	}

	return AIConfig{
		OpenAIAPIKey:    strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL:   strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
		ArkAPIKey:       strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		ArkAccessKey:    strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		ArkSecretKey:    strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		ArkBaseURL:      getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		ArkRegion:       getEnvOrDefault("ARK_REGION", "cn-beijing"),
		Model:           getEnvOrDefault("AI_MODEL", "gpt-4o-mini"),
		ChatMaxTokens:   chatMaxTokens,
		ChatTemperature: chatTemperature,
	}, nil
}

// StoreConfig bounds the confirmation message store.
type StoreConfig struct {
	TTL      time.Duration
	Capacity int
}

func loadStoreConfig() (StoreConfig, error) {
	ttlSeconds := 3600
	if override, err := parseOptionalIntEnv("MESSAGE_TTL_SECONDS"); err != nil {
		return StoreConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return StoreConfig{}, fmt.Errorf("MESSAGE_TTL_SECONDS must be positive, got %d", *override)
		}
		ttlSeconds = *override
	}

	capacity := 10000
	if override, err := parseOptionalIntEnv("MESSAGE_CAPACITY"); err != nil {
		return StoreConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return StoreConfig{}, fmt.Errorf("MESSAGE_CAPACITY must be positive, got %d", *override)
		}
		capacity = *override
	}

	return StoreConfig{TTL: time.Duration(ttlSeconds) * time.Second, Capacity: capacity}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalFloat32Env(key string) (*float32, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	result := float32(val)
	return &result, nil
}
