package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds everything the process reads from the environment.
type Config struct {
	OpenAIAPIKey     string
	TelegramBotToken string

	GoogleSearchAPIKey string
	GoogleSearchCX     string

	HistoryLimit  int
	SessionIdle   time.Duration
	SweepInterval time.Duration

	LogoPath    string
	Port        string
	AdminChatID int64
}

// Load reads configuration from environment variables. The two API secrets
// are required; everything else falls back to a default.
func Load() (Config, error) {
	openaiKey := os.Getenv("OPENAI_API_KEY")
	if openaiKey == "" {
		return Config{}, fmt.Errorf("OPENAI_API_KEY is required in environment")
	}

	botToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	if botToken == "" {
		return Config{}, fmt.Errorf("TELEGRAM_BOT_TOKEN is required in environment")
	}

	return Config{
		OpenAIAPIKey:     openaiKey,
		TelegramBotToken: botToken,

		GoogleSearchAPIKey: os.Getenv("GOOGLE_SEARCH_API_KEY"),
		GoogleSearchCX:     os.Getenv("GOOGLE_SEARCH_CX"),

		HistoryLimit:  envIntOrDefault("CHAT_HISTORY_LIMIT", 10),
		SessionIdle:   time.Duration(envIntOrDefault("SESSION_IDLE_MINUTES", 300)) * time.Minute,
		SweepInterval: time.Duration(envIntOrDefault("SESSION_SWEEP_MINUTES", 30)) * time.Minute,

		LogoPath:    envOrDefault("LOGO_PATH", "chatnova_logo.png"),
		Port:        envOrDefault("PORT", "8080"),
		AdminChatID: envInt64OrDefault("ADMIN_CHAT_ID", 0),
	}, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOrDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envInt64OrDefault(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}
