package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port           string
	Env            string
	LogLevel       string
	Debug          bool
	TrustedProxies []string
	AllowedOrigins []string

	// Адрес основного API PVNDORA (источник истины по деньгам/стокам/банам)
	APIBaseURL string
	APITimeout time.Duration
	WebAppURL  string // публичный адрес мини-аппа (для бота и реферальных ссылок)
	StaticPath string // каталог статики страниц (/static)

	TelegramBotToken string
	BotUsername      string

	DevMode bool // если true – без Telegram подставляется тестовый пользователь

	SessionSecret string // подпись cookie, оборачивающей bearer-сессию
	SessionTTL    time.Duration
	SessionFile   string // локальное хранилище токена (аналог pvndora_session)

	// Валюта отображения по умолчанию и курсы к USD
	DefaultCurrency string
	RUBPerUSD       float64
	EURPerUSD       float64
}

func Load() *Config {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Debug:          getEnvAsBool("DEBUG", true),
		TrustedProxies: []string{},
		AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),

		APIBaseURL: getEnv("PVNDORA_API_URL", "http://localhost:8000"),
		APITimeout: getEnvAsDuration("PVNDORA_API_TIMEOUT", 30*time.Second),
		WebAppURL:  getEnv("WEBAPP_URL", "https://app.pvndora.shop"),
		StaticPath: getEnv("STATIC_PATH", "./static"),

		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		BotUsername:      getEnv("TELEGRAM_BOT_USERNAME", "pvndora_bot"),

		DevMode: getEnvAsBool("DEV_MODE", false),

		SessionSecret: getEnv("SESSION_SECRET", "default-session-secret"),
		SessionTTL:    getEnvAsDuration("SESSION_TTL", 30*24*time.Hour),
		SessionFile:   getEnv("SESSION_FILE", ".pvndora_session"),

		DefaultCurrency: getEnv("DEFAULT_CURRENCY", "USD"),
		RUBPerUSD:       getEnvAsFloat("RUB_PER_USD", 95.0),
		EURPerUSD:       getEnvAsFloat("EUR_PER_USD", 0.92),
	}

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		cfg.TrustedProxies = strings.Split(proxies, ",")
	}

	log.Printf("📋 Конфигурация загружена: порт=%s, режим=%s, API=%s, DevMode=%v",
		cfg.Port, cfg.Env, cfg.APIBaseURL, cfg.DevMode)
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	strVal := getEnv(key, "")
	if val, err := strconv.ParseBool(strVal); err == nil {
		return val
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	strVal := getEnv(key, "")
	if val, err := strconv.ParseFloat(strVal, 64); err == nil {
		return val
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	strVal := getEnv(key, "")
	if val, err := time.ParseDuration(strVal); err == nil {
		return val
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	val := getEnv(key, "")
	if val == "" {
		return defaultValue
	}
	parts := strings.Split(val, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
