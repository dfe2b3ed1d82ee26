package config

import (
	"os"
	"strconv"
	"time"
)

// AppConfig содержит настройки из переменных окружения
type AppConfig struct {
	ConfigFile    string
	ResultsDir    string
	HistoryDB     string
	FeedbackDelay time.Duration
	// DisableHistory отключает SQLite историю независимо от YAML
	DisableHistory bool
	Log            LogConfig
}

type LogConfig struct {
	Level  string
	Format string
}

func LoadAppConfig() *AppConfig {
	return &AppConfig{
		ConfigFile:     getEnv("INTERVIEW_CONFIG", "config/interview.yaml"),
		ResultsDir:     getEnv("INTERVIEW_RESULTS_DIR", "results"),
		HistoryDB:      getEnv("INTERVIEW_HISTORY_DB", ".interview/history.db"),
		FeedbackDelay:  getEnvAsDuration("INTERVIEW_FEEDBACK_DELAY", -1),
		DisableHistory: getEnvAsBool("INTERVIEW_DISABLE_HISTORY", false),
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "warn"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}
}

// HistoryEnabled сообщает, нужно ли писать историю сессий
func (a *AppConfig) HistoryEnabled(cfg *Config) bool {
	return !a.DisableHistory && cfg.IsHistoryEnabled()
}

// ResolveFeedbackDelay выбирает паузу: переменная окружения важнее YAML
func (a *AppConfig) ResolveFeedbackDelay(cfg *Config) time.Duration {
	if a.FeedbackDelay >= 0 {
		return a.FeedbackDelay
	}
	return cfg.GetFeedbackDelay()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
