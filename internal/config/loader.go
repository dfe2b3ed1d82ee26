package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Load загружает конфигурацию из YAML файла.
// Если файла нет, возвращается конфигурация по умолчанию.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла %s: %w", filename, err)
	}

	config := Default()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга YAML: %w", err)
	}

	// Валидация конфигурации
	err = validateConfig(config)
	if err != nil {
		return nil, fmt.Errorf("ошибка валидации конфигурации: %w", err)
	}

	return config, nil
}

// validateConfig проверяет корректность конфигурации и разбирает длительности
func validateConfig(config *Config) error {
	ic := &config.InterviewConfig

	if ic.FeedbackDelay == "" {
		ic.delay = 0
		return nil
	}

	delay, err := time.ParseDuration(ic.FeedbackDelay)
	if err != nil {
		return fmt.Errorf("feedback_delay имеет неверный формат %q: %w", ic.FeedbackDelay, err)
	}
	if delay < 0 {
		return fmt.Errorf("feedback_delay не может быть отрицательным")
	}
	if delay > time.Minute {
		return fmt.Errorf("feedback_delay не может превышать минуту, получено %s", delay)
	}
	ic.delay = delay

	return nil
}
