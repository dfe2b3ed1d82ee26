package config

import "time"

// Config представляет конфигурацию интервью
type Config struct {
	InterviewConfig InterviewConfig `yaml:"interview_config"`
}

// InterviewConfig содержит общие настройки сессий
type InterviewConfig struct {
	// FeedbackDelay - пауза между отзывом и следующим вопросом, например "1s"
	FeedbackDelay    string `yaml:"feedback_delay"`
	QuestionBankFile string `yaml:"question_bank_file"`
	HistoryEnabled   *bool  `yaml:"history_enabled"`

	delay time.Duration
}

// Default возвращает конфигурацию по умолчанию, если файла нет
func Default() *Config {
	enabled := true
	return &Config{
		InterviewConfig: InterviewConfig{
			FeedbackDelay:  "1s",
			HistoryEnabled: &enabled,
			delay:          time.Second,
		},
	}
}

// Методы для удобного доступа к конфигурации
func (c *Config) GetFeedbackDelay() time.Duration {
	return c.InterviewConfig.delay
}

func (c *Config) GetQuestionBankFile() string {
	return c.InterviewConfig.QuestionBankFile
}

func (c *Config) IsHistoryEnabled() bool {
	return c.InterviewConfig.HistoryEnabled == nil || *c.InterviewConfig.HistoryEnabled
}
