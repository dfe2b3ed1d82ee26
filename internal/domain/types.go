package domain

import (
	"fmt"
	"strings"
	"time"
)

// Mode представляет режим интервью
type Mode string

const (
	ModeTechnical  Mode = "technical"
	ModeBehavioral Mode = "behavioral"
)

// ParseMode разбирает режим интервью из строки (регистр не важен)
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeTechnical:
		return ModeTechnical, nil
	case ModeBehavioral:
		return ModeBehavioral, nil
	default:
		return "", fmt.Errorf("неизвестный режим интервью %q: ожидался %q или %q", s, ModeTechnical, ModeBehavioral)
	}
}

// Title возвращает человекочитаемое название режима
func (m Mode) Title() string {
	switch m {
	case ModeTechnical:
		return "Technical"
	case ModeBehavioral:
		return "Behavioral"
	default:
		return string(m)
	}
}

// EntryKind представляет тип записи в таймлайне
type EntryKind string

const (
	KindQuestion EntryKind = "question"
	KindAnswer   EntryKind = "answer"
	KindFeedback EntryKind = "feedback"
)

// SkipSentinel - содержимое ответа, которым помечается пропущенный вопрос
const SkipSentinel = "[Skipped]"

// TimelineEntry представляет одну запись таймлайна сессии
type TimelineEntry struct {
	ID        int64     `json:"id"`
	Kind      EntryKind `json:"kind"`
	Content   string    `json:"content"`
	Score     *int      `json:"score,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IsSkip сообщает, является ли запись ответом-пропуском
func (e TimelineEntry) IsSkip() bool {
	return e.Kind == KindAnswer && e.Content == SkipSentinel
}

// Resource представляет рекомендованный материал для подготовки
type Resource struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// SessionResult представляет итог завершенной сессии
type SessionResult struct {
	SessionID        string     `json:"session_id"`
	Role             string     `json:"role"`
	Domain           string     `json:"domain"`
	Mode             Mode       `json:"mode"`
	FinalScore       float64    `json:"final_score"`
	Level            Level      `json:"performance_level"`
	HighestScore     int        `json:"highest_score"`
	QuestionCount    int        `json:"question_count"`
	AnsweredCount    int        `json:"answered_count"`
	SkippedCount     int        `json:"skipped_count"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	Strengths        []string   `json:"strengths"`
	Improvements     []string   `json:"improvements"`
	Resources        []Resource `json:"resources"`
	CompletedAt      time.Time  `json:"completed_at"`
}

// Level - уровень результата для отображения
type Level string

const (
	LevelExcellent        Level = "Excellent"
	LevelGood             Level = "Good"
	LevelAverage          Level = "Average"
	LevelNeedsImprovement Level = "Needs Improvement"
)
