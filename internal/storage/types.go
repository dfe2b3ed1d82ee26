package storage

import (
	"time"

	"interview-practice/internal/domain"
)

// InterviewResult представляет сохраненный результат всей сессии
type InterviewResult struct {
	InterviewID         string               `json:"interview_id"`
	Timestamp           string               `json:"timestamp"`
	Summary             domain.SessionResult `json:"summary"`
	QuestionsAndAnswers []QA                 `json:"questions_and_answers"`
}

// QA представляет один вопрос, ответ и отзыв на него
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Feedback string `json:"feedback,omitempty"`
	Score    *int   `json:"score,omitempty"`
	Skipped  bool   `json:"skipped"`
}

// HistoryEntry - строка списка истории без вопросов и ответов
type HistoryEntry struct {
	InterviewID   string
	Role          string
	Domain        string
	Mode          domain.Mode
	FinalScore    float64
	Level         domain.Level
	AnsweredCount int
	SkippedCount  int
	CompletedAt   time.Time
}

// NewInterviewResult собирает результат из итога и таймлайна сессии.
// Вопрос без ответа (сессия прервана) в результат не попадает.
func NewInterviewResult(summary domain.SessionResult, timeline []domain.TimelineEntry) *InterviewResult {
	result := &InterviewResult{
		InterviewID: summary.SessionID,
		Timestamp:   summary.CompletedAt.Format(time.RFC3339),
		Summary:     summary,
	}

	var current *QA
	flush := func() {
		if current != nil && current.Answer != "" {
			result.QuestionsAndAnswers = append(result.QuestionsAndAnswers, *current)
		}
		current = nil
	}

	for _, e := range timeline {
		switch e.Kind {
		case domain.KindQuestion:
			flush()
			current = &QA{Question: e.Content}
		case domain.KindAnswer:
			if current == nil {
				continue
			}
			current.Answer = e.Content
			current.Skipped = e.IsSkip()
		case domain.KindFeedback:
			if current == nil {
				continue
			}
			current.Feedback = e.Content
			if e.Score != nil {
				score := *e.Score
				current.Score = &score
			}
		}
	}
	flush()

	return result
}

// Timeline восстанавливает записи таймлайна из пар вопрос-ответ
func (r *InterviewResult) Timeline() []domain.TimelineEntry {
	var out []domain.TimelineEntry
	add := func(kind domain.EntryKind, content string, score *int) {
		out = append(out, domain.TimelineEntry{
			ID:        int64(len(out) + 1),
			Kind:      kind,
			Content:   content,
			Score:     score,
			CreatedAt: r.Summary.CompletedAt,
		})
	}
	for _, qa := range r.QuestionsAndAnswers {
		add(domain.KindQuestion, qa.Question, nil)
		add(domain.KindAnswer, qa.Answer, nil)
		if !qa.Skipped {
			add(domain.KindFeedback, qa.Feedback, qa.Score)
		}
	}
	return out
}
