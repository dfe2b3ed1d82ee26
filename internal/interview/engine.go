package interview

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"interview-practice/internal/domain"
	"interview-practice/internal/observability"
	"interview-practice/internal/scoring"
)

// DefaultFeedbackDelay - пауза перед следующим вопросом после ответа
const DefaultFeedbackDelay = time.Second

// Resolver выдает упорядоченный список вопросов для сессии
type Resolver interface {
	Resolve(role, dom string, mode domain.Mode) []string
}

// Scorer оценивает ответ пользователя
type Scorer interface {
	Score(answer string, mode domain.Mode) scoring.Evaluation
}

// Observer получает уведомления о ходе сессий (например, метрики)
type Observer interface {
	SessionStarted()
	AnswerSubmitted(score int)
	QuestionSkipped()
	SessionCompleted(finalScore float64)
	SessionAbandoned()
}

// Options настраивает движок
type Options struct {
	// FeedbackDelay - косметическая пауза после Submit; 0 отключает ее
	FeedbackDelay time.Duration
	// Clock возвращает текущее время; по умолчанию time.Now
	Clock func() time.Time
	// OnComplete вызывается один раз при завершении сессии
	OnComplete func(Outcome)
	Observer   Observer
}

// Engine создает сессии интервью
type Engine struct {
	resolver Resolver
	scorer   Scorer
	opts     Options
}

// NewEngine создает движок сессий
func NewEngine(resolver Resolver, scorer Scorer, opts Options) *Engine {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.FeedbackDelay < 0 {
		opts.FeedbackDelay = 0
	}
	return &Engine{
		resolver: resolver,
		scorer:   scorer,
		opts:     opts,
	}
}

// Start начинает новую сессию: первый вопрос сразу попадает в таймлайн
func (e *Engine) Start(ctx context.Context, role, dom string, mode domain.Mode) (*Session, error) {
	if _, err := domain.ParseMode(string(mode)); err != nil {
		return nil, err
	}

	questions := e.resolver.Resolve(role, dom, mode)
	if len(questions) == 0 {
		return nil, fmt.Errorf("ошибка запуска сессии %s/%s/%s: %w", role, dom, mode, ErrNoQuestions)
	}

	s := &Session{
		id:        uuid.New().String(),
		role:      role,
		domain:    dom,
		mode:      mode,
		questions: questions,
		state:     StateActive,
		scorer:    e.scorer,
		opts:      e.opts,
	}
	s.startedAt = s.now()
	s.logger = observability.LoggerFromContext(ctx).With(
		"session_id", s.id,
		"role", role,
		"domain", dom,
		"mode", string(mode),
	)

	s.appendEntry(domain.KindQuestion, questions[0], nil)

	if e.opts.Observer != nil {
		e.opts.Observer.SessionStarted()
	}
	s.logger.Info("сессия начата", "questions", len(questions))

	return s, nil
}
