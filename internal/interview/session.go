package interview

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"interview-practice/internal/domain"
	"interview-practice/internal/summary"
)

// State представляет состояние сессии
type State string

const (
	StateActive     State = "active"
	StateTerminated State = "terminated"
	StateAbandoned  State = "abandoned"
)

// Outcome - то, что сессия отдает слою представления при завершении
type Outcome struct {
	SessionID     string
	Role          string
	Domain        string
	Mode          domain.Mode
	QuestionCount int
	Timeline      []domain.TimelineEntry
	FinalScore    float64
	StartedAt     time.Time
	CompletedAt   time.Time
}

// Summarize передает таймлайн агрегатору и возвращает итог сессии
func (o Outcome) Summarize() domain.SessionResult {
	return summary.Aggregate(summary.Input{
		SessionID:     o.SessionID,
		Role:          o.Role,
		Domain:        o.Domain,
		Mode:          o.Mode,
		Timeline:      o.Timeline,
		QuestionCount: o.QuestionCount,
		CompletedAt:   o.CompletedAt,
	})
}

// Session - одна попытка интервью: вопросы фиксированы на старте,
// таймлайн только дополняется.
type Session struct {
	mu sync.Mutex

	id        string
	role      string
	domain    string
	mode      domain.Mode
	questions []string
	startedAt time.Time

	current  int
	timeline []domain.TimelineEntry
	nextID   int64
	state    State
	inFlight bool
	draft    string
	outcome  *Outcome

	scorer Scorer
	opts   Options
	logger *slog.Logger
}

// Submit записывает ответ и отзыв, затем после паузы задает следующий вопрос
// или завершает сессию. Пока переход не завершен, сессия заблокирована.
// Отмена ctx лишь сокращает паузу: переход всегда доводится до конца.
func (s *Session) Submit(ctx context.Context, answer string) error {
	s.mu.Lock()
	if err := s.checkTransition(); err != nil {
		s.mu.Unlock()
		s.logger.Warn("ответ отклонен", "error", err)
		return err
	}
	switch strings.TrimSpace(answer) {
	case "":
		s.mu.Unlock()
		return ErrEmptyAnswer
	case domain.SkipSentinel:
		s.mu.Unlock()
		return ErrReservedAnswer
	}

	s.inFlight = true
	eval := s.scorer.Score(answer, s.mode)
	score := eval.Score
	s.appendEntry(domain.KindAnswer, answer, nil)
	s.appendEntry(domain.KindFeedback, eval.Feedback, &score)
	s.draft = ""
	index := s.current
	s.mu.Unlock()

	if s.opts.Observer != nil {
		s.opts.Observer.AnswerSubmitted(score)
	}
	s.logger.Debug("ответ оценен", "question", index+1, "score", score, "signals", eval.Fired)

	s.pause(ctx)

	s.mu.Lock()
	outcome := s.advance()
	s.inFlight = false
	s.mu.Unlock()

	s.finish(outcome)
	return nil
}

// Skip помечает текущий вопрос пропущенным и сразу переходит дальше.
// Отзыв для пропуска не создается.
func (s *Session) Skip(ctx context.Context) error {
	s.mu.Lock()
	if err := s.checkTransition(); err != nil {
		s.mu.Unlock()
		s.logger.Warn("пропуск отклонен", "error", err)
		return err
	}

	s.appendEntry(domain.KindAnswer, domain.SkipSentinel, nil)
	s.draft = ""
	index := s.current
	outcome := s.advance()
	s.mu.Unlock()

	if s.opts.Observer != nil {
		s.opts.Observer.QuestionSkipped()
	}
	s.logger.Debug("вопрос пропущен", "question", index+1)

	s.finish(outcome)
	return nil
}

// Abandon прерывает активную сессию. Отложенный переход после Submit
// в этом случае не добавит новый вопрос.
func (s *Session) Abandon() error {
	s.mu.Lock()
	switch s.state {
	case StateTerminated:
		s.mu.Unlock()
		return ErrSessionTerminated
	case StateAbandoned:
		s.mu.Unlock()
		return ErrSessionAbandoned
	}
	s.state = StateAbandoned
	s.draft = ""
	s.mu.Unlock()

	if s.opts.Observer != nil {
		s.opts.Observer.SessionAbandoned()
	}
	s.logger.Info("сессия прервана", "answered_up_to", s.CurrentIndex())
	return nil
}

// SetDraft сохраняет черновик ответа вызывающей стороны
func (s *Session) SetDraft(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = text
}

// AppendDraft дописывает строку к черновику
func (s *Session) AppendDraft(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == "" {
		s.draft = line
		return
	}
	s.draft += "\n" + line
}

// Draft возвращает текущий черновик
func (s *Session) Draft() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Clear очищает черновик. Таймлайн и состояние не меняются.
func (s *Session) Clear() {
	s.SetDraft("")
}

// checkTransition вызывается под s.mu
func (s *Session) checkTransition() error {
	switch {
	case s.state == StateTerminated:
		return ErrSessionTerminated
	case s.state == StateAbandoned:
		return ErrSessionAbandoned
	case s.inFlight:
		return ErrTransitionInFlight
	}
	return nil
}

// advance вызывается под s.mu: задает следующий вопрос или завершает сессию
func (s *Session) advance() *Outcome {
	if s.state != StateActive {
		return nil
	}

	s.current++
	if s.current < len(s.questions) {
		s.appendEntry(domain.KindQuestion, s.questions[s.current], nil)
		return nil
	}

	s.state = StateTerminated
	timeline := s.copyTimeline()
	s.outcome = &Outcome{
		SessionID:     s.id,
		Role:          s.role,
		Domain:        s.domain,
		Mode:          s.mode,
		QuestionCount: len(s.questions),
		Timeline:      timeline,
		FinalScore:    summary.FinalScore(timeline),
		StartedAt:     s.startedAt,
		CompletedAt:   s.now(),
	}
	out := *s.outcome
	out.Timeline = cloneTimeline(timeline)
	return &out
}

// finish уведомляет подписчиков о завершении вне блокировки
func (s *Session) finish(outcome *Outcome) {
	if outcome == nil {
		return
	}
	if s.opts.Observer != nil {
		s.opts.Observer.SessionCompleted(outcome.FinalScore)
	}
	s.logger.Info("сессия завершена", "final_score", outcome.FinalScore, "entries", len(outcome.Timeline))
	if s.opts.OnComplete != nil {
		s.opts.OnComplete(*outcome)
	}
}

func (s *Session) pause(ctx context.Context) {
	if s.opts.FeedbackDelay <= 0 {
		return
	}
	timer := time.NewTimer(s.opts.FeedbackDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		s.logger.Debug("пауза прервана", "error", ctx.Err())
	}
}

// appendEntry вызывается под s.mu
func (s *Session) appendEntry(kind domain.EntryKind, content string, score *int) {
	s.nextID++
	s.timeline = append(s.timeline, domain.TimelineEntry{
		ID:        s.nextID,
		Kind:      kind,
		Content:   content,
		Score:     score,
		CreatedAt: s.now(),
	})
}

func (s *Session) now() time.Time {
	return s.opts.Clock()
}

// copyTimeline вызывается под s.mu
func (s *Session) copyTimeline() []domain.TimelineEntry {
	return cloneTimeline(s.timeline)
}

func cloneTimeline(in []domain.TimelineEntry) []domain.TimelineEntry {
	out := make([]domain.TimelineEntry, len(in))
	for i, e := range in {
		if e.Score != nil {
			score := *e.Score
			e.Score = &score
		}
		out[i] = e
	}
	return out
}

// Методы для чтения состояния сессии

func (s *Session) ID() string { return s.id }

func (s *Session) Role() string { return s.role }

func (s *Session) Domain() string { return s.domain }

func (s *Session) Mode() domain.Mode { return s.mode }

func (s *Session) StartedAt() time.Time { return s.startedAt }

// Questions возвращает копию списка вопросов
func (s *Session) Questions() []string {
	out := make([]string, len(s.questions))
	copy(out, s.questions)
	return out
}

// Timeline возвращает копию таймлайна
func (s *Session) Timeline() []domain.TimelineEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyTimeline()
}

// CurrentIndex возвращает индекс текущего вопроса в диапазоне [0, N]
func (s *Session) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// State возвращает состояние сессии
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Busy сообщает, выполняется ли сейчас переход после Submit
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// CurrentQuestion возвращает текст текущего вопроса
func (s *Session) CurrentQuestion() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive || s.current >= len(s.questions) {
		return "", false
	}
	return s.questions[s.current], true
}

// Progress возвращает номер текущего вопроса (с единицы) и их общее число
func (s *Session) Progress() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.current + 1
	if n > len(s.questions) {
		n = len(s.questions)
	}
	return n, len(s.questions)
}

// Elapsed возвращает время с начала сессии
func (s *Session) Elapsed() time.Duration {
	return s.now().Sub(s.startedAt)
}

// Outcome возвращает итог завершенной сессии
func (s *Session) Outcome() (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.outcome == nil {
		return Outcome{}, fmt.Errorf("сессия %s (%s): %w", s.id, s.state, ErrNotTerminated)
	}
	out := *s.outcome
	out.Timeline = cloneTimeline(s.outcome.Timeline)
	return out, nil
}
