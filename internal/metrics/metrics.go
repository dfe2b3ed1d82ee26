package metrics

import (
	"sync"
	"time"
)

// Metrics собирает счетчики сессий в пределах процесса
type Metrics struct {
	mu                sync.RWMutex
	SessionsStarted   int64
	SessionsCompleted int64
	SessionsAbandoned int64
	AnswersSubmitted  int64
	QuestionsSkipped  int64
	ScoreTotal        int64
	LastFinalScore    float64
	LastUpdateTime    time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{
		LastUpdateTime: time.Now(),
	}
}

func (m *Metrics) SessionStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SessionsStarted++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) AnswerSubmitted(score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnswersSubmitted++
	m.ScoreTotal += int64(score)
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) QuestionSkipped() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QuestionsSkipped++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) SessionCompleted(finalScore float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SessionsCompleted++
	m.LastFinalScore = finalScore
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) SessionAbandoned() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SessionsAbandoned++
	m.LastUpdateTime = time.Now()
}

// Snapshot - копия счетчиков без мьютекса
type Snapshot struct {
	SessionsStarted   int64
	SessionsCompleted int64
	SessionsAbandoned int64
	AnswersSubmitted  int64
	QuestionsSkipped  int64
	AverageScore      float64
	LastFinalScore    float64
	LastUpdateTime    time.Time
}

func (m *Metrics) GetSnapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var avg float64
	if m.AnswersSubmitted > 0 {
		avg = float64(m.ScoreTotal) / float64(m.AnswersSubmitted)
	}
	return Snapshot{
		SessionsStarted:   m.SessionsStarted,
		SessionsCompleted: m.SessionsCompleted,
		SessionsAbandoned: m.SessionsAbandoned,
		AnswersSubmitted:  m.AnswersSubmitted,
		QuestionsSkipped:  m.QuestionsSkipped,
		AverageScore:      avg,
		LastFinalScore:    m.LastFinalScore,
		LastUpdateTime:    m.LastUpdateTime,
	}
}

// LogAttrs возвращает пары ключ-значение для структурированного лога
func (s Snapshot) LogAttrs() []any {
	return []any{
		"sessions_started", s.SessionsStarted,
		"sessions_completed", s.SessionsCompleted,
		"sessions_abandoned", s.SessionsAbandoned,
		"answers_submitted", s.AnswersSubmitted,
		"questions_skipped", s.QuestionsSkipped,
		"average_answer_score", s.AverageScore,
	}
}
