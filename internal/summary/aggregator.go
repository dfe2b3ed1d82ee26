package summary

import (
	"time"
	"unicode/utf8"

	"interview-practice/internal/domain"
)

// DefaultScore используется, когда в таймлайне нет ни одной оценки
const DefaultScore = 5.0

const (
	detailedAnswerChars  = 200
	detailedAnswersShare = 0.6
	minutesPerEntry      = 2
)

// Input - данные завершенной сессии для агрегатора
type Input struct {
	SessionID     string
	Role          string
	Domain        string
	Mode          domain.Mode
	Timeline      []domain.TimelineEntry
	QuestionCount int
	CompletedAt   time.Time
}

// stats - счетчики, из которых строится итог
type stats struct {
	finalScore      float64
	highest         int
	answered        int
	skipped         int
	questionCount   int
	detailedAnswers int
}

// Aggregate строит итог сессии. Функция чистая: таймлайн не изменяется,
// повторный вызов с теми же данными дает тот же результат.
func Aggregate(in Input) domain.SessionResult {
	st := collect(in.Timeline, in.QuestionCount)

	return domain.SessionResult{
		SessionID:        in.SessionID,
		Role:             in.Role,
		Domain:           in.Domain,
		Mode:             in.Mode,
		FinalScore:       st.finalScore,
		Level:            LevelFor(st.finalScore),
		HighestScore:     st.highest,
		QuestionCount:    st.questionCount,
		AnsweredCount:    st.answered,
		SkippedCount:     st.skipped,
		EstimatedMinutes: len(in.Timeline) * minutesPerEntry,
		Strengths:        strengths(st, in.Mode),
		Improvements:     improvements(st, in.Mode),
		Resources:        Resources(in.Role, in.Domain, in.Mode),
		CompletedAt:      in.CompletedAt,
	}
}

// FinalScore возвращает среднее всех оценок или DefaultScore, если оценок нет
func FinalScore(timeline []domain.TimelineEntry) float64 {
	sum, count := 0, 0
	for _, e := range timeline {
		if e.Kind == domain.KindFeedback && e.Score != nil {
			sum += *e.Score
			count++
		}
	}
	if count == 0 {
		return DefaultScore
	}
	return float64(sum) / float64(count)
}

// LevelFor классифицирует итоговый балл; нижняя граница диапазона включается
func LevelFor(score float64) domain.Level {
	switch {
	case score >= 8:
		return domain.LevelExcellent
	case score >= 6.5:
		return domain.LevelGood
	case score >= 5:
		return domain.LevelAverage
	default:
		return domain.LevelNeedsImprovement
	}
}

func collect(timeline []domain.TimelineEntry, questionCount int) stats {
	st := stats{
		finalScore:    FinalScore(timeline),
		questionCount: questionCount,
	}

	for _, e := range timeline {
		switch e.Kind {
		case domain.KindFeedback:
			if e.Score != nil && *e.Score > st.highest {
				st.highest = *e.Score
			}
		case domain.KindAnswer:
			if e.IsSkip() {
				continue
			}
			st.answered++
			if utf8.RuneCountInString(e.Content) > detailedAnswerChars {
				st.detailedAnswers++
			}
		}
	}

	st.skipped = questionCount - st.answered
	if st.skipped < 0 {
		// Ответов больше, чем вопросов, бывает только при неверном questionCount
		st.questionCount = st.answered
		st.skipped = 0
	}
	return st
}
