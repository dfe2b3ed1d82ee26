package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"interview-practice/internal/domain"
)

// timeLayout фиксированной ширины: строковый порядок совпадает с порядком времени
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// History хранит завершенные сессии в SQLite.
// Сюда попадают только завершенные сессии; возобновление не поддерживается.
type History struct {
	db *sql.DB
}

// OpenHistory открывает (или создает) базу истории и применяет миграции
func OpenHistory(path string) (*History, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("ошибка создания директории %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы %s: %w", path, err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &History{db: db}, nil
}

func (h *History) Close() error {
	return h.db.Close()
}

// Save записывает результат сессии; повторное сохранение того же ID заменяет запись
func (h *History) Save(ctx context.Context, result *InterviewResult) error {
	summary, err := json.Marshal(result.Summary)
	if err != nil {
		return fmt.Errorf("ошибка сериализации итога: %w", err)
	}

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	s := result.Summary
	_, err = tx.ExecContext(ctx, `DELETE FROM answers WHERE session_id = ?`, result.InterviewID)
	if err != nil {
		return fmt.Errorf("ошибка очистки ответов: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO sessions
			(id, role, domain, mode, final_score, level, question_count, answered_count, skipped_count, summary_json, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.InterviewID, s.Role, s.Domain, string(s.Mode), s.FinalScore, string(s.Level),
		s.QuestionCount, s.AnsweredCount, s.SkippedCount, string(summary),
		s.CompletedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("ошибка записи сессии %s: %w", result.InterviewID, err)
	}

	for i, qa := range result.QuestionsAndAnswers {
		var score sql.NullInt64
		if qa.Score != nil {
			score = sql.NullInt64{Int64: int64(*qa.Score), Valid: true}
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO answers (session_id, position, question, answer, feedback, score, skipped)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			result.InterviewID, i, qa.Question, qa.Answer, qa.Feedback, score, boolInt(qa.Skipped),
		)
		if err != nil {
			return fmt.Errorf("ошибка записи ответа %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}
	return nil
}

// List возвращает последние сессии, новые первыми; limit <= 0 снимает ограничение
func (h *History) List(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := h.db.QueryContext(ctx,
		`SELECT id, role, domain, mode, final_score, level, answered_count, skipped_count, completed_at
		FROM sessions ORDER BY completed_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения истории: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var (
			e           HistoryEntry
			mode, level string
			completedAt string
		)
		if err := rows.Scan(&e.InterviewID, &e.Role, &e.Domain, &mode, &e.FinalScore, &level,
			&e.AnsweredCount, &e.SkippedCount, &completedAt); err != nil {
			return nil, fmt.Errorf("ошибка чтения строки истории: %w", err)
		}
		e.Mode = domain.Mode(mode)
		e.Level = domain.Level(level)
		e.CompletedAt, err = time.Parse(timeLayout, completedAt)
		if err != nil {
			return nil, fmt.Errorf("ошибка разбора времени %q: %w", completedAt, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get загружает полный результат сессии по ID
func (h *History) Get(ctx context.Context, interviewID string) (*InterviewResult, error) {
	var summaryJSON string
	err := h.db.QueryRowContext(ctx,
		`SELECT summary_json FROM sessions WHERE id = ?`, interviewID).Scan(&summaryJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", interviewID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения сессии %s: %w", interviewID, err)
	}

	result := &InterviewResult{InterviewID: interviewID}
	if err := json.Unmarshal([]byte(summaryJSON), &result.Summary); err != nil {
		return nil, fmt.Errorf("ошибка десериализации итога: %w", err)
	}
	result.Timestamp = result.Summary.CompletedAt.Format(time.RFC3339)

	rows, err := h.db.QueryContext(ctx,
		`SELECT question, answer, feedback, score, skipped FROM answers
		WHERE session_id = ? ORDER BY position`, interviewID)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ответов: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			qa    QA
			score sql.NullInt64
		)
		if err := rows.Scan(&qa.Question, &qa.Answer, &qa.Feedback, &score, &qa.Skipped); err != nil {
			return nil, fmt.Errorf("ошибка чтения ответа: %w", err)
		}
		if score.Valid {
			v := int(score.Int64)
			qa.Score = &v
		}
		result.QuestionsAndAnswers = append(result.QuestionsAndAnswers, qa)
	}
	return result, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
