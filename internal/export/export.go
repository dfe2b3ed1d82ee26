package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"interview-practice/internal/domain"
	"interview-practice/internal/questions"
)

// Format - формат экспортируемого документа
type Format string

const (
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
)

// ParseFormat разбирает формат экспорта
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "md", "markdown":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("неизвестный формат экспорта %q (ожидается md или json)", s)
}

// Markdown рендерит итог сессии документом
func Markdown(res domain.SessionResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Interview Summary - %s\n\n", questions.RoleTitle(res.Role))
	if res.Domain != "" {
		fmt.Fprintf(&b, "Domain: %s\n\n", res.Domain)
	}
	fmt.Fprintf(&b, "Mode: %s\n\n", res.Mode.Title())
	fmt.Fprintf(&b, "Date: %s\n\n", res.CompletedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "Final Score: %.1f/10 (%s)\n\n", res.FinalScore, res.Level)
	fmt.Fprintf(&b, "Answered: %d/%d\n\n", res.AnsweredCount, res.QuestionCount)
	fmt.Fprintf(&b, "Skipped: %d\n", res.SkippedCount)

	writeList(&b, "Strengths", res.Strengths)
	writeList(&b, "Areas for Improvement", res.Improvements)

	b.WriteString("\n## Recommended Resources\n\n")
	for _, r := range res.Resources {
		fmt.Fprintf(&b, "- **%s:** %s (%s)\n", r.Title, r.Description, r.URL)
	}

	return b.String()
}

func writeList(b *strings.Builder, heading string, items []string) {
	fmt.Fprintf(b, "\n## %s\n\n", heading)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

// JSON сериализует итог сессии с отступами
func JSON(res domain.SessionResult) ([]byte, error) {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации итога: %w", err)
	}
	return append(data, '\n'), nil
}

// Render возвращает документ в нужном формате
func Render(res domain.SessionResult, format Format) ([]byte, error) {
	switch format {
	case FormatMarkdown:
		return []byte(Markdown(res)), nil
	case FormatJSON:
		return JSON(res)
	}
	return nil, fmt.Errorf("неизвестный формат экспорта %q", format)
}

// FileName строит имя файла вида interview-summary-<role>-<unix ms>.<ext>
func FileName(role string, format Format, at time.Time) string {
	return fmt.Sprintf("interview-summary-%s-%d.%s", role, at.UnixMilli(), format)
}

// WriteFile рендерит итог в каталог dir и возвращает путь к файлу
func WriteFile(dir string, res domain.SessionResult, format Format, at time.Time) (string, error) {
	data, err := Render(res, format)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("ошибка создания директории %s: %w", dir, err)
	}

	path := filepath.Join(dir, FileName(res.Role, format, at))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("ошибка записи файла %s: %w", path, err)
	}
	return path, nil
}

// CopyToClipboard копирует текст в системный буфер обмена
func CopyToClipboard(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("буфер обмена недоступен на этой системе")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("ошибка копирования в буфер обмена: %w", err)
	}
	return nil
}
