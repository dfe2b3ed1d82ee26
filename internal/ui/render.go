package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"interview-practice/internal/domain"
	"interview-practice/internal/questions"
	"interview-practice/internal/storage"
)

// Styles
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	questionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	skipStyle     = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	feedbackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// RenderQuestion показывает вопрос с прогрессом
func RenderQuestion(n, total int, text string) string {
	progress := dimStyle.Render(fmt.Sprintf("Question %d of %d", n, total))
	return fmt.Sprintf("\n%s\n❓ %s\n", progress, questionStyle.Render(text))
}

// RenderEntry показывает одну запись таймлайна
func RenderEntry(e domain.TimelineEntry) string {
	switch e.Kind {
	case domain.KindQuestion:
		return "❓ " + questionStyle.Render(e.Content)
	case domain.KindAnswer:
		if e.IsSkip() {
			return "⏭️  " + skipStyle.Render(e.Content)
		}
		return "💬 " + answerStyle.Render(e.Content)
	case domain.KindFeedback:
		score := ""
		if e.Score != nil {
			score = fmt.Sprintf(" (%d/10)", *e.Score)
		}
		return "📝 " + feedbackStyle.Render(e.Content+score)
	}
	return e.Content
}

// RenderTranscript показывает таймлайн целиком
func RenderTranscript(timeline []domain.TimelineEntry) string {
	lines := make([]string, 0, len(timeline))
	for _, e := range timeline {
		lines = append(lines, RenderEntry(e))
	}
	return strings.Join(lines, "\n")
}

// RenderSummary показывает итог сессии
func RenderSummary(res domain.SessionResult) string {
	var b strings.Builder

	title := fmt.Sprintf("🏁 Interview Summary - %s", questions.RoleTitle(res.Role))
	b.WriteString(titleStyle.Render(title) + "\n")
	meta := res.Mode.Title()
	if res.Domain != "" {
		meta = res.Domain + " · " + meta
	}
	b.WriteString(dimStyle.Render(meta) + "\n\n")

	stats := fmt.Sprintf("Final score: %.1f/10  %s\nAnswered: %d/%d   Skipped: %d\nHighest score: %d   Est. time: %d min",
		res.FinalScore, levelBadge(res.Level),
		res.AnsweredCount, res.QuestionCount, res.SkippedCount,
		res.HighestScore, res.EstimatedMinutes)
	b.WriteString(boxStyle.Render(stats) + "\n")

	writeSection(&b, "✅ Strengths", res.Strengths)
	writeSection(&b, "📈 Areas for Improvement", res.Improvements)

	b.WriteString("\n" + headerStyle.Render("📚 Recommended Resources") + "\n")
	for _, r := range res.Resources {
		fmt.Fprintf(&b, "• %s: %s %s\n", r.Title, r.Description, dimStyle.Render(r.URL))
	}

	return b.String()
}

func writeSection(b *strings.Builder, heading string, items []string) {
	b.WriteString("\n" + headerStyle.Render(heading) + "\n")
	for _, item := range items {
		fmt.Fprintf(b, "• %s\n", item)
	}
}

func levelBadge(level domain.Level) string {
	color := map[domain.Level]string{
		domain.LevelExcellent:        "42",
		domain.LevelGood:             "39",
		domain.LevelAverage:          "214",
		domain.LevelNeedsImprovement: "196",
	}[level]
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).Render(string(level))
}

// RenderHistory показывает список прошлых сессий
func RenderHistory(entries []storage.HistoryEntry) string {
	if len(entries) == 0 {
		return "📭 No interviews yet. Run 'interview practice' first\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-36s  %-16s  %-20s  %-10s  %-6s  %s\n", "ID", "COMPLETED", "ROLE", "MODE", "SCORE", "LEVEL")
	b.WriteString(strings.Repeat("─", 110) + "\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%-36s  %-16s  %-20s  %-10s  %-6.1f  %s\n",
			e.InterviewID,
			e.CompletedAt.Local().Format("2006-01-02 15:04"),
			questions.RoleTitle(e.Role),
			e.Mode,
			e.FinalScore,
			e.Level,
		)
	}
	return b.String()
}

// FormatElapsed форматирует длительность как мм:сс
func FormatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
