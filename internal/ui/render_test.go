package ui_test

import (
	"strings"
	"testing"
	"time"

	"interview-practice/internal/domain"
	"interview-practice/internal/storage"
	"interview-practice/internal/ui"
)

func TestRenderEntry(t *testing.T) {
	score := 7
	tests := []struct {
		entry domain.TimelineEntry
		want  []string
	}{
		{domain.TimelineEntry{Kind: domain.KindQuestion, Content: "Why Go?"}, []string{"❓", "Why Go?"}},
		{domain.TimelineEntry{Kind: domain.KindAnswer, Content: "Because."}, []string{"💬", "Because."}},
		{domain.TimelineEntry{Kind: domain.KindAnswer, Content: domain.SkipSentinel}, []string{"⏭️", "[Skipped]"}},
		{domain.TimelineEntry{Kind: domain.KindFeedback, Content: "Nice.", Score: &score}, []string{"📝", "Nice.", "(7/10)"}},
	}
	for _, tt := range tests {
		got := ui.RenderEntry(tt.entry)
		for _, want := range tt.want {
			if !strings.Contains(got, want) {
				t.Fatalf("expected %q in %q", want, got)
			}
		}
	}
}

func TestRenderSummary(t *testing.T) {
	out := ui.RenderSummary(domain.SessionResult{
		Role:          "system-designer",
		Domain:        "Microservices",
		Mode:          domain.ModeTechnical,
		FinalScore:    8.4,
		Level:         domain.LevelExcellent,
		QuestionCount: 5,
		AnsweredCount: 5,
		Strengths:     []string{"Completed all interview questions"},
		Improvements:  []string{"Research the company and role more thoroughly"},
		Resources:     []domain.Resource{{Title: "System Design Primer", URL: "https://github.com/donnemartin/system-design-primer"}},
	})

	for _, want := range []string{
		"Interview Summary - System Designer",
		"Microservices",
		"8.4/10",
		"Excellent",
		"Answered: 5/5",
		"Completed all interview questions",
		"Research the company and role more thoroughly",
		"System Design Primer",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in summary:\n%s", want, out)
		}
	}
}

func TestRenderHistory(t *testing.T) {
	if out := ui.RenderHistory(nil); !strings.Contains(out, "No interviews yet") {
		t.Fatalf("unexpected empty history output %q", out)
	}

	out := ui.RenderHistory([]storage.HistoryEntry{{
		InterviewID: "abc",
		Role:        "data-scientist",
		Mode:        domain.ModeBehavioral,
		FinalScore:  6.5,
		Level:       domain.LevelGood,
		CompletedAt: time.Now(),
	}})
	for _, want := range []string{"abc", "Data Scientist", "behavioral", "6.5", "Good"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in history:\n%s", want, out)
		}
	}
}

func TestFormatElapsed(t *testing.T) {
	if got := ui.FormatElapsed(125 * time.Second); got != "02:05" {
		t.Fatalf("expected 02:05, got %s", got)
	}
}
