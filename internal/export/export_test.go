package export_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"interview-practice/internal/domain"
	"interview-practice/internal/export"
)

func sample() domain.SessionResult {
	return domain.SessionResult{
		SessionID:     "s-1",
		Role:          "data-analyst",
		Domain:        "Marketing",
		Mode:          domain.ModeBehavioral,
		FinalScore:    6.666,
		Level:         domain.LevelGood,
		QuestionCount: 5,
		AnsweredCount: 3,
		SkippedCount:  2,
		Strengths:     []string{"Good use of storytelling and examples"},
		Improvements:  []string{"Try to attempt all questions, even if unsure"},
		Resources: []domain.Resource{
			{Title: "STAR Method Guide", Description: "Master the STAR technique", URL: "https://example.com/star"},
		},
		CompletedAt: time.Date(2026, 10, 16, 18, 30, 0, 0, time.UTC),
	}
}

func TestMarkdownLayout(t *testing.T) {
	md := export.Markdown(sample())

	wantInOrder := []string{
		"# Interview Summary - Data Analyst",
		"Domain: Marketing",
		"Mode: Behavioral",
		"Date: 2026-10-16",
		"Final Score: 6.7/10 (Good)",
		"Answered: 3/5",
		"Skipped: 2",
		"## Strengths",
		"- Good use of storytelling and examples",
		"## Areas for Improvement",
		"- Try to attempt all questions, even if unsure",
		"## Recommended Resources",
		"- **STAR Method Guide:** Master the STAR technique (https://example.com/star)",
	}
	pos := 0
	for _, want := range wantInOrder {
		i := strings.Index(md[pos:], want)
		if i < 0 {
			t.Fatalf("expected %q after offset %d in:\n%s", want, pos, md)
		}
		pos += i + len(want)
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]export.Format{
		"md":       export.FormatMarkdown,
		"Markdown": export.FormatMarkdown,
		" json ":   export.FormatJSON,
	}
	for in, want := range tests {
		got, err := export.ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q): expected %s, got %s (%v)", in, want, got, err)
		}
	}
	if _, err := export.ParseFormat("docx"); err == nil {
		t.Fatalf("expected error for docx")
	}
}

func TestWriteFileJSON(t *testing.T) {
	dir := t.TempDir()
	at := time.UnixMilli(1760000000123)

	path, err := export.WriteFile(dir, sample(), export.FormatJSON, at)
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if filepath.Base(path) != "interview-summary-data-analyst-1760000000123.json" {
		t.Fatalf("unexpected file name %s", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var got domain.SessionResult
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if got.SessionID != "s-1" || got.SkippedCount != 2 {
		t.Fatalf("unexpected exported result %+v", got)
	}
}
