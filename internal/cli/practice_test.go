package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"interview-practice/internal/interview"
	"interview-practice/internal/interviewer"
	"interview-practice/internal/metrics"
	"interview-practice/internal/navigator"
	"interview-practice/internal/questions"
	"interview-practice/internal/scoring"
	"interview-practice/internal/storage"
)

func setupDeps(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("INTERVIEW_RESULTS_DIR", filepath.Join(dir, "results"))
	t.Setenv("INTERVIEW_HISTORY_DB", filepath.Join(dir, "history.db"))
	t.Setenv("INTERVIEW_CONFIG", filepath.Join(dir, "missing.yaml"))
	t.Setenv("INTERVIEW_FEEDBACK_DELAY", "0s")

	if err := deps.load(); err != nil {
		t.Fatalf("load deps: %v", err)
	}
	if deps.env.ResolveFeedbackDelay(deps.cfg) != 0 {
		t.Fatalf("expected no feedback delay in tests")
	}
}

func TestPracticeRunPersistsResult(t *testing.T) {
	setupDeps(t)
	practiceOnce = true
	t.Cleanup(func() { practiceOnce = false })

	m := metrics.NewMetrics()
	engine := interview.NewEngine(deps.bank, scoring.New(scoring.Fixed(0)), interview.Options{Observer: m})
	input := "An answer with an example and a result.\n\n:skip\n:skip\n:skip\n:skip\n"

	p := &practice{
		nav:  navigator.New(engine),
		svc:  interviewer.New(strings.NewReader(input), &bytes.Buffer{}),
		role: "data-scientist",
		dom:  "NLP",
		mode: "behavioral",
	}
	if err := p.run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if p.nav.Screen() != navigator.ScreenSummary {
		t.Fatalf("expected summary screen, got %s", p.nav.Screen())
	}
	res, ok := p.nav.Result()
	if !ok || res.AnsweredCount != 1 || res.SkippedCount != 4 {
		t.Fatalf("unexpected result %+v", res)
	}

	ids, err := deps.files.ListResults()
	if err != nil || len(ids) != 1 || ids[0] != res.SessionID {
		t.Fatalf("expected saved JSON result for %s, got %v (%v)", res.SessionID, ids, err)
	}

	stored, err := deps.loadResult(context.Background(), res.SessionID)
	if err != nil {
		t.Fatalf("loadResult failed: %v", err)
	}
	if len(stored.QuestionsAndAnswers) != 5 || stored.Summary.Domain != "NLP" {
		t.Fatalf("unexpected stored result %+v", stored)
	}

	h, err := storage.OpenHistory(deps.env.HistoryDB)
	if err != nil {
		t.Fatalf("OpenHistory failed: %v", err)
	}
	defer h.Close()
	entries, err := h.List(context.Background(), 0)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one history entry, got %d (%v)", len(entries), err)
	}

	if snap := m.GetSnapshot(); snap.SessionsCompleted != 1 || snap.QuestionsSkipped != 4 {
		t.Fatalf("unexpected metrics %+v", snap)
	}
}

func TestPracticeQuitLeavesNoResult(t *testing.T) {
	setupDeps(t)

	engine := interview.NewEngine(questions.Default(), scoring.New(scoring.Fixed(0)), interview.Options{})
	p := &practice{
		nav:  navigator.New(engine),
		svc:  interviewer.New(strings.NewReader(":quit\n"), &bytes.Buffer{}),
		role: "software-engineer",
		dom:  "Mobile",
		mode: "technical",
	}
	if err := p.run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if s := p.nav.Session(); s == nil || s.State() != interview.StateAbandoned {
		t.Fatalf("expected abandoned session")
	}
	ids, _ := deps.files.ListResults()
	if len(ids) != 0 {
		t.Fatalf("abandoned session must not be saved, got %v", ids)
	}
}

func TestPracticeRejectsUnknownMode(t *testing.T) {
	setupDeps(t)

	engine := interview.NewEngine(questions.Default(), scoring.New(nil), interview.Options{})
	p := &practice{
		nav:  navigator.New(engine),
		svc:  interviewer.New(strings.NewReader(""), &bytes.Buffer{}),
		role: "software-engineer",
		mode: "panel",
	}
	if err := p.run(context.Background()); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
