package interview_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"interview-practice/internal/domain"
	"interview-practice/internal/interview"
	"interview-practice/internal/metrics"
	"interview-practice/internal/questions"
	"interview-practice/internal/scoring"
)

var _ interview.Observer = (*metrics.Metrics)(nil)

// stepClock возвращает время, растущее на секунду при каждом вызове
func stepClock() func() time.Time {
	var mu sync.Mutex
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}
}

func newEngine(delay time.Duration, onComplete func(interview.Outcome), m *metrics.Metrics) *interview.Engine {
	opts := interview.Options{
		FeedbackDelay: delay,
		Clock:         stepClock(),
		OnComplete:    onComplete,
	}
	if m != nil {
		opts.Observer = m
	}
	return interview.NewEngine(questions.Default(), scoring.New(scoring.Fixed(0)), opts)
}

func TestStartAddsFirstQuestion(t *testing.T) {
	engine := newEngine(0, nil, nil)

	s, err := engine.Start(context.Background(), "software-engineer", "Backend", domain.ModeTechnical)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	tl := s.Timeline()
	if len(tl) != 1 || tl[0].Kind != domain.KindQuestion {
		t.Fatalf("expected a single question entry, got %+v", tl)
	}
	if !strings.HasPrefix(tl[0].Content, "Design a RESTful API for a social media platform") {
		t.Fatalf("unexpected first question %q", tl[0].Content)
	}
	if s.State() != interview.StateActive || s.CurrentIndex() != 0 {
		t.Fatalf("expected Active(0), got %s(%d)", s.State(), s.CurrentIndex())
	}
	if s.ID() == "" {
		t.Fatalf("expected session id, got empty")
	}
}

func TestStartRejectsUnknownMode(t *testing.T) {
	engine := newEngine(0, nil, nil)

	if _, err := engine.Start(context.Background(), "software-engineer", "Backend", domain.Mode("panel")); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

type emptyResolver struct{}

func (emptyResolver) Resolve(string, string, domain.Mode) []string { return nil }

func TestStartRejectsEmptyQuestionList(t *testing.T) {
	engine := interview.NewEngine(emptyResolver{}, scoring.New(nil), interview.Options{})

	_, err := engine.Start(context.Background(), "x", "y", domain.ModeBehavioral)
	if !errors.Is(err, interview.ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestSubmitAllProducesTriplets(t *testing.T) {
	var outcomes []interview.Outcome
	m := metrics.NewMetrics()
	engine := newEngine(0, func(o interview.Outcome) { outcomes = append(outcomes, o) }, m)
	ctx := context.Background()

	s, err := engine.Start(ctx, "product-manager", "Growth", domain.ModeBehavioral)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		if err := s.Submit(ctx, "The result was a measurable improvement, for example in retention."); err != nil {
			t.Fatalf("Submit %d failed: %v", i, err)
		}
	}

	tl := s.Timeline()
	if len(tl) != 15 {
		t.Fatalf("expected 15 entries, got %d", len(tl))
	}
	kinds := []domain.EntryKind{domain.KindQuestion, domain.KindAnswer, domain.KindFeedback}
	for i, e := range tl {
		if e.Kind != kinds[i%3] {
			t.Fatalf("entry %d: expected %s, got %s", i, kinds[i%3], e.Kind)
		}
		if e.ID != int64(i+1) {
			t.Fatalf("entry %d: expected id %d, got %d", i, i+1, e.ID)
		}
		if i > 0 && !e.CreatedAt.After(tl[i-1].CreatedAt) {
			t.Fatalf("entry %d is not after entry %d", i, i-1)
		}
		if (e.Score != nil) != (e.Kind == domain.KindFeedback) {
			t.Fatalf("entry %d: score presence does not match kind %s", i, e.Kind)
		}
	}

	if s.State() != interview.StateTerminated || s.CurrentIndex() != 5 {
		t.Fatalf("expected Terminated at 5, got %s(%d)", s.State(), s.CurrentIndex())
	}
	if len(outcomes) != 1 {
		t.Fatalf("expected exactly one completion, got %d", len(outcomes))
	}
	// 5 + пример + STAR = 7 для каждого ответа
	if outcomes[0].FinalScore != 7 {
		t.Fatalf("expected final score 7, got %v", outcomes[0].FinalScore)
	}

	snap := m.GetSnapshot()
	if snap.SessionsStarted != 1 || snap.SessionsCompleted != 1 || snap.AnswersSubmitted != 5 {
		t.Fatalf("unexpected metrics %+v", snap)
	}
}

func TestSkipProducesNoFeedback(t *testing.T) {
	var outcome interview.Outcome
	engine := newEngine(time.Hour, func(o interview.Outcome) { outcome = o }, nil)
	ctx := context.Background()

	s, err := engine.Start(ctx, "data-analyst", "Operations", domain.ModeTechnical)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// Пропуск не ждет паузу, даже если она час
	for i := 0; i < 5; i++ {
		if err := s.Skip(ctx); err != nil {
			t.Fatalf("Skip %d failed: %v", i, err)
		}
	}

	for _, e := range s.Timeline() {
		if e.Kind == domain.KindFeedback {
			t.Fatalf("skip produced feedback entry %+v", e)
		}
	}
	if outcome.FinalScore != 5 {
		t.Fatalf("expected default final score 5, got %v", outcome.FinalScore)
	}

	res := outcome.Summarize()
	if res.AnsweredCount != 0 || res.SkippedCount != 5 || res.Level != domain.LevelAverage {
		t.Fatalf("unexpected summary %+v", res)
	}
}

func TestSubmitRejectsEmptyAnswer(t *testing.T) {
	engine := newEngine(0, nil, nil)
	s, _ := engine.Start(context.Background(), "software-engineer", "Frontend", domain.ModeTechnical)

	for _, in := range []string{"", "   ", "\n\t"} {
		if err := s.Submit(context.Background(), in); !errors.Is(err, interview.ErrEmptyAnswer) {
			t.Fatalf("expected ErrEmptyAnswer for %q, got %v", in, err)
		}
	}
	if len(s.Timeline()) != 1 {
		t.Fatalf("empty answer mutated the timeline")
	}
}

func TestSubmitRejectsSkipMarker(t *testing.T) {
	m := metrics.NewMetrics()
	engine := newEngine(0, nil, m)
	s, _ := engine.Start(context.Background(), "software-engineer", "Backend", domain.ModeTechnical)

	for _, in := range []string{domain.SkipSentinel, "  " + domain.SkipSentinel + "\n"} {
		if err := s.Submit(context.Background(), in); !errors.Is(err, interview.ErrReservedAnswer) {
			t.Fatalf("expected ErrReservedAnswer for %q, got %v", in, err)
		}
	}
	if len(s.Timeline()) != 1 || s.CurrentIndex() != 0 {
		t.Fatalf("skip marker mutated the session: %d entries, index %d", len(s.Timeline()), s.CurrentIndex())
	}
	if snap := m.GetSnapshot(); snap.AnswersSubmitted != 0 {
		t.Fatalf("expected no submitted answers, got %d", snap.AnswersSubmitted)
	}

	// Метка внутри ответа допустима
	if err := s.Submit(context.Background(), "I wrote "+domain.SkipSentinel+" in the log"); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if fb := s.Timeline()[2]; fb.Kind != domain.KindFeedback {
		t.Fatalf("expected feedback after embedded marker, got %s", fb.Kind)
	}
}

func TestTransitionsAfterTerminationAreRejected(t *testing.T) {
	engine := newEngine(0, nil, nil)
	ctx := context.Background()
	s, _ := engine.Start(ctx, "software-engineer", "Backend", domain.ModeTechnical)
	for i := 0; i < 5; i++ {
		_ = s.Skip(ctx)
	}
	before := s.Timeline()

	if err := s.Submit(ctx, "late answer"); !errors.Is(err, interview.ErrSessionTerminated) {
		t.Fatalf("expected ErrSessionTerminated, got %v", err)
	}
	if err := s.Skip(ctx); !errors.Is(err, interview.ErrSessionTerminated) {
		t.Fatalf("expected ErrSessionTerminated, got %v", err)
	}
	if err := s.Abandon(); !errors.Is(err, interview.ErrSessionTerminated) {
		t.Fatalf("expected ErrSessionTerminated, got %v", err)
	}
	if len(s.Timeline()) != len(before) {
		t.Fatalf("rejected transition changed the timeline")
	}
}

func TestSecondTransitionWhileInFlightIsRejected(t *testing.T) {
	engine := newEngine(200*time.Millisecond, nil, nil)
	ctx := context.Background()
	s, _ := engine.Start(ctx, "software-engineer", "Backend", domain.ModeTechnical)

	done := make(chan error, 1)
	go func() {
		done <- s.Submit(ctx, "first answer that is long enough to avoid the short penalty, really.")
	}()

	deadline := time.Now().Add(time.Second)
	for !s.Busy() {
		if time.Now().After(deadline) {
			t.Fatalf("submit never became in-flight")
		}
		time.Sleep(time.Millisecond)
	}

	if err := s.Submit(ctx, "second answer"); !errors.Is(err, interview.ErrTransitionInFlight) {
		t.Fatalf("expected ErrTransitionInFlight, got %v", err)
	}
	if err := s.Skip(ctx); !interview.IsInvalidState(err) {
		t.Fatalf("expected invalid state error, got %v", err)
	}

	// Во время паузы виден корректный префикс: вопрос, ответ, отзыв
	if got := len(s.Timeline()); got != 3 {
		t.Fatalf("expected 3 entries during pause, got %d", got)
	}

	if err := <-done; err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if got := len(s.Timeline()); got != 4 {
		t.Fatalf("expected next question after pause, got %d entries", got)
	}
	if s.CurrentIndex() != 1 {
		t.Fatalf("expected index 1, got %d", s.CurrentIndex())
	}
}

func TestCancelledContextShortensPause(t *testing.T) {
	engine := newEngine(time.Hour, nil, nil)
	s, _ := engine.Start(context.Background(), "software-engineer", "Backend", domain.ModeTechnical)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Submit(ctx, "an answer"); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	tl := s.Timeline()
	if len(tl) != 4 || tl[3].Kind != domain.KindQuestion {
		t.Fatalf("expected transition to complete, got %+v", tl)
	}
}

func TestAbandonDuringPauseLeavesNoDanglingEntries(t *testing.T) {
	var completed bool
	engine := newEngine(200*time.Millisecond, func(interview.Outcome) { completed = true }, nil)
	ctx := context.Background()
	s, _ := engine.Start(ctx, "software-engineer", "Frontend", domain.ModeBehavioral)

	done := make(chan error, 1)
	go func() { done <- s.Submit(ctx, "some answer") }()

	for !s.Busy() {
		time.Sleep(time.Millisecond)
	}
	if err := s.Abandon(); err != nil {
		t.Fatalf("Abandon failed: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	tl := s.Timeline()
	if len(tl) != 3 {
		t.Fatalf("expected question, answer, feedback only, got %d entries", len(tl))
	}
	if tl[1].Kind != domain.KindAnswer || tl[2].Kind != domain.KindFeedback {
		t.Fatalf("expected answer followed by feedback, got %s, %s", tl[1].Kind, tl[2].Kind)
	}
	if s.State() != interview.StateAbandoned {
		t.Fatalf("expected abandoned state, got %s", s.State())
	}
	if completed {
		t.Fatalf("abandoned session must not complete")
	}
	if _, err := s.Outcome(); !errors.Is(err, interview.ErrNotTerminated) {
		t.Fatalf("expected ErrNotTerminated, got %v", err)
	}
	if err := s.Skip(ctx); !errors.Is(err, interview.ErrSessionAbandoned) {
		t.Fatalf("expected ErrSessionAbandoned, got %v", err)
	}
}

func TestClearOnlyResetsDraft(t *testing.T) {
	engine := newEngine(0, nil, nil)
	s, _ := engine.Start(context.Background(), "software-engineer", "Backend", domain.ModeTechnical)

	s.AppendDraft("line one")
	s.AppendDraft("line two")
	if s.Draft() != "line one\nline two" {
		t.Fatalf("unexpected draft %q", s.Draft())
	}

	before := s.Timeline()
	s.Clear()

	if s.Draft() != "" {
		t.Fatalf("expected empty draft, got %q", s.Draft())
	}
	if len(s.Timeline()) != len(before) || s.CurrentIndex() != 0 {
		t.Fatalf("clear changed session state")
	}
}

func TestTimelineIsACopy(t *testing.T) {
	engine := newEngine(0, nil, nil)
	ctx := context.Background()
	s, _ := engine.Start(ctx, "software-engineer", "Backend", domain.ModeTechnical)
	_ = s.Submit(ctx, "an answer")

	tl := s.Timeline()
	*tl[2].Score = 100
	tl[0].Content = "mutated"

	again := s.Timeline()
	if *again[2].Score == 100 || again[0].Content == "mutated" {
		t.Fatalf("caller mutation leaked into the session")
	}
}

func TestProgress(t *testing.T) {
	engine := newEngine(0, nil, nil)
	ctx := context.Background()
	s, _ := engine.Start(ctx, "software-engineer", "Backend", domain.ModeTechnical)

	if n, total := s.Progress(); n != 1 || total != 5 {
		t.Fatalf("expected 1/5, got %d/%d", n, total)
	}
	for i := 0; i < 5; i++ {
		_ = s.Skip(ctx)
	}
	if n, total := s.Progress(); n != 5 || total != 5 {
		t.Fatalf("expected 5/5 after termination, got %d/%d", n, total)
	}
	if _, ok := s.CurrentQuestion(); ok {
		t.Fatalf("expected no current question after termination")
	}
}
