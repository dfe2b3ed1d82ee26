package scoring

import (
	"math/rand"
	"strings"
	"unicode/utf8"

	"interview-practice/internal/domain"
)

const (
	baseScore = 5
	minScore  = 1
	maxScore  = 10

	shortAnswerChars    = 50
	detailedAnswerChars = 200
)

// Matching определяет, как сигнал сравнивает подстроки с ответом
type Matching int

const (
	// CaseInsensitive - ответ приводится к нижнему регистру перед поиском
	CaseInsensitive Matching = iota
	// CaseSensitive - подстроки ищутся в ответе как есть
	CaseSensitive
)

// Signal - правило начисления баллов по наличию подстрок в ответе
type Signal struct {
	Name     string
	Terms    []string
	Matching Matching
	// Mode ограничивает сигнал одним режимом; пустое значение означает любой режим
	Mode     domain.Mode
	Delta    int
	Sentence string
}

// Матчинг сигналов намеренно различается: технический словарь
// ищется с учетом регистра, остальные сигналы без.
var (
	ExampleSignal = Signal{
		Name:     "examples",
		Terms:    []string{"example", "for instance"},
		Matching: CaseInsensitive,
		Delta:    1,
		Sentence: "Excellent use of concrete examples. ",
	}
	TechnicalVocabularySignal = Signal{
		Name:     "technical-vocabulary",
		Terms:    []string{"algorithm", "performance", "scalability"},
		Matching: CaseSensitive,
		Mode:     domain.ModeTechnical,
		Delta:    1,
		Sentence: "Good technical vocabulary and concepts. ",
	}
	STARSignal = Signal{
		Name:     "star-method",
		Terms:    []string{"result"},
		Matching: CaseInsensitive,
		Mode:     domain.ModeBehavioral,
		Delta:    1,
		Sentence: "Nice use of the STAR method structure. ",
	}
)

const (
	acknowledgment   = "Thank you for your response. "
	tooShortSentence = "Consider providing more detailed explanations. "
	detailedSentence = "Great level of detail. "
	improvementLead  = "Areas for improvement: "
)

// Suggestions - список советов, из которого случайно выбирается один
var Suggestions = []string{
	"Consider providing specific metrics or outcomes.",
	"Think about the challenges you faced and how you overcame them.",
	"Try to connect your answer to the role requirements.",
	"Add more context about your decision-making process.",
}

// Chooser возвращает индекс в диапазоне [0, n)
type Chooser func(n int) int

// RandomChooser выбирает индекс равномерно случайно
func RandomChooser(n int) int {
	return rand.Intn(n)
}

// Fixed возвращает Chooser, всегда выбирающий индекс i (для тестов)
func Fixed(i int) Chooser {
	return func(n int) int {
		if i < 0 || i >= n {
			return 0
		}
		return i
	}
}

// Evaluation - результат оценки одного ответа
type Evaluation struct {
	Score    int
	Feedback string
	// Fired перечисляет имена сработавших сигналов в порядке проверки
	Fired []string
}

// Scorer оценивает ответы детерминированной эвристикой
type Scorer struct {
	choose  Chooser
	signals []Signal
}

// New создает Scorer; nil chooser заменяется на RandomChooser
func New(choose Chooser) *Scorer {
	if choose == nil {
		choose = RandomChooser
	}
	return &Scorer{
		choose:  choose,
		signals: []Signal{ExampleSignal, TechnicalVocabularySignal, STARSignal},
	}
}

// Score оценивает ответ для заданного режима. Любая строка допустима.
func (s *Scorer) Score(answer string, mode domain.Mode) Evaluation {
	score := baseScore
	var feedback strings.Builder
	var fired []string

	feedback.WriteString(acknowledgment)

	length := utf8.RuneCountInString(strings.TrimSpace(answer))
	if length < shortAnswerChars {
		score -= 2
		feedback.WriteString(tooShortSentence)
		fired = append(fired, "too-short")
	} else if length > detailedAnswerChars {
		score++
		feedback.WriteString(detailedSentence)
		fired = append(fired, "detailed")
	}

	for _, sig := range s.signals {
		if !sig.Applies(answer, mode) {
			continue
		}
		score += sig.Delta
		feedback.WriteString(sig.Sentence)
		fired = append(fired, sig.Name)
	}

	score = clamp(score)

	idx := s.choose(len(Suggestions))
	if idx < 0 || idx >= len(Suggestions) {
		idx = 0
	}
	feedback.WriteString(improvementLead)
	feedback.WriteString(Suggestions[idx])

	return Evaluation{Score: score, Feedback: feedback.String(), Fired: fired}
}

// Applies сообщает, срабатывает ли сигнал для ответа в данном режиме
func (sig Signal) Applies(answer string, mode domain.Mode) bool {
	if sig.Mode != "" && sig.Mode != mode {
		return false
	}
	haystack := answer
	if sig.Matching == CaseInsensitive {
		haystack = strings.ToLower(answer)
	}
	for _, term := range sig.Terms {
		if strings.Contains(haystack, term) {
			return true
		}
	}
	return false
}

func clamp(score int) int {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
