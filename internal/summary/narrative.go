package summary

import (
	"fmt"

	"interview-practice/internal/domain"
	"interview-practice/internal/questions"
)

const fallbackStrength = "Showed up and attempted the interview"

// strengthRule - предикат и фраза; правила проверяются по порядку
type strengthRule struct {
	applies  func(st stats, mode domain.Mode) bool
	sentence string
}

var strengthRules = []strengthRule{
	{
		applies:  func(st stats, _ domain.Mode) bool { return st.answered == st.questionCount },
		sentence: "Completed all interview questions",
	},
	{
		applies:  func(st stats, _ domain.Mode) bool { return st.finalScore >= 7 },
		sentence: "Strong technical knowledge and communication",
	},
	{
		applies:  func(st stats, mode domain.Mode) bool { return mode == domain.ModeBehavioral && st.finalScore >= 6 },
		sentence: "Good use of storytelling and examples",
	},
	{
		applies:  func(st stats, mode domain.Mode) bool { return mode == domain.ModeTechnical && st.finalScore >= 6 },
		sentence: "Solid understanding of technical concepts",
	},
	{
		applies: func(st stats, _ domain.Mode) bool {
			return float64(st.detailedAnswers) >= float64(st.questionCount)*detailedAnswersShare
		},
		sentence: "Provided detailed, comprehensive answers",
	},
}

func strengths(st stats, mode domain.Mode) []string {
	var out []string
	for _, rule := range strengthRules {
		if rule.applies(st, mode) {
			out = append(out, rule.sentence)
		}
	}
	if len(out) == 0 {
		return []string{fallbackStrength}
	}
	return out
}

func improvements(st stats, mode domain.Mode) []string {
	var out []string

	if st.finalScore < 6 {
		out = append(out, "Practice explaining concepts more clearly and concisely")
	}
	if st.skipped > 0 {
		out = append(out, "Try to attempt all questions, even if unsure")
	}

	if mode == domain.ModeBehavioral {
		out = append(out,
			"Use the STAR method (Situation, Task, Action, Result) more consistently",
			"Include specific metrics and outcomes in your examples",
		)
	} else {
		out = append(out,
			"Practice coding problems and system design scenarios",
			"Explain your thought process while solving problems",
		)
	}

	return append(out, "Research the company and role more thoroughly")
}

// Resources возвращает рекомендованные материалы для режима и домена.
// Материал по роли всегда идет последним.
func Resources(role, dom string, mode domain.Mode) []domain.Resource {
	var out []domain.Resource

	if mode == domain.ModeTechnical {
		out = append(out,
			domain.Resource{
				Title:       "LeetCode Practice",
				Description: "Solve coding problems similar to interview questions",
				URL:         "https://leetcode.com",
			},
			domain.Resource{
				Title:       "System Design Primer",
				Description: "Learn how to design large-scale distributed systems",
				URL:         "https://github.com/donnemartin/system-design-primer",
			},
		)
		if dom == "Frontend" {
			out = append(out, domain.Resource{
				Title:       "JavaScript Algorithms and Data Structures",
				Description: "Master JS fundamentals for technical interviews",
				URL:         "https://github.com/trekhleb/javascript-algorithms",
			})
		}
	} else {
		out = append(out,
			domain.Resource{
				Title:       "STAR Method Guide",
				Description: "Master the STAR technique for behavioral interviews",
				URL:         "https://www.indeed.com/career-advice/interviewing/how-to-use-the-star-method",
			},
			domain.Resource{
				Title:       "Behavioral Interview Questions",
				Description: "Practice common behavioral interview scenarios",
				URL:         "https://www.glassdoor.com/blog/common-behavioral-interview-questions/",
			},
		)
	}

	title := questions.RoleTitle(role)
	return append(out, domain.Resource{
		Title:       fmt.Sprintf("%s Interview Guide", title),
		Description: fmt.Sprintf("Specific preparation tips for %s positions", title),
		URL:         "#",
	})
}
