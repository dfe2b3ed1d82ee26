package questions

import "interview-practice/internal/domain"

var technicalGeneric = []string{
	"Tell me about your technical background and experience.",
	"Explain the difference between useCallback and useMemo hooks with practical examples.",
	"Design a RESTful API for a social media platform. What endpoints would you create?",
	"How would you prioritize features for a mobile app with limited development resources?",
	"How would you analyze user engagement data to improve product retention?",
}

var behavioralGeneric = []string{
	"Tell me about yourself and your background.",
	"What interests you most about this role?",
	"Describe a challenging project you've worked on recently.",
	"Tell me about a time when you had to work under pressure.",
	"Where do you see yourself in 5 years?",
}

// Default возвращает встроенный банк вопросов
func Default() *Bank {
	return NewBank(map[domain.Mode]ModeBank{
		domain.ModeTechnical: {
			Generic: technicalGeneric,
			Roles: map[string]RoleQuestions{
				"software-engineer": {
					Domains: map[string][]string{
						"Frontend": {
							"Explain the virtual DOM and how React uses it for efficient rendering.",
							"How would you optimize the performance of a React application with large lists?",
							"Design a responsive navigation component that works across different screen sizes.",
							"Explain the difference between useCallback and useMemo hooks with practical examples.",
							"How would you implement state management in a large-scale React application?",
						},
						"Backend": {
							"Design a RESTful API for a social media platform. What endpoints would you create?",
							"Explain database indexing and when you would use different types of indexes.",
							"How would you handle authentication and authorization in a microservices architecture?",
							"Design a caching strategy for a high-traffic e-commerce website.",
							"Explain how you would implement rate limiting for an API.",
						},
						"Full Stack": {
							"How would you design a real-time chat application? Walk me through the architecture.",
							"Explain how you would handle file uploads in a web application, from frontend to backend.",
							"Design a system for user authentication that works across multiple applications.",
							"How would you optimize database queries for a social media feed?",
							"Explain your approach to API versioning and backward compatibility.",
						},
					},
				},
				"product-manager": {
					Questions: []string{
						"How would you prioritize features for a mobile app with limited development resources?",
						"Walk me through how you would launch a new product feature from conception to release.",
						"How do you measure the success of a product? What metrics would you track?",
						"Describe how you would handle conflicting requirements from different stakeholders.",
						"How would you conduct user research to validate a new product idea?",
					},
				},
				"data-analyst": {
					Questions: []string{
						"How would you analyze user engagement data to improve product retention?",
						"Explain how you would design an A/B test for a new website feature.",
						"Walk me through your process for cleaning and preparing messy data.",
						"How would you present complex data insights to non-technical stakeholders?",
						"Describe how you would identify and handle outliers in a dataset.",
					},
				},
			},
		},
		domain.ModeBehavioral: {
			Generic: behavioralGeneric,
			Roles: map[string]RoleQuestions{
				"software-engineer": {
					Domains: map[string][]string{
						"Frontend": {
							"Tell me about a time when you had to work with a difficult team member on a frontend project.",
							"Describe a situation where you had to balance user experience with technical constraints.",
							"Give me an example of when you had to advocate for a technical decision to non-technical stakeholders.",
							"Tell me about a time when you received critical feedback on your code. How did you handle it?",
							"Describe a challenging bug you encountered and how you approached solving it.",
						},
						"Backend": {
							"Tell me about a time when you had to optimize system performance under pressure.",
							"Describe a situation where you had to make a trade-off between code quality and delivery timeline.",
							"Give me an example of when you had to troubleshoot a production issue.",
							"Tell me about a time when you disagreed with a technical architecture decision.",
							"Describe how you handled a situation where your code caused a system outage.",
						},
					},
				},
				"product-manager": {
					Questions: []string{
						"Tell me about a time when you had to make a difficult product decision with limited data.",
						"Describe a situation where you had to manage conflicting priorities from different stakeholders.",
						"Give me an example of when you had to pivot a product strategy based on user feedback.",
						"Tell me about a time when you had to influence a team without direct authority.",
						"Describe how you handled a product launch that didn't meet expectations.",
					},
				},
				"data-analyst": {
					Questions: []string{
						"Tell me about a time when your analysis led to an unexpected business insight.",
						"Describe a situation where you had to present complex data to skeptical stakeholders.",
						"Give me an example of when you had to work with incomplete or messy data.",
						"Tell me about a time when you disagreed with a business decision based on your analysis.",
						"Describe how you handled a situation where your analysis was questioned or challenged.",
					},
				},
			},
		},
	})
}
